// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package picker

import (
	"fmt"

	"cloudeng.io/datetime"
	"cloudeng.io/jalali"
)

// Picker holds the state of a month-grid date picker: the selection mode,
// the current selection and the reference date whose month is displayed.
// A Picker is owned by a single displaying component and is not safe for
// concurrent use.
type Picker struct {
	cal           jalali.Calendar
	mode          Mode
	reference     jalali.Date
	selection     Selection
	datePattern   string
	headerPattern string
}

// Option represents an option to New.
type Option func(*Picker)

// WithDatePattern sets the layout used to format dates in summaries.
func WithDatePattern(pattern string) Option {
	return func(p *Picker) {
		p.datePattern = pattern
	}
}

// WithHeaderPattern sets the layout used to format the month header.
func WithHeaderPattern(pattern string) Option {
	return func(p *Picker) {
		p.headerPattern = pattern
	}
}

// New returns a Picker for mode that displays the current month.
func New(cal jalali.Calendar, mode Mode, opts ...Option) (*Picker, error) {
	if !mode.Valid() {
		return nil, fmt.Errorf("%w: %v", ErrUnknownMode, mode)
	}
	p := &Picker{
		cal:           cal,
		mode:          mode,
		datePattern:   DatePattern,
		headerPattern: HeaderPattern,
	}
	for _, fn := range opts {
		fn(p)
	}
	p.Reset()
	return p, nil
}

// Mode returns the current selection mode.
func (p *Picker) Mode() Mode {
	return p.mode
}

// SetMode changes the selection mode, discarding the current selection
// and returning to the current month.
func (p *Picker) SetMode(mode Mode) error {
	if !mode.Valid() {
		return fmt.Errorf("%w: %v", ErrUnknownMode, mode)
	}
	p.mode = mode
	p.Reset()
	return nil
}

// Reset returns the selection to the initial selection for the current
// mode and the reference date to today.
func (p *Picker) Reset() {
	p.reference = p.cal.Today()
	p.selection = Initial(p.mode, p.reference)
}

// Reference returns the reference date, the month of which is displayed.
func (p *Picker) Reference() jalali.Date {
	return p.reference
}

// Selection returns the current selection.
func (p *Picker) Selection() Selection {
	return p.selection
}

// SetSelection replaces the current selection, which must belong to the
// current mode. In Single mode the reference date becomes the selected date.
func (p *Picker) SetSelection(sel Selection) error {
	if err := checkMode(sel, p.mode); err != nil {
		return err
	}
	if err := sel.Validate(); err != nil {
		return err
	}
	p.selection = sel
	if s, ok := sel.(SingleSelection); ok {
		p.reference = s.Date
	}
	return nil
}

// Click applies Transition to the current selection for the clicked date.
// In Single mode the display moves to the month of the clicked date. In
// Range mode, clicking on the start of the range resets the Picker.
func (p *Picker) Click(d jalali.Date) error {
	cancel := Cancels(p.selection, d)
	next, err := Transition(p.selection, p.mode, d)
	if err != nil {
		return err
	}
	if cancel {
		p.Reset()
		return nil
	}
	p.selection = next
	if s, ok := next.(SingleSelection); ok {
		p.reference = s.Date
	}
	return nil
}

// SetReference sets the reference date. In Single mode the selected date
// is the reference date and so is also changed.
func (p *Picker) SetReference(d jalali.Date) error {
	if err := d.Validate(); err != nil {
		return err
	}
	p.setReference(d)
	return nil
}

func (p *Picker) setReference(d jalali.Date) {
	p.reference = d
	if p.mode == Single {
		p.selection = SingleSelection{Date: d}
	}
}

// NextMonth moves the display to the following month.
func (p *Picker) NextMonth() error {
	return p.navigate(p.cal.AddMonths(p.reference, 1))
}

// PrevMonth moves the display to the preceding month.
func (p *Picker) PrevMonth() error {
	return p.navigate(p.cal.SubtractMonths(p.reference, 1))
}

func (p *Picker) navigate(d jalali.Date) error {
	if err := d.Validate(); err != nil {
		return fmt.Errorf("navigating from %v: %w", p.reference, err)
	}
	p.setReference(d)
	return nil
}

// Cells returns the cells for the month of the reference date.
func (p *Picker) Cells() ([]Cell, error) {
	return Cells(p.cal, p.reference, p.selection)
}

// Header returns the month header for the reference date, eg. "مهر 1403".
func (p *Picker) Header() string {
	return p.cal.Format(p.reference, p.headerPattern)
}

// FormatDate formats d using the Picker's date pattern.
func (p *Picker) FormatDate(d jalali.Date) string {
	return p.cal.Format(d, p.datePattern)
}

// Summary returns the Summary for the current selection.
func (p *Picker) Summary() string {
	return Summary(p.selection, p.FormatDate)
}

// SelectedDates returns the dates returned by Dates for the current
// selection.
func (p *Picker) SelectedDates() jalali.DateList {
	return Dates(p.selection)
}

// GregorianRange returns the Gregorian date range for a Range mode
// selection. A range without an end is returned as a single day range.
// It returns false if there is no range.
func (p *Picker) GregorianRange() (datetime.CalendarDateRange, bool) {
	rs, ok := p.selection.(RangeSelection)
	if !ok || !rs.HasStart() {
		return 0, false
	}
	end := rs.End
	if !rs.HasEnd() {
		end = rs.Start
	}
	return datetime.NewCalendarDateRange(rs.Start.Gregorian(), end.Gregorian()), true
}
