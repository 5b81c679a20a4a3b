// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package picker

import (
	"errors"
	"fmt"
	"slices"

	"cloudeng.io/jalali"
)

// ErrInconsistentModeState is returned when a Selection does not match
// the Mode it is used with, or violates the invariants for its shape.
var ErrInconsistentModeState = errors.New("inconsistent selection mode and state")

// Selection represents the dates selected under one of the selection
// modes. It is implemented by exactly SingleSelection, MultipleSelection
// and RangeSelection.
type Selection interface {
	// Mode returns the Mode that the selection belongs to.
	Mode() Mode
	// Validate returns an error if the selection violates the
	// invariants of its shape.
	Validate() error
	selection()
}

// SingleSelection holds the one selected date of Single mode.
type SingleSelection struct {
	Date jalali.Date
}

// MultipleSelection holds the dates selected in Multiple mode, in the
// order that they were selected and without duplicates.
type MultipleSelection struct {
	Dates jalali.DateList
}

// RangeSelection holds the start and end of the range selected in Range
// mode. A zero Date represents an absent start or end. End is only ever
// present when Start is and is never before Start.
type RangeSelection struct {
	Start, End jalali.Date
}

func (SingleSelection) Mode() Mode   { return Single }
func (MultipleSelection) Mode() Mode { return Multiple }
func (RangeSelection) Mode() Mode    { return Range }

func (SingleSelection) selection()   {}
func (MultipleSelection) selection() {}
func (RangeSelection) selection()    {}

func (s SingleSelection) Validate() error {
	if err := s.Date.Validate(); err != nil {
		return fmt.Errorf("%w: single selection: %w", ErrInconsistentModeState, err)
	}
	return nil
}

func (s MultipleSelection) Validate() error {
	for i, d := range s.Dates {
		if err := d.Validate(); err != nil {
			return fmt.Errorf("%w: multiple selection: %w", ErrInconsistentModeState, err)
		}
		if s.Dates[:i].Contains(d) {
			return fmt.Errorf("%w: multiple selection: %v is selected more than once", ErrInconsistentModeState, d)
		}
	}
	return nil
}

func (s RangeSelection) Validate() error {
	switch {
	case s.Start.IsZero() && s.End.IsZero():
		return nil
	case s.Start.IsZero():
		return fmt.Errorf("%w: range selection: end %v without a start", ErrInconsistentModeState, s.End)
	}
	if err := s.Start.Validate(); err != nil {
		return fmt.Errorf("%w: range selection: %w", ErrInconsistentModeState, err)
	}
	if s.End.IsZero() {
		return nil
	}
	if err := s.End.Validate(); err != nil {
		return fmt.Errorf("%w: range selection: %w", ErrInconsistentModeState, err)
	}
	if s.End.Before(s.Start) {
		return fmt.Errorf("%w: range selection: end %v is before start %v", ErrInconsistentModeState, s.End, s.Start)
	}
	return nil
}

// HasStart returns true if the range has a start date.
func (s RangeSelection) HasStart() bool { return !s.Start.IsZero() }

// HasEnd returns true if the range has an end date.
func (s RangeSelection) HasEnd() bool { return !s.End.IsZero() }

// Initial returns the initial, empty, selection for mode. For Single
// mode this is today's date. It returns nil for an invalid mode.
func Initial(mode Mode, today jalali.Date) Selection {
	switch mode {
	case Single:
		return SingleSelection{Date: today}
	case Multiple:
		return MultipleSelection{}
	case Range:
		return RangeSelection{}
	}
	return nil
}

func checkMode(sel Selection, mode Mode) error {
	if !mode.Valid() {
		return fmt.Errorf("%w: %v", ErrUnknownMode, mode)
	}
	if sel == nil {
		return fmt.Errorf("%w: nil selection for %v mode", ErrInconsistentModeState, mode)
	}
	if sel.Mode() != mode {
		return fmt.Errorf("%w: %v selection used in %v mode", ErrInconsistentModeState, sel.Mode(), mode)
	}
	return nil
}

// Cancels returns true if clicking on the specified date will cancel the
// selection, ie. in Range mode clicking on the start of the range.
func Cancels(sel Selection, clicked jalali.Date) bool {
	rs, ok := sel.(RangeSelection)
	return ok && rs.HasStart() && rs.Start.Equal(clicked)
}

// Transition returns the selection that results from clicking on the
// specified date. It does not modify sel. The rules are:
//
//   - Single: the clicked date replaces the selected date.
//   - Multiple: the clicked date is removed if already selected, otherwise
//     it is appended to the selection.
//   - Range: clicking on the start cancels the range and returns the
//     initial, empty, selection. Otherwise, if there is no start the
//     clicked date becomes the start; if the clicked date is before the
//     start it becomes the new start and, for a range with no end, the
//     old start becomes the end; otherwise it becomes the end. The old
//     start is kept rather than discarded so that two clicks select the
//     same range in either order, eg. day 10 then day 5 selects 5-10.
//     Re-clicking the end leaves the range unchanged.
//
// An error wrapping ErrInconsistentModeState is returned if sel does
// not belong to mode and one wrapping jalali.ErrInvalidDate if clicked
// is not a valid date.
func Transition(sel Selection, mode Mode, clicked jalali.Date) (Selection, error) {
	if err := checkMode(sel, mode); err != nil {
		return nil, err
	}
	if err := sel.Validate(); err != nil {
		return nil, err
	}
	if err := clicked.Validate(); err != nil {
		return nil, err
	}
	switch s := sel.(type) {
	case SingleSelection:
		return SingleSelection{Date: clicked}, nil
	case MultipleSelection:
		return s.toggle(clicked), nil
	case RangeSelection:
		return s.click(clicked), nil
	}
	return nil, fmt.Errorf("%w: unsupported selection type %T", ErrInconsistentModeState, sel)
}

func (s MultipleSelection) toggle(clicked jalali.Date) MultipleSelection {
	if idx := s.Dates.Index(clicked); idx >= 0 {
		return MultipleSelection{Dates: slices.Delete(slices.Clone(s.Dates), idx, idx+1)}
	}
	dates := make(jalali.DateList, len(s.Dates), len(s.Dates)+1)
	copy(dates, s.Dates)
	return MultipleSelection{Dates: append(dates, clicked)}
}

func (s RangeSelection) click(clicked jalali.Date) RangeSelection {
	switch {
	case s.HasStart() && s.Start.Equal(clicked):
		return RangeSelection{}
	case !s.HasStart():
		return RangeSelection{Start: clicked}
	case clicked.Before(s.Start) && s.HasEnd():
		return RangeSelection{Start: clicked, End: s.End}
	case clicked.Before(s.Start):
		return RangeSelection{Start: clicked, End: s.Start}
	default:
		return RangeSelection{Start: s.Start, End: clicked}
	}
}

// IsSelected returns true if d is selected, that is:
//
//   - Single: d is the selected date.
//   - Multiple: d is one of the selected dates.
//   - Range: d is within the range, inclusive of both ends, or if there
//     is no end, d is the start of the range.
func IsSelected(sel Selection, mode Mode, d jalali.Date) (bool, error) {
	if err := checkMode(sel, mode); err != nil {
		return false, err
	}
	return isSelected(sel, d), nil
}

func isSelected(sel Selection, d jalali.Date) bool {
	switch s := sel.(type) {
	case SingleSelection:
		return s.Date.Equal(d)
	case MultipleSelection:
		return s.Dates.Contains(d)
	case RangeSelection:
		switch {
		case s.HasStart() && s.HasEnd():
			return d.Between(s.Start, s.End)
		case s.HasStart():
			return d.Equal(s.Start)
		}
	}
	return false
}

// RangeBoundary indicates whether a date is the start and/or end of a
// selected range.
type RangeBoundary struct {
	IsStart, IsEnd bool
}

// Boundary returns the RangeBoundary for d. Both fields are always false
// for modes other than Range.
func Boundary(sel Selection, mode Mode, d jalali.Date) (RangeBoundary, error) {
	if err := checkMode(sel, mode); err != nil {
		return RangeBoundary{}, err
	}
	return boundary(sel, d), nil
}

func boundary(sel Selection, d jalali.Date) RangeBoundary {
	rs, ok := sel.(RangeSelection)
	if !ok {
		return RangeBoundary{}
	}
	return RangeBoundary{
		IsStart: rs.HasStart() && rs.Start.Equal(d),
		IsEnd:   rs.HasEnd() && rs.End.Equal(d),
	}
}

// Dates returns the selected dates for Single and Multiple mode and
// the start and end dates, if present, for Range mode.
func Dates(sel Selection) jalali.DateList {
	switch s := sel.(type) {
	case SingleSelection:
		return jalali.DateList{s.Date}
	case MultipleSelection:
		return slices.Clone(s.Dates)
	case RangeSelection:
		var dl jalali.DateList
		if s.HasStart() {
			dl = append(dl, s.Start)
		}
		if s.HasEnd() {
			dl = append(dl, s.End)
		}
		return dl
	}
	return nil
}
