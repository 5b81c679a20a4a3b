// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package picker

import (
	"fmt"

	"cloudeng.io/jalali"
)

// WeekdayLabels are the Persian weekday labels in the order used by
// BuildMonthGrid, ie. starting on Saturday.
var WeekdayLabels = []string{"ش", "ی", "د", "س", "چ", "پ", "ج"}

// LatinWeekdayLabels are transliterated weekday labels in the same order
// as WeekdayLabels.
var LatinWeekdayLabels = []string{"Sh", "Ye", "Do", "Se", "Ch", "Pa", "Jo"}

// maxGridCells bounds the grid for a calendar that never reaches the
// first day of the following month.
const maxGridCells = 7 * 7

// LeadingDays returns the number of days from the preceding month that
// are displayed before the first day of a month that starts on the
// specified weekday, numbered as per time.Weekday.
func LeadingDays(weekday int) int {
	return (weekday + 1) % 7
}

// BuildMonthGrid returns the dates to display for the month of ref. The
// grid starts on the Saturday on or before the first day of the month and
// contains complete weeks only, so its length is always a multiple of 7.
// Every day of the month appears exactly once. An error wrapping
// jalali.ErrInvalidDate is returned if ref is not a valid date.
func BuildMonthGrid(cal jalali.Calendar, ref jalali.Date) ([]jalali.Date, error) {
	if err := ref.Validate(); err != nil {
		return nil, fmt.Errorf("month grid: %w", err)
	}
	monthStart, monthEnd := cal.StartOfMonth(ref), cal.EndOfMonth(ref)
	day := cal.AddDays(monthStart, -LeadingDays(cal.WeekdayIndex(monthStart)))
	days := make([]jalali.Date, 0, 6*7)
	appendDay := func() error {
		if day.IsZero() {
			return fmt.Errorf("month grid: %v: %w: no date follows %v", ref, jalali.ErrInvalidDate, days[len(days)-1])
		}
		days = append(days, day)
		day = cal.AddDays(day, 1)
		return nil
	}
	if day.IsZero() {
		return nil, fmt.Errorf("month grid: %v: %w: no date precedes the month", ref, jalali.ErrInvalidDate)
	}
	// Continue until the first day of the following month.
	for cal.IsBefore(day, monthEnd) || cal.DayOfMonth(day) != 1 {
		if len(days) >= maxGridCells {
			return nil, fmt.Errorf("month grid: %v: did not reach the end of the month after %d days", ref, len(days))
		}
		if err := appendDay(); err != nil {
			return nil, err
		}
	}
	for len(days)%7 != 0 {
		if err := appendDay(); err != nil {
			return nil, err
		}
	}
	return days, nil
}

// Cell represents a single day displayed in a month grid.
type Cell struct {
	Date jalali.Date
	// InMonth is true if Date is in the month being displayed.
	InMonth  bool
	Today    bool
	Selected bool
	RangeBoundary
}

// Cells returns the Cells for the month of ref with the selection state
// of each cell determined by sel. sel may be nil, in which case no cells
// are selected.
func Cells(cal jalali.Calendar, ref jalali.Date, sel Selection) ([]Cell, error) {
	if sel != nil {
		if err := sel.Validate(); err != nil {
			return nil, err
		}
	}
	days, err := BuildMonthGrid(cal, ref)
	if err != nil {
		return nil, err
	}
	today := cal.Today()
	cells := make([]Cell, len(days))
	for i, d := range days {
		cells[i] = Cell{
			Date:    d,
			InMonth: cal.Month(d) == cal.Month(ref) && cal.Year(d) == cal.Year(ref),
			Today:   cal.IsSameDay(d, today),
		}
		if sel != nil {
			cells[i].Selected = isSelected(sel, d)
			cells[i].RangeBoundary = boundary(sel, d)
		}
	}
	return cells, nil
}
