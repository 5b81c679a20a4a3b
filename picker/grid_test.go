// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package picker_test

import (
	"errors"
	"testing"
	"time"

	"cloudeng.io/jalali"
	"cloudeng.io/jalali/picker"
)

var nd = jalali.MustNewDate

// today is 1403/07/15.
func newCalendar() *jalali.Persian {
	now := time.Date(2024, 10, 6, 12, 0, 0, 0, time.UTC)
	return jalali.NewCalendar(
		jalali.WithLocation(time.UTC),
		jalali.WithClock(func() time.Time { return now }))
}

func TestBuildMonthGridProperties(t *testing.T) {
	cal := newCalendar()
	years := []int{jalali.MinYear, jalali.MinYear + 1, jalali.MaxYear - 1, jalali.MaxYear}
	for year := 1398; year <= 1406; year++ {
		years = append(years, year)
	}
	for _, year := range years {
		for month := jalali.Farvardin; month <= jalali.Esfand; month++ {
			ref := nd(year, month, jalali.DaysInMonth(year, month))
			grid, err := picker.BuildMonthGrid(cal, ref)
			if err != nil {
				t.Errorf("%v: %v", ref, err)
				continue
			}
			if l := len(grid); l != 35 && l != 42 {
				t.Errorf("%v: unexpected grid length: %v", ref, l)
			}
			monthStart := ref.StartOfMonth()
			leading := picker.LeadingDays(cal.WeekdayIndex(monthStart))
			if got, want := grid[0], monthStart.AddDays(-leading); got != want {
				t.Errorf("%v: first cell: got %v, want %v", ref, got, want)
			}
			if got, want := grid[0].Weekday(), time.Saturday; got != want {
				t.Errorf("%v: first cell: got %v, want %v", ref, got, want)
			}
			seen := map[int]int{}
			for i, d := range grid {
				if i > 0 && grid[i-1].Tomorrow() != d {
					t.Errorf("%v: cell %v: %v does not follow %v", ref, i, d, grid[i-1])
				}
				if d.Year() == year && d.Month() == month {
					seen[d.Day()]++
				}
			}
			if got, want := len(seen), jalali.DaysInMonth(year, month); got != want {
				t.Errorf("%v: got %v days, want %v", ref, got, want)
			}
			for day, n := range seen {
				if n != 1 {
					t.Errorf("%v: day %v appears %v times", ref, day, n)
				}
			}
		}
	}
}

func TestBuildMonthGridExamples(t *testing.T) {
	cal := newCalendar()
	for _, tc := range []struct {
		ref         jalali.Date
		weekday     time.Weekday
		leading     int
		length      int
		first, last jalali.Date
	}{
		// Nowruz 1403 is a Wednesday.
		{nd(1403, jalali.Farvardin, 10), time.Wednesday, 4, 35,
			nd(1402, jalali.Esfand, 26), nd(1403, jalali.Farvardin, 31)},
		// Nowruz 1404 is a Friday.
		{nd(1404, jalali.Farvardin, 1), time.Friday, 6, 42,
			nd(1403, jalali.Esfand, 25), nd(1404, jalali.Ordibehesht, 5)},
		// 1 Mehr 1403 is a Sunday.
		{nd(1403, jalali.Mehr, 30), time.Sunday, 1, 35,
			nd(1403, jalali.Shahrivar, 31), nd(1403, jalali.Aban, 4)},
	} {
		if got, want := cal.WeekdayIndex(tc.ref.StartOfMonth()), int(tc.weekday); got != want {
			t.Errorf("%v: got %v, want %v", tc.ref, got, want)
		}
		if got, want := picker.LeadingDays(int(tc.weekday)), tc.leading; got != want {
			t.Errorf("%v: got %v, want %v", tc.ref, got, want)
		}
		grid, err := picker.BuildMonthGrid(cal, tc.ref)
		if err != nil {
			t.Errorf("%v: %v", tc.ref, err)
			continue
		}
		if got, want := len(grid), tc.length; got != want {
			t.Errorf("%v: got %v, want %v", tc.ref, got, want)
		}
		if got, want := grid[0], tc.first; got != want {
			t.Errorf("%v: got %v, want %v", tc.ref, got, want)
		}
		if got, want := grid[len(grid)-1], tc.last; got != want {
			t.Errorf("%v: got %v, want %v", tc.ref, got, want)
		}
	}
}

type stuckCalendar struct {
	*jalali.Persian
}

func (stuckCalendar) DayOfMonth(jalali.Date) int { return 2 }

func TestBuildMonthGridErrors(t *testing.T) {
	cal := newCalendar()
	if _, err := picker.BuildMonthGrid(cal, jalali.Date{}); !errors.Is(err, jalali.ErrInvalidDate) {
		t.Errorf("expected ErrInvalidDate, got %v", err)
	}
	if _, err := picker.BuildMonthGrid(stuckCalendar{cal}, nd(1403, jalali.Mehr, 1)); err == nil {
		t.Errorf("expected an error")
	}
	if _, err := picker.BuildMonthGrid(cal, nd(jalali.MinYear, jalali.Farvardin, 1).AddMonths(-1)); !errors.Is(err, jalali.ErrInvalidDate) {
		t.Errorf("expected ErrInvalidDate, got %v", err)
	}
	for _, ref := range []jalali.Date{
		nd(1403, jalali.Mehr, 1),
		nd(1403, jalali.Azar, 1),
	} {
		_, err := picker.BuildMonthGrid(lostCalendar{cal}, ref)
		if !errors.Is(err, jalali.ErrInvalidDate) {
			t.Errorf("%v: expected ErrInvalidDate, got %v", ref, err)
		}
	}
}

// lostCalendar has no days after Mehr 1403.
type lostCalendar struct {
	*jalali.Persian
}

func (c lostCalendar) AddDays(d jalali.Date, n int) jalali.Date {
	d = c.Persian.AddDays(d, n)
	if d.After(nd(1403, jalali.Mehr, 30)) {
		return jalali.Date{}
	}
	return d
}

func TestBuildMonthGridLimits(t *testing.T) {
	cal := newCalendar()
	for _, tc := range []struct {
		ref         jalali.Date
		length      int
		first, last string
	}{
		// 962/01/01 is Monday 21 March 1583 and 961 is not a leap year.
		{nd(jalali.MinYear, jalali.Farvardin, 1), 35, "0961/12/28", "0962/02/02"},
		// 3000/12/01 is a Saturday and 3000 is a leap year.
		{nd(jalali.MaxYear, jalali.Esfand, 1), 35, "3000/12/01", "3001/01/05"},
	} {
		grid, err := picker.BuildMonthGrid(cal, tc.ref)
		if err != nil {
			t.Errorf("%v: %v", tc.ref, err)
			continue
		}
		if got, want := len(grid), tc.length; got != want {
			t.Errorf("%v: got %v, want %v", tc.ref, got, want)
			continue
		}
		if got, want := grid[0].String(), tc.first; got != want {
			t.Errorf("%v: got %v, want %v", tc.ref, got, want)
		}
		if got, want := grid[len(grid)-1].String(), tc.last; got != want {
			t.Errorf("%v: got %v, want %v", tc.ref, got, want)
		}
		if got, want := grid[0].Weekday(), time.Saturday; got != want {
			t.Errorf("%v: got %v, want %v", tc.ref, got, want)
		}
	}
}

func TestWeekdayLabels(t *testing.T) {
	if got, want := len(picker.WeekdayLabels), 7; got != want {
		t.Fatalf("got %v, want %v", got, want)
	}
	if got, want := len(picker.LatinWeekdayLabels), 7; got != want {
		t.Fatalf("got %v, want %v", got, want)
	}
	// The first label is for Saturday, as is the first cell of every grid.
	if got, want := picker.WeekdayLabels[0], "ش"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := picker.WeekdayLabels[6], "ج"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestCells(t *testing.T) {
	cal := newCalendar()
	ref := nd(1403, jalali.Mehr, 1)
	sel := picker.RangeSelection{Start: nd(1403, jalali.Mehr, 14), End: nd(1403, jalali.Mehr, 16)}
	cells, err := picker.Cells(cal, ref, sel)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := len(cells), 35; got != want {
		t.Fatalf("got %v, want %v", got, want)
	}
	if cells[0].InMonth {
		t.Errorf("%v should not be in the displayed month", cells[0].Date)
	}
	var selected, today, inMonth int
	for _, c := range cells {
		if c.InMonth {
			inMonth++
		}
		if c.Today {
			today++
			if got, want := c.Date, nd(1403, jalali.Mehr, 15); got != want {
				t.Errorf("got %v, want %v", got, want)
			}
		}
		if c.Selected {
			selected++
		}
		switch c.Date {
		case sel.Start:
			if !c.IsStart || c.IsEnd {
				t.Errorf("%v: unexpected boundary: %+v", c.Date, c.RangeBoundary)
			}
		case sel.End:
			if c.IsStart || !c.IsEnd {
				t.Errorf("%v: unexpected boundary: %+v", c.Date, c.RangeBoundary)
			}
		default:
			if c.IsStart || c.IsEnd {
				t.Errorf("%v: unexpected boundary: %+v", c.Date, c.RangeBoundary)
			}
		}
	}
	if got, want := inMonth, 30; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := selected, 3; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := today, 1; got != want {
		t.Errorf("got %v, want %v", got, want)
	}

	cells, err = picker.Cells(cal, ref, nil)
	if err != nil {
		t.Fatal(err)
	}
	for _, c := range cells {
		if c.Selected || c.IsStart || c.IsEnd {
			t.Errorf("%v: unexpected selection", c.Date)
		}
	}

	_, err = picker.Cells(cal, ref, picker.RangeSelection{End: ref})
	if !errors.Is(err, picker.ErrInconsistentModeState) {
		t.Errorf("expected ErrInconsistentModeState, got %v", err)
	}
}
