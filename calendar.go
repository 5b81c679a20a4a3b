// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package jalali

import (
	"context"
	"strings"
	"time"

	ptime "github.com/yaa110/go-persian-calendar"
)

// Calendar represents the date operations required to display and
// navigate a month of the Jalali calendar.
type Calendar interface {
	// Today returns the current date.
	Today() Date
	StartOfMonth(d Date) Date
	EndOfMonth(d Date) Date
	// WeekdayIndex returns the day of the week for d numbered as per
	// time.Weekday, ie. in the range 0 (Sunday) to 6 (Saturday).
	WeekdayIndex(d Date) int
	DayOfMonth(d Date) int
	Month(d Date) Month
	Year(d Date) int
	AddDays(d Date, n int) Date
	AddMonths(d Date, n int) Date
	SubtractMonths(d Date, n int) Date
	IsSameDay(a, b Date) bool
	IsBefore(a, b Date) bool
	// IsBetweenInclusive returns true if d is on or after from and on or
	// before to.
	IsBetweenInclusive(d, from, to Date) bool
	Format(d Date, pattern string) string
}

// Persian implements Calendar using github.com/yaa110/go-persian-calendar.
type Persian struct {
	loc           *time.Location
	now           func() time.Time
	persianDigits bool
}

// CalendarOption represents an option to NewCalendar.
type CalendarOption func(*Persian)

// WithLocation sets the location used to determine the current date,
// the default is Asia/Tehran.
func WithLocation(loc *time.Location) CalendarOption {
	return func(p *Persian) {
		p.loc = loc
	}
}

// WithClock sets the function used to obtain the current time, the
// default is time.Now.
func WithClock(now func() time.Time) CalendarOption {
	return func(p *Persian) {
		p.now = now
	}
}

// WithPersianDigits requests that Format use the Persian digits ۰ to ۹
// rather than 0 to 9, eg. "مهر ۱۴۰۳".
func WithPersianDigits() CalendarOption {
	return func(p *Persian) {
		p.persianDigits = true
	}
}

// NewCalendar returns a new instance of Persian.
func NewCalendar(opts ...CalendarOption) *Persian {
	p := &Persian{
		loc: ptime.Iran(),
		now: time.Now,
	}
	for _, fn := range opts {
		fn(p)
	}
	return p
}

// Location returns the location used to determine the current date.
func (p *Persian) Location() *time.Location {
	return p.loc
}

// Today implements Calendar.
func (p *Persian) Today() Date {
	return DateFromTime(p.now().In(p.loc))
}

// StartOfMonth implements Calendar.
func (p *Persian) StartOfMonth(d Date) Date { return d.StartOfMonth() }

// EndOfMonth implements Calendar.
func (p *Persian) EndOfMonth(d Date) Date { return d.EndOfMonth() }

// WeekdayIndex implements Calendar.
func (p *Persian) WeekdayIndex(d Date) int { return int(d.Weekday()) }

// DayOfMonth implements Calendar.
func (p *Persian) DayOfMonth(d Date) int { return d.Day() }

// Month implements Calendar.
func (p *Persian) Month(d Date) Month { return d.Month() }

// Year implements Calendar.
func (p *Persian) Year(d Date) int { return d.Year() }

// AddDays implements Calendar.
func (p *Persian) AddDays(d Date, n int) Date { return d.AddDays(n) }

// AddMonths implements Calendar.
func (p *Persian) AddMonths(d Date, n int) Date { return d.AddMonths(n) }

// SubtractMonths implements Calendar.
func (p *Persian) SubtractMonths(d Date, n int) Date { return d.AddMonths(-n) }

// IsSameDay implements Calendar.
func (p *Persian) IsSameDay(a, b Date) bool { return a.Equal(b) }

// IsBefore implements Calendar.
func (p *Persian) IsBefore(a, b Date) bool { return a.Before(b) }

// IsBetweenInclusive implements Calendar.
func (p *Persian) IsBetweenInclusive(d, from, to Date) bool { return d.Between(from, to) }

var persianDigits = strings.NewReplacer(
	"0", "۰", "1", "۱", "2", "۲", "3", "۳", "4", "۴",
	"5", "۵", "6", "۶", "7", "۷", "8", "۸", "9", "۹")

// PersianDigits returns s with the digits 0 to 9 replaced by their
// Persian equivalents.
func PersianDigits(s string) string {
	return persianDigits.Replace(s)
}

// Format implements Calendar. Digits are Persian if the calendar was
// created with WithPersianDigits.
func (p *Persian) Format(d Date, pattern string) string {
	if p.persianDigits {
		return PersianDigits(d.Format(pattern))
	}
	return d.Format(pattern)
}

type calendarKey struct{}

// ContextWithCalendar returns a new context with the given Calendar
// stored in it.
func ContextWithCalendar(ctx context.Context, cal Calendar) context.Context {
	return context.WithValue(ctx, calendarKey{}, cal)
}

// CalendarFromContext returns the Calendar stored in the given context,
// if there is none then a Persian calendar with default options is
// returned.
func CalendarFromContext(ctx context.Context) Calendar {
	cal, ok := ctx.Value(calendarKey{}).(Calendar)
	if !ok {
		return NewCalendar()
	}
	return cal
}
