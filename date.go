// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package jalali

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"cloudeng.io/datetime"
	ptime "github.com/yaa110/go-persian-calendar"
)

// ErrInvalidDate is wrapped by all errors that report an invalid year,
// month or day.
var ErrInvalidDate = errors.New("invalid date")

const (
	// MinYear and MaxYear bound the years accepted by NewDate. MinYear is
	// the first year that starts after the Gregorian reform of October
	// 1582; earlier days convert via the Julian calendar and do not
	// round trip through time.Time.
	MinYear = 962
	MaxYear = 3000
)

// Date represents a single day in the Jalali calendar. Date values are
// immutable and comparable with ==, which is equivalent to Equal. The zero
// value is not a valid date and is used to represent the absence of a date.
type Date struct {
	year  int
	month Month
	day   int
}

// NewDate returns the Date for the specified year, month and day. An error
// wrapping ErrInvalidDate is returned if any of these are out of range.
func NewDate(year int, month Month, day int) (Date, error) {
	if err := validate(year, month, day); err != nil {
		return Date{}, err
	}
	return Date{year: year, month: month, day: day}, nil
}

// MustNewDate is like NewDate but panics on error.
func MustNewDate(year int, month Month, day int) Date {
	d, err := NewDate(year, month, day)
	if err != nil {
		panic(err)
	}
	return d
}

func validate(year int, month Month, day int) error {
	if year < MinYear || year > MaxYear {
		return fmt.Errorf("%w: year %d is not in the range %d-%d", ErrInvalidDate, year, MinYear, MaxYear)
	}
	if !month.Valid() {
		return fmt.Errorf("%w: month %d is not in the range 1-12", ErrInvalidDate, int(month))
	}
	if n := DaysInMonth(year, month); day < 1 || day > n {
		return fmt.Errorf("%w: day %d is not in the range 1-%d for %v %d", ErrInvalidDate, day, n, month, year)
	}
	return nil
}

// DateFromTime returns the Date for the day that t falls on in t's location.
// The result is not validated.
func DateFromTime(t time.Time) Date {
	// ptime.New returns its zero value for years before 1097.
	var pt ptime.Time
	pt.SetTime(t)
	return Date{year: pt.Year(), month: Month(pt.Month()), day: pt.Day()}
}

// Validate returns an error wrapping ErrInvalidDate if d is not a valid
// date, including the zero Date.
func (d Date) Validate() error {
	return validate(d.year, d.month, d.day)
}

// IsZero returns true for the zero Date.
func (d Date) IsZero() bool {
	return d == Date{}
}

// Year returns the year of d.
func (d Date) Year() int { return d.year }

// Month returns the month of d.
func (d Date) Month() Month { return d.month }

// Day returns the day of the month of d.
func (d Date) Day() int { return d.day }

func (d Date) persian(hour int, loc *time.Location) ptime.Time {
	return ptime.Date(d.year, ptime.Month(d.month), d.day, hour, 0, 0, 0, loc)
}

// noon is used for day arithmetic so that daylight saving transitions
// never move a date across a day boundary.
func (d Date) noon() time.Time {
	return d.persian(12, time.UTC).Time()
}

// Time returns the Gregorian time for the start of d in the specified location.
func (d Date) Time(loc *time.Location) time.Time {
	return d.persian(0, loc).Time()
}

// Gregorian returns the Gregorian calendar date for d.
func (d Date) Gregorian() datetime.CalendarDate {
	t := d.noon()
	return datetime.NewCalendarDate(t.Year(), datetime.Month(t.Month()), t.Day())
}

// Weekday returns the day of the week for d.
func (d Date) Weekday() time.Weekday {
	return d.noon().Weekday()
}

// Compare returns -1, 0 or +1 depending on whether d is before, the same
// day as, or after o.
func (d Date) Compare(o Date) int {
	switch {
	case d.year != o.year:
		return cmpInt(d.year, o.year)
	case d.month != o.month:
		return cmpInt(int(d.month), int(o.month))
	default:
		return cmpInt(d.day, o.day)
	}
}

func cmpInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

// Equal returns true if d and o are the same day.
func (d Date) Equal(o Date) bool {
	return d == o
}

// Before returns true if d is strictly before o.
func (d Date) Before(o Date) bool {
	return d.Compare(o) < 0
}

// After returns true if d is strictly after o.
func (d Date) After(o Date) bool {
	return d.Compare(o) > 0
}

// Between returns true if d is on or after from and on or before to.
// It always returns false if from is after to.
func (d Date) Between(from, to Date) bool {
	return !d.Before(from) && !to.Before(d)
}

// AddDays returns the date n days after d, n may be negative.
func (d Date) AddDays(n int) Date {
	return DateFromTime(d.noon().AddDate(0, 0, n))
}

// Tomorrow returns the day after d.
func (d Date) Tomorrow() Date {
	return d.AddDays(1)
}

// Yesterday returns the day before d.
func (d Date) Yesterday() Date {
	return d.AddDays(-1)
}

// AddMonths returns the date n months after d, n may be negative. The day
// is reduced to the last day of the resulting month if that month is
// shorter, eg. 31 Shahrivar plus one month is 30 Mehr. The result is
// not validated and may have a year outside of MinYear and MaxYear.
func (d Date) AddMonths(n int) Date {
	months := d.year*12 + int(d.month-1) + n
	year, month := months/12, months%12
	if month < 0 {
		year, month = year-1, month+12
	}
	nd := Date{year: year, month: Month(month + 1), day: d.day}
	if last := DaysInMonth(nd.year, nd.month); nd.day > last {
		nd.day = last
	}
	return nd
}

// StartOfMonth returns the first day of d's month.
func (d Date) StartOfMonth() Date {
	return Date{year: d.year, month: d.month, day: 1}
}

// EndOfMonth returns the last day of d's month.
func (d Date) EndOfMonth() Date {
	return Date{year: d.year, month: d.month, day: DaysInMonth(d.year, d.month)}
}

// Format returns a textual representation of d using the layout tokens
// supported by github.com/yaa110/go-persian-calendar, eg. "yyyy/MM/dd"
// or "MMM yyyy".
func (d Date) Format(layout string) string {
	return d.persian(12, time.UTC).Format(layout)
}

// String returns d in yyyy/MM/dd format, or the empty string for the zero Date.
func (d Date) String() string {
	if d.IsZero() {
		return ""
	}
	return fmt.Sprintf("%04d/%02d/%02d", d.year, d.month, d.day)
}

// MarshalText implements encoding.TextMarshaler.
func (d Date) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. The empty string
// is unmarshaled as the zero Date.
func (d *Date) UnmarshalText(text []byte) error {
	if len(text) == 0 {
		*d = Date{}
		return nil
	}
	return d.Parse(string(text))
}

const expectedDateFormats = "1403/07/05, 1403-07-05 or Mehr-05-1403"

// ParseDate parses a date in the formats '1403/07/05', '1403-07-05'
// or 'Mehr-05-1403' with error checking for a valid year, month and day.
func ParseDate(val string) (Date, error) {
	var d Date
	return d, d.Parse(val)
}

// Parse parses a date as per ParseDate.
func (d *Date) Parse(val string) error {
	sep := "/"
	if !strings.Contains(val, sep) {
		sep = "-"
	}
	parts := strings.Split(val, sep)
	if len(parts) != 3 {
		return fmt.Errorf("%w: %q, expected %s", ErrInvalidDate, val, expectedDateFormats)
	}
	var year, day int
	var month Month
	var err error
	if y, nerr := strconv.Atoi(parts[0]); nerr == nil {
		year = y
		month, err = ParseNumericMonth(parts[1])
		if err == nil {
			day, err = strconv.Atoi(parts[2])
		}
	} else {
		month, err = ParseMonth(parts[0])
		if err == nil {
			day, err = strconv.Atoi(parts[1])
		}
		if err == nil {
			year, err = strconv.Atoi(parts[2])
		}
	}
	if err != nil {
		return fmt.Errorf("%w: %q: %v", ErrInvalidDate, val, err)
	}
	nd, err := NewDate(year, month, day)
	if err != nil {
		return err
	}
	*d = nd
	return nil
}

// ParseYearMonth parses a year and month in the formats '1403/07' or
// '1403-07' and returns the first day of that month.
func ParseYearMonth(val string) (Date, error) {
	sep := "/"
	if !strings.Contains(val, sep) {
		sep = "-"
	}
	parts := strings.Split(val, sep)
	if len(parts) != 2 {
		return Date{}, fmt.Errorf("%w: %q, expected 1403/07 or 1403-07", ErrInvalidDate, val)
	}
	year, err := strconv.Atoi(parts[0])
	if err != nil {
		return Date{}, fmt.Errorf("%w: %q: %v", ErrInvalidDate, val, err)
	}
	var month Month
	if err := month.Parse(parts[1]); err != nil {
		return Date{}, fmt.Errorf("%w: %q: %v", ErrInvalidDate, val, err)
	}
	return NewDate(year, month, 1)
}

// DateList is a list of dates.
type DateList []Date

// Index returns the index of the first occurrence of d in dl, or -1.
func (dl DateList) Index(d Date) int {
	for i, dd := range dl {
		if dd == d {
			return i
		}
	}
	return -1
}

// Contains returns true if dl contains d.
func (dl DateList) Contains(d Date) bool {
	return dl.Index(d) >= 0
}

func (dl DateList) String() string {
	var out strings.Builder
	for i, d := range dl {
		if i > 0 {
			out.WriteString(", ")
		}
		out.WriteString(d.String())
	}
	return out.String()
}

// Parse parses a comma separated list of dates, see ParseDate.
func (dl *DateList) Parse(val string) error {
	if len(val) == 0 {
		return nil
	}
	parts := strings.Split(val, ",")
	d := make(DateList, 0, len(parts))
	for _, part := range parts {
		date, err := ParseDate(strings.TrimSpace(part))
		if err != nil {
			return err
		}
		d = append(d, date)
	}
	*dl = d
	return nil
}
