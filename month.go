// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package jalali

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	ptime "github.com/yaa110/go-persian-calendar"
)

// Month is a Jalali month, Farvardin is 1 and Esfand is 12.
type Month int

const (
	Farvardin Month = iota + 1
	Ordibehesht
	Khordad
	Tir
	Mordad
	Shahrivar
	Mehr
	Aban
	Azar
	Dey
	Bahman
	Esfand
)

var months = []string{"farvardin", "ordibehesht", "khordad", "tir", "mordad", "shahrivar", "mehr", "aban", "azar", "dey", "bahman", "esfand"}

// Valid returns true if m is in the range Farvardin to Esfand.
func (m Month) Valid() bool {
	return m >= Farvardin && m <= Esfand
}

// String returns the transliterated name of the month, eg. Farvardin.
func (m Month) String() string {
	if !m.Valid() {
		return fmt.Sprintf("Month(%d)", int(m))
	}
	n := months[m-1]
	return strings.ToUpper(n[:1]) + n[1:]
}

// Persian returns the name of the month in Persian, eg. فروردین.
func (m Month) Persian() string {
	if !m.Valid() {
		return m.String()
	}
	return ptime.Month(m).String()
}

// ParseNumericMonth parses a 1 or 2 digit numeric month value in the range 1-12.
func ParseNumericMonth(val string) (Month, error) {
	n, err := strconv.Atoi(val)
	if err != nil {
		return 0, err
	}
	if m := Month(n); m.Valid() {
		return m, nil
	}
	return 0, fmt.Errorf("invalid month: %d", n)
}

// ParseMonth parses a transliterated month name, any prefix of the
// names Farvardin to Esfand is accepted in either lower or upper case.
// The first month that matches the prefix is returned.
func ParseMonth(val string) (Month, error) {
	lc := strings.ToLower(val)
	if len(lc) == 0 {
		return 0, fmt.Errorf("invalid month: %q", val)
	}
	for i := range months {
		if strings.HasPrefix(months[i], lc) {
			return Month(i + 1), nil
		}
	}
	return 0, fmt.Errorf("invalid month: %s", val)
}

// Parse parses a month in either numeric or month name format.
func (m *Month) Parse(val string) error {
	if n, err := ParseNumericMonth(val); err == nil {
		*m = n
		return nil
	}
	n, err := ParseMonth(val)
	if err != nil {
		return err
	}
	*m = n
	return nil
}

// DaysInMonth returns the number of days in the given month for the given
// year. The first six months have 31 days, the next five have 30 and
// Esfand has 29 days, or 30 in a leap year. It returns 0 for an invalid month.
func DaysInMonth(year int, month Month) int {
	switch {
	case !month.Valid():
		return 0
	case month <= Shahrivar:
		return 31
	case month < Esfand:
		return 30
	case IsLeap(year):
		return 30
	default:
		return 29
	}
}

// IsLeap returns true if the given Jalali year is a leap year, that is,
// if Esfand has 30 days.
func IsLeap(year int) bool {
	esfand := ptime.Date(year, ptime.Esfand, 1, 12, 0, 0, 0, time.UTC).Time()
	nowruz := ptime.Date(year+1, ptime.Farvardin, 1, 12, 0, 0, 0, time.UTC).Time()
	return nowruz.Sub(esfand) == 30*24*time.Hour
}
