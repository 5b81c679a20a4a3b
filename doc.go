// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package jalali provides support for working with dates in the Jalali
// (Persian, solar Hijri) calendar at day-level precision.
//
// A Date is an immutable year, month and day value; all arithmetic returns
// a new Date. Dates are only created via NewDate, ParseDate or DateFromTime
// and are validated on creation, an invalid date is reported via an error
// that wraps ErrInvalidDate rather than being silently normalized.
//
// The Calendar interface captures the operations needed by calendar
// displays (first and last days of a month, weekday, month arithmetic,
// comparison and formatting). Persian is the implementation backed by
// github.com/yaa110/go-persian-calendar. Weekdays are numbered as per
// time.Weekday, ie. Sunday is 0 and Saturday, the first day of the Persian
// week, is 6.
//
// Conversion to the Gregorian calendar is provided via Date.Time and
// Date.Gregorian, the latter returning a cloudeng.io/datetime.CalendarDate.
package jalali
