// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package picker

import (
	"strings"

	"cloudeng.io/jalali"
)

const (
	// DatePattern is the default layout used for dates in summaries.
	DatePattern = "yyyy/MM/dd"
	// HeaderPattern is the default layout used for the month header.
	HeaderPattern = "MMM yyyy"
)

// Summary returns a human readable summary of sel:
//
//   - Single: the selected date.
//   - Multiple: the selected dates, in selection order, separated by ", ".
//   - Range: "<start> - <end>" with an empty string for a missing start or end.
//
// format is used to format each date, if nil Date.String is used.
func Summary(sel Selection, format func(jalali.Date) string) string {
	if format == nil {
		format = jalali.Date.String
	}
	switch s := sel.(type) {
	case SingleSelection:
		return format(s.Date)
	case MultipleSelection:
		parts := make([]string, len(s.Dates))
		for i, d := range s.Dates {
			parts[i] = format(d)
		}
		return strings.Join(parts, ", ")
	case RangeSelection:
		var start, end string
		if s.HasStart() {
			start = format(s.Start)
		}
		if s.HasEnd() {
			end = format(s.End)
		}
		return start + " - " + end
	}
	return ""
}
