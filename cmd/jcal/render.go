// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"strings"

	"cloudeng.io/jalali/picker"
	"cloudeng.io/text/linewrap"
)

const summaryWidth = 72

// cellText returns the four character rendering of a cell:
//
//	" 5 "  a day in the displayed month
//	"( 5)" a day in an adjacent month
//	"* 5*" today
//	"[ 5]" a selected day
//	"< 5]" the start of a range
//	"[ 5>" the end of a range
func cellText(c picker.Cell) string {
	day := c.Date.Day()
	switch {
	case c.IsStart && c.IsEnd:
		return fmt.Sprintf("<%2d>", day)
	case c.IsStart:
		return fmt.Sprintf("<%2d]", day)
	case c.IsEnd:
		return fmt.Sprintf("[%2d>", day)
	case c.Selected:
		return fmt.Sprintf("[%2d]", day)
	case c.Today:
		return fmt.Sprintf("*%2d*", day)
	case !c.InMonth:
		return fmt.Sprintf("(%2d)", day)
	}
	return fmt.Sprintf(" %2d ", day)
}

// renderGrid writes the month header, weekday labels and one line per
// week of the displayed month. Trailing spaces are trimmed.
func renderGrid(out io.Writer, p *picker.Picker, labels []string) error {
	cells, err := p.Cells()
	if err != nil {
		return err
	}
	var sb, line strings.Builder
	endLine := func() {
		sb.WriteString(strings.TrimRight(line.String(), " "))
		sb.WriteByte('\n')
		line.Reset()
	}
	line.WriteString(p.Header())
	endLine()
	for _, l := range labels {
		fmt.Fprintf(&line, " %-3s", l)
	}
	endLine()
	for i, c := range cells {
		line.WriteString(cellText(c))
		if i%7 == 6 {
			endLine()
		}
	}
	_, err = io.WriteString(out, sb.String())
	return err
}

// summaryLine returns the summary of the current selection prefixed
// with "Range: " for Range mode and "Selected: " otherwise, wrapped to
// summaryWidth with continuation lines aligned after the prefix.
func summaryLine(p *picker.Picker) string {
	prefix := "Selected: "
	if p.Mode() == picker.Range {
		prefix = "Range: "
	}
	return linewrap.Paragraph(0, len(prefix), summaryWidth, prefix+p.Summary())
}
