// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package pickerapi

import (
	"fmt"

	"cloudeng.io/jalali"
	"cloudeng.io/jalali/picker"
)

// SelectionJSON is the wire form of a picker.Selection. Mode is required
// and only the fields for that mode may be set: Date for single, Dates
// for multiple and Start and End for range. Dates are encoded as
// yyyy/MM/dd and an absent date as the empty string or by omission.
type SelectionJSON struct {
	Mode  *picker.Mode    `json:"mode"`
	Date  jalali.Date     `json:"date,omitzero"`
	Dates jalali.DateList `json:"dates,omitzero"`
	Start jalali.Date     `json:"start,omitzero"`
	End   jalali.Date     `json:"end,omitzero"`
}

// EncodeSelection returns the wire form of sel.
func EncodeSelection(sel picker.Selection) SelectionJSON {
	switch s := sel.(type) {
	case picker.SingleSelection:
		return SelectionJSON{Mode: modeRef(picker.Single), Date: s.Date}
	case picker.MultipleSelection:
		return SelectionJSON{Mode: modeRef(picker.Multiple), Dates: s.Dates}
	case picker.RangeSelection:
		return SelectionJSON{Mode: modeRef(picker.Range), Start: s.Start, End: s.End}
	}
	return SelectionJSON{}
}

func modeRef(m picker.Mode) *picker.Mode {
	return &m
}

// requiredMode returns the mode named by m, which must be present.
func requiredMode(m *picker.Mode, what string) (picker.Mode, error) {
	if m == nil {
		return 0, fmt.Errorf("%w: %s has no mode", picker.ErrUnknownMode, what)
	}
	if !m.Valid() {
		return 0, fmt.Errorf("%w: %v", picker.ErrUnknownMode, *m)
	}
	return *m, nil
}

// Selection returns the picker.Selection represented by sj. It returns
// an error wrapping picker.ErrUnknownMode if the mode is missing or not
// known and one wrapping picker.ErrInconsistentModeState if fields
// belonging to another mode are set or the selection is not valid for
// its mode.
func (sj SelectionJSON) Selection() (picker.Selection, error) {
	mode, err := requiredMode(sj.Mode, "selection")
	if err != nil {
		return nil, err
	}
	var sel picker.Selection
	var extra bool
	switch mode {
	case picker.Single:
		sel = picker.SingleSelection{Date: sj.Date}
		extra = len(sj.Dates) > 0 || !sj.Start.IsZero() || !sj.End.IsZero()
	case picker.Multiple:
		sel = picker.MultipleSelection{Dates: sj.Dates}
		extra = !sj.Date.IsZero() || !sj.Start.IsZero() || !sj.End.IsZero()
	case picker.Range:
		sel = picker.RangeSelection{Start: sj.Start, End: sj.End}
		extra = !sj.Date.IsZero() || len(sj.Dates) > 0
	}
	if extra {
		return nil, fmt.Errorf("%w: %v selection has fields set for another mode", picker.ErrInconsistentModeState, mode)
	}
	if err := sel.Validate(); err != nil {
		return nil, err
	}
	return sel, nil
}

// CellJSON is the wire form of a picker.Cell.
type CellJSON struct {
	Date     jalali.Date `json:"date"`
	Day      int         `json:"day"`
	InMonth  bool        `json:"inMonth"`
	Today    bool        `json:"today"`
	Selected bool        `json:"selected"`
	IsStart  bool        `json:"isStart"`
	IsEnd    bool        `json:"isEnd"`
}

// GridRequest is the body of a POST to /api/grid. An empty Month displays
// the current month and a nil Selection highlights nothing.
type GridRequest struct {
	Month     string         `json:"month"`
	Selection *SelectionJSON `json:"selection,omitempty"`
}

// GridResponse describes the month grid to display.
type GridResponse struct {
	Month    string     `json:"month"`
	Header   string     `json:"header"`
	Previous string     `json:"previous,omitempty"`
	Next     string     `json:"next,omitempty"`
	Labels   []string   `json:"labels"`
	Cells    []CellJSON `json:"cells"`
	Summary  string     `json:"summary,omitempty"`
}

// TransitionRequest is the body of a POST to /api/transition. Mode is
// required and a nil Selection is the initial selection for Mode.
type TransitionRequest struct {
	Mode      *picker.Mode   `json:"mode"`
	Selection *SelectionJSON `json:"selection,omitempty"`
	Clicked   jalali.Date    `json:"clicked"`
}

// TransitionResponse contains the selection that results from a click.
// Reset is true when the click cancelled a range, in which case the
// display should return to the current month.
type TransitionResponse struct {
	Selection SelectionJSON   `json:"selection"`
	Summary   string          `json:"summary"`
	Dates     jalali.DateList `json:"dates"`
	Reset     bool            `json:"reset"`
}
