// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package picker implements the state of a month-grid date picker for the
// Jalali calendar: the dates displayed for a month and the dates selected
// under one of three selection modes, Single, Multiple or Range.
//
// BuildMonthGrid returns the dates displayed for a month, always a whole
// number of Saturday-first weeks, and Cells annotates them for display.
//
// Selection is a closed sum type with one implementation per Mode.
// Transition is a pure function that returns the next Selection for a
// clicked date; IsSelected and Boundary answer the per-cell queries needed
// to render the selection. Picker bundles a Selection with the reference
// date being displayed for use by a single displaying component:
//
//	p, err := picker.New(jalali.NewCalendar(), picker.Range)
//	...
//	p.Click(start)
//	p.Click(end)
//	cells, err := p.Cells()
//	fmt.Println(p.Summary())
package picker
