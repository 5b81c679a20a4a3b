// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package pickerapi provides a stateless JSON API over the picker package
// for use by a browser based date picker. Each request carries the
// current selection and each response the next one, so the server
// retains nothing between requests.
//
//	GET  /api/grid?month=1403/07      the grid for Mehr 1403
//	POST /api/grid                    the grid with a selection highlighted
//	POST /api/transition              the selection after a click
//
// A transition request looks like:
//
//	{"mode":"range","selection":{"mode":"range","start":"1403/07/05"},"clicked":"1403/07/09"}
//
// Errors are returned as {"message": "..."} with a 400 status for
// invalid requests.
package pickerapi
