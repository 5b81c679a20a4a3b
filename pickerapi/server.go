// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package pickerapi

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"cloudeng.io/jalali"
	"cloudeng.io/jalali/picker"
	"cloudeng.io/logging/ctxlog"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Server implements the picker's JSON API. It holds no selection state,
// each request carries the selection it applies to.
type Server struct {
	cal           jalali.Calendar
	labels        []string
	datePattern   string
	headerPattern string
}

// Option represents an option to NewServer.
type Option func(*Server)

// WithLabels sets the weekday labels returned with each grid, starting
// with Saturday.
func WithLabels(labels []string) Option {
	return func(s *Server) {
		s.labels = labels
	}
}

// WithDatePattern sets the layout used to format dates in summaries.
func WithDatePattern(pattern string) Option {
	return func(s *Server) {
		s.datePattern = pattern
	}
}

// WithHeaderPattern sets the layout used to format the month header.
func WithHeaderPattern(pattern string) Option {
	return func(s *Server) {
		s.headerPattern = pattern
	}
}

// NewServer returns a new Server that uses cal.
func NewServer(cal jalali.Calendar, opts ...Option) *Server {
	s := &Server{
		cal:           cal,
		labels:        picker.WeekdayLabels,
		datePattern:   picker.DatePattern,
		headerPattern: picker.HeaderPattern,
	}
	for _, fn := range opts {
		fn(s)
	}
	return s
}

var (
	gridEndpoint       = Endpoint[GridRequest, GridResponse]{}
	transitionEndpoint = Endpoint[TransitionRequest, TransitionResponse]{}
)

// Handler returns an http.Handler for the API.
func (s *Server) Handler() http.Handler {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer, logRequests)
	s.Routes(router)
	return router
}

// Routes registers the API endpoints with router:
//
//	GET  /api/grid?month=yyyy/MM
//	POST /api/grid
//	POST /api/transition
func (s *Server) Routes(router chi.Router) {
	router.Get("/api/grid", s.getGrid)
	router.Post("/api/grid", s.postGrid)
	router.Post("/api/transition", s.transition)
}

func logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(rw http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(rw, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		ctxlog.Logger(r.Context()).Info("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"bytes", ww.BytesWritten(),
			"duration", time.Since(start))
	})
}

func (s *Server) writeError(rw http.ResponseWriter, r *http.Request, err error) {
	if !IsClientError(err) {
		ctxlog.Logger(r.Context()).Error("request failed", "path", r.URL.Path, "error", err)
		WriteErrorMsg(rw, "internal error", http.StatusInternalServerError)
		return
	}
	ctxlog.Logger(r.Context()).Info("bad request", "path", r.URL.Path, "error", err)
	WriteErrorMsg(rw, err.Error(), http.StatusBadRequest)
}

func (s *Server) getGrid(rw http.ResponseWriter, r *http.Request) {
	resp, err := s.grid(GridRequest{Month: r.URL.Query().Get("month")})
	if err != nil {
		s.writeError(rw, r, err)
		return
	}
	gridEndpoint.WriteResponse(rw, resp) //nolint:errcheck
}

func (s *Server) postGrid(rw http.ResponseWriter, r *http.Request) {
	var req GridRequest
	if err := gridEndpoint.ParseRequest(rw, r, &req); err != nil {
		ctxlog.Logger(r.Context()).Info("bad request", "path", r.URL.Path, "error", err)
		return
	}
	resp, err := s.grid(req)
	if err != nil {
		s.writeError(rw, r, err)
		return
	}
	gridEndpoint.WriteResponse(rw, resp) //nolint:errcheck
}

func (s *Server) transition(rw http.ResponseWriter, r *http.Request) {
	var req TransitionRequest
	if err := transitionEndpoint.ParseRequest(rw, r, &req); err != nil {
		ctxlog.Logger(r.Context()).Info("bad request", "path", r.URL.Path, "error", err)
		return
	}
	resp, err := s.click(req)
	if err != nil {
		s.writeError(rw, r, err)
		return
	}
	transitionEndpoint.WriteResponse(rw, resp) //nolint:errcheck
}

func (s *Server) formatDate(d jalali.Date) string {
	return s.cal.Format(d, s.datePattern)
}

// monthOf returns d's month as yyyy/MM, or the empty string if d is
// not a valid date.
func monthOf(d jalali.Date) string {
	if d.Validate() != nil {
		return ""
	}
	return d.Format("yyyy/MM")
}

func (s *Server) grid(req GridRequest) (GridResponse, error) {
	ref := s.cal.StartOfMonth(s.cal.Today())
	if len(req.Month) > 0 {
		var err error
		if ref, err = jalali.ParseYearMonth(req.Month); err != nil {
			return GridResponse{}, err
		}
	}
	var sel picker.Selection
	if req.Selection != nil {
		var err error
		if sel, err = req.Selection.Selection(); err != nil {
			return GridResponse{}, err
		}
	}
	cells, err := picker.Cells(s.cal, ref, sel)
	if err != nil {
		return GridResponse{}, err
	}
	resp := GridResponse{
		Month:    ref.Format("yyyy/MM"),
		Header:   s.cal.Format(ref, s.headerPattern),
		Previous: monthOf(s.cal.SubtractMonths(ref, 1)),
		Next:     monthOf(s.cal.AddMonths(ref, 1)),
		Labels:   s.labels,
		Cells:    make([]CellJSON, len(cells)),
	}
	for i, c := range cells {
		resp.Cells[i] = CellJSON{
			Date:     c.Date,
			Day:      s.cal.DayOfMonth(c.Date),
			InMonth:  c.InMonth,
			Today:    c.Today,
			Selected: c.Selected,
			IsStart:  c.IsStart,
			IsEnd:    c.IsEnd,
		}
	}
	if sel != nil {
		resp.Summary = picker.Summary(sel, s.formatDate)
	}
	return resp, nil
}

func (s *Server) click(req TransitionRequest) (TransitionResponse, error) {
	mode, err := requiredMode(req.Mode, "transition")
	if err != nil {
		return TransitionResponse{}, err
	}
	if req.Clicked.IsZero() {
		return TransitionResponse{}, fmt.Errorf("%w: no date was clicked", jalali.ErrInvalidDate)
	}
	sel := picker.Initial(mode, s.cal.Today())
	if req.Selection != nil {
		if sel, err = req.Selection.Selection(); err != nil {
			return TransitionResponse{}, err
		}
	}
	reset := picker.Cancels(sel, req.Clicked)
	next, err := picker.Transition(sel, mode, req.Clicked)
	if err != nil {
		return TransitionResponse{}, err
	}
	return TransitionResponse{
		Selection: EncodeSelection(next),
		Summary:   picker.Summary(next, s.formatDate),
		Dates:     picker.Dates(next),
		Reset:     reset,
	}, nil
}

// IsClientError returns true if err is the result of an invalid request.
func IsClientError(err error) bool {
	return errors.Is(err, jalali.ErrInvalidDate) ||
		errors.Is(err, picker.ErrInconsistentModeState) ||
		errors.Is(err, picker.ErrUnknownMode)
}
