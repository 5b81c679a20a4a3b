// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"cloudeng.io/cmdutil/signals"
	"cloudeng.io/errors"
	"cloudeng.io/jalali"
	"cloudeng.io/jalali/picker"
	"cloudeng.io/jalali/pickerapi"
	"cloudeng.io/logging/ctxlog"
)

// clock is used as the calendar's clock when non-nil.
var clock func() time.Time

func month(ctx context.Context, values any, args []string) error {
	fv := values.(*monthFlags)
	ctx, cfg, done, err := fv.setup(ctx)
	if err != nil {
		return err
	}
	defer done()
	return displayMonth(ctx, os.Stdout, cfg, args)
}

func displayMonth(_ context.Context, out io.Writer, cfg Config, args []string) error {
	cal, err := cfg.Calendar(clock)
	if err != nil {
		return err
	}
	// An empty Multiple selection highlights nothing but today.
	p, err := cfg.Picker(cal, picker.Multiple)
	if err != nil {
		return err
	}
	if len(args) == 1 {
		ref, err := jalali.ParseYearMonth(args[0])
		if err != nil {
			return err
		}
		if err := p.SetReference(ref); err != nil {
			return err
		}
	}
	return renderGrid(out, p, cfg.WeekdayLabels)
}

func selectDates(ctx context.Context, values any, args []string) error {
	fv := values.(*selectFlags)
	ctx, cfg, done, err := fv.setup(ctx)
	if err != nil {
		return err
	}
	defer done()
	if len(fv.Mode) > 0 {
		if cfg.Mode, err = picker.ParseMode(fv.Mode); err != nil {
			return err
		}
	}
	return replayClicks(ctx, os.Stdout, cfg, fv.Month, args)
}

// parseDates parses all of args, reporting every invalid date.
func parseDates(args []string) (jalali.DateList, error) {
	var errs errors.M
	dates := make(jalali.DateList, 0, len(args))
	for _, arg := range args {
		d, err := jalali.ParseDate(arg)
		if err != nil {
			errs.Append(err)
			continue
		}
		dates = append(dates, d)
	}
	return dates, errs.Err()
}

// replayClicks clicks on each of the dates in args in turn and then
// displays the resulting selection.
func replayClicks(ctx context.Context, out io.Writer, cfg Config, monthArg string, args []string) error {
	dates, err := parseDates(args)
	if err != nil {
		return err
	}
	cal, err := cfg.Calendar(clock)
	if err != nil {
		return err
	}
	p, err := cfg.Picker(cal, cfg.Mode)
	if err != nil {
		return err
	}
	if len(monthArg) > 0 {
		ref, err := jalali.ParseYearMonth(monthArg)
		if err != nil {
			return err
		}
		if err := p.SetReference(ref); err != nil {
			return err
		}
	}
	logger := ctxlog.Logger(ctx)
	for _, d := range dates {
		if err := p.Click(d); err != nil {
			return err
		}
		logger.Debug("click", "date", d.String(), "selection", p.Summary())
	}
	if err := renderGrid(out, p, cfg.WeekdayLabels); err != nil {
		return err
	}
	_, err = fmt.Fprintln(out, summaryLine(p))
	return err
}

func serve(ctx context.Context, values any, _ []string) error {
	fv := values.(*serveFlags)
	ctx, cfg, done, err := fv.setup(ctx)
	if err != nil {
		return err
	}
	defer done()
	if len(fv.Address) > 0 {
		cfg.Address = fv.Address
	}
	ctx, _ = signals.NotifyWithCancel(ctx, signals.Defaults()...)
	return runServer(ctx, cfg)
}

func runServer(ctx context.Context, cfg Config) error {
	cal, err := cfg.Calendar(clock)
	if err != nil {
		return err
	}
	api := pickerapi.NewServer(cal,
		pickerapi.WithLabels(cfg.WeekdayLabels),
		pickerapi.WithDatePattern(cfg.DateFormat),
		pickerapi.WithHeaderPattern(cfg.HeaderFormat))
	ln, srv, err := pickerapi.NewHTTPServer(ctx, cfg.Address, api.Handler())
	if err != nil {
		return err
	}
	ctxlog.Logger(ctx).Info("serving", "addr", ln.Addr().String(), "location", cal.Location().String())
	return pickerapi.ServeWithShutdown(ctx, ln, srv, 5*time.Second)
}
