// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Command jcal displays months of the Jalali (Persian) calendar, selects
// dates within them and serves the date picker's JSON API.
package main

import (
	"context"
	"log/slog"
	_ "time/tzdata"

	"cloudeng.io/cmdutil"
	"cloudeng.io/cmdutil/subcmd"
	"cloudeng.io/jalali/picker"
	"cloudeng.io/logging/ctxlog"
)

const cmdSpec = `name: jcal
summary: display and select dates in the Jalali calendar
commands:
  - name: month
    summary: display the days of a month, the current month by default
    arguments:
      - "[yyyy/MM]"
  - name: select
    summary: |
      select dates by clicking on each of the specified dates in turn
      and display the resulting selection. Dates may be specified as
      1403/07/05, 1403-07-05 or Mehr-05-1403.
    arguments:
      - <date>
      - ...
  - name: serve
    summary: run the date picker JSON API
`

// CommonFlags are the flags shared by all commands.
type CommonFlags struct {
	cmdutil.LoggingFlags
	Config string `subcmd:"config,,'optional YAML configuration file'"`
	Latin  bool   `subcmd:"latin,false,use transliterated weekday labels"`
}

type monthFlags struct {
	CommonFlags
}

type selectFlags struct {
	CommonFlags
	Mode  string `subcmd:"mode,,'selection mode: single, multiple or range, overrides the configuration file'"`
	Month string `subcmd:"month,,'month to display, as yyyy/MM, defaults to the current month'"`
}

type serveFlags struct {
	CommonFlags
	Address string `subcmd:"address,,'address to listen on, overrides the configuration file'"`
}

var cmdSet *subcmd.CommandSetYAML

func init() {
	cmdSet = subcmd.MustFromYAML(cmdSpec)
	cmdSet.Set("month").MustRunnerAndFlags(
		month, subcmd.MustRegisteredFlagSet(&monthFlags{}))
	cmdSet.Set("select").MustRunnerAndFlags(
		selectDates, subcmd.MustRegisteredFlagSet(&selectFlags{}))
	cmdSet.Set("serve").MustRunnerAndFlags(
		serve, subcmd.MustRegisteredFlagSet(&serveFlags{}))
}

func main() {
	cmdSet.MustDispatch(context.Background())
}

// setup creates the logger requested on the command line, stores it in
// the returned context and loads the configuration file, if any. The
// returned function closes the logger.
func (cf *CommonFlags) setup(ctx context.Context) (context.Context, Config, func(), error) {
	logger, err := cf.LoggingConfig().NewLogger()
	if err != nil {
		return ctx, Config{}, nil, err
	}
	ctx = ctxlog.Context(ctx, logger.Logger)
	cfg, err := loadConfig(ctx, cf.Config)
	if err != nil {
		logger.Close()
		return ctx, Config{}, nil, err
	}
	if cf.Latin {
		cfg.WeekdayLabels = picker.LatinWeekdayLabels
	}
	ctxlog.Logger(ctx).Debug("configuration", slog.String("file", cf.Config), slog.String("mode", cfg.Mode.String()))
	return ctx, cfg, func() { logger.Close() }, nil
}
