// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"time"

	"cloudeng.io/cmdutil/cmdyaml"
	"cloudeng.io/errors"
	"cloudeng.io/jalali"
	"cloudeng.io/jalali/picker"
	ptime "github.com/yaa110/go-persian-calendar"
)

// Config represents the optional YAML configuration file, eg:
//
//	mode: range
//	weekday_labels: [Sh, Ye, Do, Se, Ch, Pa, Jo]
//	date_format: dd MMM yyyy
//	header_format: MMM yyyy
//	persian_digits: true
//	location: UTC
//	address: localhost:8080
type Config struct {
	Mode          picker.Mode `yaml:"mode"`
	WeekdayLabels []string    `yaml:"weekday_labels"`
	DateFormat    string      `yaml:"date_format"`
	HeaderFormat  string      `yaml:"header_format"`
	PersianDigits bool        `yaml:"persian_digits"`
	Location      string      `yaml:"location"`
	Address       string      `yaml:"address"`
}

func defaultConfig() Config {
	return Config{
		Mode:          picker.Single,
		WeekdayLabels: picker.WeekdayLabels,
		DateFormat:    picker.DatePattern,
		HeaderFormat:  picker.HeaderPattern,
		Address:       ":8080",
	}
}

// loadConfig returns the default configuration overridden by the contents
// of filename, if specified.
func loadConfig(ctx context.Context, filename string) (Config, error) {
	cfg := defaultConfig()
	if len(filename) == 0 {
		return cfg, nil
	}
	if err := cmdyaml.ParseConfigFileStrict(ctx, filename, &cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("%v: %w", filename, err)
	}
	return cfg, nil
}

// Validate reports all of the problems with the configuration.
func (c Config) Validate() error {
	var errs errors.M
	if !c.Mode.Valid() {
		errs.Append(fmt.Errorf("%w: %v", picker.ErrUnknownMode, c.Mode))
	}
	if n := len(c.WeekdayLabels); n != 7 {
		errs.Append(fmt.Errorf("weekday_labels: expected 7 labels, got %d", n))
	}
	if len(c.DateFormat) == 0 {
		errs.Append(fmt.Errorf("date_format: must not be empty"))
	}
	if len(c.HeaderFormat) == 0 {
		errs.Append(fmt.Errorf("header_format: must not be empty"))
	}
	if _, err := c.location(); err != nil {
		errs.Append(err)
	}
	return errs.Err()
}

func (c Config) location() (*time.Location, error) {
	if len(c.Location) == 0 {
		return ptime.Iran(), nil
	}
	loc, err := time.LoadLocation(c.Location)
	if err != nil {
		return nil, fmt.Errorf("location: %w", err)
	}
	return loc, nil
}

// Calendar returns the calendar for the configured location and digits,
// using now as its clock if non-nil.
func (c Config) Calendar(now func() time.Time) (*jalali.Persian, error) {
	loc, err := c.location()
	if err != nil {
		return nil, err
	}
	opts := []jalali.CalendarOption{jalali.WithLocation(loc)}
	if now != nil {
		opts = append(opts, jalali.WithClock(now))
	}
	if c.PersianDigits {
		opts = append(opts, jalali.WithPersianDigits())
	}
	return jalali.NewCalendar(opts...), nil
}

// Picker returns a new picker for mode configured with the date and
// header formats.
func (c Config) Picker(cal jalali.Calendar, mode picker.Mode) (*picker.Picker, error) {
	return picker.New(cal, mode,
		picker.WithDatePattern(c.DateFormat),
		picker.WithHeaderPattern(c.HeaderFormat))
}
