// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"

	"cloudeng.io/errors"
	"cloudeng.io/jalali"
	"cloudeng.io/jalali/picker"
)

func init() {
	// today is 1403/07/15.
	now := time.Date(2024, 10, 6, 12, 0, 0, 0, time.UTC)
	clock = func() time.Time { return now }
}

func testConfig() Config {
	cfg := defaultConfig()
	cfg.Location = "UTC"
	cfg.WeekdayLabels = picker.LatinWeekdayLabels
	return cfg
}

func TestDisplayMonth(t *testing.T) {
	ctx := context.Background()
	var out strings.Builder
	if err := displayMonth(ctx, &out, testConfig(), nil); err != nil {
		t.Fatal(err)
	}
	want := `مهر 1403
 Sh  Ye  Do  Se  Ch  Pa  Jo
(31)  1   2   3   4   5   6
  7   8   9  10  11  12  13
 14 *15* 16  17  18  19  20
 21  22  23  24  25  26  27
 28  29  30 ( 1)( 2)( 3)( 4)
`
	if got := out.String(); got != want {
		t.Errorf("got\n%v\nwant\n%v", got, want)
	}

	out.Reset()
	if err := displayMonth(ctx, &out, testConfig(), []string{"1404/01"}); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if got, want := lines[0], "فروردین 1404"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	// Six weeks plus the header and labels.
	if got, want := len(lines), 8; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := lines[2], "(25)(26)(27)(28)(29)(30)  1"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}

	if err := displayMonth(ctx, &out, testConfig(), []string{"1404/13"}); !errors.Is(err, jalali.ErrInvalidDate) {
		t.Errorf("expected ErrInvalidDate, got %v", err)
	}
}

func TestReplayClicks(t *testing.T) {
	ctx := context.Background()
	cfg := testConfig()
	cfg.Mode = picker.Range
	var out strings.Builder
	if err := replayClicks(ctx, &out, cfg, "", []string{"1403/07/20", "Mehr-17-1403"}); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(out.String(), "\n")
	if got, want := lines[4], " 14 *15* 16 <17][18][19][20>"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
	if got, want := lines[7], "Range: 1403/07/17 - 1403/07/20"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}

	// Navigating to another month displays none of the selection.
	out.Reset()
	if err := replayClicks(ctx, &out, cfg, "1403/08", []string{"1403/07/20", "1403/07/17"}); err != nil {
		t.Fatal(err)
	}
	if strings.ContainsAny(strings.TrimSuffix(out.String(), "Range: 1403/07/17 - 1403/07/20\n"), "[]<>") {
		t.Errorf("unexpected selection in: %v", out.String())
	}

	cfg.Mode = picker.Single
	cfg.DateFormat = "dd MMM yyyy"
	out.Reset()
	if err := replayClicks(ctx, &out, cfg, "", []string{"1403/09/03"}); err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(out.String(), "آذر 1403\n") {
		t.Errorf("unexpected header: %v", out.String())
	}
	if !strings.HasSuffix(out.String(), "Selected: 03 آذر 1403\n") {
		t.Errorf("unexpected summary: %v", out.String())
	}

	pcfg := cfg
	pcfg.PersianDigits = true
	out.Reset()
	if err := replayClicks(ctx, &out, pcfg, "", []string{"1403/09/03"}); err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(out.String(), "آذر ۱۴۰۳\n") {
		t.Errorf("unexpected header: %v", out.String())
	}
	if !strings.HasSuffix(out.String(), "Selected: ۰۳ آذر ۱۴۰۳\n") {
		t.Errorf("unexpected summary: %v", out.String())
	}

	err := replayClicks(ctx, &out, cfg, "", []string{"1403/13/01", "1403/07/01", "tomorrow"})
	if !errors.Is(err, jalali.ErrInvalidDate) {
		t.Fatalf("expected ErrInvalidDate, got %v", err)
	}
	var m *errors.M
	if !errors.As(err, &m) {
		t.Fatalf("expected an errors.M, got %T", err)
	}
	if got, want := len(m.Unwrap()), 2; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestSummaryWrapping(t *testing.T) {
	cfg := testConfig()
	cfg.Mode = picker.Multiple
	args := []string{}
	for day := 1; day <= 12; day++ {
		args = append(args, jalali.MustNewDate(1403, jalali.Mehr, day).String())
	}
	var out strings.Builder
	if err := replayClicks(context.Background(), &out, cfg, "", args); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	summary := lines[7:]
	if len(summary) < 2 {
		t.Fatalf("expected a wrapped summary: %q", summary)
	}
	if !strings.HasPrefix(summary[0], "Selected: 1403/07/01, 1403/07/02,") {
		t.Errorf("unexpected summary: %q", summary[0])
	}
	for _, l := range summary {
		if len(l) > summaryWidth+11 {
			t.Errorf("line too long: %q", l)
		}
	}
	for _, l := range summary[1:] {
		if !strings.HasPrefix(l, strings.Repeat(" ", len("Selected: "))+"1403/") {
			t.Errorf("unexpected continuation line: %q", l)
		}
	}
}

func TestParseDates(t *testing.T) {
	dates, err := parseDates([]string{"1403/07/20", "1403-01-01", "esfand-30-1403"})
	if err != nil {
		t.Fatal(err)
	}
	want := jalali.DateList{
		jalali.MustNewDate(1403, jalali.Mehr, 20),
		jalali.MustNewDate(1403, jalali.Farvardin, 1),
		jalali.MustNewDate(1403, jalali.Esfand, 30),
	}
	if !reflect.DeepEqual(dates, want) {
		t.Errorf("got %v, want %v", dates, want)
	}
	// 1404 is not a leap year.
	if _, err := parseDates([]string{"1404/12/30"}); !errors.Is(err, jalali.ErrInvalidDate) {
		t.Errorf("expected ErrInvalidDate, got %v", err)
	}
}

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	filename := filepath.Join(t.TempDir(), "jcal.yaml")
	if err := os.WriteFile(filename, []byte(contents), 0600); err != nil {
		t.Fatal(err)
	}
	return filename
}

func TestLoadConfig(t *testing.T) {
	ctx := context.Background()
	cfg, err := loadConfig(ctx, "")
	if err != nil {
		t.Fatal(err)
	}
	if got, want := cfg, defaultConfig(); !reflect.DeepEqual(got, want) {
		t.Errorf("got %+v, want %+v", got, want)
	}

	filename := writeConfig(t, `mode: range
weekday_labels: [Sh, Ye, Do, Se, Ch, Pa, Jo]
date_format: dd MMM
persian_digits: true
location: Asia/Tehran
address: localhost:9000
`)
	cfg, err = loadConfig(ctx, filename)
	if err != nil {
		t.Fatal(err)
	}
	want := defaultConfig()
	want.Mode = picker.Range
	want.WeekdayLabels = []string{"Sh", "Ye", "Do", "Se", "Ch", "Pa", "Jo"}
	want.DateFormat = "dd MMM"
	want.PersianDigits = true
	want.Location = "Asia/Tehran"
	want.Address = "localhost:9000"
	if !reflect.DeepEqual(cfg, want) {
		t.Errorf("got %+v, want %+v", cfg, want)
	}

	for _, spec := range []string{
		"mode: weekly\n",
		"mode: [range]\n",
		"colour: blue\n",
		"weekday_labels: [a, b]\n",
		"location: Nowhere/Special\n",
	} {
		if _, err := loadConfig(ctx, writeConfig(t, spec)); err == nil {
			t.Errorf("%q: expected an error", spec)
		}
	}
}

func TestValidateConfig(t *testing.T) {
	cfg := Config{
		Mode:          picker.Mode(7),
		WeekdayLabels: []string{"a"},
		Location:      "Nowhere/Special",
	}
	err := cfg.Validate()
	if !errors.Is(err, picker.ErrUnknownMode) {
		t.Fatalf("expected ErrUnknownMode, got %v", err)
	}
	var m *errors.M
	if !errors.As(err, &m) {
		t.Fatalf("expected an errors.M, got %T", err)
	}
	if got, want := len(m.Unwrap()), 5; got != want {
		t.Errorf("got %v, want %v: %v", got, want, err)
	}
	if err := testConfig().Validate(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestRunServer(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cfg := testConfig()
	cfg.Address = "127.0.0.1:0"
	errCh := make(chan error, 1)
	go func() {
		errCh <- runServer(ctx, cfg)
	}()
	cancel()
	if err := <-errCh; err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}
