// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package picker

import (
	"errors"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrUnknownMode is returned when parsing or using an unsupported Mode.
var ErrUnknownMode = errors.New("unknown selection mode")

// Mode represents a selection policy.
type Mode int

const (
	// Single selects exactly one date.
	Single Mode = iota
	// Multiple selects any number of discrete dates.
	Multiple
	// Range selects a contiguous range of dates.
	Range
)

var modeNames = []string{"single", "multiple", "range"}

// Valid returns true for Single, Multiple and Range.
func (m Mode) Valid() bool {
	return m >= Single && m <= Range
}

func (m Mode) String() string {
	if !m.Valid() {
		return fmt.Sprintf("Mode(%d)", int(m))
	}
	return modeNames[m]
}

// ParseMode parses one of single, multiple or range in either lower
// or upper case.
func ParseMode(val string) (Mode, error) {
	lc := strings.ToLower(strings.TrimSpace(val))
	for i, n := range modeNames {
		if n == lc {
			return Mode(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q, expected one of %s", ErrUnknownMode, val, strings.Join(modeNames, ", "))
}

// Set implements flag.Value.
func (m *Mode) Set(val string) error {
	nm, err := ParseMode(val)
	if err != nil {
		return err
	}
	*m = nm
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (m Mode) MarshalText() ([]byte, error) {
	if !m.Valid() {
		return nil, fmt.Errorf("%w: %v", ErrUnknownMode, int(m))
	}
	return []byte(m.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *Mode) UnmarshalText(text []byte) error {
	return m.Set(string(text))
}

func (m Mode) MarshalYAML() (any, error) {
	return m.String(), nil
}

func (m *Mode) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: %w: expected a scalar value", value.Line, ErrUnknownMode)
	}
	if err := m.Set(value.Value); err != nil {
		return fmt.Errorf("line %d: %w", value.Line, err)
	}
	return nil
}
