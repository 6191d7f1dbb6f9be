// Copyright (C) 2025 Alemaksus
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at <https://mozilla.org/MPL/2.0/>.

// Package logging owns construction of the application's zerolog loggers
// and common log-value formatting helpers.
package logging

import (
	"io"
	"strconv"
	"time"

	"github.com/rs/zerolog"
)

// UnknownLogValue is the placeholder text used when logging nil or unknown values.
const UnknownLogValue = "<unknown>"

// NewConsoleWriter returns a human-readable zerolog writer on out.
// File-bound writers should disable color so logs stay plain text.
func NewConsoleWriter(out io.Writer, noColor bool) io.Writer {
	return zerolog.NewConsoleWriter(func(w *zerolog.ConsoleWriter) {
		w.Out = out
		w.TimeFormat = time.DateTime
		w.NoColor = noColor
	})
}

// NewLogger returns a timestamped logger writing to all given writers at
// the given level.
func NewLogger(level zerolog.Level, writers ...io.Writer) zerolog.Logger {
	return zerolog.New(zerolog.MultiLevelWriter(writers...)).Level(level).With().Timestamp().Logger()
}

// LevelFromFlags maps the CLI verbosity flags to a zerolog level.
func LevelFromFlags(verbose bool, debug bool) zerolog.Level {
	if debug {
		return zerolog.TraceLevel
	} else if verbose {
		return zerolog.DebugLevel
	}
	return zerolog.InfoLevel
}

// FormatLogInt64 formats an optional int64 value for logging.
// If the pointer is nil, it returns a placeholder value.
func FormatLogInt64(value *int64) string {
	if value != nil {
		return strconv.FormatInt(*value, 10)
	}
	return UnknownLogValue
}

// FormatLogInt formats an optional int value for logging.
// If the pointer is nil, it returns a placeholder value.
func FormatLogInt(value *int) string {
	if value != nil {
		return strconv.Itoa(*value)
	}
	return UnknownLogValue
}
