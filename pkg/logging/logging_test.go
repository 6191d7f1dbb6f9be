// Copyright (C) 2025 Alemaksus
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at <https://mozilla.org/MPL/2.0/>.

package logging

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestLevelFromFlags(t *testing.T) {
	assert.Equal(t, zerolog.InfoLevel, LevelFromFlags(false, false))
	assert.Equal(t, zerolog.DebugLevel, LevelFromFlags(true, false))
	assert.Equal(t, zerolog.TraceLevel, LevelFromFlags(false, true))
	assert.Equal(t, zerolog.TraceLevel, LevelFromFlags(true, true))
}

func TestNewLoggerWritesToAllWriters(t *testing.T) {
	var first bytes.Buffer
	var second bytes.Buffer

	logger := NewLogger(zerolog.InfoLevel, &first, &second)
	logger.Info().Msg("case finished")

	assert.Contains(t, first.String(), "case finished")
	assert.Contains(t, second.String(), "case finished")
}

func TestNewLoggerFiltersBelowLevel(t *testing.T) {
	var out bytes.Buffer

	logger := NewLogger(zerolog.InfoLevel, &out)
	logger.Debug().Msg("rule evaluation detail")

	assert.Empty(t, out.String())
}

func TestNewConsoleWriterPlainOutput(t *testing.T) {
	var out bytes.Buffer

	logger := NewLogger(zerolog.InfoLevel, NewConsoleWriter(&out, true))
	logger.Info().Str("case", "TC-001").Msg("case finished")

	contents := out.String()
	assert.Contains(t, contents, "case finished")
	assert.Contains(t, contents, "TC-001")
	assert.NotContains(t, contents, "\x1b[")
}

func TestFormatLogInt64(t *testing.T) {
	value := int64(240)
	assert.Equal(t, "240", FormatLogInt64(&value))
	assert.Equal(t, UnknownLogValue, FormatLogInt64(nil))
}

func TestFormatLogInt(t *testing.T) {
	value := 200
	assert.Equal(t, "200", FormatLogInt(&value))
	assert.Equal(t, UnknownLogValue, FormatLogInt(nil))
}
