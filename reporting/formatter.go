// Copyright (C) 2025 Alemaksus
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at <https://mozilla.org/MPL/2.0/>.

// Package reporting provides output formatting for execution results.
// It supports JUnit XML, Markdown, and plain-text summary formats; the
// execution core only produces results, the formatters here decide how
// they are rendered.
package reporting

import (
	"errors"
	"io"

	"github.com/Alemaksus/conversational-ai-qa-framework/runner"
)

// ErrWriteReport indicates that result formatting failed.
var ErrWriteReport = errors.New("failed to write report")

// Formatter handles converting results into a specific output format.
type Formatter interface {
	// FileExt returns the formatter's file extension.
	FileExt() string
	// Write outputs formatted results to the writer.
	Write(results runner.Results, out io.Writer) error
}
