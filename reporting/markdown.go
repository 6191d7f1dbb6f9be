// Copyright (C) 2025 Alemaksus
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at <https://mozilla.org/MPL/2.0/>.

package reporting

import (
	"embed"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"text/template"
	"time"

	"github.com/Alemaksus/conversational-ai-qa-framework/pkg/utils"
	"github.com/Alemaksus/conversational-ai-qa-framework/runner"
)

const markdownTemplateFile = "templates/markdown.tmpl"

// markdownTimestampFormat matches the generated-at header format.
const markdownTimestampFormat = "2006-01-02 15:04:05"

// markdownDetailsLimit caps the details text shown in the case table.
const markdownDetailsLimit = 53

// markdownMaxRows caps the number of rows in the case table.
const markdownMaxRows = 20

//go:embed templates/*.tmpl
var templatesFS embed.FS

// NewMarkdownFormatter creates a formatter that outputs results as a
// Markdown report with a summary, a case table, and per-failure sections.
func NewMarkdownFormatter() Formatter {
	return &markdownFormatter{
		templ: template.Must(template.ParseFS(templatesFS, markdownTemplateFile)),
		now:   time.Now,
	}
}

type markdownFormatter struct {
	templ *template.Template
	now   func() time.Time
}

// markdownView is the precomputed template input. All cell values are
// already pipe-escaped and truncated.
type markdownView struct {
	Generated string
	Total     int
	Passed    int
	Failed    int
	Blocked   int
	Rows      []markdownRow
	Truncated bool
	Shown     int
	Failures  []markdownFailure
}

type markdownRow struct {
	ID        string
	Status    string
	Component string
	Notes     string
}

type markdownFailure struct {
	ID            string
	FailedReasons []string
	AppliedRules  string
	Details       string
}

func (f markdownFormatter) FileExt() string {
	return "md"
}

func (f markdownFormatter) Write(results runner.Results, out io.Writer) error {
	if err := f.templ.ExecuteTemplate(out, filepath.Base(markdownTemplateFile), f.buildView(results)); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteReport, err)
	}
	return nil
}

func (f markdownFormatter) buildView(results runner.Results) markdownView {
	view := markdownView{
		Generated: f.now().Format(markdownTimestampFormat),
		Total:     len(results),
		Passed:    results.CountByStatus(runner.Pass),
		Failed:    results.CountByStatus(runner.Fail),
		Blocked:   results.CountByStatus(runner.Blocked),
	}

	shown := results
	if len(shown) > markdownMaxRows {
		shown = shown[:markdownMaxRows]
		view.Truncated = true
	}
	view.Shown = len(shown)
	for _, result := range shown {
		notes := "-"
		if result.Result.Details != "" {
			notes = utils.Truncate(result.Result.Details, markdownDetailsLimit)
		}
		view.Rows = append(view.Rows, markdownRow{
			ID:        escapeCell(result.Result.TestCaseID),
			Status:    escapeCell(result.Result.Status.String()),
			Component: escapeCell(result.Case.Component),
			Notes:     escapeCell(notes),
		})
	}

	for _, failure := range results.Failures() {
		view.Failures = append(view.Failures, markdownFailure{
			ID:            failure.Result.TestCaseID,
			FailedReasons: failure.Result.FailedReasons,
			AppliedRules:  strings.Join(failure.Result.AppliedRules, ", "),
			Details:       failure.Result.Details,
		})
	}
	return view
}

// escapeCell escapes pipe characters so cell content cannot break the
// Markdown table layout.
func escapeCell(value string) string {
	return strings.ReplaceAll(value, "|", "\\|")
}
