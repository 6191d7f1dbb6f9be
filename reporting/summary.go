// Copyright (C) 2025 Alemaksus
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at <https://mozilla.org/MPL/2.0/>.

package reporting

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/Alemaksus/conversational-ai-qa-framework/pkg/utils"
	"github.com/Alemaksus/conversational-ai-qa-framework/runner"
)

// summaryDetailsLimit caps the details column width in the summary table.
const summaryDetailsLimit = 60

// NewSummaryFormatter creates a formatter that outputs results as an
// ASCII table with one row per case plus a totals line.
func NewSummaryFormatter() Formatter {
	return &summaryFormatter{}
}

type summaryFormatter struct{}

func (f summaryFormatter) FileExt() string {
	return "summary.log"
}

func (f summaryFormatter) Write(results runner.Results, out io.Writer) error {
	tab := tabwriter.NewWriter(out, 0, 0, 1, ' ', tabwriter.Debug)
	if _, err := fmt.Fprintln(tab, "TraceID\tID\tStatus\tComponent\tDetails\t"); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteReport, err)
	}
	for _, result := range results {
		if _, err := fmt.Fprintf(tab, "%s\t%s\t%s\t%s\t%s\t\n",
			result.Result.TraceID,
			result.Result.TestCaseID,
			result.Result.Status,
			result.Case.Component,
			utils.Truncate(result.Result.Details, summaryDetailsLimit)); err != nil {
			return fmt.Errorf("%w: %v", ErrWriteReport, err)
		}
	}
	if err := tab.Flush(); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteReport, err)
	}

	if _, err := fmt.Fprintf(out, "Total: %d  PASS: %d  FAIL: %d  BLOCKED: %d\n",
		len(results),
		results.CountByStatus(runner.Pass),
		results.CountByStatus(runner.Fail),
		results.CountByStatus(runner.Blocked)); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteReport, err)
	}
	return nil
}
