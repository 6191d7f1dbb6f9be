// Copyright (C) 2025 Alemaksus
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at <https://mozilla.org/MPL/2.0/>.

package reporting

import (
	"bytes"
	"testing"

	"github.com/Alemaksus/conversational-ai-qa-framework/matrix"
	"github.com/Alemaksus/conversational-ai-qa-framework/runner"
	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/require"
)

var mockResults = runner.Results{
	{
		Case: matrix.Case{
			TestCaseID: "TC-001",
			Component:  "Checkout",
			Priority:   "High",
		},
		Result: runner.ExecutionResult{
			TraceID:      "01ARZ3NDEKTSV4RRFFQ69G5FA1",
			TestCaseID:   "TC-001",
			Status:       runner.Pass,
			Details:      "All rules passed",
			AppliedRules: []string{"NOT_EMPTY", "CONTAINS"},
		},
	},
	{
		Case: matrix.Case{
			TestCaseID: "TC-002",
			Component:  "Checkout | Cart",
			Priority:   "High",
		},
		Result: runner.ExecutionResult{
			TraceID:       "01ARZ3NDEKTSV4RRFFQ69G5FA2",
			TestCaseID:    "TC-002",
			Status:        runner.Fail,
			Details:       "CONTAINS: Response text does not contain 'confirmation'",
			AppliedRules:  []string{"NOT_EMPTY", "CONTAINS"},
			FailedReasons: []string{"CONTAINS: Response text does not contain 'confirmation'"},
		},
	},
	{
		Case: matrix.Case{
			TestCaseID: "TC-003",
			Component:  "Search",
			Priority:   "Medium",
		},
		Result: runner.ExecutionResult{
			TraceID:    "01ARZ3NDEKTSV4RRFFQ69G5FA3",
			TestCaseID: "TC-003",
			Status:     runner.Blocked,
			Details:    "No actual output provided",
		},
	},
}

// assertFormatterGolden writes the results through the formatter and
// compares the output against the named golden file.
func assertFormatterGolden(t *testing.T, formatter Formatter, results runner.Results, name string) {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, formatter.Write(results, &buf))
	g := goldie.New(t,
		goldie.WithFixtureDir("testdata"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, name, buf.Bytes())
}
