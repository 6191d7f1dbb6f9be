// Copyright (C) 2025 Alemaksus
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at <https://mozilla.org/MPL/2.0/>.

package runner

import (
	"strings"

	"github.com/oklog/ulid/v2"
	"github.com/rs/zerolog"

	"github.com/Alemaksus/conversational-ai-qa-framework/matrix"
	"github.com/Alemaksus/conversational-ai-qa-framework/pkg/logging"
	"github.com/Alemaksus/conversational-ai-qa-framework/rules"
)

// Blocked-result detail messages.
const (
	detailNoActualOutput    = "No actual output provided"
	detailEmptyActualOutput = "Actual output is empty"
	detailEmptyActualText   = "Actual output text is empty"
	detailAllRulesPassed    = "All rules passed"
)

// failureReasonSeparator joins failure reasons into the details string.
const failureReasonSeparator = "; "

// Runner executes test cases by validating actual outputs against the
// rules parsed from each case's expected result. It operates on pure
// logic: it does not know or care how the actual output was produced
// (matrix column, live system, or synthetic generator).
type Runner struct {
	logger zerolog.Logger
}

// New creates a Runner that logs execution progress to the given logger.
func New(logger zerolog.Logger) *Runner {
	return &Runner{logger: logger}
}

// Options controls a batch run.
type Options struct {
	// UseSyntheticActual generates a deterministic demo output for cases
	// that have none recorded instead of classifying them as blocked.
	UseSyntheticActual bool
	// MaxFailures stops the batch early after this many failures.
	// Zero or negative means no early stop.
	MaxFailures int
}

// Run executes a single test case against its actual output and returns
// the classified result. Run never panics on malformed rule text: the
// parser degrades gracefully and a bad regex fails only its own rule.
//
// The classification is:
//  1. absent output, or output whose text trims to empty -> Blocked
//  2. every parsed rule passes -> Pass
//  3. otherwise -> Fail, with one reason per failing rule
func (r *Runner) Run(testCase matrix.Case, actual matrix.ActualOutput) ExecutionResult {
	result := ExecutionResult{
		TraceID:    ulid.Make().String(),
		TestCaseID: testCase.TestCaseID,
	}

	if detail, blocked := blockedDetail(actual); blocked {
		result.Status = Blocked
		result.Details = detail
		r.logger.Debug().Msgf("%s: %s: blocked: %s", result.TraceID, testCase.TestCaseID, detail)
		return result
	}

	response := toResponse(actual)
	parsed := rules.Parse(testCase.ExpectedResult)
	r.logger.Debug().Msgf("%s: %s: evaluating %d rule(s) [latency: %sms, status: %s]",
		result.TraceID, testCase.TestCaseID, len(parsed),
		logging.FormatLogInt64(response.LatencyMS), logging.FormatLogInt(response.StatusCode))

	passed, failureReasons := rules.Evaluate(parsed, response)
	result.AppliedRules = rules.Names(parsed)
	if passed {
		result.Status = Pass
		result.Details = detailAllRulesPassed
	} else {
		result.Status = Fail
		result.Details = strings.Join(failureReasons, failureReasonSeparator)
		result.FailedReasons = failureReasons
	}
	return result
}

// RunAll executes the cases sequentially and collects their results in
// case order. The actual output for each case comes from the case itself
// when recorded; otherwise a synthetic output is generated when enabled,
// and the case is blocked when not. RunAll reports whether it stopped
// early because the failure limit was reached.
func (r *Runner) RunAll(cases []matrix.Case, opts Options) (results Results, stoppedEarly bool) {
	r.logger.Info().Msgf("starting %d case(s)...", len(cases))
	failureCount := 0
	for _, testCase := range cases {
		actual := testCase.Actual
		if actual == nil && opts.UseSyntheticActual {
			actual = matrix.TextOutput(matrix.SyntheticOutput(testCase))
		}

		result := r.Run(testCase, actual)
		r.logger.Info().Msgf("%s: %s: %s", result.TraceID, testCase.TestCaseID, result.Status)
		results = append(results, CaseResult{Case: testCase, Result: result})

		if result.Status == Fail {
			failureCount++
			if opts.MaxFailures > 0 && failureCount >= opts.MaxFailures {
				r.logger.Warn().Msgf("stopping early after %d failure(s)", failureCount)
				return results, true
			}
		}
	}
	r.logger.Info().Msgf("all %d case(s) have finished.", len(results))
	return results, false
}

// blockedDetail reports whether the actual output blocks evaluation and
// with which detail message.
func blockedDetail(actual matrix.ActualOutput) (string, bool) {
	switch output := actual.(type) {
	case nil:
		return detailNoActualOutput, true
	case matrix.TextOutput:
		if strings.TrimSpace(string(output)) == "" {
			return detailEmptyActualOutput, true
		}
	case matrix.StructuredOutput:
		if strings.TrimSpace(output.Text) == "" {
			return detailEmptyActualText, true
		}
	}
	return "", false
}
