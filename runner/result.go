// Copyright (C) 2025 Alemaksus
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at <https://mozilla.org/MPL/2.0/>.

// Package runner executes test cases against actual outputs and
// classifies the outcome. It is the state machine at the center of the
// framework: blocked-output detection, response adaptation, rule parsing
// and evaluation, and result construction.
package runner

import (
	"github.com/Alemaksus/conversational-ai-qa-framework/matrix"
)

// Pass indicates that every rule passed against the actual output.
// Fail indicates that at least one rule failed.
// Blocked indicates that no usable actual output was available.
const (
	Pass Status = iota
	Fail
	Blocked
)

// Status is the classified outcome of executing one test case.
// Exactly one status holds per execution; there is no intermediate state.
type Status int

// String returns the status label used in summaries and reports.
func (s Status) String() string {
	switch s {
	case Pass:
		return "PASS"
	case Fail:
		return "FAIL"
	case Blocked:
		return "BLOCKED"
	default:
		return "UNKNOWN"
	}
}

// ExecutionResult is the immutable outcome of running a single test case.
//
// AppliedRules and FailedReasons are populated together: both are nil for
// Blocked results and AppliedRules is set for Pass and Fail results.
// FailedReasons is non-nil exactly when the status is Fail.
type ExecutionResult struct {
	// TraceID is a unique identifier for this execution, used to
	// correlate report rows with log lines.
	TraceID string
	// TestCaseID identifies the executed case.
	TestCaseID string
	// Status is the classified outcome.
	Status Status
	// Details is a human-readable outcome summary.
	Details string
	// AppliedRules lists the evaluated rule names in rule order.
	AppliedRules []string
	// FailedReasons lists the failure reasons in rule order.
	FailedReasons []string
}

// CaseResult pairs a case with its execution result for reporting.
type CaseResult struct {
	Case   matrix.Case
	Result ExecutionResult
}

// Results is an ordered collection of case results from one run.
type Results []CaseResult

// CountByStatus returns the number of results with the given status.
func (r Results) CountByStatus(status Status) int {
	count := 0
	for _, result := range r {
		if result.Result.Status == status {
			count++
		}
	}
	return count
}

// Failures returns the results with status Fail, preserving run order.
func (r Results) Failures() Results {
	var failures Results
	for _, result := range r {
		if result.Result.Status == Fail {
			failures = append(failures, result)
		}
	}
	return failures
}
