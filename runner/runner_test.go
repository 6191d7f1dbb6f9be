// Copyright (C) 2025 Alemaksus
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at <https://mozilla.org/MPL/2.0/>.

package runner

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Alemaksus/conversational-ai-qa-framework/matrix"
	"github.com/Alemaksus/conversational-ai-qa-framework/pkg/testutils"
)

func newTestRunner() *Runner {
	return New(zerolog.Nop())
}

func TestRunPass(t *testing.T) {
	testCase := matrix.Case{
		TestCaseID:     "TC-001",
		ExpectedResult: "CONTAINS: confirmation",
	}

	result := newTestRunner().Run(testCase, matrix.TextOutput("Your order confirmation has been sent."))

	assert.Equal(t, Pass, result.Status)
	assert.Equal(t, "All rules passed", result.Details)
	assert.Equal(t, []string{"CONTAINS"}, result.AppliedRules)
	assert.Nil(t, result.FailedReasons)
	assert.Equal(t, "TC-001", result.TestCaseID)
	testutils.AssertNotBlank(t, result.TraceID)
}

func TestRunFail(t *testing.T) {
	testCase := matrix.Case{
		TestCaseID:     "TC-002",
		ExpectedResult: "CONTAINS: confirmation",
	}

	result := newTestRunner().Run(testCase, matrix.TextOutput("Order failed"))

	assert.Equal(t, Fail, result.Status)
	assert.Equal(t, []string{"CONTAINS: Response text does not contain 'confirmation'"}, result.FailedReasons)
	assert.Equal(t, "CONTAINS: Response text does not contain 'confirmation'", result.Details)
	assert.Equal(t, []string{"CONTAINS"}, result.AppliedRules)
}

func TestRunPlainExpectedText(t *testing.T) {
	testCase := matrix.Case{
		TestCaseID:     "TC-003",
		ExpectedResult: "order confirmed",
	}

	result := newTestRunner().Run(testCase, matrix.TextOutput("Order Confirmed. Thank you!"))

	assert.Equal(t, Pass, result.Status)
	assert.Equal(t, []string{"NOT_EMPTY", "CONTAINS"}, result.AppliedRules)
}

func TestRunBlockedNoOutput(t *testing.T) {
	testCase := matrix.Case{
		TestCaseID:     "TC-004",
		ExpectedResult: "CONTAINS: confirmation",
	}

	result := newTestRunner().Run(testCase, nil)

	assert.Equal(t, Blocked, result.Status)
	assert.Equal(t, "No actual output provided", result.Details)
	assert.Nil(t, result.AppliedRules)
	assert.Nil(t, result.FailedReasons)
}

func TestRunBlockedBlankText(t *testing.T) {
	testCase := matrix.Case{
		TestCaseID:     "TC-005",
		ExpectedResult: "NOT_EMPTY",
	}

	result := newTestRunner().Run(testCase, matrix.TextOutput("   "))

	assert.Equal(t, Blocked, result.Status)
	assert.Equal(t, "Actual output is empty", result.Details)
	assert.Nil(t, result.AppliedRules)
}

func TestRunBlockedStructuredWithEmptyText(t *testing.T) {
	testCase := matrix.Case{
		TestCaseID:     "TC-006",
		ExpectedResult: "MAX_LATENCY_MS: 500",
	}
	actual := matrix.StructuredOutput{LatencyMS: testutils.Ptr(int64(200))}

	result := newTestRunner().Run(testCase, actual)

	assert.Equal(t, Blocked, result.Status)
	assert.Equal(t, "Actual output text is empty", result.Details)
	assert.Nil(t, result.AppliedRules)
	assert.Nil(t, result.FailedReasons)
}

func TestRunStructuredOutputCollectsAllFailures(t *testing.T) {
	testCase := matrix.Case{
		TestCaseID:     "TC-007",
		ExpectedResult: "MAX_LATENCY_MS: 500\nSTATUS_CODE: 200",
	}
	actual := matrix.StructuredOutput{
		Text:       "ok",
		LatencyMS:  testutils.Ptr(int64(600)),
		StatusCode: testutils.Ptr(404),
	}

	result := newTestRunner().Run(testCase, actual)

	assert.Equal(t, Fail, result.Status)
	assert.Equal(t, []string{"MAX_LATENCY_MS", "STATUS_CODE"}, result.AppliedRules)
	assert.Equal(t, []string{
		"MAX_LATENCY_MS: Response latency 600ms exceeds maximum 500ms",
		"STATUS_CODE: Response status_code 404 does not match expected 200",
	}, result.FailedReasons)
	assert.Equal(t, "MAX_LATENCY_MS: Response latency 600ms exceeds maximum 500ms; "+
		"STATUS_CODE: Response status_code 404 does not match expected 200", result.Details)
}

func TestRunAssignsUniqueTraceIDs(t *testing.T) {
	runner := newTestRunner()
	testCase := matrix.Case{TestCaseID: "TC-001", ExpectedResult: "NOT_EMPTY"}

	first := runner.Run(testCase, matrix.TextOutput("hello"))
	second := runner.Run(testCase, matrix.TextOutput("hello"))

	testutils.AssertNotBlank(t, first.TraceID)
	testutils.AssertNotBlank(t, second.TraceID)
	assert.NotEqual(t, first.TraceID, second.TraceID)
}

func TestRunBlockedPrecedenceProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)
	runner := newTestRunner()

	properties.Property("absent output always blocks, whatever the expected result", prop.ForAll(
		func(expectedResult string) bool {
			result := runner.Run(matrix.Case{TestCaseID: "TC-P", ExpectedResult: expectedResult}, nil)
			return result.Status == Blocked &&
				result.Details == "No actual output provided" &&
				result.AppliedRules == nil &&
				result.FailedReasons == nil
		},
		gen.AnyString(),
	))

	properties.Property("non-blank output never blocks", prop.ForAll(
		func(expectedResult string) bool {
			result := runner.Run(matrix.Case{TestCaseID: "TC-P", ExpectedResult: expectedResult}, matrix.TextOutput("response text"))
			return result.Status != Blocked && len(result.AppliedRules) > 0
		},
		gen.AnyString(),
	))

	properties.TestingRun(t)
}

func TestRunAll(t *testing.T) {
	cases := []matrix.Case{
		{TestCaseID: "TC-001", ExpectedResult: "CONTAINS: confirmed", Actual: matrix.TextOutput("Order confirmed.")},
		{TestCaseID: "TC-002", ExpectedResult: "CONTAINS: shipped", Actual: matrix.TextOutput("Order confirmed.")},
		{TestCaseID: "TC-003", ExpectedResult: "NOT_EMPTY"},
	}

	results, stoppedEarly := newTestRunner().RunAll(cases, Options{})

	assert.False(t, stoppedEarly)
	require.Len(t, results, 3)
	assert.Equal(t, Pass, results[0].Result.Status)
	assert.Equal(t, Fail, results[1].Result.Status)
	assert.Equal(t, Blocked, results[2].Result.Status)
	assert.Equal(t, "TC-002", results[1].Case.TestCaseID)
}

func TestRunAllSyntheticActual(t *testing.T) {
	cases := []matrix.Case{
		{TestCaseID: "TC-001", ExpectedResult: "CONTAINS: confirmed"},
	}

	results, stoppedEarly := newTestRunner().RunAll(cases, Options{UseSyntheticActual: true})

	assert.False(t, stoppedEarly)
	require.Len(t, results, 1)
	assert.Equal(t, Pass, results[0].Result.Status)
}

func TestRunAllSyntheticDoesNotReplaceRecordedOutput(t *testing.T) {
	cases := []matrix.Case{
		{TestCaseID: "TC-001", ExpectedResult: "CONTAINS: confirmed", Actual: matrix.TextOutput("rejected")},
	}

	results, _ := newTestRunner().RunAll(cases, Options{UseSyntheticActual: true})

	require.Len(t, results, 1)
	assert.Equal(t, Fail, results[0].Result.Status)
}

func TestRunAllStopsEarlyAtMaxFailures(t *testing.T) {
	failing := func(id string) matrix.Case {
		return matrix.Case{TestCaseID: id, ExpectedResult: "CONTAINS: confirmed", Actual: matrix.TextOutput("rejected")}
	}
	cases := []matrix.Case{failing("TC-001"), failing("TC-002"), failing("TC-003")}

	results, stoppedEarly := newTestRunner().RunAll(cases, Options{MaxFailures: 2})

	assert.True(t, stoppedEarly)
	require.Len(t, results, 2)

	results, stoppedEarly = newTestRunner().RunAll(cases, Options{})
	assert.False(t, stoppedEarly)
	assert.Len(t, results, 3)
}
