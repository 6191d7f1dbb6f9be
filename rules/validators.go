// Copyright (C) 2025 Alemaksus
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at <https://mozilla.org/MPL/2.0/>.

package rules

import (
	"fmt"
	"regexp"
	"strings"
)

// Each validator tests exactly one property of a response against one
// parameter and returns (passed, reason). The reason is empty iff the
// validator passed. Validators never return errors and never panic; an
// invalid input (such as a malformed regex pattern) is converted into a
// normal failure reason so the evaluator's control flow stays uniform.

// NotEmptyText passes when the response text is non-empty after trimming.
func NotEmptyText(response Response) (bool, string) {
	if strings.TrimSpace(response.Text) != "" {
		return true, ""
	}
	return false, "Response text is empty"
}

// ContainsText passes when the response text contains the expected
// substring, compared case-insensitively.
func ContainsText(expectedSubstring string, response Response) (bool, string) {
	if strings.Contains(strings.ToLower(response.Text), strings.ToLower(expectedSubstring)) {
		return true, ""
	}
	return false, fmt.Sprintf("Response text does not contain '%s'", expectedSubstring)
}

// RegexText passes when a case-insensitive search of the pattern finds a
// match anywhere in the response text. A pattern that fails to compile
// fails the rule with the engine's error message instead of propagating.
func RegexText(pattern string, response Response) (bool, string) {
	matcher, err := regexp.Compile("(?i)" + pattern)
	if err != nil {
		return false, fmt.Sprintf("Invalid regex pattern '%s': %v", pattern, err)
	}
	if matcher.MatchString(response.Text) {
		return true, ""
	}
	return false, fmt.Sprintf("Response text does not match pattern '%s'", pattern)
}

// MaxLatencyWithin passes when the response latency is known and does not
// exceed maxMS milliseconds.
func MaxLatencyWithin(maxMS int64, response Response) (bool, string) {
	if response.LatencyMS == nil {
		return false, "Response latency_ms is not provided"
	}
	if *response.LatencyMS <= maxMS {
		return true, ""
	}
	return false, fmt.Sprintf("Response latency %dms exceeds maximum %dms", *response.LatencyMS, maxMS)
}

// StatusCodeIs passes when the response status code is known and equals
// the expected code.
func StatusCodeIs(expectedCode int, response Response) (bool, string) {
	if response.StatusCode == nil {
		return false, "Response status_code is not provided"
	}
	if *response.StatusCode == expectedCode {
		return true, ""
	}
	return false, fmt.Sprintf("Response status_code %d does not match expected %d", *response.StatusCode, expectedCode)
}
