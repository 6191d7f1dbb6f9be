// Copyright (C) 2025 Alemaksus
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at <https://mozilla.org/MPL/2.0/>.

package rules

import "fmt"

// Evaluate applies the given rules to the response in order and reports
// whether all of them passed together with the failure reasons.
//
// Every rule is evaluated regardless of earlier failures so that all
// problems with a response are observable in a single pass. Each failing
// rule contributes one "<NAME>: <reason>" entry, in rule order. The
// returned reasons slice is nil when everything passed.
func Evaluate(ruleSet []Rule, response Response) (allPassed bool, failureReasons []string) {
	for _, rule := range ruleSet {
		if passed, reason := apply(rule, response); !passed {
			failureReasons = append(failureReasons, fmt.Sprintf("%s: %s", rule.Kind, reason))
		}
	}
	return len(failureReasons) == 0, failureReasons
}

// apply dispatches a single rule to its validator. A kind outside the
// closed set counts as a deterministic failure, never a panic: rule names
// come from user-authored matrix text.
func apply(rule Rule, response Response) (bool, string) {
	switch rule.Kind {
	case KindNotEmpty:
		return NotEmptyText(response)
	case KindContains:
		return ContainsText(rule.Text, response)
	case KindRegex:
		return RegexText(rule.Pattern, response)
	case KindMaxLatency:
		return MaxLatencyWithin(rule.MaxMS, response)
	case KindStatusCode:
		return StatusCodeIs(rule.Code, response)
	default:
		return false, fmt.Sprintf("Unknown rule: %s", rule.Kind)
	}
}

// Names returns the rule kind names in rule order, for result reporting.
func Names(ruleSet []Rule) []string {
	names := make([]string, len(ruleSet))
	for i, rule := range ruleSet {
		names[i] = string(rule.Kind)
	}
	return names
}
