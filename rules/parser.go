// Copyright (C) 2025 Alemaksus
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at <https://mozilla.org/MPL/2.0/>.

package rules

import (
	"strconv"
	"strings"
)

// directivePrefixes lists the line prefixes that switch the parser into
// directive mode. The bare NOT_EMPTY token acts as its own prefix.
var directivePrefixes = []string{
	string(KindNotEmpty),
	string(KindContains) + ":",
	string(KindRegex) + ":",
	string(KindMaxLatency) + ":",
	string(KindStatusCode) + ":",
}

// Parse converts expected-result text into an ordered sequence of rules.
//
// Two grammars are supported:
//
//  1. Plain-English mode: when no non-blank line begins with a recognized
//     directive prefix, the whole text is treated as natural language and
//     yields NOT_EMPTY followed by CONTAINS over the original text.
//
//  2. Directive mode: when at least one line begins with a recognized
//     prefix, every line is processed independently in document order.
//     Lines with an empty directive body, an unparsable integer value, or
//     no matching prefix are dropped silently. A single malformed line
//     must never abort evaluation of the whole case.
//
// Text that reduces to zero non-blank lines yields a single NOT_EMPTY
// rule, as does directive-mode input whose every line was dropped.
// Parse is a pure function: identical input always yields an identical
// rule sequence.
func Parse(expectedResult string) []Rule {
	lines := nonBlankLines(expectedResult)
	if len(lines) == 0 {
		return []Rule{{Kind: KindNotEmpty}}
	}

	if !hasDirectiveLine(lines) {
		return []Rule{
			{Kind: KindNotEmpty},
			{Kind: KindContains, Text: expectedResult},
		}
	}

	parsed := make([]Rule, 0, len(lines))
	for _, line := range lines {
		if rule, ok := parseDirective(line); ok {
			parsed = append(parsed, rule)
		}
	}
	if len(parsed) == 0 {
		return []Rule{{Kind: KindNotEmpty}}
	}
	return parsed
}

// nonBlankLines splits text on newlines and returns the trimmed non-empty
// lines in document order. Trimming also strips carriage returns from
// CRLF input.
func nonBlankLines(text string) []string {
	if text == "" {
		return nil
	}
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			lines = append(lines, trimmed)
		}
	}
	return lines
}

// hasDirectiveLine reports whether any line begins with a recognized
// directive prefix. Prefix matching is exact and case-sensitive.
func hasDirectiveLine(lines []string) bool {
	for _, line := range lines {
		for _, prefix := range directivePrefixes {
			if strings.HasPrefix(line, prefix) {
				return true
			}
		}
	}
	return false
}

// parseDirective parses a single trimmed line into a rule. It returns
// ok=false for lines that match no directive form or carry a malformed
// value; such lines are the parser's silent-drop cases.
func parseDirective(line string) (Rule, bool) {
	switch {
	case line == string(KindNotEmpty):
		return Rule{Kind: KindNotEmpty}, true

	case strings.HasPrefix(line, string(KindContains)+":"):
		if text := directiveBody(line, KindContains); text != "" {
			return Rule{Kind: KindContains, Text: text}, true
		}

	case strings.HasPrefix(line, string(KindRegex)+":"):
		if pattern := directiveBody(line, KindRegex); pattern != "" {
			return Rule{Kind: KindRegex, Pattern: pattern}, true
		}

	case strings.HasPrefix(line, string(KindMaxLatency)+":"):
		if maxMS, err := strconv.ParseInt(directiveBody(line, KindMaxLatency), 10, 64); err == nil {
			return Rule{Kind: KindMaxLatency, MaxMS: maxMS}, true
		}

	case strings.HasPrefix(line, string(KindStatusCode)+":"):
		if code, err := strconv.Atoi(directiveBody(line, KindStatusCode)); err == nil {
			return Rule{Kind: KindStatusCode, Code: code}, true
		}
	}
	return Rule{}, false
}

// directiveBody returns the trimmed text following "<KIND>:" on the line.
func directiveBody(line string, kind Kind) string {
	return strings.TrimSpace(line[len(kind)+1:])
}
