// Copyright (C) 2025 Alemaksus
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at <https://mozilla.org/MPL/2.0/>.

package matrix

import (
	"strings"

	"github.com/Alemaksus/conversational-ai-qa-framework/rules"
)

// syntheticOutputLimit caps the length of synthetic output derived from
// plain-English expected-result text.
const syntheticOutputLimit = 200

// fallbackSyntheticOutput is used when the expected-result text yields no
// usable material.
const fallbackSyntheticOutput = "Response generated for demo purposes"

// SyntheticOutput derives a deterministic demo actual-output for a case
// that has none recorded. The output is built to be likely to satisfy the
// case's own expected-result rules: text from CONTAINS directives when
// present, the expected-result text itself otherwise, and never blank.
// This exists for demo runs only, not for real testing.
func SyntheticOutput(testCase Case) string {
	parsed := rules.Parse(testCase.ExpectedResult)

	var containsTexts []string
	for _, rule := range parsed {
		if rule.Kind == rules.KindContains && rule.Text != "" {
			containsTexts = append(containsTexts, rule.Text)
		}
	}

	if len(containsTexts) > 1 {
		return strings.Join(containsTexts[:2], " ")
	}
	if len(containsTexts) == 1 {
		return containsTexts[0]
	}

	synthetic := testCase.ExpectedResult
	if len(synthetic) > syntheticOutputLimit {
		synthetic = synthetic[:syntheticOutputLimit]
	}
	if strings.TrimSpace(synthetic) == "" {
		synthetic = fallbackSyntheticOutput
	}
	return synthetic
}
