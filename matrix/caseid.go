// Copyright (C) 2025 Alemaksus
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at <https://mozilla.org/MPL/2.0/>.

package matrix

import "strings"

// BuildCaseID builds a stable, filesystem-friendly identifier for a case
// in the form "<TestCaseID>__<ScenarioID>__<Component>". The component is
// sanitized to letters, digits and underscores so the identifier is safe
// in test names and file paths.
func BuildCaseID(testCase Case) string {
	component := strings.ReplaceAll(testCase.Component, " ", "_")
	var sanitized strings.Builder
	for _, r := range component {
		if isIDRune(r) {
			sanitized.WriteRune(r)
		}
	}
	return testCase.TestCaseID + "__" + testCase.ScenarioID + "__" + sanitized.String()
}

func isIDRune(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z':
		return true
	case r >= 'A' && r <= 'Z':
		return true
	case r >= '0' && r <= '9':
		return true
	case r == '_':
		return true
	}
	return false
}
