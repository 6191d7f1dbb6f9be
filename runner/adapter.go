// Copyright (C) 2025 Alemaksus
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at <https://mozilla.org/MPL/2.0/>.

package runner

import (
	"github.com/Alemaksus/conversational-ai-qa-framework/matrix"
	"github.com/Alemaksus/conversational-ai-qa-framework/rules"
)

// toResponse normalizes a usable actual output into the canonical
// response value evaluated by the validators. Plain text becomes a
// text-only response; structured payloads pass their observation fields
// through verbatim. Absent outputs never reach the adapter: the runner's
// blocked check handles them first.
func toResponse(actual matrix.ActualOutput) rules.Response {
	switch output := actual.(type) {
	case matrix.TextOutput:
		return rules.Response{Text: string(output)}
	case matrix.StructuredOutput:
		return rules.Response{
			Text:       output.Text,
			LatencyMS:  output.LatencyMS,
			StatusCode: output.StatusCode,
			Meta:       output.Meta,
		}
	default:
		return rules.Response{}
	}
}
