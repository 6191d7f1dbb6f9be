// Copyright (C) 2025 Alemaksus
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at <https://mozilla.org/MPL/2.0/>.

package runner

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Alemaksus/conversational-ai-qa-framework/matrix"
	"github.com/Alemaksus/conversational-ai-qa-framework/pkg/testutils"
)

func TestToResponseText(t *testing.T) {
	response := toResponse(matrix.TextOutput("Order confirmed."))

	assert.Equal(t, "Order confirmed.", response.Text)
	assert.Nil(t, response.LatencyMS)
	assert.Nil(t, response.StatusCode)
	assert.Nil(t, response.Meta)
}

func TestToResponseStructured(t *testing.T) {
	response := toResponse(matrix.StructuredOutput{
		Text:       "Order confirmed.",
		LatencyMS:  testutils.Ptr(int64(240)),
		StatusCode: testutils.Ptr(200),
		Meta:       map[string]interface{}{"channel": "web"},
	})

	assert.Equal(t, "Order confirmed.", response.Text)
	assert.Equal(t, int64(240), *response.LatencyMS)
	assert.Equal(t, 200, *response.StatusCode)
	assert.Equal(t, map[string]interface{}{"channel": "web"}, response.Meta)
}
