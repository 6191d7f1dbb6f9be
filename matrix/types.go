// Copyright (C) 2025 Alemaksus
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at <https://mozilla.org/MPL/2.0/>.

// Package matrix loads test-case definitions from tabular sources.
// It owns the Case record and the actual-output boundary value, and
// provides loaders for Excel matrix files and YAML case files, plus
// filtering and synthetic-output helpers. The execution core consumes
// the records produced here without knowing how they were loaded.
package matrix

// Case is one row of the test-case matrix. Cases are owned by the loader
// and read-only to the execution core.
type Case struct {
	// TestCaseID uniquely identifies the case within the matrix.
	TestCaseID string `yaml:"test-case-id" validate:"required"`
	// ScenarioID groups related cases into a scenario.
	ScenarioID string `yaml:"scenario-id"`
	// Component names the system component under test.
	Component string `yaml:"component"`
	// Description is the free-text test description.
	Description string `yaml:"description"`
	// Type classifies the test (functional, negative, ...).
	Type string `yaml:"type"`
	// Priority is the case priority label used for filtering.
	Priority string `yaml:"priority"`
	// Prerequisites lists conditions required before execution.
	Prerequisites string `yaml:"prerequisites"`
	// Steps lists the manual execution steps.
	Steps string `yaml:"steps"`
	// ExpectedResult is the expected-result text in the rule mini-DSL
	// (or plain English). It is the input to rules.Parse.
	ExpectedResult string `yaml:"expected-result"`
	// Actual is the recorded actual output, if any. It is nil when the
	// matrix provides no output for the case.
	Actual ActualOutput `yaml:"-"`
	// Status is the authoring status label from the matrix, if any.
	Status *string `yaml:"status"`
	// Notes carries free-form author notes, if any.
	Notes *string `yaml:"notes"`
}

// ActualOutput is the actual-output boundary value supplied per case.
// It has exactly three variants: absent (a nil ActualOutput), plain text
// (TextOutput), and a structured payload (StructuredOutput). Modeling the
// variants explicitly keeps runtime type inspection out of the runner.
type ActualOutput interface {
	actualOutput()
}

// TextOutput is a plain-text actual output.
type TextOutput string

func (TextOutput) actualOutput() {}

// StructuredOutput is an actual output with optional observation fields
// alongside the response text.
type StructuredOutput struct {
	// Text is the response text. May be empty, which the runner treats
	// as a blocked case.
	Text string
	// LatencyMS is the observed latency in milliseconds, if recorded.
	LatencyMS *int64
	// StatusCode is the response status code, if recorded.
	StatusCode *int
	// Meta carries opaque metadata passed through to the response verbatim.
	Meta map[string]interface{}
}

func (StructuredOutput) actualOutput() {}
