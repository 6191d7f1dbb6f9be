// Copyright (C) 2025 Alemaksus
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at <https://mozilla.org/MPL/2.0/>.

// Package rules implements the expected-result rule engine: parsing of
// expected-result text into validation rules, the individual response
// validators, and rule evaluation against a canonical response value.
package rules

// Kind identifies one of the supported validation rule types.
// The set is closed; the evaluator matches exhaustively on it and treats
// anything outside the set as a normal rule failure rather than a defect,
// since rule names originate in user-authored matrix text.
type Kind string

// Supported rule kinds. The string values double as the directive
// prefixes recognized by the parser.
const (
	KindNotEmpty   Kind = "NOT_EMPTY"
	KindContains   Kind = "CONTAINS"
	KindRegex      Kind = "REGEX"
	KindMaxLatency Kind = "MAX_LATENCY_MS"
	KindStatusCode Kind = "STATUS_CODE"
)

// Rule is one parsed validation directive extracted from expected-result
// text. Rules carry no behavior of their own; evaluation logic lives in
// the validators, dispatched on Kind. Only the parameter fields relevant
// to the Kind are populated.
type Rule struct {
	// Kind selects the validator applied to the response.
	Kind Kind
	// Text is the expected substring for CONTAINS rules.
	Text string
	// Pattern is the regular expression for REGEX rules.
	Pattern string
	// MaxMS is the latency ceiling in milliseconds for MAX_LATENCY_MS rules.
	MaxMS int64
	// Code is the expected status code for STATUS_CODE rules.
	Code int
}

// Response is the canonical evaluation input that validators run against.
// It is constructed fresh per evaluation and carries no identity beyond
// the call.
type Response struct {
	// Text is the response body. Required but may be empty.
	Text string
	// LatencyMS is the observed response latency in milliseconds, if known.
	LatencyMS *int64
	// StatusCode is the response status code, if known.
	StatusCode *int
	// Meta carries opaque collaborator-provided metadata. It is passed
	// through verbatim and never inspected by the validators.
	Meta map[string]interface{}
}
