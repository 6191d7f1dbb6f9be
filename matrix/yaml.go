// Copyright (C) 2025 Alemaksus
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at <https://mozilla.org/MPL/2.0/>.

package matrix

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// ErrCaseDefinition indicates an invalid YAML case definition.
var ErrCaseDefinition = errors.New("invalid case definition")

// caseFile is the root of a YAML case file.
type caseFile struct {
	Cases []yamlCase `yaml:"cases" validate:"dive"`
}

// yamlCase pairs the inline Case record with the polymorphic
// actual-output field, which the Case struct itself does not decode.
type yamlCase struct {
	Case   `yaml:",inline"`
	Actual *actualOutputNode `yaml:"actual-output"`
}

// actualOutputNode decodes an actual-output value that may be either a
// plain scalar or a structured mapping.
type actualOutputNode struct {
	output ActualOutput
}

func (n *actualOutputNode) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		if value.Tag == "!!null" {
			return nil
		}
		// Non-string scalars keep their literal form as text.
		n.output = TextOutput(value.Value)
		return nil

	case yaml.MappingNode:
		var payload struct {
			Text       *yaml.Node             `yaml:"text"`
			LatencyMS  *int64                 `yaml:"latency-ms"`
			StatusCode *int                   `yaml:"status-code"`
			Meta       map[string]interface{} `yaml:"meta"`
		}
		if err := value.Decode(&payload); err != nil {
			return fmt.Errorf("%w: %v", ErrCaseDefinition, err)
		}
		structured := StructuredOutput{
			LatencyMS:  payload.LatencyMS,
			StatusCode: payload.StatusCode,
			Meta:       payload.Meta,
		}
		if payload.Text != nil && payload.Text.Tag != "!!null" {
			structured.Text = payload.Text.Value
		}
		n.output = structured
		return nil

	default:
		return fmt.Errorf("%w: actual-output must be text or a mapping", ErrCaseDefinition)
	}
}

// LoadCasesYAML reads test cases from a YAML case file. The file is
// decoded strictly (unknown fields are rejected) and validated before
// any case is returned.
func LoadCasesYAML(path string) ([]Case, error) {
	contents, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read case file: %w", err)
	}

	file := &caseFile{}
	if err := yamlUnmarshalStrict(contents, file); err != nil {
		return nil, fmt.Errorf("malformed case file: %w", err)
	}
	if err := validate.Struct(file); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCaseDefinition, err)
	}

	cases := make([]Case, 0, len(file.Cases))
	for _, record := range file.Cases {
		loaded := record.Case
		if record.Actual != nil {
			loaded.Actual = record.Actual.output
		}
		cases = append(cases, loaded)
	}
	return cases, nil
}

// yamlUnmarshalStrict decodes YAML contents while rejecting fields that
// do not exist in the target structure.
func yamlUnmarshalStrict(contents []byte, target interface{}) error {
	decoder := yaml.NewDecoder(bytes.NewReader(contents))
	decoder.KnownFields(true)
	if err := decoder.Decode(target); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}
