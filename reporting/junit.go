// Copyright (C) 2025 Alemaksus
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at <https://mozilla.org/MPL/2.0/>.

package reporting

import (
	"encoding/xml"
	"fmt"
	"io"
	"strings"

	"github.com/Alemaksus/conversational-ai-qa-framework/runner"
)

// DefaultSuiteName is the testsuite name used when none is configured.
const DefaultSuiteName = "Conversational AI QA Matrix"

// NewJUnitFormatter creates a formatter that outputs results as a JUnit
// XML test suite. Failed cases carry a <failure> element, blocked cases a
// <skipped> element.
func NewJUnitFormatter(suiteName string) Formatter {
	if suiteName == "" {
		suiteName = DefaultSuiteName
	}
	return &junitFormatter{suiteName: suiteName}
}

type junitFormatter struct {
	suiteName string
}

type junitTestSuite struct {
	XMLName  xml.Name        `xml:"testsuite"`
	Name     string          `xml:"name,attr"`
	Tests    int             `xml:"tests,attr"`
	Failures int             `xml:"failures,attr"`
	Skipped  int             `xml:"skipped,attr"`
	Errors   int             `xml:"errors,attr"`
	Cases    []junitTestCase `xml:"testcase"`
}

type junitTestCase struct {
	Name      string        `xml:"name,attr"`
	ClassName string        `xml:"classname,attr"`
	Failure   *junitMessage `xml:"failure,omitempty"`
	Skipped   *junitMessage `xml:"skipped,omitempty"`
}

type junitMessage struct {
	Message string `xml:"message,attr"`
	Body    string `xml:",chardata"`
}

func (f junitFormatter) FileExt() string {
	return "xml"
}

func (f junitFormatter) Write(results runner.Results, out io.Writer) error {
	suite := junitTestSuite{
		Name:     f.suiteName,
		Tests:    len(results),
		Failures: results.CountByStatus(runner.Fail),
		Skipped:  results.CountByStatus(runner.Blocked),
	}

	for _, result := range results {
		testCase := junitTestCase{
			Name:      result.Result.TestCaseID,
			ClassName: f.suiteName,
		}
		switch result.Result.Status {
		case runner.Fail:
			testCase.Failure = &junitMessage{
				Message: result.Result.Details,
				Body:    failureBody(result.Result),
			}
		case runner.Blocked:
			testCase.Skipped = &junitMessage{
				Message: result.Result.Details,
				Body:    result.Result.Details,
			}
		}
		suite.Cases = append(suite.Cases, testCase)
	}

	if _, err := io.WriteString(out, xml.Header); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteReport, err)
	}
	encoder := xml.NewEncoder(out)
	encoder.Indent("", "  ")
	if err := encoder.Encode(suite); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteReport, err)
	}
	if _, err := io.WriteString(out, "\n"); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteReport, err)
	}
	return nil
}

// failureBody combines the failure reasons and details into the element
// body so CI viewers show the full picture.
func failureBody(result runner.ExecutionResult) string {
	parts := make([]string, 0, len(result.FailedReasons)+1)
	parts = append(parts, result.FailedReasons...)
	if result.Details != "" {
		parts = append(parts, result.Details)
	}
	if len(parts) == 0 {
		return "Test failed"
	}
	return strings.Join(parts, "\n")
}
