// Copyright (C) 2025 Alemaksus
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at <https://mozilla.org/MPL/2.0/>.

package main

import (
	"bytes"
	"flag"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/Alemaksus/conversational-ai-qa-framework/pkg/testutils"
	"github.com/Alemaksus/conversational-ai-qa-framework/version"
)

var matrixColumns = []string{
	"Test Case ID",
	"Scenario ID",
	"Component",
	"Test Description",
	"Test Type",
	"Priority",
	"Prerequisites",
	"Test Steps",
	"Expected Result",
	"Actual Result",
	"Status",
	"Notes",
}

// setFlag overrides a CLI flag value for the duration of the test.
func setFlag[T any](t *testing.T, target *T, value T) {
	t.Helper()
	original := *target
	*target = value
	t.Cleanup(func() { *target = original })
}

func clearSettingsEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"BASE_URL", "AUTH_TOKEN", "CLIENT_MODE", "REQUEST_TIMEOUT_SEC"} {
		t.Setenv(key, "")
	}
}

// writeTestMatrix creates a matrix file with one passing and one failing
// case and returns its path.
func writeTestMatrix(t *testing.T) string {
	t.Helper()
	book := excelize.NewFile()
	defer book.Close()
	require.NoError(t, book.SetSheetName("Sheet1", "Test Cases"))

	rows := [][]string{
		matrixColumns,
		{"TC-001", "SC-01", "Checkout", "Confirmation message", "functional", "High",
			"", "1. Place order", "CONTAINS: confirmation", "Your order confirmation has been sent.", "Ready", ""},
		{"TC-002", "SC-01", "Checkout", "Shipping message", "functional", "High",
			"", "1. Place order", "CONTAINS: shipped", "Order cancelled.", "Ready", ""},
	}
	for r, row := range rows {
		for c, value := range row {
			if value == "" {
				continue
			}
			cell, err := excelize.CoordinatesToCellName(c+1, r+1)
			require.NoError(t, err)
			require.NoError(t, book.SetCellValue("Test Cases", cell, value))
		}
	}

	path := filepath.Join(t.TempDir(), "matrix.xlsx")
	require.NoError(t, book.SaveAs(path))
	return path
}

func TestPrintVersion(t *testing.T) {
	var buf bytes.Buffer
	printVersion(&buf)
	testutils.AssertContainsAll(t, buf.String(), []string{version.Name})
}

func TestPrintHelp(t *testing.T) {
	var buf bytes.Buffer
	printHelp(&buf)
	testutils.AssertContainsAll(t, buf.String(), []string{
		"Commands:",
		runCommandName,
		helpCommandName,
		versionCommandName,
		"Options:",
		"-matrix",
		"-use-synthetic-actual",
	})
}

func TestExecuteVersionCommand(t *testing.T) {
	var exitCode int
	stdout := testutils.CaptureStdout(t, func() {
		testutils.WithArgs(t, func() {
			require.NoError(t, flag.CommandLine.Parse(os.Args[1:]))
			exitCode = execute()
		}, "version")
	})

	assert.Equal(t, exitCodeOK, exitCode)
	assert.Contains(t, stdout, version.Name)
}

func TestRunTestsEndToEnd(t *testing.T) {
	clearSettingsEnv(t)
	reportDir := t.TempDir()
	junitPath := filepath.Join(reportDir, "report.xml")
	mdPath := filepath.Join(reportDir, "report.md")

	setFlag(t, matrixFilePath, writeTestMatrix(t))
	setFlag(t, junitReportPath, junitPath)
	setFlag(t, mdReportPath, mdPath)

	var exitCode int
	stdout := testutils.CaptureStdout(t, func() {
		exitCode = runTests()
	})

	assert.Equal(t, exitCodeHadFailures, exitCode)
	testutils.AssertContainsAll(t, stdout, []string{
		"Loaded: 2",
		"Filtered: 2",
		"PASS: 1",
		"FAIL: 1",
		"BLOCKED: 0",
		"Top 1 failure(s):",
		"Test Case: TC-002",
		"CONTAINS: Response text does not contain 'shipped'",
		"JUnit XML report written to:",
		"Markdown report written to:",
	})

	testutils.AssertFileContains(t, junitPath,
		[]string{"<testsuite", `name="TC-002"`, "failures=\"1\""},
		[]string{"<skipped"})
	testutils.AssertFileContains(t, mdPath,
		[]string{"# Test Execution Report", "TC-002", "## Failures"},
		nil)
}

func TestRunTestsNoFilterMatch(t *testing.T) {
	clearSettingsEnv(t)
	setFlag(t, matrixFilePath, writeTestMatrix(t))
	setFlag(t, priorityFilter, "Critical")

	var exitCode int
	stdout := testutils.CaptureStdout(t, func() {
		exitCode = runTests()
	})

	assert.Equal(t, exitCodeOK, exitCode)
	testutils.AssertContainsAll(t, stdout, []string{
		"Loaded: 2",
		"Filtered: 0",
		"No test cases match the filter criteria.",
	})
}

func TestRunTestsMissingMatrixFile(t *testing.T) {
	clearSettingsEnv(t)
	setFlag(t, matrixFilePath, filepath.Join(t.TempDir(), "missing.xlsx"))

	var exitCode int
	testutils.CaptureStdout(t, func() {
		exitCode = runTests()
	})

	assert.Equal(t, exitCodeError, exitCode)
}
