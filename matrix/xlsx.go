// Copyright (C) 2025 Alemaksus
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at <https://mozilla.org/MPL/2.0/>.

package matrix

import (
	"errors"
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
)

// preferredSheetName is used when present; otherwise the first sheet is read.
const preferredSheetName = "Test Cases"

// ErrMatrixSchema indicates that the matrix file does not contain the
// required column headers.
var ErrMatrixSchema = errors.New("invalid matrix schema")

// Matrix column headers. Order in the sheet does not matter; the loader
// maps headers to columns by name.
const (
	columnTestCaseID     = "Test Case ID"
	columnScenarioID     = "Scenario ID"
	columnComponent      = "Component"
	columnDescription    = "Test Description"
	columnType           = "Test Type"
	columnPriority       = "Priority"
	columnPrerequisites  = "Prerequisites"
	columnSteps          = "Test Steps"
	columnExpectedResult = "Expected Result"
	columnActualResult   = "Actual Result"
	columnStatus         = "Status"
	columnNotes          = "Notes"
)

var requiredColumns = []string{
	columnTestCaseID,
	columnScenarioID,
	columnComponent,
	columnDescription,
	columnType,
	columnPriority,
	columnPrerequisites,
	columnSteps,
	columnExpectedResult,
	columnActualResult,
	columnStatus,
	columnNotes,
}

// LoadCases reads test cases from an Excel matrix file. It prefers the
// "Test Cases" sheet when present and otherwise reads the first sheet.
// Row 1 must hold the column headers; rows are read from row 2 until the
// first row with a blank Test Case ID. Completely blank rows are skipped.
func LoadCases(path string) ([]Case, error) {
	book, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open matrix file: %w", err)
	}
	defer book.Close()

	rows, err := book.GetRows(pickSheet(book))
	if err != nil {
		return nil, fmt.Errorf("failed to read matrix sheet: %w", err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: missing header row", ErrMatrixSchema)
	}

	columns := headerMapping(rows[0])
	if missing := missingColumns(columns); len(missing) > 0 {
		return nil, fmt.Errorf("%w: missing required columns: %s", ErrMatrixSchema, strings.Join(missing, ", "))
	}

	var cases []Case
	for _, row := range rows[1:] {
		if isBlankRow(row) {
			continue
		}
		testCaseID := strings.TrimSpace(cellValue(row, columns[columnTestCaseID]))
		if testCaseID == "" {
			break
		}

		record := Case{
			TestCaseID:     testCaseID,
			ScenarioID:     strings.TrimSpace(cellValue(row, columns[columnScenarioID])),
			Component:      strings.TrimSpace(cellValue(row, columns[columnComponent])),
			Description:    strings.TrimSpace(cellValue(row, columns[columnDescription])),
			Type:           strings.TrimSpace(cellValue(row, columns[columnType])),
			Priority:       strings.TrimSpace(cellValue(row, columns[columnPriority])),
			Prerequisites:  strings.TrimSpace(cellValue(row, columns[columnPrerequisites])),
			Steps:          strings.TrimSpace(cellValue(row, columns[columnSteps])),
			ExpectedResult: strings.TrimSpace(cellValue(row, columns[columnExpectedResult])),
			Status:         optionalCell(row, columns[columnStatus]),
			Notes:          optionalCell(row, columns[columnNotes]),
		}
		if actual := optionalCell(row, columns[columnActualResult]); actual != nil {
			record.Actual = TextOutput(*actual)
		}
		cases = append(cases, record)
	}
	return cases, nil
}

func pickSheet(book *excelize.File) string {
	sheets := book.GetSheetList()
	for _, name := range sheets {
		if name == preferredSheetName {
			return name
		}
	}
	return sheets[0]
}

// headerMapping maps trimmed header names from the header row to their
// zero-based column index.
func headerMapping(headerRow []string) map[string]int {
	mapping := make(map[string]int, len(headerRow))
	for i, header := range headerRow {
		if name := strings.TrimSpace(header); name != "" {
			mapping[name] = i
		}
	}
	return mapping
}

func missingColumns(columns map[string]int) []string {
	var missing []string
	for _, name := range requiredColumns {
		if _, ok := columns[name]; !ok {
			missing = append(missing, name)
		}
	}
	return missing
}

// cellValue returns the cell at the given column index, tolerating the
// short rows excelize produces when trailing cells are empty.
func cellValue(row []string, column int) string {
	if column < len(row) {
		return row[column]
	}
	return ""
}

// optionalCell returns the trimmed cell value, or nil when it is blank.
func optionalCell(row []string, column int) *string {
	if value := strings.TrimSpace(cellValue(row, column)); value != "" {
		return &value
	}
	return nil
}

func isBlankRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
