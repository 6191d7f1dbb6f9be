// Copyright (C) 2025 Alemaksus
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at <https://mozilla.org/MPL/2.0/>.

// Package testutils provides utilities for capturing output, managing
// test files, and making assertions in tests.
package testutils

import (
	"io"
	"os"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	stdoutLock sync.Mutex
	osArgsLock sync.Mutex
)

// CaptureStdout captures standard output during the execution of the
// provided function and returns it as a string. Calls are synchronized so
// concurrent tests cannot interleave their captures.
func CaptureStdout(t *testing.T, fn func()) (stdout string) {
	SyncCall(&stdoutLock, func() {
		fp, err := os.CreateTemp("", "*.stdout")
		if err != nil {
			t.Fatalf("failed to create stdout capture file: %v\n", err)
		}
		defer fp.Close()

		originalStdout := os.Stdout
		defer func() { os.Stdout = originalStdout }()
		os.Stdout = fp

		fn()

		if err := fp.Sync(); err != nil {
			t.Fatalf("failed to sync stdout capture file: %v\n", err)
		}
		if _, err := fp.Seek(0, io.SeekStart); err != nil {
			t.Fatalf("failed to set read offset in stdout capture file: %v\n", err)
		}
		contents, err := io.ReadAll(fp)
		if err != nil {
			t.Fatalf("failed to read stdout capture file: %v\n", err)
		}
		stdout = string(contents)
	})
	return
}

// WithArgs temporarily replaces os.Args with the provided arguments while
// executing the given function.
func WithArgs(_ *testing.T, fn func(), args ...string) {
	SyncCall(&osArgsLock, func() {
		originalArgs := os.Args
		defer func() { os.Args = originalArgs }()
		os.Args = append([]string{os.Args[0]}, args...)

		fn()
	})
}

// SyncCall executes the provided function while holding the specified mutex lock.
func SyncCall(lock *sync.Mutex, fn func()) {
	lock.Lock()
	defer lock.Unlock()
	fn()
}

// CreateMockFile creates a temporary file with the given name pattern and
// contents, returning the file path. The file is removed with the test's
// temporary directory.
func CreateMockFile(t *testing.T, namePattern string, contents []byte) string {
	fp, err := os.CreateTemp(t.TempDir(), namePattern)
	if err != nil {
		t.Fatalf("failed to create test file: %v\n", err)
	}
	defer fp.Close()

	if _, err := fp.Write(contents); err != nil {
		t.Fatalf("failed to write test file: %v\n", err)
	}
	return fp.Name()
}

// ReadFile reads the entire file at the given path and returns its contents.
func ReadFile(t *testing.T, filePath string) []byte {
	contents, err := os.ReadFile(filePath)
	if err != nil {
		t.Fatalf("failed to read test file: %v\n", err)
	}
	return contents
}

// AssertContainsAll verifies that the given contents string contains all specified elements.
func AssertContainsAll(t *testing.T, contents string, elements []string) {
	for i := range elements {
		assert.Contains(t, contents, elements[i])
	}
}

// AssertContainsNone verifies that the given contents string contains none of the specified elements.
func AssertContainsNone(t *testing.T, contents string, elements []string) {
	for i := range elements {
		assert.NotContains(t, contents, elements[i])
	}
}

// AssertFileContains checks that a file contains all strings from want
// and none from notWant.
func AssertFileContains(t *testing.T, filePath string, want []string, notWant []string) {
	contents := string(ReadFile(t, filePath))
	require.NotEmpty(t, contents)
	AssertContainsAll(t, contents, want)
	AssertContainsNone(t, contents, notWant)
}

// AssertNotBlank asserts that the given string is not empty or whitespace-only.
func AssertNotBlank(t *testing.T, value string) {
	assert.NotEmpty(t, strings.TrimSpace(value))
}

// Ptr returns a pointer to the given value.
func Ptr[T any](value T) *T {
	return &value
}
