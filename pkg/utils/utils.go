// Copyright (C) 2025 Alemaksus
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at <https://mozilla.org/MPL/2.0/>.

// Package utils provides small shared helpers for string handling and
// deterministic map traversal.
package utils

import (
	"cmp"
	"slices"
)

const ellipsis = "..."

// Truncate shortens text to at most maxLength characters, replacing the
// tail with an ellipsis when truncation occurs. Values of maxLength that
// cannot fit the ellipsis return the ellipsis prefix alone.
func Truncate(text string, maxLength int) string {
	if len(text) <= maxLength {
		return text
	}
	if maxLength <= len(ellipsis) {
		return ellipsis[:max(maxLength, 0)]
	}
	return text[:maxLength-len(ellipsis)] + ellipsis
}

// SortedKeys returns the map's keys in ascending order, for deterministic
// iteration.
func SortedKeys[K cmp.Ordered, V any](m map[K]V) []K {
	keys := make([]K, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
