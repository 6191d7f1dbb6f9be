// Copyright (C) 2025 Alemaksus
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at <https://mozilla.org/MPL/2.0/>.

package matrix

import "strings"

// Filter returns the cases whose priority, status and component match the
// given filter expressions. Each expression is a comma-separated list of
// accepted values; a blank expression matches everything. Matching is
// case-insensitive on trimmed values. A case with no status only matches
// a blank status filter.
func Filter(cases []Case, priorities string, statuses string, components string) []Case {
	priorityFilter := parseFilterValues(priorities)
	statusFilter := parseFilterValues(statuses)
	componentFilter := parseFilterValues(components)

	var filtered []Case
	for _, candidate := range cases {
		if !matchesFilter(priorityFilter, candidate.Priority) {
			continue
		}
		if !matchesOptionalFilter(statusFilter, candidate.Status) {
			continue
		}
		if !matchesFilter(componentFilter, candidate.Component) {
			continue
		}
		filtered = append(filtered, candidate)
	}
	return filtered
}

// parseFilterValues splits a comma-separated filter expression into a set
// of normalized values. A blank expression yields an empty set, meaning
// no restriction.
func parseFilterValues(expression string) map[string]struct{} {
	values := make(map[string]struct{})
	for _, value := range strings.Split(expression, ",") {
		if normalized := normalizeFilterValue(value); normalized != "" {
			values[normalized] = struct{}{}
		}
	}
	return values
}

func normalizeFilterValue(value string) string {
	return strings.ToLower(strings.TrimSpace(value))
}

func matchesFilter(filter map[string]struct{}, value string) bool {
	if len(filter) == 0 {
		return true
	}
	_, ok := filter[normalizeFilterValue(value)]
	return ok
}

func matchesOptionalFilter(filter map[string]struct{}, value *string) bool {
	if len(filter) == 0 {
		return true
	}
	if value == nil {
		return false
	}
	return matchesFilter(filter, *value)
}
