// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package model

import "strconv"

// Todo priorities.
const (
	PriorityLow    = 1
	PriorityNormal = 2
	PriorityHigh   = 3
)

// Todo list tabs.
const (
	TabAll       = "all"
	TabToday     = "today"
	TabImportant = "important"
	TabDone      = "done"
)

// truthyValues is the set of strings the status endpoint treats as "done".
// Anything else, including an absent value, means "not done".
var truthyValues = map[string]bool{
	"1":    true,
	"true": true,
	"True": true,
	"yes":  true,
	"on":   true,
}

// ParseIsDone normalizes a boolean-ish request value to a bool.
func ParseIsDone(s string) bool {
	return truthyValues[s]
}

// NormalizePriority clamps any priority value outside {1,2,3} to normal.
func NormalizePriority(p int) int {
	if p < PriorityLow || p > PriorityHigh {
		return PriorityNormal
	}
	return p
}

// ParsePriority parses a priority request value. Unparseable or out-of-range
// input normalizes to PriorityNormal, it is never rejected.
func ParsePriority(s string) int {
	if s == "" {
		return PriorityNormal
	}
	p, err := strconv.Atoi(s)
	if err != nil {
		return PriorityNormal
	}
	return NormalizePriority(p)
}

// NormalizeTab maps a tab request value to a known tab. Unrecognized values
// silently fall back to TabAll.
func NormalizeTab(tab string) string {
	switch tab {
	case TabToday, TabImportant, TabDone:
		return tab
	default:
		return TabAll
	}
}
