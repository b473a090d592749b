// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package util

import (
	"fmt"
	"time"
)

// Wire formats for date and time-of-day fields. Dates and times-of-day are
// stored and transmitted as plain strings so lexical order matches
// chronological order.
const (
	DateLayout      = "2006-01-02"
	TimeOfDayLayout = "15:04"
)

// ParseDate validates a "YYYY-MM-DD" value and returns it normalized.
func ParseDate(s string) (string, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return "", fmt.Errorf("date must be YYYY-MM-DD")
	}
	return t.Format(DateLayout), nil
}

// ParseTimeOfDay validates a "HH:MM" value (hours 0-23, minutes 0-59) and
// returns it normalized.
func ParseTimeOfDay(s string) (string, error) {
	t, err := time.Parse(TimeOfDayLayout, s)
	if err != nil {
		return "", fmt.Errorf("time must be HH:MM")
	}
	return t.Format(TimeOfDayLayout), nil
}

// FormatDate renders t's calendar date in wire format.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// FormatTimeOfDay renders t's time of day in wire format.
func FormatTimeOfDay(t time.Time) string {
	return t.Format(TimeOfDayLayout)
}
