// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package util

import (
	"testing"
	"time"
)

func TestParseTimeOfDay(t *testing.T) {
	valid := map[string]string{
		"00:00": "00:00",
		"09:05": "09:05",
		"23:59": "23:59",
	}
	for input, want := range valid {
		got, err := ParseTimeOfDay(input)
		if err != nil {
			t.Errorf("ParseTimeOfDay(%q) error: %v", input, err)
			continue
		}
		if got != want {
			t.Errorf("ParseTimeOfDay(%q) = %q, want %q", input, got, want)
		}
	}

	invalid := []string{"25:99", "8:00:00", "noon", "24:00", "12:60", "12", ""}
	for _, input := range invalid {
		if _, err := ParseTimeOfDay(input); err == nil {
			t.Errorf("ParseTimeOfDay(%q) should fail", input)
		}
	}
}

func TestParseDate(t *testing.T) {
	if got, err := ParseDate("2025-11-30"); err != nil || got != "2025-11-30" {
		t.Errorf("ParseDate(2025-11-30) = %q, %v", got, err)
	}

	invalid := []string{"2025-13-01", "2025-02-30", "30/11/2025", "today", ""}
	for _, input := range invalid {
		if _, err := ParseDate(input); err == nil {
			t.Errorf("ParseDate(%q) should fail", input)
		}
	}
}

func TestFormatHelpers(t *testing.T) {
	loc := time.FixedZone("UTC+8", 8*3600)
	ts := time.Date(2025, 11, 30, 9, 5, 0, 0, loc)

	if got := FormatDate(ts); got != "2025-11-30" {
		t.Errorf("FormatDate = %q", got)
	}
	if got := FormatTimeOfDay(ts); got != "09:05" {
		t.Errorf("FormatTimeOfDay = %q", got)
	}
}
