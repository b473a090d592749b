// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package model

import "testing"

func TestParseDecimal(t *testing.T) {
	tests := []struct {
		input   string
		want    string
		wantErr bool
	}{
		{"0", "0", false},
		{"12.5", "12.5", false},
		{"12.50", "12.5", false},
		{"-3.25", "-3.25", false},
		{"12.345", "12.35", false},     // rounded to 2 fractional digits
		{"99999999.99", "99999999.99", false},
		{"100000000", "", true}, // 9 integral digits exceeds DECIMAL(10,2)
		{"-100000000", "", true},
		{"abc", "", true},
		{"", "", true},
		{"1.2.3", "", true},
	}

	for _, tt := range tests {
		d, err := ParseDecimal(tt.input)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseDecimal(%q) = %s, want error", tt.input, d)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseDecimal(%q) error: %v", tt.input, err)
			continue
		}
		if d.String() != tt.want {
			t.Errorf("ParseDecimal(%q) = %s, want %s", tt.input, d, tt.want)
		}
	}
}

func TestParseDecimalRoundTrip(t *testing.T) {
	// 0.1 has no exact float64 representation; the fixed-point type must
	// preserve it exactly.
	d, err := ParseDecimal("0.10")
	if err != nil {
		t.Fatalf("ParseDecimal: %v", err)
	}
	if got := d.StringFixed(2); got != "0.10" {
		t.Errorf("StringFixed(2) = %q, want %q", got, "0.10")
	}
}
