// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package model

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Decimal value fields (value_number, amount) are fixed-point with 2
// fractional digits and at most 10 digits in total, mirroring DECIMAL(10,2).
const (
	DecimalMaxDigits  = 10
	DecimalFracDigits = 2
)

// decimalMax is 10^(DecimalMaxDigits-DecimalFracDigits), the exclusive bound
// for the integral magnitude.
var decimalMax = decimal.New(1, DecimalMaxDigits-DecimalFracDigits)

// ParseDecimal parses a decimal request value, rounds it to 2 fractional
// digits and enforces the 10-digit magnitude bound. A fixed-point type is used
// instead of float64 so values round-trip without drift.
func ParseDecimal(s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("%q is not a number", s)
	}

	d = d.Round(DecimalFracDigits)
	if !d.Abs().LessThan(decimalMax) {
		return decimal.Decimal{}, fmt.Errorf("%q exceeds %d total digits", s, DecimalMaxDigits)
	}

	return d, nil
}
