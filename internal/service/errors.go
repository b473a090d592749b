// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package service provides the business logic for events and todos,
// including the completion linkage between the two.
package service

import (
	"errors"
	"fmt"
)

// ErrNotFound reports that a referenced row does not exist.
var ErrNotFound = errors.New("not found")

// ValidationError reports malformed or missing request input. Handlers map
// it to HTTP 400.
type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string {
	return e.msg
}

// Validationf builds a ValidationError from a format string.
func Validationf(format string, args ...any) *ValidationError {
	return &ValidationError{msg: fmt.Sprintf(format, args...)}
}

// IsValidation reports whether err is a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
