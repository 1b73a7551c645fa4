// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package engine

import "fmt"

// UsageError reports a malformed invocation: an unrecognized flag, a missing
// or unknown dataset name.
type UsageError struct {
	Message string
	Err     error
}

// Usagef builds a UsageError from a format string.
func Usagef(format string, args ...any) *UsageError {
	return &UsageError{Message: fmt.Sprintf(format, args...)}
}

func (e *UsageError) Error() string {
	return e.Message
}

// Unwrap returns the underlying error.
func (e *UsageError) Unwrap() error {
	return e.Err
}

// DataError reports a whitelisted dataset whose content is unavailable.
type DataError struct {
	Dataset string
	Err     error
}

func (e *DataError) Error() string {
	return e.Err.Error()
}

// Unwrap returns the underlying error.
func (e *DataError) Unwrap() error {
	return e.Err
}
