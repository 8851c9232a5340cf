// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package locate

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"syscall"
)

// NoDescription is reported when the OS has no text for an error code.
const NoDescription = "(No description available for this error code)"

// SystemError is a failed probe, classified by its OS error code.
type SystemError struct {
	Code syscall.Errno
	err  error
}

// NewSystemError returns a SystemError for code.
func NewSystemError(code syscall.Errno) *SystemError {
	return &SystemError{Code: code}
}

// Error implements error.
func (e *SystemError) Error() string {
	return fmt.Sprintf("%d: %s", uint32(e.Code), e.Description())
}

// Unwrap returns the underlying cause, or the errno itself.
func (e *SystemError) Unwrap() error {
	if e.err != nil {
		return e.err
	}
	return e.Code
}

// Recoverable reports whether the error only means "not found here".
func (e *SystemError) Recoverable() bool {
	return e.Code == CodeFileNotFound
}

// Description returns the OS-provided text for the error code.
func (e *SystemError) Description() string {
	if e.Code == 0 {
		if e.err != nil {
			return e.err.Error()
		}
		return NoDescription
	}
	msg := e.Code.Error()
	// syscall falls back to a numeric string when there is no text.
	if strings.HasPrefix(msg, "errno ") || strings.HasPrefix(msg, "winapi error #") {
		return NoDescription
	}
	return msg
}

// AppError is a failure that carries a message rather than an OS code:
// invalid arguments, clipboard or shell failures.
type AppError struct {
	Message string
	err     error
}

// NewAppError formats an AppError.
func NewAppError(format string, args ...any) *AppError {
	return &AppError{Message: fmt.Sprintf(format, args...)}
}

// WrapAppError returns an AppError with message that keeps err in the chain.
func WrapAppError(err error, message string) *AppError {
	return &AppError{Message: message, err: err}
}

func (e *AppError) Error() string { return e.Message }

func (e *AppError) Unwrap() error { return e.err }

// Classify converts an error returned by a Searcher into a *SystemError.
func Classify(err error) *SystemError {
	if err == nil {
		return NewSystemError(CodeFileNotFound)
	}

	var sysErr *SystemError
	if errors.As(err, &sysErr) {
		return sysErr
	}

	var errno syscall.Errno
	if errors.As(err, &errno) {
		return &SystemError{Code: errno, err: err}
	}

	if errors.Is(err, fs.ErrNotExist) {
		return &SystemError{Code: CodeFileNotFound, err: err}
	}

	return &SystemError{err: err}
}
