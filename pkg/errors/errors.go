// Package errors provides coded errors for cowsay. Codes are stable strings so
// callers and tests can branch on the failure kind instead of matching messages.
package errors

import (
	"errors"
	"fmt"
)

// ErrorCode represents a unique error code for stable testing
type ErrorCode string

// Error codes for different error categories
const (
	// General errors
	ErrUnknown      ErrorCode = "UNKNOWN"
	ErrInternal     ErrorCode = "INTERNAL"
	ErrInvalidInput ErrorCode = "INVALID_INPUT"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"

	// Figure errors
	ErrTemplateNotFound ErrorCode = "TEMPLATE_NOT_FOUND"
	ErrFileRead         ErrorCode = "FILE_READ"
	ErrInvalidWidth     ErrorCode = "INVALID_WIDTH"

	// Output errors
	ErrRender ErrorCode = "RENDER"
)

// CowsayError represents a structured error with code and details
type CowsayError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *CowsayError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *CowsayError) Unwrap() error {
	return e.Wrapped
}

// Is reports whether target carries the same code.
func (e *CowsayError) Is(target error) bool {
	var targetErr *CowsayError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new CowsayError with the given code and message
func New(code ErrorCode, message string) *CowsayError {
	return &CowsayError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new CowsayError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *CowsayError {
	return New(code, fmt.Sprintf(format, args...))
}

// Wrap wraps an existing error with a CowsayError. A nil err yields nil.
func Wrap(err error, code ErrorCode, message string) *CowsayError {
	if err == nil {
		return nil
	}
	e := New(code, message)
	e.Wrapped = err
	return e
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *CowsayError {
	if err == nil {
		return nil
	}
	return Wrap(err, code, fmt.Sprintf(format, args...))
}

// WithDetail adds a detail to the error
func (e *CowsayError) WithDetail(key string, value interface{}) *CowsayError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var cowErr *CowsayError
	if errors.As(err, &cowErr) {
		return cowErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a CowsayError
func GetErrorCode(err error) ErrorCode {
	var cowErr *CowsayError
	if errors.As(err, &cowErr) {
		return cowErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a CowsayError
func GetErrorDetails(err error) map[string]interface{} {
	var cowErr *CowsayError
	if errors.As(err, &cowErr) {
		return cowErr.Details
	}
	return nil
}
