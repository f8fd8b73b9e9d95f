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
	ErrUnknown       ErrorCode = "UNKNOWN"
	ErrInternal      ErrorCode = "INTERNAL"
	ErrInvalidInput  ErrorCode = "INVALID_INPUT"
	ErrNotFound      ErrorCode = "NOT_FOUND"
	ErrAlreadyExists ErrorCode = "ALREADY_EXISTS"

	// Deep link interpretation errors
	ErrInvalidScheme        ErrorCode = "INVALID_SCHEME"
	ErrInvalidURL           ErrorCode = "INVALID_URL"
	ErrNoAction             ErrorCode = "NO_ACTION"
	ErrNoValidProfile       ErrorCode = "NO_VALID_PROFILE"
	ErrOnlyOneActionAllowed ErrorCode = "ONLY_ONE_ACTION_ALLOWED"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"
	ErrConfigValid ErrorCode = "CONFIG_INVALID"

	// Input errors
	ErrFileNotFound ErrorCode = "FILE_NOT_FOUND"
	ErrFileAccess   ErrorCode = "FILE_ACCESS"

	// Output errors
	ErrRender ErrorCode = "RENDER"
)

// DeeplinkError represents a structured error with code and details
type DeeplinkError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *DeeplinkError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *DeeplinkError) Unwrap() error {
	return e.Wrapped
}

// Is reports whether target is a DeeplinkError carrying the same code.
// This lets package-level sentinels work with the standard errors.Is.
func (e *DeeplinkError) Is(target error) bool {
	var targetErr *DeeplinkError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new DeeplinkError with the given code and message
func New(code ErrorCode, message string) *DeeplinkError {
	return &DeeplinkError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new DeeplinkError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *DeeplinkError {
	return New(code, fmt.Sprintf(format, args...))
}

// Wrap wraps an existing error with a DeeplinkError
func Wrap(err error, code ErrorCode, message string) *DeeplinkError {
	if err == nil {
		return nil
	}
	e := New(code, message)
	e.Wrapped = err
	return e
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *DeeplinkError {
	return Wrap(err, code, fmt.Sprintf(format, args...))
}

// WithDetail adds a detail to the error
func (e *DeeplinkError) WithDetail(key string, value interface{}) *DeeplinkError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// WithDetails adds multiple details to the error
func (e *DeeplinkError) WithDetails(details map[string]interface{}) *DeeplinkError {
	for k, v := range details {
		e.WithDetail(k, v)
	}
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var dlErr *DeeplinkError
	if errors.As(err, &dlErr) {
		return dlErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a DeeplinkError
func GetErrorCode(err error) ErrorCode {
	var dlErr *DeeplinkError
	if errors.As(err, &dlErr) {
		return dlErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a DeeplinkError
func GetErrorDetails(err error) map[string]interface{} {
	var dlErr *DeeplinkError
	if errors.As(err, &dlErr) {
		return dlErr.Details
	}
	return nil
}
