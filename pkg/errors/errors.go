package errors

import (
	"errors"
	"fmt"
)

// ErrorCode identifies an error category with a stable string for testing
// and user-facing messages.
type ErrorCode string

const (
	// General errors
	ErrUnknown      ErrorCode = "UNKNOWN"
	ErrInternal     ErrorCode = "INTERNAL"
	ErrInvalidInput ErrorCode = "INVALID_INPUT"

	// Symbol graph errors
	ErrCircularReference ErrorCode = "CIRCULAR_REFERENCE"
	ErrMissingSymbol     ErrorCode = "MISSING_SYMBOL"
	ErrBogusLeaf         ErrorCode = "BOGUS_LEAF"
	ErrEmptyPayload      ErrorCode = "EMPTY_PAYLOAD"

	// Path sanitization errors
	ErrPathNotFound ErrorCode = "PATH_NOT_FOUND"
	ErrPathNotDir   ErrorCode = "PATH_NOT_DIR"
	ErrPathNotFile  ErrorCode = "PATH_NOT_FILE"

	// Configuration and state errors
	ErrConfigParse ErrorCode = "CONFIG_PARSE"
	ErrServerParse ErrorCode = "SERVER_PARSE"
	ErrStateParse  ErrorCode = "STATE_PARSE"

	// Project errors
	ErrProjectExists   ErrorCode = "PROJECT_EXISTS"
	ErrProjectNotFound ErrorCode = "PROJECT_NOT_FOUND"

	// FileSystem errors
	ErrFileAccess ErrorCode = "FILE_ACCESS"
	ErrFileWrite  ErrorCode = "FILE_WRITE"
)

// StitchError is a structured error carrying a code and contextual details.
type StitchError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *StitchError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *StitchError) Unwrap() error {
	return e.Wrapped
}

// Is matches two StitchErrors by code so errors.Is works across instances.
func (e *StitchError) Is(target error) bool {
	var targetErr *StitchError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new StitchError with the given code and message
func New(code ErrorCode, message string) *StitchError {
	return &StitchError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new StitchError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *StitchError {
	return &StitchError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a StitchError
func Wrap(err error, code ErrorCode, message string) *StitchError {
	if err == nil {
		return nil
	}
	return &StitchError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *StitchError {
	if err == nil {
		return nil
	}
	return &StitchError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *StitchError) WithDetail(key string, value interface{}) *StitchError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var stitchErr *StitchError
	if errors.As(err, &stitchErr) {
		return stitchErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a StitchError
func GetErrorCode(err error) ErrorCode {
	var stitchErr *StitchError
	if errors.As(err, &stitchErr) {
		return stitchErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a StitchError
func GetErrorDetails(err error) map[string]interface{} {
	var stitchErr *StitchError
	if errors.As(err, &stitchErr) {
		return stitchErr.Details
	}
	return nil
}
