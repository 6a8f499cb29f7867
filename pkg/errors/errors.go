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
	ErrPermission    ErrorCode = "PERMISSION"

	// Configuration errors. Any of these is fatal to starting a run.
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"
	ErrConfigValid ErrorCode = "CONFIG_INVALID"

	// Organize run errors, recorded per source or per file
	ErrSourceNotFound ErrorCode = "SOURCE_NOT_FOUND"
	ErrMoveFailed     ErrorCode = "MOVE_FAILED"
	ErrWalk           ErrorCode = "WALK"

	// FileSystem errors
	ErrFileAccess ErrorCode = "FILE_ACCESS"
	ErrFileWrite  ErrorCode = "FILE_WRITE"
	ErrDirCreate  ErrorCode = "DIR_CREATE"
)

// SortieError represents a structured error with code and details
type SortieError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *SortieError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *SortieError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *SortieError) Is(target error) bool {
	var targetErr *SortieError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new SortieError with the given code and message
func New(code ErrorCode, message string) *SortieError {
	return &SortieError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new SortieError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *SortieError {
	return &SortieError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a SortieError
func Wrap(err error, code ErrorCode, message string) *SortieError {
	if err == nil {
		return nil
	}
	return &SortieError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *SortieError {
	if err == nil {
		return nil
	}
	return &SortieError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *SortieError) WithDetail(key string, value interface{}) *SortieError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var sortieErr *SortieError
	if errors.As(err, &sortieErr) {
		return sortieErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a SortieError
func GetErrorCode(err error) ErrorCode {
	var sortieErr *SortieError
	if errors.As(err, &sortieErr) {
		return sortieErr.Code
	}
	return ErrUnknown
}

// IsConfigError reports whether err is one of the configuration error codes
// that must stop a run before any file is touched.
func IsConfigError(err error) bool {
	switch GetErrorCode(err) {
	case ErrConfigLoad, ErrConfigParse, ErrConfigValid:
		return true
	}
	return false
}

// GetErrorDetails returns the details from an error, or nil if not a SortieError
func GetErrorDetails(err error) map[string]interface{} {
	var sortieErr *SortieError
	if errors.As(err, &sortieErr) {
		return sortieErr.Details
	}
	return nil
}
