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

	// Configuration and manifest errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"
	ErrConfigValid ErrorCode = "CONFIG_INVALID"

	// Field input errors
	ErrFieldsLoad  ErrorCode = "FIELDS_LOAD"
	ErrFieldsParse ErrorCode = "FIELDS_PARSE"

	// Rendering errors
	ErrPlaceholderInvalid ErrorCode = "PLACEHOLDER_INVALID"

	// FileSystem errors
	ErrFileNotFound ErrorCode = "FILE_NOT_FOUND"
	ErrFileAccess   ErrorCode = "FILE_ACCESS"
	ErrFileCreate   ErrorCode = "FILE_CREATE"
	ErrFileWrite    ErrorCode = "FILE_WRITE"
	ErrDirCreate    ErrorCode = "DIR_CREATE"
	ErrPermission   ErrorCode = "PERMISSION"
)

// TemplatizeError represents a structured error with code and details
type TemplatizeError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *TemplatizeError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *TemplatizeError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *TemplatizeError) Is(target error) bool {
	var targetErr *TemplatizeError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new TemplatizeError with the given code and message
func New(code ErrorCode, message string) *TemplatizeError {
	return &TemplatizeError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new TemplatizeError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *TemplatizeError {
	return &TemplatizeError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a TemplatizeError
func Wrap(err error, code ErrorCode, message string) *TemplatizeError {
	if err == nil {
		return nil
	}
	return &TemplatizeError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *TemplatizeError {
	if err == nil {
		return nil
	}
	return &TemplatizeError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *TemplatizeError) WithDetail(key string, value interface{}) *TemplatizeError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var tErr *TemplatizeError
	if errors.As(err, &tErr) {
		return tErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a TemplatizeError
func GetErrorCode(err error) ErrorCode {
	var tErr *TemplatizeError
	if errors.As(err, &tErr) {
		return tErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a TemplatizeError
func GetErrorDetails(err error) map[string]interface{} {
	var tErr *TemplatizeError
	if errors.As(err, &tErr) {
		return tErr.Details
	}
	return nil
}
