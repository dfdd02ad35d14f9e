package errors

import (
	"errors"
	"fmt"
)

// ErrorType classifies pipeline and host failures
type ErrorType string

const (
	ErrTypeParse         ErrorType = "PARSE"
	ErrTypeEmptySource   ErrorType = "EMPTY_SOURCE"
	ErrTypeSelection     ErrorType = "SELECTION"
	ErrTypeProjection    ErrorType = "EMPTY_PROJECTION"
	ErrTypeNormalization ErrorType = "DEGENERATE_NORMALIZATION"
	ErrTypeCoercion      ErrorType = "COERCION"
	ErrTypeValidation    ErrorType = "VALIDATION"
	ErrTypeStorage       ErrorType = "STORAGE"
	ErrTypeConfig        ErrorType = "CONFIG"
)

// AppError represents an application-specific error
type AppError struct {
	Type    ErrorType
	Message string
	Cause   error
	Context map[string]interface{}
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Type, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Type, e.Message)
}

// Unwrap allows errors.Is and errors.As to work with AppError
func (e *AppError) Unwrap() error {
	return e.Cause
}

// WithContext adds context to the error
func (e *AppError) WithContext(key string, value interface{}) *AppError {
	if e.Context == nil {
		e.Context = make(map[string]interface{})
	}
	e.Context[key] = value
	return e
}

// NewAppError creates a new application error
func NewAppError(errType ErrorType, message string, cause error) *AppError {
	return &AppError{
		Type:    errType,
		Message: message,
		Cause:   cause,
		Context: make(map[string]interface{}),
	}
}

// Helper constructors for the pipeline taxonomy

// NewEmptySourceError signals a source with zero rows or zero columns.
// View requests against such a source must short-circuit with a clear
// "nothing to display" result instead of failing deep in a transformation.
func NewEmptySourceError(message string) *AppError {
	return NewAppError(ErrTypeEmptySource, message, nil)
}

// NewSelectionError signals an unsatisfiable range selection: fewer than
// two distinct selectable index points, or an out-of-domain label.
func NewSelectionError(message string) *AppError {
	return NewAppError(ErrTypeSelection, message, nil)
}

// NewEmptyProjectionError signals an all-columns request over a range
// with no numeric columns.
func NewEmptyProjectionError(message string) *AppError {
	return NewAppError(ErrTypeProjection, message, nil)
}

// NewParseError creates a parsing-related error
func NewParseError(message string, cause error) *AppError {
	return NewAppError(ErrTypeParse, message, cause)
}

// NewStorageError creates a storage-related error
func NewStorageError(message string, cause error) *AppError {
	return NewAppError(ErrTypeStorage, message, cause)
}

// NewValidationError creates a validation-related error
func NewValidationError(message string, cause error) *AppError {
	return NewAppError(ErrTypeValidation, message, cause)
}

// NewConfigError creates a configuration-related error
func NewConfigError(message string, cause error) *AppError {
	return NewAppError(ErrTypeConfig, message, cause)
}

// IsType reports whether err is an AppError of the given type
func IsType(err error, errType ErrorType) bool {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Type == errType
	}
	return false
}

// GetType returns the error type, or empty string for foreign errors
func GetType(err error) ErrorType {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Type
	}
	return ""
}
