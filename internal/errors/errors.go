package errors

import (
	"fmt"
	"strings"
)

// ErrorType represents the type of error
type ErrorType string

const (
	ErrTypeSchema  ErrorType = "SCHEMA"
	ErrTypeParsing ErrorType = "PARSING"
	ErrTypeRender  ErrorType = "RENDER"
	ErrTypeExport  ErrorType = "EXPORT"
	ErrTypeStorage ErrorType = "STORAGE"
	ErrTypeConfig  ErrorType = "CONFIG"
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

// NewSchemaError reports a dataset whose columns cannot satisfy the
// required schema. It fails the run before any analysis starts, instead of
// letting an empty dataset cascade into per-report crashes.
func NewSchemaError(missing []string) *AppError {
	e := NewAppError(ErrTypeSchema,
		fmt.Sprintf("required columns missing after normalization: %s", strings.Join(missing, ", ")),
		nil)
	e.Context["missing_columns"] = missing
	return e
}

// NewParsingError creates a parsing-related error
func NewParsingError(message string, cause error) *AppError {
	return NewAppError(ErrTypeParsing, message, cause)
}

// NewRenderError wraps a chart rendering failure for one report step.
func NewRenderError(chart string, cause error) *AppError {
	return NewAppError(ErrTypeRender, fmt.Sprintf("failed to render %s", chart), cause).
		WithContext("chart", chart)
}

// NewExportError wraps a CSV or workbook export failure.
func NewExportError(target string, cause error) *AppError {
	return NewAppError(ErrTypeExport, fmt.Sprintf("failed to export %s", target), cause).
		WithContext("target", target)
}

// NewStorageError creates a storage-related error
func NewStorageError(message string, cause error) *AppError {
	return NewAppError(ErrTypeStorage, message, cause)
}

// NewConfigError creates a configuration-related error
func NewConfigError(message string, cause error) *AppError {
	return NewAppError(ErrTypeConfig, message, cause)
}

// IsType checks whether err (or anything it wraps) is an AppError of the
// given type.
func IsType(err error, errType ErrorType) bool {
	for err != nil {
		if appErr, ok := err.(*AppError); ok && appErr.Type == errType {
			return true
		}
		u, ok := err.(interface{ Unwrap() error })
		if !ok {
			return false
		}
		err = u.Unwrap()
	}
	return false
}
