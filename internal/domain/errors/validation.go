package errors

import (
	"net/http"
	"strings"
)

// FieldViolation describes one rejected input field.
type FieldViolation struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError aggregates every violation found in one validation pass.
type ValidationError struct {
	Fields []FieldViolation
}

// NewValidationError builds a ValidationError from the collected violations.
func NewValidationError(fields ...FieldViolation) *ValidationError {
	return &ValidationError{Fields: fields}
}

// Add records another violation.
func (e *ValidationError) Add(field, message string) {
	e.Fields = append(e.Fields, FieldViolation{Field: field, Message: message})
}

// HasViolations reports whether anything was recorded.
func (e *ValidationError) HasViolations() bool {
	return e != nil && len(e.Fields) > 0
}

// Error joins the field messages.
func (e *ValidationError) Error() string {
	msgs := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		msgs = append(msgs, f.Field+": "+f.Message)
	}

	return ErrValidationFailed.Message() + ": " + strings.Join(msgs, "; ")
}

// HTTPCode returns the HTTP status code
func (e *ValidationError) HTTPCode() int {
	return http.StatusBadRequest
}

// ErrorCode returns the business error code
func (e *ValidationError) ErrorCode() string {
	return ErrValidationFailed.ErrorCode()
}

// Message returns the user-facing message
func (e *ValidationError) Message() string {
	return ErrValidationFailed.Message()
}

// Details returns the per-field violations.
func (e *ValidationError) Details() any {
	return e.Fields
}

// Is lets errors.Is(err, ErrValidationFailed) match aggregated errors.
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidationFailed
}
