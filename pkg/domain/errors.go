// Package domain holds the error taxonomy shared by all domain packages.
package domain

import (
	"sort"
	"strings"
)

// ValidationError reports a business-rule or input violation. It carries a
// structured field-to-message map so callers can surface per-field errors
// instead of one concatenated string.
type ValidationError struct {
	// Message is set for single-rule violations that are not tied to a field.
	Message string
	// Fields maps a field name to the violation message for that field.
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	msgs := make([]string, 0, len(e.Fields))
	for f := range e.Fields {
		msgs = append(msgs, e.Fields[f])
	}
	sort.Strings(msgs)
	return strings.Join(msgs, ", ")
}

// NewValidationError creates a ValidationError with a single message.
func NewValidationError(message string) *ValidationError {
	return &ValidationError{Message: message}
}

// NewFieldValidationError creates a ValidationError from a field map.
func NewFieldValidationError(fields map[string]string) *ValidationError {
	return &ValidationError{Fields: fields}
}
