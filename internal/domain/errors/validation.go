package errors

import (
	"net/http"
	"strings"
)

// FieldViolation describes a single structural constraint a field failed.
type FieldViolation struct {
	Field string `json:"field"` // Namespaced field path, e.g. "ServiceAreas[0].PinCodes[0]".
	Rule  string `json:"rule"`  // The violated rule, e.g. "len".
	Param string `json:"param,omitempty"`
}

// String renders the violation as a single diagnostic line.
func (v FieldViolation) String() string {
	if v.Param != "" {
		return v.Field + " failed '" + v.Rule + "=" + v.Param + "'"
	}

	return v.Field + " failed '" + v.Rule + "'"
}

// ValidationError reports a ServicePartner rejected by its structural constraints.
// It matches ErrProfileValidationFailed under errors.Is.
type ValidationError struct {
	Violations []FieldViolation
}

// NewValidationError creates a validation error for the given violations.
func NewValidationError(violations []FieldViolation) *ValidationError {
	return &ValidationError{Violations: violations}
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	return ErrProfileValidationFailed.Message() + ": " + e.Details()
}

// Is makes errors.Is(err, ErrProfileValidationFailed) hold for every ValidationError.
func (e *ValidationError) Is(target error) bool {
	return target == ErrProfileValidationFailed
}

// HTTPCode returns the HTTP status code
func (e *ValidationError) HTTPCode() int {
	return http.StatusUnprocessableEntity
}

// ErrorCode returns the business error code
func (e *ValidationError) ErrorCode() string {
	return ErrProfileValidationFailed.ErrorCode()
}

// Message returns the user-friendly error message
func (e *ValidationError) Message() string {
	return ErrProfileValidationFailed.Message()
}

// Details joins every violation into one line.
func (e *ValidationError) Details() string {
	lines := make([]string, len(e.Violations))
	for i, v := range e.Violations {
		lines[i] = v.String()
	}

	return strings.Join(lines, "; ")
}

// Fields returns the violations as diagnostic strings.
func (e *ValidationError) Fields() []string {
	fields := make([]string, len(e.Violations))
	for i, v := range e.Violations {
		fields[i] = v.String()
	}

	return fields
}
