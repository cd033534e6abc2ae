package domain

import (
	"errors"
	"fmt"
)

// Application errors
var (
	// ErrNotFound record not found in the data service
	ErrNotFound = errors.New("record not found")

	// ErrCustomerNotFound referenced customer does not resolve
	ErrCustomerNotFound = errors.New("customer not found")

	// ErrDataUnavailable the data service could not be reached or answered badly
	ErrDataUnavailable = errors.New("data service unavailable")

	// ErrAuthDenied credentials are invalid or the user does not exist
	ErrAuthDenied = errors.New("authentication denied")

	// ErrAuthInfra the credential lookup itself failed
	ErrAuthInfra = errors.New("authentication infrastructure failure")

	// ErrInvalidInput input failed schema validation
	ErrInvalidInput = errors.New("invalid input data")
)

// DataServiceError carries the internal detail of a failed data service call.
// It is logged at the boundary and never shown to callers directly.
type DataServiceError struct {
	Op          string
	StatusCode  int
	OriginalErr error
}

// Error implements the error interface
func (e *DataServiceError) Error() string {
	if e.OriginalErr != nil {
		return fmt.Sprintf("data service error during %s: %v", e.Op, e.OriginalErr)
	}
	return fmt.Sprintf("data service error during %s: unexpected status %d", e.Op, e.StatusCode)
}

// Unwrap returns the original error
func (e *DataServiceError) Unwrap() error {
	return e.OriginalErr
}

// Is reports every DataServiceError as ErrDataUnavailable
func (e *DataServiceError) Is(target error) bool {
	return target == ErrDataUnavailable
}

// NewDataServiceError creates a new data service error
func NewDataServiceError(op string, statusCode int, err error) *DataServiceError {
	return &DataServiceError{
		Op:          op,
		StatusCode:  statusCode,
		OriginalErr: err,
	}
}

// ValidationError represents a single field-scoped validation failure
type ValidationError struct {
	Field   string
	Message string
}

// ValidationErrors represents an ordered set of validation failures. A field
// may appear more than once when several of its rules are violated.
type ValidationErrors []ValidationError

// Error implements the error interface
func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return "validation failed"
	}

	if len(e) == 1 {
		return fmt.Sprintf("validation failed: %s - %s", e[0].Field, e[0].Message)
	}

	return fmt.Sprintf("validation failed: %d errors", len(e))
}

// Is reports every ValidationErrors value as ErrInvalidInput
func (e ValidationErrors) Is(target error) bool {
	return target == ErrInvalidInput
}

// Add appends a validation failure
func (e *ValidationErrors) Add(field, message string) {
	*e = append(*e, ValidationError{Field: field, Message: message})
}

// HasErrors reports whether any failure was recorded
func (e ValidationErrors) HasErrors() bool {
	return len(e) > 0
}

// FieldErrors groups the messages by field, preserving insertion order
// within each field.
func (e ValidationErrors) FieldErrors() map[string][]string {
	if len(e) == 0 {
		return nil
	}

	fields := make(map[string][]string, len(e))
	for _, err := range e {
		fields[err.Field] = append(fields[err.Field], err.Message)
	}
	return fields
}

// GetByField returns the first message recorded for the field
func (e ValidationErrors) GetByField(field string) string {
	for _, err := range e {
		if err.Field == field {
			return err.Message
		}
	}
	return ""
}
