package entity

import (
	"errors"
	"fmt"
)

// Sentinel errors for domain layer operations.
var (
	// ErrNotFound indicates that a requested catalog entry was not found
	ErrNotFound = errors.New("entity not found")

	// ErrInvalidInput indicates that the provided input is invalid
	ErrInvalidInput = errors.New("invalid input")
)

// FailureKind classifies why a fetch produced a failed DataSet.
type FailureKind string

// Failure kinds, mirroring the recoverable error taxonomy of the fetch
// boundary. Every failed DataSet carries exactly one of these.
const (
	// FailureNetwork covers transport-level failures: unreachable host,
	// DNS errors, timeouts.
	FailureNetwork FailureKind = "network"

	// FailureHTTPStatus covers non-2xx upstream responses.
	FailureHTTPStatus FailureKind = "http_status"

	// FailureParse covers response bodies that are not valid JSON.
	FailureParse FailureKind = "parse"

	// FailureShape covers valid JSON that cannot be converted to a table.
	FailureShape FailureKind = "shape"

	// FailureInvalidURL covers endpoint URLs rejected before any network
	// call is attempted.
	FailureInvalidURL FailureKind = "invalid_url"
)

// Valid reports whether the kind is one of the defined failure kinds.
func (k FailureKind) Valid() bool {
	switch k {
	case FailureNetwork, FailureHTTPStatus, FailureParse, FailureShape, FailureInvalidURL:
		return true
	}
	return false
}

// ValidationError represents a validation error with detailed field information.
// It implements the error interface and provides context about which field failed validation.
type ValidationError struct {
	Field   string
	Message string
}

// Error returns a formatted error message for the validation error.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on field '%s': %s", e.Field, e.Message)
}
