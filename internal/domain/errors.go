package domain

import "fmt"

// SubmitErrorKind tags a domain failure raised by a submit action
type SubmitErrorKind string

const (
	KindAddressNotFound    SubmitErrorKind = "ADDRESS_NOT_FOUND"
	KindCoverageError      SubmitErrorKind = "COVERAGE_ERROR"
	KindValidationFailed   SubmitErrorKind = "VALIDATION_FAILED"
	KindDuplicateEmail     SubmitErrorKind = "DUPLICATE_EMAIL"
	KindDateOutOfRange     SubmitErrorKind = "DATE_OUT_OF_RANGE"
	KindServiceUnavailable SubmitErrorKind = "SERVICE_UNAVAILABLE"
)

// SubmitError is a tagged domain failure. Values are built once at the
// failure site and never modified afterwards.
type SubmitError struct {
	kind   SubmitErrorKind
	field  string
	detail string
}

// NewSubmitError creates a step-level domain error
func NewSubmitError(kind SubmitErrorKind, detail string) *SubmitError {
	return &SubmitError{kind: kind, detail: detail}
}

// NewFieldSubmitError creates a domain error attached to a single field
func NewFieldSubmitError(kind SubmitErrorKind, field, detail string) *SubmitError {
	return &SubmitError{kind: kind, field: field, detail: detail}
}

// Kind returns the error tag
func (e *SubmitError) Kind() SubmitErrorKind { return e.kind }

// Code returns the stable error code
func (e *SubmitError) Code() string { return string(e.kind) }

// Field returns the field the error belongs to, or "" for step-level errors
func (e *SubmitError) Field() string { return e.field }

// Detail returns the technical detail (never shown to the customer)
func (e *SubmitError) Detail() string { return e.detail }

func (e *SubmitError) Error() string {
	if e.field != "" {
		return fmt.Sprintf("%s: %s: %s", e.kind, e.field, e.detail)
	}
	return fmt.Sprintf("%s: %s", e.kind, e.detail)
}
