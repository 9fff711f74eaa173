package util

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/jackc/pgx/v5"
)

// DomainError standardizes application errors.
type DomainError struct {
	Code       string
	Message    string
	HTTPStatus int
	Details    map[string]any
	Err        error
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *DomainError) Unwrap() error {
	return e.Err
}

// NewDomainError constructs a DomainError.
func NewDomainError(code, message string, status int, details map[string]any) *DomainError {
	return &DomainError{Code: code, Message: message, HTTPStatus: status, Details: details}
}

// NewValidationError reports the first violated field of a submitted payload.
// It never reaches the persistence layer.
func NewValidationError(field, reason string) error {
	return NewDomainError("VALIDATION_FAILED", reason, http.StatusUnprocessableEntity,
		map[string]any{"field": field})
}

// NewSubmissionError wraps a persistence failure during record creation.
func NewSubmissionError(err error) error {
	return &DomainError{
		Code:       "SUBMISSION_FAILED",
		Message:    "failed to submit record",
		HTTPStatus: http.StatusBadGateway,
		Err:        err,
	}
}

// NewFetchError wraps a persistence failure during a read. Non-fatal for the
// caller; previously displayed data stays valid.
func NewFetchError(err error) error {
	return &DomainError{
		Code:       "FETCH_FAILED",
		Message:    "failed to fetch records",
		HTTPStatus: http.StatusBadGateway,
		Err:        err,
	}
}

// NewMutationError wraps a persistence failure during approve/reject/delete.
// A missing row maps to 404 so a racing second delete reads as not-found.
func NewMutationError(err error) error {
	status := http.StatusBadGateway
	message := "failed to apply mutation"
	if errors.Is(err, pgx.ErrNoRows) {
		status = http.StatusNotFound
		message = "record not found"
	}
	return &DomainError{
		Code:       "MUTATION_FAILED",
		Message:    message,
		HTTPStatus: status,
		Err:        err,
	}
}

func NewNotFound(resource string) error {
	return &DomainError{
		Code:       "NOT_FOUND",
		Message:    fmt.Sprintf("%s not found", resource),
		HTTPStatus: http.StatusNotFound,
	}
}

func NewUnauthorized(message string) error {
	return NewDomainError("UNAUTHORIZED", message, http.StatusUnauthorized, nil)
}

func NewForbidden(message string) error {
	return NewDomainError("FORBIDDEN", message, http.StatusForbidden, nil)
}

func NewConflict(message string, details map[string]any) error {
	return NewDomainError("CONFLICT", message, http.StatusConflict, details)
}

func NewInternalError(err error) error {
	return &DomainError{
		Code:       "INTERNAL_ERROR",
		Message:    "internal server error",
		HTTPStatus: http.StatusInternalServerError,
		Err:        err,
	}
}

// ToDomainError converts generic errors to DomainError.
func ToDomainError(err error) *DomainError {
	if err == nil {
		return nil
	}
	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr
	}
	if errors.Is(err, pgx.ErrNoRows) {
		if de, ok := NewNotFound("resource").(*DomainError); ok {
			return de
		}
	}
	if de, ok := NewInternalError(err).(*DomainError); ok {
		return de
	}
	return &DomainError{
		Code:       "INTERNAL_ERROR",
		Message:    "internal server error",
		HTTPStatus: http.StatusInternalServerError,
		Err:        err,
	}
}

func MapError(err error) error {
	return ToDomainError(err)
}
