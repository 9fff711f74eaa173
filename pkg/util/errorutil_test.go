package util

import (
	"errors"
	"net/http"
	"testing"

	"github.com/jackc/pgx/v5"
)

func TestValidationErrorCarriesField(t *testing.T) {
	err := NewValidationError("email", "invalid email address")

	var de *DomainError
	if !errors.As(err, &de) {
		t.Fatalf("expected DomainError, got %T", err)
	}
	if de.Code != "VALIDATION_FAILED" || de.HTTPStatus != http.StatusUnprocessableEntity {
		t.Fatalf("unexpected code/status: %s/%d", de.Code, de.HTTPStatus)
	}
	if de.Details["field"] != "email" {
		t.Fatalf("expected field detail, got %v", de.Details)
	}
}

func TestMutationErrorMapsMissingRowToNotFound(t *testing.T) {
	err := NewMutationError(pgx.ErrNoRows)
	var de *DomainError
	if !errors.As(err, &de) {
		t.Fatalf("expected DomainError, got %T", err)
	}
	if de.HTTPStatus != http.StatusNotFound {
		t.Fatalf("a vanished row must read as 404, got %d", de.HTTPStatus)
	}

	err = NewMutationError(errors.New("connection refused"))
	errors.As(err, &de)
	if de.HTTPStatus != http.StatusBadGateway {
		t.Fatalf("an infrastructure failure must read as 502, got %d", de.HTTPStatus)
	}
}

func TestToDomainErrorPassthrough(t *testing.T) {
	original := NewForbidden("access denied")
	mapped := ToDomainError(original)
	if mapped.Code != "FORBIDDEN" || mapped.HTTPStatus != http.StatusForbidden {
		t.Fatalf("existing DomainError must pass through unchanged, got %s/%d", mapped.Code, mapped.HTTPStatus)
	}
}

func TestToDomainErrorMapsUnknowns(t *testing.T) {
	mapped := ToDomainError(errors.New("boom"))
	if mapped.Code != "INTERNAL_ERROR" || mapped.HTTPStatus != http.StatusInternalServerError {
		t.Fatalf("unknown errors must map to INTERNAL_ERROR, got %s/%d", mapped.Code, mapped.HTTPStatus)
	}

	mapped = ToDomainError(pgx.ErrNoRows)
	if mapped.Code != "NOT_FOUND" {
		t.Fatalf("missing rows must map to NOT_FOUND, got %s", mapped.Code)
	}

	if ToDomainError(nil) != nil {
		t.Fatal("nil must map to nil")
	}
}

func TestUnwrapPreservesCause(t *testing.T) {
	cause := errors.New("connection refused")
	err := NewSubmissionError(cause)
	if !errors.Is(err, cause) {
		t.Fatal("wrapped cause must stay reachable via errors.Is")
	}
}
