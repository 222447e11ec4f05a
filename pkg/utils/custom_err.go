package utils

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrInvalidDateRange   = errors.New("end date must not be before start date")
	ErrAccountNotFound    = errors.New("account not found")
	ErrEmailAlreadyExists = errors.New("email already registered")
	ErrUsernameTaken      = errors.New("username already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid or expired token")
	ErrTripNotFound       = errors.New("trip not found")
	ErrItineraryNotFound  = errors.New("itinerary not found")
	ErrAIUpstream         = errors.New("generative model unavailable")
	ErrContentNotJSON     = errors.New("model response was not valid JSON")
	ErrDatabaseError      = errors.New("database error")
)

// SchemaViolation pinpoints one field of the model output that broke the
// itinerary content contract.
type SchemaViolation struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

func (v SchemaViolation) String() string {
	return fmt.Sprintf("%s: %s", v.Field, v.Reason)
}

// SchemaViolationError carries every violation found in one pass so the
// caller sees the full diagnostic list, not just the first failure.
type SchemaViolationError struct {
	Violations []SchemaViolation
}

func (e *SchemaViolationError) Error() string {
	parts := make([]string, 0, len(e.Violations))
	for _, v := range e.Violations {
		parts = append(parts, v.String())
	}
	return "model response did not match itinerary schema: " + strings.Join(parts, "; ")
}

func NewSchemaViolationError(violations []SchemaViolation) error {
	return &SchemaViolationError{Violations: violations}
}
