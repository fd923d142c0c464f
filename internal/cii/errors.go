package cii

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/rezonia/facturx/internal/profile"
)

// ErrExtendedUnsupported is returned when generation is requested for the
// EXTENDED profile, which this library does not produce.
var ErrExtendedUnsupported = errors.New("the EXTENDED profile is not supported")

// ValidationError represents a structural or format failure on one field.
type ValidationError struct {
	Field   string
	Value   interface{}
	Rule    string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Value != nil {
		return fmt.Sprintf("validation failed on %s: %s (value=%v, rule=%s)", e.Field, e.Message, e.Value, e.Rule)
	}
	return fmt.Sprintf("validation failed on %s: %s (rule=%s)", e.Field, e.Message, e.Rule)
}

// NewValidationError creates a new validation error
func NewValidationError(field string, value interface{}, rule, message string) *ValidationError {
	return &ValidationError{
		Field:   field,
		Value:   value,
		Rule:    rule,
		Message: message,
	}
}

// ProfileError reports a field populated below its minimum profile. Strict
// validation rejects such documents; the renderer would otherwise drop the
// field silently and hide the caller's mistake.
type ProfileError struct {
	Field    string
	Required profile.Profile
	Declared profile.Profile
}

func (e *ProfileError) Error() string {
	return fmt.Sprintf("field %s requires profile %s or above, document declares %s",
		e.Field, e.Required, e.Declared)
}

// NewProfileError creates a new profile gating error
func NewProfileError(field string, required, declared profile.Profile) *ProfileError {
	return &ProfileError{Field: field, Required: required, Declared: declared}
}

// ConsistencyError reports a monetary reconciliation failure: the named rule
// did not hold within tolerance. Both the computed and the declared values
// are carried so the caller can see the difference.
type ConsistencyError struct {
	Rule     string
	Computed decimal.Decimal
	Declared decimal.Decimal
}

func (e *ConsistencyError) Error() string {
	return fmt.Sprintf("monetary consistency rule %s failed: computed %s, declared %s",
		e.Rule, e.Computed.StringFixed(2), e.Declared.StringFixed(2))
}

// NewConsistencyError creates a new monetary consistency error
func NewConsistencyError(rule string, computed, declared decimal.Decimal) *ConsistencyError {
	return &ConsistencyError{Rule: rule, Computed: computed, Declared: declared}
}
