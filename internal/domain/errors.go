package domain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrValidation matches any *ValidationError via errors.Is
	ErrValidation = errors.New("validation failed")
	// ErrDegenerateInput matches any *DegenerateInputError via errors.Is
	ErrDegenerateInput = errors.New("degenerate input")
)

// FieldError describes one missing or malformed field
type FieldError struct {
	Field   string `json:"field"`
	Problem string `json:"problem"`
}

// ValidationError lists every field that stopped a calculation from running.
// The caller should surface the fields and allow resubmission.
type ValidationError struct {
	Calculator string       `json:"calculator"`
	Fields     []FieldError `json:"fields"`
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.Field+": "+f.Problem)
	}
	return fmt.Sprintf("%s: invalid input (%s)", e.Calculator, strings.Join(parts, "; "))
}

func (e *ValidationError) Is(target error) bool { return target == ErrValidation }

// Add records a problem with a field
func (e *ValidationError) Add(field, problem string) {
	e.Fields = append(e.Fields, FieldError{Field: field, Problem: problem})
}

// FieldNames returns the offending field names in the order they were found
func (e *ValidationError) FieldNames() []string {
	names := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		names = append(names, f.Field)
	}
	return names
}

// ErrOrNil returns e when it holds at least one field, nil otherwise.
func (e *ValidationError) ErrOrNil() error {
	if len(e.Fields) == 0 {
		return nil
	}
	return e
}

// DegenerateInputError is returned when inputs make a formula undefined,
// for example a zero interest rate in the EMI formula or a goal date that
// is not in a future month.
type DegenerateInputError struct {
	Calculator string `json:"calculator"`
	Reason     string `json:"reason"`
}

func (e *DegenerateInputError) Error() string {
	return fmt.Sprintf("%s: %s", e.Calculator, e.Reason)
}

func (e *DegenerateInputError) Is(target error) bool { return target == ErrDegenerateInput }
