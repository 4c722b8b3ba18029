package validator

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// Violation names the kind of constraint a field failed.
type Violation string

const (
	MissingRequired  Violation = "missing_required"
	WrongType        Violation = "wrong_type"
	LengthOutOfRange Violation = "length_out_of_range"
	FormatMismatch   Violation = "format_mismatch"
	EnumMismatch     Violation = "enum_mismatch"
	// ElementInvalid reports a failing element of a sequence field.
	// The element position is carried in ValidationError.Index and the
	// element's own violation in ValidationError.Cause.
	ElementInvalid Violation = "element_invalid"
)

// ValidationError represents a single validation error with translation support.
type ValidationError struct {
	Field             string
	Kind              Violation
	Value             any
	Index             int
	Cause             Violation
	Message           string
	TranslationKey    string
	TranslationValues map[string]any
}

// MarshalJSON renders the error for API consumers. Index and cause are only
// emitted for element errors, so element 0 is never mistaken for "no index".
func (e ValidationError) MarshalJSON() ([]byte, error) {
	out := struct {
		Field   string    `json:"field"`
		Kind    Violation `json:"kind"`
		Value   any       `json:"value"`
		Index   *int      `json:"index,omitempty"`
		Cause   Violation `json:"cause,omitempty"`
		Message string    `json:"message,omitempty"`
	}{
		Field:   e.Field,
		Kind:    e.Kind,
		Value:   e.Value,
		Message: e.Message,
	}
	if e.Kind == ElementInvalid {
		idx := e.Index
		out.Index = &idx
		out.Cause = e.Cause
	}
	return json.Marshal(out)
}

// ValidationErrors represents a collection of validation errors.
type ValidationErrors []ValidationError

func (ve ValidationErrors) Error() string {
	if len(ve) == 0 {
		return "validation failed"
	}

	var parts []string
	for _, err := range ve {
		parts = append(parts, fmt.Sprintf("%s: %s", err.Field, err.Message))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Is reports whether target is ErrValidationFailed.
func (ve ValidationErrors) Is(target error) bool {
	return target == ErrValidationFailed
}

func (ve *ValidationErrors) Add(err ValidationError) {
	*ve = append(*ve, err)
}

func (ve ValidationErrors) Has(field string) bool {
	for _, err := range ve {
		if err.Field == field {
			return true
		}
	}
	return false
}

func (ve ValidationErrors) Get(field string) []string {
	var messages []string
	for _, err := range ve {
		if err.Field == field {
			messages = append(messages, err.Message)
		}
	}
	return messages
}

func (ve ValidationErrors) GetErrors(field string) []ValidationError {
	var errors []ValidationError
	for _, err := range ve {
		if err.Field == field {
			errors = append(errors, err)
		}
	}
	return errors
}

func (ve ValidationErrors) Fields() []string {
	var fields []string
	seen := make(map[string]bool)
	for _, err := range ve {
		if !seen[err.Field] {
			fields = append(fields, err.Field)
			seen[err.Field] = true
		}
	}
	return fields
}

func (ve ValidationErrors) IsEmpty() bool {
	return len(ve) == 0
}

// Rule represents a single validation rule.
type Rule struct {
	Check func() bool
	Error ValidationError
}

// WithValue returns a copy of the rule that reports v as the received value.
func (r Rule) WithValue(v any) Rule {
	r.Error.Value = v
	return r
}

// Apply executes multiple validation rules and returns any validation errors.
func Apply(rules ...Rule) error {
	var errors ValidationErrors

	for _, rule := range rules {
		if !rule.Check() {
			errors = append(errors, rule.Error)
		}
	}

	if errors.IsEmpty() {
		return nil
	}

	return errors
}

// First evaluates rules in order and stops at the first failing one.
// It is used for checks that only make sense once the previous one holds,
// e.g. a format check after a length check on the same field.
func First(rules ...Rule) (ValidationError, bool) {
	for _, rule := range rules {
		if !rule.Check() {
			return rule.Error, false
		}
	}
	return ValidationError{}, true
}

// ExtractValidationErrors extracts ValidationErrors from an error.
func ExtractValidationErrors(err error) ValidationErrors {
	if err == nil {
		return nil
	}

	var validationErr ValidationErrors
	if errors.As(err, &validationErr) {
		return validationErr
	}

	return nil
}

func IsValidationError(err error) bool {
	if err == nil {
		return false
	}

	var validationErr ValidationErrors
	return errors.As(err, &validationErr)
}
