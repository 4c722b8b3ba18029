package validator

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Required validates that a string is not empty after trimming whitespace.
func Required(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return strings.TrimSpace(value) != ""
		},
		Error: ValidationError{
			Field:          field,
			Kind:           MissingRequired,
			Value:          value,
			Message:        "field is required",
			TranslationKey: "validation.required",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

// LenRange validates that the number of characters (code points) in value is
// within [min, max]. A non-positive max means no upper bound.
func LenRange(field, value string, min, max int) Rule {
	return Rule{
		Check: func() bool {
			n := utf8.RuneCountInString(value)
			if n < min {
				return false
			}
			return max <= 0 || n <= max
		},
		Error: ValidationError{
			Field:          field,
			Kind:           LengthOutOfRange,
			Value:          value,
			Message:        lengthMessage(min, max),
			TranslationKey: "validation.length_range",
			TranslationValues: map[string]any{
				"field": field,
				"min":   min,
				"max":   max,
			},
		},
	}
}

func MinLen(field, value string, min int) Rule {
	return LenRange(field, value, min, 0)
}

func MaxLen(field, value string, max int) Rule {
	return LenRange(field, value, 0, max)
}

func lengthMessage(min, max int) string {
	switch {
	case max <= 0:
		return fmt.Sprintf("must be at least %d characters long", min)
	case min <= 0:
		return fmt.Sprintf("must be at most %d characters long", max)
	default:
		return fmt.Sprintf("must be between %d and %d characters long", min, max)
	}
}
