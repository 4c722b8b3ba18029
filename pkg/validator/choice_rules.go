package validator

import (
	"fmt"
	"slices"
	"strings"
)

// OneOfString validates that value exactly matches one of the options.
// Matching is case-sensitive.
func OneOfString(field, value string, options []string) Rule {
	return Rule{
		Check: func() bool {
			return slices.Contains(options, value)
		},
		Error: ValidationError{
			Field:          field,
			Kind:           EnumMismatch,
			Value:          value,
			Message:        fmt.Sprintf("must be one of: %s", strings.Join(options, ", ")),
			TranslationKey: "validation.in_list",
			TranslationValues: map[string]any{
				"field":          field,
				"allowed_values": options,
			},
		},
	}
}

func ValidEnum(field, value string, enumValues []string) Rule {
	return OneOfString(field, value, enumValues)
}
