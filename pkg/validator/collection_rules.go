package validator

import "fmt"

// TypeError builds the error reported when a field holds a value of the wrong
// type, e.g. a number where a string is expected.
func TypeError(field string, value any, expected string) ValidationError {
	return ValidationError{
		Field:          field,
		Kind:           WrongType,
		Value:          value,
		Message:        fmt.Sprintf("must be a %s", expected),
		TranslationKey: "validation.type",
		TranslationValues: map[string]any{
			"field":    field,
			"expected": expected,
		},
	}
}

// ElementError wraps the failure of a single sequence element into an
// ElementInvalid error on the sequence field itself.
func ElementError(field string, index int, cause ValidationError) ValidationError {
	return ValidationError{
		Field:          field,
		Kind:           ElementInvalid,
		Value:          cause.Value,
		Index:          index,
		Cause:          cause.Kind,
		Message:        fmt.Sprintf("item %d %s", index, cause.Message),
		TranslationKey: "validation.element",
		TranslationValues: map[string]any{
			"field": field,
			"index": index,
			"cause": cause.TranslationKey,
		},
	}
}

// Each runs check against every element of values and returns one
// ElementInvalid error per failing element, in index order.
func Each[T any](field string, values []T, check func(field string, index int, value T) (ValidationError, bool)) ValidationErrors {
	var errs ValidationErrors
	for i, v := range values {
		if cause, ok := check(field, i, v); !ok {
			errs.Add(ElementError(field, i, cause))
		}
	}
	return errs
}
