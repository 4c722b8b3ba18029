package records

import "fmt"

// Input is an untyped submission: field name to decoded value, as produced by
// a JSON, YAML or form decoder. Strings, nil and sequences are meaningful;
// any other value type is reported as wrong_type for the field it sits in.
type Input map[string]any

// asInput accepts the mapping types a decoder can produce.
func asInput(v any) (Input, error) {
	switch in := v.(type) {
	case Input:
		return in, nil
	case map[string]any:
		return Input(in), nil
	case map[string]string:
		out := make(Input, len(in))
		for k, s := range in {
			out[k] = s
		}
		return out, nil
	case nil:
		return nil, fmt.Errorf("%w: input is nil", ErrInvalidRequest)
	default:
		return nil, fmt.Errorf("%w: input must be a mapping, got %T", ErrInvalidRequest, v)
	}
}

// asList accepts the sequence types a decoder can produce.
func asList(v any) ([]any, bool) {
	switch l := v.(type) {
	case []any:
		return l, true
	case []string:
		out := make([]any, len(l))
		for i, s := range l {
			out[i] = s
		}
		return out, true
	default:
		return nil, false
	}
}
