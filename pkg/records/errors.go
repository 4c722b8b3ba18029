package records

import "errors"

var (
	// ErrInvalidRequest is returned when no per-field analysis is possible:
	// the input is not a mapping or the kind is not recognized.
	ErrInvalidRequest = errors.New("invalid validation request")

	// ErrUnknownKind is returned for a kind selector outside the four record kinds.
	ErrUnknownKind = errors.New("unknown record kind")
)
