package records

import (
	"fmt"
	"strings"
)

// Kind selects which record schema applies to an input.
// Its value is also the name of the document collection the record belongs to.
type Kind string

const (
	KindBrief      Kind = "brief"
	KindCreator    Kind = "creator"
	KindSubscriber Kind = "subscriber"
	KindWork       Kind = "work"
)

// Kinds returns every supported kind in a stable order.
func Kinds() []Kind {
	return []Kind{KindBrief, KindCreator, KindSubscriber, KindWork}
}

// ParseKind resolves a kind selector. Matching ignores case and surrounding
// whitespace, so "Brief" and " work " are accepted.
func ParseKind(s string) (Kind, error) {
	k := Kind(strings.ToLower(strings.TrimSpace(s)))
	if !k.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownKind, s)
	}
	return k, nil
}

// Valid reports whether k is one of the known record kinds.
func (k Kind) Valid() bool {
	switch k {
	case KindBrief, KindCreator, KindSubscriber, KindWork:
		return true
	}
	return false
}

// Collection returns the document collection name for records of this kind.
func (k Kind) Collection() string {
	return string(k)
}

func (k Kind) String() string {
	return string(k)
}
