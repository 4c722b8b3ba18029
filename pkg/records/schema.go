package records

import (
	"fmt"
	"slices"
)

// Shape is the structural type a field accepts.
type Shape uint8

const (
	// ShapeString accepts a single string.
	ShapeString Shape = iota
	// ShapeList accepts a sequence of strings; each element is checked on its own.
	ShapeList
)

// Format is the grammar a string (or each list element) must satisfy.
type Format uint8

const (
	FormatNone Format = iota
	FormatEmail
	FormatURL
)

// Field describes one declared field of a record schema.
// MinLen and MaxLen count characters and are inclusive; zero means unbounded.
type Field struct {
	Name     string
	Required bool
	Shape    Shape
	MinLen   int
	MaxLen   int
	Format   Format
	Options  []string
}

// BriefType is the enumerated type of a brief.
type BriefType string

const (
	BriefBrand  BriefType = "brand"
	BriefArtist BriefType = "artist"
)

var briefTypes = []string{string(BriefBrand), string(BriefArtist)}

var schemas = map[Kind][]Field{
	KindBrief: {
		{Name: "type", Required: true, Options: briefTypes},
		{Name: "name", Required: true, MinLen: 2, MaxLen: 120},
		{Name: "email", Required: true, Format: FormatEmail},
		{Name: "handle"},
		{Name: "subject", Required: true, MinLen: 2, MaxLen: 200},
		{Name: "message", Required: true, MinLen: 10, MaxLen: 5000},
		{Name: "budget_range"},
		{Name: "timeline"},
		{Name: "references", Shape: ShapeList, Format: FormatURL},
	},
	KindCreator: {
		{Name: "name", Required: true, MinLen: 2, MaxLen: 120},
		{Name: "email", Required: true, Format: FormatEmail},
		{Name: "city"},
		{Name: "discipline", Required: true},
		{Name: "portfolio", Format: FormatURL},
		{Name: "instagram"},
		{Name: "gear"},
		{Name: "bio", MaxLen: 1000},
	},
	KindSubscriber: {
		{Name: "email", Required: true, Format: FormatEmail},
		{Name: "source"},
	},
	KindWork: {
		{Name: "title", Required: true},
		{Name: "image", Required: true, Format: FormatURL},
		{Name: "tags", Shape: ShapeList},
		{Name: "url", Format: FormatURL},
	},
}

// Schema returns the field table for kind in declaration order.
// The returned slice is a copy and may be modified freely.
func Schema(kind Kind) ([]Field, error) {
	fields, ok := schemas[kind]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}
	out := make([]Field, len(fields))
	for i, f := range fields {
		f.Options = slices.Clone(f.Options)
		out[i] = f
	}
	return out, nil
}
