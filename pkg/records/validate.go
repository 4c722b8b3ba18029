package records

import (
	"errors"
	"fmt"
	"slices"

	"github.com/dusksociety/dsm/pkg/optional"
	"github.com/dusksociety/dsm/pkg/sanitizer"
	"github.com/dusksociety/dsm/pkg/validator"
)

// Validator checks untyped submissions against the record schemas.
// A Validator is immutable after New and safe for concurrent use.
type Validator struct {
	urlSchemes []string
}

// Option configures a Validator.
type Option func(*Validator)

// WithURLSchemes restricts link fields to the given schemes.
// Passing no schemes accepts any absolute URL with a host.
func WithURLSchemes(schemes ...string) Option {
	return func(v *Validator) {
		v.urlSchemes = slices.Clone(schemes)
	}
}

// New creates a Validator. Link fields accept http and https URLs unless
// WithURLSchemes says otherwise.
func New(opts ...Option) *Validator {
	v := &Validator{urlSchemes: slices.Clone(validator.DefaultURLSchemes)}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

var std = New()

// Validate checks input against the schema for kind using the default Validator.
func Validate(kind Kind, input any) (Record, error) {
	return std.Validate(kind, input)
}

// ValidateBrief validates input as a Brief using the default Validator.
func ValidateBrief(input any) (Brief, error) { return std.Brief(input) }

// ValidateCreator validates input as a Creator using the default Validator.
func ValidateCreator(input any) (Creator, error) { return std.Creator(input) }

// ValidateSubscriber validates input as a Subscriber using the default Validator.
func ValidateSubscriber(input any) (Subscriber, error) { return std.Subscriber(input) }

// ValidateWork validates input as a Work using the default Validator.
func ValidateWork(input any) (Work, error) { return std.Work(input) }

// Validate checks input against the schema for kind.
//
// On success it returns the normalized record (Brief, Creator, Subscriber or
// Work). When fields are invalid it returns validator.ValidationErrors listing
// every violation in schema order. An input that is not a mapping, or an
// unknown kind, returns an error wrapping ErrInvalidRequest instead.
func (v *Validator) Validate(kind Kind, input any) (Record, error) {
	var (
		rec Record
		err error
	)
	switch kind {
	case KindBrief:
		rec, err = v.Brief(input)
	case KindCreator:
		rec, err = v.Creator(input)
	case KindSubscriber:
		rec, err = v.Subscriber(input)
	case KindWork:
		rec, err = v.Work(input)
	default:
		return nil, errors.Join(ErrInvalidRequest, fmt.Errorf("%w: %q", ErrUnknownKind, kind))
	}
	if err != nil {
		return nil, err
	}
	return rec, nil
}

// Brief validates input as a Brief record.
func (v *Validator) Brief(input any) (Brief, error) {
	vals, err := v.fields(KindBrief, input)
	if err != nil {
		return Brief{}, err
	}
	return Brief{
		Type:        BriefType(vals.str("type")),
		Name:        vals.str("name"),
		Email:       vals.str("email"),
		Handle:      vals.opt("handle"),
		Subject:     vals.str("subject"),
		Message:     vals.str("message"),
		BudgetRange: vals.opt("budget_range"),
		Timeline:    vals.opt("timeline"),
		References:  vals.optList("references"),
	}, nil
}

// Creator validates input as a Creator record.
func (v *Validator) Creator(input any) (Creator, error) {
	vals, err := v.fields(KindCreator, input)
	if err != nil {
		return Creator{}, err
	}
	return Creator{
		Name:       vals.str("name"),
		Email:      vals.str("email"),
		City:       vals.opt("city"),
		Discipline: vals.str("discipline"),
		Portfolio:  vals.opt("portfolio"),
		Instagram:  vals.opt("instagram"),
		Gear:       vals.opt("gear"),
		Bio:        vals.opt("bio"),
	}, nil
}

// Subscriber validates input as a Subscriber record.
func (v *Validator) Subscriber(input any) (Subscriber, error) {
	vals, err := v.fields(KindSubscriber, input)
	if err != nil {
		return Subscriber{}, err
	}
	return Subscriber{
		Email:  vals.str("email"),
		Source: vals.opt("source"),
	}, nil
}

// Work validates input as a Work record.
func (v *Validator) Work(input any) (Work, error) {
	vals, err := v.fields(KindWork, input)
	if err != nil {
		return Work{}, err
	}
	return Work{
		Title: vals.str("title"),
		Image: vals.str("image"),
		Tags:  vals.optList("tags"),
		URL:   vals.opt("url"),
	}, nil
}

// values holds the cleaned value of every provided field: a string for
// ShapeString fields, a []string for ShapeList fields. Fields that were not
// provided have no entry.
type values map[string]any

func (vs values) str(name string) string {
	s, _ := vs[name].(string)
	return s
}

func (vs values) opt(name string) optional.Value[string] {
	if s, ok := vs[name].(string); ok {
		return optional.Some(s)
	}
	return optional.None[string]()
}

func (vs values) optList(name string) optional.Value[[]string] {
	if l, ok := vs[name].([]string); ok {
		return optional.Some(l)
	}
	return optional.None[[]string]()
}

// fields walks the schema for kind and checks every declared field of input.
// Unknown keys are ignored. Checks on a single field stop at its first
// violation; checks across fields never stop early.
func (v *Validator) fields(kind Kind, input any) (values, error) {
	in, err := asInput(input)
	if err != nil {
		return nil, err
	}

	schema := schemas[kind]
	out := make(values, len(schema))
	var errs validator.ValidationErrors

	for _, f := range schema {
		raw, present := in[f.Name]
		if !present || raw == nil {
			if f.Required {
				errs.Add(validator.Required(f.Name, "").WithValue(raw).Error)
			}
			continue
		}

		switch f.Shape {
		case ShapeList:
			list, ok, ferrs := v.list(f, raw)
			if !ok {
				errs = append(errs, ferrs...)
				continue
			}
			out[f.Name] = list

		default:
			s, ok := raw.(string)
			if !ok {
				errs.Add(validator.TypeError(f.Name, raw, "string"))
				continue
			}
			clean := sanitizer.Text(s)
			if clean == "" {
				// blank optional values count as not provided
				if f.Required {
					errs.Add(validator.Required(f.Name, clean).WithValue(raw).Error)
				}
				continue
			}
			if verr, ok := v.check(f, clean, raw); !ok {
				errs.Add(verr)
				continue
			}
			if f.Format == FormatEmail {
				clean = sanitizer.NormalizeEmail(clean)
			}
			out[f.Name] = clean
		}
	}

	if !errs.IsEmpty() {
		return nil, errs
	}
	return out, nil
}

// list checks a sequence field element by element. An empty sequence is a
// provided, empty list.
func (v *Validator) list(f Field, raw any) ([]string, bool, validator.ValidationErrors) {
	items, ok := asList(raw)
	if !ok {
		return nil, false, validator.ValidationErrors{validator.TypeError(f.Name, raw, "list of strings")}
	}

	clean := make([]string, len(items))
	errs := validator.Each(f.Name, items, func(field string, i int, item any) (validator.ValidationError, bool) {
		s, ok := item.(string)
		if !ok {
			return validator.TypeError(field, item, "string"), false
		}
		clean[i] = sanitizer.Text(s)
		return v.check(f, clean[i], item)
	})
	if !errs.IsEmpty() {
		return nil, false, errs
	}
	return clean, true, nil
}

// check runs the non-empty, length, format and option rules of f against a
// cleaned string. raw is what the submitter sent and is reported on failure.
func (v *Validator) check(f Field, s string, raw any) (validator.ValidationError, bool) {
	rules := []validator.Rule{validator.Required(f.Name, s)}
	if f.MinLen > 0 || f.MaxLen > 0 {
		rules = append(rules, validator.LenRange(f.Name, s, f.MinLen, f.MaxLen))
	}
	switch f.Format {
	case FormatEmail:
		rules = append(rules, validator.ValidEmail(f.Name, s))
	case FormatURL:
		rules = append(rules, validator.ValidURLWithScheme(f.Name, s, v.urlSchemes))
	}
	if len(f.Options) > 0 {
		rules = append(rules, validator.OneOfString(f.Name, s, f.Options))
	}
	for i := range rules {
		rules[i] = rules[i].WithValue(raw)
	}
	return validator.First(rules...)
}
