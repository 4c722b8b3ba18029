package validator

import (
	"fmt"
	"net/mail"
	"net/url"
	"slices"
	"strings"
	"unicode"
)

// DefaultURLSchemes are the schemes accepted for link fields unless configured otherwise.
var DefaultURLSchemes = []string{"http", "https"}

// ValidEmail validates that a string is a bare email address: local part, "@",
// and a dotted domain, with no whitespace or display name.
func ValidEmail(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return IsEmail(value)
		},
		Error: ValidationError{
			Field:          field,
			Kind:           FormatMismatch,
			Value:          value,
			Message:        "must be a valid email address",
			TranslationKey: "validation.email",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

// IsEmail reports whether value satisfies the email grammar used by ValidEmail.
func IsEmail(value string) bool {
	if value == "" || strings.IndexFunc(value, unicode.IsSpace) >= 0 {
		return false
	}

	addr, err := mail.ParseAddress(value)
	if err != nil {
		return false
	}

	// ParseAddress accepts "Name <a@b.c>" and angle forms; only bare addresses are allowed.
	if addr.Name != "" || addr.Address != value {
		return false
	}

	at := strings.LastIndex(value, "@")
	if at <= 0 {
		return false
	}
	domain := value[at+1:]

	if !strings.Contains(domain, ".") {
		return false
	}
	for part := range strings.SplitSeq(domain, ".") {
		if part == "" {
			return false
		}
	}

	return true
}

// ValidURL validates that a string is an absolute URL with a scheme and host.
func ValidURL(field, value string) Rule {
	return Rule{
		Check: func() bool {
			_, ok := parseAbsoluteURL(value)
			return ok
		},
		Error: ValidationError{
			Field:          field,
			Kind:           FormatMismatch,
			Value:          value,
			Message:        "must be a valid URL",
			TranslationKey: "validation.url",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

// ValidURLWithScheme validates that a string is an absolute URL whose scheme
// is one of schemes (compared case-insensitively). An empty scheme list
// behaves like ValidURL.
func ValidURLWithScheme(field, value string, schemes []string) Rule {
	if len(schemes) == 0 {
		return ValidURL(field, value)
	}
	return Rule{
		Check: func() bool {
			u, ok := parseAbsoluteURL(value)
			if !ok {
				return false
			}
			return slices.ContainsFunc(schemes, func(s string) bool {
				return strings.EqualFold(s, u.Scheme)
			})
		},
		Error: ValidationError{
			Field:          field,
			Kind:           FormatMismatch,
			Value:          value,
			Message:        fmt.Sprintf("must be a valid URL with scheme: %s", strings.Join(schemes, ", ")),
			TranslationKey: "validation.url_scheme",
			TranslationValues: map[string]any{
				"field":   field,
				"schemes": schemes,
			},
		},
	}
}

func parseAbsoluteURL(value string) (*url.URL, bool) {
	if value == "" || strings.IndexFunc(value, unicode.IsSpace) >= 0 {
		return nil, false
	}

	u, err := url.Parse(value)
	if err != nil {
		return nil, false
	}

	// Must have a scheme and host
	if !u.IsAbs() || u.Host == "" || u.Hostname() == "" {
		return nil, false
	}

	return u, true
}
