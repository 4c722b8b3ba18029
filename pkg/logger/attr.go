package logger

import (
	"log/slog"
	"strconv"

	"github.com/dusksociety/dsm/pkg/records"
	"github.com/dusksociety/dsm/pkg/validator"
)

// Group creates a slog group attribute from the provided attributes.
func Group(name string, attrs ...slog.Attr) slog.Attr {
	return slog.Attr{Key: name, Value: slog.GroupValue(attrs...)}
}

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Kind records the record kind under the key "kind".
func Kind(kind records.Kind) slog.Attr {
	return slog.String("kind", string(kind))
}

// Source records the origin of a submission (file name, "stdin", ...) under the key "source".
func Source(name string) slog.Attr {
	return slog.String("source", name)
}

// Violations groups field errors under the key "violations", one entry per
// error keyed by its position: "0" => "email: format_mismatch".
// Element errors include the index: "references[1]: element_invalid".
// If errs is empty, it returns an empty Attr.
func Violations(errs validator.ValidationErrors) slog.Attr {
	if len(errs) == 0 {
		return slog.Attr{}
	}
	as := make([]slog.Attr, 0, len(errs))
	for i, e := range errs {
		field := e.Field
		if e.Kind == validator.ElementInvalid {
			field += "[" + strconv.Itoa(e.Index) + "]"
		}
		as = append(as, slog.String(strconv.Itoa(i), field+": "+string(e.Kind)))
	}
	return slog.Attr{Key: "violations", Value: slog.GroupValue(as...)}
}
