// Package records defines the four submission records of the site backend
// (Brief, Creator, Subscriber, Work) and validates untyped input against them.
//
// Each kind owns a declarative field table (see Schema): field name, whether
// it is required, its shape (string or list of strings), inclusive character
// bounds, format (email or absolute URL) and allowed options. Validation walks
// that table generically:
//
//	rec, err := records.Validate(records.KindSubscriber, records.Input{
//	    "email":  "a@b.com",
//	    "source": "footer",
//	})
//	switch {
//	case errors.Is(err, records.ErrInvalidRequest):
//	    // not a mapping, or unknown kind
//	case validator.IsValidationError(err):
//	    for _, e := range validator.ExtractValidationErrors(err) {
//	        // e.Field, e.Kind, e.Value (and e.Index for list fields)
//	    }
//	default:
//	    sub := rec.(records.Subscriber)
//	}
//
// Rules applied to every field:
//
//   - String values are cleaned (control characters removed, NFC, trimmed)
//     before any check; blank values of required fields are missing_required.
//   - Null and absent keys are treated alike.
//   - Optional fields that are absent, null or blank become optional.None.
//   - Each field reports at most its first violation, in the order
//     type, length, format, options. Every field is checked.
//   - List elements are checked individually and each failing element is
//     reported as element_invalid with its index.
//   - Unknown keys are ignored.
//
// Link fields accept http and https by default; see WithURLSchemes.
// Validation has no side effects and a Validator is safe for concurrent use.
package records
