// Package validator provides small, composable validation rules and the
// field-level error taxonomy used by the record schemas.
//
// A Rule pairs a boolean Check with a ValidationError describing the failure.
// Rules are evaluated with Apply, which collects every failure, or First,
// which stops at the first failure and is used to chain checks on a single
// field. Failures are returned as ValidationErrors, a slice type that
// implements the error interface, so a caller gets every field problem in one
// return value.
//
// Each ValidationError names the field, the violated constraint (Violation),
// the received value and, for sequence fields, the failing element index and
// the element's own violation:
//
//	missing_required     required field absent or blank
//	wrong_type           value of the wrong type (e.g. number for a string)
//	length_out_of_range  character count outside the inclusive bounds
//	format_mismatch      not an email address / absolute URL
//	enum_mismatch        value outside the allowed option set
//	element_invalid      a sequence element failed; see Index and Cause
//
// # Usage
//
//	err := validator.Apply(
//	    validator.Required("name", name),
//	    validator.ValidEmail("email", email),
//	    validator.LenRange("message", message, 10, 5000),
//	)
//	if verrs := validator.ExtractValidationErrors(err); verrs != nil {
//	    for _, e := range verrs {
//	        // e.Field, e.Kind, e.Value
//	    }
//	}
//
// Translation keys and values are attached to every error so a host can
// render localized messages.
//
// All rules are stateless and safe for concurrent use.
package validator
