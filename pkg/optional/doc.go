// Package optional provides Value, a three-state optional used for the
// optional fields of validated records.
//
//	handle := optional.Some("@dusk")
//	if v, ok := handle.Get(); ok {
//	    // provided
//	}
//
//	timeline := optional.None[string]() // explicitly not provided
//
// Values marshal to JSON and BSON as the held value or null, and report
// IsZero for anything but a held value so `omitzero`/`omitempty` tags can
// leave absent fields out of stored documents.
package optional
