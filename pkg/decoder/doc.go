// Package decoder turns raw submissions into the untyped records.Input
// mapping consumed by the record validator.
//
// Supported sources:
//
//   - JSON documents (JSON): a single object, numbers kept as json.Number.
//   - YAML documents (YAML): the first document of the stream, which must be
//     a mapping; dates stay literal strings.
//   - URL-encoded form data (Values): list fields collect every value.
//
// Documents larger than DefaultMaxSize are rejected. A document whose top
// level is not an object returns ErrNotObject, which callers should treat as
// an invalid request rather than a field-level problem.
//
//	in, err := decoder.Decode(decoder.Detect(path), f)
//	if err != nil {
//	    return err
//	}
//	rec, err := records.Validate(records.KindBrief, in)
package decoder
