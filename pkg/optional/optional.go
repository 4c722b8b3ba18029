package optional

import (
	"bytes"
	"encoding/json"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"
)

type state uint8

const (
	unset state = iota
	none
	some
)

// Value holds an optional field of a validated record.
//
// It has three states: unset (the zero value, never produced by validation),
// none (the submitter did not provide the field) and some (a value was
// provided). Keeping "none" apart from the zero value means an omitted field
// is never confused with an empty string.
type Value[T any] struct {
	v     T
	state state
}

// Some returns a Value holding v.
func Some[T any](v T) Value[T] {
	return Value[T]{v: v, state: some}
}

// None returns a Value marked as not provided.
func None[T any]() Value[T] {
	return Value[T]{state: none}
}

// Get returns the held value and whether one was provided.
func (o Value[T]) Get() (T, bool) {
	return o.v, o.state == some
}

// OrElse returns the held value, or def when none was provided.
func (o Value[T]) OrElse(def T) T {
	if o.state == some {
		return o.v
	}
	return def
}

// IsSet reports whether the value went through validation (some or none).
func (o Value[T]) IsSet() bool { return o.state != unset }

func (o Value[T]) IsSome() bool { return o.state == some }

func (o Value[T]) IsNone() bool { return o.state == none }

// IsZero reports whether there is no value to store. It lets `omitzero`
// (encoding/json) and `omitempty` (bson) drop fields that were not provided.
func (o Value[T]) IsZero() bool { return o.state != some }

func (o Value[T]) String() string {
	switch o.state {
	case some:
		return fmt.Sprint(o.v)
	case none:
		return "<not provided>"
	default:
		return "<unset>"
	}
}

// MarshalJSON writes the held value, or null when none was provided.
func (o Value[T]) MarshalJSON() ([]byte, error) {
	if o.state != some {
		return []byte("null"), nil
	}
	return json.Marshal(o.v)
}

// UnmarshalJSON reads null as not provided and anything else as a value.
func (o *Value[T]) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		*o = None[T]()
		return nil
	}
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*o = Some(v)
	return nil
}

// MarshalBSONValue writes the held value, or BSON null when none was provided.
func (o Value[T]) MarshalBSONValue() (byte, []byte, error) {
	if o.state != some {
		return byte(bson.TypeNull), nil, nil
	}
	t, data, err := bson.MarshalValue(o.v)
	if err != nil {
		return 0, nil, err
	}
	return byte(t), data, nil
}

// UnmarshalBSONValue reads BSON null or undefined as not provided and
// anything else as a value.
func (o *Value[T]) UnmarshalBSONValue(t byte, data []byte) error {
	switch bson.Type(t) {
	case bson.TypeNull, bson.TypeUndefined:
		*o = None[T]()
		return nil
	}
	var v T
	if err := bson.UnmarshalValue(bson.Type(t), data, &v); err != nil {
		return err
	}
	*o = Some(v)
	return nil
}
