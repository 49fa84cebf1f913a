package model

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrEmptyPatch is returned by Patch.Validate when no field was supplied.
var ErrEmptyPatch = errors.New("no fields to update")

// NullFieldError reports a field that was explicitly set to null although the
// stored column cannot hold null.
type NullFieldError struct {
	Field string
}

func (e *NullFieldError) Error() string {
	return fmt.Sprintf("%s cannot be null", e.Field)
}

// Optional is a JSON field that remembers whether it was present in the
// payload and whether it was null. Absent fields are left untouched by
// partial updates.
type Optional[T any] struct {
	Value T
	Set   bool
	Null  bool
}

// Some returns a present, non-null Optional.
func Some[T any](v T) Optional[T] {
	return Optional[T]{Value: v, Set: true}
}

// UnmarshalJSON is only invoked for keys present in the document.
func (o *Optional[T]) UnmarshalJSON(b []byte) error {
	o.Set = true
	if string(b) == "null" {
		o.Null = true
		var zero T
		o.Value = zero
		return nil
	}
	return DecodeJSON(b, &o.Value)
}

// MarshalJSON writes null for absent or null values.
func (o Optional[T]) MarshalJSON() ([]byte, error) {
	if !o.Set || o.Null {
		return []byte("null"), nil
	}
	return json.Marshal(o.Value)
}

// Present reports whether the field carries a usable value.
func (o Optional[T]) Present() bool {
	return o.Set && !o.Null
}

func (o Optional[T]) state() (set, null bool) {
	return o.Set, o.Null
}

// Patch is a partial-update payload.
type Patch interface {
	// Validate returns ErrEmptyPatch when nothing was supplied and a
	// *NullFieldError when a non-nullable field was set to null.
	Validate() error
}

type optionalField interface {
	state() (set, null bool)
}

type namedField struct {
	name  string
	field optionalField
}

func validateFields(fields ...namedField) error {
	supplied := false
	for _, f := range fields {
		set, null := f.field.state()
		if null {
			return &NullFieldError{Field: f.name}
		}
		supplied = supplied || set
	}
	if !supplied {
		return ErrEmptyPatch
	}
	return nil
}
