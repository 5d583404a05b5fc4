package models

import (
	"bytes"
	"encoding/json"
)

// Optional is a tri-state JSON field: absent (key missing), null, or a value.
// The zero Optional means absent. A patch payload built from JSON gets Set =
// true for every key present in the document, with Valid reporting whether the
// value was non-null.
type Optional[T any] struct {
	Value T
	Valid bool // value is non-null
	Set   bool // key was present in the document
}

// Some returns a present, non-null Optional holding v.
func Some[T any](v T) Optional[T] {
	return Optional[T]{Value: v, Valid: true, Set: true}
}

// Null returns a present Optional holding an explicit null.
func Null[T any]() Optional[T] {
	return Optional[T]{Set: true}
}

// Ptr returns the value as a nullable pointer: nil when the field holds an
// explicit null.
func (o Optional[T]) Ptr() *T {
	if !o.Valid {
		return nil
	}
	v := o.Value
	return &v
}

func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	o.Set = true
	if bytes.Equal(data, []byte("null")) {
		o.Valid = false
		return nil
	}
	if err := json.Unmarshal(data, &o.Value); err != nil {
		return err
	}
	o.Valid = true
	return nil
}

func (o Optional[T]) MarshalJSON() ([]byte, error) {
	if !o.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(o.Value)
}
