// Package opt carries values that may be absent from a persisted snapshot.
//
// A Field distinguishes "not present in the payload" from "present but empty":
// the zero Field is absent and is omitted from JSON via the omitzero tag option.
package opt

import (
	"bytes"
	"encoding/json"
)

type Field[T any] struct {
	value T
	set   bool
}

func Of[T any](v T) Field[T] {
	return Field[T]{value: v, set: true}
}

func (f Field[T]) Get() (T, bool) {
	return f.value, f.set
}

// OrElse returns the value when present, otherwise fallback.
func (f Field[T]) OrElse(fallback T) T {
	if !f.set {
		return fallback
	}
	return f.value
}

func (f Field[T]) Present() bool { return f.set }

// IsZero reports absence; encoding/json consults it for omitzero.
func (f Field[T]) IsZero() bool { return !f.set }

func (f Field[T]) MarshalJSON() ([]byte, error) {
	if !f.set {
		return []byte("null"), nil
	}
	return json.Marshal(f.value)
}

func (f *Field[T]) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		var zero T
		f.value, f.set = zero, false
		return nil
	}
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	f.value, f.set = v, true
	return nil
}
