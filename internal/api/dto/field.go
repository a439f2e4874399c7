package dto

import (
	"bytes"

	"github.com/goccy/go-json"
)

// Field is a tri-state value used by update payloads: unset fields are left
// out of the request, null fields clear the server value, and set fields
// carry a value.
type Field[T any] struct {
	value T
	set   bool
	null  bool
}

// Set returns a field carrying v.
func Set[T any](v T) Field[T] {
	return Field[T]{value: v, set: true}
}

// Null returns a field that clears the server value.
func Null[T any]() Field[T] {
	return Field[T]{set: true, null: true}
}

// FromPtr returns Null for nil and Set(*p) otherwise.
func FromPtr[T any](p *T) Field[T] {
	if p == nil {
		return Null[T]()
	}
	return Set(*p)
}

func (f Field[T]) IsSet() bool  { return f.set }
func (f Field[T]) IsNull() bool { return f.set && f.null }

// Get returns the carried value and whether one is present.
func (f Field[T]) Get() (T, bool) {
	return f.value, f.set && !f.null
}

// Ptr returns the value as a pointer, nil when unset or null.
func (f Field[T]) Ptr() *T {
	if !f.set || f.null {
		return nil
	}
	v := f.value
	return &v
}

// put writes the field into m under key when it is set.
func (f Field[T]) put(m map[string]any, key string) {
	if !f.set {
		return
	}
	if f.null {
		m[key] = nil
		return
	}
	m[key] = f.value
}

func (f Field[T]) MarshalJSON() ([]byte, error) {
	if !f.set || f.null {
		return []byte("null"), nil
	}
	return json.Marshal(f.value)
}

// UnmarshalJSON marks the field as set; a JSON null marks it as null.
func (f *Field[T]) UnmarshalJSON(data []byte) error {
	f.set = true
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		var zero T
		f.value = zero
		f.null = true
		return nil
	}
	f.null = false
	return json.Unmarshal(data, &f.value)
}

// putPtr writes an optional create field into m when non-nil.
func putPtr[T any](m map[string]any, key string, p *T) {
	if p != nil {
		m[key] = *p
	}
}
