package models

import "encoding/json"

// Optional distinguishes "field absent from the request body" from
// "field explicitly set to null/zero". Partial updates only touch fields
// whose Set flag is true; a nil Value then means SQL NULL.
type Optional[T any] struct {
	Set   bool
	Value *T
}

func (o *Optional[T]) UnmarshalJSON(b []byte) error {
	o.Set = true
	if string(b) == "null" {
		o.Value = nil
		return nil
	}
	return json.Unmarshal(b, &o.Value)
}

func (o Optional[T]) MarshalJSON() ([]byte, error) {
	if !o.Set || o.Value == nil {
		return []byte("null"), nil
	}
	return json.Marshal(o.Value)
}

// Get returns the value and whether it is non-null.
func (o Optional[T]) Get() (T, bool) {
	var zero T
	if o.Value == nil {
		return zero, false
	}
	return *o.Value, true
}
