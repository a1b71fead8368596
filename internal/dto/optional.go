package dto

import "encoding/json"

// Optional is a JSON field that tracks presence. An absent key leaves Set
// false ("leave unchanged" in partial updates); an explicit null sets Set with
// Valid false ("clear"); a value sets both. This removes the ambiguity of a
// single nil pointer standing for both "absent" and "null".
type Optional[T any] struct {
	Set   bool
	Valid bool
	Value T
}

// UnmarshalJSON implements json.Unmarshaler. It is only invoked when the key
// is present in the payload, which is what makes Set trustworthy.
func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	o.Set = true
	if string(data) == "null" {
		o.Valid = false
		return nil
	}
	if err := json.Unmarshal(data, &o.Value); err != nil {
		return err
	}
	o.Valid = true
	return nil
}

// MarshalJSON implements json.Marshaler.
func (o Optional[T]) MarshalJSON() ([]byte, error) {
	if !o.Set || !o.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(o.Value)
}

// Some builds a present, non-null Optional. Mostly useful in tests.
func Some[T any](v T) Optional[T] {
	return Optional[T]{Set: true, Valid: true, Value: v}
}

// Null builds a present but explicitly null Optional.
func Null[T any]() Optional[T] {
	return Optional[T]{Set: true}
}
