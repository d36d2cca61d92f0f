// Package domain contains shared definitions.
package domain

import (
	"bytes"
	"encoding/json"
)

// OptionalString is a string value that may be unset. The zero value is unset.
type OptionalString struct {
	value string
	set   bool
}

// Some returns an OptionalString holding value
func Some(value string) OptionalString {
	return OptionalString{value: value, set: true}
}

// None returns an unset OptionalString
func None() OptionalString {
	return OptionalString{}
}

// Get returns the value and whether it is set
func (o OptionalString) Get() (string, bool) {
	return o.value, o.set
}

// IsSet reports whether a value is present
func (o OptionalString) IsSet() bool {
	return o.set
}

// OrElse returns the value when set, otherwise def
func (o OptionalString) OrElse(def string) string {
	if !o.set {
		return def
	}
	return o.value
}

// MarshalJSON encodes an unset value as null
func (o OptionalString) MarshalJSON() ([]byte, error) {
	if !o.set {
		return []byte("null"), nil
	}
	return json.Marshal(o.value)
}

// UnmarshalJSON decodes null as an unset value
func (o *OptionalString) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		*o = None()
		return nil
	}

	var value string
	if err := json.Unmarshal(data, &value); err != nil {
		return err
	}

	*o = Some(value)
	return nil
}
