// Package preset models filter values pinned by an editor and the
// round-trip edit session that mutates them.
package preset

import (
	"bytes"
	"encoding/json"
	"fmt"
	"maps"
	"slices"
	"strconv"
)

// Value is the ordered set of raw filter values pinned for one filter key.
// A scalar preset is a one-element Value.
type Value []string

// IsEmpty reports whether no raw value is pinned.
func (v Value) IsEmpty() bool { return len(v) == 0 }

// First returns the first raw value or "" when empty.
func (v Value) First() string {
	if len(v) == 0 {
		return ""
	}
	return v[0]
}

// Equal reports whether both values hold the same raw values in the same order.
func (v Value) Equal(o Value) bool { return slices.Equal(v, o) }

// UnmarshalJSON accepts a scalar (string, number, bool) or an array of scalars.
func (v *Value) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*v = nil
		return nil
	}
	if len(data) > 0 && data[0] == '[' {
		var raw []json.RawMessage
		if err := json.Unmarshal(data, &raw); err != nil {
			return fmt.Errorf("decode preset value: %w", err)
		}
		out := make(Value, 0, len(raw))
		for _, r := range raw {
			s, err := scalarString(r)
			if err != nil {
				return err
			}
			out = append(out, s)
		}
		*v = out
		return nil
	}
	s, err := scalarString(data)
	if err != nil {
		return err
	}
	*v = Value{s}
	return nil
}

func scalarString(data json.RawMessage) (string, error) {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		return s, nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err == nil {
		return n.String(), nil
	}
	var b bool
	if err := json.Unmarshal(data, &b); err == nil {
		return strconv.FormatBool(b), nil
	}
	return "", fmt.Errorf("preset value must be a scalar or an array of scalars, got %s", string(data))
}

// Set maps a filter key (facet id) to its pinned value.
// A key without an entry is left to the end user.
type Set map[string]Value

// Get returns the value pinned for key.
func (s Set) Get(key string) (Value, bool) {
	v, ok := s[key]
	return v, ok
}

// Clone returns an independent copy.
func (s Set) Clone() Set {
	out := make(Set, len(s))
	for k, v := range s {
		out[k] = slices.Clone(v)
	}
	return out
}

// Merge copies every entry of other into s, overwriting on conflict.
func (s Set) Merge(other Set) {
	for k, v := range other {
		s[k] = slices.Clone(v)
	}
}

// Remove deletes key. Removing an absent key is a no-op.
func (s Set) Remove(key string) {
	delete(s, key)
}

// Keys returns the filter keys in lexical order.
func (s Set) Keys() []string {
	return slices.Sorted(maps.Keys(s))
}

// Equal reports whether both sets pin the same values.
func (s Set) Equal(o Set) bool {
	return maps.EqualFunc(s, o, Value.Equal)
}
