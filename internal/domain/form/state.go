package form

import (
	"encoding/json"
	"fmt"
	"net/url"
)

// Trigger identifies the element that initiated a round trip.
// FormKey scopes it to one builder instance on the page.
type Trigger struct {
	Name    string `json:"name"`
	FormKey string `json:"form_key"`
}

// Storage carries values between round trips without committing them.
type Storage map[string]json.RawMessage

// Put stores v under key.
func (s Storage) Put(key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode form storage %q: %w", key, err)
	}
	s[key] = data
	return nil
}

// Load decodes the value stored under key into dst. Reports false when absent.
func (s Storage) Load(key string, dst any) (bool, error) {
	data, ok := s[key]
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal(data, dst); err != nil {
		return false, fmt.Errorf("decode form storage %q: %w", key, err)
	}
	return true, nil
}

// State is everything submitted with one round trip.
type State struct {
	values  url.Values
	trigger Trigger
	storage Storage
}

// NewState creates round-trip state. Nil maps are replaced with empty ones.
func NewState(values url.Values, trigger Trigger, storage Storage) *State {
	if values == nil {
		values = url.Values{}
	}
	if storage == nil {
		storage = Storage{}
	}
	return &State{values: values, trigger: trigger, storage: storage}
}

// Value returns the first submitted value for name.
func (s *State) Value(name string) string { return s.values.Get(name) }

// Values returns every submitted value for name.
func (s *State) Values(name string) []string { return s.values[name] }

// Trigger returns the triggering element.
func (s *State) Trigger() Trigger { return s.trigger }

// Storage returns the ephemeral store of this round trip.
func (s *State) Storage() Storage { return s.storage }
