package filter

import (
	"strings"
	"testing"
)

func floatPtr(f float64) *float64 { return &f }

func TestNewRange_Valid(t *testing.T) {
	tests := []struct {
		name     string
		gte, lte *float64
	}{
		{"gte only", floatPtr(0), nil},
		{"lte only", nil, floatPtr(10)},
		{"both", floatPtr(0), floatPtr(10)},
		{"point", floatPtr(5), floatPtr(5)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := NewRange(tt.gte, tt.lte)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if (r.GTE() == nil) != (tt.gte == nil) {
				t.Error("GTE() mismatch")
			}
			if (r.LTE() == nil) != (tt.lte == nil) {
				t.Error("LTE() mismatch")
			}
		})
	}
}

func TestNewRange_Invalid(t *testing.T) {
	if _, err := NewRange(nil, nil); err == nil || !strings.Contains(err.Error(), "at least one") {
		t.Errorf("expected missing bound error, got %v", err)
	}
	if _, err := NewRange(floatPtr(10), floatPtr(1)); err == nil || !strings.Contains(err.Error(), "exceeds") {
		t.Errorf("expected inverted range error, got %v", err)
	}
}

func TestAnyOf(t *testing.T) {
	c, err := AnyOf("status", "open", "closed")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.Key() != "status" || len(c.Values()) != 2 {
		t.Errorf("unexpected condition: %+v", c)
	}
	if !c.IsAnyOf() || c.IsRange() {
		t.Error("expected tag condition")
	}
}

func TestAnyOf_Invalid(t *testing.T) {
	tests := []struct {
		name   string
		key    string
		values []string
		want   string
	}{
		{"empty key", "", []string{"a"}, "key is required"},
		{"no values", "status", nil, "at least one value"},
		{"empty value", "status", []string{"a", ""}, "empty value"},
		{"too many", "status", make([]string, MaxValues+1), "too many values"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := AnyOf(tt.key, tt.values...)
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("expected %q error, got %v", tt.want, err)
			}
		})
	}
}

func TestBetween(t *testing.T) {
	r, _ := NewRange(floatPtr(1), nil)
	c, err := Between("created", r)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !c.IsRange() || c.IsAnyOf() {
		t.Error("expected range condition")
	}
	if *c.Range().GTE() != 1 {
		t.Errorf("GTE = %v", *c.Range().GTE())
	}
	if _, err := Between("", r); err == nil {
		t.Error("expected error for empty key")
	}
}

func TestNew_Limits(t *testing.T) {
	c, _ := AnyOf("k", "v")
	conds := make([]Condition, MaxConditions+1)
	for i := range conds {
		conds[i] = c
	}
	if _, err := New(conds...); err == nil {
		t.Error("expected error for too many conditions")
	}
	e, err := New()
	if err != nil || !e.IsEmpty() {
		t.Errorf("expected empty expression, got %v err=%v", e, err)
	}
	e, _ = New(c)
	if e.IsEmpty() || len(e.Conditions()) != 1 {
		t.Error("expected one condition")
	}
}
