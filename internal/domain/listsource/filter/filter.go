// Package filter is the backend-neutral form of the facet filters of a query:
// conditions on different fields are ANDed, values of one tag condition are ORed.
package filter

import "fmt"

// MaxConditions is the maximum number of conditions per expression.
const MaxConditions = 32

// MaxValues is the maximum number of values of one any-of condition.
const MaxValues = 64

// Expression is a conjunction of conditions.
type Expression struct {
	conditions []Condition
}

// New validates and creates an Expression.
func New(conditions ...Condition) (Expression, error) {
	if len(conditions) > MaxConditions {
		return Expression{}, fmt.Errorf("too many conditions (max %d)", MaxConditions)
	}
	return Expression{conditions: conditions}, nil
}

// Conditions returns the ANDed conditions.
func (e Expression) Conditions() []Condition { return e.conditions }

// IsEmpty reports whether the expression has no conditions.
func (e Expression) IsEmpty() bool { return len(e.conditions) == 0 }

// Condition is a single clause: a tag any-of or a numeric range.
type Condition struct {
	key       string
	anyOf     []string
	rangeExpr *Range
}

// AnyOf creates a tag condition matching any of values.
func AnyOf(key string, values ...string) (Condition, error) {
	if key == "" {
		return Condition{}, fmt.Errorf("filter key is required")
	}
	if len(values) == 0 {
		return Condition{}, fmt.Errorf("at least one value is required for key %q", key)
	}
	if len(values) > MaxValues {
		return Condition{}, fmt.Errorf("too many values for key %q (max %d)", key, MaxValues)
	}
	for _, v := range values {
		if v == "" {
			return Condition{}, fmt.Errorf("empty value for key %q", key)
		}
	}
	return Condition{key: key, anyOf: values}, nil
}

// Between creates a numeric range condition.
func Between(key string, r Range) (Condition, error) {
	if key == "" {
		return Condition{}, fmt.Errorf("filter key is required")
	}
	return Condition{key: key, rangeExpr: &r}, nil
}

// Key returns the field name.
func (c Condition) Key() string { return c.key }

// Values returns the accepted tag values.
func (c Condition) Values() []string { return c.anyOf }

// Range returns the numeric range, nil for tag conditions.
func (c Condition) Range() *Range { return c.rangeExpr }

// IsAnyOf reports whether this is a tag condition.
func (c Condition) IsAnyOf() bool { return len(c.anyOf) > 0 }

// IsRange reports whether this is a range condition.
func (c Condition) IsRange() bool { return c.rangeExpr != nil }

// Range is an inclusive numeric range; a nil bound leaves that side open.
type Range struct {
	gte *float64
	lte *float64
}

// NewRange validates and creates a Range. At least one bound is required.
func NewRange(gte, lte *float64) (Range, error) {
	if gte == nil && lte == nil {
		return Range{}, fmt.Errorf("at least one range boundary is required")
	}
	if gte != nil && lte != nil && *gte > *lte {
		return Range{}, fmt.Errorf("lower bound %g exceeds upper bound %g", *gte, *lte)
	}
	return Range{gte: gte, lte: lte}, nil
}

// GTE returns the inclusive lower bound.
func (r Range) GTE() *float64 { return r.gte }

// LTE returns the inclusive upper bound.
func (r Range) LTE() *float64 { return r.lte }
