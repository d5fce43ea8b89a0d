// Package widget implements the facet widget variants.
package widget

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/kailas-cloud/facetlist/internal/domain/facet"
	"github.com/kailas-cloud/facetlist/internal/domain/form"
	"github.com/kailas-cloud/facetlist/internal/domain/preset"
)

// Widget type names as used in configuration.
const (
	TypeSelect      = "select"
	TypeMultiselect = "multiselect"
	TypeDateRange   = "daterange"
)

// New resolves a widget variant by type name. An empty name selects TypeSelect.
func New(typ string) (facet.Widget, error) {
	switch typ {
	case "", TypeSelect:
		return Select{}, nil
	case TypeMultiselect:
		return Multiselect{}, nil
	case TypeDateRange:
		return DateRange{}, nil
	default:
		return nil, fmt.Errorf("unknown widget type %q", typ)
	}
}

// options renders one option per result, with the count when known. Active
// values are marked selected.
func options(f *facet.Facet) []form.Option {
	out := make([]form.Option, 0, len(f.Results()))
	for _, r := range f.Results() {
		label := r.DisplayValue()
		if r.Count() > 0 {
			label += " (" + strconv.Itoa(r.Count()) + ")"
		}
		out = append(out, form.Option{Value: r.RawValue(), Label: label, Selected: f.IsActive(r.RawValue())})
	}
	return out
}

// displayLabels resolves every raw value of v against the facet results,
// keeping the raw value when no result matches.
func displayLabels(f *facet.Facet, v preset.Value) string {
	labels := make([]string, 0, len(v))
	for _, raw := range v {
		label := raw
		for _, r := range f.Results() {
			if r.RawValue() == raw {
				label = r.DisplayValue()
				break
			}
		}
		labels = append(labels, label)
	}
	return strings.Join(labels, ", ")
}

func activeValue(f *facet.Facet, key string) (preset.Value, bool) {
	if key != f.ID() {
		return nil, false
	}
	active := f.ActiveItems()
	if len(active) == 0 {
		return nil, false
	}
	return preset.Value(active), true
}

func elementName(parents []string, f *facet.Facet) string {
	parts := make([]string, 0, len(parents)+1)
	parts = append(parts, parents...)
	parts = append(parts, f.ID())
	return form.Name(parts...)
}

func nonEmpty(values []string) preset.Value {
	out := make(preset.Value, 0, len(values))
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}
