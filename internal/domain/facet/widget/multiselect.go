package widget

import (
	"github.com/kailas-cloud/facetlist/internal/domain/facet"
	"github.com/kailas-cloud/facetlist/internal/domain/form"
	"github.com/kailas-cloud/facetlist/internal/domain/listsource"
	"github.com/kailas-cloud/facetlist/internal/domain/preset"
)

// Multiselect renders a checkbox list allowing several values.
type Multiselect struct{}

var _ facet.Widget = Multiselect{}

// Type returns TypeMultiselect.
func (Multiselect) Type() string { return TypeMultiselect }

// Build renders the end-user checkboxes.
func (Multiselect) Build(f *facet.Facet) *form.Element {
	return &form.Element{
		Type:    form.TypeCheckboxes,
		Key:     f.ID(),
		Name:    f.ID(),
		Title:   f.Name(),
		Options: options(f),
		Value:   f.ActiveItems(),
	}
}

// BuildDefaultValuesWidget renders the checkboxes the editor pins values with.
func (Multiselect) BuildDefaultValuesWidget(f *facet.Facet, _ listsource.Source, parents []string) *form.Element {
	return &form.Element{
		Type:    form.TypeCheckboxes,
		Key:     f.ID(),
		Name:    elementName(parents, f),
		Title:   f.Name(),
		Options: options(f),
		Value:   f.ActiveItems(),
	}
}

// DefaultValuesLabel joins the display values of the pinned raw values.
func (Multiselect) DefaultValuesLabel(f *facet.Facet, _ listsource.Source, v preset.Value) string {
	return displayLabels(f, v)
}

// PrepareValueForURL returns every checked value in submission order; nothing
// checked yields an empty value.
func (Multiselect) PrepareValueForURL(f *facet.Facet, parents []string, state *form.State) (preset.Set, error) {
	return preset.Set{f.ID(): nonEmpty(state.Values(elementName(parents, f)))}, nil
}

// ValueFromActiveFilters returns the active items when key is the facet id.
func (Multiselect) ValueFromActiveFilters(f *facet.Facet, key string) (preset.Value, bool) {
	return activeValue(f, key)
}
