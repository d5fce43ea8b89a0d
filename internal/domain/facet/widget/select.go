package widget

import (
	"github.com/kailas-cloud/facetlist/internal/domain/facet"
	"github.com/kailas-cloud/facetlist/internal/domain/form"
	"github.com/kailas-cloud/facetlist/internal/domain/listsource"
	"github.com/kailas-cloud/facetlist/internal/domain/preset"
)

// Select renders a single-choice dropdown.
type Select struct{}

var _ facet.Widget = Select{}

// Type returns TypeSelect.
func (Select) Type() string { return TypeSelect }

// Build renders the end-user dropdown.
func (Select) Build(f *facet.Facet) *form.Element {
	return &form.Element{
		Type:    form.TypeSelect,
		Key:     f.ID(),
		Name:    f.ID(),
		Title:   f.Name(),
		Options: options(f),
		Value:   f.ActiveItems(),
	}
}

// BuildDefaultValuesWidget renders the dropdown the editor pins a value with.
func (Select) BuildDefaultValuesWidget(f *facet.Facet, _ listsource.Source, parents []string) *form.Element {
	opts := append([]form.Option{{Value: "", Label: "- None -"}}, options(f)...)
	return &form.Element{
		Type:    form.TypeSelect,
		Key:     f.ID(),
		Name:    elementName(parents, f),
		Title:   f.Name(),
		Options: opts,
		Value:   f.ActiveItems(),
	}
}

// DefaultValuesLabel joins the display values of the pinned raw values.
func (Select) DefaultValuesLabel(f *facet.Facet, _ listsource.Source, v preset.Value) string {
	return displayLabels(f, v)
}

// PrepareValueForURL returns the chosen value keyed by the facet id. Choosing
// "- None -" yields an empty value, which unpins the filter.
func (Select) PrepareValueForURL(f *facet.Facet, parents []string, state *form.State) (preset.Set, error) {
	return preset.Set{f.ID(): nonEmpty([]string{state.Value(elementName(parents, f))})}, nil
}

// ValueFromActiveFilters returns the active items when key is the facet id.
func (Select) ValueFromActiveFilters(f *facet.Facet, key string) (preset.Value, bool) {
	return activeValue(f, key)
}
