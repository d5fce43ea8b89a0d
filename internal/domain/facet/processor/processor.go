// Package processor implements the facet processors available to configuration.
package processor

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/kailas-cloud/facetlist/internal/domain/facet"
	"github.com/kailas-cloud/facetlist/internal/domain/listsource"
	"github.com/kailas-cloud/facetlist/internal/domain/preset"
)

// Processor ids as used in configuration.
const (
	IDActiveItems = "active_items"
	IDValueLabels = "value_labels"
	IDDisplaySort = "display_sort"
	IDQueryFilter = "query_filter"
)

// New resolves a processor by id. labels feeds value_labels; stages, when
// non-empty, overrides the stages the processor claims.
func New(id string, labels map[string]string, stages []facet.Stage) (facet.Processor, error) {
	var p facet.Processor
	switch id {
	case IDActiveItems:
		p = ActiveItems{}
	case IDValueLabels:
		p = ValueLabels{labels: labels}
	case IDDisplaySort:
		p = DisplaySort{}
	case IDQueryFilter:
		p = QueryFilter{}
	default:
		return nil, fmt.Errorf("unknown processor %q", id)
	}
	if len(stages) == 0 {
		return p, nil
	}
	return restage(p, stages), nil
}

// ActiveItems guarantees a result for every active item, so pinned values
// render even when the current result set does not contain them.
type ActiveItems struct{}

// ID returns IDActiveItems.
func (ActiveItems) ID() string { return IDActiveItems }

// Stages returns the build stage.
func (ActiveItems) Stages() []facet.Stage { return []facet.Stage{facet.StageBuild} }

// Build appends missing active items with a zero count.
func (ActiveItems) Build(f *facet.Facet, results []facet.Result) ([]facet.Result, error) {
	for _, raw := range f.ActiveItems() {
		found := slices.ContainsFunc(results, func(r facet.Result) bool { return r.RawValue() == raw })
		if !found {
			results = append(results, facet.NewResult(raw, raw, 0))
		}
	}
	return results, nil
}

// ValueLabels maps raw values to configured display labels.
type ValueLabels struct {
	labels map[string]string
}

// NewValueLabels creates a ValueLabels processor.
func NewValueLabels(labels map[string]string) ValueLabels { return ValueLabels{labels: labels} }

// ID returns IDValueLabels.
func (ValueLabels) ID() string { return IDValueLabels }

// Stages returns the build stage.
func (ValueLabels) Stages() []facet.Stage { return []facet.Stage{facet.StageBuild} }

// Build substitutes the configured label of every known raw value.
func (p ValueLabels) Build(_ *facet.Facet, results []facet.Result) ([]facet.Result, error) {
	out := make([]facet.Result, len(results))
	for i, r := range results {
		if label, ok := p.labels[r.RawValue()]; ok {
			r = r.WithDisplay(label)
		}
		out[i] = r
	}
	return out, nil
}

// DisplaySort orders results by display value.
type DisplaySort struct{}

// ID returns IDDisplaySort.
func (DisplaySort) ID() string { return IDDisplaySort }

// Stages returns the build stage.
func (DisplaySort) Stages() []facet.Stage { return []facet.Stage{facet.StageBuild} }

// Build sorts a copy of results.
func (DisplaySort) Build(_ *facet.Facet, results []facet.Result) ([]facet.Result, error) {
	out := slices.Clone(results)
	slices.SortStableFunc(out, func(a, b facet.Result) int {
		return cmp.Compare(a.DisplayValue(), b.DisplayValue())
	})
	return out, nil
}

// QueryFilter applies the facet's active items to the query as a filter.
type QueryFilter struct{}

// ID returns IDQueryFilter.
func (QueryFilter) ID() string { return IDQueryFilter }

// Stages returns the pre-query stage.
func (QueryFilter) Stages() []facet.Stage { return []facet.Stage{facet.StagePreQuery} }

// PreQuery adds the active items under the facet id.
func (QueryFilter) PreQuery(f *facet.Facet, q *listsource.Query) {
	if active := f.ActiveItems(); len(active) > 0 {
		q.AddFilters(preset.Set{f.ID(): active})
	}
}

// restage overrides the claimed stages while keeping the capabilities of p.
func restage(p facet.Processor, stages []facet.Stage) facet.Processor {
	base := staged{inner: p, stages: stages}
	build, isBuild := p.(facet.BuildProcessor)
	pre, isPre := p.(facet.PreQueryProcessor)
	switch {
	case isBuild:
		return stagedBuild{staged: base, build: build}
	case isPre:
		return stagedPre{staged: base, pre: pre}
	default:
		return base
	}
}

type staged struct {
	inner  facet.Processor
	stages []facet.Stage
}

func (s staged) ID() string            { return s.inner.ID() }
func (s staged) Stages() []facet.Stage { return s.stages }

type stagedBuild struct {
	staged
	build facet.BuildProcessor
}

func (s stagedBuild) Build(f *facet.Facet, results []facet.Result) ([]facet.Result, error) {
	return s.build.Build(f, results)
}

type stagedPre struct {
	staged
	pre facet.PreQueryProcessor
}

func (s stagedPre) PreQuery(f *facet.Facet, q *listsource.Query) { s.pre.PreQuery(f, q) }
