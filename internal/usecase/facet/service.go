package facet

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"strings"

	"go.uber.org/zap"

	"github.com/kailas-cloud/facetlist/internal/domain/execution"
	domfacet "github.com/kailas-cloud/facetlist/internal/domain/facet"
	"github.com/kailas-cloud/facetlist/internal/domain/facet/processor"
	"github.com/kailas-cloud/facetlist/internal/domain/facet/widget"
	"github.com/kailas-cloud/facetlist/internal/domain/form"
	"github.com/kailas-cloud/facetlist/internal/domain/listsource"
	"github.com/kailas-cloud/facetlist/internal/domain/preset"
	"github.com/kailas-cloud/facetlist/internal/logger"
)

// TagSeparator splits multi-valued tag fields stored in a single hash field.
const TagSeparator = ","

// Manager is the facets engine: it derives transient facets from definitions
// and computes their results.
type Manager struct {
	defs map[string][]Definition
}

// New validates every definition eagerly so broken widget or processor ids
// fail at startup instead of at render time.
func New(defs map[string][]Definition) (*Manager, error) {
	for searchID, list := range defs {
		seen := make(map[string]bool, len(list))
		for _, d := range list {
			if d.ID == "" {
				return nil, fmt.Errorf("source %s: facet id is required", searchID)
			}
			if seen[d.ID] {
				return nil, fmt.Errorf("source %s: duplicate facet id %q", searchID, d.ID)
			}
			seen[d.ID] = true
			if _, err := instantiate(searchID, d); err != nil {
				return nil, err
			}
		}
	}
	return &Manager{defs: defs}, nil
}

// FacetsBySourceID returns fresh facets bound to searchID, in definition order.
func (m *Manager) FacetsBySourceID(ctx context.Context, searchID string) ([]*domfacet.Facet, error) {
	list := m.defs[searchID]
	out := make([]*domfacet.Facet, 0, len(list))
	for _, d := range list {
		f, err := instantiate(searchID, d)
		if err != nil {
			return nil, err
		}
		out = append(out, f)
	}
	logger.FromContext(ctx).Debug("facets derived",
		zap.String("search_id", searchID),
		zap.Int("count", len(out)),
	)
	return out, nil
}

// Build computes f's results from rs (one result per distinct raw value of the
// facet field, ordered by count) and runs its build-stage processors.
func (m *Manager) Build(_ context.Context, f *domfacet.Facet, rs *listsource.ResultSet) error {
	results, err := domfacet.RunBuildStage(f, countValues(f.Field(), rs))
	if err != nil {
		return err
	}
	f.SetResults(results)
	return nil
}

// AlterQuery applies end-user selections to q through the pre-query processors
// of the facets of searchID. Selections for unknown facets are dropped.
func (m *Manager) AlterQuery(ctx context.Context, searchID string, active preset.Set, q *listsource.Query) error {
	if len(active) == 0 {
		return nil
	}
	facets, err := m.FacetsBySourceID(ctx, searchID)
	if err != nil {
		return err
	}
	for _, f := range facets {
		v, ok := active[f.ID()]
		if !ok || v.IsEmpty() {
			continue
		}
		f.SetActiveItems(v)
		domfacet.RunPreQueryStage(f, q)
	}
	return nil
}

// Controls renders the end-user facet controls of an executed list, one per
// facet of its source that no preset pins. Results are counted over the
// returned rows; live selections mark options active and are echoed back
// keyed by facet id.
func (m *Manager) Controls(
	ctx context.Context, res *execution.Result, live preset.Set,
) ([]*form.Element, preset.Set, error) {
	facets, err := m.FacetsBySourceID(ctx, res.Source().SearchID())
	if err != nil {
		return nil, nil, err
	}
	pinned := res.Config().PresetFilters()
	rows := res.Rows()

	controls := make([]*form.Element, 0, len(facets))
	active := preset.Set{}
	for _, f := range facets {
		if _, ok := pinned.Get(f.ID()); ok {
			continue
		}
		if v, ok := live.Get(f.ID()); ok && !v.IsEmpty() {
			f.SetActiveItems(v)
		}
		if err := m.Build(ctx, f, rows); err != nil {
			return nil, nil, fmt.Errorf("build facet %s: %w", f.ID(), err)
		}
		if v, ok := f.Widget().ValueFromActiveFilters(f, f.ID()); ok {
			active[f.ID()] = v
		}
		controls = append(controls, f.Widget().Build(f))
	}
	return controls, active, nil
}

// Labels returns facet id -> label for searchID, used as the filters an editor may pin.
func (m *Manager) Labels(searchID string) map[string]string {
	out := make(map[string]string, len(m.defs[searchID]))
	for _, d := range m.defs[searchID] {
		label := d.Label
		if label == "" {
			label = d.ID
		}
		out[d.ID] = label
	}
	return out
}

func instantiate(searchID string, d Definition) (*domfacet.Facet, error) {
	w, err := widget.New(d.Widget)
	if err != nil {
		return nil, fmt.Errorf("source %s facet %s: %w", searchID, d.ID, err)
	}
	procs := make([]domfacet.Processor, 0, len(d.Processors))
	for _, pd := range d.Processors {
		stages := make([]domfacet.Stage, len(pd.Stages))
		for i, s := range pd.Stages {
			stages[i] = domfacet.Stage(s)
		}
		p, err := processor.New(pd.ID, d.Labels, stages)
		if err != nil {
			return nil, fmt.Errorf("source %s facet %s: %w", searchID, d.ID, err)
		}
		procs = append(procs, p)
	}
	return domfacet.New(d.ID, d.Label, d.Field, searchID, w, procs...), nil
}

func countValues(field string, rs *listsource.ResultSet) []domfacet.Result {
	if rs == nil {
		return nil
	}
	counts := make(map[string]int)
	for _, row := range rs.Rows {
		raw, ok := row.Fields[field]
		if !ok || raw == "" {
			continue
		}
		for _, v := range strings.Split(raw, TagSeparator) {
			if v = strings.TrimSpace(v); v != "" {
				counts[v]++
			}
		}
	}
	results := make([]domfacet.Result, 0, len(counts))
	for raw, n := range counts {
		results = append(results, domfacet.NewResult(raw, raw, n))
	}
	slices.SortFunc(results, func(a, b domfacet.Result) int {
		if c := cmp.Compare(b.Count(), a.Count()); c != 0 {
			return c
		}
		return cmp.Compare(a.RawValue(), b.RawValue())
	})
	return results
}
