// Package facet models one filterable dimension over a list source.
package facet

import (
	"fmt"
	"slices"

	"github.com/kailas-cloud/facetlist/internal/domain"
	"github.com/kailas-cloud/facetlist/internal/domain/form"
	"github.com/kailas-cloud/facetlist/internal/domain/listsource"
	"github.com/kailas-cloud/facetlist/internal/domain/preset"
)

// Result is one selectable value of a facet.
type Result struct {
	rawValue     string
	displayValue string
	count        int
}

// NewResult creates a result. An empty display value falls back to the raw value.
func NewResult(raw, display string, count int) Result {
	if display == "" {
		display = raw
	}
	return Result{rawValue: raw, displayValue: display, count: count}
}

// RawValue returns the value used in filters.
func (r Result) RawValue() string { return r.rawValue }

// DisplayValue returns the human-readable label.
func (r Result) DisplayValue() string { return r.displayValue }

// Count returns the number of rows matching the value.
func (r Result) Count() int { return r.count }

// WithDisplay returns a copy carrying a new display value.
func (r Result) WithDisplay(display string) Result {
	r.displayValue = display
	return r
}

// Stage is a point of the facet lifecycle where processors run.
type Stage string

// Processor stages.
const (
	StagePreQuery  Stage = "pre_query"
	StagePostQuery Stage = "post_query"
	StageBuild     Stage = "build"
)

// Processor is a pluggable step attached to a facet.
type Processor interface {
	ID() string
	// Stages lists the stages the processor claims to participate in.
	Stages() []Stage
}

// BuildProcessor augments or computes a facet's results at render time.
type BuildProcessor interface {
	Processor
	Build(f *Facet, results []Result) ([]Result, error)
}

// Widget renders a facet and translates submissions into raw filter values.
type Widget interface {
	Type() string
	// Build renders the end-user control.
	Build(f *Facet) *form.Element
	// BuildDefaultValuesWidget renders the editor control used to pick preset
	// values; nil when the widget has no such control.
	BuildDefaultValuesWidget(f *Facet, src listsource.Source, parents []string) *form.Element
	// DefaultValuesLabel renders a pinned value for the summary table.
	DefaultValuesLabel(f *Facet, src listsource.Source, value preset.Value) string
	// PrepareValueForURL reads the control rendered under parents back from state.
	PrepareValueForURL(f *Facet, parents []string, state *form.State) (preset.Set, error)
	// ValueFromActiveFilters returns the facet value pinned under key.
	ValueFromActiveFilters(f *Facet, key string) (preset.Value, bool)
}

// Facet is a transient, per-pass view of one filterable dimension.
type Facet struct {
	id          string
	label       string
	field       string
	sourceID    string
	widget      Widget
	processors  []Processor
	results     []Result
	activeItems []string
}

// New creates a facet bound to the source with the given search id.
func New(id, label, field, sourceID string, w Widget, processors ...Processor) *Facet {
	if label == "" {
		label = id
	}
	if field == "" {
		field = id
	}
	return &Facet{
		id:         id,
		label:      label,
		field:      field,
		sourceID:   sourceID,
		widget:     w,
		processors: processors,
	}
}

// ID returns the facet id, unique within its source. It is the filter key.
func (f *Facet) ID() string { return f.id }

// Name returns the display label.
func (f *Facet) Name() string { return f.label }

// Field returns the backend field the facet filters on.
func (f *Facet) Field() string { return f.field }

// SourceID returns the search id of the source the facet belongs to.
func (f *Facet) SourceID() string { return f.sourceID }

// Widget returns the widget instance.
func (f *Facet) Widget() Widget { return f.widget }

// Results returns the current results.
func (f *Facet) Results() []Result { return f.results }

// SetResults replaces the current results.
func (f *Facet) SetResults(results []Result) { f.results = results }

// ActiveItems returns a copy of the selected raw values.
func (f *Facet) ActiveItems() []string { return slices.Clone(f.activeItems) }

// SetActiveItems replaces the selected raw values.
func (f *Facet) SetActiveItems(values []string) { f.activeItems = slices.Clone(values) }

// IsActive reports whether raw is selected.
func (f *Facet) IsActive(raw string) bool { return slices.Contains(f.activeItems, raw) }

// Processors returns every attached processor.
func (f *Facet) Processors() []Processor { return f.processors }

// ProcessorsByStage returns the processors claiming stage, in attachment order.
func (f *Facet) ProcessorsByStage(stage Stage) []Processor {
	var out []Processor
	for _, p := range f.processors {
		if slices.Contains(p.Stages(), stage) {
			out = append(out, p)
		}
	}
	return out
}

// RunBuildStage passes results through every build-stage processor of f.
// A processor claiming the build stage without the build capability is a
// wiring error and aborts the pass.
func RunBuildStage(f *Facet, results []Result) ([]Result, error) {
	for _, p := range f.ProcessorsByStage(StageBuild) {
		bp, ok := p.(BuildProcessor)
		if !ok {
			return nil, domain.NewProcessorError(f.id, p.ID())
		}
		var err error
		results, err = bp.Build(f, results)
		if err != nil {
			return nil, fmt.Errorf("processor %s on facet %s: %w", p.ID(), f.id, err)
		}
	}
	return results, nil
}

// PreQueryProcessor alters a query before it runs, typically to apply the
// facet's active items as filters.
type PreQueryProcessor interface {
	Processor
	PreQuery(f *Facet, q *listsource.Query)
}

// RunPreQueryStage lets every capable pre-query processor of f alter q.
// Processors without the capability are skipped; only the build stage is strict.
func RunPreQueryStage(f *Facet, q *listsource.Query) {
	for _, p := range f.ProcessorsByStage(StagePreQuery) {
		if pp, ok := p.(PreQueryProcessor); ok {
			pp.PreQuery(f, q)
		}
	}
}
