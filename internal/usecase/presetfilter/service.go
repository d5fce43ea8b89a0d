// Package presetfilter renders the editor form that pins facets of a list to
// preset values across round trips.
package presetfilter

import (
	"context"
	"fmt"
	"maps"
	"slices"

	"go.uber.org/zap"

	"github.com/kailas-cloud/facetlist/internal/domain"
	"github.com/kailas-cloud/facetlist/internal/domain/facet"
	"github.com/kailas-cloud/facetlist/internal/domain/form"
	"github.com/kailas-cloud/facetlist/internal/domain/listsource"
	"github.com/kailas-cloud/facetlist/internal/domain/preset"
	"github.com/kailas-cloud/facetlist/internal/logger"
	"github.com/kailas-cloud/facetlist/internal/metrics"
)

// Element keys of the rendered fragment.
const (
	WrapperKey   = "preset_filters_wrapper"
	FormKeyKey   = "form_key"
	TableKey     = "preset_filters"
	AddNewKey    = "add_new"
	FilterKeyKey = "filter_key"
	ValueKey     = "value"
	EditKey      = "edit"
	SetKey       = "set"
	RemoveKey    = "remove"
)

// CallbackEdit is the ajax callback fired by the "add new" picker.
const CallbackEdit = "edit"

// EmptyText is shown when no filter is pinned.
const EmptyText = "No default values set."

// DefaultSampleSize is the number of rows the edit view reads to count facet values.
const DefaultSampleSize = 1000

// Service is the preset filter builder.
type Service struct {
	facets     FacetManager
	sampleSize int
}

// Option configures the Service.
type Option func(*Service)

// WithSampleSize overrides the number of rows read to build facets in edit view.
func WithSampleSize(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.sampleSize = n
		}
	}
}

// New creates a preset filter builder.
func New(facets FacetManager, opts ...Option) *Service {
	s := &Service{facets: facets, sampleSize: DefaultSampleSize}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// StorageKey is the ephemeral storage key holding the in-progress set of formKey.
func StorageKey(formKey string) string {
	return form.Name(formKey, "current_filters")
}

// WrapperID is the DOM id of the wrapper refreshed by round trips of formKey.
func WrapperID(formKey string) string {
	return formKey + "-preset-filters-wrapper"
}

// Wrapper returns the wrapper subtree of formKey inside a rendered form.
func Wrapper(el *form.Element, formKey string) *form.Element {
	return el.Find(formKey, WrapperKey)
}

// BuildDefaultFilters renders the builder of formKey into parent and returns it.
// When src is nil the list is not configured yet and parent is returned untouched.
// available maps the facet ids an editor may pin to their labels; committed is
// the last saved set.
func (s *Service) BuildDefaultFilters(
	ctx context.Context,
	parent *form.Element,
	state *form.State,
	formKey string,
	src listsource.Source,
	available map[string]string,
	committed preset.Set,
) (*form.Element, error) {
	if src == nil {
		return parent, nil
	}
	if parent == nil {
		parent = &form.Element{Type: form.TypeContainer}
	}
	if state == nil {
		state = form.NewState(nil, form.Trigger{}, nil)
	}

	rt, err := s.roundTrip(state, formKey)
	if err != nil {
		return nil, err
	}
	session := preset.NewEditSession(rt, committed)

	switch rt.Trigger {
	case preset.TriggerSet:
		if err := s.applySubmitted(ctx, session, src, state, formKey, rt.EditingKey); err != nil {
			return nil, err
		}
	case preset.TriggerRemove:
		session.Remove(rt.EditingKey)
	}
	if err := state.Storage().Put(StorageKey(formKey), session.Filters()); err != nil {
		return nil, err
	}

	metrics.PresetFilterPassesTotal.WithLabelValues(triggerLabel(rt.Trigger), session.Mode().String()).Inc()
	logger.FromContext(ctx).Debug("preset filter builder pass",
		zap.String("form_key", formKey),
		zap.String("trigger", rt.Trigger),
		zap.Stringer("mode", session.Mode()),
		zap.Strings("pinned", session.Filters().Keys()),
	)

	container := parent.Add(&form.Element{Type: form.TypeContainer, Key: formKey})
	container.Add(&form.Element{
		Type:  form.TypeHidden,
		Key:   FormKeyKey,
		Name:  form.Name(formKey, FormKeyKey),
		Value: []string{formKey},
	})
	wrapper := container.Add(&form.Element{
		Type: form.TypeContainer,
		Key:  WrapperKey,
		ID:   WrapperID(formKey),
	})

	if session.Mode() == preset.ModeEditing {
		err = s.renderEdit(ctx, wrapper, session, src, available, formKey)
	} else {
		err = s.renderSummary(ctx, wrapper, session, src, available, formKey)
	}
	if err != nil {
		return nil, err
	}
	return parent, nil
}

// GetFacetByID scans the facets of src for id.
func (s *Service) GetFacetByID(ctx context.Context, src listsource.Source, id string) (*facet.Facet, bool, error) {
	facets, err := s.facets.FacetsBySourceID(ctx, src.SearchID())
	if err != nil {
		return nil, false, fmt.Errorf("load facets of %s: %w", src.SearchID(), err)
	}
	for _, f := range facets {
		if f.ID() == id {
			return f, true, nil
		}
	}
	return nil, false, nil
}

// roundTrip reads the inputs of this pass. Triggers of other builder instances
// on the same page are ignored.
func (s *Service) roundTrip(state *form.State, formKey string) (preset.RoundTrip, error) {
	rt := preset.RoundTrip{
		EditingKey: state.Value(form.Name(formKey, WrapperKey, FilterKeyKey)),
		AddNew:     state.Value(form.Name(formKey, WrapperKey, AddNewKey)),
	}
	if t := state.Trigger(); t.FormKey == formKey {
		rt.Trigger = t.Name
	}

	var stored preset.Set
	ok, err := state.Storage().Load(StorageKey(formKey), &stored)
	if err != nil {
		return preset.RoundTrip{}, err
	}
	if ok {
		if stored == nil {
			stored = preset.Set{}
		}
		rt.Stored = stored
	}
	return rt, nil
}

func (s *Service) applySubmitted(
	ctx context.Context,
	session *preset.EditSession,
	src listsource.Source,
	state *form.State,
	formKey, key string,
) error {
	if key == "" {
		return fmt.Errorf("%w: no filter is being edited", domain.ErrInvalidInput)
	}
	f, ok, err := s.GetFacetByID(ctx, src, key)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%w: %s on %s", domain.ErrFacetNotFound, key, src.SearchID())
	}
	value, err := f.Widget().PrepareValueForURL(f, valueParents(formKey), state)
	if err != nil {
		return fmt.Errorf("prepare value of %s: %w", key, err)
	}
	session.Apply(value)
	return nil
}

func (s *Service) renderSummary(
	ctx context.Context,
	wrapper *form.Element,
	session *preset.EditSession,
	src listsource.Source,
	available map[string]string,
	formKey string,
) error {
	table := wrapper.Add(&form.Element{
		Type:   form.TypeTable,
		Key:    TableKey,
		Header: []string{"Filter", "Value"},
		Empty:  EmptyText,
	})

	current := session.Filters()
	for _, key := range current.Keys() {
		f, ok, err := s.GetFacetByID(ctx, src, key)
		if err != nil {
			return err
		}
		if !ok {
			// The facet was removed from the source after being pinned.
			continue
		}
		display, err := displayValue(f, src, current[key])
		if err != nil {
			return err
		}
		label, ok := available[key]
		if !ok {
			label = f.Name()
		}
		table.Rows = append(table.Rows, []string{label, display})
	}

	opts := []form.Option{{Value: "", Label: "- None -"}}
	for _, key := range slices.Sorted(maps.Keys(available)) {
		opts = append(opts, form.Option{Value: key, Label: available[key]})
	}
	wrapper.Add(&form.Element{
		Type:    form.TypeSelect,
		Key:     AddNewKey,
		Name:    form.Name(formKey, WrapperKey, AddNewKey),
		Title:   "Add default value for",
		Options: opts,
		Ajax:    &form.Ajax{Callback: CallbackEdit, Wrapper: WrapperID(formKey), Event: "change"},
	})
	return nil
}

// displayValue resolves value through the build-stage processors of f with the
// value as active items, then restores the facet.
func displayValue(f *facet.Facet, src listsource.Source, value preset.Value) (string, error) {
	origActive := f.ActiveItems()
	origResults := f.Results()
	defer func() {
		f.SetActiveItems(origActive)
		f.SetResults(origResults)
	}()

	f.SetActiveItems(value)
	results, err := facet.RunBuildStage(f, slices.Clone(origResults))
	if err != nil {
		return "", err
	}
	f.SetResults(results)
	return f.Widget().DefaultValuesLabel(f, src, value), nil
}

func (s *Service) renderEdit(
	ctx context.Context,
	wrapper *form.Element,
	session *preset.EditSession,
	src listsource.Source,
	available map[string]string,
	formKey string,
) error {
	key := session.FilterKey()
	rs, err := src.Query(s.sampleSize, 0, nil).Execute(ctx)
	if err != nil {
		return err
	}
	f, ok, err := s.GetFacetByID(ctx, src, key)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%w: %s on %s", domain.ErrFacetNotFound, key, src.SearchID())
	}
	if v, _ := session.Filters().Get(key); !v.IsEmpty() {
		f.SetActiveItems(v)
	}
	if err := s.facets.Build(ctx, f, rs); err != nil {
		return fmt.Errorf("build facet %s: %w", key, err)
	}

	title, ok := available[key]
	if !ok {
		title = f.Name()
	}
	edit := wrapper.Add(&form.Element{Type: form.TypeFieldset, Key: EditKey, Title: title})
	value := edit.Add(&form.Element{Type: form.TypeContainer, Key: ValueKey})
	if control := f.Widget().BuildDefaultValuesWidget(f, src, valueParents(formKey)); control != nil {
		value.Add(control)
	}

	ajax := func(callback string) *form.Ajax {
		return &form.Ajax{Callback: callback, Wrapper: WrapperID(formKey)}
	}
	edit.Add(&form.Element{
		Type:  form.TypeHidden,
		Key:   FilterKeyKey,
		Name:  form.Name(formKey, WrapperKey, FilterKeyKey),
		Value: []string{key},
	})
	edit.Add(&form.Element{
		Type:  form.TypeSubmit,
		Key:   SetKey,
		Name:  preset.TriggerSet,
		Title: "Set default value",
		Ajax:  ajax(preset.TriggerSet),
	})
	edit.Add(&form.Element{
		Type:  form.TypeSubmit,
		Key:   RemoveKey,
		Name:  preset.TriggerRemove,
		Title: "Remove default value",
		Ajax:  ajax(preset.TriggerRemove),
	})
	return nil
}

func triggerLabel(trigger string) string {
	switch trigger {
	case preset.TriggerSet, preset.TriggerRemove:
		return trigger
	default:
		return "none"
	}
}

// valueParents is where the default-values control of formKey is rendered.
func valueParents(formKey string) []string {
	return []string{formKey, WrapperKey, ValueKey}
}
