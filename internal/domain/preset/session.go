package preset

// Trigger names recognized by the preset filter builder.
const (
	TriggerSet    = "set-default-filter"
	TriggerRemove = "remove-default-filter"
)

// Mode is the view the builder renders in one round trip.
type Mode int

const (
	// ModeSummary lists pinned filters and offers the "add new" picker.
	ModeSummary Mode = iota
	// ModeEditing shows the widget of one filter key.
	ModeEditing
)

func (m Mode) String() string {
	if m == ModeEditing {
		return "editing"
	}
	return "summary"
}

// RoundTrip holds the submitted inputs that drive one builder pass.
type RoundTrip struct {
	Trigger    string // name of the triggering element, "" when none
	EditingKey string // filter key held in the edit buffer by the previous pass
	AddNew     string // current value of the "add new" picker
	Stored     Set    // in-progress set from the previous pass, nil when absent
}

// EditSession is the request-scoped builder state reconstructed from a RoundTrip.
type EditSession struct {
	mode      Mode
	filterKey string
	filters   Set
}

// NewEditSession starts from the stored in-progress set when present and from
// committed otherwise. The filters it holds are always a private copy.
func NewEditSession(rt RoundTrip, committed Set) *EditSession {
	var current Set
	switch {
	case rt.Stored != nil:
		current = rt.Stored.Clone()
	case committed != nil:
		current = committed.Clone()
	default:
		current = Set{}
	}

	s := &EditSession{mode: ModeSummary, filters: current}
	if rt.AddNew != "" {
		s.mode = ModeEditing
		s.filterKey = rt.AddNew
	}
	return s
}

// Mode returns the view selected by the "add new" picker.
func (s *EditSession) Mode() Mode { return s.mode }

// FilterKey returns the key being edited ("" in summary mode).
func (s *EditSession) FilterKey() string { return s.filterKey }

// Filters returns the current in-progress set.
func (s *EditSession) Filters() Set { return s.filters }

// Apply merges a widget-prepared value into the current set. A key carrying
// an empty value is removed instead, so clearing a widget unpins its filter.
func (s *EditSession) Apply(value Set) {
	for key, v := range value {
		if v.IsEmpty() {
			s.filters.Remove(key)
			continue
		}
		s.filters.Merge(Set{key: v})
	}
}

// Remove drops key from the current set.
func (s *EditSession) Remove(key string) { s.filters.Remove(key) }
