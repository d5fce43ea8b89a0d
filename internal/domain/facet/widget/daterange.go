package widget

import (
	"fmt"
	"strings"
	"time"

	"github.com/kailas-cloud/facetlist/internal/domain"
	"github.com/kailas-cloud/facetlist/internal/domain/facet"
	"github.com/kailas-cloud/facetlist/internal/domain/form"
	"github.com/kailas-cloud/facetlist/internal/domain/listsource"
	"github.com/kailas-cloud/facetlist/internal/domain/preset"
)

// DateLayout is the wire format of date range bounds.
const DateLayout = "2006-01-02"

// DateRange renders a pair of date inputs. Its value is always [min, max];
// an empty bound leaves that side open.
type DateRange struct{}

var _ facet.Widget = DateRange{}

// Type returns TypeDateRange.
func (DateRange) Type() string { return TypeDateRange }

// Build renders the end-user date inputs.
func (DateRange) Build(f *facet.Facet) *form.Element {
	return dateFieldset(f, f.ID())
}

// BuildDefaultValuesWidget renders the date inputs the editor pins a range with.
func (DateRange) BuildDefaultValuesWidget(f *facet.Facet, _ listsource.Source, parents []string) *form.Element {
	return dateFieldset(f, elementName(parents, f))
}

// DefaultValuesLabel renders the range as "from X", "until Y" or "X to Y".
func (DateRange) DefaultValuesLabel(_ *facet.Facet, _ listsource.Source, v preset.Value) string {
	lo, hi := bounds(v)
	switch {
	case lo != "" && hi != "":
		return lo + " to " + hi
	case lo != "":
		return "from " + lo
	case hi != "":
		return "until " + hi
	default:
		return ""
	}
}

// PrepareValueForURL validates both bounds and returns [min, max]. Two blank
// bounds yield an empty value.
func (DateRange) PrepareValueForURL(f *facet.Facet, parents []string, state *form.State) (preset.Set, error) {
	name := elementName(parents, f)
	lo := strings.TrimSpace(state.Value(form.Name(name, "min")))
	hi := strings.TrimSpace(state.Value(form.Name(name, "max")))
	if lo == "" && hi == "" {
		return preset.Set{f.ID(): preset.Value{}}, nil
	}

	var loT, hiT time.Time
	var err error
	if lo != "" {
		if loT, err = time.Parse(DateLayout, lo); err != nil {
			return nil, fmt.Errorf("%w: %s: min date %q", domain.ErrInvalidInput, f.ID(), lo)
		}
	}
	if hi != "" {
		if hiT, err = time.Parse(DateLayout, hi); err != nil {
			return nil, fmt.Errorf("%w: %s: max date %q", domain.ErrInvalidInput, f.ID(), hi)
		}
	}
	if lo != "" && hi != "" && hiT.Before(loT) {
		return nil, fmt.Errorf("%w: %s: max date before min date", domain.ErrInvalidInput, f.ID())
	}
	return preset.Set{f.ID(): preset.Value{lo, hi}}, nil
}

// ValueFromActiveFilters returns the active range when key is the facet id.
func (DateRange) ValueFromActiveFilters(f *facet.Facet, key string) (preset.Value, bool) {
	return activeValue(f, key)
}

func dateFieldset(f *facet.Facet, name string) *form.Element {
	lo, hi := bounds(f.ActiveItems())
	fs := &form.Element{Type: form.TypeFieldset, Key: f.ID(), Title: f.Name()}
	fs.Add(&form.Element{Type: form.TypeDate, Key: "min", Name: form.Name(name, "min"), Title: "From", Value: nonEmpty([]string{lo})})
	fs.Add(&form.Element{Type: form.TypeDate, Key: "max", Name: form.Name(name, "max"), Title: "To", Value: nonEmpty([]string{hi})})
	return fs
}

// ParseBounds converts a stored range into times; zero times mark open sides.
func ParseBounds(v preset.Value) (lo, hi time.Time, err error) {
	l, h := bounds(v)
	if l != "" {
		if lo, err = time.Parse(DateLayout, l); err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("parse min date: %w", err)
		}
	}
	if h != "" {
		if hi, err = time.Parse(DateLayout, h); err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("parse max date: %w", err)
		}
	}
	return lo, hi, nil
}

func bounds(v []string) (lo, hi string) {
	if len(v) > 0 {
		lo = v[0]
	}
	if len(v) > 1 {
		hi = v[1]
	}
	return lo, hi
}
