package facetlist

import (
	"time"

	"github.com/kailas-cloud/facetlist/internal/domain/execution"
	"github.com/kailas-cloud/facetlist/internal/domain/facet/widget"
	domitem "github.com/kailas-cloud/facetlist/internal/domain/item"
	"github.com/kailas-cloud/facetlist/internal/domain/preset"
	searchrepo "github.com/kailas-cloud/facetlist/internal/repository/search"
	facetuc "github.com/kailas-cloud/facetlist/internal/usecase/facet"
)

// FieldType is the index type of a source field.
type FieldType string

// Field types.
const (
	FieldTag     FieldType = "tag"
	FieldNumeric FieldType = "numeric"
	FieldText    FieldType = "text"
)

// Widget names of a facet.
const (
	WidgetSelect      = widget.TypeSelect
	WidgetMultiselect = widget.TypeMultiselect
	WidgetDateRange   = widget.TypeDateRange
)

// Field is one indexed hash field of a source.
type Field struct {
	Name     string
	Type     FieldType
	Sortable bool
}

// Facet is a filterable dimension of a source.
type Facet struct {
	ID         string
	Label      string
	Field      string // defaults to ID
	Widget     string // defaults to WidgetSelect
	Labels     map[string]string
	Processors []string
}

// Source is a searchable set of hashes of one (entity type, bundle) pair.
type Source struct {
	SearchID   string
	EntityType string
	Bundle     string
	KeyPrefix  string // defaults to facetlist:entity:{entity_type}:{bundle}:
	Fields     []Field
	Facets     []Facet
}

// Filters maps facet ids to the values they are pinned or filtered to.
type Filters map[string][]string

// ListRef selects the source an item lists and its pinned filters.
type ListRef struct {
	EntityType    string
	Bundle        string
	PresetFilters Filters
}

// Item is a content item that may carry a list.
type Item struct {
	ID         string
	EntityType string
	Bundle     string
	Title      string
	List       *ListRef
	CreatedAt  time.Time
	Revision   int
}

// Row is one row of an executed list.
type Row struct {
	ID     string
	Fields map[string]string
}

// Pager describes pagination of an executed list.
type Pager struct {
	Page     int
	PageSize int
	Total    int
	Pages    int
	HasPrev  bool
	HasNext  bool
}

// ListPage is one executed page of an item's list.
type ListPage struct {
	SearchID string
	Rows     []Row
	Pager    Pager
}

func toInternalFilters(f Filters) preset.Set {
	out := make(preset.Set, len(f))
	for k, v := range f {
		out[k] = preset.Value(v)
	}
	return out
}

func fromInternalFilters(s preset.Set) Filters {
	out := make(Filters, len(s))
	for k, v := range s {
		out[k] = []string(v)
	}
	return out
}

func toInternalList(l *ListRef) domitem.ListConfig {
	if l == nil {
		return domitem.NewListConfig("", "", nil)
	}
	return domitem.NewListConfig(l.EntityType, l.Bundle, toInternalFilters(l.PresetFilters))
}

func fromInternalItem(it domitem.Item) Item {
	out := Item{
		ID:         it.ID(),
		EntityType: it.EntityType(),
		Bundle:     it.Bundle(),
		Title:      it.Title(),
		CreatedAt:  time.UnixMilli(it.CreatedAt()),
		Revision:   it.Revision(),
	}
	if cfg := it.List(); cfg.IsConfigured() {
		out.List = &ListRef{
			EntityType:    cfg.SourceEntityType(),
			Bundle:        cfg.SourceBundle(),
			PresetFilters: fromInternalFilters(cfg.PresetFilters()),
		}
	}
	return out
}

func fromInternalResult(r *execution.Result) ListPage {
	rs := r.Rows()
	rows := make([]Row, len(rs.Rows))
	for i, row := range rs.Rows {
		rows[i] = Row{ID: row.ID, Fields: row.Fields}
	}
	p := r.Pager()
	return ListPage{
		SearchID: r.Source().SearchID(),
		Rows:     rows,
		Pager: Pager{
			Page:     p.Page,
			PageSize: p.PageSize,
			Total:    p.Total,
			Pages:    p.Pages,
			HasPrev:  p.HasPrev,
			HasNext:  p.HasNext,
		},
	}
}

func facetDefinitions(sources []Source) map[string][]facetuc.Definition {
	out := make(map[string][]facetuc.Definition, len(sources))
	for _, s := range sources {
		defs := make([]facetuc.Definition, 0, len(s.Facets))
		for _, f := range s.Facets {
			procs := make([]facetuc.ProcessorDefinition, len(f.Processors))
			for i, id := range f.Processors {
				procs[i] = facetuc.ProcessorDefinition{ID: id}
			}
			defs = append(defs, facetuc.Definition{
				ID:         f.ID,
				Label:      f.Label,
				Field:      facetField(f),
				Widget:     f.Widget,
				Labels:     f.Labels,
				Processors: procs,
			})
		}
		out[s.SearchID] = defs
	}
	return out
}

func sourceDefinitions(sources []Source) []searchrepo.SourceDefinition {
	out := make([]searchrepo.SourceDefinition, 0, len(sources))
	for _, s := range sources {
		fields := make([]searchrepo.Field, len(s.Fields))
		for i, f := range s.Fields {
			fields[i] = searchrepo.Field{Name: f.Name, Type: searchrepo.FieldType(f.Type), Sortable: f.Sortable}
		}
		facets := make(map[string]searchrepo.FacetField, len(s.Facets))
		for _, f := range s.Facets {
			facets[f.ID] = searchrepo.FacetField{Field: facetField(f), Range: f.Widget == WidgetDateRange}
		}
		out = append(out, searchrepo.SourceDefinition{
			SearchID:   s.SearchID,
			EntityType: s.EntityType,
			Bundle:     s.Bundle,
			Prefix:     s.KeyPrefix,
			Fields:     fields,
			Facets:     facets,
		})
	}
	return out
}

func facetField(f Facet) string {
	if f.Field != "" {
		return f.Field
	}
	return f.ID
}
