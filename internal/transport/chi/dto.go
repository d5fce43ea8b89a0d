package chi

import (
	"github.com/kailas-cloud/facetlist/internal/domain/bundle"
	"github.com/kailas-cloud/facetlist/internal/domain/execution"
	"github.com/kailas-cloud/facetlist/internal/domain/form"
	domitem "github.com/kailas-cloud/facetlist/internal/domain/item"
	"github.com/kailas-cloud/facetlist/internal/domain/listsource"
	gen "github.com/kailas-cloud/facetlist/internal/transport/generated"
)

func itemToDTO(it domitem.Item) gen.Item {
	out := gen.Item{
		Id:         it.ID(),
		EntityType: it.EntityType(),
		Bundle:     it.Bundle(),
		Title:      it.Title(),
		CreatedAt:  it.CreatedAt(),
		Revision:   it.Revision(),
	}
	if cfg := it.List(); cfg.IsConfigured() {
		out.List = &gen.ListConfig{
			SourceEntityType: cfg.SourceEntityType(),
			SourceBundle:     cfg.SourceBundle(),
			PresetFilters:    cfg.PresetFilters(),
		}
	}
	return out
}

func listConfigFromDTO(c *gen.ListConfig) domitem.ListConfig {
	if c == nil {
		return domitem.NewListConfig("", "", nil)
	}
	return domitem.NewListConfig(c.SourceEntityType, c.SourceBundle, c.PresetFilters)
}

func bundleToDTO(b bundle.Bundle) gen.Bundle {
	out := gen.Bundle{EntityType: b.EntityType(), Name: b.Name()}
	if s := b.DefaultSort(); s != nil {
		out.DefaultSort = &gen.DefaultSort{Field: s.Field, Direction: string(s.Direction)}
	}
	return out
}

func defaultSortFromDTO(s *gen.DefaultSort) *bundle.DefaultSort {
	if s == nil {
		return nil
	}
	return &bundle.DefaultSort{Field: s.Field, Direction: listsource.Direction(s.Direction)}
}

func pagerToDTO(p execution.Pager) gen.Pager {
	return gen.Pager{
		Page:     p.Page,
		PageSize: p.PageSize,
		Total:    p.Total,
		Pages:    p.Pages,
		HasPrev:  p.HasPrev,
		HasNext:  p.HasNext,
	}
}

func listResultToDTO(r *execution.Result) gen.ListResponse {
	rs := r.Rows()
	rows := make([]gen.ListRow, len(rs.Rows))
	for i, row := range rs.Rows {
		rows[i] = gen.ListRow{Id: row.ID, Fields: row.Fields}
	}
	return gen.ListResponse{
		SearchId:      r.Source().SearchID(),
		Rows:          rows,
		Pager:         pagerToDTO(r.Pager()),
		PresetFilters: r.Config().PresetFilters(),
	}
}

func elementsToDTO(els []*form.Element) []gen.FormElement {
	if len(els) == 0 {
		return nil
	}
	out := make([]gen.FormElement, len(els))
	for i, el := range els {
		out[i] = *el
	}
	return out
}

func formTriggerFromDTO(t *gen.FormTrigger, formKey string) form.Trigger {
	if t == nil {
		return form.Trigger{}
	}
	// A trigger without a form key belongs to the builder the request renders.
	key := formKey
	if t.FormKey != nil && *t.FormKey != "" {
		key = *t.FormKey
	}
	return form.Trigger{Name: t.Name, FormKey: key}
}
