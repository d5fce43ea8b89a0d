package main

import (
	"github.com/kailas-cloud/facetlist/internal/config"
	"github.com/kailas-cloud/facetlist/internal/domain/facet/widget"
	searchrepo "github.com/kailas-cloud/facetlist/internal/repository/search"
	facetuc "github.com/kailas-cloud/facetlist/internal/usecase/facet"
)

// facetDefinitions groups the configured facets by search id.
func facetDefinitions(sources []config.SourceConfig) map[string][]facetuc.Definition {
	out := make(map[string][]facetuc.Definition, len(sources))
	for _, s := range sources {
		defs := make([]facetuc.Definition, 0, len(s.Facets))
		for _, f := range s.Facets {
			procs := make([]facetuc.ProcessorDefinition, len(f.Processors))
			for i, p := range f.Processors {
				procs[i] = facetuc.ProcessorDefinition{ID: p.ID, Stages: p.Stages}
			}
			defs = append(defs, facetuc.Definition{
				ID:         f.ID,
				Label:      f.Label,
				Field:      f.Field,
				Widget:     f.Widget,
				Labels:     f.Labels,
				Processors: procs,
			})
		}
		out[s.SearchID] = defs
	}
	return out
}

// sourceDefinitions maps configured sources to their FT index layout.
func sourceDefinitions(sources []config.SourceConfig) []searchrepo.SourceDefinition {
	out := make([]searchrepo.SourceDefinition, 0, len(sources))
	for _, s := range sources {
		fields := make([]searchrepo.Field, len(s.Fields))
		for i, f := range s.Fields {
			fields[i] = searchrepo.Field{Name: f.Name, Type: searchrepo.FieldType(f.Type), Sortable: f.Sortable}
		}
		facets := make(map[string]searchrepo.FacetField, len(s.Facets))
		for _, f := range s.Facets {
			facets[f.ID] = searchrepo.FacetField{Field: f.Field, Range: f.Widget == widget.TypeDateRange}
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
