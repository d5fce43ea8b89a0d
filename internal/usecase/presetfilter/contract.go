package presetfilter

import (
	"context"

	"github.com/kailas-cloud/facetlist/internal/domain/facet"
	"github.com/kailas-cloud/facetlist/internal/domain/listsource"
)

// FacetManager derives facets of a source and computes their results.
type FacetManager interface {
	FacetsBySourceID(ctx context.Context, searchID string) ([]*facet.Facet, error)
	Build(ctx context.Context, f *facet.Facet, rs *listsource.ResultSet) error
}
