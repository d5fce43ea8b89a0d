package listexec

import (
	"context"

	"github.com/kailas-cloud/facetlist/internal/domain/bundle"
	"github.com/kailas-cloud/facetlist/internal/domain/listsource"
	"github.com/kailas-cloud/facetlist/internal/domain/preset"
)

// SourceFactory resolves the list source of an (entity type, bundle) pair.
// Reports false when no source is registered for it.
type SourceFactory interface {
	Source(ctx context.Context, entityType, bundle string) (listsource.Source, bool, error)
}

// BundleReader reads bundle metadata.
type BundleReader interface {
	Get(ctx context.Context, entityType, name string) (bundle.Bundle, error)
}

// QueryAlterer applies end-user facet selections to a query.
type QueryAlterer interface {
	AlterQuery(ctx context.Context, searchID string, active preset.Set, q *listsource.Query) error
}
