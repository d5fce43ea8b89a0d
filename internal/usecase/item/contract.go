package item

import (
	"context"

	"github.com/kailas-cloud/facetlist/internal/domain/bundle"
	domitem "github.com/kailas-cloud/facetlist/internal/domain/item"
	"github.com/kailas-cloud/facetlist/internal/domain/listsource"
)

// Repository defines the storage contract for items.
type Repository interface {
	Create(ctx context.Context, it domitem.Item) error
	Get(ctx context.Context, id string) (domitem.Item, error)
	List(ctx context.Context, cursor string, limit int) (items []domitem.Item, nextCursor string, err error)
	// Update stores it when the stored revision equals expectedRevision.
	Update(ctx context.Context, it domitem.Item, expectedRevision int) error
	Delete(ctx context.Context, id string) error
}

// BundleRepository defines the storage contract for bundle metadata.
type BundleRepository interface {
	Put(ctx context.Context, b bundle.Bundle) error
	Get(ctx context.Context, entityType, name string) (bundle.Bundle, error)
}

// SourceFactory resolves the list source of an (entity type, bundle) pair.
type SourceFactory interface {
	Source(ctx context.Context, entityType, bundle string) (listsource.Source, bool, error)
}

// FacetCatalog lists the facets an editor may pin on a source.
type FacetCatalog interface {
	Labels(searchID string) map[string]string
}
