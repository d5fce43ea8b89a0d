package bundle

import (
	"context"
	"fmt"

	"github.com/kailas-cloud/facetlist/internal/domain"
	dombundle "github.com/kailas-cloud/facetlist/internal/domain/bundle"
	"github.com/kailas-cloud/facetlist/internal/domain/listsource"
)

// store is the consumer interface for bundle metadata (ISP).
type store interface {
	HSet(ctx context.Context, key string, fields map[string]string) error
	HGetAll(ctx context.Context, key string) (map[string]string, error)
}

// Repo implements usecase/item.BundleRepository and usecase/listexec.BundleReader.
type Repo struct {
	store store
}

// New creates a bundle repository.
func New(s store) *Repo {
	return &Repo{store: s}
}

// Put upserts bundle metadata. An unset sort is stored as empty fields.
func (r *Repo) Put(ctx context.Context, b dombundle.Bundle) error {
	fields := map[string]string{
		"entity_type":    b.EntityType(),
		"name":           b.Name(),
		"sort_field":     "",
		"sort_direction": "",
	}
	if s := b.DefaultSort(); s != nil {
		fields["sort_field"] = s.Field
		fields["sort_direction"] = string(s.Direction)
	}
	if err := r.store.HSet(ctx, bundleKey(b.EntityType(), b.Name()), fields); err != nil {
		return fmt.Errorf("hset bundle %s/%s: %w", b.EntityType(), b.Name(), err)
	}
	return nil
}

// Get retrieves bundle metadata.
func (r *Repo) Get(ctx context.Context, entityType, name string) (dombundle.Bundle, error) {
	m, err := r.store.HGetAll(ctx, bundleKey(entityType, name))
	if err != nil {
		return dombundle.Bundle{}, fmt.Errorf("hgetall bundle %s/%s: %w", entityType, name, err)
	}
	if len(m) == 0 {
		return dombundle.Bundle{}, domain.ErrNotFound
	}

	var sort *dombundle.DefaultSort
	if field := m["sort_field"]; field != "" {
		dir, err := listsource.ParseDirection(m["sort_direction"])
		if err != nil {
			return dombundle.Bundle{}, fmt.Errorf("bundle %s/%s: %w", entityType, name, err)
		}
		sort = &dombundle.DefaultSort{Field: field, Direction: dir}
	}
	return dombundle.Reconstruct(entityType, name, sort), nil
}

// Key pattern: facetlist:bundle:{entity_type}:{name}

func bundleKey(entityType, name string) string {
	return fmt.Sprintf("%sbundle:%s:%s", domain.KeyPrefix, entityType, name)
}
