package item

import (
	"context"
	"fmt"

	"github.com/kailas-cloud/facetlist/internal/domain"
	"github.com/kailas-cloud/facetlist/internal/domain/bundle"
	domitem "github.com/kailas-cloud/facetlist/internal/domain/item"
	"github.com/kailas-cloud/facetlist/internal/domain/listsource"
	"github.com/kailas-cloud/facetlist/internal/domain/preset"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// Service handles items, their committed preset filters and bundle metadata.
type Service struct {
	repo    Repository
	bundles BundleRepository
	sources SourceFactory
	facets  FacetCatalog
}

// New creates an item service.
func New(repo Repository, bundles BundleRepository, sources SourceFactory, facets FacetCatalog) *Service {
	return &Service{repo: repo, bundles: bundles, sources: sources, facets: facets}
}

// Create validates and stores a new item.
func (s *Service) Create(
	ctx context.Context, entityType, bundleName, title string, list domitem.ListConfig,
) (domitem.Item, error) {
	it, err := domitem.New(entityType, bundleName, title, list)
	if err != nil {
		return domitem.Item{}, fmt.Errorf("validate item: %w: %w", domain.ErrInvalidInput, err)
	}
	if list.IsConfigured() {
		if _, err := s.validateFilters(ctx, list, list.PresetFilters()); err != nil {
			return domitem.Item{}, err
		}
	}
	if err := s.repo.Create(ctx, it); err != nil {
		return domitem.Item{}, fmt.Errorf("create item: %w", err)
	}
	return it, nil
}

// Get retrieves an item by id.
func (s *Service) Get(ctx context.Context, id string) (domitem.Item, error) {
	it, err := s.repo.Get(ctx, id)
	if err != nil {
		return domitem.Item{}, fmt.Errorf("get item: %w", err)
	}
	return it, nil
}

// List returns a page of items.
func (s *Service) List(ctx context.Context, cursor string, limit int) ([]domitem.Item, string, error) {
	if limit <= 0 {
		limit = defaultPageSize
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}
	items, next, err := s.repo.List(ctx, cursor, limit)
	if err != nil {
		return nil, "", fmt.Errorf("list items: %w", err)
	}
	return items, next, nil
}

// Delete removes an item.
func (s *Service) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete item: %w", err)
	}
	return nil
}

// SavePresetFilters commits filters as the preset filter set of the item's list.
// revision > 0 enables optimistic locking against the stored revision.
func (s *Service) SavePresetFilters(
	ctx context.Context, id string, filters preset.Set, revision int,
) (domitem.Item, error) {
	it, err := s.repo.Get(ctx, id)
	if err != nil {
		return domitem.Item{}, fmt.Errorf("get item: %w", err)
	}
	if revision > 0 && revision != it.Revision() {
		return domitem.Item{}, domain.NewRevisionConflict(it.Revision())
	}

	cleaned, err := s.validateFilters(ctx, it.List(), filters)
	if err != nil {
		return domitem.Item{}, err
	}

	updated := it.WithPresetFilters(cleaned)
	if err := s.repo.Update(ctx, updated, it.Revision()); err != nil {
		return domitem.Item{}, fmt.Errorf("save preset filters: %w", err)
	}
	return updated, nil
}

// Source resolves the list source of the item together with the labels of the
// filters an editor may pin on it. The source is nil when the list is not
// configured or its source is unknown.
func (s *Service) Source(ctx context.Context, it domitem.Item) (listsource.Source, map[string]string, error) {
	cfg := it.List()
	if !cfg.IsConfigured() {
		return nil, nil, nil
	}
	src, ok, err := s.sources.Source(ctx, cfg.SourceEntityType(), cfg.SourceBundle())
	if err != nil {
		return nil, nil, fmt.Errorf("resolve list source: %w", err)
	}
	if !ok {
		return nil, nil, nil
	}
	return src, s.facets.Labels(src.SearchID()), nil
}

// validateFilters checks that every key is a facet of the configured source and
// drops empty values, which mean "not pinned".
func (s *Service) validateFilters(ctx context.Context, cfg domitem.ListConfig, filters preset.Set) (preset.Set, error) {
	if !cfg.IsConfigured() {
		if len(filters) == 0 {
			return preset.Set{}, nil
		}
		return nil, fmt.Errorf("save preset filters: %w", domain.ErrListNotConfigured)
	}
	src, ok, err := s.sources.Source(ctx, cfg.SourceEntityType(), cfg.SourceBundle())
	if err != nil {
		return nil, fmt.Errorf("resolve list source: %w", err)
	}
	if !ok {
		return nil, fmt.Errorf("no source for %s/%s: %w",
			cfg.SourceEntityType(), cfg.SourceBundle(), domain.ErrListNotConfigured)
	}

	labels := s.facets.Labels(src.SearchID())
	cleaned := make(preset.Set, len(filters))
	for _, key := range filters.Keys() {
		if _, ok := labels[key]; !ok {
			return nil, fmt.Errorf("filter %q on %s: %w", key, src.SearchID(), domain.ErrFacetNotFound)
		}
		if v := filters[key]; !v.IsEmpty() {
			cleaned[key] = v
		}
	}
	return cleaned, nil
}

// PutBundle validates and stores bundle metadata.
func (s *Service) PutBundle(
	ctx context.Context, entityType, name string, sort *bundle.DefaultSort,
) (bundle.Bundle, error) {
	b, err := bundle.New(entityType, name, sort)
	if err != nil {
		return bundle.Bundle{}, fmt.Errorf("validate bundle: %w: %w", domain.ErrInvalidInput, err)
	}
	if err := s.bundles.Put(ctx, b); err != nil {
		return bundle.Bundle{}, fmt.Errorf("put bundle: %w", err)
	}
	return b, nil
}

// GetBundle retrieves bundle metadata.
func (s *Service) GetBundle(ctx context.Context, entityType, name string) (bundle.Bundle, error) {
	b, err := s.bundles.Get(ctx, entityType, name)
	if err != nil {
		return bundle.Bundle{}, fmt.Errorf("get bundle: %w", err)
	}
	return b, nil
}
