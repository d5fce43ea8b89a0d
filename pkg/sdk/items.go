package facetlist

import (
	"context"
	"fmt"
	"time"

	"github.com/kailas-cloud/facetlist/internal/domain"
	"github.com/kailas-cloud/facetlist/internal/domain/bundle"
	"github.com/kailas-cloud/facetlist/internal/domain/execution"
	domitem "github.com/kailas-cloud/facetlist/internal/domain/item"
	"github.com/kailas-cloud/facetlist/internal/domain/listsource"
	"github.com/kailas-cloud/facetlist/internal/domain/preset"
)

// Internal interfaces, replaced in tests.
type itemUseCase interface {
	Create(ctx context.Context, entityType, bundle, title string, list domitem.ListConfig) (domitem.Item, error)
	Get(ctx context.Context, id string) (domitem.Item, error)
	Delete(ctx context.Context, id string) error
	SavePresetFilters(ctx context.Context, id string, filters preset.Set, revision int) (domitem.Item, error)
	PutBundle(ctx context.Context, entityType, name string, sort *bundle.DefaultSort) (bundle.Bundle, error)
}

type listUseCase interface {
	ExecuteList(ctx context.Context, it domitem.Item) (*execution.Result, bool, error)
	CountList(ctx context.Context, it domitem.Item) (int, bool, error)
}

// ItemService manages items and executes their lists.
type ItemService struct {
	items itemUseCase
	lists listUseCase
	obs   *observer
}

// Create stores a new item. list may be nil for an item without a list.
func (s *ItemService) Create(
	ctx context.Context, entityType, bundleName, title string, list *ListRef,
) (_ Item, err error) {
	start := time.Now()
	defer func() { s.obs.observe("item.create", start, err) }()

	it, err := s.items.Create(ctx, entityType, bundleName, title, toInternalList(list))
	if err != nil {
		return Item{}, fmt.Errorf("create item: %w", err)
	}
	return fromInternalItem(it), nil
}

// Get retrieves an item by id.
func (s *ItemService) Get(ctx context.Context, id string) (_ Item, err error) {
	start := time.Now()
	defer func() { s.obs.observe("item.get", start, err) }()

	it, err := s.items.Get(ctx, id)
	if err != nil {
		return Item{}, fmt.Errorf("get item %s: %w", id, err)
	}
	return fromInternalItem(it), nil
}

// Delete removes an item.
func (s *ItemService) Delete(ctx context.Context, id string) (err error) {
	start := time.Now()
	defer func() { s.obs.observe("item.delete", start, err) }()

	if err = s.items.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete item %s: %w", id, err)
	}
	return nil
}

// SetPresetFilters replaces the pinned filters of the item's list.
// revision > 0 fails with ErrRevisionConflict when the item changed meanwhile.
func (s *ItemService) SetPresetFilters(
	ctx context.Context, id string, filters Filters, revision int,
) (_ Item, err error) {
	start := time.Now()
	defer func() { s.obs.observe("item.set_preset_filters", start, err) }()

	it, err := s.items.SavePresetFilters(ctx, id, toInternalFilters(filters), revision)
	if err != nil {
		return Item{}, fmt.Errorf("set preset filters of %s: %w", id, err)
	}
	return fromInternalItem(it), nil
}

// List executes one page of the item's list. filters are end-user selections;
// pinned filters always win over them. When ctx carries no request memo the
// list is executed on every call.
func (s *ItemService) List(ctx context.Context, id string, page int, filters Filters) (_ ListPage, err error) {
	start := time.Now()
	defer func() { s.obs.observe("item.list", start, err) }()

	it, err := s.items.Get(ctx, id)
	if err != nil {
		return ListPage{}, fmt.Errorf("get item %s: %w", id, err)
	}

	ctx = execution.NewContextWithRequest(ctx, execution.Request{Page: page, Filters: toInternalFilters(filters)})
	res, ok, err := s.lists.ExecuteList(ctx, it)
	if err != nil {
		return ListPage{}, fmt.Errorf("execute list of %s: %w", id, err)
	}
	if !ok {
		return ListPage{}, fmt.Errorf("item %s: %w", id, domain.ErrListNotConfigured)
	}
	return fromInternalResult(res), nil
}

// Count returns how many rows the item's list matches across all pages, with
// the same end-user filters List accepts.
func (s *ItemService) Count(ctx context.Context, id string, filters Filters) (_ int, err error) {
	start := time.Now()
	defer func() { s.obs.observe("item.count", start, err) }()

	it, err := s.items.Get(ctx, id)
	if err != nil {
		return 0, fmt.Errorf("get item %s: %w", id, err)
	}

	ctx = execution.NewContextWithRequest(ctx, execution.Request{Filters: toInternalFilters(filters)})
	n, ok, err := s.lists.CountList(ctx, it)
	if err != nil {
		return 0, fmt.Errorf("count list of %s: %w", id, err)
	}
	if !ok {
		return 0, fmt.Errorf("item %s: %w", id, domain.ErrListNotConfigured)
	}
	return n, nil
}

// BundleService manages bundle metadata.
type BundleService struct {
	items itemUseCase
	obs   *observer
}

// SetDefaultSort sets the sort of lists of items of the bundle.
// direction is "asc" or "desc" in any case.
func (s *BundleService) SetDefaultSort(
	ctx context.Context, entityType, name, field, direction string,
) (err error) {
	start := time.Now()
	defer func() { s.obs.observe("bundle.set_default_sort", start, err) }()

	sort := &bundle.DefaultSort{Field: field, Direction: listsource.Direction(direction)}
	if _, err = s.items.PutBundle(ctx, entityType, name, sort); err != nil {
		return fmt.Errorf("set default sort of %s/%s: %w", entityType, name, err)
	}
	return nil
}
