package item

import (
	"context"
	"fmt"
	"sort"
	"strconv"

	"github.com/kailas-cloud/facetlist/internal/domain"
	domitem "github.com/kailas-cloud/facetlist/internal/domain/item"
)

// store is the consumer interface for items (ISP).
type store interface {
	HSet(ctx context.Context, key string, fields map[string]string) error
	HGetAll(ctx context.Context, key string) (map[string]string, error)
	HGetAllMulti(ctx context.Context, keys []string) ([]map[string]string, error)
	Del(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)
	ScanPage(ctx context.Context, pattern string, cursor uint64, count int) ([]string, uint64, error)
}

// Repo implements usecase/item.Repository.
type Repo struct {
	store store
}

// New creates an item repository.
func New(s store) *Repo {
	return &Repo{store: s}
}

// Create stores a new item.
func (r *Repo) Create(ctx context.Context, it domitem.Item) error {
	key := itemKey(it.ID())
	exists, err := r.store.Exists(ctx, key)
	if err != nil {
		return fmt.Errorf("check exists: %w", err)
	}
	if exists {
		return domain.ErrAlreadyExists
	}

	hashData, err := itemToHash(it)
	if err != nil {
		return err
	}
	if err := r.store.HSet(ctx, key, hashData); err != nil {
		return fmt.Errorf("hset item %s: %w", it.ID(), err)
	}
	return nil
}

// Get retrieves an item by id.
func (r *Repo) Get(ctx context.Context, id string) (domitem.Item, error) {
	m, err := r.store.HGetAll(ctx, itemKey(id))
	if err != nil {
		return domitem.Item{}, fmt.Errorf("hgetall item %s: %w", id, err)
	}
	if len(m) == 0 {
		return domitem.Item{}, domain.ErrNotFound
	}
	return itemFromHash(m)
}

// List returns one SCAN page of items sorted by CreatedAt. The cursor is
// opaque; an empty next cursor means the listing is complete. Pages may hold
// fewer than limit items since SCAN counts are hints.
func (r *Repo) List(ctx context.Context, cursor string, limit int) ([]domitem.Item, string, error) {
	var start uint64
	if cursor != "" {
		parsed, err := strconv.ParseUint(cursor, 10, 64)
		if err != nil {
			return nil, "", fmt.Errorf("%w: invalid cursor", domain.ErrInvalidInput)
		}
		start = parsed
	}

	keys, next, err := r.store.ScanPage(ctx, itemKey("*"), start, limit)
	if err != nil {
		return nil, "", fmt.Errorf("scan items: %w", err)
	}
	nextCursor := ""
	if next != 0 {
		nextCursor = strconv.FormatUint(next, 10)
	}
	if len(keys) == 0 {
		return []domitem.Item{}, nextCursor, nil
	}

	results, err := r.store.HGetAllMulti(ctx, keys)
	if err != nil {
		return nil, "", fmt.Errorf("hgetall multi items: %w", err)
	}

	items := make([]domitem.Item, 0, len(results))
	for i, m := range results {
		if len(m) == 0 {
			continue // deleted between SCAN and HGETALL
		}
		it, err := itemFromHash(m)
		if err != nil {
			return nil, "", fmt.Errorf("parse item %s: %w", keys[i], err)
		}
		items = append(items, it)
	}

	sort.Slice(items, func(i, j int) bool {
		return items[i].CreatedAt() < items[j].CreatedAt()
	})
	return items, nextCursor, nil
}

// Update overwrites an item when the stored revision equals expectedRevision.
func (r *Repo) Update(ctx context.Context, it domitem.Item, expectedRevision int) error {
	key := itemKey(it.ID())
	current, err := r.Get(ctx, it.ID())
	if err != nil {
		return err
	}
	if current.Revision() != expectedRevision {
		return domain.NewRevisionConflict(current.Revision())
	}

	hashData, err := itemToHash(it)
	if err != nil {
		return err
	}
	if err := r.store.HSet(ctx, key, hashData); err != nil {
		return fmt.Errorf("hset item %s: %w", it.ID(), err)
	}
	return nil
}

// Delete removes an item.
func (r *Repo) Delete(ctx context.Context, id string) error {
	key := itemKey(id)
	exists, err := r.store.Exists(ctx, key)
	if err != nil {
		return fmt.Errorf("check exists: %w", err)
	}
	if !exists {
		return domain.ErrNotFound
	}
	if err := r.store.Del(ctx, key); err != nil {
		return fmt.Errorf("del item %s: %w", id, err)
	}
	return nil
}

// Key pattern: facetlist:item:{id}

func itemKey(id string) string {
	return fmt.Sprintf("%sitem:%s", domain.KeyPrefix, id)
}
