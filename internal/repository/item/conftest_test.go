package item

import (
	"context"
	"testing"

	domitem "github.com/kailas-cloud/facetlist/internal/domain/item"
	"github.com/kailas-cloud/facetlist/internal/domain/preset"
)

// mockStore implements the consumer interface for tests.
type mockStore struct {
	hsetFn         func(ctx context.Context, key string, fields map[string]string) error
	hgetAllFn      func(ctx context.Context, key string) (map[string]string, error)
	hgetAllMultiFn func(ctx context.Context, keys []string) ([]map[string]string, error)
	delFn          func(ctx context.Context, key string) error
	existsFn       func(ctx context.Context, key string) (bool, error)
	scanPageFn     func(ctx context.Context, pattern string, cursor uint64, count int) ([]string, uint64, error)
}

func (m *mockStore) HSet(ctx context.Context, key string, fields map[string]string) error {
	if m.hsetFn != nil {
		return m.hsetFn(ctx, key, fields)
	}
	return nil
}

func (m *mockStore) HGetAll(ctx context.Context, key string) (map[string]string, error) {
	if m.hgetAllFn != nil {
		return m.hgetAllFn(ctx, key)
	}
	return map[string]string{}, nil
}

func (m *mockStore) HGetAllMulti(ctx context.Context, keys []string) ([]map[string]string, error) {
	if m.hgetAllMultiFn != nil {
		return m.hgetAllMultiFn(ctx, keys)
	}
	return nil, nil
}

func (m *mockStore) Del(ctx context.Context, key string) error {
	if m.delFn != nil {
		return m.delFn(ctx, key)
	}
	return nil
}

func (m *mockStore) Exists(ctx context.Context, key string) (bool, error) {
	if m.existsFn != nil {
		return m.existsFn(ctx, key)
	}
	return false, nil
}

func (m *mockStore) ScanPage(
	ctx context.Context, pattern string, cursor uint64, count int,
) ([]string, uint64, error) {
	if m.scanPageFn != nil {
		return m.scanPageFn(ctx, pattern, cursor, count)
	}
	return nil, 0, nil
}

func newTestRepo(t *testing.T) (*Repo, *mockStore) {
	t.Helper()
	ms := &mockStore{}
	return New(ms), ms
}

func testItem(t *testing.T) domitem.Item {
	t.Helper()
	return domitem.Reconstruct(
		"item-1",
		"node",
		"landing_page",
		"Recent articles",
		domitem.NewListConfig("node", "article", preset.Set{"status": {"open"}}),
		1700000000000,
		3,
	)
}

func testHash() map[string]string {
	return map[string]string{
		"id":                 "item-1",
		"entity_type":        "node",
		"bundle":             "landing_page",
		"title":              "Recent articles",
		"source_entity_type": "node",
		"source_bundle":      "article",
		"preset_filters":     `{"status":["open"]}`,
		"created_at":         "1700000000000",
		"revision":           "3",
	}
}
