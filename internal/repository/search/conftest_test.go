package search

import (
	"context"
	"testing"

	"github.com/kailas-cloud/facetlist/internal/db"
)

// mockStore implements the consumer interface for tests.
type mockStore struct {
	searchListFn  func(ctx context.Context, q *db.ListQuery) (*db.SearchResult, error)
	searchCountFn func(ctx context.Context, q *db.ListQuery) (int, error)
	createIndexFn func(ctx context.Context, def *db.IndexDefinition) error
	dropIndexFn   func(ctx context.Context, name string) error
	indexExistsFn func(ctx context.Context, name string) (bool, error)
	lastQuery     *db.ListQuery
}

func (m *mockStore) SearchList(ctx context.Context, q *db.ListQuery) (*db.SearchResult, error) {
	m.lastQuery = q
	if m.searchListFn != nil {
		return m.searchListFn(ctx, q)
	}
	return &db.SearchResult{}, nil
}

func (m *mockStore) SearchCount(ctx context.Context, q *db.ListQuery) (int, error) {
	m.lastQuery = q
	if m.searchCountFn != nil {
		return m.searchCountFn(ctx, q)
	}
	return 0, nil
}

func (m *mockStore) DropIndex(ctx context.Context, name string) error {
	if m.dropIndexFn != nil {
		return m.dropIndexFn(ctx, name)
	}
	return nil
}

func (m *mockStore) CreateIndex(ctx context.Context, def *db.IndexDefinition) error {
	if m.createIndexFn != nil {
		return m.createIndexFn(ctx, def)
	}
	return nil
}

func (m *mockStore) IndexExists(ctx context.Context, name string) (bool, error) {
	if m.indexExistsFn != nil {
		return m.indexExistsFn(ctx, name)
	}
	return false, nil
}

func articleDefinition() SourceDefinition {
	return SourceDefinition{
		SearchID:   "article_list",
		EntityType: "node",
		Bundle:     "article",
		Fields: []Field{
			{Name: "title", Type: FieldText},
			{Name: "status", Type: FieldTag},
			{Name: "tags", Type: FieldTag},
			{Name: "created", Type: FieldNumeric, Sortable: true},
		},
		Facets: map[string]FacetField{
			"status":  {Field: "status"},
			"topic":   {Field: "tags"},
			"created": {Field: "created", Range: true},
		},
	}
}

func newTestRepo(t *testing.T) (*Repo, *mockStore) {
	t.Helper()
	ms := &mockStore{}
	repo, err := New(ms, []SourceDefinition{articleDefinition()})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return repo, ms
}
