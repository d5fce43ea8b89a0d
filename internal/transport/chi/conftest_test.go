package chi

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go.uber.org/zap"

	"github.com/kailas-cloud/facetlist/internal/domain"
	"github.com/kailas-cloud/facetlist/internal/domain/bundle"
	"github.com/kailas-cloud/facetlist/internal/domain/execution"
	"github.com/kailas-cloud/facetlist/internal/domain/form"
	domitem "github.com/kailas-cloud/facetlist/internal/domain/item"
	"github.com/kailas-cloud/facetlist/internal/domain/listsource"
	"github.com/kailas-cloud/facetlist/internal/domain/preset"
	healthuc "github.com/kailas-cloud/facetlist/internal/usecase/health"
)

const testItemID = "0b9d7a52-3c1e-4f7a-9a43-1d2f6b0c8e11"

func testItem() domitem.Item {
	return domitem.Reconstruct(testItemID, "node", "landing", "Latest articles",
		domitem.NewListConfig("node", "article", preset.Set{"status": {"open"}}), 1700000000000, 2)
}

// --- Mocks ---

type mockItems struct {
	createFn func(entityType, bundle, title string, list domitem.ListConfig) (domitem.Item, error)
	getFn    func(id string) (domitem.Item, error)
	listFn   func(cursor string, limit int) ([]domitem.Item, string, error)
	deleteFn func(id string) error
	saveFn   func(id string, filters preset.Set, revision int) (domitem.Item, error)
	sourceFn func(it domitem.Item) (listsource.Source, map[string]string, error)
	putFn    func(entityType, name string, sort *bundle.DefaultSort) (bundle.Bundle, error)
	bundleFn func(entityType, name string) (bundle.Bundle, error)
}

func (m *mockItems) Create(
	_ context.Context, entityType, bundleName, title string, list domitem.ListConfig,
) (domitem.Item, error) {
	return m.createFn(entityType, bundleName, title, list)
}

func (m *mockItems) Get(_ context.Context, id string) (domitem.Item, error) {
	if m.getFn == nil {
		if id == testItemID {
			return testItem(), nil
		}
		return domitem.Item{}, domain.ErrNotFound
	}
	return m.getFn(id)
}

func (m *mockItems) List(_ context.Context, cursor string, limit int) ([]domitem.Item, string, error) {
	return m.listFn(cursor, limit)
}

func (m *mockItems) Delete(_ context.Context, id string) error { return m.deleteFn(id) }

func (m *mockItems) SavePresetFilters(
	_ context.Context, id string, filters preset.Set, revision int,
) (domitem.Item, error) {
	return m.saveFn(id, filters, revision)
}

func (m *mockItems) Source(_ context.Context, it domitem.Item) (listsource.Source, map[string]string, error) {
	if m.sourceFn == nil {
		return nil, nil, nil
	}
	return m.sourceFn(it)
}

func (m *mockItems) PutBundle(
	_ context.Context, entityType, name string, sort *bundle.DefaultSort,
) (bundle.Bundle, error) {
	return m.putFn(entityType, name, sort)
}

func (m *mockItems) GetBundle(_ context.Context, entityType, name string) (bundle.Bundle, error) {
	return m.bundleFn(entityType, name)
}

type mockLists struct {
	executeFn func(ctx context.Context, it domitem.Item) (*execution.Result, bool, error)
	countFn   func(ctx context.Context, it domitem.Item) (int, bool, error)
}

func (m *mockLists) ExecuteList(ctx context.Context, it domitem.Item) (*execution.Result, bool, error) {
	return m.executeFn(ctx, it)
}

func (m *mockLists) CountList(ctx context.Context, it domitem.Item) (int, bool, error) {
	return m.countFn(ctx, it)
}

type mockFacets struct {
	controlsFn func(res *execution.Result, live preset.Set) ([]*form.Element, preset.Set, error)
}

func (m *mockFacets) Controls(
	_ context.Context, res *execution.Result, live preset.Set,
) ([]*form.Element, preset.Set, error) {
	return m.controlsFn(res, live)
}

type mockBuilder struct {
	buildFn func(parent *form.Element, state *form.State, formKey string) (*form.Element, error)
}

func (m *mockBuilder) BuildDefaultFilters(
	_ context.Context, parent *form.Element, state *form.State, formKey string,
	_ listsource.Source, _ map[string]string, _ preset.Set,
) (*form.Element, error) {
	return m.buildFn(parent, state, formKey)
}

// memForms keeps form storage in memory, keyed by build id.
type memForms struct {
	next    string
	entries map[string]form.Storage
	saves   int
}

func newMemForms() *memForms {
	return &memForms{next: "5f0c6f0e-2a7b-4d8e-b6a1-9c3d2e1f0a77", entries: map[string]form.Storage{}}
}

func (m *memForms) NewBuildID() string { return m.next }

func (m *memForms) Load(_ context.Context, buildID string) (form.Storage, error) {
	st, ok := m.entries[buildID]
	if !ok {
		return form.Storage{}, nil
	}
	out := form.Storage{}
	for k, v := range st {
		out[k] = v
	}
	return out, nil
}

func (m *memForms) Save(_ context.Context, buildID string, storage form.Storage) error {
	m.saves++
	m.entries[buildID] = storage
	return nil
}

type mockHealth struct {
	report healthuc.Report
}

func (m *mockHealth) Check(_ context.Context) healthuc.Report { return m.report }

// countingExecutor counts backend queries.
type countingExecutor struct {
	calls int
	rs    *listsource.ResultSet
}

func (e *countingExecutor) ExecuteQuery(_ context.Context, _ *listsource.Query) (*listsource.ResultSet, error) {
	e.calls++
	return e.rs, nil
}

type stubSource struct {
	exec *countingExecutor
}

func (s *stubSource) SearchID() string   { return "article_list" }
func (s *stubSource) EntityType() string { return "node" }
func (s *stubSource) Bundle() string     { return "article" }
func (s *stubSource) Query(limit, page int, sort listsource.Sort) *listsource.Query {
	return listsource.NewQuery("article_list", s.exec, limit, page, sort)
}

// --- Helpers ---

type testServer struct {
	items   *mockItems
	lists   *mockLists
	facets  *mockFacets
	builder *mockBuilder
	forms   *memForms
	health  *mockHealth
}

func newTestServer() *testServer {
	return &testServer{
		items: &mockItems{},
		lists: &mockLists{executeFn: func(context.Context, domitem.Item) (*execution.Result, bool, error) {
			return nil, false, nil
		}},
		builder: &mockBuilder{buildFn: func(parent *form.Element, _ *form.State, _ string) (*form.Element, error) {
			return parent, nil
		}},
		forms:  newMemForms(),
		health: &mockHealth{report: healthuc.Report{Status: healthuc.Healthy}},
	}
}

func (ts *testServer) handler(middlewares ...func(http.Handler) http.Handler) http.Handler {
	return ts.server().Handler(middlewares...)
}

func (ts *testServer) server() *Server {
	var facets FacetRenderer
	if ts.facets != nil {
		facets = ts.facets
	}
	return NewServer(ts.items, ts.lists, facets, ts.builder, ts.forms, ts.health, zap.NewNop())
}

func do(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, http.NoBody)
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}
