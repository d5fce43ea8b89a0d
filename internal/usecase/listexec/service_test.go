package listexec

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/kailas-cloud/facetlist/internal/domain"
	"github.com/kailas-cloud/facetlist/internal/domain/bundle"
	"github.com/kailas-cloud/facetlist/internal/domain/execution"
	"github.com/kailas-cloud/facetlist/internal/domain/item"
	"github.com/kailas-cloud/facetlist/internal/domain/listsource"
	"github.com/kailas-cloud/facetlist/internal/domain/preset"
)

// --- Mocks ---

type countingExecutor struct {
	calls   int
	queries []*listsource.Query
	rs      *listsource.ResultSet
	err     error
}

func (e *countingExecutor) ExecuteQuery(_ context.Context, q *listsource.Query) (*listsource.ResultSet, error) {
	e.calls++
	e.queries = append(e.queries, q)
	return e.rs, e.err
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

type mockSources struct {
	src   listsource.Source
	err   error
	calls int
}

func (m *mockSources) Source(_ context.Context, entityType, bundleName string) (listsource.Source, bool, error) {
	m.calls++
	if m.err != nil {
		return nil, false, m.err
	}
	if m.src == nil || entityType != "node" || bundleName != "article" {
		return nil, false, nil
	}
	return m.src, true, nil
}

type mockBundles struct {
	b   bundle.Bundle
	err error
}

func (m *mockBundles) Get(_ context.Context, _, _ string) (bundle.Bundle, error) {
	return m.b, m.err
}

type mockAlterer struct {
	active preset.Set
}

func (m *mockAlterer) AlterQuery(_ context.Context, _ string, active preset.Set, q *listsource.Query) error {
	m.active = active
	q.AddFilters(active)
	return nil
}

func newSource() *stubSource {
	return &stubSource{exec: &countingExecutor{rs: &listsource.ResultSet{
		Total: 25,
		Rows:  []listsource.Row{{ID: "n1"}, {ID: "n2"}},
	}}}
}

func createdDesc(t *testing.T) bundle.Bundle {
	t.Helper()
	b, err := bundle.New("page", "landing", &bundle.DefaultSort{Field: "created", Direction: "desc"})
	if err != nil {
		t.Fatalf("bundle.New: %v", err)
	}
	return b
}

func listItem(t *testing.T, filters preset.Set) item.Item {
	t.Helper()
	it, err := item.New("page", "landing", "Latest articles", item.NewListConfig("node", "article", filters))
	if err != nil {
		t.Fatalf("item.New: %v", err)
	}
	return it
}

// --- Tests ---

// Page 2 of a bundle sorted by created DESC skips the first ten rows.
func TestExecuteList_BuildsQuery(t *testing.T) {
	src := newSource()
	m := New(&mockSources{src: src}, &mockBundles{b: createdDesc(t)})
	ctx := execution.NewContextWithRequest(context.Background(), execution.Request{Page: 2})

	r, ok, err := m.ExecuteList(ctx, listItem(t, nil))
	if err != nil || !ok {
		t.Fatalf("expected a result, got ok=%v err=%v", ok, err)
	}

	q := r.Query()
	if q.Limit() != 10 {
		t.Errorf("expected limit 10, got %d", q.Limit())
	}
	if q.Page() != 2 {
		t.Errorf("expected page 2, got %d", q.Page())
	}
	if diff := cmp.Diff(listsource.Sort{"created": listsource.Desc}, q.Sort()); diff != "" {
		t.Errorf("sort (-want +got):\n%s", diff)
	}
	if r.Source() != listsource.Source(src) {
		t.Error("expected result to carry the resolved source")
	}
	if r.Rows().Total != 25 || len(r.Rows().Rows) != 2 {
		t.Errorf("unexpected rows: %+v", r.Rows())
	}
	if r.Config().SourceBundle() != "article" {
		t.Errorf("expected list config in result, got %+v", r.Config())
	}
	pager := r.Pager()
	if pager.Pages != 3 || !pager.HasPrev || pager.HasNext {
		t.Errorf("unexpected pager: %+v", pager)
	}
}

func TestExecuteList_MemoizedPerRequest(t *testing.T) {
	src := newSource()
	sources := &mockSources{src: src}
	m := New(sources, &mockBundles{b: createdDesc(t)})
	ctx, memo := execution.NewContextWithMemo(context.Background())
	it := listItem(t, nil)

	first, ok, err := m.ExecuteList(ctx, it)
	if err != nil || !ok {
		t.Fatalf("first call: ok=%v err=%v", ok, err)
	}
	second, ok, err := m.ExecuteList(ctx, it)
	if err != nil || !ok {
		t.Fatalf("second call: ok=%v err=%v", ok, err)
	}

	if first != second {
		t.Error("expected the same result instance for the same item")
	}
	if src.exec.calls != 1 {
		t.Errorf("expected query executed once, got %d", src.exec.calls)
	}
	if sources.calls != 1 {
		t.Errorf("expected source resolved once, got %d", sources.calls)
	}
	if memo.Len() != 1 {
		t.Errorf("expected one memo entry, got %d", memo.Len())
	}
}

func TestExecuteList_MemoKeyedByItem(t *testing.T) {
	src := newSource()
	m := New(&mockSources{src: src}, &mockBundles{err: domain.ErrNotFound})
	ctx, _ := execution.NewContextWithMemo(context.Background())

	a, _, _ := m.ExecuteList(ctx, listItem(t, nil))
	b, _, _ := m.ExecuteList(ctx, listItem(t, nil))

	if a == b {
		t.Error("expected distinct results for distinct items")
	}
	if src.exec.calls != 2 {
		t.Errorf("expected two executions, got %d", src.exec.calls)
	}
}

func TestExecuteList_FreshRequestExecutesAgain(t *testing.T) {
	src := newSource()
	m := New(&mockSources{src: src}, &mockBundles{b: createdDesc(t)})
	it := listItem(t, nil)

	for range 2 {
		ctx, _ := execution.NewContextWithMemo(context.Background())
		if _, _, err := m.ExecuteList(ctx, it); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if src.exec.calls != 2 {
		t.Errorf("expected one execution per request, got %d", src.exec.calls)
	}
}

func TestExecuteList_WithoutMemo(t *testing.T) {
	src := newSource()
	m := New(&mockSources{src: src}, &mockBundles{b: createdDesc(t)})
	it := listItem(t, nil)

	_, _, _ = m.ExecuteList(context.Background(), it)
	_, _, _ = m.ExecuteList(context.Background(), it)

	if src.exec.calls != 2 {
		t.Errorf("expected every call to execute without a memo, got %d", src.exec.calls)
	}
}

func TestExecuteList_AbsentSource(t *testing.T) {
	m := New(&mockSources{}, &mockBundles{b: createdDesc(t)})
	ctx, memo := execution.NewContextWithMemo(context.Background())

	r, ok, err := m.ExecuteList(ctx, listItem(t, nil))
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if ok || r != nil {
		t.Errorf("expected absent result, got ok=%v r=%v", ok, r)
	}
	if memo.Len() != 0 {
		t.Errorf("expected nothing memoized, got %d", memo.Len())
	}
}

func TestExecuteList_NotConfigured(t *testing.T) {
	sources := &mockSources{src: newSource()}
	m := New(sources, &mockBundles{})
	it, err := item.New("page", "landing", "No list", item.NewListConfig("", "", nil))
	if err != nil {
		t.Fatalf("item.New: %v", err)
	}

	r, ok, err := m.ExecuteList(context.Background(), it)
	if err != nil || ok || r != nil {
		t.Errorf("expected absent result, got r=%v ok=%v err=%v", r, ok, err)
	}
	if sources.calls != 0 {
		t.Errorf("expected no source lookup, got %d", sources.calls)
	}
}

func TestExecuteList_SourceFactoryError(t *testing.T) {
	factoryErr := errors.New("connection refused")
	m := New(&mockSources{err: factoryErr}, &mockBundles{})

	_, _, err := m.ExecuteList(context.Background(), listItem(t, nil))
	if !errors.Is(err, factoryErr) {
		t.Errorf("expected factory error wrapped, got %v", err)
	}
}

func TestExecuteList_UnknownBundleHasEmptySort(t *testing.T) {
	m := New(&mockSources{src: newSource()}, &mockBundles{err: domain.ErrNotFound})

	r, ok, err := m.ExecuteList(context.Background(), listItem(t, nil))
	if err != nil || !ok {
		t.Fatalf("expected a result, got ok=%v err=%v", ok, err)
	}
	if len(r.Query().Sort()) != 0 {
		t.Errorf("expected empty sort, got %v", r.Query().Sort())
	}
	if r.Query().Page() != 0 {
		t.Errorf("expected default page 0, got %d", r.Query().Page())
	}
}

func TestExecuteList_BundleReadError(t *testing.T) {
	src := newSource()
	m := New(&mockSources{src: src}, &mockBundles{err: errors.New("timeout")})

	if _, _, err := m.ExecuteList(context.Background(), listItem(t, nil)); err == nil {
		t.Fatal("expected error")
	}
	if src.exec.calls != 0 {
		t.Errorf("expected no query, got %d", src.exec.calls)
	}
}

func TestExecuteList_QueryError(t *testing.T) {
	src := newSource()
	src.exec.err = errors.New("FT.SEARCH failed")
	m := New(&mockSources{src: src}, &mockBundles{b: createdDesc(t)})
	ctx, memo := execution.NewContextWithMemo(context.Background())

	if _, _, err := m.ExecuteList(ctx, listItem(t, nil)); !errors.Is(err, src.exec.err) {
		t.Errorf("expected query error wrapped, got %v", err)
	}
	if memo.Len() != 0 {
		t.Errorf("expected failures not memoized, got %d", memo.Len())
	}
}

func TestExecuteList_PresetFiltersWin(t *testing.T) {
	alterer := &mockAlterer{}
	m := New(&mockSources{src: newSource()}, &mockBundles{b: createdDesc(t)}, WithQueryAlterer(alterer))
	ctx := execution.NewContextWithRequest(context.Background(), execution.Request{
		Filters: preset.Set{"status": {"closed"}, "tags": {"go"}},
	})

	r, _, err := m.ExecuteList(ctx, listItem(t, preset.Set{"status": {"open"}}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if diff := cmp.Diff(preset.Set{"tags": {"go"}}, alterer.active); diff != "" {
		t.Errorf("live filters passed to facets (-want +got):\n%s", diff)
	}
	want := preset.Set{"status": {"open"}, "tags": {"go"}}
	if diff := cmp.Diff(want, r.Query().Filters()); diff != "" {
		t.Errorf("query filters (-want +got):\n%s", diff)
	}
}

func TestWithPageSize(t *testing.T) {
	if got := New(nil, nil).PageSize(); got != DefaultPageSize {
		t.Errorf("expected default %d, got %d", DefaultPageSize, got)
	}
	if got := New(nil, nil, WithPageSize(25)).PageSize(); got != 25 {
		t.Errorf("expected 25, got %d", got)
	}
	if got := New(nil, nil, WithPageSize(0)).PageSize(); got != DefaultPageSize {
		t.Errorf("expected non-positive size ignored, got %d", got)
	}
}

func TestCountList(t *testing.T) {
	src := newSource()
	m := New(&mockSources{src: src}, &mockBundles{err: domain.ErrNotFound})
	it := listItem(t, preset.Set{"status": {"open"}})

	n, ok, err := m.CountList(context.Background(), it)
	if err != nil || !ok {
		t.Fatalf("CountList() = %d, %v, %v", n, ok, err)
	}
	if n != 25 {
		t.Errorf("count = %d, want 25", n)
	}
	if diff := cmp.Diff(preset.Set{"status": {"open"}}, src.exec.queries[0].Filters()); diff != "" {
		t.Errorf("count filters (-want +got):\n%s", diff)
	}
}

func TestCountList_AnswersFromExecutedList(t *testing.T) {
	src := newSource()
	m := New(&mockSources{src: src}, &mockBundles{err: domain.ErrNotFound})
	it := listItem(t, nil)
	ctx, _ := execution.NewContextWithMemo(context.Background())

	if _, _, err := m.ExecuteList(ctx, it); err != nil {
		t.Fatalf("ExecuteList: %v", err)
	}
	n, ok, err := m.CountList(ctx, it)
	if err != nil || !ok || n != 25 {
		t.Fatalf("CountList() = %d, %v, %v", n, ok, err)
	}
	if src.exec.calls != 1 {
		t.Errorf("backend calls = %d, want 1", src.exec.calls)
	}
}

func TestCountList_NoList(t *testing.T) {
	m := New(&mockSources{}, &mockBundles{})
	it := listItem(t, nil)

	if _, ok, err := m.CountList(context.Background(), it); err != nil || ok {
		t.Errorf("CountList() ok = %v, err = %v, want false, nil", ok, err)
	}
}
