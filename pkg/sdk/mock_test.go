package facetlist

import (
	"context"

	"github.com/kailas-cloud/facetlist/internal/domain/bundle"
	"github.com/kailas-cloud/facetlist/internal/domain/execution"
	domitem "github.com/kailas-cloud/facetlist/internal/domain/item"
	"github.com/kailas-cloud/facetlist/internal/domain/listsource"
	"github.com/kailas-cloud/facetlist/internal/domain/preset"
	healthuc "github.com/kailas-cloud/facetlist/internal/usecase/health"
)

// --- itemUseCase mock ---

type mockItemUC struct {
	createFn func(ctx context.Context, entityType, bundle, title string, list domitem.ListConfig) (domitem.Item, error)
	getFn    func(ctx context.Context, id string) (domitem.Item, error)
	deleteFn func(ctx context.Context, id string) error
	saveFn   func(ctx context.Context, id string, filters preset.Set, revision int) (domitem.Item, error)
	putFn    func(ctx context.Context, entityType, name string, sort *bundle.DefaultSort) (bundle.Bundle, error)
}

func (m *mockItemUC) Create(
	ctx context.Context, entityType, bundleName, title string, list domitem.ListConfig,
) (domitem.Item, error) {
	return m.createFn(ctx, entityType, bundleName, title, list)
}

func (m *mockItemUC) Get(ctx context.Context, id string) (domitem.Item, error) {
	return m.getFn(ctx, id)
}

func (m *mockItemUC) Delete(ctx context.Context, id string) error {
	return m.deleteFn(ctx, id)
}

func (m *mockItemUC) SavePresetFilters(
	ctx context.Context, id string, filters preset.Set, revision int,
) (domitem.Item, error) {
	return m.saveFn(ctx, id, filters, revision)
}

func (m *mockItemUC) PutBundle(
	ctx context.Context, entityType, name string, sort *bundle.DefaultSort,
) (bundle.Bundle, error) {
	return m.putFn(ctx, entityType, name, sort)
}

// --- listUseCase mock ---

type mockListUC struct {
	executeFn func(ctx context.Context, it domitem.Item) (*execution.Result, bool, error)
	countFn   func(ctx context.Context, it domitem.Item) (int, bool, error)
}

func (m *mockListUC) ExecuteList(ctx context.Context, it domitem.Item) (*execution.Result, bool, error) {
	return m.executeFn(ctx, it)
}

func (m *mockListUC) CountList(ctx context.Context, it domitem.Item) (int, bool, error) {
	return m.countFn(ctx, it)
}

// --- healthUseCase mock ---

type mockHealthUC struct {
	report healthuc.Report
}

func (m *mockHealthUC) Check(_ context.Context) healthuc.Report { return m.report }

// --- list source stub ---

type stubSource struct{}

func (stubSource) SearchID() string   { return "article_list" }
func (stubSource) EntityType() string { return "node" }
func (stubSource) Bundle() string     { return "article" }
func (stubSource) Query(limit, page int, sort listsource.Sort) *listsource.Query {
	return listsource.NewQuery("article_list", nil, limit, page, sort)
}
