package item

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/kailas-cloud/facetlist/internal/domain"
	"github.com/kailas-cloud/facetlist/internal/domain/preset"
)

// --- Create ---

func TestCreate_HappyPath(t *testing.T) {
	repo, ms := newTestRepo(t)
	var stored map[string]string
	ms.hsetFn = func(_ context.Context, key string, fields map[string]string) error {
		if key != "facetlist:item:item-1" {
			t.Errorf("unexpected key: %s", key)
		}
		stored = fields
		return nil
	}

	if err := repo.Create(context.Background(), testItem(t)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if diff := cmp.Diff(testHash(), stored); diff != "" {
		t.Errorf("stored hash mismatch (-want +got):\n%s", diff)
	}
}

func TestCreate_AlreadyExists(t *testing.T) {
	repo, ms := newTestRepo(t)
	ms.existsFn = func(_ context.Context, _ string) (bool, error) { return true, nil }

	err := repo.Create(context.Background(), testItem(t))
	if !errors.Is(err, domain.ErrAlreadyExists) {
		t.Fatalf("expected ErrAlreadyExists, got %v", err)
	}
}

func TestCreate_HSetError(t *testing.T) {
	repo, ms := newTestRepo(t)
	ms.hsetFn = func(_ context.Context, _ string, _ map[string]string) error {
		return errors.New("connection lost")
	}

	if err := repo.Create(context.Background(), testItem(t)); err == nil {
		t.Fatal("expected error on HSET failure")
	}
}

// --- Get ---

func TestGet_HappyPath(t *testing.T) {
	repo, ms := newTestRepo(t)
	ms.hgetAllFn = func(_ context.Context, key string) (map[string]string, error) {
		if key != "facetlist:item:item-1" {
			t.Errorf("unexpected key: %s", key)
		}
		return testHash(), nil
	}

	it, err := repo.Get(context.Background(), "item-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if it.Title() != "Recent articles" || it.Revision() != 3 {
		t.Errorf("unexpected item: %+v", it)
	}
	if it.List().SourceBundle() != "article" {
		t.Errorf("expected source bundle article, got %s", it.List().SourceBundle())
	}
	if diff := cmp.Diff(preset.Set{"status": {"open"}}, it.List().PresetFilters()); diff != "" {
		t.Errorf("filters mismatch (-want +got):\n%s", diff)
	}
}

func TestGet_ScalarFilterValue(t *testing.T) {
	repo, ms := newTestRepo(t)
	h := testHash()
	h["preset_filters"] = `{"status":"open"}`
	ms.hgetAllFn = func(_ context.Context, _ string) (map[string]string, error) { return h, nil }

	it, err := repo.Get(context.Background(), "item-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if diff := cmp.Diff(preset.Set{"status": {"open"}}, it.List().PresetFilters()); diff != "" {
		t.Errorf("filters mismatch (-want +got):\n%s", diff)
	}
}

func TestGet_NotFound(t *testing.T) {
	repo, _ := newTestRepo(t)

	_, err := repo.Get(context.Background(), "missing")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestGet_CorruptFilters(t *testing.T) {
	repo, ms := newTestRepo(t)
	h := testHash()
	h["preset_filters"] = `{not json`
	ms.hgetAllFn = func(_ context.Context, _ string) (map[string]string, error) { return h, nil }

	if _, err := repo.Get(context.Background(), "item-1"); err == nil {
		t.Fatal("expected error for corrupt filters")
	}
}

// --- List ---

func TestList_SortsByCreatedAt(t *testing.T) {
	repo, ms := newTestRepo(t)
	ms.scanPageFn = func(_ context.Context, pattern string, cursor uint64, count int) ([]string, uint64, error) {
		if pattern != "facetlist:item:*" || cursor != 5 || count != 2 {
			t.Errorf("unexpected scan args: %s %d %d", pattern, cursor, count)
		}
		return []string{"facetlist:item:b", "facetlist:item:a", "facetlist:item:gone"}, 9, nil
	}
	ms.hgetAllMultiFn = func(_ context.Context, keys []string) ([]map[string]string, error) {
		a, b := testHash(), testHash()
		a["id"], a["created_at"] = "a", "100"
		b["id"], b["created_at"] = "b", "200"
		return []map[string]string{b, a, {}}, nil
	}

	items, next, err := repo.List(context.Background(), "5", 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items) != 2 || items[0].ID() != "a" || items[1].ID() != "b" {
		t.Fatalf("unexpected items: %+v", items)
	}
	if next != "9" {
		t.Errorf("expected next cursor 9, got %q", next)
	}
}

func TestList_Complete(t *testing.T) {
	repo, _ := newTestRepo(t)

	items, next, err := repo.List(context.Background(), "", 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items) != 0 || next != "" {
		t.Errorf("expected empty final page, got %d items, cursor %q", len(items), next)
	}
}

func TestList_InvalidCursor(t *testing.T) {
	repo, _ := newTestRepo(t)

	_, _, err := repo.List(context.Background(), "abc", 10)
	if !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

// --- Update ---

func TestUpdate_HappyPath(t *testing.T) {
	repo, ms := newTestRepo(t)
	ms.hgetAllFn = func(_ context.Context, _ string) (map[string]string, error) { return testHash(), nil }
	var stored map[string]string
	ms.hsetFn = func(_ context.Context, _ string, fields map[string]string) error {
		stored = fields
		return nil
	}

	next := testItem(t).WithPresetFilters(preset.Set{"tags": {"go"}})
	if err := repo.Update(context.Background(), next, 3); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stored["revision"] != "4" || stored["preset_filters"] != `{"tags":["go"]}` {
		t.Errorf("unexpected stored hash: %v", stored)
	}
}

func TestUpdate_RevisionConflict(t *testing.T) {
	repo, ms := newTestRepo(t)
	ms.hgetAllFn = func(_ context.Context, _ string) (map[string]string, error) { return testHash(), nil }
	ms.hsetFn = func(_ context.Context, _ string, _ map[string]string) error {
		t.Error("HSET must not run on conflict")
		return nil
	}

	err := repo.Update(context.Background(), testItem(t), 2)
	var conflict *domain.RevisionConflictError
	if !errors.As(err, &conflict) {
		t.Fatalf("expected RevisionConflictError, got %v", err)
	}
	if conflict.CurrentRevision != 3 {
		t.Errorf("expected current revision 3, got %d", conflict.CurrentRevision)
	}
}

func TestUpdate_NotFound(t *testing.T) {
	repo, _ := newTestRepo(t)

	err := repo.Update(context.Background(), testItem(t), 3)
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

// --- Delete ---

func TestDelete_HappyPath(t *testing.T) {
	repo, ms := newTestRepo(t)
	ms.existsFn = func(_ context.Context, _ string) (bool, error) { return true, nil }
	var deleted string
	ms.delFn = func(_ context.Context, key string) error {
		deleted = key
		return nil
	}

	if err := repo.Delete(context.Background(), "item-1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if deleted != "facetlist:item:item-1" {
		t.Errorf("unexpected DEL key: %s", deleted)
	}
}

func TestDelete_NotFound(t *testing.T) {
	repo, _ := newTestRepo(t)

	err := repo.Delete(context.Background(), "item-1")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
