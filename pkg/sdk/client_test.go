package facetlist

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/kailas-cloud/facetlist/internal/domain"
	healthuc "github.com/kailas-cloud/facetlist/internal/usecase/health"
)

func TestNew_NoAddress(t *testing.T) {
	_, err := New(context.Background(), WithSource(Source{SearchID: "article_list"}))
	if err == nil {
		t.Fatal("expected error when no address provided")
	}
}

func TestNew_UnknownDriver(t *testing.T) {
	cfg := &clientConfig{driver: "unknown", addrs: []string{"localhost:1234"}}
	_, err := createStore(cfg)
	if err == nil {
		t.Fatal("expected error for unknown driver")
	}
}

func TestClientOptions(t *testing.T) {
	cfg := &clientConfig{}

	WithValkey("localhost:6379", "secret").apply(cfg)
	if cfg.driver != "valkey" {
		t.Errorf("driver = %q, want valkey", cfg.driver)
	}
	if cfg.addrs[0] != "localhost:6379" {
		t.Errorf("addr = %q, want localhost:6379", cfg.addrs[0])
	}
	if cfg.password != "secret" {
		t.Errorf("password = %q, want secret", cfg.password)
	}

	WithRedis("localhost:6380", "pass").apply(cfg)
	if cfg.driver != "redis" || cfg.addrs[0] != "localhost:6380" {
		t.Errorf("redis option = (%q, %v)", cfg.driver, cfg.addrs)
	}

	WithSource(Source{SearchID: "a"}).apply(cfg)
	WithSource(Source{SearchID: "b"}).apply(cfg)
	if len(cfg.sources) != 2 || cfg.sources[1].SearchID != "b" {
		t.Errorf("sources = %+v, want a then b", cfg.sources)
	}

	WithPageSize(25).apply(cfg)
	if cfg.pageSize != 25 {
		t.Errorf("pageSize = %d, want 25", cfg.pageSize)
	}

	if cfg.rebuildIndexes {
		t.Error("index rebuild must be off by default")
	}
	WithIndexRebuild().apply(cfg)
	if !cfg.rebuildIndexes {
		t.Error("expected index rebuild to be enabled")
	}

	logger := slog.Default()
	WithLogger(logger).apply(cfg)
	if cfg.logger != logger {
		t.Error("expected logger to be set")
	}

	reg := prometheus.NewRegistry()
	WithPrometheus(reg).apply(cfg)
	if cfg.metricsReg != reg {
		t.Error("expected metricsReg to be set")
	}
}

func TestClient_Close_NilStore(t *testing.T) {
	c := &Client{store: nil}
	c.Close()
}

func TestClient_Health(t *testing.T) {
	c := &Client{healthSvc: &mockHealthUC{report: healthuc.Report{
		Status: healthuc.Degraded,
		Checks: map[string]healthuc.CheckResult{
			"database":           healthuc.CheckOK,
			"index:article_list": healthuc.CheckMissing,
		},
	}}}

	got := c.Health(context.Background())
	if got.Status != "degraded" {
		t.Errorf("status = %q, want degraded", got.Status)
	}
	if got.Checks["index:article_list"] != "missing" {
		t.Errorf("index check = %q, want missing", got.Checks["index:article_list"])
	}
}

func TestObserver_NilSafe(t *testing.T) {
	var obs *observer
	obs.observe("test", time.Now(), nil)
	obs.observe("test", time.Now(), errors.New("err"))
}

func TestObserver_WithPrometheus(t *testing.T) {
	reg := prometheus.NewRegistry()
	obs, err := newObserver(nil, reg)
	if err != nil {
		t.Fatalf("newObserver: %v", err)
	}

	obs.observe("item.get", time.Now().Add(-10*time.Millisecond), nil)
	obs.observe("item.get", time.Now(), domain.ErrNotFound)
	obs.observe("item.get", time.Now(), errors.New("connection reset"))

	if n := testutil.CollectAndCount(obs.metrics.operations, "facetlist_sdk_operations_total"); n != 3 {
		t.Errorf("operation samples = %d, want 3", n)
	}
	if v := testutil.ToFloat64(obs.metrics.operations.WithLabelValues("item.get", statusNotFound)); v != 1 {
		t.Errorf("not_found count = %v, want 1", v)
	}
}

func TestObserver_SharedRegistry(t *testing.T) {
	reg := prometheus.NewRegistry()
	first, err := newObserver(nil, reg)
	if err != nil {
		t.Fatalf("first observer: %v", err)
	}
	second, err := newObserver(nil, reg)
	if err != nil {
		t.Fatalf("second observer: %v", err)
	}

	first.observe("ping", time.Now(), nil)
	second.observe("ping", time.Now(), nil)

	if v := testutil.ToFloat64(first.metrics.operations.WithLabelValues("ping", statusOK)); v != 2 {
		t.Errorf("shared counter = %v, want 2", v)
	}
}

func TestObserver_WithLogger(t *testing.T) {
	obs, err := newObserver(slog.Default(), nil)
	if err != nil {
		t.Fatalf("newObserver: %v", err)
	}
	obs.observe("test.op", time.Now(), nil)
	obs.observe("test.op", time.Now(), domain.ErrInvalidInput)
	obs.observe("test.op", time.Now(), errors.New("test error"))
}

func TestStatusOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"nil", nil, statusOK},
		{"not found", domain.ErrNotFound, statusNotFound},
		{"invalid", domain.ErrInvalidInput, statusInvalid},
		{"facet", domain.ErrFacetNotFound, statusInvalid},
		{"not configured", domain.ErrListNotConfigured, statusInvalid},
		{"conflict", &domain.RevisionConflictError{CurrentRevision: 3}, statusInvalid},
		{"wrapped", errors.Join(errors.New("get"), domain.ErrNotFound), statusNotFound},
		{"backend", errors.New("timeout"), statusError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := statusOf(tt.err); got != tt.want {
				t.Errorf("statusOf = %q, want %q", got, tt.want)
			}
		})
	}
}
