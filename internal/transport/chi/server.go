// Package chi is the HTTP API of facetlist: items, their preset filters and
// lists, bundle metadata, health and metrics.
package chi

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/kailas-cloud/facetlist/internal/domain/bundle"
	"github.com/kailas-cloud/facetlist/internal/domain/execution"
	"github.com/kailas-cloud/facetlist/internal/domain/form"
	domitem "github.com/kailas-cloud/facetlist/internal/domain/item"
	"github.com/kailas-cloud/facetlist/internal/domain/listsource"
	"github.com/kailas-cloud/facetlist/internal/domain/preset"
	gen "github.com/kailas-cloud/facetlist/internal/transport/generated"
	healthuc "github.com/kailas-cloud/facetlist/internal/usecase/health"
)

// ItemService manages items, their committed filters and bundle metadata.
type ItemService interface {
	Create(ctx context.Context, entityType, bundle, title string, list domitem.ListConfig) (domitem.Item, error)
	Get(ctx context.Context, id string) (domitem.Item, error)
	List(ctx context.Context, cursor string, limit int) ([]domitem.Item, string, error)
	Delete(ctx context.Context, id string) error
	SavePresetFilters(ctx context.Context, id string, filters preset.Set, revision int) (domitem.Item, error)
	Source(ctx context.Context, it domitem.Item) (listsource.Source, map[string]string, error)
	PutBundle(ctx context.Context, entityType, name string, sort *bundle.DefaultSort) (bundle.Bundle, error)
	GetBundle(ctx context.Context, entityType, name string) (bundle.Bundle, error)
}

// ListExecutor executes the list of an item once per request.
type ListExecutor interface {
	ExecuteList(ctx context.Context, it domitem.Item) (*execution.Result, bool, error)
	CountList(ctx context.Context, it domitem.Item) (int, bool, error)
}

// FacetRenderer renders the end-user facet controls of an executed list.
type FacetRenderer interface {
	Controls(ctx context.Context, res *execution.Result, live preset.Set) ([]*form.Element, preset.Set, error)
}

// FilterBuilder renders the preset filter editor.
type FilterBuilder interface {
	BuildDefaultFilters(
		ctx context.Context,
		parent *form.Element,
		state *form.State,
		formKey string,
		src listsource.Source,
		available map[string]string,
		committed preset.Set,
	) (*form.Element, error)
}

// FormStore keeps the ephemeral storage of forms between round trips.
type FormStore interface {
	NewBuildID() string
	Load(ctx context.Context, buildID string) (form.Storage, error)
	Save(ctx context.Context, buildID string, storage form.Storage) error
}

// HealthChecker reports component health.
type HealthChecker interface {
	Check(ctx context.Context) healthuc.Report
}

// Compile-time check that Server implements gen.ServerInterface.
var _ gen.ServerInterface = (*Server)(nil)

// Server implements the generated ServerInterface.
type Server struct {
	gen.Unimplemented

	items         ItemService
	lists         ListExecutor
	facets        FacetRenderer
	filters       FilterBuilder
	forms         FormStore
	health        HealthChecker
	logger        *zap.Logger
	errorHandlers []errorHandler
}

// NewServer creates an HTTP API server. facets may be nil, lists are then
// served without end-user controls.
func NewServer(
	items ItemService,
	lists ListExecutor,
	facets FacetRenderer,
	filters FilterBuilder,
	forms FormStore,
	health HealthChecker,
	logger *zap.Logger,
) *Server {
	return &Server{
		items:         items,
		lists:         lists,
		facets:        facets,
		filters:       filters,
		forms:         forms,
		health:        health,
		logger:        logger,
		errorHandlers: defaultErrorHandlers(),
	}
}

// Handler returns a router serving the API behind the given middlewares.
// Parameter binding errors of the generated wrappers answer 400.
func (s *Server) Handler(middlewares ...func(http.Handler) http.Handler) http.Handler {
	r := chi.NewRouter()
	r.Use(middlewares...)
	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusNotFound, gen.ErrorResponseCodeBadRequest, "route not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, gen.ErrorResponseCodeBadRequest, "method not allowed")
	})
	return gen.HandlerWithOptions(s, gen.ChiServerOptions{
		BaseRouter: r,
		ErrorHandlerFunc: func(w http.ResponseWriter, _ *http.Request, err error) {
			writeError(w, http.StatusBadRequest, gen.ErrorResponseCodeBadRequest, err.Error())
		},
	})
}

// HealthCheck handles GET /health.
func (s *Server) HealthCheck(w http.ResponseWriter, r *http.Request) {
	report := s.health.Check(r.Context())

	checks := make(map[string]string, len(report.Checks))
	for k, v := range report.Checks {
		checks[k] = string(v)
	}

	httpStatus := http.StatusOK
	if report.Status != healthuc.Healthy {
		httpStatus = http.StatusServiceUnavailable
	}

	writeJSON(w, httpStatus, gen.HealthResponse{
		Status: string(report.Status),
		Checks: checks,
	})
}

// Metrics handles GET /metrics.
func (s *Server) Metrics(w http.ResponseWriter, r *http.Request) {
	promhttp.Handler().ServeHTTP(w, r)
}
