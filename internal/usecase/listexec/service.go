// Package listexec resolves an item to its list and executes it at most once
// per request.
package listexec

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/kailas-cloud/facetlist/internal/domain"
	"github.com/kailas-cloud/facetlist/internal/domain/execution"
	"github.com/kailas-cloud/facetlist/internal/domain/item"
	"github.com/kailas-cloud/facetlist/internal/domain/listsource"
	"github.com/kailas-cloud/facetlist/internal/domain/preset"
	"github.com/kailas-cloud/facetlist/internal/logger"
	"github.com/kailas-cloud/facetlist/internal/metrics"
)

// DefaultPageSize is the number of rows per list page.
const DefaultPageSize = 10

// Manager is the list execution manager.
type Manager struct {
	sources  SourceFactory
	bundles  BundleReader
	alterer  QueryAlterer
	pageSize int
}

// Option configures the Manager.
type Option func(*Manager)

// WithPageSize overrides DefaultPageSize.
func WithPageSize(n int) Option {
	return func(m *Manager) {
		if n > 0 {
			m.pageSize = n
		}
	}
}

// WithQueryAlterer applies live facet selections of the request to list queries.
func WithQueryAlterer(a QueryAlterer) Option {
	return func(m *Manager) { m.alterer = a }
}

// New creates a list execution manager.
func New(sources SourceFactory, bundles BundleReader, opts ...Option) *Manager {
	m := &Manager{sources: sources, bundles: bundles, pageSize: DefaultPageSize}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// PageSize returns the effective page size.
func (m *Manager) PageSize() int { return m.pageSize }

// ExecuteList returns the executed list of it. The result is remembered in the
// request memo carried by ctx, so later calls for the same item return the same
// *execution.Result without querying the backend again. Reports false when the
// item has no resolvable list source.
func (m *Manager) ExecuteList(ctx context.Context, it item.Item) (*execution.Result, bool, error) {
	memo := execution.MemoFromContext(ctx)
	if r, ok := memo.Get(it.ID()); ok {
		metrics.ListExecutionsTotal.WithLabelValues(metrics.OutcomeCached).Inc()
		return r, true, nil
	}

	r, err := m.execute(ctx, it)
	switch {
	case err != nil:
		metrics.ListExecutionsTotal.WithLabelValues(metrics.OutcomeError).Inc()
		return nil, false, err
	case r == nil:
		metrics.ListExecutionsTotal.WithLabelValues(metrics.OutcomeAbsent).Inc()
		return nil, false, nil
	}
	metrics.ListExecutionsTotal.WithLabelValues(metrics.OutcomeExecuted).Inc()
	memo.Put(it.ID(), r)
	return r, true, nil
}

// CountList returns the number of rows the list of it matches across all
// pages. A list already executed in this request answers from its result.
func (m *Manager) CountList(ctx context.Context, it item.Item) (int, bool, error) {
	if r, ok := execution.MemoFromContext(ctx).Get(it.ID()); ok {
		return r.Rows().Total, true, nil
	}
	src, q, err := m.prepare(ctx, it)
	if err != nil || q == nil {
		return 0, false, err
	}
	n, err := q.Count(ctx)
	if err != nil {
		return 0, false, fmt.Errorf("count list of item %s: %w", it.ID(), err)
	}
	logger.FromContext(ctx).Debug("list counted",
		zap.String("item_id", it.ID()),
		zap.String("search_id", src.SearchID()),
		zap.Int("total", n),
	)
	return n, true, nil
}

func (m *Manager) execute(ctx context.Context, it item.Item) (*execution.Result, error) {
	src, q, err := m.prepare(ctx, it)
	if err != nil || q == nil {
		return nil, err
	}

	start := time.Now()
	rs, err := q.Execute(ctx)
	duration := time.Since(start)
	metrics.ListQueryDuration.WithLabelValues(src.SearchID()).Observe(duration.Seconds())
	if err != nil {
		return nil, fmt.Errorf("execute list of item %s: %w", it.ID(), err)
	}

	logger.FromContext(ctx).Debug("list executed",
		zap.String("item_id", it.ID()),
		zap.String("search_id", src.SearchID()),
		zap.Int("page", q.Page()),
		zap.Int("total", rs.Total),
		zap.Duration("duration", duration),
	)
	return execution.NewResult(q, rs, src, it.List()), nil
}

// prepare resolves the source of it and builds its filtered, sorted query.
// A nil query means the item has no resolvable list.
func (m *Manager) prepare(ctx context.Context, it item.Item) (listsource.Source, *listsource.Query, error) {
	log := logger.FromContext(ctx)
	cfg := it.List()
	if !cfg.IsConfigured() {
		log.Debug("item has no list", zap.String("item_id", it.ID()))
		return nil, nil, nil
	}

	src, ok, err := m.sources.Source(ctx, cfg.SourceEntityType(), cfg.SourceBundle())
	if err != nil {
		return nil, nil, fmt.Errorf("resolve list source: %w", err)
	}
	if !ok {
		log.Warn("list source not found",
			zap.String("item_id", it.ID()),
			zap.String("entity_type", cfg.SourceEntityType()),
			zap.String("bundle", cfg.SourceBundle()),
		)
		return nil, nil, nil
	}

	sort, err := m.sort(ctx, it)
	if err != nil {
		return nil, nil, err
	}

	req := execution.RequestFromContext(ctx)
	q := src.Query(m.pageSize, req.Page, sort)
	if err := m.applyFilters(ctx, src, q, req.Filters, cfg.PresetFilters()); err != nil {
		return nil, nil, err
	}
	return src, q, nil
}

// sort reads the default sort of the item's bundle; unknown bundles sort by
// backend default.
func (m *Manager) sort(ctx context.Context, it item.Item) (listsource.Sort, error) {
	b, err := m.bundles.Get(ctx, it.EntityType(), it.Bundle())
	if errors.Is(err, domain.ErrNotFound) {
		return listsource.Sort{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read bundle %s/%s: %w", it.EntityType(), it.Bundle(), err)
	}
	return b.Sort(), nil
}

// applyFilters adds live selections first and preset values last, so pinned
// facets cannot be overridden by the end user.
func (m *Manager) applyFilters(ctx context.Context, src listsource.Source, q *listsource.Query, live, pinned preset.Set) error {
	if m.alterer != nil && len(live) > 0 {
		editable := live.Clone()
		for key := range pinned {
			editable.Remove(key)
		}
		if err := m.alterer.AlterQuery(ctx, src.SearchID(), editable, q); err != nil {
			return fmt.Errorf("apply facet filters: %w", err)
		}
	}
	q.AddFilters(pinned)
	return nil
}
