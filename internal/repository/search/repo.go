package search

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/kailas-cloud/facetlist/internal/db"
	"github.com/kailas-cloud/facetlist/internal/domain"
	"github.com/kailas-cloud/facetlist/internal/domain/facet/widget"
	"github.com/kailas-cloud/facetlist/internal/domain/listsource"
	"github.com/kailas-cloud/facetlist/internal/domain/listsource/filter"
	"github.com/kailas-cloud/facetlist/internal/domain/preset"
	"github.com/kailas-cloud/facetlist/internal/logger"
)

// store is the consumer interface for search operations (ISP).
type store interface {
	SearchList(ctx context.Context, q *db.ListQuery) (*db.SearchResult, error)
	SearchCount(ctx context.Context, q *db.ListQuery) (int, error)
	CreateIndex(ctx context.Context, def *db.IndexDefinition) error
	DropIndex(ctx context.Context, name string) error
	IndexExists(ctx context.Context, name string) (bool, error)
}

// Repo exposes the configured list sources over FT.SEARCH. It is both the
// source factory and the query executor.
type Repo struct {
	store    store
	sources  map[string]*source // by search id
	byBundle map[string]*source // by entity type + bundle
}

// New validates the definitions and creates a search repository.
func New(s store, defs []SourceDefinition) (*Repo, error) {
	r := &Repo{
		store:    s,
		sources:  make(map[string]*source, len(defs)),
		byBundle: make(map[string]*source, len(defs)),
	}
	for i := range defs {
		def := defs[i]
		if err := def.validate(); err != nil {
			return nil, err
		}
		if _, ok := r.sources[def.SearchID]; ok {
			return nil, fmt.Errorf("duplicate source %q", def.SearchID)
		}
		bk := bundleKey(def.EntityType, def.Bundle)
		if _, ok := r.byBundle[bk]; ok {
			return nil, fmt.Errorf("source %s: %s/%s already has a source", def.SearchID, def.EntityType, def.Bundle)
		}
		src := &source{def: def, exec: r}
		r.sources[def.SearchID] = src
		r.byBundle[bk] = src
	}
	return r, nil
}

// Source resolves the list source of an (entity type, bundle) pair.
func (r *Repo) Source(_ context.Context, entityType, bundle string) (listsource.Source, bool, error) {
	src, ok := r.byBundle[bundleKey(entityType, bundle)]
	if !ok {
		return nil, false, nil
	}
	return src, true, nil
}

// IndexNames returns the FT index of every configured source, sorted.
func (r *Repo) IndexNames() []string {
	names := make([]string, 0, len(r.sources))
	for _, src := range r.sources {
		names = append(names, src.def.IndexName())
	}
	slices.Sort(names)
	return names
}

// EnsureIndexes creates the FT index of every source that does not have one yet.
func (r *Repo) EnsureIndexes(ctx context.Context) error {
	log := logger.FromContext(ctx)
	for _, id := range slices.Sorted(maps.Keys(r.sources)) {
		def := r.sources[id].def
		exists, err := r.store.IndexExists(ctx, def.IndexName())
		if err != nil {
			return fmt.Errorf("check index of %s: %w", id, err)
		}
		if exists {
			continue
		}
		idx, err := def.index()
		if err != nil {
			return fmt.Errorf("build index of %s: %w", id, err)
		}
		if err := r.store.CreateIndex(ctx, idx); err != nil && !errors.Is(err, db.ErrIndexExists) {
			return fmt.Errorf("create index of %s: %w", id, err)
		}
		log.Info("Created search index", zap.String("search_id", id), zap.String("index", idx.Name))
	}
	return nil
}

// RebuildIndexes drops the FT index of every source and creates it again from
// the current definitions. The indexed hashes are kept.
func (r *Repo) RebuildIndexes(ctx context.Context) error {
	log := logger.FromContext(ctx)
	for _, id := range slices.Sorted(maps.Keys(r.sources)) {
		name := r.sources[id].def.IndexName()
		err := r.store.DropIndex(ctx, name)
		switch {
		case errors.Is(err, db.ErrIndexNotFound):
		case err != nil:
			return fmt.Errorf("drop index of %s: %w", id, err)
		default:
			log.Info("Dropped search index", zap.String("search_id", id), zap.String("index", name))
		}
	}
	return r.EnsureIndexes(ctx)
}

// ExecuteQuery runs q against the index of its source.
func (r *Repo) ExecuteQuery(ctx context.Context, q *listsource.Query) (*listsource.ResultSet, error) {
	src, lq, err := r.listQuery(ctx, q)
	if err != nil {
		return nil, err
	}

	sr, err := r.store.SearchList(ctx, lq)
	if err != nil {
		return nil, fmt.Errorf("search list %s: %w", src.def.SearchID, err)
	}
	return toResultSet(sr, src.def.KeyPrefix()), nil
}

// CountQuery returns the number of rows matching q's filters without fetching any.
func (r *Repo) CountQuery(ctx context.Context, q *listsource.Query) (int, error) {
	src, lq, err := r.listQuery(ctx, q)
	if err != nil {
		return 0, err
	}
	n, err := r.store.SearchCount(ctx, lq)
	if err != nil {
		return 0, fmt.Errorf("search count %s: %w", src.def.SearchID, err)
	}
	return n, nil
}

func (r *Repo) listQuery(ctx context.Context, q *listsource.Query) (*source, *db.ListQuery, error) {
	src, ok := r.sources[q.SearchID()]
	if !ok {
		return nil, nil, fmt.Errorf("%w: source %s", domain.ErrNotFound, q.SearchID())
	}

	expr, err := src.filters(ctx, q.Filters())
	if err != nil {
		return nil, nil, err
	}

	lq := &db.ListQuery{
		IndexName:    src.def.IndexName(),
		Filters:      expr,
		Offset:       q.Offset(),
		Limit:        max(q.Limit(), 0),
		ReturnFields: src.def.fieldNames(),
	}
	if sort := q.Sort(); len(sort) > 0 {
		field := slices.Sorted(maps.Keys(sort))[0]
		lq.SortBy = field
		lq.SortDesc = sort[field] == listsource.Desc
	}
	return src, lq, nil
}

// source implements listsource.Source for one definition.
type source struct {
	def  SourceDefinition
	exec listsource.Executor
}

func (s *source) SearchID() string   { return s.def.SearchID }
func (s *source) EntityType() string { return s.def.EntityType }
func (s *source) Bundle() string     { return s.def.Bundle }

func (s *source) Query(limit, page int, sort listsource.Sort) *listsource.Query {
	return listsource.NewQuery(s.def.SearchID, s.exec, limit, page, sort)
}

// filters translates facet-keyed values into backend conditions. Keys that no
// facet of the source maps to a field are ignored.
func (s *source) filters(ctx context.Context, set preset.Set) (filter.Expression, error) {
	conds := make([]filter.Condition, 0, len(set))
	for _, key := range set.Keys() {
		value := set[key]
		if value.IsEmpty() {
			continue
		}
		ff, ok := s.def.Facets[key]
		if !ok {
			logger.FromContext(ctx).Debug("filter without facet field ignored",
				zap.String("search_id", s.def.SearchID),
				zap.String("key", key),
			)
			continue
		}

		var (
			cond filter.Condition
			err  error
		)
		if ff.Range {
			var skip bool
			cond, skip, err = dateRange(ff.Field, value)
			if skip {
				continue
			}
		} else {
			cond, err = filter.AnyOf(ff.Field, value...)
		}
		if err != nil {
			return filter.Expression{}, fmt.Errorf("%w: filter %s: %w", domain.ErrInvalidInput, key, err)
		}
		conds = append(conds, cond)
	}

	expr, err := filter.New(conds...)
	if err != nil {
		return filter.Expression{}, fmt.Errorf("%w: %w", domain.ErrInvalidInput, err)
	}
	return expr, nil
}

// dateRange maps a [min, max] date value onto a unix-seconds field, max inclusive.
func dateRange(field string, v preset.Value) (filter.Condition, bool, error) {
	lo, hi, err := widget.ParseBounds(v)
	if err != nil {
		return filter.Condition{}, false, err
	}
	if lo.IsZero() && hi.IsZero() {
		return filter.Condition{}, true, nil
	}

	var gte, lte *float64
	if !lo.IsZero() {
		f := float64(lo.Unix())
		gte = &f
	}
	if !hi.IsZero() {
		f := float64(hi.Add(24*time.Hour - time.Second).Unix())
		lte = &f
	}
	rng, err := filter.NewRange(gte, lte)
	if err != nil {
		return filter.Condition{}, false, err
	}
	cond, err := filter.Between(field, rng)
	return cond, false, err
}

func toResultSet(sr *db.SearchResult, prefix string) *listsource.ResultSet {
	if sr == nil {
		return &listsource.ResultSet{}
	}
	rows := make([]listsource.Row, 0, len(sr.Entries))
	for _, entry := range sr.Entries {
		rows = append(rows, listsource.Row{
			ID:     strings.TrimPrefix(entry.Key, prefix),
			Fields: entry.Fields,
		})
	}
	return &listsource.ResultSet{Total: sr.Total, Rows: rows}
}

func bundleKey(entityType, bundle string) string {
	return entityType + "/" + bundle
}
