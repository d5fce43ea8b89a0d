// Package listsource describes a searchable collection bound to an
// (entity type, bundle) pair and the queries built against it.
package listsource

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"strings"

	"github.com/kailas-cloud/facetlist/internal/domain/preset"
)

// Direction is a sort direction.
type Direction string

const (
	// Asc sorts ascending.
	Asc Direction = "ASC"
	// Desc sorts descending.
	Desc Direction = "DESC"
)

// ParseDirection normalizes asc/desc in any case.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "ASC":
		return Asc, nil
	case "DESC":
		return Desc, nil
	default:
		return "", fmt.Errorf("invalid sort direction %q", s)
	}
}

// Sort maps a field name to its direction. The query builder expects at most one entry.
type Sort map[string]Direction

// Row is a single hit of an executed query.
type Row struct {
	ID     string
	Fields map[string]string
}

// ResultSet is the raw output of an executed query.
type ResultSet struct {
	Total int
	Rows  []Row
}

// Clone returns a deep copy. A nil set clones to nil.
func (rs *ResultSet) Clone() *ResultSet {
	if rs == nil {
		return nil
	}
	out := &ResultSet{Total: rs.Total, Rows: make([]Row, len(rs.Rows))}
	for i, r := range rs.Rows {
		out.Rows[i] = Row{ID: r.ID, Fields: maps.Clone(r.Fields)}
	}
	return out
}

// Executor runs a query against the search backend.
type Executor interface {
	ExecuteQuery(ctx context.Context, q *Query) (*ResultSet, error)
}

// Counter is implemented by executors that can count matches without
// fetching rows.
type Counter interface {
	CountQuery(ctx context.Context, q *Query) (int, error)
}

// Source is a searchable collection exposed to lists and facets.
type Source interface {
	// SearchID identifies the source to the facets engine.
	SearchID() string
	EntityType() string
	Bundle() string
	// Query builds an unexecuted query. limit <= 0 means the backend default.
	Query(limit, page int, sort Sort) *Query
}

// Query is a paginated, sorted and filtered query bound to its executor.
type Query struct {
	searchID string
	limit    int
	page     int
	sort     Sort
	filters  preset.Set
	exec     Executor
}

// NewQuery creates a query. Negative pages are clamped to 0.
func NewQuery(searchID string, exec Executor, limit, page int, sort Sort) *Query {
	if page < 0 {
		page = 0
	}
	s := make(Sort, len(sort))
	maps.Copy(s, sort)
	return &Query{
		searchID: searchID,
		limit:    limit,
		page:     page,
		sort:     s,
		filters:  preset.Set{},
		exec:     exec,
	}
}

// SearchID returns the id of the source the query was built for.
func (q *Query) SearchID() string { return q.searchID }

// Limit returns the page size.
func (q *Query) Limit() int { return q.limit }

// Page returns the zero-based page number.
func (q *Query) Page() int { return q.page }

// Offset returns the index of the first row of the page.
func (q *Query) Offset() int {
	if q.limit <= 0 {
		return 0
	}
	return q.page * q.limit
}

// Sort returns the sort mapping.
func (q *Query) Sort() Sort { return q.sort }

// Filters returns the filter values applied to the query.
func (q *Query) Filters() preset.Set { return q.filters }

// AddFilters merges filters into the query, overwriting keys already set.
func (q *Query) AddFilters(filters preset.Set) *Query {
	q.filters.Merge(filters)
	return q
}

// Count returns the number of rows matching the query filters. Executors
// without Counter fall back to a full execution.
func (q *Query) Count(ctx context.Context) (int, error) {
	c, ok := q.exec.(Counter)
	if !ok {
		rs, err := q.Execute(ctx)
		if err != nil {
			return 0, err
		}
		return rs.Total, nil
	}
	n, err := c.CountQuery(ctx, q)
	if err != nil {
		return 0, fmt.Errorf("count query on %s: %w", q.searchID, err)
	}
	return n, nil
}

// Clone returns an independent copy bound to the same executor.
func (q *Query) Clone() *Query {
	if q == nil {
		return nil
	}
	c := *q
	c.sort = maps.Clone(q.sort)
	c.filters = q.filters.Clone()
	return &c
}

// Execute runs the query.
func (q *Query) Execute(ctx context.Context) (*ResultSet, error) {
	if q.exec == nil {
		return nil, errors.New("query has no executor")
	}
	rs, err := q.exec.ExecuteQuery(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("execute query on %s: %w", q.searchID, err)
	}
	return rs, nil
}
