// Package execution holds the outcome of running an item's list and the
// request-scoped state that makes it run once per request.
package execution

import (
	"github.com/kailas-cloud/facetlist/internal/domain/item"
	"github.com/kailas-cloud/facetlist/internal/domain/listsource"
)

// Result bundles an executed list. It is never mutated after creation:
// accessors hand out copies of the query and rows.
type Result struct {
	query  *listsource.Query
	rows   *listsource.ResultSet
	source listsource.Source
	config item.ListConfig
}

// NewResult creates an execution result.
func NewResult(q *listsource.Query, rows *listsource.ResultSet, src listsource.Source, cfg item.ListConfig) *Result {
	if rows == nil {
		rows = &listsource.ResultSet{}
	}
	return &Result{query: q, rows: rows, source: src, config: cfg}
}

// Query returns a copy of the executed query.
func (r *Result) Query() *listsource.Query { return r.query.Clone() }

// Rows returns a copy of the raw result set.
func (r *Result) Rows() *listsource.ResultSet { return r.rows.Clone() }

// Source returns the list source the query ran against.
func (r *Result) Source() listsource.Source { return r.source }

// Config returns the item's list configuration.
func (r *Result) Config() item.ListConfig { return r.config }

// Pager describes pagination of an executed list.
type Pager struct {
	Page     int
	PageSize int
	Total    int
	Pages    int
	HasPrev  bool
	HasNext  bool
}

// Pager derives pagination from the executed query and its total.
func (r *Result) Pager() Pager {
	size := r.query.Limit()
	p := Pager{Page: r.query.Page(), PageSize: size, Total: r.rows.Total}
	if size > 0 {
		p.Pages = (r.rows.Total + size - 1) / size
	}
	p.HasPrev = p.Page > 0
	p.HasNext = p.Page+1 < p.Pages
	return p
}
