package db

import "github.com/kailas-cloud/facetlist/internal/domain/listsource/filter"

// ListQuery is the input of a paginated, sorted, filtered FT.SEARCH.
type ListQuery struct {
	IndexName    string
	Filters      filter.Expression
	Offset       int
	Limit        int // 0 means the backend default (10)
	SortBy       string
	SortDesc     bool
	ReturnFields []string
}

// SearchResult is the output of a search operation.
type SearchResult struct {
	Total   int
	Entries []SearchEntry
}

// SearchEntry is a single document hit from a search.
type SearchEntry struct {
	Key    string
	Fields map[string]string
}
