package execution

import (
	"context"

	"github.com/kailas-cloud/facetlist/internal/domain/preset"
)

type memoKey struct{}

type requestKey struct{}

// Memo remembers executed lists for the lifetime of one request, keyed by item id.
// The request middleware puts a fresh Memo into the context; the list manager
// reads and fills it. Not safe for concurrent use, a request runs its lists
// sequentially.
type Memo struct {
	results map[string]*Result
}

// NewContextWithMemo returns a context carrying an empty memo.
func NewContextWithMemo(ctx context.Context) (context.Context, *Memo) {
	m := &Memo{results: make(map[string]*Result)}
	return context.WithValue(ctx, memoKey{}, m), m
}

// MemoFromContext extracts the memo. Returns nil if not set.
func MemoFromContext(ctx context.Context) *Memo {
	m, _ := ctx.Value(memoKey{}).(*Memo)
	return m
}

// Get returns the result remembered for itemID.
func (m *Memo) Get(itemID string) (*Result, bool) {
	if m == nil {
		return nil, false
	}
	r, ok := m.results[itemID]
	return r, ok
}

// Put remembers r for itemID. A nil memo ignores the call.
func (m *Memo) Put(itemID string, r *Result) {
	if m != nil {
		m.results[itemID] = r
	}
}

// Len returns the number of remembered results.
func (m *Memo) Len() int {
	if m == nil {
		return 0
	}
	return len(m.results)
}

// Request holds the live request parameters a list reads.
type Request struct {
	Page    int
	Filters preset.Set // end-user facet selections
}

// NewContextWithRequest returns a context carrying the live request parameters.
func NewContextWithRequest(ctx context.Context, r Request) context.Context {
	if r.Page < 0 {
		r.Page = 0
	}
	return context.WithValue(ctx, requestKey{}, r)
}

// RequestFromContext extracts the live request parameters, zero value when unset.
func RequestFromContext(ctx context.Context) Request {
	r, _ := ctx.Value(requestKey{}).(Request)
	return r
}
