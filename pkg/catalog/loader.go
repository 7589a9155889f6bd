package catalog

import (
	"context"
	"sync"
)

// State is an observable snapshot of a Loader: the last successfully
// fetched page, its pagination metadata, whether a fetch is in flight, and
// the message of the last failure (empty when the last fetch succeeded).
type State[T any] struct {
	Data    []T
	Meta    Meta
	Loading bool
	Err     string
}

// Loader manages the asynchronous lifecycle of one list fetch: issue a
// request for the current query, track loading/error state, and commit the
// result. If the query changed while the request was in flight, the stale
// result is discarded instead. It is the cache-invalidation
// point after mutations: callers re-fetch authoritative state through
// Reload instead of patching local copies.
//
// A Loader is safe for concurrent use. Overlapping Reload calls resolve by
// generation comparison: only the most recently issued fetch may commit.
type Loader[T any] struct {
	mu     sync.Mutex
	fetch  ListFunc[T]
	query  *Query
	gen    uint64
	closed bool
	state  State[T]
}

// NewLoader creates a loader over fetch with page 1 and the default page
// size.
func NewLoader[T any](fetch ListFunc[T]) *Loader[T] {
	return &Loader[T]{
		fetch: fetch,
		query: NewQuery().WithPage(DefaultPage).WithPageSize(DefaultPageSize),
		state: State[T]{Data: []T{}},
	}
}

// Snapshot returns the current state. The data slice is shared with the
// loader's last committed result and must be treated as read-only.
func (l *Loader[T]) Snapshot() State[T] {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.state
}

// Query returns a copy of the current query parameters.
func (l *Loader[T]) Query() Query {
	l.mu.Lock()
	defer l.mu.Unlock()

	return *l.query.Clone()
}

// SetQuery replaces the query parameters. Any in-flight fetch is logically
// cancelled: its result will be discarded.
func (l *Loader[T]) SetQuery(query *Query) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.query = query.Clone()
	l.gen++
}

// SetPage moves to the given page, invalidating in-flight fetches.
func (l *Loader[T]) SetPage(page int) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if page < 1 {
		page = 1
	}

	l.query.Page = page
	l.gen++
}

// SetPageSize changes the page size and resets the page to 1, invalidating
// in-flight fetches.
func (l *Loader[T]) SetPageSize(size int) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if size < 1 {
		size = DefaultPageSize
	}

	l.query.PageSize = size
	l.query.Page = 1
	l.gen++
}

// SetFilter sets a single-valued filter, invalidating in-flight fetches.
func (l *Loader[T]) SetFilter(key, value string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.query.Filters[key] = []string{value}
	l.gen++
}

// Close tears the loader down. After Close, no state transitions occur and
// Reload is a no-op.
func (l *Loader[T]) Close() {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.closed = true
	l.gen++
	l.state.Loading = false
}

// Reload issues one fetch for the current query and commits the result if
// it is still current when it resolves. Transport failures and API error
// envelopes both resolve to a non-empty Err message; the previous data and
// metadata are left untouched so a failed refetch never blanks the list.
// Reload never returns an error and never panics: all failure modes end up
// in the snapshot.
func (l *Loader[T]) Reload(ctx context.Context) {
	gen, query, ok := l.begin()
	if !ok {
		return
	}

	resp, err := l.fetch(ctx, query)
	l.commit(gen, resp, err)
}

// begin marks the loader loading and captures the generation and a query
// snapshot for the fetch about to be issued.
func (l *Loader[T]) begin() (uint64, *Query, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.closed {
		return 0, nil, false
	}

	l.gen++
	l.state.Loading = true

	return l.gen, l.query.Clone(), true
}

// commit applies a fetch result, discarding it when the loader was closed
// or the parameters changed after the fetch was issued.
func (l *Loader[T]) commit(gen uint64, resp *ListResponse[T], err error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.closed || gen != l.gen {
		return
	}

	l.state.Loading = false

	if err != nil {
		l.state.Err = err.Error()

		return
	}

	l.state.Err = ""
	l.state.Meta = resp.Meta

	if resp.Data == nil {
		l.state.Data = []T{}
	} else {
		l.state.Data = resp.Data
	}
}
