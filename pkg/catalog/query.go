package catalog

import (
	"net/url"
	"strconv"
	"strings"
)

// Pagination defaults. List endpoints accept page sizes between 1 and
// MaxPageSize; anything else falls back to DefaultPageSize server-side.
const (
	DefaultPage     = 1
	DefaultPageSize = 25
	MaxPageSize     = 100
)

// Query represents query parameters for list requests.
type Query struct {
	// Page is the 1-based page number. Zero means "server default".
	Page int
	// PageSize is the number of records per page. Zero means "server default".
	PageSize int
	// Search is a free-text filter applied server-side.
	Search string
	// Sort names the sort field, with a leading "-" for descending order.
	Sort string
	// Filters holds entity-specific equality filters keyed by query
	// parameter name (e.g. "homeId", "supplierId"). Multiple values for one
	// key are joined with commas.
	Filters map[string][]string
}

// NewQuery creates an empty query.
func NewQuery() *Query {
	return &Query{
		Filters: make(map[string][]string),
	}
}

// WithPage sets the page number.
func (q *Query) WithPage(page int) *Query {
	q.Page = page

	return q
}

// WithPageSize sets the page size.
func (q *Query) WithPageSize(size int) *Query {
	q.PageSize = size

	return q
}

// WithSearch sets the free-text search filter.
func (q *Query) WithSearch(search string) *Query {
	q.Search = search

	return q
}

// WithSort sets the sort field.
func (q *Query) WithSort(sort string) *Query {
	q.Sort = sort

	return q
}

// WithFilter adds a filter value for the given key.
func (q *Query) WithFilter(key, value string) *Query {
	if q.Filters == nil {
		q.Filters = make(map[string][]string)
	}

	q.Filters[key] = append(q.Filters[key], value)

	return q
}

// Values converts the query to URL values.
func (q *Query) Values() url.Values {
	values := url.Values{}

	if q.Page > 0 {
		values.Set("page", strconv.Itoa(q.Page))
	}

	if q.PageSize > 0 {
		values.Set("pageSize", strconv.Itoa(q.PageSize))
	}

	if q.Search != "" {
		values.Set("search", q.Search)
	}

	if q.Sort != "" {
		values.Set("sort", q.Sort)
	}

	for key, vals := range q.Filters {
		if len(vals) > 0 {
			values.Set(key, strings.Join(vals, ","))
		}
	}

	return values
}

// Clone returns a deep copy. Loaders snapshot their query per fetch so a
// later parameter change cannot mutate an in-flight request's parameters.
func (q *Query) Clone() *Query {
	if q == nil {
		return NewQuery()
	}

	clone := &Query{
		Page:     q.Page,
		PageSize: q.PageSize,
		Search:   q.Search,
		Sort:     q.Sort,
		Filters:  make(map[string][]string, len(q.Filters)),
	}

	for key, vals := range q.Filters {
		clone.Filters[key] = append([]string(nil), vals...)
	}

	return clone
}
