package catalog

import (
	"context"
	"errors"
)

// TotalPages returns the number of pages needed for total records at the
// given page size. Zero records means zero pages.
func TotalPages(total, pageSize int) int {
	if total <= 0 || pageSize <= 0 {
		return 0
	}

	return (total + pageSize - 1) / pageSize
}

// ClampPage clamps a requested page to [1, max(1, TotalPages(total, pageSize))].
func ClampPage(page, total, pageSize int) int {
	if page < 1 {
		return 1
	}

	maxPage := TotalPages(total, pageSize)
	if maxPage < 1 {
		maxPage = 1
	}

	if page > maxPage {
		return maxPage
	}

	return page
}

// SlicePage returns the records for one page of an already-complete
// sequence: min(pageSize, total-(page-1)*pageSize) records, none beyond the
// last page.
func SlicePage[T any](items []T, page, pageSize int) []T {
	if pageSize <= 0 || page < 1 {
		return nil
	}

	start := (page - 1) * pageSize
	if start >= len(items) {
		return nil
	}

	end := start + pageSize
	if end > len(items) {
		end = len(items)
	}

	return items[start:end]
}

// ListFunc fetches one page of records for the given query.
type ListFunc[T any] func(ctx context.Context, params *Query) (*ListResponse[T], error)

// PageIterator iterates over all records of a paginated list endpoint,
// fetching pages lazily.
type PageIterator[T any] struct {
	ctx        context.Context
	fetch      ListFunc[T]
	query      *Query
	buffer     []T
	index      int
	page       int
	totalPages int
	fetched    bool
	err        error
}

// NewPageIterator creates an iterator over fetch starting from params (or
// page 1 when params is nil).
func NewPageIterator[T any](ctx context.Context, fetch ListFunc[T], params *Query) *PageIterator[T] {
	query := params.Clone()
	if query.Page < 1 {
		query.Page = DefaultPage
	}

	return &PageIterator[T]{
		ctx:   ctx,
		fetch: fetch,
		query: query,
		page:  query.Page,
	}
}

// HasNext returns true if there are more items to iterate.
func (it *PageIterator[T]) HasNext() bool {
	if it.err != nil {
		return false
	}

	if it.index < len(it.buffer) {
		return true
	}

	if !it.fetched {
		return true
	}

	return it.page < it.totalPages
}

// Next returns the next item, fetching the next page when the buffered one
// is exhausted.
func (it *PageIterator[T]) Next() (T, error) {
	var zero T

	if it.err != nil {
		return zero, it.err
	}

	if it.index >= len(it.buffer) {
		err := it.fetchPage()
		if err != nil {
			it.err = err

			return zero, err
		}
	}

	if it.index >= len(it.buffer) {
		return zero, ErrNoMoreItems
	}

	item := it.buffer[it.index]
	it.index++

	return item, nil
}

// All collects every remaining item.
func (it *PageIterator[T]) All() ([]T, error) {
	var items []T

	for it.HasNext() {
		item, err := it.Next()
		if errors.Is(err, ErrNoMoreItems) {
			break
		}

		if err != nil {
			return items, err
		}

		items = append(items, item)
	}

	return items, nil
}

func (it *PageIterator[T]) fetchPage() error {
	if it.fetched {
		if it.page >= it.totalPages {
			return ErrNoMoreItems
		}

		it.page++
	}

	it.query.Page = it.page

	resp, err := it.fetch(it.ctx, it.query)
	if err != nil {
		return err
	}

	it.fetched = true
	it.totalPages = resp.Meta.TotalPages
	it.buffer = resp.Data
	it.index = 0

	return nil
}
