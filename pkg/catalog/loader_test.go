package catalog_test

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dwellhq/homecat/pkg/catalog"
)

func staticFetch(data []string) catalog.ListFunc[string] {
	return func(ctx context.Context, params *catalog.Query) (*catalog.ListResponse[string], error) {
		return &catalog.ListResponse[string]{
			Data: data,
			Meta: catalog.Meta{
				Page:       params.Page,
				PageSize:   params.PageSize,
				Total:      len(data),
				TotalPages: catalog.TotalPages(len(data), params.PageSize),
			},
		}, nil
	}
}

func TestLoader_Reload(t *testing.T) {
	t.Parallel()
	t.Run("initial state", func(t *testing.T) {
		t.Parallel()

		loader := catalog.NewLoader(staticFetch([]string{"a"}))

		state := loader.Snapshot()
		assert.Empty(t, state.Data)
		assert.False(t, state.Loading)
		assert.Empty(t, state.Err)

		query := loader.Query()
		assert.Equal(t, catalog.DefaultPage, query.Page)
		assert.Equal(t, catalog.DefaultPageSize, query.PageSize)
	})

	t.Run("successful fetch commits data and meta", func(t *testing.T) {
		t.Parallel()

		loader := catalog.NewLoader(staticFetch([]string{"a", "b"}))
		loader.Reload(context.Background())

		state := loader.Snapshot()
		assert.Equal(t, []string{"a", "b"}, state.Data)
		assert.Equal(t, 2, state.Meta.Total)
		assert.False(t, state.Loading)
		assert.Empty(t, state.Err)
	})

	t.Run("nil data commits as empty slice", func(t *testing.T) {
		t.Parallel()

		loader := catalog.NewLoader(staticFetch(nil))
		loader.Reload(context.Background())

		state := loader.Snapshot()
		require.NotNil(t, state.Data)
		assert.Empty(t, state.Data)
	})

	t.Run("failed fetch keeps previous data", func(t *testing.T) {
		t.Parallel()

		fail := false
		fetch := func(ctx context.Context, params *catalog.Query) (*catalog.ListResponse[string], error) {
			if fail {
				return nil, errors.New("connection refused")
			}

			return staticFetch([]string{"a", "b"})(ctx, params)
		}

		loader := catalog.NewLoader(fetch)
		loader.Reload(context.Background())

		fail = true

		loader.Reload(context.Background())

		state := loader.Snapshot()
		assert.Equal(t, "connection refused", state.Err)
		assert.Equal(t, []string{"a", "b"}, state.Data)
		assert.Equal(t, 2, state.Meta.Total)
		assert.False(t, state.Loading)
	})

	t.Run("success after failure clears the error", func(t *testing.T) {
		t.Parallel()

		fail := true
		fetch := func(ctx context.Context, params *catalog.Query) (*catalog.ListResponse[string], error) {
			if fail {
				return nil, errors.New("boom")
			}

			return staticFetch([]string{"a"})(ctx, params)
		}

		loader := catalog.NewLoader(fetch)
		loader.Reload(context.Background())
		require.Equal(t, "boom", loader.Snapshot().Err)

		fail = false

		loader.Reload(context.Background())
		assert.Empty(t, loader.Snapshot().Err)
	})
}

func TestLoader_QueryChanges(t *testing.T) {
	t.Parallel()
	t.Run("page size change resets the page", func(t *testing.T) {
		t.Parallel()

		loader := catalog.NewLoader(staticFetch(nil))
		loader.SetPage(4)
		require.Equal(t, 4, loader.Query().Page)

		loader.SetPageSize(50)

		query := loader.Query()
		assert.Equal(t, 1, query.Page)
		assert.Equal(t, 50, query.PageSize)
	})

	t.Run("filter change reaches the fetch", func(t *testing.T) {
		t.Parallel()

		var gotFilter string

		fetch := func(ctx context.Context, params *catalog.Query) (*catalog.ListResponse[string], error) {
			if vals := params.Filters["homeId"]; len(vals) > 0 {
				gotFilter = vals[0]
			}

			return &catalog.ListResponse[string]{}, nil
		}

		loader := catalog.NewLoader(fetch)
		loader.SetFilter("homeId", "h-1")
		loader.Reload(context.Background())

		assert.Equal(t, "h-1", gotFilter)
	})
}

func TestLoader_StaleResults(t *testing.T) {
	t.Parallel()
	t.Run("slow stale fetch does not overwrite a newer result", func(t *testing.T) {
		t.Parallel()

		release := make(chan struct{})

		fetch := func(ctx context.Context, params *catalog.Query) (*catalog.ListResponse[string], error) {
			if params.Page == 1 {
				<-release
			}

			return &catalog.ListResponse[string]{
				Data: []string{fmt.Sprintf("page-%d", params.Page)},
				Meta: catalog.Meta{Page: params.Page, PageSize: params.PageSize, Total: 2, TotalPages: 2},
			}, nil
		}

		loader := catalog.NewLoader(fetch)

		var wg sync.WaitGroup

		wg.Add(1)

		go func() {
			defer wg.Done()
			loader.Reload(context.Background())
		}()

		// Change the page while the first fetch is stuck, then complete the
		// newer fetch.
		loader.SetPage(2)
		loader.Reload(context.Background())
		require.Equal(t, []string{"page-2"}, loader.Snapshot().Data)

		close(release)
		wg.Wait()

		state := loader.Snapshot()
		assert.Equal(t, []string{"page-2"}, state.Data)
		assert.Equal(t, 2, state.Meta.Page)
	})

	t.Run("reload after close is a no-op", func(t *testing.T) {
		t.Parallel()

		calls := 0
		fetch := func(ctx context.Context, params *catalog.Query) (*catalog.ListResponse[string], error) {
			calls++

			return &catalog.ListResponse[string]{Data: []string{"a"}}, nil
		}

		loader := catalog.NewLoader(fetch)
		loader.Close()
		loader.Reload(context.Background())

		assert.Zero(t, calls)
		assert.Empty(t, loader.Snapshot().Data)
	})

	t.Run("close while a fetch is in flight discards its result", func(t *testing.T) {
		t.Parallel()

		release := make(chan struct{})

		fetch := func(ctx context.Context, params *catalog.Query) (*catalog.ListResponse[string], error) {
			<-release

			return &catalog.ListResponse[string]{Data: []string{"late"}}, nil
		}

		loader := catalog.NewLoader(fetch)

		var wg sync.WaitGroup

		wg.Add(1)

		go func() {
			defer wg.Done()
			loader.Reload(context.Background())
		}()

		loader.Close()
		close(release)
		wg.Wait()

		state := loader.Snapshot()
		assert.Empty(t, state.Data)
		assert.False(t, state.Loading)
	})
}
