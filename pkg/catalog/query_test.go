package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dwellhq/homecat/pkg/catalog"
)

func TestQuery_Values(t *testing.T) {
	t.Parallel()
	t.Run("empty query produces no values", func(t *testing.T) {
		t.Parallel()

		values := catalog.NewQuery().Values()
		assert.Empty(t, values)
	})

	t.Run("pagination and search", func(t *testing.T) {
		t.Parallel()

		query := catalog.NewQuery().
			WithPage(2).
			WithPageSize(50).
			WithSearch("towel").
			WithSort("-createdAt")

		values := query.Values()
		assert.Equal(t, "2", values.Get("page"))
		assert.Equal(t, "50", values.Get("pageSize"))
		assert.Equal(t, "towel", values.Get("search"))
		assert.Equal(t, "-createdAt", values.Get("sort"))
	})

	t.Run("multi-valued filters are comma joined", func(t *testing.T) {
		t.Parallel()

		query := catalog.NewQuery().
			WithFilter("homeId", "h-1").
			WithFilter("homeId", "h-2").
			WithFilter("supplierId", "s-1")

		values := query.Values()
		assert.Equal(t, "h-1,h-2", values.Get("homeId"))
		assert.Equal(t, "s-1", values.Get("supplierId"))
	})

	t.Run("zero page and page size are omitted", func(t *testing.T) {
		t.Parallel()

		values := catalog.NewQuery().WithPage(0).WithPageSize(0).Values()
		assert.Empty(t, values.Get("page"))
		assert.Empty(t, values.Get("pageSize"))
	})
}

func TestQuery_Clone(t *testing.T) {
	t.Parallel()
	t.Run("clone is independent", func(t *testing.T) {
		t.Parallel()

		original := catalog.NewQuery().WithPage(3).WithFilter("homeId", "h-1")

		clone := original.Clone()
		clone.Page = 7
		clone.WithFilter("homeId", "h-2")

		assert.Equal(t, 3, original.Page)
		require.Len(t, original.Filters["homeId"], 1)
		assert.Equal(t, []string{"h-1", "h-2"}, clone.Filters["homeId"])
	})

	t.Run("nil clone yields empty query", func(t *testing.T) {
		t.Parallel()

		var query *catalog.Query

		clone := query.Clone()
		require.NotNil(t, clone)
		assert.NotNil(t, clone.Filters)
	})
}
