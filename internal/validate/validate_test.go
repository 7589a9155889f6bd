package validate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dwellhq/homecat/internal/validate"
	"github.com/dwellhq/homecat/pkg/catalog"
)

func TestStruct(t *testing.T) {
	t.Parallel()
	t.Run("valid request", func(t *testing.T) {
		t.Parallel()

		err := validate.Struct(&catalog.CategoryCreateRequest{Name: "Linens"})
		assert.NoError(t, err)
	})

	t.Run("missing required field", func(t *testing.T) {
		t.Parallel()

		err := validate.Struct(&catalog.CategoryCreateRequest{})
		require.Error(t, err)
		assert.True(t, catalog.IsValidation(err))

		var apiErr *catalog.APIError

		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, 422, apiErr.Status)
		assert.Equal(t, "validation failed", apiErr.Message)
		assert.Equal(t, "is required", apiErr.Details["name"])
	})

	t.Run("details keys are camel cased", func(t *testing.T) {
		t.Parallel()

		err := validate.Struct(&catalog.RoomCreateRequest{Name: "Master Bedroom"})

		var apiErr *catalog.APIError

		require.ErrorAs(t, err, &apiErr)
		assert.Contains(t, apiErr.Details, "homeId")
		assert.Contains(t, apiErr.Details, "roomTypeId")
		// Keys come from the json tag, not the Go field name.
		assert.NotContains(t, apiErr.Details, "homeID")
		assert.NotContains(t, apiErr.Details, "HomeID")
	})

	t.Run("length bounds", func(t *testing.T) {
		t.Parallel()

		err := validate.Struct(&catalog.CategoryCreateRequest{Name: "x"})

		var apiErr *catalog.APIError

		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, "must be at least 2 characters", apiErr.Details["name"])
	})

	t.Run("numeric bounds", func(t *testing.T) {
		t.Parallel()

		err := validate.Struct(&catalog.HomeInventoryCreateRequest{
			HomeID:    "home-1",
			AmenityID: "am-1",
			Quantity:  -1,
		})

		var apiErr *catalog.APIError

		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, "must be at least 0", apiErr.Details["quantity"])
	})

	t.Run("format rules", func(t *testing.T) {
		t.Parallel()

		err := validate.Struct(&catalog.SupplierCreateRequest{
			Name:    "Nordic Linen Co",
			Email:   "not-an-email",
			Website: "not-a-url",
		})

		var apiErr *catalog.APIError

		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, "must be a valid email address", apiErr.Details["email"])
		assert.Equal(t, "must be a valid URL", apiErr.Details["website"])
	})

	t.Run("several failures are collected", func(t *testing.T) {
		t.Parallel()

		err := validate.Struct(&catalog.SupplierCreateRequest{Email: "nope"})

		var apiErr *catalog.APIError

		require.ErrorAs(t, err, &apiErr)
		assert.Len(t, apiErr.Details, 2)
	})

	t.Run("non-struct input is a programmer error", func(t *testing.T) {
		t.Parallel()

		err := validate.Struct("not a struct")
		require.Error(t, err)

		var apiErr *catalog.APIError

		assert.False(t, catalog.IsValidation(err))
		assert.NotErrorAs(t, err, &apiErr)
	})
}
