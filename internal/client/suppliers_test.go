package client_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dwellhq/homecat/pkg/catalog"
)

func TestSuppliersClient_DeleteConflict(t *testing.T) {
	t.Parallel()

	apiClient := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/v1/suppliers/sup-1", r.URL.Path)
		respondError(t, w, http.StatusConflict, "supplier is referenced by inventory", nil)
	}))

	err := apiClient.Suppliers().Delete(context.Background(), "sup-1")
	require.Error(t, err)
	assert.True(t, catalog.IsConflict(err))
	assert.Contains(t, err.Error(), "deleting supplier")
	assert.Contains(t, err.Error(), "supplier is referenced by inventory")
}

func TestSuppliersClient_CreateValidationDetails(t *testing.T) {
	t.Parallel()

	apiClient := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		respondError(t, w, http.StatusUnprocessableEntity, "validation failed", map[string]string{
			"email":   "must be a valid email address",
			"website": "must be a valid URL",
		})
	}))

	_, err := apiClient.Suppliers().Create(context.Background(), &catalog.SupplierCreateRequest{
		Name:    "Nordic Linen Co",
		Email:   "not-an-email",
		Website: "not-a-url",
	})
	require.Error(t, err)
	assert.True(t, catalog.IsValidation(err))

	var apiErr *catalog.APIError

	require.ErrorAs(t, err, &apiErr)
	assert.Len(t, apiErr.Details, 2)
	assert.Equal(t, "must be a valid email address", apiErr.Details["email"])
}

func TestSuppliersClient_FailureEnvelopeWithOKStatus(t *testing.T) {
	t.Parallel()

	// Some middleboxes rewrite the status but leave the body alone. The
	// envelope's own success flag still decides the outcome.
	apiClient := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, err := w.Write([]byte(`{"success":false,"error":{"message":"backing store unavailable"}}`))
		require.NoError(t, err)
	}))

	_, err := apiClient.Suppliers().Get(context.Background(), "sup-1")
	require.Error(t, err)

	var apiErr *catalog.APIError

	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "backing store unavailable", apiErr.Message)
}

func TestSuppliersClient_MalformedEnvelope(t *testing.T) {
	t.Parallel()

	apiClient := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, err := w.Write([]byte(`{"success":false}`))
		require.NoError(t, err)
	}))

	_, err := apiClient.Suppliers().Get(context.Background(), "sup-1")
	require.ErrorIs(t, err, catalog.ErrMalformedEnvelope)
}
