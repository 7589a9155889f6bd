package catalog_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dwellhq/homecat/pkg/catalog"
)

func TestParseErrorEnvelope(t *testing.T) {
	t.Parallel()
	t.Run("well-formed envelope", func(t *testing.T) {
		t.Parallel()

		body := []byte(`{"success":false,"error":{"message":"home not found"}}`)

		apiErr, err := catalog.ParseErrorEnvelope(body, http.StatusNotFound)
		require.NoError(t, err)
		assert.Equal(t, http.StatusNotFound, apiErr.Status)
		assert.Equal(t, "home not found", apiErr.Message)
	})

	t.Run("envelope with details", func(t *testing.T) {
		t.Parallel()

		body := []byte(`{"success":false,"error":{"message":"validation failed","details":{"name":"is required","quantity":"must be at least 0"}}}`)

		apiErr, err := catalog.ParseErrorEnvelope(body, http.StatusUnprocessableEntity)
		require.NoError(t, err)
		assert.Len(t, apiErr.Details, 2)
		assert.Equal(t, "is required", apiErr.Details["name"])
	})

	t.Run("non-JSON body", func(t *testing.T) {
		t.Parallel()

		_, err := catalog.ParseErrorEnvelope([]byte("<html>oops</html>"), http.StatusBadGateway)
		require.ErrorIs(t, err, catalog.ErrMalformedEnvelope)
	})

	t.Run("missing error object", func(t *testing.T) {
		t.Parallel()

		_, err := catalog.ParseErrorEnvelope([]byte(`{"success":false}`), http.StatusInternalServerError)
		require.ErrorIs(t, err, catalog.ErrMalformedEnvelope)
	})
}

func TestAPIError_Error(t *testing.T) {
	t.Parallel()
	t.Run("message only", func(t *testing.T) {
		t.Parallel()

		apiErr := &catalog.APIError{Status: 404, Message: "home not found"}
		assert.Equal(t, "home not found", apiErr.Error())
	})

	t.Run("message with details", func(t *testing.T) {
		t.Parallel()

		apiErr := &catalog.APIError{
			Status:  422,
			Message: "validation failed",
			Details: map[string]string{"name": "is required"},
		}
		assert.Equal(t, "validation failed (1 field error(s))", apiErr.Error())
	})
}

func TestErrorPredicates(t *testing.T) {
	t.Parallel()

	notFound := &catalog.APIError{Status: http.StatusNotFound, Message: "missing"}
	validation := &catalog.APIError{Status: http.StatusUnprocessableEntity, Message: "invalid"}
	conflict := &catalog.APIError{Status: http.StatusConflict, Message: "referenced"}

	t.Run("direct errors", func(t *testing.T) {
		t.Parallel()
		assert.True(t, catalog.IsNotFound(notFound))
		assert.True(t, catalog.IsValidation(validation))
		assert.True(t, catalog.IsConflict(conflict))
		assert.False(t, catalog.IsNotFound(validation))
		assert.False(t, catalog.IsConflict(notFound))
	})

	t.Run("wrapped errors", func(t *testing.T) {
		t.Parallel()

		wrapped := fmt.Errorf("deleting supplier: %w", conflict)
		assert.True(t, catalog.IsConflict(wrapped))
	})

	t.Run("bad request counts as validation", func(t *testing.T) {
		t.Parallel()

		badRequest := &catalog.APIError{Status: http.StatusBadRequest, Message: "bad"}
		assert.True(t, catalog.IsValidation(badRequest))
	})

	t.Run("plain errors match nothing", func(t *testing.T) {
		t.Parallel()
		assert.False(t, catalog.IsNotFound(fmt.Errorf("boom")))
		assert.False(t, catalog.IsValidation(fmt.Errorf("boom")))
	})
}

func TestParseKind(t *testing.T) {
	t.Parallel()
	t.Run("all listed kinds parse", func(t *testing.T) {
		t.Parallel()

		for _, kind := range catalog.Kinds() {
			parsed, err := catalog.ParseKind(string(kind))
			require.NoError(t, err)
			assert.Equal(t, kind, parsed)
		}
	})

	t.Run("unknown kind", func(t *testing.T) {
		t.Parallel()

		_, err := catalog.ParseKind("widgets")
		require.ErrorIs(t, err, catalog.ErrUnknownKind)
	})

	t.Run("paths carry the version prefix", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "/v1/homes", catalog.KindHomes.Path())
		assert.Equal(t, "/v1/styling-guides", catalog.KindStylingGuides.Path())
	})
}
