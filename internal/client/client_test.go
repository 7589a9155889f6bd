package client_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dwellhq/homecat/internal/client"
	"github.com/dwellhq/homecat/pkg/catalog"
)

func TestNew(t *testing.T) {
	t.Parallel()
	t.Run("nil config", func(t *testing.T) {
		t.Parallel()

		_, err := client.New(nil)
		require.ErrorIs(t, err, catalog.ErrConfigRequired)
	})

	t.Run("missing endpoint", func(t *testing.T) {
		t.Parallel()

		_, err := client.New(&catalog.Config{})
		require.ErrorIs(t, err, catalog.ErrEndpointRequired)
	})

	t.Run("all resource clients are wired", func(t *testing.T) {
		t.Parallel()

		apiClient, err := client.New(&catalog.Config{Endpoint: "http://localhost:8700"})
		require.NoError(t, err)

		assert.NotNil(t, apiClient.Categories())
		assert.NotNil(t, apiClient.Brands())
		assert.NotNil(t, apiClient.Homes())
		assert.NotNil(t, apiClient.RoomTypes())
		assert.NotNil(t, apiClient.Suppliers())
		assert.NotNil(t, apiClient.Amenities())
		assert.NotNil(t, apiClient.Rooms())
		assert.NotNil(t, apiClient.Inventory())
		assert.NotNil(t, apiClient.StylingGuides())
		assert.NotNil(t, apiClient.Playbooks())
		assert.NotNil(t, apiClient.ApplianceGuides())
		assert.NotNil(t, apiClient.TechnicalPlans())
	})
}

func TestGuideClients_EndpointPerKind(t *testing.T) {
	t.Parallel()

	var paths []string

	apiClient := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		paths = append(paths, r.URL.Path)
		respondList(t, w, []catalog.Guide{}, catalog.Meta{Page: 1, PageSize: 25})
	}))

	ctx := context.Background()

	for _, guides := range []catalog.GuidesClient{
		apiClient.StylingGuides(),
		apiClient.Playbooks(),
		apiClient.ApplianceGuides(),
		apiClient.TechnicalPlans(),
	} {
		_, err := guides.List(ctx, nil)
		require.NoError(t, err)
	}

	assert.Equal(t, []string{
		"/v1/styling-guides",
		"/v1/playbooks",
		"/v1/appliance-guides",
		"/v1/technical-plans",
	}, paths)
}
