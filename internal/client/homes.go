package client

import (
	"github.com/dwellhq/homecat/internal/http"
	"github.com/dwellhq/homecat/pkg/catalog"
)

// HomesClient implements catalog.HomesClient.
type HomesClient struct {
	resourceClient[catalog.Home, catalog.HomeCreateRequest, catalog.HomeUpdateRequest]
}

// NewHomesClient creates a new homes client.
func NewHomesClient(httpClient *http.Client) *HomesClient {
	return &HomesClient{
		resourceClient: resourceClient[catalog.Home, catalog.HomeCreateRequest, catalog.HomeUpdateRequest]{
			httpClient: httpClient,
			path:       catalog.KindHomes.Path(),
			kind:       "home",
		},
	}
}
