package client

import (
	"github.com/dwellhq/homecat/internal/http"
	"github.com/dwellhq/homecat/pkg/catalog"
)

// AmenitiesClient implements catalog.AmenitiesClient.
type AmenitiesClient struct {
	resourceClient[catalog.Amenity, catalog.AmenityCreateRequest, catalog.AmenityUpdateRequest]
}

// NewAmenitiesClient creates a new amenities client.
func NewAmenitiesClient(httpClient *http.Client) *AmenitiesClient {
	return &AmenitiesClient{
		resourceClient: resourceClient[catalog.Amenity, catalog.AmenityCreateRequest, catalog.AmenityUpdateRequest]{
			httpClient: httpClient,
			path:       catalog.KindAmenities.Path(),
			kind:       "amenity",
		},
	}
}
