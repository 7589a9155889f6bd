package client

import (
	"github.com/dwellhq/homecat/internal/http"
	"github.com/dwellhq/homecat/pkg/catalog"
)

// RoomTypesClient implements catalog.RoomTypesClient.
type RoomTypesClient struct {
	resourceClient[catalog.RoomType, catalog.RoomTypeCreateRequest, catalog.RoomTypeUpdateRequest]
}

// NewRoomTypesClient creates a new room types client.
func NewRoomTypesClient(httpClient *http.Client) *RoomTypesClient {
	return &RoomTypesClient{
		resourceClient: resourceClient[catalog.RoomType, catalog.RoomTypeCreateRequest, catalog.RoomTypeUpdateRequest]{
			httpClient: httpClient,
			path:       catalog.KindRoomTypes.Path(),
			kind:       "room type",
		},
	}
}
