package client

import (
	"context"

	"github.com/dwellhq/homecat/internal/http"
	"github.com/dwellhq/homecat/pkg/catalog"
)

// RoomsClient implements catalog.RoomsClient.
type RoomsClient struct {
	resourceClient[catalog.Room, catalog.RoomCreateRequest, catalog.RoomUpdateRequest]
}

// NewRoomsClient creates a new rooms client.
func NewRoomsClient(httpClient *http.Client) *RoomsClient {
	return &RoomsClient{
		resourceClient: resourceClient[catalog.Room, catalog.RoomCreateRequest, catalog.RoomUpdateRequest]{
			httpClient: httpClient,
			path:       catalog.KindRooms.Path(),
			kind:       "room",
		},
	}
}

// ListByHome lists the rooms of one home.
func (c *RoomsClient) ListByHome(ctx context.Context, homeID string, params *catalog.Query) (*catalog.ListResponse[catalog.Room], error) {
	query := params.Clone()
	query.Filters["homeId"] = []string{homeID}

	return c.List(ctx, query)
}
