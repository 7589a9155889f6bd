package client

import (
	"context"

	"github.com/dwellhq/homecat/internal/http"
	"github.com/dwellhq/homecat/pkg/catalog"
)

// InventoryClient implements catalog.InventoryClient.
type InventoryClient struct {
	resourceClient[catalog.HomeInventory, catalog.HomeInventoryCreateRequest, catalog.HomeInventoryUpdateRequest]
}

// NewInventoryClient creates a new home inventory client.
func NewInventoryClient(httpClient *http.Client) *InventoryClient {
	return &InventoryClient{
		resourceClient: resourceClient[catalog.HomeInventory, catalog.HomeInventoryCreateRequest, catalog.HomeInventoryUpdateRequest]{
			httpClient: httpClient,
			path:       catalog.KindInventory.Path(),
			kind:       "inventory row",
		},
	}
}

// ListByHome lists the inventory rows of one home.
func (c *InventoryClient) ListByHome(ctx context.Context, homeID string, params *catalog.Query) (*catalog.ListResponse[catalog.HomeInventory], error) {
	query := params.Clone()
	query.Filters["homeId"] = []string{homeID}

	return c.List(ctx, query)
}

// ListBySupplier lists the inventory rows restocked by one supplier.
func (c *InventoryClient) ListBySupplier(ctx context.Context, supplierID string, params *catalog.Query) (*catalog.ListResponse[catalog.HomeInventory], error) {
	query := params.Clone()
	query.Filters["supplierId"] = []string{supplierID}

	return c.List(ctx, query)
}
