package client

import (
	"github.com/dwellhq/homecat/internal/http"
	"github.com/dwellhq/homecat/pkg/catalog"
)

// BrandsClient implements catalog.BrandsClient.
type BrandsClient struct {
	resourceClient[catalog.Brand, catalog.BrandCreateRequest, catalog.BrandUpdateRequest]
}

// NewBrandsClient creates a new brands client.
func NewBrandsClient(httpClient *http.Client) *BrandsClient {
	return &BrandsClient{
		resourceClient: resourceClient[catalog.Brand, catalog.BrandCreateRequest, catalog.BrandUpdateRequest]{
			httpClient: httpClient,
			path:       catalog.KindBrands.Path(),
			kind:       "brand",
		},
	}
}
