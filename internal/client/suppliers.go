package client

import (
	"github.com/dwellhq/homecat/internal/http"
	"github.com/dwellhq/homecat/pkg/catalog"
)

// SuppliersClient implements catalog.SuppliersClient.
type SuppliersClient struct {
	resourceClient[catalog.Supplier, catalog.SupplierCreateRequest, catalog.SupplierUpdateRequest]
}

// NewSuppliersClient creates a new suppliers client.
func NewSuppliersClient(httpClient *http.Client) *SuppliersClient {
	return &SuppliersClient{
		resourceClient: resourceClient[catalog.Supplier, catalog.SupplierCreateRequest, catalog.SupplierUpdateRequest]{
			httpClient: httpClient,
			path:       catalog.KindSuppliers.Path(),
			kind:       "supplier",
		},
	}
}
