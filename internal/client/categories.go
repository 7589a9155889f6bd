package client

import (
	"github.com/dwellhq/homecat/internal/http"
	"github.com/dwellhq/homecat/pkg/catalog"
)

// CategoriesClient implements catalog.CategoriesClient.
type CategoriesClient struct {
	resourceClient[catalog.Category, catalog.CategoryCreateRequest, catalog.CategoryUpdateRequest]
}

// NewCategoriesClient creates a new categories client.
func NewCategoriesClient(httpClient *http.Client) *CategoriesClient {
	return &CategoriesClient{
		resourceClient: resourceClient[catalog.Category, catalog.CategoryCreateRequest, catalog.CategoryUpdateRequest]{
			httpClient: httpClient,
			path:       catalog.KindCategories.Path(),
			kind:       "category",
		},
	}
}
