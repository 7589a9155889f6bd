package client

import (
	"context"

	"github.com/dwellhq/homecat/internal/http"
	"github.com/dwellhq/homecat/pkg/catalog"
)

// GuidesClient implements catalog.GuidesClient for one of the four guide
// kinds (styling guides, playbooks, appliance guides, technical plans).
// The kinds share one document shape and differ only in endpoint.
type GuidesClient struct {
	resourceClient[catalog.Guide, catalog.GuideCreateRequest, catalog.GuideUpdateRequest]
}

// NewGuidesClient creates a guides client bound to the given guide kind.
func NewGuidesClient(httpClient *http.Client, kind catalog.Kind) *GuidesClient {
	return &GuidesClient{
		resourceClient: resourceClient[catalog.Guide, catalog.GuideCreateRequest, catalog.GuideUpdateRequest]{
			httpClient: httpClient,
			path:       kind.Path(),
			kind:       "guide",
		},
	}
}

// ListByHome lists the guides attached to one home.
func (c *GuidesClient) ListByHome(ctx context.Context, homeID string, params *catalog.Query) (*catalog.ListResponse[catalog.Guide], error) {
	query := params.Clone()
	query.Filters["homeId"] = []string{homeID}

	return c.List(ctx, query)
}
