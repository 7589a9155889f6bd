// Package client implements the catalog.Client interface over the catalog
// REST API.
package client

import (
	"github.com/dwellhq/homecat/internal/constants"
	"github.com/dwellhq/homecat/internal/http"
	"github.com/dwellhq/homecat/pkg/catalog"
)

// Client implements catalog.Client.
type Client struct {
	httpClient *http.Client

	categories      *CategoriesClient
	brands          *BrandsClient
	homes           *HomesClient
	roomTypes       *RoomTypesClient
	suppliers       *SuppliersClient
	amenities       *AmenitiesClient
	rooms           *RoomsClient
	inventory       *InventoryClient
	stylingGuides   *GuidesClient
	playbooks       *GuidesClient
	applianceGuides *GuidesClient
	technicalPlans  *GuidesClient
}

// createHTTPClientOptions builds HTTP client options from config.
func createHTTPClientOptions(config *catalog.Config) []http.Option {
	var httpOpts []http.Option

	if config.Logger != nil {
		httpOpts = append(httpOpts, http.WithLogger(config.Logger))
	}

	if config.Debug {
		httpOpts = append(httpOpts, http.WithDebug(true))
	}

	if config.UserAgent != "" {
		httpOpts = append(httpOpts, http.WithUserAgent(config.UserAgent))
	}

	if config.HTTPTimeout > 0 {
		httpOpts = append(httpOpts, http.WithHTTPTimeout(config.HTTPTimeout))
	}

	if config.RetryMax > 0 {
		retryWaitMin := config.RetryWaitMin
		retryWaitMax := config.RetryWaitMax

		if retryWaitMin <= 0 {
			retryWaitMin = constants.DefaultRetryWaitMin
		}

		if retryWaitMax <= 0 {
			retryWaitMax = constants.DefaultRetryWaitMax
		}

		httpOpts = append(httpOpts, http.WithRetryConfig(config.RetryMax, retryWaitMin, retryWaitMax))
	}

	return httpOpts
}

// New creates a new catalog API client. The endpoint must already be
// normalized (see catalogclient.New).
func New(config *catalog.Config) (*Client, error) {
	if config == nil {
		return nil, catalog.ErrConfigRequired
	}

	if config.Endpoint == "" {
		return nil, catalog.ErrEndpointRequired
	}

	httpClient := http.NewClient(config.Endpoint, config.Token, createHTTPClientOptions(config)...)

	client := &Client{httpClient: httpClient}

	client.initializeResourceClients()

	return client, nil
}

// initializeResourceClients wires one resource client per entity kind. The
// clients share the HTTP transport and hold no state of their own, so this
// happens once per configuration.
func (c *Client) initializeResourceClients() {
	c.categories = NewCategoriesClient(c.httpClient)
	c.brands = NewBrandsClient(c.httpClient)
	c.homes = NewHomesClient(c.httpClient)
	c.roomTypes = NewRoomTypesClient(c.httpClient)
	c.suppliers = NewSuppliersClient(c.httpClient)
	c.amenities = NewAmenitiesClient(c.httpClient)
	c.rooms = NewRoomsClient(c.httpClient)
	c.inventory = NewInventoryClient(c.httpClient)
	c.stylingGuides = NewGuidesClient(c.httpClient, catalog.KindStylingGuides)
	c.playbooks = NewGuidesClient(c.httpClient, catalog.KindPlaybooks)
	c.applianceGuides = NewGuidesClient(c.httpClient, catalog.KindApplianceGuides)
	c.technicalPlans = NewGuidesClient(c.httpClient, catalog.KindTechnicalPlans)
}

// Categories implements catalog.Client.Categories.
func (c *Client) Categories() catalog.CategoriesClient { return c.categories }

// Brands implements catalog.Client.Brands.
func (c *Client) Brands() catalog.BrandsClient { return c.brands }

// Homes implements catalog.Client.Homes.
func (c *Client) Homes() catalog.HomesClient { return c.homes }

// RoomTypes implements catalog.Client.RoomTypes.
func (c *Client) RoomTypes() catalog.RoomTypesClient { return c.roomTypes }

// Suppliers implements catalog.Client.Suppliers.
func (c *Client) Suppliers() catalog.SuppliersClient { return c.suppliers }

// Amenities implements catalog.Client.Amenities.
func (c *Client) Amenities() catalog.AmenitiesClient { return c.amenities }

// Rooms implements catalog.Client.Rooms.
func (c *Client) Rooms() catalog.RoomsClient { return c.rooms }

// Inventory implements catalog.Client.Inventory.
func (c *Client) Inventory() catalog.InventoryClient { return c.inventory }

// StylingGuides implements catalog.Client.StylingGuides.
func (c *Client) StylingGuides() catalog.GuidesClient { return c.stylingGuides }

// Playbooks implements catalog.Client.Playbooks.
func (c *Client) Playbooks() catalog.GuidesClient { return c.playbooks }

// ApplianceGuides implements catalog.Client.ApplianceGuides.
func (c *Client) ApplianceGuides() catalog.GuidesClient { return c.applianceGuides }

// TechnicalPlans implements catalog.Client.TechnicalPlans.
func (c *Client) TechnicalPlans() catalog.GuidesClient { return c.technicalPlans }
