package catalog

import (
	"context"
	"fmt"
	"time"

	"github.com/dwellhq/homecat/internal/constants"
)

// ResourceClient is the uniform CRUD surface every entity client exposes.
// List operations accept optional pagination/filter parameters and return a
// decoded success envelope; mutations return the affected entity. Expected
// API-level failures (4xx/5xx with a parseable failure envelope) come back
// as *APIError values, never as panics.
type ResourceClient[T, C, U any] interface {
	Create(ctx context.Context, request *C) (*T, error)
	Get(ctx context.Context, id string) (*T, error)
	List(ctx context.Context, params *Query) (*ListResponse[T], error)
	Update(ctx context.Context, id string, request *U) (*T, error)
	Delete(ctx context.Context, id string) error
}

// CategoriesClient provides access to category operations.
type CategoriesClient interface {
	ResourceClient[Category, CategoryCreateRequest, CategoryUpdateRequest]
}

// BrandsClient provides access to brand operations.
type BrandsClient interface {
	ResourceClient[Brand, BrandCreateRequest, BrandUpdateRequest]
}

// HomesClient provides access to home operations.
type HomesClient interface {
	ResourceClient[Home, HomeCreateRequest, HomeUpdateRequest]
}

// RoomTypesClient provides access to room-type operations.
type RoomTypesClient interface {
	ResourceClient[RoomType, RoomTypeCreateRequest, RoomTypeUpdateRequest]
}

// SuppliersClient provides access to supplier operations.
type SuppliersClient interface {
	ResourceClient[Supplier, SupplierCreateRequest, SupplierUpdateRequest]
}

// AmenitiesClient provides access to amenity operations.
type AmenitiesClient interface {
	ResourceClient[Amenity, AmenityCreateRequest, AmenityUpdateRequest]
}

// RoomsClient provides access to room operations, including the home-scoped
// room listing.
type RoomsClient interface {
	ResourceClient[Room, RoomCreateRequest, RoomUpdateRequest]

	// ListByHome lists the rooms of one home.
	ListByHome(ctx context.Context, homeID string, params *Query) (*ListResponse[Room], error)
}

// InventoryClient provides access to home-inventory operations, including
// the home- and supplier-scoped listings.
type InventoryClient interface {
	ResourceClient[HomeInventory, HomeInventoryCreateRequest, HomeInventoryUpdateRequest]

	// ListByHome lists the inventory rows of one home.
	ListByHome(ctx context.Context, homeID string, params *Query) (*ListResponse[HomeInventory], error)
	// ListBySupplier lists the inventory rows restocked by one supplier.
	ListBySupplier(ctx context.Context, supplierID string, params *Query) (*ListResponse[HomeInventory], error)
}

// GuidesClient provides access to the operations of one guide kind,
// including the home-scoped listing.
type GuidesClient interface {
	ResourceClient[Guide, GuideCreateRequest, GuideUpdateRequest]

	// ListByHome lists the guides attached to one home.
	ListByHome(ctx context.Context, homeID string, params *Query) (*ListResponse[Guide], error)
}

// ReferenceClients provides access to the reference-data clients used to
// populate dropdown options in admin forms.
type ReferenceClients interface {
	Categories() CategoriesClient
	Brands() BrandsClient
	RoomTypes() RoomTypesClient
	Suppliers() SuppliersClient
}

// StructureClients provides access to the property-structure clients.
type StructureClients interface {
	Homes() HomesClient
	Rooms() RoomsClient
}

// StockClients provides access to catalog-item and inventory clients.
type StockClients interface {
	Amenities() AmenitiesClient
	Inventory() InventoryClient
}

// GuideClients provides access to the home-scoped document clients.
type GuideClients interface {
	StylingGuides() GuidesClient
	Playbooks() GuidesClient
	ApplianceGuides() GuidesClient
	TechnicalPlans() GuidesClient
}

// Client provides access to all catalog resource clients.
type Client interface {
	ReferenceClients
	StructureClients
	StockClients
	GuideClients
}

// Logger interface for logging.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// Config represents client configuration for building a catalog.Client.
//
// Per-request timeouts should generally be controlled via the context passed
// to client methods. Retry behavior can be tuned via RetryMax/RetryWaitMin/
// RetryWaitMax and applies to transport-level failures only (connection
// errors, 5xx, 429); application errors are never retried automatically.
type Config struct {
	// Endpoint is the base URL for the catalog API (e.g.
	// "https://catalog.example.com"). catalogclient.New normalizes this
	// value by trimming a trailing slash and adding "http://" if no scheme
	// is present.
	Endpoint string

	// Token, when set, is sent as a static Bearer token on every request.
	Token string

	// HTTPTimeout is an optional default HTTP timeout where supported.
	HTTPTimeout time.Duration

	// RetryMax is the maximum number of retries for transient failures. If
	// 0, a sensible default is used.
	RetryMax int
	// RetryWaitMin is the minimum backoff between retries.
	RetryWaitMin time.Duration
	// RetryWaitMax is the maximum backoff between retries.
	RetryWaitMax time.Duration

	// Debug enables verbose HTTP request/response logging when a Logger is
	// provided.
	Debug bool
	// Logger is an optional structured logger used by the HTTP layer.
	Logger Logger
	// UserAgent overrides the default User-Agent header.
	UserAgent string
}

// Kind identifies one of the fixed enumerated entity kinds the catalog
// manages. Requesting an unlisted kind is a programmer error, not a
// runtime-recoverable one.
type Kind string

const (
	KindCategories      Kind = "categories"
	KindBrands          Kind = "brands"
	KindHomes           Kind = "homes"
	KindRoomTypes       Kind = "room-types"
	KindSuppliers       Kind = "suppliers"
	KindAmenities       Kind = "amenities"
	KindRooms           Kind = "rooms"
	KindInventory       Kind = "inventory"
	KindStylingGuides   Kind = "styling-guides"
	KindPlaybooks       Kind = "playbooks"
	KindApplianceGuides Kind = "appliance-guides"
	KindTechnicalPlans  Kind = "technical-plans"
)

// Kinds returns every supported entity kind in a stable order.
func Kinds() []Kind {
	return []Kind{
		KindCategories,
		KindBrands,
		KindHomes,
		KindRoomTypes,
		KindSuppliers,
		KindAmenities,
		KindRooms,
		KindInventory,
		KindStylingGuides,
		KindPlaybooks,
		KindApplianceGuides,
		KindTechnicalPlans,
	}
}

// ParseKind validates an entity-kind selector string.
func ParseKind(s string) (Kind, error) {
	for _, kind := range Kinds() {
		if string(kind) == s {
			return kind, nil
		}
	}

	return "", fmt.Errorf("%w: %q", ErrUnknownKind, s)
}

// Path returns the versioned API path for the kind's list endpoint.
func (k Kind) Path() string {
	return constants.APIPrefix + "/" + string(k)
}
