package catalog

import (
	"time"
)

// Resource represents the base structure for all catalog API resources.
// Identifiers and timestamps are server-assigned; the identifier is
// immutable once assigned and updatedAt never precedes createdAt.
type Resource struct {
	ID        string    `json:"id"        yaml:"id"`
	CreatedAt time.Time `json:"createdAt" yaml:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt" yaml:"updatedAt"`
}

// Meta represents pagination metadata returned by list endpoints.
type Meta struct {
	Page       int `json:"page"       yaml:"page"`
	PageSize   int `json:"pageSize"   yaml:"pageSize"`
	Total      int `json:"total"      yaml:"total"`
	TotalPages int `json:"totalPages" yaml:"totalPages"`
}

// ListResponse represents a decoded paginated list response.
type ListResponse[T any] struct {
	Data []T  `json:"data" yaml:"data"`
	Meta Meta `json:"meta" yaml:"meta"`
}

// Home represents a managed property.
type Home struct {
	Resource

	Name          string   `json:"name"                    yaml:"name"`
	Address       string   `json:"address,omitempty"       yaml:"address,omitempty"`
	City          string   `json:"city,omitempty"          yaml:"city,omitempty"`
	Description   string   `json:"description,omitempty"   yaml:"description,omitempty"`
	CoverImageURL string   `json:"coverImageUrl,omitempty" yaml:"coverImageUrl,omitempty"`
	ImageURLs     []string `json:"imageUrls,omitempty"     yaml:"imageUrls,omitempty"`
}

// HomeCreateRequest is the payload for creating a home.
type HomeCreateRequest struct {
	Name          string   `json:"name"                    yaml:"name"                    validate:"required,min=2,max=120"`
	Address       string   `json:"address,omitempty"       yaml:"address,omitempty"       validate:"max=300"`
	City          string   `json:"city,omitempty"          yaml:"city,omitempty"          validate:"max=120"`
	Description   string   `json:"description,omitempty"   yaml:"description,omitempty"   validate:"max=4000"`
	CoverImageURL string   `json:"coverImageUrl,omitempty" yaml:"coverImageUrl,omitempty" validate:"omitempty,url"`
	ImageURLs     []string `json:"imageUrls,omitempty"     yaml:"imageUrls,omitempty"     validate:"dive,url"`
}

// HomeUpdateRequest is the payload for updating a home. Nil fields are left
// unchanged by the server.
type HomeUpdateRequest struct {
	Name          *string  `json:"name,omitempty"          yaml:"name,omitempty"          validate:"omitempty,min=2,max=120"`
	Address       *string  `json:"address,omitempty"       yaml:"address,omitempty"       validate:"omitempty,max=300"`
	City          *string  `json:"city,omitempty"          yaml:"city,omitempty"          validate:"omitempty,max=120"`
	Description   *string  `json:"description,omitempty"   yaml:"description,omitempty"   validate:"omitempty,max=4000"`
	CoverImageURL *string  `json:"coverImageUrl,omitempty" yaml:"coverImageUrl,omitempty" validate:"omitempty,url"`
	ImageURLs     []string `json:"imageUrls,omitempty"     yaml:"imageUrls,omitempty"     validate:"dive,url"`
}

// RoomType represents a room classification (bedroom, kitchen, ...).
type RoomType struct {
	Resource

	Name        string `json:"name"                  yaml:"name"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
}

// RoomTypeCreateRequest is the payload for creating a room type.
type RoomTypeCreateRequest struct {
	Name        string `json:"name"                  yaml:"name"                  validate:"required,min=2,max=120"`
	Description string `json:"description,omitempty" yaml:"description,omitempty" validate:"max=2000"`
}

// RoomTypeUpdateRequest is the payload for updating a room type.
type RoomTypeUpdateRequest struct {
	Name        *string `json:"name,omitempty"        yaml:"name,omitempty"        validate:"omitempty,min=2,max=120"`
	Description *string `json:"description,omitempty" yaml:"description,omitempty" validate:"omitempty,max=2000"`
}

// Room represents a room within a home.
type Room struct {
	Resource

	HomeID     string   `json:"homeId"              yaml:"homeId"`
	RoomTypeID string   `json:"roomTypeId"          yaml:"roomTypeId"`
	Name       string   `json:"name"                yaml:"name"`
	Floor      int      `json:"floor,omitempty"     yaml:"floor,omitempty"`
	ImageURLs  []string `json:"imageUrls,omitempty" yaml:"imageUrls,omitempty"`
}

// RoomCreateRequest is the payload for creating a room.
type RoomCreateRequest struct {
	HomeID     string   `json:"homeId"              yaml:"homeId"              validate:"required"`
	RoomTypeID string   `json:"roomTypeId"          yaml:"roomTypeId"          validate:"required"`
	Name       string   `json:"name"                yaml:"name"                validate:"required,min=1,max=120"`
	Floor      int      `json:"floor,omitempty"     yaml:"floor,omitempty"     validate:"gte=-5,lte=200"`
	ImageURLs  []string `json:"imageUrls,omitempty" yaml:"imageUrls,omitempty" validate:"dive,url"`
}

// RoomUpdateRequest is the payload for updating a room.
type RoomUpdateRequest struct {
	RoomTypeID *string  `json:"roomTypeId,omitempty" yaml:"roomTypeId,omitempty"`
	Name       *string  `json:"name,omitempty"       yaml:"name,omitempty"       validate:"omitempty,min=1,max=120"`
	Floor      *int     `json:"floor,omitempty"      yaml:"floor,omitempty"      validate:"omitempty,gte=-5,lte=200"`
	ImageURLs  []string `json:"imageUrls,omitempty"  yaml:"imageUrls,omitempty"  validate:"dive,url"`
}

// Category represents an amenity category.
type Category struct {
	Resource

	Name        string `json:"name"                  yaml:"name"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
}

// CategoryCreateRequest is the payload for creating a category.
type CategoryCreateRequest struct {
	Name        string `json:"name"                  yaml:"name"                  validate:"required,min=2,max=120"`
	Description string `json:"description,omitempty" yaml:"description,omitempty" validate:"max=2000"`
}

// CategoryUpdateRequest is the payload for updating a category.
type CategoryUpdateRequest struct {
	Name        *string `json:"name,omitempty"        yaml:"name,omitempty"        validate:"omitempty,min=2,max=120"`
	Description *string `json:"description,omitempty" yaml:"description,omitempty" validate:"omitempty,max=2000"`
}

// Brand represents a manufacturer brand.
type Brand struct {
	Resource

	Name        string `json:"name"                  yaml:"name"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
}

// BrandCreateRequest is the payload for creating a brand.
type BrandCreateRequest struct {
	Name        string `json:"name"                  yaml:"name"                  validate:"required,min=2,max=120"`
	Description string `json:"description,omitempty" yaml:"description,omitempty" validate:"max=2000"`
}

// BrandUpdateRequest is the payload for updating a brand.
type BrandUpdateRequest struct {
	Name        *string `json:"name,omitempty"        yaml:"name,omitempty"        validate:"omitempty,min=2,max=120"`
	Description *string `json:"description,omitempty" yaml:"description,omitempty" validate:"omitempty,max=2000"`
}

// Supplier represents a vendor that restocks inventory.
type Supplier struct {
	Resource

	Name        string `json:"name"                  yaml:"name"`
	ContactName string `json:"contactName,omitempty" yaml:"contactName,omitempty"`
	Email       string `json:"email,omitempty"       yaml:"email,omitempty"`
	Phone       string `json:"phone,omitempty"       yaml:"phone,omitempty"`
	Website     string `json:"website,omitempty"     yaml:"website,omitempty"`
	Notes       string `json:"notes,omitempty"       yaml:"notes,omitempty"`
}

// SupplierCreateRequest is the payload for creating a supplier.
type SupplierCreateRequest struct {
	Name        string `json:"name"                  yaml:"name"                  validate:"required,min=2,max=160"`
	ContactName string `json:"contactName,omitempty" yaml:"contactName,omitempty" validate:"max=160"`
	Email       string `json:"email,omitempty"       yaml:"email,omitempty"       validate:"omitempty,email"`
	Phone       string `json:"phone,omitempty"       yaml:"phone,omitempty"       validate:"max=40"`
	Website     string `json:"website,omitempty"     yaml:"website,omitempty"     validate:"omitempty,url"`
	Notes       string `json:"notes,omitempty"       yaml:"notes,omitempty"       validate:"max=4000"`
}

// SupplierUpdateRequest is the payload for updating a supplier.
type SupplierUpdateRequest struct {
	Name        *string `json:"name,omitempty"        yaml:"name,omitempty"        validate:"omitempty,min=2,max=160"`
	ContactName *string `json:"contactName,omitempty" yaml:"contactName,omitempty" validate:"omitempty,max=160"`
	Email       *string `json:"email,omitempty"       yaml:"email,omitempty"       validate:"omitempty,email"`
	Phone       *string `json:"phone,omitempty"       yaml:"phone,omitempty"       validate:"omitempty,max=40"`
	Website     *string `json:"website,omitempty"     yaml:"website,omitempty"     validate:"omitempty,url"`
	Notes       *string `json:"notes,omitempty"       yaml:"notes,omitempty"       validate:"omitempty,max=4000"`
}

// Amenity represents a catalog item that can be stocked in homes.
type Amenity struct {
	Resource

	Name        string   `json:"name"                  yaml:"name"`
	CategoryID  string   `json:"categoryId"            yaml:"categoryId"`
	BrandID     string   `json:"brandId,omitempty"     yaml:"brandId,omitempty"`
	Model       string   `json:"model,omitempty"       yaml:"model,omitempty"`
	Description string   `json:"description,omitempty" yaml:"description,omitempty"`
	ImageURLs   []string `json:"imageUrls,omitempty"   yaml:"imageUrls,omitempty"`
}

// AmenityCreateRequest is the payload for creating an amenity.
type AmenityCreateRequest struct {
	Name        string   `json:"name"                  yaml:"name"                  validate:"required,min=2,max=160"`
	CategoryID  string   `json:"categoryId"            yaml:"categoryId"            validate:"required"`
	BrandID     string   `json:"brandId,omitempty"     yaml:"brandId,omitempty"`
	Model       string   `json:"model,omitempty"       yaml:"model,omitempty"       validate:"max=160"`
	Description string   `json:"description,omitempty" yaml:"description,omitempty" validate:"max=4000"`
	ImageURLs   []string `json:"imageUrls,omitempty"   yaml:"imageUrls,omitempty"   validate:"dive,url"`
}

// AmenityUpdateRequest is the payload for updating an amenity.
type AmenityUpdateRequest struct {
	Name        *string  `json:"name,omitempty"        yaml:"name,omitempty"        validate:"omitempty,min=2,max=160"`
	CategoryID  *string  `json:"categoryId,omitempty"  yaml:"categoryId,omitempty"`
	BrandID     *string  `json:"brandId,omitempty"     yaml:"brandId,omitempty"`
	Model       *string  `json:"model,omitempty"       yaml:"model,omitempty"       validate:"omitempty,max=160"`
	Description *string  `json:"description,omitempty" yaml:"description,omitempty" validate:"omitempty,max=4000"`
	ImageURLs   []string `json:"imageUrls,omitempty"   yaml:"imageUrls,omitempty"   validate:"dive,url"`
}

// HomeInventory represents the stock of one amenity in one home, optionally
// pinned to a room, with a restock threshold and a preferred supplier.
type HomeInventory struct {
	Resource

	HomeID           string `json:"homeId"               yaml:"homeId"`
	AmenityID        string `json:"amenityId"            yaml:"amenityId"`
	RoomID           string `json:"roomId,omitempty"     yaml:"roomId,omitempty"`
	SupplierID       string `json:"supplierId,omitempty" yaml:"supplierId,omitempty"`
	Quantity         int    `json:"quantity"             yaml:"quantity"`
	RestockThreshold int    `json:"restockThreshold"     yaml:"restockThreshold"`
	Notes            string `json:"notes,omitempty"      yaml:"notes,omitempty"`
}

// HomeInventoryCreateRequest is the payload for creating an inventory row.
type HomeInventoryCreateRequest struct {
	HomeID           string `json:"homeId"               yaml:"homeId"               validate:"required"`
	AmenityID        string `json:"amenityId"            yaml:"amenityId"            validate:"required"`
	RoomID           string `json:"roomId,omitempty"     yaml:"roomId,omitempty"`
	SupplierID       string `json:"supplierId,omitempty" yaml:"supplierId,omitempty"`
	Quantity         int    `json:"quantity"             yaml:"quantity"             validate:"gte=0"`
	RestockThreshold int    `json:"restockThreshold"     yaml:"restockThreshold"     validate:"gte=0"`
	Notes            string `json:"notes,omitempty"      yaml:"notes,omitempty"      validate:"max=4000"`
}

// HomeInventoryUpdateRequest is the payload for updating an inventory row.
type HomeInventoryUpdateRequest struct {
	RoomID           *string `json:"roomId,omitempty"           yaml:"roomId,omitempty"`
	SupplierID       *string `json:"supplierId,omitempty"       yaml:"supplierId,omitempty"`
	Quantity         *int    `json:"quantity,omitempty"         yaml:"quantity,omitempty"         validate:"omitempty,gte=0"`
	RestockThreshold *int    `json:"restockThreshold,omitempty" yaml:"restockThreshold,omitempty" validate:"omitempty,gte=0"`
	Notes            *string `json:"notes,omitempty"            yaml:"notes,omitempty"            validate:"omitempty,max=4000"`
}

// Guide represents a home-scoped document (styling guide, playbook,
// appliance guide, technical plan). The four guide kinds share one shape;
// appliance guides additionally reference the amenity they describe.
type Guide struct {
	Resource

	HomeID         string   `json:"homeId"              yaml:"homeId"`
	AmenityID      string   `json:"amenityId,omitempty" yaml:"amenityId,omitempty"`
	Title          string   `json:"title"               yaml:"title"`
	Body           string   `json:"body,omitempty"      yaml:"body,omitempty"`
	AttachmentURLs []string `json:"attachmentUrls,omitempty" yaml:"attachmentUrls,omitempty"`
}

// GuideCreateRequest is the payload for creating a guide.
type GuideCreateRequest struct {
	HomeID         string   `json:"homeId"              yaml:"homeId"              validate:"required"`
	AmenityID      string   `json:"amenityId,omitempty" yaml:"amenityId,omitempty"`
	Title          string   `json:"title"               yaml:"title"               validate:"required,min=2,max=200"`
	Body           string   `json:"body,omitempty"      yaml:"body,omitempty"      validate:"max=20000"`
	AttachmentURLs []string `json:"attachmentUrls,omitempty" yaml:"attachmentUrls,omitempty" validate:"dive,url"`
}

// GuideUpdateRequest is the payload for updating a guide.
type GuideUpdateRequest struct {
	AmenityID      *string  `json:"amenityId,omitempty" yaml:"amenityId,omitempty"`
	Title          *string  `json:"title,omitempty"     yaml:"title,omitempty"     validate:"omitempty,min=2,max=200"`
	Body           *string  `json:"body,omitempty"      yaml:"body,omitempty"      validate:"omitempty,max=20000"`
	AttachmentURLs []string `json:"attachmentUrls,omitempty" yaml:"attachmentUrls,omitempty" validate:"dive,url"`
}

// StylingGuide documents how a home should be staged and styled.
type StylingGuide = Guide

// Playbook documents operating procedures for a home.
type Playbook = Guide

// ApplianceGuide documents a specific appliance installed in a home.
type ApplianceGuide = Guide

// TechnicalPlan holds technical drawings and schematics for a home.
type TechnicalPlan = Guide

// HomesList represents a paginated list of Home resources.
type HomesList = ListResponse[Home]

// RoomsList represents a paginated list of Room resources.
type RoomsList = ListResponse[Room]

// InventoryList represents a paginated list of HomeInventory resources.
type InventoryList = ListResponse[HomeInventory]
