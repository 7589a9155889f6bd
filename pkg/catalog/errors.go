package catalog

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// APIError represents the error object inside a failure envelope. Status
// carries the HTTP status code the envelope arrived with; it is not part of
// the wire payload.
type APIError struct {
	Status  int               `json:"-"                 yaml:"-"`
	Message string            `json:"message"           yaml:"message"`
	Details map[string]string `json:"details,omitempty" yaml:"details,omitempty"`
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if len(e.Details) == 0 {
		return e.Message
	}

	return fmt.Sprintf("%s (%d field error(s))", e.Message, len(e.Details))
}

// ErrorEnvelope represents the failure envelope returned by every API
// operation: {"success": false, "error": {...}}.
type ErrorEnvelope struct {
	Success bool      `json:"success" yaml:"success"`
	Err     *APIError `json:"error"   yaml:"error"`
}

// Common static errors that can be wrapped with context.
var (
	ErrConfigRequired      = errors.New("config is required")
	ErrEndpointRequired    = errors.New("API endpoint is required")
	ErrUnknownKind         = errors.New("unknown entity kind")
	ErrNoMoreItems         = errors.New("no more items")
	ErrMalformedEnvelope   = errors.New("malformed response envelope")
	ErrLoaderClosed        = errors.New("loader is closed")
	ErrInvalidClientType   = errors.New("invalid client type")
	ErrHomeNotFound        = errors.New("home not found")
	ErrRoomNotFound        = errors.New("room not found")
	ErrAmenityNotFound     = errors.New("amenity not found")
	ErrBrandNotFound       = errors.New("brand not found")
	ErrCategoryNotFound    = errors.New("category not found")
	ErrSupplierNotFound    = errors.New("supplier not found")
	ErrRoomTypeNotFound    = errors.New("room type not found")
	ErrGuideNotFound       = errors.New("guide not found")
	ErrInventoryNotFound   = errors.New("inventory row not found")
	ErrNameRequired        = errors.New("name is required")
	ErrTitleRequired       = errors.New("title is required")
	ErrHomeIDRequired      = errors.New("home id is required")
	ErrIDOrNameRequired    = errors.New("an id or name is required")
	ErrWatcherDisconnected = errors.New("watcher disconnected")
)

// IsNotFound reports whether err is an API error for a missing resource.
func IsNotFound(err error) bool {
	apiErr := &APIError{}
	if errors.As(err, &apiErr) {
		return apiErr.Status == http.StatusNotFound
	}

	return false
}

// IsValidation reports whether err is an API error carrying field-level
// validation details (HTTP 400/422).
func IsValidation(err error) bool {
	apiErr := &APIError{}
	if errors.As(err, &apiErr) {
		return apiErr.Status == http.StatusUnprocessableEntity ||
			apiErr.Status == http.StatusBadRequest
	}

	return false
}

// IsConflict reports whether err is an API error for a conflicting mutation,
// e.g. deleting a supplier still referenced by inventory rows.
func IsConflict(err error) bool {
	apiErr := &APIError{}
	if errors.As(err, &apiErr) {
		return apiErr.Status == http.StatusConflict
	}

	return false
}

// ParseErrorEnvelope decodes a failure envelope from a response body. The
// returned APIError carries the given HTTP status. A body that is not a
// well-formed failure envelope yields an error wrapping ErrMalformedEnvelope
// so the caller can surface it as a transport failure.
func ParseErrorEnvelope(data []byte, status int) (*APIError, error) {
	var envelope ErrorEnvelope

	err := json.Unmarshal(data, &envelope)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedEnvelope, err)
	}

	if envelope.Err == nil || envelope.Err.Message == "" {
		return nil, fmt.Errorf("%w: missing error object", ErrMalformedEnvelope)
	}

	envelope.Err.Status = status

	return envelope.Err, nil
}
