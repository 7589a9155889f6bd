// Package constants centralizes timeouts, retry limits, and other tunables
// shared across the catalog client and CLI.
package constants

import "time"

// File and directory permissions.
const (
	// ConfigDirPerm is the permission for configuration directories.
	ConfigDirPerm = 0750

	// ConfigFilePerm is the permission for configuration files.
	ConfigFilePerm = 0600
)

// HTTP and network timeouts.
const (
	// DefaultHTTPTimeout is the default timeout for HTTP requests.
	DefaultHTTPTimeout = 30 * time.Second

	// ShortHTTPTimeout is used for quick operations.
	ShortHTTPTimeout = 10 * time.Second
)

// Retry limits. Retries apply to transient transport failures only.
const (
	// DefaultRetryMax is the default maximum number of retries.
	DefaultRetryMax = 3

	// DefaultRetryWaitMin is the minimum wait time between retries.
	DefaultRetryWaitMin = 1 * time.Second

	// DefaultRetryWaitMax is the maximum wait time between retries.
	DefaultRetryWaitMax = 10 * time.Second
)

// Client identification.
const (
	// DefaultUserAgent identifies the client in request headers.
	DefaultUserAgent = "homecat-client/1.0"
)

// API surface.
const (
	// APIPrefix is the fixed versioned path prefix for every endpoint.
	APIPrefix = "/v1"

	// LocalDevEndpoint is the hard-coded local-development fallback used
	// when no endpoint is configured anywhere.
	LocalDevEndpoint = "http://localhost:8700"

	// EndpointEnvVar overrides the configured endpoint when set.
	EndpointEnvVar = "HOMECAT_API"
)

// Watch subjects.
const (
	// EventSubjectPrefix is the NATS subject prefix for change events;
	// the entity kind is appended per subject.
	EventSubjectPrefix = "catalog.events"
)
