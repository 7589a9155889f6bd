// Package catalogclient provides the main entry point for creating catalog
// API clients.
package catalogclient

import (
	"context"
	"os"
	"strings"

	"github.com/dwellhq/homecat/internal/client"
	"github.com/dwellhq/homecat/internal/constants"
	"github.com/dwellhq/homecat/pkg/catalog"
)

// New creates a new catalog API client.
//
// The endpoint resolves in order: config.Endpoint, the HOMECAT_API
// environment variable, then the hard-coded local-development fallback.
// The value is normalized by trimming a trailing slash and defaulting the
// scheme to "http://" when none is present (the catalog service terminates
// TLS at its own edge; pass an explicit https endpoint for remote use).
func New(ctx context.Context, config *catalog.Config) (catalog.Client, error) {
	if config == nil {
		return nil, catalog.ErrConfigRequired
	}

	resolved := *config
	resolved.Endpoint = ResolveEndpoint(config.Endpoint)

	return client.New(&resolved)
}

// NewWithEndpoint creates a new client for the given endpoint with default
// configuration.
func NewWithEndpoint(ctx context.Context, endpoint string) (catalog.Client, error) {
	return New(ctx, &catalog.Config{Endpoint: endpoint})
}

// NewWithToken creates a new client with an endpoint and a static API token.
func NewWithToken(ctx context.Context, endpoint, token string) (catalog.Client, error) {
	return New(ctx, &catalog.Config{Endpoint: endpoint, Token: token})
}

// ResolveEndpoint applies the endpoint resolution and normalization rules.
func ResolveEndpoint(endpoint string) string {
	if endpoint == "" {
		endpoint = os.Getenv(constants.EndpointEnvVar)
	}

	if endpoint == "" {
		endpoint = constants.LocalDevEndpoint
	}

	endpoint = strings.TrimSuffix(endpoint, "/")
	if !strings.HasPrefix(endpoint, "http://") && !strings.HasPrefix(endpoint, "https://") {
		endpoint = "http://" + endpoint
	}

	return endpoint
}
