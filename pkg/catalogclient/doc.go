// Package catalogclient provides the primary entry point for constructing a
// property-management catalog API client that implements the catalog.Client
// interface.
//
// It layers endpoint resolution, configuration, and HTTP transport on top of
// the resource interfaces and types defined in the catalog package. Most
// applications should import catalogclient to build a client, then use the
// returned catalog.Client to access resource-specific clients, for example
// Homes(), Rooms(), Suppliers(), etc.
//
// Quick start
//
//	import (
//	  "context"
//	  "log"
//
//	  "github.com/dwellhq/homecat/pkg/catalog"
//	  "github.com/dwellhq/homecat/pkg/catalogclient"
//	)
//
//	func example() {
//	  ctx := context.Background()
//
//	  // Minimal: just an endpoint (no token).
//	  cli, err := catalogclient.New(ctx, &catalog.Config{Endpoint: "https://catalog.example.com"})
//	  if err != nil { log.Fatal(err) }
//
//	  // Or rely on HOMECAT_API / the local-development fallback:
//	  cli, err = catalogclient.New(ctx, &catalog.Config{})
//	  if err != nil { log.Fatal(err) }
//
//	  homes, err := cli.Homes().List(ctx, nil)
//	  if err != nil { log.Fatal(err) }
//	  _ = homes
//	}
package catalogclient
