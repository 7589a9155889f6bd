// Package catalog provides types, interfaces, and helpers for working with the
// property-management catalog API.
//
// # Overview
//
// The catalog package defines the domain types (e.g., Home, Room, Amenity,
// Supplier, HomeInventory) and the interfaces for resource-oriented clients
// (e.g., HomesClient, BrandsClient). A concrete implementation of these
// clients is provided by the catalogclient package, which wires configuration
// and transport. Most consumers should import catalogclient to construct a
// client and then interact with the resource client interfaces exposed here.
//
// Getting a client
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
//	  cli, err := catalogclient.New(ctx, &catalog.Config{Endpoint: "https://catalog.example.com"})
//	  if err != nil { log.Fatal(err) }
//
//	  // List the first page of homes
//	  homes, err := cli.Homes().List(ctx, catalog.NewQuery().WithPageSize(50))
//	  if err != nil { log.Fatal(err) }
//	  _ = homes
//	}
//
// # Queries and pagination
//
// Use Query to express common list options (page, pageSize, search, sort,
// filters). The package also provides helpers for iterating or collecting
// paginated results:
//
//	it := catalog.NewPageIterator(ctx, cli.Homes().List, catalog.NewQuery())
//	for it.HasNext() {
//	  home, err := it.Next()
//	  if err != nil { break }
//	  _ = home
//	}
//
// # Loaders and tables
//
// Loader holds the state of one reloadable list fetch (data, pagination
// metadata, loading flag, error message) and guards against stale responses
// when query parameters change while a fetch is in flight. Table renders a
// page of records with typed column definitions and either server-side or
// client-side pagination. Together they back the admin CLI's list views:
// after any mutation, the authoritative state is re-fetched through
// Loader.Reload rather than patched in place.
package catalog
