package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/dwellhq/homecat/internal/http"
	"github.com/dwellhq/homecat/pkg/catalog"
)

// resourceClient implements the uniform CRUD contract shared by every
// entity kind: typed create/get/list/update/delete over the success/error
// envelope. Entity clients embed it with their endpoint path and a short
// kind name used in error context.
type resourceClient[T, C, U any] struct {
	httpClient *http.Client
	path       string
	kind       string
}

// Create issues POST <path> and decodes the single-entity envelope.
func (c *resourceClient[T, C, U]) Create(ctx context.Context, request *C) (*T, error) {
	resp, err := c.httpClient.Post(ctx, c.path, request)
	if err != nil {
		return nil, fmt.Errorf("creating %s: %w", c.kind, err)
	}

	return decodeOne[T](resp.Body, c.kind)
}

// Get issues GET <path>/<id> and decodes the single-entity envelope.
func (c *resourceClient[T, C, U]) Get(ctx context.Context, id string) (*T, error) {
	resp, err := c.httpClient.Get(ctx, c.path+"/"+url.PathEscape(id), nil)
	if err != nil {
		return nil, fmt.Errorf("getting %s: %w", c.kind, err)
	}

	return decodeOne[T](resp.Body, c.kind)
}

// List issues GET <path> with optional pagination/filter parameters and
// decodes the list envelope.
func (c *resourceClient[T, C, U]) List(ctx context.Context, params *catalog.Query) (*catalog.ListResponse[T], error) {
	var query url.Values
	if params != nil {
		query = params.Values()
	}

	resp, err := c.httpClient.Get(ctx, c.path, query)
	if err != nil {
		return nil, fmt.Errorf("listing %s: %w", c.kind, err)
	}

	return decodeList[T](resp.Body, c.kind)
}

// Update issues PATCH <path>/<id> and decodes the single-entity envelope.
func (c *resourceClient[T, C, U]) Update(ctx context.Context, id string, request *U) (*T, error) {
	resp, err := c.httpClient.Patch(ctx, c.path+"/"+url.PathEscape(id), request)
	if err != nil {
		return nil, fmt.Errorf("updating %s: %w", c.kind, err)
	}

	return decodeOne[T](resp.Body, c.kind)
}

// Delete issues DELETE <path>/<id>. The response body is discarded.
func (c *resourceClient[T, C, U]) Delete(ctx context.Context, id string) error {
	_, err := c.httpClient.Delete(ctx, c.path+"/"+url.PathEscape(id))
	if err != nil {
		return fmt.Errorf("deleting %s: %w", c.kind, err)
	}

	return nil
}

// oneEnvelope is the wire shape of a single-entity success response.
type oneEnvelope[T any] struct {
	Success bool              `json:"success"`
	Data    T                 `json:"data"`
	Err     *catalog.APIError `json:"error"`
}

// listEnvelope is the wire shape of a list success response.
type listEnvelope[T any] struct {
	Success bool              `json:"success"`
	Data    []T               `json:"data"`
	Meta    catalog.Meta      `json:"meta"`
	Err     *catalog.APIError `json:"error"`
}

func decodeOne[T any](body []byte, kind string) (*T, error) {
	var envelope oneEnvelope[T]

	err := json.Unmarshal(body, &envelope)
	if err != nil {
		return nil, fmt.Errorf("parsing %s response: %w", kind, err)
	}

	if !envelope.Success {
		if envelope.Err != nil {
			return nil, envelope.Err
		}

		return nil, fmt.Errorf("parsing %s response: %w", kind, catalog.ErrMalformedEnvelope)
	}

	return &envelope.Data, nil
}

func decodeList[T any](body []byte, kind string) (*catalog.ListResponse[T], error) {
	var envelope listEnvelope[T]

	err := json.Unmarshal(body, &envelope)
	if err != nil {
		return nil, fmt.Errorf("parsing %s list response: %w", kind, err)
	}

	if !envelope.Success {
		if envelope.Err != nil {
			return nil, envelope.Err
		}

		return nil, fmt.Errorf("parsing %s list response: %w", kind, catalog.ErrMalformedEnvelope)
	}

	return &catalog.ListResponse[T]{
		Data: envelope.Data,
		Meta: envelope.Meta,
	}, nil
}
