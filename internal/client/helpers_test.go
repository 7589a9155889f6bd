package client_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dwellhq/homecat/internal/client"
	"github.com/dwellhq/homecat/pkg/catalog"
)

// newTestClient wires a catalog client against an httptest server running
// the given handler. The server is torn down with the test.
func newTestClient(t *testing.T, handler http.Handler) *client.Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	apiClient, err := client.New(&catalog.Config{Endpoint: server.URL})
	require.NoError(t, err)

	return apiClient
}

func respondOne(t *testing.T, w http.ResponseWriter, data interface{}) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")

	err := json.NewEncoder(w).Encode(map[string]interface{}{
		"success": true,
		"data":    data,
	})
	require.NoError(t, err)
}

func respondList(t *testing.T, w http.ResponseWriter, data interface{}, meta catalog.Meta) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")

	err := json.NewEncoder(w).Encode(map[string]interface{}{
		"success": true,
		"data":    data,
		"meta":    meta,
	})
	require.NoError(t, err)
}

func respondError(t *testing.T, w http.ResponseWriter, status int, message string, details map[string]string) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	body := map[string]interface{}{"message": message}
	if len(details) > 0 {
		body["details"] = details
	}

	err := json.NewEncoder(w).Encode(map[string]interface{}{
		"success": false,
		"error":   body,
	})
	require.NoError(t, err)
}
