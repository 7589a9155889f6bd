package http_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cathttp "github.com/dwellhq/homecat/internal/http"
	"github.com/dwellhq/homecat/pkg/catalog"
)

// MockLogger for testing.
type MockLogger struct {
	logs []map[string]interface{}
}

func (l *MockLogger) Debug(msg string, fields map[string]interface{}) {
	l.logs = append(l.logs, map[string]interface{}{"level": "debug", "msg": msg, "fields": fields})
}

func (l *MockLogger) Info(msg string, fields map[string]interface{}) {
	l.logs = append(l.logs, map[string]interface{}{"level": "info", "msg": msg, "fields": fields})
}

func (l *MockLogger) Warn(msg string, fields map[string]interface{}) {
	l.logs = append(l.logs, map[string]interface{}{"level": "warn", "msg": msg, "fields": fields})
}

func (l *MockLogger) Error(msg string, fields map[string]interface{}) {
	l.logs = append(l.logs, map[string]interface{}{"level": "error", "msg": msg, "fields": fields})
}

//nolint:funlen // Test functions can be longer for comprehensive testing
func TestClient_Do(t *testing.T) {
	t.Parallel()
	t.Run("successful request", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "/v1/homes", request.URL.Path)
			assert.Equal(t, "GET", request.Method)
			assert.Equal(t, "Bearer test-token", request.Header.Get("Authorization"))
			assert.Equal(t, "application/json", request.Header.Get("Accept"))

			response := map[string]interface{}{"success": true, "data": []string{}}
			_ = json.NewEncoder(writer).Encode(response)
		}))
		defer server.Close()

		client := cathttp.NewClient(server.URL, "test-token")

		req := &cathttp.Request{
			Method: "GET",
			Path:   "/v1/homes",
		}

		resp, err := client.Do(context.Background(), req)
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)

		var result map[string]interface{}

		err = json.Unmarshal(resp.Body, &result)
		require.NoError(t, err)
		assert.Equal(t, true, result["success"])
	})

	t.Run("no authorization header without token", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Empty(t, request.Header.Get("Authorization"))
			writer.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		client := cathttp.NewClient(server.URL, "")

		resp, err := client.Get(context.Background(), "/v1/homes", nil)
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)
	})

	t.Run("request with query parameters", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "/v1/homes", request.URL.Path)
			assert.Equal(t, "page=2&pageSize=10", request.URL.RawQuery)
			writer.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		client := cathttp.NewClient(server.URL, "")

		req := &cathttp.Request{
			Method: "GET",
			Path:   "/v1/homes",
			Query:  url.Values{"page": []string{"2"}, "pageSize": []string{"10"}},
		}

		resp, err := client.Do(context.Background(), req)
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)
	})

	t.Run("request with body", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "application/json", request.Header.Get("Content-Type"))

			var body map[string]string

			err := json.NewDecoder(request.Body).Decode(&body)
			require.NoError(t, err)
			assert.Equal(t, "Seaside Villa", body["name"])

			writer.WriteHeader(http.StatusCreated)
		}))
		defer server.Close()

		client := cathttp.NewClient(server.URL, "")

		resp, err := client.Post(context.Background(), "/v1/homes", map[string]string{"name": "Seaside Villa"})
		require.NoError(t, err)
		assert.Equal(t, http.StatusCreated, resp.StatusCode)
	})

	t.Run("failure envelope becomes APIError", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			writer.WriteHeader(http.StatusNotFound)
			_, _ = writer.Write([]byte(`{"success":false,"error":{"message":"home not found"}}`))
		}))
		defer server.Close()

		client := cathttp.NewClient(server.URL, "")

		resp, err := client.Get(context.Background(), "/v1/homes/missing", nil)
		require.Error(t, err)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)

		apiErr := &catalog.APIError{}
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, http.StatusNotFound, apiErr.Status)
		assert.Equal(t, "home not found", apiErr.Message)
		assert.True(t, catalog.IsNotFound(err))
	})

	t.Run("validation envelope carries details", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			writer.WriteHeader(http.StatusUnprocessableEntity)
			_, _ = writer.Write([]byte(`{"success":false,"error":{"message":"validation failed","details":{"name":"is required"}}}`))
		}))
		defer server.Close()

		client := cathttp.NewClient(server.URL, "")

		_, err := client.Post(context.Background(), "/v1/homes", map[string]string{})
		require.Error(t, err)

		apiErr := &catalog.APIError{}
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, "is required", apiErr.Details["name"])
		assert.True(t, catalog.IsValidation(err))
	})

	t.Run("malformed failure body is a transport error", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			writer.WriteHeader(http.StatusBadGateway)
			_, _ = writer.Write([]byte("<html>bad gateway</html>"))
		}))
		defer server.Close()

		client := cathttp.NewClient(server.URL, "", cathttp.WithRetryConfig(0, 0, 0))

		_, err := client.Get(context.Background(), "/v1/homes", nil)
		require.Error(t, err)
		assert.ErrorIs(t, err, catalog.ErrMalformedEnvelope)
		assert.False(t, catalog.IsNotFound(err))
	})

	t.Run("custom headers and user agent", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "homecat-test", request.Header.Get("User-Agent"))
			assert.Equal(t, "value", request.Header.Get("X-Custom"))
			writer.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		client := cathttp.NewClient(server.URL, "", cathttp.WithUserAgent("homecat-test"))

		req := &cathttp.Request{
			Method:  "GET",
			Path:    "/v1/homes",
			Headers: map[string]string{"X-Custom": "value"},
		}

		resp, err := client.Do(context.Background(), req)
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)
	})

	t.Run("debug logging", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			writer.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		logger := &MockLogger{}
		client := cathttp.NewClient(server.URL, "", cathttp.WithLogger(logger), cathttp.WithDebug(true))

		_, err := client.Get(context.Background(), "/v1/homes", nil)
		require.NoError(t, err)
		assert.Len(t, logger.logs, 2)
		assert.Equal(t, "HTTP Request", logger.logs[0]["msg"])
		assert.Equal(t, "HTTP Response", logger.logs[1]["msg"])
	})

	t.Run("retries transient failures", func(t *testing.T) {
		t.Parallel()

		attempts := 0
		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			attempts++
			if attempts == 1 {
				writer.WriteHeader(http.StatusServiceUnavailable)

				return
			}

			writer.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		client := cathttp.NewClient(server.URL, "", cathttp.WithRetryConfig(2, 0, 0))

		resp, err := client.Get(context.Background(), "/v1/homes", nil)
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)
		assert.Equal(t, 2, attempts)
	})
}
