package transport

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"propmart/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestHTTPClient(t *testing.T, handler http.HandlerFunc) *HTTPClient {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	cfg := &config.Config{}
	cfg.API.BaseURL = server.URL
	cfg.API.Timeout = 5 * time.Second

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	client, err := NewHTTPClient(cfg, logger)
	require.NoError(t, err)

	return client
}

func writeEnvelope(w http.ResponseWriter, status int, env envelope) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(env)
}

func TestHTTPClient_Do_UnwrapsDataPayload(t *testing.T) {
	client := createTestHTTPClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/items", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Accept"))

		writeEnvelope(w, http.StatusOK, envelope{
			Success: true,
			Code:    http.StatusOK,
			Message: "ok",
			Data:    json.RawMessage(`[{"id":"a"},{"id":"b"}]`),
		})
	})

	var out []map[string]string
	err := client.Do(context.Background(), Request{Method: http.MethodGet, Path: "/items"}, &out)

	require.NoError(t, err)
	assert.Len(t, out, 2)
	assert.Equal(t, "a", out[0]["id"])
}

func TestHTTPClient_Do_SendsJSONBody(t *testing.T) {
	client := createTestHTTPClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "asha@example.com", body["email"])

		writeEnvelope(w, http.StatusOK, envelope{Success: true, Code: http.StatusOK})
	})

	err := client.Do(context.Background(), Request{
		Method: http.MethodPost,
		Path:   "/auth/login",
		Body:   map[string]string{"email": "asha@example.com"},
	}, nil)

	require.NoError(t, err)
}

func TestHTTPClient_Do_SendsMultipartForm(t *testing.T) {
	client := createTestHTTPClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(1<<20))
		assert.Equal(t, "2BHK", r.FormValue("title"))

		file, header, err := r.FormFile("images")
		require.NoError(t, err)
		defer file.Close()
		content, err := io.ReadAll(file)
		require.NoError(t, err)
		assert.Equal(t, "front.jpg", header.Filename)
		assert.Equal(t, []byte("jpeg-bytes"), content)

		writeEnvelope(w, http.StatusCreated, envelope{Success: true, Code: http.StatusCreated})
	})

	fields := url.Values{}
	fields.Set("title", "2BHK")

	err := client.Do(context.Background(), Request{
		Method: http.MethodPost,
		Path:   "/properties",
		Form: &Form{
			Fields: fields,
			Files:  []File{{Field: "images", Name: "front.jpg", ContentType: "image/jpeg", Content: []byte("jpeg-bytes")}},
		},
	}, nil)

	require.NoError(t, err)
}

func TestHTTPClient_Do_AttachesBearerToken(t *testing.T) {
	client := createTestHTTPClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer jwt-token", r.Header.Get("Authorization"))
		writeEnvelope(w, http.StatusOK, envelope{Success: true, Code: http.StatusOK})
	})
	client.SetToken("jwt-token")

	err := client.Do(context.Background(), Request{Method: http.MethodGet, Path: "/wishlist"}, nil)

	require.NoError(t, err)
}

func TestHTTPClient_Do_NormalizesServerError(t *testing.T) {
	client := createTestHTTPClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(w, http.StatusNotFound, envelope{
			Success: false,
			Code:    http.StatusNotFound,
			Message: "Property not found.",
			Error:   &errorInfo{Code: "PROPERTY_NOT_FOUND"},
		})
	})

	err := client.Do(context.Background(), Request{Method: http.MethodGet, Path: "/properties/ghost"}, nil)

	require.Error(t, err)
	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, KindNotFound, apiErr.Kind)
	assert.Equal(t, "PROPERTY_NOT_FOUND", apiErr.Code)
	assert.Equal(t, "Property not found.", apiErr.APIMessage())
}

func TestHTTPClient_Do_EnvelopeFailureOn200(t *testing.T) {
	// Some failures arrive with a 2xx status but success=false in the
	// envelope; they must still normalize to an error.
	client := createTestHTTPClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(w, http.StatusOK, envelope{
			Success: false,
			Code:    http.StatusOK,
			Message: "Something went wrong.",
		})
	})

	err := client.Do(context.Background(), Request{Method: http.MethodGet, Path: "/items"}, nil)

	require.Error(t, err)
	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "Something went wrong.", apiErr.APIMessage())
}

func TestHTTPClient_Do_UnparseableBodyGivesEmptyMessage(t *testing.T) {
	client := createTestHTTPClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte("<html>gateway error</html>"))
	})

	err := client.Do(context.Background(), Request{Method: http.MethodGet, Path: "/items"}, nil)

	require.Error(t, err)
	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, KindServer, apiErr.Kind)
	// No parseable server message; slices will substitute their fallback.
	assert.Empty(t, apiErr.APIMessage())
}

func TestHTTPClient_Do_NetworkFailure(t *testing.T) {
	cfg := &config.Config{}
	cfg.API.BaseURL = "http://127.0.0.1:1"
	cfg.API.Timeout = 500 * time.Millisecond

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	client, err := NewHTTPClient(cfg, logger)
	require.NoError(t, err)

	err = client.Do(context.Background(), Request{Method: http.MethodGet, Path: "/items"}, nil)

	require.Error(t, err)
	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, KindNetwork, apiErr.Kind)
}

func TestNewHTTPClient_RejectsRelativeBaseURL(t *testing.T) {
	cfg := &config.Config{}
	cfg.API.BaseURL = "/not-absolute"

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	_, err := NewHTTPClient(cfg, logger)

	require.Error(t, err)
}

func TestHTTPClient_Do_KindMapping(t *testing.T) {
	tests := []struct {
		name   string
		status int
		want   Kind
	}{
		{"bad request", http.StatusBadRequest, KindValidation},
		{"unauthorized", http.StatusUnauthorized, KindAuth},
		{"forbidden", http.StatusForbidden, KindForbidden},
		{"conflict", http.StatusConflict, KindConflict},
		{"server fault", http.StatusBadGateway, KindServer},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := createTestHTTPClient(t, func(w http.ResponseWriter, r *http.Request) {
				writeEnvelope(w, tt.status, envelope{Success: false, Code: tt.status})
			})

			err := client.Do(context.Background(), Request{Method: http.MethodGet, Path: "/x"}, nil)

			var apiErr *Error
			require.ErrorAs(t, err, &apiErr)
			assert.Equal(t, tt.want, apiErr.Kind)
		})
	}
}
