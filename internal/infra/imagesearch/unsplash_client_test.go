package imagesearch

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ubishop/config"
	"ubishop/internal/domain/service"
	"ubishop/internal/errors"
)

func newTestClient(baseURL string) service.ImageSearcher {
	cfg := &config.Config{ImageSearch: &config.ImageSearchConfig{
		Enabled:   true,
		BaseURL:   baseURL,
		AccessKey: "test-key",
		Timeout:   2 * time.Second,
	}}

	return NewUnsplashClient(cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestUnsplashClient_SearchImage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/search/photos", r.URL.Path)
		assert.Equal(t, "manzana roja", r.URL.Query().Get("query"))
		assert.Equal(t, "1", r.URL.Query().Get("per_page"))
		assert.Equal(t, "Client-ID test-key", r.Header.Get("Authorization"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"results":[{"urls":{"small":"https://img.example/small.jpg","full":"x"}},{"urls":{"small":"second"}}]}`)
	}))
	defer server.Close()

	got, err := newTestClient(server.URL).SearchImage(context.Background(), "  manzana roja ")
	require.NoError(t, err)
	assert.Equal(t, "https://img.example/small.jpg", got)
}

func TestUnsplashClient_NoResults(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = io.WriteString(w, `{"results":[]}`)
	}))
	defer server.Close()

	_, err := newTestClient(server.URL).SearchImage(context.Background(), "nada")
	assert.True(t, errors.Is(err, service.ErrNoImage))
}

func TestUnsplashClient_UpstreamFailures(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{"non-200 status", func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusForbidden)
			_, _ = io.WriteString(w, "Rate Limit Exceeded")
		}},
		{"malformed body", func(w http.ResponseWriter, _ *http.Request) {
			_, _ = io.WriteString(w, `{"results":`)
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(tt.handler)
			defer server.Close()

			_, err := newTestClient(server.URL).SearchImage(context.Background(), "pan")
			assert.True(t, errors.Is(err, ErrUpstream))
		})
	}
}

func TestUnsplashClient_Disabled(t *testing.T) {
	client := NewUnsplashClient(&config.Config{}, slog.New(slog.NewTextHandler(io.Discard, nil)))

	_, err := client.SearchImage(context.Background(), "pan")
	assert.True(t, errors.Is(err, ErrDisabled))
}

func TestUnsplashClient_EmptyQuery(t *testing.T) {
	_, err := newTestClient("http://127.0.0.1:0").SearchImage(context.Background(), "   ")
	assert.True(t, errors.Is(err, service.ErrNoImage))
}

func TestUnsplashClient_QuotaExhaustedFailsFast(t *testing.T) {
	var hits atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		hits.Add(1)
		_, _ = io.WriteString(w, `{"results":[{"urls":{"small":"https://img.example/a.jpg"}}]}`)
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	for i := 0; i < defaultRequestsPerHour; i++ {
		_, err := client.SearchImage(context.Background(), "pan")
		require.NoError(t, err)
	}

	start := time.Now()
	_, err := client.SearchImage(context.Background(), "pan")
	assert.True(t, errors.Is(err, ErrUpstream))
	assert.Less(t, time.Since(start), time.Second)
	assert.EqualValues(t, defaultRequestsPerHour, hits.Load())
}
