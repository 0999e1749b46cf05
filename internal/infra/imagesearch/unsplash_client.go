// Package imagesearch looks up product display images through the Unsplash search API.
package imagesearch

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"ubishop/config"
	"ubishop/internal/domain/service"
	"ubishop/internal/errors"
)

const (
	searchPath = "/search/photos"
	// Unsplash demo applications are limited to 50 requests per hour.
	defaultRequestsPerHour = 50
	maxErrorBodyBytes      = 512
)

// ErrDisabled is returned when image search is not configured.
var ErrDisabled = errors.New("image search disabled")

// ErrUpstream wraps any failure talking to the search API.
var ErrUpstream = errors.New("image search upstream failure")

type unsplashClient struct {
	baseURL    string
	accessKey  string
	enabled    bool
	httpClient *http.Client
	limiter    *rate.Limiter
	logger     *slog.Logger
}

// searchResponse is the subset of the search/photos payload we read.
type searchResponse struct {
	Results []struct {
		URLs struct {
			Small string `json:"small"`
		} `json:"urls"`
	} `json:"results"`
}

// NewUnsplashClient creates an ImageSearcher backed by the Unsplash API.
func NewUnsplashClient(cfg *config.Config, logger *slog.Logger) service.ImageSearcher {
	searchCfg := cfg.ImageSearch
	if searchCfg == nil {
		searchCfg = &config.ImageSearchConfig{}
	}

	return &unsplashClient{
		baseURL:   strings.TrimRight(searchCfg.BaseURL, "/"),
		accessKey: searchCfg.AccessKey,
		enabled:   searchCfg.Enabled && searchCfg.AccessKey != "",
		httpClient: &http.Client{
			Timeout: searchCfg.Timeout,
		},
		limiter: rate.NewLimiter(rate.Every(time.Hour/defaultRequestsPerHour), defaultRequestsPerHour),
		logger:  logger,
	}
}

// SearchImage returns the small rendition URL of the first photo matching query.
func (c *unsplashClient) SearchImage(ctx context.Context, query string) (string, error) {
	if !c.enabled {
		return "", ErrDisabled
	}

	query = strings.TrimSpace(query)
	if query == "" {
		return "", service.ErrNoImage
	}

	// Waiting for a token could outlast the request; report the quota instead.
	if !c.limiter.Allow() {
		return "", errors.Wrap(ErrUpstream, "hourly quota exhausted")
	}

	params := url.Values{}
	params.Set("query", query)
	params.Set("per_page", "1")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+searchPath+"?"+params.Encode(), nil)
	if err != nil {
		return "", errors.WithStack(err)
	}
	req.Header.Set("Authorization", "Client-ID "+c.accessKey)
	req.Header.Set("Accept-Version", "v1")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", errors.Wrapf(ErrUpstream, "request: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyBytes))
		c.logger.Warn("image search returned non-200",
			slog.Int("status", resp.StatusCode),
			slog.String("body", string(body)),
		)

		return "", errors.Wrapf(ErrUpstream, "status %d", resp.StatusCode)
	}

	var payload searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return "", errors.Wrapf(ErrUpstream, "decode: %v", err)
	}

	if len(payload.Results) == 0 || payload.Results[0].URLs.Small == "" {
		return "", service.ErrNoImage
	}

	return payload.Results[0].URLs.Small, nil
}
