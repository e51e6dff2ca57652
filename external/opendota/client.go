package opendota

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/GabeGustafson/dota-matchups-CLI/internal/domain/hero"
	"github.com/GabeGustafson/dota-matchups-CLI/internal/platform/logging"
	"github.com/GabeGustafson/dota-matchups-CLI/internal/platform/resilience"
	"github.com/GabeGustafson/dota-matchups-CLI/internal/usecase"
)

const (
	defaultBaseURL = "https://api.opendota.com/api"
	defaultTimeout = 10 * time.Second
	maxBodyBytes   = 2 << 20
)

type ClientConfig struct {
	HTTPClient *http.Client
	BaseURL    string
	Timeout    time.Duration
	MaxRetries int
	Logger     *logging.Logger
}

// Client fetches raw matchup payloads from the OpenDota API, keyed by
// numeric hero id. No authentication.
type Client struct {
	httpClient *http.Client
	baseURL    string
	retry      resilience.RetryConfig
	logger     *logging.Logger
}

func NewClient(cfg ClientConfig) *Client {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}
	if httpClient.Timeout <= 0 {
		httpClient.Timeout = defaultTimeout
	}

	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	return &Client{
		httpClient: httpClient,
		baseURL:    baseURL,
		retry:      resilience.RetryConfig{MaxRetries: cfg.MaxRetries, Backoff: time.Second},
		logger:     logger,
	}
}

func (c *Client) FetchMatchups(ctx context.Context, subject hero.Hero) ([]byte, error) {
	fullURL := fmt.Sprintf("%s/heroes/%d/matchups", c.baseURL, subject.ID)
	c.logger.DebugContext(ctx, "fetching matchups", "url", fullURL)

	var raw []byte
	err := resilience.Retry(ctx, c.retry, func() (bool, error) {
		var attemptErr error
		var retryable bool
		raw, retryable, attemptErr = c.executeRequest(ctx, fullURL)
		return retryable, attemptErr
	})
	if err != nil {
		c.logger.WarnContext(ctx, "opendota request failed", "url", fullURL, "error", err)
		return nil, err
	}

	return raw, nil
}

func (c *Client) executeRequest(ctx context.Context, fullURL string) ([]byte, bool, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return nil, false, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, true, fmt.Errorf("%w: %v", usecase.ErrNetwork, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, true, fmt.Errorf("%w: read response body: %v", usecase.ErrNetwork, err)
	}

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, false, fmt.Errorf("%w: status=%d", usecase.ErrNotFound, resp.StatusCode)
	case resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500:
		return nil, true, fmt.Errorf("%w: status=%d", usecase.ErrNetwork, resp.StatusCode)
	case resp.StatusCode < 200 || resp.StatusCode >= 300:
		return nil, false, fmt.Errorf("%w: status=%d", usecase.ErrNetwork, resp.StatusCode)
	}

	// OpenDota answers some unknown ids with an empty or null body instead of
	// a 404.
	if body := bytes.TrimSpace(raw); len(body) == 0 || bytes.Equal(body, []byte("null")) {
		return nil, false, fmt.Errorf("%w: empty response body", usecase.ErrNotFound)
	}

	return raw, false, nil
}
