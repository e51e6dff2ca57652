package dotabuff

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
	defaultBaseURL = "https://www.dotabuff.com"
	defaultTimeout = 10 * time.Second
	maxBodyBytes   = 4 << 20

	// Dotabuff throttles the Go default agent with 429s. Every request must
	// identify itself.
	defaultUserAgent = "dota-matchups-cli/1.0 (counter lookup tool)"
)

type ClientConfig struct {
	HTTPClient *http.Client
	BaseURL    string
	UserAgent  string
	Timeout    time.Duration
	MaxRetries int
	Logger     *logging.Logger
}

// Client fetches hero counter pages from Dotabuff, keyed by the hero's name
// slug.
type Client struct {
	httpClient *http.Client
	baseURL    string
	userAgent  string
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

	userAgent := strings.TrimSpace(cfg.UserAgent)
	if userAgent == "" {
		userAgent = defaultUserAgent
	}

	return &Client{
		httpClient: httpClient,
		baseURL:    baseURL,
		userAgent:  userAgent,
		retry:      resilience.RetryConfig{MaxRetries: cfg.MaxRetries, Backoff: time.Second},
		logger:     logger,
	}
}

func (c *Client) FetchMatchups(ctx context.Context, subject hero.Hero) ([]byte, error) {
	fullURL := fmt.Sprintf("%s/heroes/%s/counters", c.baseURL, hero.Slug(subject.Name))
	c.logger.DebugContext(ctx, "fetching counters page", "url", fullURL)

	var raw []byte
	err := resilience.Retry(ctx, c.retry, func() (bool, error) {
		var attemptErr error
		var retryable bool
		raw, retryable, attemptErr = c.executeRequest(ctx, fullURL)
		return retryable, attemptErr
	})
	if err != nil {
		c.logger.WarnContext(ctx, "dotabuff request failed", "url", fullURL, "error", err)
		return nil, err
	}

	return raw, nil
}

func (c *Client) executeRequest(ctx context.Context, fullURL string) ([]byte, bool, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return nil, false, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("accept", "text/html")

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

	if len(bytes.TrimSpace(raw)) == 0 {
		return nil, false, fmt.Errorf("%w: empty page", usecase.ErrNotFound)
	}

	return raw, false, nil
}
