package httpfetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/renato0307/sitegrab/internal/domain"
	"github.com/renato0307/sitegrab/internal/ports"
)

// Default configuration values
const (
	DefaultUserAgent    = "sitegrab/1.0"
	DefaultTimeout      = 30 * time.Second
	DefaultMaxBodyBytes = 64 * 1024 * 1024
)

// ErrBodyTooLarge is returned when a response body exceeds Config.MaxBodyBytes
var ErrBodyTooLarge = domain.ErrBodyTooLarge

// Config holds the HTTP fetcher settings
type Config struct {
	MaxBodyBytes int64
	Timeout      time.Duration
	UserAgent    string
}

// WithDefaults returns a copy of the config with defaults applied to zero-value fields
func (c Config) WithDefaults() Config {
	if c.MaxBodyBytes <= 0 {
		c.MaxBodyBytes = DefaultMaxBodyBytes
	}
	if c.Timeout <= 0 {
		c.Timeout = DefaultTimeout
	}
	if c.UserAgent == "" {
		c.UserAgent = DefaultUserAgent
	}
	return c
}

// Client implements ports.Fetcher using net/http
type Client struct {
	client       *http.Client
	maxBodyBytes int64
	userAgent    string
}

var _ ports.Fetcher = (*Client)(nil)

// NewClient creates a fetcher. A nil httpClient gets one with cfg.Timeout.
func NewClient(httpClient *http.Client, cfg Config) *Client {
	cfg = cfg.WithDefaults()
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}
	return &Client{
		client:       httpClient,
		maxBodyBytes: cfg.MaxBodyBytes,
		userAgent:    cfg.UserAgent,
	}
}

// Fetch downloads url. Transport failures return *domain.FetchError with no
// status code; any completed response, 2xx or not, is returned as a result.
func (c *Client) Fetch(ctx context.Context, url string) (*ports.FetchResult, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return nil, &domain.FetchError{URL: url, Err: fmt.Errorf("new request: %w", err)}
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, &domain.FetchError{URL: url, Err: err}
	}
	defer resp.Body.Close()

	result := &ports.FetchResult{
		ContentType: resp.Header.Get("Content-Type"),
		StatusCode:  resp.StatusCode,
	}
	if !result.OK() {
		// Drain so the connection can be reused
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, c.maxBodyBytes))
		return result, nil
	}

	// Read one byte past the limit to detect truncation
	body, err := io.ReadAll(io.LimitReader(resp.Body, c.maxBodyBytes+1))
	if err != nil {
		return nil, &domain.FetchError{URL: url, StatusCode: resp.StatusCode, Err: fmt.Errorf("read body: %w", err)}
	}
	if int64(len(body)) > c.maxBodyBytes {
		return nil, &domain.FetchError{URL: url, StatusCode: resp.StatusCode, Err: ErrBodyTooLarge}
	}

	result.Body = body
	return result, nil
}
