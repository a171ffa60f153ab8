package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/handiism/deckdoctor/internal/apperr"
	"go.uber.org/zap"
)

// DefaultUserAgent is sent when no user agent is configured. Moxfield rejects
// requests that do not look like they come from a browser.
const DefaultUserAgent = "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/124.0 Safari/537.36"

// DefaultMaxBodySize caps how much of a response body is read.
const DefaultMaxBodySize int64 = 32 << 20

// ErrBodyTooLarge is returned when a response body exceeds the client's cap.
var ErrBodyTooLarge = errors.New("response body too large")

// Client wraps HTTP operations for the Moxfield and EDHREC hosts.
//
// Client provides:
//   - Configured User-Agent header
//   - Timeout handling
//   - RemoteFetchError for any non-200 response
//   - JSON decoding of response bodies
//
// Example usage:
//
//	client := NewClient(WithTimeout(20 * time.Second))
//
//	// Fetch a JSON document
//	var page dto.CommanderPage
//	err := client.GetJSON(ctx, "https://json.edhrec.com/pages/commanders/atraxa-praetors-voice.json", &page)
//
//	// Fetch an HTML page
//	html, err := client.GetString(ctx, "https://edhrec.com/articles/atraxa-praetors-voice-commander-deck-tech")
type Client struct {
	httpClient *http.Client
	userAgent  string
	maxBody    int64
	logger     *zap.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithTimeout sets the per-request timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.httpClient.Timeout = d
	}
}

// WithUserAgent sets the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(c *Client) {
		if ua != "" {
			c.userAgent = ua
		}
	}
}

// WithMaxBodySize sets the largest response body Get accepts.
func WithMaxBodySize(n int64) Option {
	return func(c *Client) {
		if n > 0 {
			c.maxBody = n
		}
	}
}

// WithLogger sets the logger used for request tracing.
func WithLogger(logger *zap.Logger) Option {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// NewClient creates a new HTTP client.
//
// The client is configured with:
//   - 30 second timeout
//   - a browser-like User-Agent header
func NewClient(opts ...Option) *Client {
	c := &Client{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		userAgent: DefaultUserAgent,
		maxBody:   DefaultMaxBodySize,
		logger:    zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Get performs a GET request and returns the response body as bytes.
//
// The request includes the configured User-Agent header.
//
// Returns an error if:
//   - The request fails
//   - The response status is not 200 OK (*apperr.RemoteFetchError)
//   - Reading the body fails or it is larger than the size cap (ErrBodyTooLarge)
func (c *Client) Get(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json, text/html;q=0.9, */*;q=0.8")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Debug("request failed", zap.String("url", url), zap.Error(err))
		return nil, err
	}
	defer resp.Body.Close()

	c.logger.Debug("request done",
		zap.String("url", url),
		zap.Int("status", resp.StatusCode),
		zap.Duration("elapsed", time.Since(start)))

	if resp.StatusCode != http.StatusOK {
		return nil, &apperr.RemoteFetchError{
			URL:        url,
			StatusCode: resp.StatusCode,
			Status:     resp.Status,
		}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, c.maxBody+1))
	if err != nil {
		return nil, err
	}
	if int64(len(body)) > c.maxBody {
		return nil, fmt.Errorf("fetch %s: %w (over %d bytes)", url, ErrBodyTooLarge, c.maxBody)
	}
	return body, nil
}

// GetString performs a GET request and returns the response body as a string.
//
// This is a convenience wrapper around Get for fetching HTML pages.
func (c *Client) GetString(ctx context.Context, url string) (string, error) {
	body, err := c.Get(ctx, url)
	if err != nil {
		return "", err
	}
	return string(body), nil
}

// GetJSON performs a GET request and decodes the JSON body into v.
func (c *Client) GetJSON(ctx context.Context, url string, v any) error {
	body, err := c.Get(ctx, url)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(body, v); err != nil {
		return fmt.Errorf("decode %s: %w", url, err)
	}
	return nil
}

// CloseIdleConnections closes keep-alive connections held by the client.
func (c *Client) CloseIdleConnections() {
	c.httpClient.CloseIdleConnections()
}
