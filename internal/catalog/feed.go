package catalog

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"go.uber.org/zap"
)

// Feed loading defaults. The retry delay is fixed, not exponential.
const (
	DefaultFeedTimeout = 8 * time.Second
	DefaultFeedRetries = 2
	defaultRetryDelay  = 500 * time.Millisecond
)

// ErrTimeout reports a feed attempt that exceeded its deadline.
var ErrTimeout = errors.New("catalog: feed timeout")

// ErrMalformed reports a feed body that is not a JSON array of records.
var ErrMalformed = errors.New("catalog: malformed feed")

// StatusError reports a non-success HTTP status from the feed host.
type StatusError struct {
	Status int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("catalog: feed returned status %d", e.Status)
}

// Loader yields the full product list from some backing source.
type Loader interface {
	Load(ctx context.Context) ([]Product, error)
}

// LoaderFunc adapts a function to the Loader interface.
type LoaderFunc func(ctx context.Context) ([]Product, error)

func (f LoaderFunc) Load(ctx context.Context) ([]Product, error) { return f(ctx) }

// Client loads the product feed over HTTP.
//
// Every Load hits the network: requests carry Cache-Control: no-cache and
// nothing is memoized between calls. Each attempt runs under its own
// deadline; failed attempts are followed by a fixed pause before the next
// one, and an attempt already in flight is never cancelled by the retry
// machinery. After the last attempt the most recent error is returned.
type Client struct {
	url     string
	http    *http.Client
	timeout time.Duration
	retries int
	delay   time.Duration
	logger  *zap.Logger
}

// ClientOption adjusts feed client defaults.
type ClientOption func(*Client)

// WithTimeout sets the per-attempt deadline.
func WithTimeout(d time.Duration) ClientOption {
	return func(c *Client) {
		if d > 0 {
			c.timeout = d
		}
	}
}

// WithRetries sets how many additional attempts follow a failed first one.
func WithRetries(n int) ClientOption {
	return func(c *Client) {
		if n >= 0 {
			c.retries = n
		}
	}
}

// WithRetryDelay sets the pause between attempts.
func WithRetryDelay(d time.Duration) ClientOption {
	return func(c *Client) {
		if d >= 0 {
			c.delay = d
		}
	}
}

// WithHTTPClient substitutes the underlying HTTP client.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) {
		if hc != nil {
			c.http = hc
		}
	}
}

// WithLogger attaches a logger for attempt diagnostics.
func WithLogger(l *zap.Logger) ClientOption {
	return func(c *Client) {
		if l != nil {
			c.logger = l
		}
	}
}

// NewClient constructs a feed client for the given URL.
func NewClient(url string, opts ...ClientOption) *Client {
	c := &Client{
		url:     url,
		http:    &http.Client{},
		timeout: DefaultFeedTimeout,
		retries: DefaultFeedRetries,
		delay:   defaultRetryDelay,
		logger:  zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Load fetches and decodes the feed, retrying per the client configuration.
func (c *Client) Load(ctx context.Context) ([]Product, error) {
	attempts := c.retries + 1
	var lastErr error
	for attempt := 1; attempt <= attempts; attempt++ {
		if attempt > 1 {
			select {
			case <-time.After(c.delay):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}
		records, err := c.fetch(ctx)
		if err == nil {
			if attempt > 1 {
				c.logger.Info("feed recovered",
					zap.Int("attempt", attempt),
					zap.Int("records", len(records)))
			}
			return records, nil
		}
		lastErr = err
		c.logger.Warn("feed attempt failed",
			zap.Int("attempt", attempt),
			zap.Int("attempts", attempts),
			zap.Error(err))
	}
	return nil, lastErr
}

func (c *Client) fetch(parent context.Context) ([]Product, error) {
	ctx, cancel := context.WithTimeout(parent, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Cache-Control", "no-cache")

	resp, err := c.http.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, fmt.Errorf("%w: %v", ErrTimeout, err)
		}
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return nil, &StatusError{Status: resp.StatusCode}
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, fmt.Errorf("%w: %v", ErrTimeout, err)
		}
		return nil, err
	}
	return decodeFeed(body)
}

// FileLoader reads the product array from a local JSON file. It backs setups
// where no feed URL is configured.
type FileLoader struct {
	Path string
}

func (l FileLoader) Load(ctx context.Context) ([]Product, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	body, err := os.ReadFile(l.Path)
	if err != nil {
		return nil, fmt.Errorf("catalog: read feed file: %w", err)
	}
	return decodeFeed(body)
}

func decodeFeed(body []byte) ([]Product, error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return nil, fmt.Errorf("%w: expected a top-level array", ErrMalformed)
	}
	var records []Product
	if err := json.Unmarshal(trimmed, &records); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	return records, nil
}
