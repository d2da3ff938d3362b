package vacances

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

// DefaultTimeout bounds a single dataset request made by HTTPClient
const DefaultTimeout = 10 * time.Second

// Response is the part of an HTTP response the parser needs
type Response struct {
	StatusCode int
	Body       []byte
}

// Getter performs a single GET request
type Getter interface {
	Get(ctx context.Context, url string) (*Response, error)
}

// GetterFunc adapts a function to the Getter interface
type GetterFunc func(ctx context.Context, url string) (*Response, error)

// Get calls f(ctx, url)
func (f GetterFunc) Get(ctx context.Context, url string) (*Response, error) {
	return f(ctx, url)
}

// HTTPClient is the net/http backed Getter
type HTTPClient struct {
	client *http.Client
}

// NewHTTPClient returns an HTTPClient with the given request timeout.
// A zero timeout uses DefaultTimeout.
func NewHTTPClient(timeout time.Duration) *HTTPClient {
	if timeout == 0 {
		timeout = DefaultTimeout
	}
	return &HTTPClient{client: &http.Client{Timeout: timeout}}
}

// NewHTTPClientFrom wraps an existing *http.Client
func NewHTTPClientFrom(c *http.Client) *HTTPClient {
	return &HTTPClient{client: c}
}

// Get issues a body-less GET and reads the whole response body
func (c *HTTPClient) Get(ctx context.Context, url string) (*Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("error making request to holiday dataset: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("error reading response body: %w", err)
	}

	return &Response{StatusCode: resp.StatusCode, Body: body}, nil
}
