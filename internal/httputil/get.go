// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package httputil provides the HTTP GET capability used by the fetcher.
package httputil

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// MaxBodyBytes caps how much of a response body is read.
var MaxBodyBytes int64 = 32 << 20

// Getter performs a GET and returns the status code and full body.
// A non-2xx status is not an error at this layer; callers decide.
type Getter interface {
	Get(ctx context.Context, rawURL string, params url.Values) (status int, body []byte, err error)
}

// Client is the net/http implementation of Getter.
type Client struct {
	// HTTP is the underlying client. Nil means http.DefaultClient.
	HTTP *http.Client

	// Timeout bounds each request, including reading the body. Zero means
	// only the HTTP client's own timeout applies.
	Timeout time.Duration

	// UserAgent is sent when non-empty.
	UserAgent string
}

// NewClient returns a Client with a dedicated http.Client using timeout.
func NewClient(timeout time.Duration, userAgent string) *Client {
	return &Client{
		HTTP:      &http.Client{Timeout: timeout},
		Timeout:   timeout,
		UserAgent: userAgent,
	}
}

// Get issues a GET to rawURL with params encoded as the query string.
// Parameters already present on rawURL are kept.
func (c *Client) Get(ctx context.Context, rawURL string, params url.Values) (int, []byte, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return 0, nil, fmt.Errorf("parsing URL %q: %w", rawURL, err)
	}
	if len(params) > 0 {
		q := u.Query()
		for k, vs := range params {
			for _, v := range vs {
				q.Add(k, v)
			}
		}
		u.RawQuery = q.Encode()
	}

	if c.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.Timeout)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return 0, nil, fmt.Errorf("creating request: %w", err)
	}
	if c.UserAgent != "" {
		req.Header.Set("User-Agent", c.UserAgent)
	}
	req.Header.Set("Accept", "application/json")

	client := c.HTTP
	if client == nil {
		client = http.DefaultClient
	}

	resp, err := client.Do(req)
	if err != nil {
		return 0, nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, MaxBodyBytes))
	if err != nil {
		return resp.StatusCode, nil, fmt.Errorf("reading response body: %w", err)
	}
	return resp.StatusCode, body, nil
}
