// ABOUTME: Base HTTP client for the admin backend's JSON endpoints
// ABOUTME: Attaches the CSRF header and normalizes transport-level failures

package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"
)

// CSRFHeader is the request header the backend reads the CSRF token from.
const CSRFHeader = "X-CSRFToken"

// ErrTransport marks network failures and non-2xx HTTP statuses. The UI
// collapses everything wrapping it into one generic connection-error line.
var ErrTransport = errors.New("transport failure")

// APIError is a business-level failure: the server answered 2xx with
// success:false and a reason.
type APIError struct {
	Reason string
}

func (e *APIError) Error() string {
	if e.Reason == "" {
		return "server reported failure"
	}
	return e.Reason
}

// Client talks to the admin backend. All methods are safe for use from a
// single goroutine; the console issues every call from its update loop.
type Client struct {
	baseURL   string
	csrfToken string
	http      *http.Client
	logger    *slog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client, mainly for tests.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.http = h }
}

// WithCSRFToken sets the token sent in the X-CSRFToken header.
func WithCSRFToken(token string) Option {
	return func(c *Client) { c.csrfToken = token }
}

// WithTimeout sets the per-request timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.http.Timeout = d
	}
}

// WithLogger sets the logger used for request diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) { c.logger = logger.With("component", "api") }
}

// New creates a client for the backend at baseURL (scheme://host[:port]).
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 15 * time.Second},
		logger:  slog.Default().With("component", "api"),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BaseURL returns the configured backend URL.
func (c *Client) BaseURL() string { return c.baseURL }

// getJSON issues a GET and decodes the 2xx body into out.
func (c *Client) getJSON(ctx context.Context, path string, query url.Values, out any) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	return c.do(req, out)
}

// postJSON issues a POST with a JSON body and decodes the 2xx body into out.
func (c *Client) postJSON(ctx context.Context, path string, body, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("marshaling request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(req, out)
}

func (c *Client) do(req *http.Request, out any) error {
	req.Header.Set("Accept", "application/json")
	if c.csrfToken != "" {
		req.Header.Set(CSRFHeader, c.csrfToken)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Debug("request failed", "url", req.URL.String(), "error", err)
		return fmt.Errorf("%w: %v", ErrTransport, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// Drain so the connection can be reused.
		io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
		c.logger.Debug("request rejected", "url", req.URL.String(), "status", resp.StatusCode)
		return fmt.Errorf("%w: server returned status %d", ErrTransport, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: parsing response: %v", ErrTransport, err)
	}
	return nil
}
