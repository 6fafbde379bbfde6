package openshock

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"
)

const (
	// DefaultBaseURL is the OpenShock API base URL.
	DefaultBaseURL = "https://api.openshock.app"

	// DefaultTimeout is the default HTTP request timeout.
	DefaultTimeout = 30 * time.Second

	// Version is the library version, reported in the User-Agent header.
	Version = "1.0.0"

	// tokenHeader carries the raw API key on authenticated requests.
	tokenHeader = "OpenShockToken"
)

// defaultUserAgent identifies the library on every request.
var defaultUserAgent = "go-openshock/" + Version

// Client is an OpenShock API client.
type Client struct {
	baseURL    string
	apiKey     string
	userAgent  string
	httpClient *http.Client
	logger     *slog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL sets a custom base URL for the API.
// A trailing slash is tolerated and stripped during request composition.
func WithBaseURL(url string) Option {
	return func(c *Client) {
		c.baseURL = url
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		c.httpClient = client
	}
}

// WithTimeout sets the HTTP request timeout.
// This option can be applied in any order relative to other options.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if c.httpClient == nil {
			c.httpClient = &http.Client{}
		}
		c.httpClient.Timeout = timeout
	}
}

// WithUserAgent overrides the User-Agent header sent on every request.
func WithUserAgent(ua string) Option {
	return func(c *Client) {
		c.userAgent = ua
	}
}

// NewClient creates a new OpenShock API client.
// Returns ErrEmptyAPIKey if apiKey is empty. No network activity occurs
// until the first API call.
func NewClient(apiKey string, opts ...Option) (*Client, error) {
	if apiKey == "" {
		return nil, ErrEmptyAPIKey
	}

	c := &Client{
		baseURL:   DefaultBaseURL,
		apiKey:    apiKey,
		userAgent: defaultUserAgent,
		httpClient: &http.Client{
			Timeout: DefaultTimeout,
		},
	}

	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

// do performs an HTTP request and returns the response body.
// The API key header is attached only when authed is set; the version
// endpoint is the one public route.
func (c *Client) do(ctx context.Context, method, path string, body any, authed bool) ([]byte, error) {
	url := trimSlash(c.baseURL) + path

	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request body: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	if authed {
		req.Header.Set(tokenHeader, c.apiKey)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, handleError(resp.StatusCode, respBody)
	}

	return respBody, nil
}

// get performs a GET request.
func (c *Client) get(ctx context.Context, path string, authed bool) ([]byte, error) {
	return c.do(ctx, http.MethodGet, path, nil, authed)
}

// post performs a POST request with a JSON body.
func (c *Client) post(ctx context.Context, path string, body any, authed bool) ([]byte, error) {
	return c.do(ctx, http.MethodPost, path, body, authed)
}

// handleError converts an HTTP error response to an *APIError.
// If the body is JSON carrying a "message" field, that message is used;
// otherwise the raw body stands in. Body parse failures are swallowed so
// the remapping can never mask the original status.
func handleError(statusCode int, body []byte) error {
	apiErr := &APIError{
		StatusCode: statusCode,
		Message:    string(body),
		Body:       body,
	}

	var errResp struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &errResp); err == nil && errResp.Message != "" {
		apiErr.Message = errResp.Message
	}

	return apiErr
}

// trimSlash removes a single trailing slash so path suffixes concatenate
// cleanly with both "https://host" and "https://host/" base URLs.
func trimSlash(s string) string {
	if len(s) > 0 && s[len(s)-1] == '/' {
		return s[:len(s)-1]
	}
	return s
}
