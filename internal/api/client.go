package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/aryankumar/blox/internal/util"
)

const (
	// cookieName is the session cookie every authenticated endpoint expects
	cookieName = ".ROBLOSECURITY"

	// csrfHeader carries the anti-forgery token for state-changing requests
	csrfHeader = "x-csrf-token"

	// defaultDomain is appended to the service name to build the host
	defaultDomain = "roblox.com"

	// defaultMaxBodySize caps how much of a response is buffered
	defaultMaxBodySize = 256 << 20

	defaultUserAgent = "blox-cli"

	acceptJSON = "application/json"
	acceptAny  = "*/*"
)

// Client talks to the platform web APIs on behalf of one account
// It is safe for concurrent use
type Client struct {
	cookie     string
	baseURL    string
	userAgent  string
	httpClient *http.Client
	logger     *slog.Logger
	maxBody    int64

	// mu protects csrfToken
	mu        sync.Mutex
	csrfToken string
}

// Option configures a Client
type Option func(*Client)

// WithBaseURL routes every service to baseURL + "/" + service instead of
// https://<service>.roblox.com
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.baseURL = strings.TrimRight(baseURL, "/")
	}
}

// WithHTTPClient sets the underlying HTTP client
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		if httpClient != nil {
			c.httpClient = httpClient
		}
	}
}

// WithLogger sets the logger used for request tracing
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithTimeout bounds each request made by the default HTTP client
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if timeout > 0 {
			c.httpClient = &http.Client{Timeout: timeout}
		}
	}
}

// WithMaxBodySize caps the response size; larger bodies fail with util.ErrTooLarge
func WithMaxBodySize(n int64) Option {
	return func(c *Client) {
		if n > 0 {
			c.maxBody = n
		}
	}
}

// WithUserAgent overrides the User-Agent header
func WithUserAgent(userAgent string) Option {
	return func(c *Client) {
		if userAgent != "" {
			c.userAgent = userAgent
		}
	}
}

// NewClient creates a client authenticated with the given session cookie
// An empty cookie produces an anonymous client for public endpoints
func NewClient(cookie string, opts ...Option) *Client {
	c := &Client{
		cookie:     strings.TrimPrefix(strings.TrimSpace(cookie), cookieName+"="),
		userAgent:  defaultUserAgent,
		httpClient: &http.Client{Timeout: 30 * time.Second},
		logger:     slog.Default(),
		maxBody:    defaultMaxBodySize,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Authenticated reports whether the client carries a session cookie
func (c *Client) Authenticated() bool {
	return c.cookie != ""
}

// endpoint builds the absolute URL of path on the given service host
func (c *Client) endpoint(service, path string) string {
	if c.baseURL != "" {
		return c.baseURL + "/" + service + path
	}
	return "https://" + service + "." + defaultDomain + path
}

// Fetch downloads the raw body at an absolute URL, such as a CDN link
// returned by another endpoint
func (c *Client) Fetch(ctx context.Context, url string) ([]byte, error) {
	return c.do(ctx, http.MethodGet, url, acceptAny, nil)
}

// get decodes the JSON response of a GET request into result
func (c *Client) get(ctx context.Context, service, path string, result any) error {
	body, err := c.do(ctx, http.MethodGet, c.endpoint(service, path), acceptJSON, nil)
	if err != nil {
		return err
	}
	return decode(body, result)
}

// post sends requestBody as JSON and decodes the response into result
// result may be nil for endpoints that answer with an empty object
func (c *Client) post(ctx context.Context, service, path string, requestBody, result any) error {
	body, err := c.do(ctx, http.MethodPost, c.endpoint(service, path), acceptJSON, requestBody)
	if err != nil {
		return err
	}
	if result == nil {
		return nil
	}
	return decode(body, result)
}

// do executes a request, performing the CSRF handshake once when the
// server asks for a token
func (c *Client) do(ctx context.Context, method, url, accept string, requestBody any) ([]byte, error) {
	var encoded []byte
	if requestBody != nil {
		var err error
		encoded, err = json.Marshal(requestBody)
		if err != nil {
			return nil, fmt.Errorf("encoding request body: %w", err)
		}
	}

	for attempt := 0; ; attempt++ {
		response, err := c.send(ctx, method, url, accept, encoded)
		if err != nil {
			return nil, err
		}

		body, err := util.ReadAllLimit(response.Body, c.maxBody)
		response.Body.Close()
		if err != nil {
			return nil, fmt.Errorf("reading response body from %s: %w", url, err)
		}

		if response.StatusCode >= 200 && response.StatusCode < 300 {
			return body, nil
		}

		token := response.Header.Get(csrfHeader)
		if response.StatusCode == http.StatusForbidden && token != "" && attempt == 0 {
			c.logger.Debug("refreshing csrf token", "url", url)
			c.setCSRFToken(token)
			continue
		}

		return nil, parseError(response, body)
	}
}

// send performs a single HTTP round trip
// The caller is responsible for closing the response body
func (c *Client) send(ctx context.Context, method, url, accept string, body []byte) (*http.Response, error) {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	request, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	request.Header.Set("Accept", accept)
	request.Header.Set("User-Agent", c.userAgent)
	if body != nil {
		request.Header.Set("Content-Type", "application/json")
	}
	if c.cookie != "" {
		request.AddCookie(&http.Cookie{Name: cookieName, Value: c.cookie})
	}
	if method != http.MethodGet {
		if token := c.getCSRFToken(); token != "" {
			request.Header.Set(csrfHeader, token)
		}
	}

	start := time.Now()
	response, err := c.httpClient.Do(request)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", method, url, err)
	}

	c.logger.Debug("api request",
		"method", method,
		"url", url,
		"status", response.StatusCode,
		"duration", time.Since(start))

	return response, nil
}

func (c *Client) getCSRFToken() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.csrfToken
}

func (c *Client) setCSRFToken(token string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.csrfToken = token
}

// decode unmarshals a JSON body, naming the target type on failure
func decode(body []byte, result any) error {
	if err := json.Unmarshal(body, result); err != nil {
		return fmt.Errorf("decoding %T: %w", result, err)
	}
	return nil
}
