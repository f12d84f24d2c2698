package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/hashicorp/go-hclog"
)

// apiPrefix is prepended to every request path.
const apiPrefix = "/api"

// Client is the HTTP API client.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     hclog.Logger
}

// Option configures the API client.
type Option func(*Client)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		if client != nil {
			c.httpClient = client
		}
	}
}

// WithTimeout sets a timeout on the underlying HTTP client.
// No timeout is applied unless this option is given.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		hc := *c.httpClient
		hc.Timeout = timeout
		c.httpClient = &hc
	}
}

// WithLogger sets the logger used for request tracing.
func WithLogger(logger hclog.Logger) Option {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// New creates a new API client for the given server origin.
func New(baseURL string, opts ...Option) (*Client, error) {
	if baseURL == "" {
		return nil, ErrMissingBaseURL
	}

	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{},
		logger:     hclog.NewNullLogger(),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

// BaseURL returns the server origin the client was created with.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// PostWithoutToken sends an unauthenticated POST with a JSON payload.
func (c *Client) PostWithoutToken(ctx context.Context, path string, payload any) (*Response, error) {
	resp, err := c.do(ctx, http.MethodPost, path, "", nil, payload)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	return readResponse(resp)
}

// GetWithoutToken sends an unauthenticated GET.
func (c *Client) GetWithoutToken(ctx context.Context, path string) (*Response, error) {
	resp, err := c.do(ctx, http.MethodGet, path, "", nil, nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	return readResponse(resp)
}

// Get sends an authenticated GET. A nil filters value sends no query string.
func (c *Client) Get(ctx context.Context, path, token string, filters *Filters) (*Response, error) {
	resp, err := c.do(ctx, http.MethodGet, path, bearer(token), filters, nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	return readResponse(resp)
}

// Post sends an authenticated POST and returns the id of the created resource.
func (c *Client) Post(ctx context.Context, path, token string, payload any) (*CreateResponse, error) {
	resp, err := c.do(ctx, http.MethodPost, path, bearer(token), nil, payload)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var saved savedResponse
	if err := json.NewDecoder(resp.Body).Decode(&saved); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	return &CreateResponse{
		Status: resp.StatusCode,
		ID:     saved.ID,
	}, nil
}

// Patch sends an authenticated PATCH with a JSON payload.
func (c *Client) Patch(ctx context.Context, path, token string, payload any) (*StatusResponse, error) {
	resp, err := c.do(ctx, http.MethodPatch, path, bearer(token), nil, payload)
	if err != nil {
		return nil, err
	}
	resp.Body.Close()

	return &StatusResponse{Status: resp.StatusCode}, nil
}

// Delete sends an authenticated DELETE.
func (c *Client) Delete(ctx context.Context, path, token string) (*StatusResponse, error) {
	resp, err := c.do(ctx, http.MethodDelete, path, bearer(token), nil, nil)
	if err != nil {
		return nil, err
	}
	resp.Body.Close()

	return &StatusResponse{Status: resp.StatusCode}, nil
}

// do issues a single request and returns the response only when the status
// is exactly 200. The caller owns the returned body.
func (c *Client) do(ctx context.Context, method, path, authorization string, filters *Filters, body any) (*http.Response, error) {
	var bodyReader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request body: %w", err)
		}
		bodyReader = bytes.NewReader(data)
	}

	reqURL := c.baseURL + apiPrefix + path
	if query := filters.Encode(); query != "" {
		reqURL += "?" + query
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL, bodyReader)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	// Set on every request, bodiless ones included.
	req.Header.Set("Content-Type", "application/json")
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil && errors.Is(err, ctxErr) {
			return nil, ctxErr
		}
		return nil, &NetworkError{Err: err, URL: reqURL}
	}

	c.logger.Trace("request completed", "method", method, "url", reqURL, "status", resp.StatusCode)

	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, newAPIError(resp)
	}

	return resp, nil
}

// readResponse decodes the body of a 200 response into a Response envelope.
func readResponse(resp *http.Response) (*Response, error) {
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &NetworkError{Err: err, URL: resp.Request.URL.String()}
	}
	if !json.Valid(data) {
		return nil, fmt.Errorf("failed to decode response: invalid JSON body")
	}

	return &Response{
		Status: resp.StatusCode,
		Data:   json.RawMessage(data),
	}, nil
}

func newAPIError(resp *http.Response) *APIError {
	return &APIError{
		StatusCode: resp.StatusCode,
		Message:    statusText(resp),
	}
}

// statusText returns the reason phrase the server sent with the status line.
func statusText(resp *http.Response) string {
	code := strconv.Itoa(resp.StatusCode)
	if text, ok := strings.CutPrefix(resp.Status, code+" "); ok {
		return text
	}
	if resp.Status != "" && resp.Status != code {
		return resp.Status
	}
	return http.StatusText(resp.StatusCode)
}

// bearer formats the Authorization header value. The token is forwarded
// verbatim, an empty token included.
func bearer(token string) string {
	return "Bearer " + token
}
