package cheatsheets

import (
	"context"
	"fmt"

	"github.com/cheatsheets/client-go/internal/api"
	"github.com/cheatsheets/client-go/internal/config"
)

// Response is the envelope returned by reads and unauthenticated calls.
// Data holds the response body verbatim.
type Response = api.Response

// CreateResponse is the envelope returned by an authenticated create.
type CreateResponse = api.CreateResponse

// StatusResponse is the envelope returned by update and delete.
type StatusResponse = api.StatusResponse

// Filters narrows an authenticated read. Only IsPublishedList is sent,
// joined with "," under the is_published__list query parameter.
type Filters = api.Filters

// Client talks to the cheat sheet API. It holds no mutable state and is
// safe for concurrent use.
type Client struct {
	apiClient *api.Client
}

// buildAPIClient creates and configures an API client from the given config.
func buildAPIClient(serverURL string, cfg *clientConfig) (*api.Client, error) {
	var apiOpts []api.Option
	if cfg.httpClient != nil {
		apiOpts = append(apiOpts, api.WithHTTPClient(cfg.httpClient))
	}
	if cfg.timeout > 0 {
		apiOpts = append(apiOpts, api.WithTimeout(cfg.timeout))
	}
	if cfg.logger != nil {
		apiOpts = append(apiOpts, api.WithLogger(cfg.logger))
	}

	return api.New(serverURL, apiOpts...)
}

// New creates a client for the server at the given origin,
// e.g. "https://cheatsheets.example.com".
func New(serverURL string, opts ...Option) (*Client, error) {
	if serverURL == "" {
		return nil, ErrMissingServerURL
	}

	cfg := &clientConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	apiClient, err := buildAPIClient(serverURL, cfg)
	if err != nil {
		return nil, wrapError(err)
	}

	return &Client{apiClient: apiClient}, nil
}

// NewFromEnvironment creates a client for the origin in PUBLIC_APP_SERVER.
// A .env file in the working directory is honored. The environment is read
// once per process.
func NewFromEnvironment(opts ...Option) (*Client, error) {
	cfg, err := config.FromEnvironment()
	if err != nil {
		return nil, fmt.Errorf("load configuration: %w", err)
	}
	return New(cfg.ServerURL, opts...)
}

// ServerURL returns the origin the client sends requests to.
func (c *Client) ServerURL() string {
	return c.apiClient.BaseURL()
}

// PostWithoutToken sends an unauthenticated POST with a JSON payload to
// <origin>/api<path>.
func (c *Client) PostWithoutToken(ctx context.Context, path string, payload any) (*Response, error) {
	resp, err := c.apiClient.PostWithoutToken(ctx, path, payload)
	return resp, wrapError(err)
}

// GetWithoutToken sends an unauthenticated GET to <origin>/api<path>.
func (c *Client) GetWithoutToken(ctx context.Context, path string) (*Response, error) {
	resp, err := c.apiClient.GetWithoutToken(ctx, path)
	return resp, wrapError(err)
}

// Get sends an authenticated GET. A nil filters value sends no query string.
func (c *Client) Get(ctx context.Context, path, token string, filters *Filters) (*Response, error) {
	resp, err := c.apiClient.Get(ctx, path, token, filters)
	return resp, wrapError(err)
}

// Post sends an authenticated POST and returns the id from the response body.
func (c *Client) Post(ctx context.Context, path, token string, payload any) (*CreateResponse, error) {
	resp, err := c.apiClient.Post(ctx, path, token, payload)
	return resp, wrapError(err)
}

// Patch sends an authenticated PATCH with a JSON payload.
func (c *Client) Patch(ctx context.Context, path, token string, payload any) (*StatusResponse, error) {
	resp, err := c.apiClient.Patch(ctx, path, token, payload)
	return resp, wrapError(err)
}

// Delete sends an authenticated DELETE.
func (c *Client) Delete(ctx context.Context, path, token string) (*StatusResponse, error) {
	resp, err := c.apiClient.Delete(ctx, path, token)
	return resp, wrapError(err)
}
