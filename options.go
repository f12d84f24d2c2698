package cheatsheets

import (
	"net/http"
	"strconv"
	"time"

	"github.com/hashicorp/go-hclog"
)

// clientConfig holds configuration for the client.
type clientConfig struct {
	httpClient *http.Client
	timeout    time.Duration
	logger     hclog.Logger
}

// listConfig holds the filters for listing cheat sheets.
type listConfig struct {
	published []string
}

// Option configures the client.
type Option func(*clientConfig)

// ListOption configures a cheat sheet listing.
type ListOption func(*listConfig)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *clientConfig) {
		c.httpClient = client
	}
}

// WithTimeout sets a timeout for every request.
// By default no timeout is applied beyond the caller's context.
func WithTimeout(timeout time.Duration) Option {
	return func(c *clientConfig) {
		c.timeout = timeout
	}
}

// WithLogger sets the logger used to trace requests.
// Default: a null logger that discards everything.
func WithLogger(logger hclog.Logger) Option {
	return func(c *clientConfig) {
		c.logger = logger
	}
}

// WithPublished restricts a listing to cheat sheets whose publication state
// is one of the given values. Calling it with no values leaves the listing
// unfiltered.
func WithPublished(states ...bool) ListOption {
	return func(c *listConfig) {
		for _, s := range states {
			c.published = append(c.published, strconv.FormatBool(s))
		}
	}
}
