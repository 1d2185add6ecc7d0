package apiclient

import (
	"context"
	"log/slog"
	"net/http"
	"time"
)

// Option configures a Client at construction time.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client. Nil clients are
// ignored. The client's timeout is preserved as-is; combine with
// WithTimeout to override it.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		if httpClient != nil {
			c.httpClient = httpClient
		}
	}
}

// WithTimeout overrides the per-request timeout. Non-positive values are
// ignored, keeping the 10 second default.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if timeout > 0 {
			c.timeout = timeout
		}
	}
}

// WithUserAgent sets the User-Agent header sent with every request.
func WithUserAgent(ua string) Option {
	return func(c *Client) {
		if ua != "" {
			c.userAgent = ua
		}
	}
}

// WithLogger sets the structured logger used for request tracing.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithTokenSource sets the source consulted for the bearer token on every
// outgoing request.
func WithTokenSource(tokens TokenSource) Option {
	return func(c *Client) {
		c.tokens = tokens
	}
}

// WithUnauthorizedHandler sets the hook invoked whenever any response comes
// back with HTTP 401, before the error is returned to the caller.
func WithUnauthorizedHandler(fn func(context.Context)) Option {
	return func(c *Client) {
		c.onUnauthorized = fn
	}
}

// RequestOption customizes a single request.
type RequestOption func(*requestConfig)

type requestConfig struct {
	query map[string]string
}

// WithQuery adds a query parameter to the request URL. Parameters with an
// empty value are dropped, which is how optional filters are expressed.
func WithQuery(key, value string) RequestOption {
	return func(rc *requestConfig) {
		if key == "" || value == "" {
			return
		}
		if rc.query == nil {
			rc.query = make(map[string]string)
		}
		rc.query[key] = value
	}
}
