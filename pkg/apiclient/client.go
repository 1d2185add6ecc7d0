package apiclient

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// defaultTimeout bounds every request unless overridden with WithTimeout.
const defaultTimeout = 10 * time.Second

// TokenSource supplies the current bearer token for outgoing requests.
// An empty string means no session, in which case no Authorization header
// is attached.
type TokenSource interface {
	Token() string
}

// TokenSourceFunc adapts a plain function to the TokenSource interface.
type TokenSourceFunc func() string

func (f TokenSourceFunc) Token() string { return f() }

// Client is the session-aware HTTP pipeline shared by all API modules.
// It is safe for concurrent use; the underlying http.Client pools
// connections across requests.
type Client struct {
	baseURL        string
	httpClient     *http.Client
	timeout        time.Duration
	userAgent      string
	tokens         TokenSource
	onUnauthorized func(context.Context)
	logger         *slog.Logger
}

// New creates a pipeline rooted at baseURL. The URL must be absolute with
// an http or https scheme; a trailing slash is trimmed so paths always
// start with "/".
func New(baseURL string, opts ...Option) (*Client, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidBaseURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("%w: only http and https schemes are supported", ErrInvalidBaseURL)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("%w: host is required", ErrInvalidBaseURL)
	}

	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Transport: &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		},
		timeout:   defaultTimeout,
		userAgent: "cinetick/1.0",
		logger:    slog.Default(),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

// token returns the current bearer token, or "" without a token source.
func (c *Client) token() string {
	if c.tokens == nil {
		return ""
	}
	return c.tokens.Token()
}
