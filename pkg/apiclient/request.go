package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
)

// maxBodySize caps how much of a response body is read (1 MiB). The booking
// API returns small JSON payloads; anything larger is misbehavior.
const maxBodySize = 1 << 20

// envelope is the uniform wrapper shape of every backend response.
type envelope struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// Get issues a GET request and decodes the envelope's data into T.
func Get[T any](ctx context.Context, c *Client, path string, opts ...RequestOption) (T, error) {
	return do[T](ctx, c, http.MethodGet, path, nil, opts...)
}

// Post issues a POST request with a JSON body and decodes the envelope's
// data into T.
func Post[T any](ctx context.Context, c *Client, path string, body any, opts ...RequestOption) (T, error) {
	return do[T](ctx, c, http.MethodPost, path, body, opts...)
}

// Put issues a PUT request with an optional JSON body and decodes the
// envelope's data into T.
func Put[T any](ctx context.Context, c *Client, path string, body any, opts ...RequestOption) (T, error) {
	return do[T](ctx, c, http.MethodPut, path, body, opts...)
}

func do[T any](ctx context.Context, c *Client, method, path string, body any, opts ...RequestOption) (T, error) {
	var zero, result T

	cfg := &requestConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	reqURL := c.baseURL + path
	if len(cfg.query) > 0 {
		values := url.Values{}
		for k, v := range cfg.query {
			values.Set(k, v)
		}
		reqURL += "?" + values.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return zero, fmt.Errorf("marshal request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	reqCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(reqCtx, method, reqURL, reader)
	if err != nil {
		return zero, fmt.Errorf("create request: %w", err)
	}

	requestID := uuid.NewString()
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("X-Request-Id", requestID)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	// The token is read from the session store on every request so a login
	// or forced logout takes effect immediately.
	if token := c.token(); token != "" {
		req.Header.Set("Authorization", token)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.LogAttrs(ctx, slog.LevelWarn, "api request failed",
			slog.String("method", method),
			slog.String("path", path),
			slog.String("request_id", requestID),
			slog.Any("error", err),
		)
		return zero, fmt.Errorf("%w: %s %s: %w", ErrRequestFailed, method, path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return zero, fmt.Errorf("%w: read body: %w", ErrRequestFailed, err)
	}

	c.logger.LogAttrs(ctx, slog.LevelDebug, "api request",
		slog.String("method", method),
		slog.String("path", path),
		slog.Int("status", resp.StatusCode),
		slog.Duration("duration", time.Since(start)),
		slog.String("request_id", requestID),
	)

	// Global unauthorized handling: the application hook clears the
	// persisted token and forces navigation to login, then the failure
	// still propagates to the caller.
	if resp.StatusCode == http.StatusUnauthorized && c.onUnauthorized != nil {
		c.onUnauthorized(ctx)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return zero, newAPIError(resp.StatusCode, raw)
	}

	if len(raw) == 0 {
		return zero, nil
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return zero, fmt.Errorf("%w: %w", ErrDecodeResponse, err)
	}
	if len(env.Data) == 0 || string(env.Data) == "null" {
		return zero, nil
	}
	if err := json.Unmarshal(env.Data, &result); err != nil {
		return zero, fmt.Errorf("%w: %w", ErrDecodeResponse, err)
	}
	return result, nil
}

// newAPIError builds an *Error from a non-2xx response, pulling code and
// message out of the envelope when the body carries one.
func newAPIError(status int, raw []byte) *Error {
	apiErr := &Error{Status: status}

	var env envelope
	if len(raw) > 0 && json.Unmarshal(raw, &env) == nil && env.Message != "" {
		apiErr.Code = env.Code
		apiErr.Message = env.Message
		return apiErr
	}

	// Fall back to a trimmed body snippet for non-envelope error pages.
	if snippet := strings.TrimSpace(string(raw)); snippet != "" {
		if len(snippet) > 200 {
			snippet = snippet[:200] + "..."
		}
		apiErr.Message = snippet
	}
	return apiErr
}
