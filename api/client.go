// Package api is the console's adapter to the remote CMS REST API.
//
// A single Client is built at startup and shared by every request. Nothing
// request-specific is captured at construction: the bearer token is read
// from the request context on each call, so a session that logs in again
// is picked up immediately.
package api

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	headerAPIKey    = "x-api-key"
	headerRequestID = "X-Request-ID"
	maxResponseSize = 10 << 20
)

// TokenSource returns the session token for the request carried by ctx.
// An empty string means the request is anonymous.
type TokenSource func(ctx context.Context) string

// Client issues authenticated requests against the CMS API. It is safe for
// concurrent use.
type Client struct {
	baseURL        string
	apiKey         string
	httpClient     *http.Client
	tokenSource    TokenSource
	onUnauthorized func(ctx context.Context)
	logger         *slog.Logger
	metrics        *Metrics
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying *http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// WithTimeout sets the timeout of the default http.Client.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.httpClient.Timeout = d
	}
}

// WithTokenSource overrides how the bearer token is looked up.
func WithTokenSource(ts TokenSource) Option {
	return func(c *Client) {
		if ts != nil {
			c.tokenSource = ts
		}
	}
}

// WithUnauthorizedHandler registers fn to run whenever the API answers 401.
func WithUnauthorizedHandler(fn func(ctx context.Context)) Option {
	return func(c *Client) {
		c.onUnauthorized = fn
	}
}

// WithLogger sets the structured logger.
func WithLogger(l *slog.Logger) Option {
	return func(c *Client) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithMetrics records request counts and latencies into m.
func WithMetrics(m *Metrics) Option {
	return func(c *Client) {
		c.metrics = m
	}
}

// New creates a Client for the API rooted at baseURL.
func New(baseURL, apiKey string, opts ...Option) *Client {
	c := &Client{
		baseURL:     strings.TrimRight(strings.TrimSpace(baseURL), "/"),
		apiKey:      strings.TrimSpace(apiKey),
		httpClient:  &http.Client{Timeout: 15 * time.Second},
		tokenSource: TokenFromContext,
		logger:      slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Get issues a GET and decodes the response into out.
func (c *Client) Get(ctx context.Context, path string, out any) error {
	return c.Do(ctx, http.MethodGet, path, nil, out)
}

// Post issues a POST with body and decodes the response into out.
func (c *Client) Post(ctx context.Context, path string, body Body, out any) error {
	return c.Do(ctx, http.MethodPost, path, body, out)
}

// Put issues a PUT with body and decodes the response into out.
func (c *Client) Put(ctx context.Context, path string, body Body, out any) error {
	return c.Do(ctx, http.MethodPut, path, body, out)
}

// Delete issues a DELETE and decodes the response into out.
func (c *Client) Delete(ctx context.Context, path string, out any) error {
	return c.Do(ctx, http.MethodDelete, path, nil, out)
}

// Do sends one request. out may be nil, in which case only the envelope is
// checked. A 401 triggers the unauthorized handler and returns
// ErrUnauthorized; other failures come back as *Error or *TransportError.
func (c *Client) Do(ctx context.Context, method, path string, body Body, out any) error {
	start := time.Now()
	code, err := c.do(ctx, method, path, body, out)
	c.metrics.observe(method, path, code, time.Since(start))
	if err != nil {
		c.logger.WarnContext(ctx, "cms api request failed",
			slog.String("method", method),
			slog.String("path", path),
			slog.Int("status", code),
			slog.String("error", err.Error()),
		)
		return err
	}
	c.logger.DebugContext(ctx, "cms api request",
		slog.String("method", method),
		slog.String("path", path),
		slog.Int("status", code),
		slog.Duration("latency", time.Since(start)),
	)
	return nil
}

func (c *Client) do(ctx context.Context, method, path string, body Body, out any) (int, error) {
	contentType := "application/json"
	var reader io.Reader
	if body != nil {
		ct, r, err := body.Encode()
		if err != nil {
			return 0, fmt.Errorf("api: encode %s %s body: %w", method, path, err)
		}
		contentType, reader = ct, r
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return 0, fmt.Errorf("api: create %s %s request: %w", method, path, err)
	}
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Accept", "application/json")
	if c.apiKey != "" {
		req.Header.Set(headerAPIKey, c.apiKey)
	}
	if token := strings.TrimSpace(c.tokenSource(ctx)); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	requestID := RequestIDFromContext(ctx)
	if requestID == "" {
		requestID = uuid.NewString()
	}
	req.Header.Set(headerRequestID, requestID)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, &TransportError{Method: method, Path: path, Err: err}
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return resp.StatusCode, &TransportError{Method: method, Path: path, Err: fmt.Errorf("read response: %w", err)}
	}

	if resp.StatusCode == http.StatusUnauthorized {
		if c.onUnauthorized != nil {
			c.onUnauthorized(ctx)
		}
		return resp.StatusCode, ErrUnauthorized
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var env Envelope
		_ = json.Unmarshal(payload, &env)
		return resp.StatusCode, &Error{
			Method:     method,
			Path:       path,
			StatusCode: resp.StatusCode,
			Status:     env.Status,
			Message:    env.Message,
			ErrorText:  env.Error,
		}
	}

	if out == nil {
		out = &Envelope{}
	}
	if len(payload) > 0 {
		if err := json.Unmarshal(payload, out); err != nil {
			return resp.StatusCode, fmt.Errorf("api: decode %s %s response: %w", method, path, err)
		}
	}
	if e, ok := out.(enveloper); ok {
		env := e.envelope()
		if !env.OK() {
			return resp.StatusCode, &Error{
				Method:     method,
				Path:       path,
				StatusCode: resp.StatusCode,
				Status:     env.Status,
				Message:    env.Message,
				ErrorText:  env.Error,
			}
		}
	}
	return resp.StatusCode, nil
}

type ctxKey int

const (
	tokenKey ctxKey = iota
	requestIDKey
)

// WithToken returns a context carrying the session token for outbound calls.
func WithToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, tokenKey, token)
}

// TokenFromContext is the default TokenSource.
func TokenFromContext(ctx context.Context) string {
	token, _ := ctx.Value(tokenKey).(string)
	return token
}

// WithRequestID propagates the inbound request id to the CMS.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

// RequestIDFromContext returns the id stored by WithRequestID.
func RequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}
