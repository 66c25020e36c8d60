package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.uber.org/zap"

	"github.com/datsan-vn/datsan-go/internal/logger"
	"github.com/datsan-vn/datsan-go/internal/telemetry"
)

const (
	// RequestIDHeader is attached to every outgoing request
	RequestIDHeader = "X-Request-ID"
	// IdempotencyKeyHeader guards booking creation against duplicate
	// submission on flaky networks
	IdempotencyKeyHeader = "X-Idempotency-Key"

	// DefaultTimeout is the single client-wide HTTP timeout. There is
	// no per-request override and nothing is retried.
	DefaultTimeout = 10 * time.Second
)

// TokenSource supplies the bearer token for authenticated requests. An
// empty token means the request goes out unauthenticated.
type TokenSource interface {
	Token() string
}

// TokenFunc adapts a plain function to a TokenSource
type TokenFunc func() string

// Token implements TokenSource
func (f TokenFunc) Token() string { return f() }

// Config holds client construction options
type Config struct {
	BaseURL string
	Timeout time.Duration
	Tokens  TokenSource
	// OnUnauthorized runs once per 401/403 response, before the error
	// is returned to the caller. Used for the forced-logout side
	// effect: clear session, surface a modal, return to login.
	OnUnauthorized func()
	Logger         *logger.Logger
}

// Client issues one HTTP call per method against the booking backend.
// No retries, no caching, no request coalescing.
type Client struct {
	baseURL        string
	httpClient     *http.Client
	tokens         TokenSource
	onUnauthorized func()
	log            *logger.Logger
}

// envelope mirrors the backend's response wrapper
type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data,omitempty"`
	Error   *errorData      `json:"error,omitempty"`
	Meta    json.RawMessage `json:"meta,omitempty"`
}

type errorData struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

// NewClient creates a new API client
func NewClient(cfg Config) *Client {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = DefaultTimeout
	}

	transport := &http.Transport{
		DialContext: (&net.Dialer{
			Timeout:   5 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		MaxIdleConns:          10,
		MaxIdleConnsPerHost:   10,
		IdleConnTimeout:       90 * time.Second,
		TLSHandshakeTimeout:   5 * time.Second,
		ExpectContinueTimeout: 1 * time.Second,
		ForceAttemptHTTP2:     true,
	}

	log := cfg.Logger
	if log == nil {
		log = logger.Get()
	}

	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: &http.Client{
			Transport: transport,
			Timeout:   timeout,
		},
		tokens:         cfg.Tokens,
		onUnauthorized: cfg.OnUnauthorized,
		log:            log,
	}
}

// BaseURL returns the configured API base URL
func (c *Client) BaseURL() string {
	return c.baseURL
}

// get issues a GET request and decodes the data payload into out
func (c *Client) get(ctx context.Context, path string, query url.Values, out any) error {
	return c.do(ctx, http.MethodGet, path, query, nil, out, nil)
}

// post issues a POST request with a JSON body
func (c *Client) post(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPost, path, nil, body, out, nil)
}

// put issues a PUT request with a JSON body
func (c *Client) put(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPut, path, nil, body, out, nil)
}

// delete issues a DELETE request
func (c *Client) delete(ctx context.Context, path string) error {
	return c.do(ctx, http.MethodDelete, path, nil, nil, nil, nil)
}

// do performs one request/response cycle. Backend error payloads are
// propagated unmodified; callers decide what to surface.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any, extra http.Header) error {
	ctx, span := telemetry.StartSpan(ctx, "api."+method+" "+path)
	defer span.End()

	fullURL := c.baseURL + path
	if len(query) > 0 {
		fullURL += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, fullURL, reader)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	requestID := uuid.New().String()
	req.Header.Set(RequestIDHeader, requestID)
	span.SetAttributes(
		attribute.String("http.method", method),
		attribute.String("http.path", path),
		attribute.String("request_id", requestID),
	)

	if c.tokens != nil {
		if token := c.tokens.Token(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}
	for k, vs := range extra {
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		span.SetStatus(codes.Error, "no response received")
		c.log.Warn("request failed",
			zap.String("method", method),
			zap.String("path", path),
			zap.String("request_id", requestID),
			zap.Error(err),
		)
		return networkError(err)
	}
	defer resp.Body.Close()

	span.SetAttributes(attribute.Int("http.status_code", resp.StatusCode))
	c.log.Debug("request completed",
		zap.String("method", method),
		zap.String("path", path),
		zap.Int("status", resp.StatusCode),
		zap.String("request_id", requestID),
		zap.Duration("latency", time.Since(start)),
	)

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		span.SetStatus(codes.Error, "failed to read response")
		return networkError(err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := decodeError(resp.StatusCode, raw)
		span.SetStatus(codes.Error, apiErr.Message)
		if apiErr.IsUnauthorized() && c.onUnauthorized != nil {
			c.onUnauthorized()
		}
		return apiErr
	}

	if out == nil || len(raw) == 0 {
		return nil
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil || env.Data == nil {
		// Backend sometimes returns the payload bare, without the
		// envelope. Fall back to decoding the body directly.
		if derr := json.Unmarshal(raw, out); derr != nil {
			return fmt.Errorf("failed to decode response: %w", derr)
		}
		return nil
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		return fmt.Errorf("failed to decode response data: %w", err)
	}
	return nil
}

// decodeError turns a non-2xx body into an *Error, preserving the
// backend message verbatim when one is present.
func decodeError(status int, raw []byte) *Error {
	var env envelope
	if err := json.Unmarshal(raw, &env); err == nil && env.Error != nil {
		return &Error{
			Status:  status,
			Code:    env.Error.Code,
			Message: env.Error.Message,
		}
	}

	// Plain {"error": "..."} or {"message": "..."} bodies
	var loose struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(raw, &loose); err == nil {
		msg := loose.Message
		if msg == "" {
			msg = loose.Error
		}
		if msg != "" {
			return &Error{Status: status, Message: msg}
		}
	}

	return &Error{Status: status}
}
