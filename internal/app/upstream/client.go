// internal/app/upstream/client.go

// Package upstream is the HTTP gateway to the school API that owns teacher
// profiles, student rosters, and homework. It is a stateless pass-through:
// it holds no cache, and callers re-list after every successful mutation.
//
// Every call attaches the bearer token found in the request context (see the
// auth package). When no token is present the Authorization header is sent
// with an empty value rather than omitted — the school API is the authority
// on whether the call is allowed.
package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/dalemusser/classboard/internal/app/system/auth"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// maxResponseBytes bounds upstream response bodies.
const maxResponseBytes = 8 << 20

// Config holds the settings for building a Client.
type Config struct {
	// BaseURL is the school API origin, e.g. "https://api.school.example".
	BaseURL string
	// HTTPClient is used for all requests. If nil, a client with Timeout
	// is built.
	HTTPClient *http.Client
	// Timeout applies when HTTPClient is nil.
	Timeout time.Duration
	// Logger is used for request logging. If nil, zap.NewNop() is used.
	Logger *zap.Logger
}

// Client talks to the school API. It is safe for concurrent use.
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        *zap.Logger
}

// New validates the configuration and builds a Client.
func New(cfg Config) (*Client, error) {
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("upstream: base URL is required")
	}
	if _, err := url.Parse(cfg.BaseURL); err != nil {
		return nil, fmt.Errorf("upstream: invalid base URL %q: %w", cfg.BaseURL, err)
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}

	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: httpClient,
		log:        logger,
	}, nil
}

// BaseURL returns the configured school API origin.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Close releases idle connections in the underlying transport pool.
func (c *Client) Close() {
	c.httpClient.CloseIdleConnections()
}

// Ping reports whether the school API is reachable. Any HTTP response,
// including an auth rejection, counts as reachable; only transport failures
// are errors.
func (c *Client) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/", nil)
	if err != nil {
		return &RequestError{Op: "ping", Err: err}
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &RequestError{Op: "ping", Err: err}
	}
	io.Copy(io.Discard, io.LimitReader(resp.Body, maxResponseBytes))
	resp.Body.Close()
	return nil
}

// do performs one JSON request. On a 2xx response the body is decoded into
// out (when out is non-nil). On a non-2xx response the server's message is
// extracted when present, with fallbackMsg covering servers that return no
// usable body.
func (c *Client) do(ctx context.Context, method, path string, reqBody any, out any, fallbackMsg string) error {
	op := method + " " + path

	var bodyReader io.Reader
	if reqBody != nil {
		encoded, err := json.Marshal(reqBody)
		if err != nil {
			return &RequestError{Op: op, Err: fmt.Errorf("encode request body: %w", err)}
		}
		bodyReader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bodyReader)
	if err != nil {
		return &RequestError{Op: op, Err: err}
	}
	if reqBody != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Authorization", bearerValue(auth.TokenFromContext(ctx)))
	req.Header.Set("X-Request-ID", uuid.New().String())

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Warn("upstream request failed",
			zap.String("op", op),
			zap.Error(err))
		return &RequestError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return &RequestError{Op: op, Err: fmt.Errorf("read response body: %w", err)}
	}

	c.log.Debug("upstream request",
		zap.String("op", op),
		zap.Int("status", resp.StatusCode),
		zap.Duration("elapsed", time.Since(start)))

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		if out == nil {
			return nil
		}
		if err := json.Unmarshal(respBody, out); err != nil {
			return &RequestError{Op: op, Err: fmt.Errorf("decode response: %w", err)}
		}
		return nil
	}

	return &APIError{
		StatusCode: resp.StatusCode,
		Message:    serverMessage(respBody, fallbackMsg),
	}
}

// bearerValue formats the Authorization header. An absent token produces an
// empty header value, not an omitted header.
func bearerValue(token string) string {
	if token == "" {
		return ""
	}
	return "Bearer " + token
}

// serverMessage pulls a human-readable message out of an error response
// body. The school API uses {"message": ...} but some deployments answer
// with {"error": ...}.
func serverMessage(body []byte, fallback string) string {
	var payload struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(body, &payload); err == nil {
		if payload.Message != "" {
			return payload.Message
		}
		if payload.Error != "" {
			return payload.Error
		}
	}
	return fallback
}
