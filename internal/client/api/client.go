// Package api is the gateway between the client and the booking backend's
// REST API. It owns content negotiation, the transport timeout, bearer-token
// injection, request correlation ids, and the classification of every
// failure into a small error taxonomy. No call panics past this boundary.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/avolkov/chargecli/internal/logging"
)

// DefaultTimeout bounds every request to the backend. A timeout surfaces
// as a network-unreachable error, never as a hang.
const DefaultTimeout = 15 * time.Second

// TokenFunc supplies the current bearer credential; it returns "" when the
// session is anonymous.
type TokenFunc func() string

// Client issues HTTP calls against the booking backend.
//
// When a request that carried a credential comes back 401, the configured
// unauthorized hook fires once for that response, before the error is
// returned to the call site. This is the single enforcement point for the
// stale-credential policy; call sites never re-implement it.
type Client struct {
	baseURL        string
	http           *http.Client
	token          TokenFunc
	onUnauthorized func()
	log            logging.Logger
}

type Option func(*Client)

// WithToken installs the credential supplier for outbound requests.
func WithToken(fn TokenFunc) Option {
	return func(c *Client) { c.token = fn }
}

// WithUnauthorizedHook installs the callback fired when an authenticated
// request is rejected with 401.
func WithUnauthorizedHook(fn func()) Option {
	return func(c *Client) { c.onUnauthorized = fn }
}

// WithHTTPClient replaces the underlying transport. Mostly for tests.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// WithTimeout overrides the transport timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.http.Timeout = d }
}

func WithLogger(l logging.Logger) Option {
	return func(c *Client) { c.log = l }
}

// New builds a gateway for the given base URL (e.g. "http://host:5000/api").
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: DefaultTimeout},
		token:   func() string { return "" },
		log:     logging.NewDefault(false),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BaseURL returns the configured backend base URL.
func (c *Client) BaseURL() string { return c.baseURL }

// messageBody is the error/info envelope the backend uses.
type messageBody struct {
	Message string `json:"message"`
}

// do performs one JSON request/response cycle. A non-nil body is marshalled
// as the request payload; a non-nil out receives the decoded response.
func (c *Client) do(ctx context.Context, method, path string, body any, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return &Error{Kind: KindUnknown, Message: MsgUnknown, cause: err}
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return &Error{Kind: KindUnknown, Message: MsgUnknown, cause: err}
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-Id", uuid.NewString())

	authenticated := false
	if token := c.token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
		authenticated = true
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Warn(ctx, "request failed", "method", method, "path", path, "error", err)
		return &Error{Kind: KindNetwork, Message: MsgNetwork, cause: err}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return &Error{Kind: KindNetwork, Message: MsgNetwork, cause: err}
	}

	if resp.StatusCode >= 400 {
		return c.asError(ctx, method, path, resp.StatusCode, data, authenticated)
	}

	if out != nil {
		if err := json.Unmarshal(data, out); err != nil {
			return &Error{
				Kind:    KindUnknown,
				Status:  resp.StatusCode,
				Message: MsgUnknown,
				cause:   fmt.Errorf("decode response: %w", err),
			}
		}
	}

	c.log.Debug(ctx, "request completed", "method", method, "path", path, "status", resp.StatusCode)
	return nil
}

// asError classifies a non-2xx response and fires the unauthorized hook for
// rejected credentials.
func (c *Client) asError(ctx context.Context, method, path string, status int, data []byte, authenticated bool) error {
	kind := classifyStatus(status)

	var body messageBody
	message := fallback(kind)
	if err := json.Unmarshal(data, &body); err == nil && body.Message != "" {
		message = body.Message
	}

	c.log.Warn(ctx, "request rejected", "method", method, "path", path, "status", status)

	if status == http.StatusUnauthorized && authenticated && c.onUnauthorized != nil {
		c.onUnauthorized()
	}

	return &Error{Kind: kind, Status: status, Message: message}
}
