// Package console implements the HTTP client for the cloud endpoint-protection
// console: threat and agent operations plus the asynchronous search-job routes.
//
// The client performs exactly one network call per method invocation. Every
// call is bounded by a fixed wall-clock timeout and every failure is
// normalised into one of three shapes: ErrRequestTimeout, *APIError (non-2xx
// status with its body), or *TransportError (everything else, sanitised).
// Retry decisions belong to callers; the client never retries on its own.
package console

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/target/edr-bridge/internal/observability/statsd"
)

// apiPrefix is the versioned path prefix shared by every console route.
const apiPrefix = "/api/v2"

// defaultRequestTimeout bounds one console call end to end.
const defaultRequestTimeout = 30 * time.Second

// maxErrorBodyBytes caps how much of an error response body is retained.
const maxErrorBodyBytes = 16 * 1024

// Config captures the connection settings for the console API.
type Config struct {
	// BaseURL is the console origin, e.g. "https://console.example.com".
	BaseURL string
	// APIToken is the bearer token attached to every request.
	APIToken string
	// RequestTimeout is the wall-clock bound per call. Defaults to 30s.
	RequestTimeout time.Duration
	// Client overrides the underlying HTTP client (tests).
	Client *http.Client
	// Logger is optional; slog.Default is used when nil.
	Logger *slog.Logger
	// Metrics is optional; request timings are emitted when set.
	Metrics statsd.Sink
}

// Client issues authenticated requests against the console API.
// It is safe for concurrent use.
type Client struct {
	baseURL string
	token   string
	timeout time.Duration
	hc      *http.Client
	logger  *slog.Logger
	metrics statsd.Sink
}

// NewClient validates the config and constructs a Client.
func NewClient(cfg Config) (*Client, error) {
	base := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if base == "" {
		return nil, errors.New("console base URL is required")
	}
	parsed, err := url.Parse(base)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return nil, fmt.Errorf("console base URL %q must be an absolute http(s) URL", cfg.BaseURL)
	}

	token := strings.TrimSpace(cfg.APIToken)
	if token == "" {
		return nil, errors.New("console API token is required")
	}

	timeout := cfg.RequestTimeout
	if timeout <= 0 {
		timeout = defaultRequestTimeout
	}

	hc := cfg.Client
	if hc == nil {
		hc = &http.Client{}
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Client{
		baseURL: base,
		token:   token,
		timeout: timeout,
		hc:      hc,
		logger:  logger,
		metrics: cfg.Metrics,
	}, nil
}

// requestParams groups the arguments for do to stay within the ≤3 params guideline.
type requestParams struct {
	Method string
	Route  string
	Query  url.Values
	Body   any
	Header http.Header
}

// do performs exactly one bounded request and decodes a 2xx JSON body into out.
// The timeout timer is released on every exit path via the deferred cancel.
func (c *Client) do(ctx context.Context, p requestParams, out any) error {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	endpoint := c.baseURL + apiPrefix + "/" + strings.TrimLeft(p.Route, "/")
	if len(p.Query) > 0 {
		endpoint += "?" + p.Query.Encode()
	}

	var body io.Reader
	if p.Body != nil {
		encoded, err := json.Marshal(p.Body)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		body = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, p.Method, endpoint, body)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.token)
	for key, values := range p.Header {
		req.Header[key] = values
	}

	op := p.Method + " " + p.Route
	start := time.Now()
	resp, err := c.hc.Do(req)
	if err != nil {
		c.observe(p.Route, 0, time.Since(start))
		switch {
		case errors.Is(err, context.DeadlineExceeded):
			return ErrRequestTimeout
		case errors.Is(err, context.Canceled):
			return context.Canceled
		default:
			// The raw error can embed the full request URL; keep it out of
			// the returned error and log it here instead.
			c.logger.DebugContext(ctx, "console transport failure", "op", op, "error", err)
			return &TransportError{Op: op}
		}
	}
	c.observe(p.Route, resp.StatusCode, time.Since(start))

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return c.errorFromResponse(resp)
	}

	if out == nil {
		return drainBody(resp)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		if cerr := resp.Body.Close(); cerr != nil {
			c.logger.DebugContext(ctx, "close response body failed", "op", op, "error", cerr)
		}
		c.logger.DebugContext(ctx, "console response decode failure", "op", op, "error", err)
		return &TransportError{Op: op, Reason: "malformed response body"}
	}
	return resp.Body.Close()
}

// errorFromResponse turns a non-2xx response into an APIError, retaining a
// bounded amount of the body text.
func (c *Client) errorFromResponse(resp *http.Response) error {
	raw, readErr := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyBytes))
	closeErr := resp.Body.Close()
	if readErr != nil {
		return errors.Join(fmt.Errorf("read error response: %w", readErr), closeErr)
	}
	if closeErr != nil {
		return fmt.Errorf("close error response body: %w", closeErr)
	}
	return &APIError{
		StatusCode: resp.StatusCode,
		Body:       strings.TrimSpace(string(raw)),
	}
}

func drainBody(resp *http.Response) error {
	if _, err := io.Copy(io.Discard, resp.Body); err != nil {
		closeErr := resp.Body.Close()
		return errors.Join(fmt.Errorf("drain response body: %w", err), closeErr)
	}
	if err := resp.Body.Close(); err != nil {
		return fmt.Errorf("close response body: %w", err)
	}
	return nil
}

func (c *Client) observe(route string, status int, elapsed time.Duration) {
	if c.metrics == nil {
		return
	}
	tags := map[string]string{
		"route":  route,
		"status": statusClass(status),
	}
	c.metrics.Count("console.request", 1, tags)
	c.metrics.Timing("console.request.duration", elapsed, tags)
}

func statusClass(status int) string {
	if status <= 0 {
		return "error"
	}
	return strconv.Itoa(status/100) + "xx"
}
