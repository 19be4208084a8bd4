// Package gateway is the typed client for the site backend: admin authentication,
// the admin resource collections and the public form endpoints.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.uber.org/zap"

	"ipoadvisor/internal/session"
	"ipoadvisor/internal/validate"
)

// RequestIDHeader is sent with every request so backend logs can be correlated.
const RequestIDHeader = "X-Request-ID"

// DefaultTimeout bounds a single request when no HTTP client is supplied.
const DefaultTimeout = 30 * time.Second

// Client talks to one backend. It holds no session state of its own: the token
// store is read on every call, so a login or logout between two calls changes
// the header of whichever call is dispatched later. Client is safe for concurrent use.
type Client struct {
	base    string
	http    *http.Client
	tokens  session.Store
	logger  *zap.Logger
	metrics *Metrics
	newID   func() string
	timeout time.Duration
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the default otelhttp-instrumented client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// WithTimeout sets the request timeout on a copy of the HTTP client in use, whatever
// the option order; a client passed to WithHTTPClient is never modified.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.timeout = d }
}

// WithLogger sets the logger used for per-request debug lines.
func WithLogger(l *zap.Logger) Option {
	return func(c *Client) { c.logger = l }
}

// WithMetrics enables Prometheus accounting of outbound requests.
func WithMetrics(m *Metrics) Option {
	return func(c *Client) { c.metrics = m }
}

// New creates a Client for baseURL (scheme and host required, trailing slash ignored).
func New(baseURL string, tokens session.Store, opts ...Option) (*Client, error) {
	u, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("parse backend url: %w", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("backend url %q must include scheme and host", baseURL)
	}
	if tokens == nil {
		return nil, errors.New("token store is required")
	}

	c := &Client{
		base:   u.String(),
		tokens: tokens,
		logger: zap.NewNop(),
		newID:  uuid.NewString,
		http: &http.Client{
			Timeout: DefaultTimeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport,
				otelhttp.WithSpanNameFormatter(func(_ string, r *http.Request) string {
					if route, ok := r.Context().Value(routeKey{}).(string); ok {
						return r.Method + " " + route
					}
					return r.Method
				}),
			),
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.timeout > 0 {
		hc := *c.http
		hc.Timeout = c.timeout
		c.http = &hc
	}
	return c, nil
}

// BaseURL returns the normalised backend URL.
func (c *Client) BaseURL() string { return c.base }

type routeKey struct{}

// request describes one backend call.
type request struct {
	method string
	// route is the path template used for metrics, spans and Error.Op.
	route string
	// path is the escaped request path.
	path string
	// fallback is the message used when the backend sends no detail.
	fallback string
	auth     bool

	body        any
	raw         io.Reader
	contentType string

	// out receives the decoded JSON body; sink receives the raw body instead.
	out  any
	sink io.Writer
}

func (r request) op() string { return r.method + " " + r.route }

func (c *Client) do(ctx context.Context, r request) error {
	req, err := c.newRequest(ctx, r)
	if err != nil {
		return err
	}
	rid := req.Header.Get(RequestIDHeader)

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.metrics.observe(r.method, r.route, "error", time.Since(start))
		c.logger.Debug("gateway_request_failed",
			zap.String("request_id", rid),
			zap.String("method", r.method),
			zap.String("route", r.route),
			zap.Error(err),
		)
		return &Error{Kind: KindNetwork, Op: r.op(), Message: r.fallback, Err: err}
	}
	defer func() {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxErrorBody))
		resp.Body.Close()
	}()

	latency := time.Since(start)
	c.metrics.observe(r.method, r.route, strconv.Itoa(resp.StatusCode), latency)
	c.logger.Debug("gateway_request",
		zap.String("request_id", rid),
		zap.String("method", r.method),
		zap.String("route", r.route),
		zap.Int("status", resp.StatusCode),
		zap.Duration("latency", latency),
	)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return responseError(r.op(), r.fallback, resp)
	}

	switch {
	case r.sink != nil:
		if _, err := io.Copy(r.sink, resp.Body); err != nil {
			return &Error{Kind: KindNetwork, Op: r.op(), Status: resp.StatusCode, Message: r.fallback, Err: err}
		}
	case r.out != nil:
		if err := json.NewDecoder(resp.Body).Decode(r.out); err != nil {
			return &Error{Kind: KindServer, Op: r.op(), Status: resp.StatusCode, Message: "malformed response", Err: err}
		}
		if err := validate.Records(r.out); err != nil {
			return &Error{Kind: KindServer, Op: r.op(), Status: resp.StatusCode, Message: "malformed response", Err: err}
		}
	}
	return nil
}

func (c *Client) newRequest(ctx context.Context, r request) (*http.Request, error) {
	body := r.raw
	contentType := r.contentType
	if r.body != nil {
		b, err := json.Marshal(r.body)
		if err != nil {
			return nil, fmt.Errorf("%s: encode body: %w", r.op(), err)
		}
		body = bytes.NewReader(b)
		contentType = "application/json"
	}

	ctx = context.WithValue(ctx, routeKey{}, r.route)
	req, err := http.NewRequestWithContext(ctx, r.method, c.base+r.path, body)
	if err != nil {
		return nil, fmt.Errorf("%s: build request: %w", r.op(), err)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set(RequestIDHeader, c.newID())

	if r.auth {
		// A missing token is not checked here: the request goes out without a header
		// and the backend rejects it.
		s, err := c.tokens.Load(ctx)
		switch {
		case err == nil:
			req.Header.Set("Authorization", "Bearer "+s.Token)
		case errors.Is(err, session.ErrNoSession):
		default:
			return nil, fmt.Errorf("%s: %w", r.op(), err)
		}
	}
	return req, nil
}

// segment escapes one path parameter.
func segment(s string) string {
	return url.PathEscape(s)
}

func validationError(op string, err error) error {
	return &Error{Kind: KindValidation, Op: op, Message: "Please fill in all required fields", Err: err}
}
