package cloud

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

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"

	"github.com/gitloom/cloud-go/throttle"
)

// authHeader carries the opaque token issued by the login flow. Required
// on every endpoint except login-token creation and login-user lookup.
const authHeader = "X-Auth-Token"

// Client talks to the cloud API. It wraps the std-lib *http.Client, which
// can be replaced or customized via optional funcs, and holds no state
// beyond its configuration: every request is independent.
type Client struct {
	base   *url.URL
	c      *http.Client
	logger *slog.Logger
	tracer trace.Tracer
}

// Build creates a Client for the API rooted at baseURL. The base URL must
// already include the API root segment (e.g. https://app.gitloom.com/api/);
// endpoint paths are resolved relative to it. A missing trailing slash is
// added so the last segment survives resolution.
func Build(baseURL string, optFns ...Option) (*Client, error) {
	if !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}

	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parsing base url: %w", err)
	}
	if base.Host == "" {
		return nil, fmt.Errorf("base url %q has no host", baseURL)
	}

	client := &Client{
		base:   base,
		c:      http.DefaultClient,
		logger: slog.Default(),
		tracer: noop.NewTracerProvider().Tracer("no-op tracer"),
	}

	var opts options
	for _, opt := range optFns {
		if err := opt(&opts); err != nil {
			return nil, fmt.Errorf("applying client option: %w", err)
		}
	}

	if opts.client != nil {
		client.c = opts.client
	}

	if opts.logger != nil {
		client.logger = opts.logger
	}

	if opts.tracer != nil {
		client.tracer = opts.tracer
	}

	if opts.timeout != nil {
		client.c.Timeout = *opts.timeout
	}

	if opts.noFollowRedirects {
		client.c.CheckRedirect = func(*http.Request, []*http.Request) error {
			return http.ErrUseLastResponse
		}
	}

	var transport http.RoundTripper
	switch {
	case opts.rt != nil:
		transport = opts.rt
	case opts.client != nil && opts.client.Transport != nil:
		transport = opts.client.Transport
	default:
		transport = http.DefaultTransport
	}
	if opts.userAgent != "" {
		transport = userAgent{value: opts.userAgent, base: transport}
	}
	if opts.throttle != nil {
		rt, err := throttle.NewRoundTripper(opts.throttle.RPS, opts.throttle.Burst, client.logger, transport)
		if err != nil {
			return nil, fmt.Errorf("configuring throttle: %w", err)
		}
		transport = rt
	}
	client.c.Transport = transport

	return client, nil
}

// BaseURL returns a copy of the configured API base URL.
func (c *Client) BaseURL() *url.URL {
	u := *c.base
	return &u
}

// Do executes method against path, resolved relative to the API base, and
// decodes the JSON response into dest if dest is non-nil. The body is
// JSON-encoded unless a multipart form is supplied via [WithForm].
// Content-Type defaults to `application/json`; caller-supplied headers of
// the same name win.
func (c *Client) Do(ctx context.Context, method, path string, dest any, opts ...RequestOption) error {
	var settings requestOpts
	for _, opt := range opts {
		if err := opt(&settings); err != nil {
			return err
		}
	}

	reqURL := ResolveURL(c.base, path)

	var payload io.Reader = http.NoBody
	contentType := "application/json"
	switch {
	case settings.form != nil:
		body, ct, err := settings.form.encode()
		if err != nil {
			return fmt.Errorf("encoding form body: %w", err)
		}
		payload, contentType = body, ct
	case settings.body != nil:
		var buf bytes.Buffer
		if err := json.NewEncoder(&buf).Encode(settings.body); err != nil {
			return fmt.Errorf("encoding request payload: %w", err)
		}
		payload = &buf
	}

	ctx, span := c.tracer.Start(ctx, method+" "+path,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("http.request.method", method),
			attribute.String("url.path", reqURL.Path),
		),
	)
	defer span.End()

	req, err := http.NewRequestWithContext(ctx, method, reqURL.String(), payload)
	if err != nil {
		return fmt.Errorf("instantiating request: %w", err)
	}

	req.Header.Set("Content-Type", contentType)
	req.Header.Set("X-Request-Id", uuid.NewString())
	for k, v := range settings.headers {
		req.Header.Del(k)
		for _, element := range v {
			req.Header.Add(k, element)
		}
	}

	resp, err := c.c.Do(req)
	if err != nil {
		return fmt.Errorf("exec http do: %w", err)
	}
	span.SetAttributes(attribute.Int("http.response.status_code", resp.StatusCode))

	return ParseResponse(resp, dest)
}

// DoAuthenticated is [Client.Do] with the auth token injected into the
// X-Auth-Token header before delegating.
func (c *Client) DoAuthenticated(ctx context.Context, method, path, token string, dest any, opts ...RequestOption) error {
	opts = append(opts, WithHeaders(map[string][]string{authHeader: {token}}))
	return c.Do(ctx, method, path, dest, opts...)
}

// ResolveURL resolves a relative endpoint path against the API base URL.
// The base must already include the API root segment.
func ResolveURL(base *url.URL, path string) *url.URL {
	return base.ResolveReference(&url.URL{Path: path})
}

// ParseResponse is the single status-interpretation path for all request
// methods. 204 and 205 decode to nothing regardless of body. A status
// >= 400 yields a [*RequestError] carrying the status text and raw body.
// Anything else is JSON-decoded into dest, if dest is non-nil. The
// response body is always drained and closed.
func ParseResponse(resp *http.Response, dest any) error {
	defer func() {
		_, _ = io.Copy(io.Discard, resp.Body)
		_ = resp.Body.Close()
	}()

	switch {
	case resp.StatusCode == http.StatusNoContent, resp.StatusCode == http.StatusResetContent:
		return nil
	case resp.StatusCode >= http.StatusBadRequest:
		b, err := io.ReadAll(io.LimitReader(resp.Body, maxErrBodySize))
		if err != nil {
			b = []byte("unable to read body")
		}

		cause := ErrRequestFailed
		if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
			cause = fmt.Errorf("%w: %w", ErrRequestFailed, ErrAuthFailure)
		}

		return &RequestError{
			StatusCode: resp.StatusCode,
			Status:     statusLine(resp),
			Body:       string(b),
			Err:        cause,
		}
	}

	if dest == nil {
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
		return fmt.Errorf("decoding body: %w", err)
	}

	return nil
}

// statusLine falls back to the canonical status text when the response
// carries no status line, as with hand-built responses in tests.
func statusLine(resp *http.Response) string {
	if resp.Status != "" {
		return resp.Status
	}
	return fmt.Sprintf("%d %s", resp.StatusCode, http.StatusText(resp.StatusCode))
}
