package apiclient

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/valyala/fasthttp"

	"github.com/martijn/trainhub/internal/api/dto"
	"github.com/martijn/trainhub/internal/core/repository"
	"github.com/martijn/trainhub/internal/logging"
)

const (
	// TokenKey is the credential key holding the bearer token.
	TokenKey = "auth_token"

	DefaultTimeout = 30 * time.Second
)

// Doer performs one HTTP exchange. *fasthttp.Client satisfies it.
type Doer interface {
	DoDeadline(req *fasthttp.Request, resp *fasthttp.Response, deadline time.Time) error
}

// Client is the single entry point for backend calls.
type Client struct {
	baseURL string
	tokens  repository.CredentialProvider
	doer    Doer
	timeout time.Duration
	logger  *slog.Logger
}

type Option func(*Client)

// WithDoer replaces the transport.
func WithDoer(d Doer) Option {
	return func(c *Client) { c.doer = d }
}

// WithTimeout bounds calls whose context carries no deadline.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.timeout = d
		}
	}
}

func WithLogger(l *slog.Logger) Option {
	return func(c *Client) { c.logger = l }
}

// New creates a client for baseURL. tokens may be nil for anonymous use.
func New(baseURL string, tokens repository.CredentialProvider, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		tokens:  tokens,
		timeout: DefaultTimeout,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.doer == nil {
		c.doer = &fasthttp.Client{
			Name:                "trainhub",
			MaxIdleConnDuration: 60 * time.Second,
		}
	}
	if c.logger == nil {
		c.logger = logging.Discard()
	}
	return c
}

func (c *Client) BaseURL() string {
	return c.baseURL
}

// RequestJSON performs the call and decodes a 200/201 body into out.
// out may be nil to discard the body.
func (c *Client) RequestJSON(ctx context.Context, endpoint, method string, body any, out any) error {
	status, respBody, err := c.do(ctx, endpoint, method, body)
	if err != nil {
		return err
	}

	switch {
	case status == http.StatusOK || status == http.StatusCreated:
		if out == nil {
			return nil
		}
		if err := json.Unmarshal(respBody, out); err != nil {
			return &Error{Kind: KindInvalidData, Status: status, Err: fmt.Errorf("failed to decode response: %w", err)}
		}
		return nil
	case status == http.StatusNoContent:
		return newError(KindInvalidData, status)
	case status == http.StatusBadRequest || status == http.StatusUnprocessableEntity:
		return withDetail(newError(KindInvalidData, status), respBody)
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		return withDetail(newError(KindUnauthorized, status), respBody)
	case status == http.StatusNotFound:
		return newError(KindNotFound, status)
	case status >= 500 && status <= 599:
		return withDetail(newError(KindServerError, status), respBody)
	default:
		return newError(KindInvalidResponse, status)
	}
}

// RequestNoContent performs the call and succeeds only on 204.
func (c *Client) RequestNoContent(ctx context.Context, endpoint, method string, body any) error {
	status, respBody, err := c.do(ctx, endpoint, method, body)
	if err != nil {
		return err
	}

	switch status {
	case http.StatusNoContent:
		return nil
	case http.StatusUnauthorized:
		return withDetail(newError(KindUnauthorized, status), respBody)
	case http.StatusNotFound:
		return newError(KindNotFound, status)
	default:
		return withDetail(newError(KindServerError, status), respBody)
	}
}

// requestJSON is the typed form of RequestJSON.
func requestJSON[T any](ctx context.Context, c *Client, endpoint, method string, body any) (T, error) {
	var out T
	if err := c.RequestJSON(ctx, endpoint, method, body, &out); err != nil {
		var zero T
		return zero, err
	}
	return out, nil
}

func (c *Client) buildURL(endpoint string) (string, error) {
	raw := c.baseURL + endpoint
	u, err := url.Parse(raw)
	if err != nil {
		return "", &Error{Kind: KindInvalidResponse, Err: fmt.Errorf("invalid url %q: %w", raw, err)}
	}
	if u.Scheme == "" || u.Host == "" {
		return "", &Error{Kind: KindInvalidResponse, Err: fmt.Errorf("invalid url %q", raw)}
	}
	return u.String(), nil
}

func (c *Client) do(ctx context.Context, endpoint, method string, body any) (int, []byte, error) {
	target, err := c.buildURL(endpoint)
	if err != nil {
		return 0, nil, err
	}

	if err := ctx.Err(); err != nil {
		return 0, nil, fmt.Errorf("request cancelled: %w", err)
	}

	req := fasthttp.AcquireRequest()
	defer fasthttp.ReleaseRequest(req)
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(target)
	req.Header.SetMethod(method)
	req.Header.SetContentType("application/json")
	if c.tokens != nil {
		if token, ok := c.tokens.Get(TokenKey); ok && token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return 0, nil, &Error{Kind: KindInvalidData, Err: fmt.Errorf("failed to encode request: %w", err)}
		}
		req.SetBodyRaw(payload)
	}

	deadline, ok := ctx.Deadline()
	if !ok {
		deadline = time.Now().Add(c.timeout)
	}

	requestID := uuid.NewString()
	logger := logging.FromContext(ctx, c.logger).With("request_id", requestID, "method", method, "endpoint", endpoint)
	start := time.Now()

	if err := c.doer.DoDeadline(req, resp, deadline); err != nil {
		logger.Debug("request failed", "error", err, "duration", time.Since(start))
		return 0, nil, fmt.Errorf("request failed: %w", err)
	}

	status := resp.StatusCode()
	logger.Debug("request completed", "status", status, "duration", time.Since(start))

	// The response buffer is released on return
	respBody := append([]byte(nil), resp.Body()...)
	return status, respBody, nil
}

// withDetail attaches the server's error message when the body carries one.
func withDetail(e *Error, body []byte) *Error {
	if len(body) == 0 {
		return e
	}
	var errResp dto.ErrorResponse
	if err := json.Unmarshal(body, &errResp); err == nil {
		e.Detail = errResp.Message
	}
	return e
}
