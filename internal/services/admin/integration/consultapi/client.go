package consultapi

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const (
	// DefaultBaseURL is the production API root.
	DefaultBaseURL = "https://api.doubtsclear.com/api"
	// DefaultUploadsBaseURL hosts expert documents referenced by relative path.
	DefaultUploadsBaseURL = "https://doubt.deltinroyale.club"

	tracerName = "github.com/doubtsclear/console/internal/services/admin/integration/consultapi"
)

// TokenSource resolves the bearer token for the admin making the request.
type TokenSource interface {
	Token(ctx context.Context) (string, error)
}

// TokenSourceFunc adapts a function to TokenSource.
type TokenSourceFunc func(ctx context.Context) (string, error)

func (f TokenSourceFunc) Token(ctx context.Context) (string, error) {
	return f(ctx)
}

// Config configures a Client.
type Config struct {
	BaseURL string
	Timeout time.Duration
	Tokens  TokenSource
	// HTTPClient overrides the transport, mostly for tests.
	HTTPClient *http.Client
	Tracer     trace.Tracer
}

// Client calls the consultation API.
type Client struct {
	rest   *resty.Client
	tokens TokenSource
	tracer trace.Tracer
}

// New builds a client for one base URL.
func New(cfg Config) (*Client, error) {
	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	parsed, err := url.Parse(baseURL)
	if err != nil || (parsed.Scheme != "http" && parsed.Scheme != "https") || parsed.Host == "" {
		return nil, fmt.Errorf("invalid api base url %q", cfg.BaseURL)
	}
	if cfg.Tokens == nil {
		return nil, errors.New("token source is required")
	}

	var rest *resty.Client
	if cfg.HTTPClient != nil {
		rest = resty.NewWithClient(cfg.HTTPClient)
	} else {
		rest = resty.New()
	}
	rest.SetBaseURL(baseURL).
		SetHeader("Accept", "application/json").
		SetDisableWarn(true)
	if cfg.Timeout > 0 {
		rest.SetTimeout(cfg.Timeout)
	}

	tracer := cfg.Tracer
	if tracer == nil {
		tracer = otel.Tracer(tracerName)
	}
	return &Client{rest: rest, tokens: cfg.Tokens, tracer: tracer}, nil
}

// BaseURL returns the normalized API root.
func (c *Client) BaseURL() string {
	return c.rest.BaseURL
}

type request struct {
	op     string
	method string
	path   string
	query  map[string]string
	body   any
	public bool
}

// execute performs one request and returns the raw 2xx body.
func (c *Client) execute(ctx context.Context, req request) ([]byte, int, error) {
	ctx, span := c.tracer.Start(ctx, "consultapi."+req.op,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("http.request.method", req.method),
			attribute.String("url.path", req.path),
		),
	)
	defer span.End()

	r := c.rest.R().SetContext(ctx)
	if !req.public {
		token, err := c.tokens.Token(ctx)
		if err == nil && strings.TrimSpace(token) == "" {
			err = ErrUnauthenticated
		}
		if err != nil {
			apiErr := unauthenticatedError(req.op, err)
			span.RecordError(apiErr)
			span.SetStatus(codes.Error, "unauthenticated")
			return nil, 0, apiErr
		}
		r.SetAuthToken(token)
	}
	if len(req.query) > 0 {
		r.SetQueryParams(req.query)
	}
	if req.body != nil {
		r.SetHeader("Content-Type", "application/json").SetBody(req.body)
	}

	resp, err := r.Execute(req.method, req.path)
	if err != nil {
		apiErr := transportError(req.op, err)
		span.RecordError(err)
		span.SetStatus(codes.Error, "transport")
		return nil, 0, apiErr
	}

	status := resp.StatusCode()
	span.SetAttributes(attribute.Int("http.response.status_code", status))
	if status < 200 || status > 299 {
		apiErr := statusError(req.op, status, resp.Body())
		span.SetStatus(codes.Error, apiErr.Message)
		return nil, status, apiErr
	}
	return resp.Body(), status, nil
}

// call executes req and decodes the body with the endpoint's decoder.
func call[T any](ctx context.Context, c *Client, req request, decode func([]byte) (T, error)) (T, error) {
	var zero T
	body, status, err := c.execute(ctx, req)
	if err != nil {
		return zero, err
	}
	value, err := decode(body)
	if err != nil {
		return zero, decodeFailure(req.op, status, err)
	}
	return value, nil
}

func idPath(prefix string, id string) string {
	return prefix + "/" + url.PathEscape(strings.TrimSpace(id))
}
