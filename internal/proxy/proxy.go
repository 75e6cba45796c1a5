// Package proxy is the typed client every catflix service uses to call its
// peers. A call never returns a raw transport status: its outcome is
// classified into a Kind that callers match on, and Outcome.Err translates
// the classification into the apperr taxonomy.
package proxy

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math/rand"
	"net/http"

	"github.com/abhishek622/catflix/internal/apperr"
	"github.com/abhishek622/catflix/internal/httputil"
	"github.com/abhishek622/catflix/pkg/discovery"
	"github.com/opentracing/opentracing-go"
	"github.com/opentracing/opentracing-go/ext"
	"github.com/uber-go/tally/v4"
	"go.uber.org/zap"
)

// maxBodySize bounds how much of a peer response is read.
const maxBodySize = 4 << 20

// Kind classifies the outcome of a remote call.
type Kind int

const (
	Success Kind = iota
	RemoteNotFound
	RemoteConflict
	RemoteBadRequest
	RemoteUnauthorized
	RemoteForbidden
	UnexpectedFailure
)

func (k Kind) String() string {
	switch k {
	case Success:
		return "success"
	case RemoteNotFound:
		return "not_found"
	case RemoteConflict:
		return "conflict"
	case RemoteBadRequest:
		return "bad_request"
	case RemoteUnauthorized:
		return "unauthorized"
	case RemoteForbidden:
		return "forbidden"
	default:
		return "unexpected"
	}
}

// Classify maps an HTTP status onto a Kind.
func Classify(status int) Kind {
	switch {
	case status >= 200 && status < 300:
		return Success
	case status == http.StatusBadRequest:
		return RemoteBadRequest
	case status == http.StatusUnauthorized:
		return RemoteUnauthorized
	case status == http.StatusForbidden:
		return RemoteForbidden
	case status == http.StatusNotFound:
		return RemoteNotFound
	case status == http.StatusConflict:
		return RemoteConflict
	default:
		return UnexpectedFailure
	}
}

// Outcome is the classified result of one remote call.
type Outcome struct {
	Kind    Kind
	Service string
	Method  string
	Path    string
	// Status is 0 when no response was received.
	Status int
	Body   []byte
	// Cause is the transport error for an UnexpectedFailure without status.
	Cause error
}

// Err translates the outcome into the shared error taxonomy. It returns nil
// on Success. Every 4xx kind maps to its apperr sentinel; anything else is an
// *UpstreamError.
func (o Outcome) Err() error {
	var sentinel error
	switch o.Kind {
	case Success:
		return nil
	case RemoteBadRequest:
		sentinel = apperr.ErrInvalidInput
	case RemoteUnauthorized:
		sentinel = apperr.ErrUnauthorized
	case RemoteForbidden:
		sentinel = apperr.ErrForbidden
	case RemoteNotFound:
		sentinel = apperr.ErrNotFound
	case RemoteConflict:
		sentinel = apperr.ErrAlreadyExists
	default:
		return &UpstreamError{Service: o.Service, Method: o.Method, Path: o.Path, Status: o.Status, Err: o.Cause}
	}
	return fmt.Errorf("%s %s %s: %w", o.Service, o.Method, o.Path, sentinel)
}

// Decode unmarshals a successful JSON payload into v.
func (o Outcome) Decode(v any) error {
	if err := o.Err(); err != nil {
		return err
	}
	if err := json.Unmarshal(o.Body, v); err != nil {
		return &UpstreamError{Service: o.Service, Method: o.Method, Path: o.Path, Status: o.Status, Err: fmt.Errorf("decode payload: %w", err)}
	}
	return nil
}

// Text returns a successful plain text payload.
func (o Outcome) Text() (string, error) {
	if err := o.Err(); err != nil {
		return "", err
	}
	return string(bytes.TrimSpace(o.Body)), nil
}

// UpstreamError is an unclassified failure of a peer: an unexpected status,
// a transport error or an undecodable payload. It matches
// apperr.ErrUpstreamUnavailable.
type UpstreamError struct {
	Service string
	Method  string
	Path    string
	Status  int
	Err     error
}

func (e *UpstreamError) Error() string {
	msg := fmt.Sprintf("upstream %s %s %s failed", e.Service, e.Method, e.Path)
	if e.Status != 0 {
		msg += fmt.Sprintf(" with status %d", e.Status)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *UpstreamError) Is(target error) bool {
	return target == apperr.ErrUpstreamUnavailable
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}

// Client calls one peer service, resolving an instance address through the
// discovery registry on every call.
type Client struct {
	service    string
	registry   discovery.Registry
	httpClient *http.Client
	logger     *zap.Logger
	scope      tally.Scope
}

// New creates a client for service. httpClient carries the call timeout;
// nil scope and logger disable metrics and logging.
func New(service string, registry discovery.Registry, httpClient *http.Client, logger *zap.Logger, scope tally.Scope) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	if scope == nil {
		scope = tally.NoopScope
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		service:    service,
		registry:   registry,
		httpClient: httpClient,
		logger:     logger.With(zap.String("peer", service)),
		scope:      scope.Tagged(map[string]string{"peer": service}),
	}
}

// Call issues method on path with an optional body and classifies the result.
// A string body is sent as text/plain, anything else non-nil as JSON.
func (c *Client) Call(ctx context.Context, method, path string, body any) Outcome {
	out := c.call(ctx, method, path, body)
	c.scope.Tagged(map[string]string{"outcome": out.Kind.String()}).Counter("proxy_calls").Inc(1)
	if out.Kind == UnexpectedFailure {
		c.logger.Warn("Unexpected peer outcome",
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status", out.Status),
			zap.Error(out.Cause),
		)
	}
	return out
}

func (c *Client) call(ctx context.Context, method, path string, body any) Outcome {
	out := Outcome{Kind: UnexpectedFailure, Service: c.service, Method: method, Path: path}

	span, ctx := opentracing.StartSpanFromContext(ctx, "Proxy/"+c.service)
	defer span.Finish()
	ext.SpanKindRPCClient.Set(span)
	ext.HTTPMethod.Set(span, method)
	ext.HTTPUrl.Set(span, path)

	addrs, err := c.registry.ServiceAddresses(ctx, c.service)
	if err != nil {
		out.Cause = fmt.Errorf("resolve %s: %w", c.service, err)
		return out
	}

	var reader io.Reader
	contentType := ""
	switch b := body.(type) {
	case nil:
	case string:
		reader = bytes.NewBufferString(b)
		contentType = "text/plain; charset=utf-8"
	default:
		payload, err := json.Marshal(b)
		if err != nil {
			out.Cause = fmt.Errorf("encode request: %w", err)
			return out
		}
		reader = bytes.NewReader(payload)
		contentType = "application/json"
	}

	req, err := http.NewRequestWithContext(ctx, method, "http://"+addrs[rand.Intn(len(addrs))]+path, reader)
	if err != nil {
		out.Cause = err
		return out
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if id := httputil.RequestIDFromContext(ctx); id != "" {
		req.Header.Set(httputil.RequestIDHeader, id)
	}
	_ = span.Tracer().Inject(span.Context(), opentracing.HTTPHeaders, opentracing.HTTPHeadersCarrier(req.Header))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		out.Cause = err
		return out
	}
	defer resp.Body.Close()
	ext.HTTPStatusCode.Set(span, uint16(resp.StatusCode))

	out.Status = resp.StatusCode
	out.Kind = Classify(resp.StatusCode)
	out.Body, err = io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil && out.Kind == Success {
		out.Kind = UnexpectedFailure
		out.Cause = fmt.Errorf("read response: %w", err)
	}
	return out
}

