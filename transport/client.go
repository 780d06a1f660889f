package transport

import (
	"bytes"
	"compress/gzip"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/relaypush/relay-go/logger"
	"github.com/relaypush/relay-go/version"
)

const (
	tracerName = "github.com/relaypush/relay-go/transport"

	// acceptEncoding is set explicitly, so gzip bodies must be decoded here
	// rather than by net/http's automatic decompression.
	acceptEncoding = "gzip;q=1.0,compress;q=0.5"
)

// Client is the shared HTTP dispatch layer. It is safe for concurrent use;
// each call schedules exactly one exchange, with no retries and no caching.
type Client struct {
	doer   Doer
	config Config
	log    *logger.Logger
	tracer trace.Tracer
}

// New creates a transport client from the given configuration.
func New(cfg Config) (*Client, error) {
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	doer := cfg.HTTPClient
	if doer == nil {
		doer = &http.Client{Timeout: cfg.Timeout}
	}

	return &Client{
		doer:   doer,
		config: cfg,
		log:    cfg.Logger.WithComponent("transport"),
		tracer: otel.Tracer(tracerName),
	}, nil
}

// Do executes an HTTP exchange and returns the captured response.
//
// Error contract: a network-layer failure is returned with the original
// error preserved and no response; a status of 400 or above returns both
// the response and an *Error whose Code equals the status.
func (c *Client) Do(ctx context.Context, req Request) (*Response, error) {
	httpReq, err := c.buildRequest(ctx, req)
	if err != nil {
		return nil, err
	}

	ctx, span := c.tracer.Start(ctx, "http.request", trace.WithAttributes(
		attribute.String("http.request.method", req.Method),
		attribute.String("url.path", httpReq.URL.Path),
	))
	defer span.End()
	httpReq = httpReq.WithContext(ctx)

	start := time.Now()
	resp, err := c.doer.Do(httpReq)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "request failed")
		c.log.Debug("exchange failed", logger.Fields(
			logger.FieldMethod, req.Method,
			logger.FieldPath, req.Path,
			logger.FieldError, err.Error(),
		))
		return nil, NewNetworkError(err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := readBody(resp)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "read body failed")
		return nil, NewNetworkError(fmt.Errorf("read response body: %w", err))
	}

	span.SetAttributes(attribute.Int("http.response.status_code", resp.StatusCode))
	c.log.Debug("exchange complete", logger.Fields(
		logger.FieldMethod, req.Method,
		logger.FieldPath, req.Path,
		logger.FieldStatus, resp.StatusCode,
		logger.FieldRequestID, httpReq.Header.Get("X-Request-Id"),
		logger.FieldDuration, time.Since(start).Milliseconds(),
	))

	result := &Response{
		StatusCode: resp.StatusCode,
		Headers:    flattenHeaders(resp.Header),
		Body:       body,
	}

	if result.IsError() {
		span.SetStatus(codes.Error, fmt.Sprintf("HTTP %d", resp.StatusCode))
		return result, NewHTTPError(resp.StatusCode, body)
	}

	return result, nil
}

// Unwrap returns the injected Doer for advanced use cases.
func (c *Client) Unwrap() Doer {
	return c.doer
}

// buildRequest constructs an *http.Request from the client config and request.
func (c *Client) buildRequest(ctx context.Context, req Request) (*http.Request, error) {
	url := req.Path
	if !strings.HasPrefix(req.Path, "http://") && !strings.HasPrefix(req.Path, "https://") {
		url = strings.TrimRight(c.config.BaseURL, "/") + "/" + strings.TrimLeft(req.Path, "/")
	}

	body, isJSON, err := encodeBody(req.Body)
	if err != nil {
		return nil, NewInvalidRequestError("encode body", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.Method, url, body)
	if err != nil {
		return nil, NewInvalidRequestError("create request", err)
	}

	if len(req.Query) > 0 {
		q := httpReq.URL.Query()
		for k, v := range req.Query {
			q.Set(k, v)
		}
		httpReq.URL.RawQuery = q.Encode()
	}

	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("Accept-Encoding", acceptEncoding)
	httpReq.Header.Set("User-Agent", version.UserAgent())
	httpReq.Header.Set("X-Request-Id", uuid.New().String())

	for k, v := range c.config.Headers {
		httpReq.Header.Set(k, v)
	}
	for k, v := range req.Headers {
		httpReq.Header.Set(k, v)
	}

	if body != nil && isJSON && httpReq.Header.Get("Content-Type") == "" {
		httpReq.Header.Set("Content-Type", "application/json")
	}

	if !req.Anonymous {
		auth := c.config.Auth
		if req.Auth != nil {
			auth = req.Auth
		}
		auth.apply(httpReq)
	}

	return httpReq, nil
}

// encodeBody converts a body value into an io.Reader. The boolean reports
// whether the body was JSON-encoded here.
func encodeBody(body any) (io.Reader, bool, error) {
	if body == nil {
		return nil, false, nil
	}
	switch v := body.(type) {
	case io.Reader:
		return v, false, nil
	case []byte:
		return bytes.NewReader(v), false, nil
	case json.RawMessage:
		return bytes.NewReader(v), true, nil
	default:
		data, err := json.Marshal(v)
		if err != nil {
			return nil, false, err
		}
		return bytes.NewReader(data), true, nil
	}
}

// readBody drains the response body, decoding gzip when the server honored
// the advertised Accept-Encoding.
func readBody(resp *http.Response) ([]byte, error) {
	var r io.Reader = resp.Body
	if strings.EqualFold(resp.Header.Get("Content-Encoding"), "gzip") {
		gz, err := gzip.NewReader(resp.Body)
		if err != nil {
			return nil, err
		}
		defer func() { _ = gz.Close() }()
		r = gz
	}
	return io.ReadAll(r)
}

// flattenHeaders converts multi-value headers to single-value.
func flattenHeaders(h http.Header) map[string]string {
	result := make(map[string]string, len(h))
	for k, v := range h {
		if len(v) > 0 {
			result[k] = v[0]
		}
	}
	return result
}
