package client

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/dmitrijs2005/bnet-enroll/internal/common"
	"github.com/dmitrijs2005/bnet-enroll/internal/logging"
	"github.com/dmitrijs2005/bnet-enroll/internal/netx"
)

// HTTPTransport implements Transport over plain HTTP.
type HTTPTransport struct {
	client  *http.Client
	baseURL string
	log     logging.Logger
}

// Option configures an HTTPTransport.
type Option func(*HTTPTransport)

// WithBaseURL sends every region to baseURL instead of the region table.
func WithBaseURL(baseURL string) Option {
	return func(t *HTTPTransport) { t.baseURL = strings.TrimRight(baseURL, "/") }
}

// WithHTTPClient replaces the underlying *http.Client.
func WithHTTPClient(c *http.Client) Option {
	return func(t *HTTPTransport) { t.client = c }
}

// WithLogger sets the logger used for request tracing.
func WithLogger(l logging.Logger) Option {
	return func(t *HTTPTransport) { t.log = l }
}

// NewHTTPTransport creates a transport with the given request timeout.
func NewHTTPTransport(timeout time.Duration, opts ...Option) *HTTPTransport {
	t := &HTTPTransport{
		client: &http.Client{Timeout: timeout},
		log:    logging.Nop{},
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// EnrollURL returns the full enrollment URL for region.
func (t *HTTPTransport) EnrollURL(region string) (string, error) {
	base := t.baseURL
	if base == "" {
		var ok bool
		base, ok = RegionBaseURL(region)
		if !ok {
			return "", fmt.Errorf("%w: unknown region %q", common.ErrTransport, region)
		}
	}
	return base + common.EnrollPath, nil
}

// Send POSTs body to the region's enrollment endpoint.
func (t *HTTPTransport) Send(ctx context.Context, region string, body []byte) ([]byte, error) {
	url, err := t.EnrollURL(region)
	if err != nil {
		return nil, err
	}

	t.log.Debug(ctx, "enrollment request", "method", http.MethodPost, "url", url, "bytes", len(body))
	start := time.Now()

	resp, err := netx.PostOctetStream(ctx, t.client, url, body)
	if err != nil {
		t.log.Debug(ctx, "enrollment request failed", "url", url, "latency", time.Since(start), "error", err)
		return nil, fmt.Errorf("%w: %w", common.ErrTransport, err)
	}

	t.log.Debug(ctx, "enrollment response", "url", url, "bytes", len(resp), "latency", time.Since(start))
	return resp, nil
}

var _ Transport = (*HTTPTransport)(nil)
