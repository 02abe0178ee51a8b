package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/valyala/fasthttp"

	"seo-pages-go/pkg/logger"
)

// APIKeyHeader carries the Haloscan API key.
const APIKeyHeader = "haloscan-api-key"

type lookupRequest struct {
	Keyword       string   `json:"keyword"`
	RequestedData []string `json:"requested_data"`
}

// HTTPClient queries the Haloscan keyword endpoint directly. The response
// document is the same one the command wrapper prints.
type HTTPClient struct {
	endpoint    string
	apiKey      string
	timeout     time.Duration
	connManager *ConnectionManager
	parser      *ResponseParser
	log         *logger.Logger

	totalRequests  uint64
	failedRequests uint64
}

func NewHTTPClient(endpoint, apiKey string, timeout time.Duration) *HTTPClient {
	return NewHTTPClientWithConfig(endpoint, apiKey, timeout, DefaultConnectionConfig())
}

// NewHTTPClientWithConfig creates a client with custom connection settings.
func NewHTTPClientWithConfig(endpoint, apiKey string, timeout time.Duration, connConfig ConnectionConfig) *HTTPClient {
	sl := logger.NewSecurityLogger(logger.GetLogger())
	return &HTTPClient{
		endpoint:    endpoint,
		apiKey:      apiKey,
		timeout:     timeout,
		connManager: NewConnectionManager(connConfig),
		parser:      NewResponseParser(),
		log: logger.GetLogger().WithFields(map[string]interface{}{
			"component": "haloscan_http",
			"endpoint":  sl.MaskAPIEndpoint(endpoint),
		}),
	}
}

func (c *HTTPClient) Lookup(ctx context.Context, keyword string) (*KeywordMetrics, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	atomic.AddUint64(&c.totalRequests, 1)
	start := time.Now()

	m, err := c.doLookup(ctx, keyword)
	if err != nil {
		atomic.AddUint64(&c.failedRequests, 1)
		return nil, err
	}

	c.log.WithFields(map[string]interface{}{
		"keyword":     keyword,
		"duration_ms": time.Since(start).Milliseconds(),
	}).Debug("Haloscan query completed")
	return m, nil
}

func (c *HTTPClient) doLookup(ctx context.Context, keyword string) (*KeywordMetrics, error) {
	body, err := json.Marshal(lookupRequest{Keyword: keyword, RequestedData: []string{RequestedData}})
	if err != nil {
		return nil, fmt.Errorf("failed to encode request: %w", err)
	}

	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(c.endpoint)
	req.Header.SetMethod(fasthttp.MethodPost)
	req.Header.SetContentType("application/json")
	req.Header.Set("Accept", "application/json")
	if c.apiKey != "" {
		req.Header.Set(APIKeyHeader, c.apiKey)
	}
	req.SetBody(body)

	deadline := time.Now().Add(c.timeout)
	if d, ok := ctx.Deadline(); ok && d.Before(deadline) {
		deadline = d
	}

	if err := c.connManager.GetFastHTTPClient().DoDeadline(req, resp, deadline); err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		if errors.Is(err, fasthttp.ErrTimeout) {
			return nil, fmt.Errorf("%w after %s", ErrTimeout, c.timeout)
		}
		return nil, fmt.Errorf("%w: %v", ErrTransport, err)
	}

	if resp.StatusCode() != fasthttp.StatusOK {
		return nil, &HTTPStatusError{Code: resp.StatusCode(), Body: snippet(resp.Body())}
	}

	return c.parser.ParseResponse(resp.Body())
}

// Stats returns the request and failure counters.
func (c *HTTPClient) Stats() (total, failed uint64) {
	return atomic.LoadUint64(&c.totalRequests), atomic.LoadUint64(&c.failedRequests)
}

// Close releases idle connections.
func (c *HTTPClient) Close() {
	c.connManager.Close()
}
