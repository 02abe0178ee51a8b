package api

import (
	"context"
	"encoding/json"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/valyala/fasthttp"
	"github.com/valyala/fasthttp/fasthttputil"
)

func newTestHTTPClient(t *testing.T, handler fasthttp.RequestHandler, timeout time.Duration) *HTTPClient {
	t.Helper()
	ln := fasthttputil.NewInmemoryListener()
	srv := &fasthttp.Server{Handler: handler}
	go srv.Serve(ln) //nolint:errcheck
	t.Cleanup(func() { _ = ln.Close() })

	cfg := DefaultConnectionConfig()
	cfg.Dial = func(addr string) (net.Conn, error) { return ln.Dial() }
	c := NewHTTPClientWithConfig("http://haloscan.test/api/keywords/overview", "s3cr3t", timeout, cfg)
	t.Cleanup(c.Close)
	return c
}

func TestHTTPClient_Lookup(t *testing.T) {
	var got lookupRequest
	var gotKey, gotMethod, gotPath string
	c := newTestHTTPClient(t, func(ctx *fasthttp.RequestCtx) {
		gotMethod = string(ctx.Method())
		gotPath = string(ctx.Path())
		gotKey = string(ctx.Request.Header.Peek(APIKeyHeader))
		_ = json.Unmarshal(ctx.PostBody(), &got)
		ctx.SetContentType("application/json")
		ctx.SetBodyString(`{"results":[{"volume":1200,"allintitle":45,"cpc":0.8}]}`)
	}, 5*time.Second)

	m, err := c.Lookup(context.Background(), "Poubelle bambou")
	require.NoError(t, err)
	require.NotNil(t, m)
	assert.Equal(t, 1200.0, *m.Volume)
	assert.Equal(t, 45.0, *m.AllInTitle)
	assert.Equal(t, 0.8, *m.CPC)

	assert.Equal(t, fasthttp.MethodPost, gotMethod)
	assert.Equal(t, "/api/keywords/overview", gotPath)
	assert.Equal(t, "s3cr3t", gotKey)
	assert.Equal(t, lookupRequest{Keyword: "Poubelle bambou", RequestedData: []string{"highlights"}}, got)

	total, failed := c.Stats()
	assert.Equal(t, uint64(1), total)
	assert.Zero(t, failed)
}

func TestHTTPClient_Status(t *testing.T) {
	c := newTestHTTPClient(t, func(ctx *fasthttp.RequestCtx) {
		ctx.SetStatusCode(fasthttp.StatusUnauthorized)
		ctx.SetBodyString(`{"error":"invalid key"}`)
	}, 5*time.Second)

	_, err := c.Lookup(context.Background(), "x")
	var statusErr *HTTPStatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, fasthttp.StatusUnauthorized, statusErr.Code)
	assert.Equal(t, OutcomeHTTPStatus, ClassifyError(err))

	_, failed := c.Stats()
	assert.Equal(t, uint64(1), failed)
}

func TestHTTPClient_Timeout(t *testing.T) {
	c := newTestHTTPClient(t, func(ctx *fasthttp.RequestCtx) {
		time.Sleep(500 * time.Millisecond)
		ctx.SetBodyString(`{}`)
	}, 50*time.Millisecond)

	_, err := c.Lookup(context.Background(), "x")
	assert.ErrorIs(t, err, ErrTimeout)
}

func TestHTTPClient_Malformed(t *testing.T) {
	c := newTestHTTPClient(t, func(ctx *fasthttp.RequestCtx) {
		ctx.SetBodyString(`<html>maintenance</html>`)
	}, 5*time.Second)

	_, err := c.Lookup(context.Background(), "x")
	assert.ErrorIs(t, err, ErrMalformedResponse)
}
