package httpx

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const requestIDHeader = "X-Request-ID"

// Response is a fully read HTTP response.
type Response struct {
	StatusCode int
	Body       []byte
	RequestID  string
}

// Client issues exactly one request per call. It does not retry and does not
// interpret the status code; callers decide what a non-2xx body means.
type Client struct {
	HTTP *http.Client
	Log  *zap.Logger
}

func (c *Client) Get(ctx context.Context, rawURL string) (Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return Response{}, fmt.Errorf("create request: %w", err)
	}
	return c.Do(req)
}

func (c *Client) Do(req *http.Request) (Response, error) {
	hc := c.HTTP
	if hc == nil {
		hc = http.DefaultClient
	}
	log := c.Log
	if log == nil {
		log = zap.NewNop()
	}

	rid := req.Header.Get(requestIDHeader)
	if rid == "" {
		rid = uuid.NewString()
		req.Header.Set(requestIDHeader, rid)
	}
	// the query string may carry credentials, so only host and path are logged
	log = log.With(
		zap.String("method", req.Method),
		zap.String("host", req.URL.Host),
		zap.String("path", req.URL.Path),
		zap.String("request_id", rid),
	)

	log.Debug("http.request_start")
	resp, err := hc.Do(req)
	if err != nil {
		log.Debug("http.request_failed", zap.Error(err))
		return Response{}, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Debug("http.read_failed", zap.Error(err))
		return Response{}, fmt.Errorf("read body: %w", err)
	}
	log.Debug("http.request_done",
		zap.Int("status", resp.StatusCode),
		zap.Int("body_bytes", len(body)),
	)
	return Response{StatusCode: resp.StatusCode, Body: body, RequestID: rid}, nil
}
