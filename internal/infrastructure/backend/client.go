// Package backend implements the auth and provisioning gateways over
// JSON-over-HTTPS.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const (
	maxBodyBytes    = 1 << 20
	headerRequestID = "X-Request-Id"
	headerIdemKey   = "Idempotency-Key"
)

// Config captures the settings shared by both gateways.
type Config struct {
	// Timeout bounds each backend call. Zero means no bound.
	Timeout time.Duration
	// HTTPClient defaults to a fresh http.Client.
	HTTPClient *http.Client
}

// Client performs JSON requests against the backend functions.
type Client struct {
	http    *http.Client
	timeout time.Duration
	log     zerolog.Logger
}

func NewClient(cfg Config, log zerolog.Logger) *Client {
	hc := cfg.HTTPClient
	if hc == nil {
		hc = &http.Client{}
	}
	return &Client{http: hc, timeout: cfg.Timeout, log: log}
}

// do sends body (if non-nil) as JSON and decodes the reply into out.
//
// A reply that cannot be decoded is an error only when the status is 2xx;
// for other statuses the status code alone is reported so callers can fall
// back to a generic message.
func (c *Client) do(ctx context.Context, method, url string, headers map[string]string, body, out any) (int, error) {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return 0, fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return 0, fmt.Errorf("build request: %w", err)
	}
	requestID := uuid.NewString()
	req.Header.Set("Accept", "application/json")
	req.Header.Set(headerRequestID, requestID)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		return 0, fmt.Errorf("%s %s: %w", method, req.URL.Path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return resp.StatusCode, fmt.Errorf("read response: %w", err)
	}

	c.log.Debug().
		Str("request_id", requestID).
		Str("method", method).
		Str("path", req.URL.Path).
		Int("status_code", resp.StatusCode).
		Dur("elapsed", time.Since(start)).
		Msg("backend call")

	if err := json.Unmarshal(raw, out); err != nil {
		if resp.StatusCode >= 200 && resp.StatusCode < 300 {
			return resp.StatusCode, fmt.Errorf("decode response: %w", err)
		}
		c.log.Debug().Err(err).Int("status_code", resp.StatusCode).Msg("undecodable error body")
	}
	return resp.StatusCode, nil
}
