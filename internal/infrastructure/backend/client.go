// Package backend holds the typed data-fetch adapters for the FireWatch
// backend REST API. Each exported method is one resource operation; every
// call forwards the caller's bearer token and reports failures as
// *domain.NetworkError or *domain.ServerError.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/firewatch-nepal/portal/internal/api/metrics"
	"github.com/firewatch-nepal/portal/internal/core/domain"
)

const (
	upstreamName   = "backend"
	defaultTimeout = 15 * time.Second
	maxErrorBody   = 4 << 10
)

// Client talks to the backend REST API.
type Client struct {
	baseURL string
	http    *http.Client
	log     zerolog.Logger
}

// New returns a Client for baseURL. A default timeout is applied when none is
// provided.
func New(baseURL string, timeout time.Duration, log zerolog.Logger) *Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		log:     log,
	}
}

type call struct {
	op     string
	method string
	path   string
	token  string
	json   any
	form   url.Values
}

// do executes c and decodes a 2xx JSON body into out (when out is non-nil).
func (cl *Client) do(ctx context.Context, c call, out any) error {
	start := time.Now()
	outcome := "ok"
	defer func() {
		metrics.UpstreamRequestsTotal.WithLabelValues(upstreamName, c.op, outcome).Inc()
		metrics.UpstreamRequestDuration.WithLabelValues(upstreamName, c.op).Observe(time.Since(start).Seconds())
	}()

	var (
		body        io.Reader
		contentType string
	)
	switch {
	case c.form != nil:
		body = strings.NewReader(c.form.Encode())
		contentType = "application/x-www-form-urlencoded"
	case c.json != nil:
		buf, err := json.Marshal(c.json)
		if err != nil {
			outcome = "encode_error"
			return fmt.Errorf("%s: encode request: %w", c.op, err)
		}
		body = bytes.NewReader(buf)
		contentType = "application/json"
	}

	req, err := http.NewRequestWithContext(ctx, c.method, cl.baseURL+c.path, body)
	if err != nil {
		outcome = "encode_error"
		return fmt.Errorf("%s: build request: %w", c.op, err)
	}
	req.Header.Set("Accept", "application/json")
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := cl.http.Do(req)
	if err != nil {
		outcome = "network_error"
		return &domain.NetworkError{Op: c.op, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		outcome = "server_error"
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		serr := &domain.ServerError{Op: c.op, Status: resp.StatusCode, Message: errorMessage(raw)}
		cl.log.Debug().Str("op", c.op).Int("status", resp.StatusCode).Str("message", serr.Message).Msg("backend returned error")
		return serr
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		outcome = "decode_error"
		return fmt.Errorf("%s: decode response: %w", c.op, err)
	}
	return nil
}

// errorMessage extracts a human message from a FastAPI-style error body:
// {"detail": "..."}, {"error": "..."} or {"message": "..."}.
func errorMessage(raw []byte) string {
	var body map[string]any
	if err := json.Unmarshal(raw, &body); err != nil {
		return strings.TrimSpace(string(raw))
	}
	for _, key := range []string{"detail", "error", "message"} {
		if s, ok := body[key].(string); ok && s != "" {
			return s
		}
	}
	return ""
}

func escape(id string) string { return url.PathEscape(id) }
