// Package weather holds the point-conditions providers used by the map: current
// weather from OpenWeatherMap and terrain elevation from OpenTopoData.
package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/firewatch-nepal/portal/internal/api/metrics"
	"github.com/firewatch-nepal/portal/internal/core/domain"
)

// getJSON issues a GET and decodes a 200 JSON body into out.
func getJSON(ctx context.Context, hc *http.Client, upstream, op, url string, out any) error {
	start := time.Now()
	outcome := "ok"
	defer func() {
		metrics.UpstreamRequestsTotal.WithLabelValues(upstream, op, outcome).Inc()
		metrics.UpstreamRequestDuration.WithLabelValues(upstream, op).Observe(time.Since(start).Seconds())
	}()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		outcome = "encode_error"
		return fmt.Errorf("%s: build request: %w", op, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := hc.Do(req)
	if err != nil {
		outcome = "network_error"
		return &domain.NetworkError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		outcome = "server_error"
		_, _ = io.Copy(io.Discard, resp.Body)
		return &domain.ServerError{Op: op, Status: resp.StatusCode, Message: upstream + " request failed"}
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		outcome = "decode_error"
		return fmt.Errorf("%s: decode response: %w", op, err)
	}
	return nil
}
