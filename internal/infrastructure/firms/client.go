package firms

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/firewatch-nepal/portal/internal/api/metrics"
	"github.com/firewatch-nepal/portal/internal/core/domain"
)

const (
	DefaultBaseURL = "https://firms.modaps.eosdis.nasa.gov"
	DefaultSensor  = "MODIS_NRT"
	country        = "NPL"
	maxDays        = 10
	upstreamName   = "firms"
)

// Sensors lists the near-real-time sources the country endpoint serves.
var Sensors = map[string]struct{}{
	"MODIS_NRT":        {},
	"VIIRS_SNPP_NRT":   {},
	"VIIRS_NOAA20_NRT": {},
	"VIIRS_NOAA21_NRT": {},
}

// Client fetches the country CSV feed.
type Client struct {
	baseURL string
	mapKey  string
	http    *http.Client
	log     zerolog.Logger
}

func NewClient(baseURL, mapKey string, timeout time.Duration, log zerolog.Logger) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		mapKey:  mapKey,
		http:    &http.Client{Timeout: timeout},
		log:     log,
	}
}

// Validate checks sensor and days against what the feed accepts.
func Validate(sensor string, days int) error {
	var fields []string
	if _, ok := Sensors[sensor]; !ok {
		fields = append(fields, fmt.Sprintf("sensor: unsupported value %q", sensor))
	}
	if days < 1 || days > maxDays {
		fields = append(fields, fmt.Sprintf("days: must be between 1 and %d", maxDays))
	}
	if len(fields) > 0 {
		return domain.NewValidationError(fields...)
	}
	return nil
}

// Fetch returns the hotspots detected by sensor over the last days days.
func (c *Client) Fetch(ctx context.Context, sensor string, days int) ([]domain.FireHotspot, error) {
	if err := Validate(sensor, days); err != nil {
		return nil, err
	}
	const op = "firms.fetch"
	start := time.Now()
	outcome := "ok"
	defer func() {
		metrics.UpstreamRequestsTotal.WithLabelValues(upstreamName, op, outcome).Inc()
		metrics.UpstreamRequestDuration.WithLabelValues(upstreamName, op).Observe(time.Since(start).Seconds())
	}()

	url := fmt.Sprintf("%s/api/country/csv/%s/%s/%s/%s", c.baseURL, c.mapKey, sensor, country, strconv.Itoa(days))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		outcome = "encode_error"
		return nil, fmt.Errorf("%s: build request: %w", op, err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		outcome = "network_error"
		return nil, &domain.NetworkError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		outcome = "server_error"
		return nil, &domain.ServerError{Op: op, Status: resp.StatusCode, Message: "hotspot feed unavailable"}
	}

	records, err := ParseFeed(resp.Body)
	if err != nil {
		outcome = "decode_error"
		return nil, fmt.Errorf("%s: parse feed: %w", op, err)
	}
	hotspots := ToHotspots(records)
	c.log.Debug().Str("sensor", sensor).Int("days", days).Int("hotspots", len(hotspots)).Msg("hotspot feed fetched")
	return hotspots, nil
}
