package weather

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

const (
	DefaultOpenTopoURL     = "https://api.opentopodata.org"
	DefaultOpenTopoDataset = "srtm90m"
)

// OpenTopo looks up terrain elevation in metres.
type OpenTopo struct {
	baseURL string
	dataset string
	http    *http.Client
	log     zerolog.Logger
}

func NewOpenTopo(baseURL, dataset string, timeout time.Duration, log zerolog.Logger) *OpenTopo {
	if baseURL == "" {
		baseURL = DefaultOpenTopoURL
	}
	if dataset == "" {
		dataset = DefaultOpenTopoDataset
	}
	return &OpenTopo{
		baseURL: strings.TrimRight(baseURL, "/"),
		dataset: dataset,
		http:    &http.Client{Timeout: timeout},
		log:     log,
	}
}

type elevationResponse struct {
	Status  string `json:"status"`
	Results []struct {
		Elevation *float64 `json:"elevation"`
	} `json:"results"`
}

func (o *OpenTopo) Elevation(ctx context.Context, lat, lon float64) (float64, error) {
	const op = "elevation.lookup"
	loc := strconv.FormatFloat(lat, 'f', -1, 64) + "," + strconv.FormatFloat(lon, 'f', -1, 64)
	u := fmt.Sprintf("%s/v1/%s?locations=%s", o.baseURL, url.PathEscape(o.dataset), url.QueryEscape(loc))

	var res elevationResponse
	if err := getJSON(ctx, o.http, "opentopo", op, u, &res); err != nil {
		return 0, err
	}
	if len(res.Results) == 0 || res.Results[0].Elevation == nil {
		// Points over water or outside the dataset come back null.
		o.log.Debug().Float64("lat", lat).Float64("lon", lon).Msg("no elevation for point")
		return 0, nil
	}
	return *res.Results[0].Elevation, nil
}
