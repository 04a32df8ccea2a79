package weather

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/firewatch-nepal/portal/internal/core/domain"
)

const DefaultOpenWeatherURL = "https://api.openweathermap.org"

// OpenWeather reads current conditions in metric units.
type OpenWeather struct {
	baseURL string
	apiKey  string
	http    *http.Client
	log     zerolog.Logger
}

func NewOpenWeather(baseURL, apiKey string, timeout time.Duration, log zerolog.Logger) *OpenWeather {
	if baseURL == "" {
		baseURL = DefaultOpenWeatherURL
	}
	return &OpenWeather{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		http:    &http.Client{Timeout: timeout},
		log:     log,
	}
}

type currentResponse struct {
	Main struct {
		Temp     float64 `json:"temp"`
		Humidity float64 `json:"humidity"`
	} `json:"main"`
	Wind struct {
		Speed float64 `json:"speed"`
	} `json:"wind"`
	Rain struct {
		OneHour float64 `json:"1h"`
	} `json:"rain"`
}

func (o *OpenWeather) Current(ctx context.Context, lat, lon float64) (*domain.Weather, error) {
	q := url.Values{}
	q.Set("lat", strconv.FormatFloat(lat, 'f', -1, 64))
	q.Set("lon", strconv.FormatFloat(lon, 'f', -1, 64))
	q.Set("appid", o.apiKey)
	q.Set("units", "metric")

	var res currentResponse
	if err := getJSON(ctx, o.http, "openweather", "weather.current", o.baseURL+"/data/2.5/weather?"+q.Encode(), &res); err != nil {
		return nil, err
	}
	return &domain.Weather{
		Temperature:   res.Main.Temp,
		Humidity:      res.Main.Humidity,
		WindSpeed:     res.Wind.Speed,
		Precipitation: res.Rain.OneHour,
	}, nil
}
