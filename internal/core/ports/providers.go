package ports

import (
	"context"

	"github.com/firewatch-nepal/portal/internal/core/domain"
)

// HotspotFeed fetches satellite fire detections over Nepal.
type HotspotFeed interface {
	Fetch(ctx context.Context, sensor string, days int) ([]domain.FireHotspot, error)
}

// WeatherProvider returns current conditions at a point.
type WeatherProvider interface {
	Current(ctx context.Context, lat, lon float64) (*domain.Weather, error)
}

// ElevationProvider returns the terrain elevation at a point, in metres.
type ElevationProvider interface {
	Elevation(ctx context.Context, lat, lon float64) (float64, error)
}
