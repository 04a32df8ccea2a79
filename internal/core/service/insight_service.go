package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/firewatch-nepal/portal/internal/api/metrics"
	"github.com/firewatch-nepal/portal/internal/core/domain"
	"github.com/firewatch-nepal/portal/internal/core/ports"
)

const insightView = "point-insight"

// InsightService answers map clicks with weather, elevation and VPD for the
// clicked point. Rapid clicks from one client are sequenced so an older
// response can never overwrite a newer one.
type InsightService struct {
	weather   ports.WeatherProvider
	elevation ports.ElevationProvider
	seq       *Sequencer
	log       zerolog.Logger
}

func NewInsightService(weather ports.WeatherProvider, elevation ports.ElevationProvider, seq *Sequencer, log zerolog.Logger) *InsightService {
	return &InsightService{weather: weather, elevation: elevation, seq: seq, log: log}
}

// PointInsight fetches conditions at lat/lon. If the client clicks again
// before this finishes, this call returns domain.ErrStaleResponse.
func (s *InsightService) PointInsight(ctx context.Context, clientID string, lat, lon float64) (*domain.PointInsight, error) {
	if lat < -90 || lat > 90 || lon < -180 || lon > 180 {
		return nil, domain.NewValidationError("coordinates out of range")
	}

	reqCtx, ticket := s.seq.Begin(ctx, clientID+":"+insightView)
	defer ticket.Done()

	var (
		weather   *domain.Weather
		elevation float64
	)
	g, gctx := errgroup.WithContext(reqCtx)
	g.Go(func() error {
		w, err := s.weather.Current(gctx, lat, lon)
		if err != nil {
			return fmt.Errorf("weather: %w", err)
		}
		weather = w
		return nil
	})
	g.Go(func() error {
		e, err := s.elevation.Elevation(gctx, lat, lon)
		if err != nil {
			return fmt.Errorf("elevation: %w", err)
		}
		elevation = e
		return nil
	})
	err := g.Wait()

	if !ticket.Latest() {
		metrics.StaleResponsesTotal.WithLabelValues(insightView).Inc()
		s.log.Debug().Str("client_id", clientID).Uint64("generation", ticket.Generation()).Msg("discarding stale point insight")
		return nil, domain.ErrStaleResponse
	}
	if err != nil {
		return nil, fmt.Errorf("point insight: %w", err)
	}

	return &domain.PointInsight{
		Latitude:  lat,
		Longitude: lon,
		Weather:   *weather,
		Elevation: elevation,
		VPD:       domain.Round3(domain.VaporPressureDeficit(weather.Temperature, weather.Humidity)),
	}, nil
}
