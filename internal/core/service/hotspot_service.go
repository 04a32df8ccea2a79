package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/firewatch-nepal/portal/internal/api/metrics"
	"github.com/firewatch-nepal/portal/internal/core/domain"
	"github.com/firewatch-nepal/portal/internal/core/ports"
)

// HotspotService serves the live map. The default sensor/window is kept as a
// snapshot refreshed on a schedule so page views do not each spend the feed's
// API quota; any other combination is fetched live.
type HotspotService struct {
	feed          ports.HotspotFeed
	defaultSensor string
	defaultDays   int
	maxAge        time.Duration
	now           func() time.Time
	log           zerolog.Logger

	mu       sync.RWMutex
	snapshot *domain.HotspotSnapshot
}

func NewHotspotService(feed ports.HotspotFeed, defaultSensor string, defaultDays int, maxAge time.Duration, log zerolog.Logger) *HotspotService {
	return &HotspotService{
		feed:          feed,
		defaultSensor: defaultSensor,
		defaultDays:   defaultDays,
		maxAge:        maxAge,
		now:           time.Now,
		log:           log,
	}
}

// Snapshot returns hotspots for sensor/days. Empty sensor or zero days fall
// back to the defaults.
func (s *HotspotService) Snapshot(ctx context.Context, sensor string, days int) (*domain.HotspotSnapshot, error) {
	if sensor == "" {
		sensor = s.defaultSensor
	}
	if days == 0 {
		days = s.defaultDays
	}

	if sensor == s.defaultSensor && days == s.defaultDays {
		if cached := s.cached(); cached != nil {
			return cached, nil
		}
		return s.Refresh(ctx)
	}
	return s.fetch(ctx, sensor, days)
}

// Refresh fetches the default snapshot and replaces the cached one. On
// failure the previous snapshot is kept.
func (s *HotspotService) Refresh(ctx context.Context) (*domain.HotspotSnapshot, error) {
	snap, err := s.fetch(ctx, s.defaultSensor, s.defaultDays)
	if err != nil {
		metrics.HotspotRefreshTotal.WithLabelValues("error").Inc()
		return nil, err
	}
	metrics.HotspotRefreshTotal.WithLabelValues("ok").Inc()
	metrics.HotspotSnapshotSize.Set(float64(len(snap.Hotspots)))

	s.mu.Lock()
	s.snapshot = snap
	s.mu.Unlock()
	return snap, nil
}

func (s *HotspotService) cached() *domain.HotspotSnapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.snapshot == nil || s.now().Sub(s.snapshot.FetchedAt) > s.maxAge {
		return nil
	}
	return s.snapshot
}

func (s *HotspotService) fetch(ctx context.Context, sensor string, days int) (*domain.HotspotSnapshot, error) {
	hotspots, err := s.feed.Fetch(ctx, sensor, days)
	if err != nil {
		return nil, fmt.Errorf("fetch hotspots: %w", err)
	}
	s.log.Debug().Str("sensor", sensor).Int("days", days).Int("count", len(hotspots)).Msg("hotspots fetched")
	return &domain.HotspotSnapshot{
		Sensor:    sensor,
		Days:      days,
		FetchedAt: s.now().UTC(),
		Hotspots:  hotspots,
	}, nil
}
