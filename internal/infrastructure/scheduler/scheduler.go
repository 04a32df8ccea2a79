// Package scheduler runs the portal's background jobs on cron schedules.
package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"

	"github.com/firewatch-nepal/portal/internal/core/domain"
)

const (
	pruneSchedule = "@every 10m"
	pruneMaxIdle  = 30 * time.Minute
	jobTimeout    = time.Minute
)

type HotspotRefresher interface {
	Refresh(ctx context.Context) (*domain.HotspotSnapshot, error)
}

type SequencePruner interface {
	Prune(maxIdle time.Duration) int
}

// Scheduler wraps a cron runner. Overlapping runs of the same job are skipped
// and panics are recovered.
type Scheduler struct {
	cron *cron.Cron
	log  zerolog.Logger
}

func New(log zerolog.Logger) *Scheduler {
	cl := cronLogger{log: log}
	return &Scheduler{
		cron: cron.New(cron.WithLogger(cl), cron.WithChain(cron.Recover(cl), cron.SkipIfStillRunning(cl))),
		log:  log,
	}
}

// RefreshHotspots refreshes the cached live-map snapshot on schedule.
func (s *Scheduler) RefreshHotspots(schedule string, r HotspotRefresher) error {
	_, err := s.cron.AddFunc(schedule, func() {
		ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
		defer cancel()
		snap, err := r.Refresh(ctx)
		if err != nil {
			s.log.Warn().Err(err).Msg("hotspot refresh failed, keeping previous snapshot")
			return
		}
		s.log.Info().Str("sensor", snap.Sensor).Int("days", snap.Days).Int("hotspots", len(snap.Hotspots)).Msg("hotspot snapshot refreshed")
	})
	if err != nil {
		return fmt.Errorf("schedule hotspot refresh %q: %w", schedule, err)
	}
	return nil
}

// PruneSequences drops idle request-sequence keys.
func (s *Scheduler) PruneSequences(p SequencePruner) error {
	_, err := s.cron.AddFunc(pruneSchedule, func() {
		if n := p.Prune(pruneMaxIdle); n > 0 {
			s.log.Debug().Int("dropped", n).Msg("pruned idle request sequences")
		}
	})
	if err != nil {
		return fmt.Errorf("schedule sequence prune: %w", err)
	}
	return nil
}

func (s *Scheduler) Start() {
	s.cron.Start()
}

// Stop stops scheduling and waits for running jobs until ctx is done.
func (s *Scheduler) Stop(ctx context.Context) {
	done := s.cron.Stop()
	select {
	case <-done.Done():
	case <-ctx.Done():
		s.log.Warn().Msg("scheduler stop timed out with jobs still running")
	}
}

// cronLogger routes cron's own logging through zerolog.
type cronLogger struct {
	log zerolog.Logger
}

func (l cronLogger) Info(msg string, keysAndValues ...interface{}) {
	l.log.Debug().Fields(keysAndValues).Msg("cron: " + msg)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	l.log.Error().Err(err).Fields(keysAndValues).Msg("cron: " + msg)
}
