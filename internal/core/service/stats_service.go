package service

import (
	"context"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/firewatch-nepal/portal/internal/core/domain"
	"github.com/firewatch-nepal/portal/internal/core/ports"
)

// StatsView is the statistics page; each chart loads independently.
type StatsView struct {
	Yearly     Section[domain.FireCount] `json:"yearly"`
	Monthly    Section[domain.FireCount] `json:"monthly"`
	Confidence Section[domain.FireCount] `json:"confidence"`
	Elevation  Section[domain.FireCount] `json:"elevation"`
}

type StatsService struct {
	stats ports.StatsGateway
}

func NewStatsService(stats ports.StatsGateway) *StatsService {
	return &StatsService{stats: stats}
}

func (s *StatsService) Stats(ctx context.Context) StatsView {
	var (
		view StatsView
		mu   sync.Mutex
		g    errgroup.Group
	)
	load := func(dim ports.StatsDimension, dst *Section[domain.FireCount]) {
		g.Go(func() error {
			items, err := s.stats.FireCounts(ctx, dim)
			mu.Lock()
			*dst = newSection(items, err)
			mu.Unlock()
			return nil
		})
	}
	load(ports.StatsYearly, &view.Yearly)
	load(ports.StatsMonthly, &view.Monthly)
	load(ports.StatsConfidence, &view.Confidence)
	load(ports.StatsElevation, &view.Elevation)
	_ = g.Wait()
	return view
}
