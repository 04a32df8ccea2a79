package service

import (
	"context"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/firewatch-nepal/portal/internal/core/domain"
)

// Section is one independently loaded block of a dashboard. A failing section
// carries its error message and leaves the rest of the page intact.
type Section[T any] struct {
	Items []T    `json:"items"`
	Error string `json:"error,omitempty"`
}

func newSection[T any](items []T, err error) Section[T] {
	if err != nil {
		return Section[T]{Items: []T{}, Error: err.Error()}
	}
	if items == nil {
		items = []T{}
	}
	return Section[T]{Items: items}
}

// AdminDashboardView is the admin landing page.
type AdminDashboardView struct {
	Alerts   Section[domain.Alert]          `json:"alerts"`
	Messages Section[domain.ContactMessage] `json:"messages"`
	Reports  Section[domain.FireReport]     `json:"reports"`
}

// UserDashboardView is the landing page for logged-in non-admin users.
type UserDashboardView struct {
	Session      domain.Session        `json:"session"`
	ActiveAlerts Section[domain.Alert] `json:"active_alerts"`
	HotspotCount int                   `json:"hotspot_count"`
	HotspotError string                `json:"hotspot_error,omitempty"`
}

// DashboardService composes the dashboards from the other services.
type DashboardService struct {
	alerts   *AlertService
	reports  *ReportService
	contact  *ContactService
	hotspots *HotspotService
}

func NewDashboardService(alerts *AlertService, reports *ReportService, contact *ContactService, hotspots *HotspotService) *DashboardService {
	return &DashboardService{alerts: alerts, reports: reports, contact: contact, hotspots: hotspots}
}

// Admin loads alerts, messages and reports concurrently.
func (s *DashboardService) Admin(ctx context.Context, token string) AdminDashboardView {
	var (
		view AdminDashboardView
		mu   sync.Mutex
		g    errgroup.Group
	)
	g.Go(func() error {
		items, err := s.alerts.List(ctx, token)
		mu.Lock()
		view.Alerts = newSection(items, err)
		mu.Unlock()
		return nil
	})
	g.Go(func() error {
		items, err := s.contact.Inbox(ctx, token)
		mu.Lock()
		view.Messages = newSection(items, err)
		mu.Unlock()
		return nil
	})
	g.Go(func() error {
		items, err := s.reports.List(ctx, token)
		mu.Lock()
		view.Reports = newSection(items, err)
		mu.Unlock()
		return nil
	})
	_ = g.Wait()
	return view
}

// User loads the active alerts and the current hotspot count.
func (s *DashboardService) User(ctx context.Context, session domain.Session) UserDashboardView {
	view := UserDashboardView{Session: session}
	var (
		mu sync.Mutex
		g  errgroup.Group
	)
	g.Go(func() error {
		items, err := s.alerts.Active(ctx, session.TokenRef)
		mu.Lock()
		view.ActiveAlerts = newSection(items, err)
		mu.Unlock()
		return nil
	})
	g.Go(func() error {
		snap, err := s.hotspots.Snapshot(ctx, "", 0)
		mu.Lock()
		defer mu.Unlock()
		if err != nil {
			view.HotspotError = err.Error()
			return nil
		}
		view.HotspotCount = len(snap.Hotspots)
		return nil
	})
	_ = g.Wait()
	return view
}
