package handler

import (
	"context"

	"github.com/firewatch-nepal/portal/internal/core/domain"
	"github.com/firewatch-nepal/portal/internal/core/service"
)

// The interfaces below are what the handlers need from the core services;
// the concrete *service types satisfy them.

type AuthService interface {
	Login(ctx context.Context, store *service.SessionStore, role domain.Role, username, password string) (domain.Session, error)
	ForgotPassword(ctx context.Context, email string) (string, error)
	ResetPassword(ctx context.Context, email, otp, newPassword, confirm string) (string, error)
}

type AlertService interface {
	List(ctx context.Context, token string) ([]domain.Alert, error)
	Active(ctx context.Context, token string) ([]domain.Alert, error)
	Create(ctx context.Context, clientID, token string, alert domain.Alert) (*domain.Alert, error)
	Update(ctx context.Context, token, id string, update domain.AlertUpdate) (*domain.Alert, error)
	Delete(ctx context.Context, token, id string) (domain.DeleteOutcome, error)
	Scan(ctx context.Context, clientID, token string, createAlerts bool) (*service.ScanOutcome, error)
}

type ReportService interface {
	Submit(ctx context.Context, clientID, token string, report domain.FireReport) (*domain.FireReport, error)
	List(ctx context.Context, token string) ([]domain.FireReport, error)
	Resolve(ctx context.Context, token, id string) (*domain.FireReport, error)
}

type ContactService interface {
	Submit(ctx context.Context, clientID string, msg domain.ContactMessage) (*domain.ContactMessage, error)
	Inbox(ctx context.Context, token string) ([]domain.ContactMessage, error)
}

type InsightService interface {
	PointInsight(ctx context.Context, clientID string, lat, lon float64) (*domain.PointInsight, error)
}

type PredictionService interface {
	Predict(ctx context.Context, clientID string, in domain.PredictionInput) (*service.PredictionView, error)
}

type HotspotService interface {
	Snapshot(ctx context.Context, sensor string, days int) (*domain.HotspotSnapshot, error)
}

type DashboardService interface {
	Admin(ctx context.Context, token string) service.AdminDashboardView
	User(ctx context.Context, session domain.Session) service.UserDashboardView
}

type StatsService interface {
	Stats(ctx context.Context) service.StatsView
}

type SessionAuditReader interface {
	ListByClient(ctx context.Context, clientID string, limit int64) ([]domain.SessionEvent, error)
}
