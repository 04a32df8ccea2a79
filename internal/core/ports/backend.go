package ports

import (
	"context"

	"github.com/firewatch-nepal/portal/internal/core/domain"
)

// The gateways below are the typed data-fetch adapters for the backend REST
// API. token is forwarded as a bearer credential when non-empty; adapters never
// decide authorisation themselves.

type AlertGateway interface {
	ListAlerts(ctx context.Context, token string) ([]domain.Alert, error)
	GetAlert(ctx context.Context, token, id string) (*domain.Alert, error)
	CreateAlert(ctx context.Context, token string, alert domain.Alert) (*domain.Alert, error)
	UpdateAlert(ctx context.Context, token, id string, update domain.AlertUpdate) (*domain.Alert, error)
	DeleteAlert(ctx context.Context, token, id string) error
	ScanNepal(ctx context.Context, token string) (*domain.ScanResult, error)
}

type ReportGateway interface {
	ListReports(ctx context.Context, token string) ([]domain.FireReport, error)
	SubmitReport(ctx context.Context, token string, report domain.FireReport) (*domain.FireReport, error)
	ResolveReport(ctx context.Context, token, id string) (*domain.FireReport, error)
}

type MessageGateway interface {
	ListMessages(ctx context.Context, token string) ([]domain.ContactMessage, error)
	SubmitContact(ctx context.Context, msg domain.ContactMessage) (*domain.ContactMessage, error)
}

type AuthGateway interface {
	// Login exchanges credentials for a bearer token for the given role.
	Login(ctx context.Context, role domain.Role, username, password string) (string, error)
	ForgotPassword(ctx context.Context, email string) (string, error)
	ResetPassword(ctx context.Context, email, otp, newPassword string) (string, error)
}

type PredictionGateway interface {
	PredictManual(ctx context.Context, in domain.PredictionInput) (*domain.Prediction, error)
}

// StatsDimension selects one historical fire statistic.
type StatsDimension string

const (
	StatsYearly     StatsDimension = "yearly"
	StatsMonthly    StatsDimension = "monthly"
	StatsConfidence StatsDimension = "confidence"
	StatsElevation  StatsDimension = "elevation"
)

type StatsGateway interface {
	FireCounts(ctx context.Context, dimension StatsDimension) ([]domain.FireCount, error)
}
