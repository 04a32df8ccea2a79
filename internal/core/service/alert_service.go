package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/firewatch-nepal/portal/internal/core/domain"
	"github.com/firewatch-nepal/portal/internal/core/ports"
)

const (
	bulkCreateConcurrency = 4
	maxScanAlerts         = 12
)

// AlertService composes the alert adapters for the home banner and the admin
// alert views.
type AlertService struct {
	alerts ports.AlertGateway
	lock   ports.SubmissionLock
	log    zerolog.Logger
}

func NewAlertService(alerts ports.AlertGateway, lock ports.SubmissionLock, log zerolog.Logger) *AlertService {
	return &AlertService{alerts: alerts, lock: lock, log: log}
}

// ScanOutcome is the result of a Nepal scan, optionally with the alerts that
// were created for each high-risk district.
type ScanOutcome struct {
	Districts []domain.HighRiskDistrict `json:"high_risk_districts"`
	Created   []domain.Alert            `json:"created_alerts,omitempty"`
	Failed    []string                  `json:"failed_districts,omitempty"`
}

// List returns all alerts visible with token.
func (s *AlertService) List(ctx context.Context, token string) ([]domain.Alert, error) {
	alerts, err := s.alerts.ListAlerts(ctx, token)
	if err != nil {
		return nil, fmt.Errorf("list alerts: %w", err)
	}
	return alerts, nil
}

// Active returns the alerts with status active, for the public banner.
func (s *AlertService) Active(ctx context.Context, token string) ([]domain.Alert, error) {
	all, err := s.List(ctx, token)
	if err != nil {
		return nil, err
	}
	active := make([]domain.Alert, 0, len(all))
	for _, a := range all {
		if a.Status == "" || a.Status == domain.AlertActive {
			active = append(active, a)
		}
	}
	return active, nil
}

// Create validates and submits a new alert, holding the submission lock for
// the client so a double click cannot create two.
func (s *AlertService) Create(ctx context.Context, clientID, token string, alert domain.Alert) (*domain.Alert, error) {
	if err := validateAlert(alert); err != nil {
		return nil, err
	}
	if alert.Status == "" {
		alert.Status = domain.AlertActive
	}

	var created *domain.Alert
	err := withSubmissionLock(ctx, s.lock, s.log, clientID, OpCreateAlert, func(ctx context.Context) error {
		var err error
		created, err = s.alerts.CreateAlert(ctx, token, alert)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("create alert: %w", err)
	}
	s.log.Info().Str("alert_id", created.ID).Str("client_id", clientID).Msg("alert created")
	return created, nil
}

// Update applies the non-nil fields of update to alert id. The backend
// answers 404 when nothing changed, so a repeated update falls back to the
// current alert.
func (s *AlertService) Update(ctx context.Context, token, id string, update domain.AlertUpdate) (*domain.Alert, error) {
	if strings.TrimSpace(id) == "" {
		return nil, domain.NewValidationError("id is required")
	}
	if update.Title != nil && strings.TrimSpace(*update.Title) == "" {
		return nil, domain.NewValidationError("title must not be empty")
	}
	if update.Message != nil && strings.TrimSpace(*update.Message) == "" {
		return nil, domain.NewValidationError("message must not be empty")
	}
	if update.Status != nil && !validAlertStatus(*update.Status) {
		return nil, domain.NewValidationError("status must be one of: active expired cancelled")
	}

	updated, err := s.alerts.UpdateAlert(ctx, token, id, update)
	if errors.Is(err, domain.ErrNotFound) {
		current, gerr := s.alerts.GetAlert(ctx, token, id)
		if gerr != nil {
			return nil, fmt.Errorf("update alert: %w", err)
		}
		return current, nil
	}
	if err != nil {
		return nil, fmt.Errorf("update alert: %w", err)
	}
	return updated, nil
}

// Delete removes alert id. Deleting an alert that is already gone reports
// DeleteOutcomeNotFound instead of failing.
func (s *AlertService) Delete(ctx context.Context, token, id string) (domain.DeleteOutcome, error) {
	if strings.TrimSpace(id) == "" {
		return "", domain.NewValidationError("id is required")
	}
	if err := s.alerts.DeleteAlert(ctx, token, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.DeleteOutcomeNotFound, nil
		}
		return "", fmt.Errorf("delete alert: %w", err)
	}
	s.log.Info().Str("alert_id", id).Msg("alert deleted")
	return domain.DeleteOutcomeDeleted, nil
}

// Scan asks the backend for high-risk districts. With createAlerts set, one
// alert per district (hottest first, at most maxScanAlerts) is created with
// bounded concurrency; districts whose alert failed are reported, not fatal.
func (s *AlertService) Scan(ctx context.Context, clientID, token string, createAlerts bool) (*ScanOutcome, error) {
	var outcome *ScanOutcome
	err := withSubmissionLock(ctx, s.lock, s.log, clientID, OpScan, func(ctx context.Context) error {
		res, err := s.alerts.ScanNepal(ctx, token)
		if err != nil {
			return err
		}
		outcome = &ScanOutcome{Districts: res.HighRiskDistricts}
		if !createAlerts || len(res.HighRiskDistricts) == 0 {
			return nil
		}
		outcome.Created, outcome.Failed = s.bulkCreate(ctx, token, res.HighRiskDistricts)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("scan nepal: %w", err)
	}
	return outcome, nil
}

func (s *AlertService) bulkCreate(ctx context.Context, token string, districts []domain.HighRiskDistrict) ([]domain.Alert, []string) {
	ranked := append([]domain.HighRiskDistrict(nil), districts...)
	sort.SliceStable(ranked, func(i, j int) bool {
		return detailFloat(ranked[i].Details, "temperature") > detailFloat(ranked[j].Details, "temperature")
	})
	if len(ranked) > maxScanAlerts {
		ranked = ranked[:maxScanAlerts]
	}

	var (
		mu      sync.Mutex
		created = make([]domain.Alert, 0, len(ranked))
		failed  []string
	)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(bulkCreateConcurrency)
	for _, d := range ranked {
		d := d
		g.Go(func() error {
			alert, err := s.alerts.CreateAlert(gctx, token, alertFromDistrict(d))
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				s.log.Warn().Err(err).Str("district", d.District).Msg("failed to create scan alert")
				failed = append(failed, d.District)
				return nil
			}
			created = append(created, *alert)
			return nil
		})
	}
	_ = g.Wait()
	return created, failed
}

func alertFromDistrict(d domain.HighRiskDistrict) domain.Alert {
	lat, lon := d.Location.Lat, d.Location.Lon
	risk := d.Risk
	if risk == "" {
		risk = domain.RiskHigh
	}
	return domain.Alert{
		Title: fmt.Sprintf("%s fire risk in %s", risk, d.District),
		Message: fmt.Sprintf("High fire risk due to temp %v°C and low humidity %v%%",
			d.Details["temperature"], d.Details["humidity"]),
		District:        d.District,
		Latitude:        &lat,
		Longitude:       &lon,
		RiskLevel:       risk,
		WeatherSnapshot: d.Details,
		Status:          domain.AlertActive,
	}
}

func detailFloat(details map[string]any, key string) float64 {
	switch v := details[key].(type) {
	case float64:
		return v
	case int:
		return float64(v)
	default:
		return 0
	}
}

func validateAlert(a domain.Alert) error {
	var fields []string
	if strings.TrimSpace(a.Title) == "" {
		fields = append(fields, "title is required")
	}
	if strings.TrimSpace(a.Message) == "" {
		fields = append(fields, "message is required")
	}
	if a.Status != "" && !validAlertStatus(a.Status) {
		fields = append(fields, "status must be one of: active expired cancelled")
	}
	switch a.RiskLevel {
	case "", domain.RiskLow, domain.RiskModerate, domain.RiskHigh, domain.RiskCritical:
	default:
		fields = append(fields, "risk_level must be one of: Low Moderate High Critical")
	}
	if len(fields) > 0 {
		return domain.NewValidationError(fields...)
	}
	return nil
}

func validAlertStatus(s domain.AlertStatus) bool {
	switch s {
	case domain.AlertActive, domain.AlertExpired, domain.AlertCancelled:
		return true
	}
	return false
}
