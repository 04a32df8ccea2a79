package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/firewatch-nepal/portal/internal/core/domain"
	"github.com/firewatch-nepal/portal/internal/core/ports"
)

// ReportService handles citizen fire reports.
type ReportService struct {
	reports ports.ReportGateway
	lock    ports.SubmissionLock
	log     zerolog.Logger
}

func NewReportService(reports ports.ReportGateway, lock ports.SubmissionLock, log zerolog.Logger) *ReportService {
	return &ReportService{reports: reports, lock: lock, log: log}
}

// Submit forwards a new report. Coordinates are optional but must be inside
// valid lat/lon ranges when present.
func (s *ReportService) Submit(ctx context.Context, clientID, token string, report domain.FireReport) (*domain.FireReport, error) {
	if err := validateReport(report); err != nil {
		return nil, err
	}
	report.Resolved = false

	var created *domain.FireReport
	err := withSubmissionLock(ctx, s.lock, s.log, clientID, OpSubmitReport, func(ctx context.Context) error {
		var err error
		created, err = s.reports.SubmitReport(ctx, token, report)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("submit report: %w", err)
	}
	s.log.Info().Str("report_id", created.ID).Str("district", report.District).Msg("fire report submitted")
	return created, nil
}

func (s *ReportService) List(ctx context.Context, token string) ([]domain.FireReport, error) {
	reports, err := s.reports.ListReports(ctx, token)
	if err != nil {
		return nil, fmt.Errorf("list reports: %w", err)
	}
	return reports, nil
}

// Resolve marks report id as resolved.
func (s *ReportService) Resolve(ctx context.Context, token, id string) (*domain.FireReport, error) {
	if strings.TrimSpace(id) == "" {
		return nil, domain.NewValidationError("id is required")
	}
	report, err := s.reports.ResolveReport(ctx, token, id)
	if err != nil {
		return nil, fmt.Errorf("resolve report: %w", err)
	}
	return report, nil
}

func validateReport(r domain.FireReport) error {
	var fields []string
	required := []struct{ name, value string }{
		{"name", r.ReporterName},
		{"email", r.Email},
		{"province", r.Province},
		{"district", r.District},
		{"location_details", r.LocationDetails},
		{"fire_date", r.FireDate},
		{"description", r.Description},
	}
	for _, f := range required {
		if strings.TrimSpace(f.value) == "" {
			fields = append(fields, f.name+" is required")
		}
	}
	if r.FireDate != "" {
		if _, err := time.Parse(time.DateOnly, r.FireDate); err != nil {
			fields = append(fields, "fire_date must be a YYYY-MM-DD date")
		}
	}
	if c := r.Coordinates; c != nil {
		if c.Lat < -90 || c.Lat > 90 || c.Lon < -180 || c.Lon > 180 {
			fields = append(fields, "coordinates out of range")
		}
	}
	if len(fields) > 0 {
		return domain.NewValidationError(fields...)
	}
	return nil
}
