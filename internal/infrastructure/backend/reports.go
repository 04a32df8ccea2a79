package backend

import (
	"context"
	"net/http"
	"time"

	"github.com/firewatch-nepal/portal/internal/core/domain"
)

const reportStatusResolved = "resolved"

// reportWire is the backend encoding of a fire report: flat lat/lon and a
// status string instead of a resolved flag.
type reportWire struct {
	ID              string     `json:"id,omitempty"`
	Name            string     `json:"name"`
	Email           string     `json:"email"`
	Province        string     `json:"province"`
	District        string     `json:"district"`
	LocationDetails string     `json:"location_details"`
	FireDate        string     `json:"fire_date"`
	Description     string     `json:"description"`
	Lat             *float64   `json:"lat"`
	Lon             *float64   `json:"lon"`
	Status          string     `json:"status,omitempty"`
	CreatedAt       *time.Time `json:"created_at,omitempty"`
}

func toReportWire(r domain.FireReport) reportWire {
	w := reportWire{
		Name:            r.ReporterName,
		Email:           r.Email,
		Province:        r.Province,
		District:        r.District,
		LocationDetails: r.LocationDetails,
		FireDate:        r.FireDate,
		Description:     r.Description,
		Status:          "new",
	}
	if r.Coordinates != nil {
		lat, lon := r.Coordinates.Lat, r.Coordinates.Lon
		w.Lat, w.Lon = &lat, &lon
	}
	return w
}

func (w reportWire) toDomain() domain.FireReport {
	r := domain.FireReport{
		ID:              w.ID,
		ReporterName:    w.Name,
		Email:           w.Email,
		Province:        w.Province,
		District:        w.District,
		LocationDetails: w.LocationDetails,
		FireDate:        w.FireDate,
		Description:     w.Description,
		Resolved:        w.Status == reportStatusResolved,
		CreatedAt:       w.CreatedAt,
	}
	if w.Lat != nil && w.Lon != nil {
		r.Coordinates = &domain.Coordinates{Lat: *w.Lat, Lon: *w.Lon}
	}
	return r
}

func (cl *Client) ListReports(ctx context.Context, token string) ([]domain.FireReport, error) {
	var wire []reportWire
	if err := cl.do(ctx, call{op: "reports.list", method: http.MethodGet, path: "/reports", token: token}, &wire); err != nil {
		return nil, err
	}
	reports := make([]domain.FireReport, 0, len(wire))
	for _, w := range wire {
		reports = append(reports, w.toDomain())
	}
	return reports, nil
}

// SubmitReport is not idempotent.
func (cl *Client) SubmitReport(ctx context.Context, token string, report domain.FireReport) (*domain.FireReport, error) {
	var created reportWire
	if err := cl.do(ctx, call{op: "reports.submit", method: http.MethodPost, path: "/reports/", token: token, json: toReportWire(report)}, &created); err != nil {
		return nil, err
	}
	r := created.toDomain()
	return &r, nil
}

// ResolveReport marks report id resolved. Some backend versions answer with a
// bare message instead of the report; the result then only carries the id.
func (cl *Client) ResolveReport(ctx context.Context, token, id string) (*domain.FireReport, error) {
	var updated reportWire
	if err := cl.do(ctx, call{op: "reports.resolve", method: http.MethodPut, path: "/reports/" + escape(id) + "/resolve", token: token}, &updated); err != nil {
		return nil, err
	}
	if updated.ID == "" {
		return &domain.FireReport{ID: id, Resolved: true}, nil
	}
	r := updated.toDomain()
	return &r, nil
}
