package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/firewatch-nepal/portal/internal/core/domain"
	"github.com/firewatch-nepal/portal/internal/core/service"
)

type stubReportService struct {
	submitFn  func(ctx context.Context, clientID, token string, report domain.FireReport) (*domain.FireReport, error)
	listFn    func(ctx context.Context, token string) ([]domain.FireReport, error)
	resolveFn func(ctx context.Context, token, id string) (*domain.FireReport, error)
}

func (s *stubReportService) Submit(ctx context.Context, clientID, token string, report domain.FireReport) (*domain.FireReport, error) {
	return s.submitFn(ctx, clientID, token, report)
}

func (s *stubReportService) List(ctx context.Context, token string) ([]domain.FireReport, error) {
	return s.listFn(ctx, token)
}

func (s *stubReportService) Resolve(ctx context.Context, token, id string) (*domain.FireReport, error) {
	return s.resolveFn(ctx, token, id)
}

type stubContactService struct {
	submitFn func(ctx context.Context, clientID string, msg domain.ContactMessage) (*domain.ContactMessage, error)
	inboxFn  func(ctx context.Context, token string) ([]domain.ContactMessage, error)
}

func (s *stubContactService) Submit(ctx context.Context, clientID string, msg domain.ContactMessage) (*domain.ContactMessage, error) {
	return s.submitFn(ctx, clientID, msg)
}

func (s *stubContactService) Inbox(ctx context.Context, token string) ([]domain.ContactMessage, error) {
	return s.inboxFn(ctx, token)
}

type stubPredictionService struct {
	predictFn func(ctx context.Context, clientID string, in domain.PredictionInput) (*service.PredictionView, error)
}

func (s *stubPredictionService) Predict(ctx context.Context, clientID string, in domain.PredictionInput) (*service.PredictionView, error) {
	return s.predictFn(ctx, clientID, in)
}

const validReport = `{"name":"Sita","email":"sita@example.com","province":"Bagmati","district":"Kathmandu",
"location_details":"Shivapuri","fire_date":"2024-04-02","description":"smoke","lat":27.8,"lon":85.4}`

func TestFormHandler_SubmitReport_Created(t *testing.T) {
	reports := &stubReportService{
		submitFn: func(ctx context.Context, clientID, token string, report domain.FireReport) (*domain.FireReport, error) {
			if report.ReporterName != "Sita" || report.Coordinates == nil || report.Coordinates.Lon != 85.4 {
				t.Fatalf("unexpected report: %+v", report)
			}
			report.ID = "r1"
			return &report, nil
		},
	}
	h := NewFormHandler(reports, nil, nil)
	c, rec, _ := newContext(t, domain.RoleNone, http.MethodPost, "/api/reports", validReport)

	if err := h.SubmitReport(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	var resp map[string]any
	_ = json.Unmarshal(rec.Body.Bytes(), &resp)
	if resp["id"] != "r1" {
		t.Fatalf("unexpected response: %+v", resp)
	}
}

func TestFormHandler_SubmitReport_Pending(t *testing.T) {
	reports := &stubReportService{
		submitFn: func(ctx context.Context, clientID, token string, report domain.FireReport) (*domain.FireReport, error) {
			return nil, domain.ErrSubmissionPending
		},
	}
	h := NewFormHandler(reports, nil, nil)
	c, _, _ := newContext(t, domain.RoleNone, http.MethodPost, "/api/reports", validReport)

	if err := h.SubmitReport(c); !errors.Is(err, domain.ErrSubmissionPending) {
		t.Fatalf("expected ErrSubmissionPending, got %v", err)
	}
}

func TestFormHandler_SubmitReport_BadDate(t *testing.T) {
	reports := &stubReportService{
		submitFn: func(ctx context.Context, clientID, token string, report domain.FireReport) (*domain.FireReport, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	h := NewFormHandler(reports, nil, nil)
	body := `{"name":"Sita","email":"sita@example.com","province":"Bagmati","district":"Kathmandu",
"location_details":"Shivapuri","fire_date":"02/04/2024","description":"smoke"}`
	c, _, _ := newContext(t, domain.RoleNone, http.MethodPost, "/api/reports", body)

	var verr *domain.ValidationError
	if err := h.SubmitReport(c); !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
}

func TestFormHandler_SubmitContact(t *testing.T) {
	contact := &stubContactService{
		submitFn: func(ctx context.Context, clientID string, msg domain.ContactMessage) (*domain.ContactMessage, error) {
			if msg.Subject != "Smoke" {
				t.Fatalf("unexpected message: %+v", msg)
			}
			return &msg, nil
		},
	}
	h := NewFormHandler(nil, contact, nil)
	c, rec, _ := newContext(t, domain.RoleNone, http.MethodPost, "/api/contact",
		`{"name":"Ram","email":"ram@example.com","subject":"Smoke","message":"near the school"}`)

	if err := h.SubmitContact(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
}

func TestFormHandler_Predict(t *testing.T) {
	prediction := &stubPredictionService{
		predictFn: func(ctx context.Context, clientID string, in domain.PredictionInput) (*service.PredictionView, error) {
			if in.Temperature != 25 || in.Humidity != 60 {
				t.Fatalf("unexpected input: %+v", in)
			}
			return &service.PredictionView{Prediction: &domain.Prediction{FireOccurred: 1}, VPD: 1.268}, nil
		},
	}
	h := NewFormHandler(nil, nil, prediction)
	c, rec, _ := newContext(t, domain.RoleNone, http.MethodPost, "/api/predict",
		`{"latitude":27.7,"longitude":85.3,"temperature":25,"humidity":60,"wind_speed":2,"precipitation":0,"elevation":1300}`)

	if err := h.Predict(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	var resp map[string]any
	_ = json.Unmarshal(rec.Body.Bytes(), &resp)
	if resp["vpd"] != 1.268 {
		t.Fatalf("unexpected response: %+v", resp)
	}
}

func TestFormHandler_Predict_HumidityOutOfRange(t *testing.T) {
	h := NewFormHandler(nil, nil, &stubPredictionService{})
	c, _, _ := newContext(t, domain.RoleNone, http.MethodPost, "/api/predict", `{"temperature":25,"humidity":140}`)

	var verr *domain.ValidationError
	if err := h.Predict(c); !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
}
