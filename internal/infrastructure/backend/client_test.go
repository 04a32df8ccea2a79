package backend

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/rs/zerolog"

	"github.com/firewatch-nepal/portal/internal/core/domain"
	"github.com/firewatch-nepal/portal/internal/core/ports"
)

// ---------------------------------------------------------------------------
// In-memory backend double
// ---------------------------------------------------------------------------

type fakeBackend struct {
	mu        sync.Mutex
	alerts    map[string]domain.Alert
	nextID    int
	creates   int
	lastAuth  string
	lastForm  map[string]string
	reportsIn []reportWire
}

func newFakeBackend() *fakeBackend {
	return &fakeBackend{alerts: make(map[string]domain.Alert)}
}

func (f *fakeBackend) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.lastAuth = r.Header.Get("Authorization")

	switch {
	case r.URL.Path == "/admin/alerts" && r.Method == http.MethodGet:
		list := make([]domain.Alert, 0, len(f.alerts))
		for _, a := range f.alerts {
			list = append(list, a)
		}
		writeJSON(w, http.StatusOK, list)

	case r.URL.Path == "/admin/alerts" && r.Method == http.MethodPost:
		var a domain.Alert
		if err := json.NewDecoder(r.Body).Decode(&a); err != nil {
			writeJSON(w, http.StatusUnprocessableEntity, map[string]string{"detail": "bad body"})
			return
		}
		f.nextID++
		f.creates++
		a.ID = fmt.Sprintf("a%d", f.nextID)
		f.alerts[a.ID] = a
		writeJSON(w, http.StatusOK, a)

	case strings.HasPrefix(r.URL.Path, "/admin/alerts/"):
		id := strings.TrimPrefix(r.URL.Path, "/admin/alerts/")
		a, ok := f.alerts[id]
		if !ok {
			writeJSON(w, http.StatusNotFound, map[string]string{"detail": "Alert not found"})
			return
		}
		switch r.Method {
		case http.MethodDelete:
			delete(f.alerts, id)
			writeJSON(w, http.StatusOK, map[string]string{"message": "Alert deleted"})
		case http.MethodPut:
			var u domain.AlertUpdate
			_ = json.NewDecoder(r.Body).Decode(&u)
			if u.Title != nil {
				a.Title = *u.Title
			}
			f.alerts[id] = a
			writeJSON(w, http.StatusOK, a)
		default:
			writeJSON(w, http.StatusOK, a)
		}

	case r.URL.Path == "/admin/login":
		_ = r.ParseForm()
		f.lastForm = map[string]string{
			"username":     r.PostForm.Get("username"),
			"password":     r.PostForm.Get("password"),
			"content_type": r.Header.Get("Content-Type"),
		}
		if r.PostForm.Get("password") != "secret" {
			writeJSON(w, http.StatusUnauthorized, map[string]string{"detail": "Invalid credentials"})
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"access_token": "tok-admin", "token_type": "bearer"})

	case r.URL.Path == "/reports/" && r.Method == http.MethodPost:
		var rw reportWire
		_ = json.NewDecoder(r.Body).Decode(&rw)
		f.reportsIn = append(f.reportsIn, rw)
		rw.ID = "r1"
		writeJSON(w, http.StatusOK, rw)

	case r.URL.Path == "/reports/r1/resolve":
		writeJSON(w, http.StatusOK, map[string]string{"message": "resolved"})

	case r.URL.Path == "/predict-manual":
		writeJSON(w, http.StatusOK, map[string]string{"error": "Model not loaded."})

	case r.URL.Path == "/fires/yearly":
		writeJSON(w, http.StatusOK, []map[string]any{{"year": 2023, "count": 10}, {"year": 2024, "count": 7}})

	case r.URL.Path == "/fires/confidence":
		writeJSON(w, http.StatusOK, map[string]string{"error": "Confidence data not found."})

	default:
		http.NotFound(w, r)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func newTestClient(t *testing.T) (*Client, *fakeBackend) {
	t.Helper()
	fake := newFakeBackend()
	srv := httptest.NewServer(fake)
	t.Cleanup(srv.Close)
	return New(srv.URL, 2*time.Second, zerolog.Nop()), fake
}

// ---------------------------------------------------------------------------
// Alerts
// ---------------------------------------------------------------------------

func TestCreateAlert_EchoesServerObject(t *testing.T) {
	client, fake := newTestClient(t)
	lat := 27.7
	in := domain.Alert{
		Title:     "High risk in Chitwan",
		Message:   "Dry conditions",
		District:  "Chitwan",
		Latitude:  &lat,
		RiskLevel: domain.RiskHigh,
		Status:    domain.AlertActive,
	}

	created, err := client.CreateAlert(context.Background(), "tok", in)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if fake.creates != 1 {
		t.Fatalf("expected exactly one request, got %d", fake.creates)
	}

	want := in
	want.ID = "a1"
	if diff := cmp.Diff(want, *created); diff != "" {
		t.Fatalf("created alert mismatch (-want +got):\n%s", diff)
	}
	if fake.lastAuth != "Bearer tok" {
		t.Fatalf("expected bearer token to be forwarded, got %q", fake.lastAuth)
	}
}

func TestDeleteAlert_ThenListExcludesIt(t *testing.T) {
	client, _ := newTestClient(t)
	ctx := context.Background()

	a, err := client.CreateAlert(ctx, "tok", domain.Alert{Title: "t", Message: "m"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := client.DeleteAlert(ctx, "tok", a.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}

	list, err := client.ListAlerts(ctx, "tok")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	for _, got := range list {
		if got.ID == a.ID {
			t.Fatalf("deleted alert %s still listed", a.ID)
		}
	}

	err = client.DeleteAlert(ctx, "tok", a.ID)
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound on repeated delete, got %v", err)
	}
}

func TestUpdateAlert(t *testing.T) {
	client, _ := newTestClient(t)
	ctx := context.Background()
	a, _ := client.CreateAlert(ctx, "tok", domain.Alert{Title: "old", Message: "m"})

	title := "new"
	updated, err := client.UpdateAlert(ctx, "tok", a.ID, domain.AlertUpdate{Title: &title})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Title != "new" || updated.Message != "m" {
		t.Fatalf("unexpected update result: %+v", updated)
	}
}

func TestNoTokenMeansNoAuthorizationHeader(t *testing.T) {
	client, fake := newTestClient(t)
	if _, err := client.ListAlerts(context.Background(), ""); err != nil {
		t.Fatalf("list: %v", err)
	}
	if fake.lastAuth != "" {
		t.Fatalf("expected no Authorization header, got %q", fake.lastAuth)
	}
}

// ---------------------------------------------------------------------------
// Error taxonomy
// ---------------------------------------------------------------------------

func TestServerError_CarriesStatusAndDetail(t *testing.T) {
	client, _ := newTestClient(t)
	_, err := client.GetAlert(context.Background(), "tok", "missing")

	var serr *domain.ServerError
	if !errors.As(err, &serr) {
		t.Fatalf("expected ServerError, got %T %v", err, err)
	}
	if serr.Status != http.StatusNotFound || serr.Message != "Alert not found" {
		t.Fatalf("unexpected server error: %+v", serr)
	}
}

func TestNetworkError_WhenUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	client := New(url, time.Second, zerolog.Nop())
	_, err := client.ListAlerts(context.Background(), "")

	var nerr *domain.NetworkError
	if !errors.As(err, &nerr) {
		t.Fatalf("expected NetworkError, got %T %v", err, err)
	}
}

// ---------------------------------------------------------------------------
// Auth
// ---------------------------------------------------------------------------

func TestLogin_AdminIsFormEncoded(t *testing.T) {
	client, fake := newTestClient(t)
	token, err := client.Login(context.Background(), domain.RoleAdmin, "admin@example.com", "secret")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if token != "tok-admin" {
		t.Fatalf("expected tok-admin, got %q", token)
	}
	if fake.lastForm["username"] != "admin@example.com" || fake.lastForm["content_type"] != "application/x-www-form-urlencoded" {
		t.Fatalf("unexpected form: %+v", fake.lastForm)
	}
}

func TestLogin_BadPasswordIsInvalidCredentials(t *testing.T) {
	client, _ := newTestClient(t)
	_, err := client.Login(context.Background(), domain.RoleAdmin, "admin@example.com", "nope")
	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

// ---------------------------------------------------------------------------
// Reports, predict, stats
// ---------------------------------------------------------------------------

func TestSubmitReport_FlattensCoordinates(t *testing.T) {
	client, fake := newTestClient(t)
	report := domain.FireReport{
		ReporterName: "Sita", Email: "sita@example.com", Province: "Bagmati", District: "Kathmandu",
		LocationDetails: "Shivapuri", FireDate: "2024-04-02", Description: "smoke",
		Coordinates: &domain.Coordinates{Lat: 27.8, Lon: 85.4},
	}
	created, err := client.SubmitReport(context.Background(), "", report)
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if created.ID != "r1" || created.Coordinates == nil || created.Coordinates.Lat != 27.8 {
		t.Fatalf("unexpected report: %+v", created)
	}
	sent := fake.reportsIn[0]
	if sent.Lat == nil || *sent.Lon != 85.4 || sent.Status != "new" {
		t.Fatalf("unexpected wire body: %+v", sent)
	}
}

func TestResolveReport_BareMessage(t *testing.T) {
	client, _ := newTestClient(t)
	r, err := client.ResolveReport(context.Background(), "tok", "r1")
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if r.ID != "r1" || !r.Resolved {
		t.Fatalf("unexpected report: %+v", r)
	}
}

func TestPredictManual_ModelNotLoaded(t *testing.T) {
	client, _ := newTestClient(t)
	_, err := client.PredictManual(context.Background(), domain.PredictionInput{Temperature: 30, Humidity: 20})

	var serr *domain.ServerError
	if !errors.As(err, &serr) || serr.Status != http.StatusServiceUnavailable {
		t.Fatalf("expected 503 ServerError, got %v", err)
	}
}

func TestFireCounts(t *testing.T) {
	client, _ := newTestClient(t)
	got, err := client.FireCounts(context.Background(), ports.StatsYearly)
	if err != nil {
		t.Fatalf("fire counts: %v", err)
	}
	want := []domain.FireCount{{Bucket: "2023", Count: 10}, {Bucket: "2024", Count: 7}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("counts mismatch (-want +got):\n%s", diff)
	}

	if _, err := client.FireCounts(context.Background(), ports.StatsConfidence); err == nil {
		t.Fatalf("expected error body to surface as an error")
	}
}
