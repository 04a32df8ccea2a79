package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/firewatch-nepal/portal/internal/api/handler"
	"github.com/firewatch-nepal/portal/internal/api/middleware"
	"github.com/firewatch-nepal/portal/internal/core/domain"
	"github.com/firewatch-nepal/portal/internal/core/service"
	"github.com/firewatch-nepal/portal/internal/infrastructure/db/memory"
)

type stubDashboards struct{}

func (stubDashboards) Admin(ctx context.Context, token string) service.AdminDashboardView {
	return service.AdminDashboardView{Alerts: service.Section[domain.Alert]{Items: []domain.Alert{{ID: token}}}}
}

func (stubDashboards) User(ctx context.Context, session domain.Session) service.UserDashboardView {
	return service.UserDashboardView{Session: session}
}

type testServer struct {
	e       *echo.Echo
	signer  *middleware.CookieSigner
	manager *service.SessionManager
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	manager := service.NewSessionManager(memory.NewTokenStorage(), nil, 0, zerolog.Nop())
	signer := middleware.NewCookieSigner("0123456789abcdef0123456789abcdef")
	e := NewRouter(Deps{
		Handlers: Handlers{
			Session:   handler.NewSessionHandler(nil, nil),
			Shell:     handler.NewShellHandler(),
			Views:     handler.NewViewHandler(nil, nil, nil, nil, stubDashboards{}),
			Forms:     handler.NewFormHandler(nil, nil, nil),
			Admin:     handler.NewAdminHandler(nil, nil, nil),
			Health:    handler.NewHealthHandler(),
			Readiness: handler.NewReadinessHandler(),
		},
		Session: middleware.SessionConfig{Manager: manager, Signer: signer},
		Log:     zerolog.Nop(),
	})
	return &testServer{e: e, signer: signer, manager: manager}
}

// do sends a request as clientID, logged in as role unless role is RoleNone.
func (s *testServer) do(t *testing.T, method, target, clientID string, role domain.Role) *httptest.ResponseRecorder {
	t.Helper()
	if role != domain.RoleNone {
		if err := s.manager.ForClient(clientID).Login(context.Background(), "tok-"+string(role), role); err != nil {
			t.Fatalf("login: %v", err)
		}
	}
	req := httptest.NewRequest(method, target, nil)
	if clientID != "" {
		req.AddCookie(&http.Cookie{Name: middleware.ClientCookieName, Value: s.signer.Sign(clientID)})
	}
	rec := httptest.NewRecorder()
	s.e.ServeHTTP(rec, req)
	return rec
}

func TestRouter_IssuesClientCookie(t *testing.T) {
	s := newTestServer(t)
	rec := s.do(t, http.MethodGet, "/api/shell", "", domain.RoleNone)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	cookie := rec.Header().Get(echo.HeaderSetCookie)
	if !strings.HasPrefix(cookie, middleware.ClientCookieName+"=") || !strings.Contains(cookie, "HttpOnly") {
		t.Fatalf("expected client cookie, got %q", cookie)
	}
}

func TestRouter_GuardsDashboards(t *testing.T) {
	s := newTestServer(t)

	cases := []struct {
		name     string
		target   string
		client   string
		role     domain.Role
		code     int
		location string
	}{
		{"anon user dashboard", "/api/views/user-dashboard", "anon", domain.RoleNone, http.StatusSeeOther, domain.PathLogin},
		{"user admin dashboard", "/api/views/admin-dashboard", "u1", domain.RoleUser, http.StatusSeeOther, domain.PathUserDashboard},
		{"user admin api", "/api/admin/alerts", "u2", domain.RoleUser, http.StatusSeeOther, domain.PathUserDashboard},
		{"admin dashboard", "/api/views/admin-dashboard", "a1", domain.RoleAdmin, http.StatusOK, ""},
		{"user dashboard", "/api/views/user-dashboard", "u3", domain.RoleUser, http.StatusOK, ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := s.do(t, http.MethodGet, tc.target, tc.client, tc.role)
			if rec.Code != tc.code {
				t.Fatalf("expected %d, got %d: %s", tc.code, rec.Code, rec.Body.String())
			}
			if got := rec.Header().Get(echo.HeaderLocation); got != tc.location {
				t.Fatalf("expected Location %q, got %q", tc.location, got)
			}
		})
	}
}

func TestRouter_AdminDashboardUsesStoredToken(t *testing.T) {
	s := newTestServer(t)
	rec := s.do(t, http.MethodGet, "/api/views/admin-dashboard", "a9", domain.RoleAdmin)

	var view service.AdminDashboardView
	if err := json.Unmarshal(rec.Body.Bytes(), &view); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(view.Alerts.Items) != 1 || view.Alerts.Items[0].ID != "tok-admin" {
		t.Fatalf("expected the stored admin token to be forwarded, got %+v", view.Alerts)
	}
}

func TestRouter_UnknownRouteResolvesTo404(t *testing.T) {
	s := newTestServer(t)
	rec := s.do(t, http.MethodGet, "/api/routes/resolve?path=/nope", "c1", domain.RoleNone)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
	var body map[string]any
	_ = json.Unmarshal(rec.Body.Bytes(), &body)
	if body["error"] != "not found" {
		t.Fatalf("unexpected body: %v", body)
	}
}

func TestRouter_Probes(t *testing.T) {
	s := newTestServer(t)
	for _, target := range []string{"/health", "/health/ready", "/metrics"} {
		if rec := s.do(t, http.MethodGet, target, "", domain.RoleNone); rec.Code != http.StatusOK {
			t.Fatalf("%s: expected 200, got %d", target, rec.Code)
		}
	}
}
