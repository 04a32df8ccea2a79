package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/firewatch-nepal/portal/internal/core/domain"
	"github.com/firewatch-nepal/portal/internal/core/service"
)

type stubAuthService struct {
	loginFn  func(ctx context.Context, store *service.SessionStore, role domain.Role, username, password string) (domain.Session, error)
	forgotFn func(ctx context.Context, email string) (string, error)
	resetFn  func(ctx context.Context, email, otp, newPassword, confirm string) (string, error)
}

func (s *stubAuthService) Login(ctx context.Context, store *service.SessionStore, role domain.Role, username, password string) (domain.Session, error) {
	return s.loginFn(ctx, store, role, username, password)
}

func (s *stubAuthService) ForgotPassword(ctx context.Context, email string) (string, error) {
	return s.forgotFn(ctx, email)
}

func (s *stubAuthService) ResetPassword(ctx context.Context, email, otp, newPassword, confirm string) (string, error) {
	return s.resetFn(ctx, email, otp, newPassword, confirm)
}

type stubAudit struct {
	events []domain.SessionEvent
}

func (s *stubAudit) ListByClient(ctx context.Context, clientID string, limit int64) ([]domain.SessionEvent, error) {
	return s.events, nil
}

func TestSessionHandler_Login_Success(t *testing.T) {
	stub := &stubAuthService{
		loginFn: func(ctx context.Context, store *service.SessionStore, role domain.Role, username, password string) (domain.Session, error) {
			if role != domain.RoleAdmin || username != "admin@example.com" || password != "secret" {
				t.Fatalf("unexpected args: %s %s %s", role, username, password)
			}
			if err := store.Login(ctx, "tok", role); err != nil {
				t.Fatalf("store login: %v", err)
			}
			return store.Current(), nil
		},
	}
	h := NewSessionHandler(stub, nil)
	c, rec, _ := newContext(t, domain.RoleNone, http.MethodPost, "/api/session/login",
		`{"role":"admin","username":"admin@example.com","password":"secret"}`)

	if err := h.Login(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	session, _ := resp["session"].(map[string]any)
	if session["is_authenticated"] != true || session["role"] != "admin" {
		t.Fatalf("unexpected session payload: %+v", resp)
	}
	if _, leaked := session["TokenRef"]; leaked {
		t.Fatalf("token must never be serialised")
	}
	if resp["redirect"] != domain.PathAdminDashboard {
		t.Fatalf("expected redirect to admin dashboard, got %v", resp["redirect"])
	}
}

func TestSessionHandler_Login_InvalidCredentials(t *testing.T) {
	stub := &stubAuthService{
		loginFn: func(ctx context.Context, store *service.SessionStore, role domain.Role, username, password string) (domain.Session, error) {
			return domain.Session{}, &domain.ServerError{Op: "auth.user_login", Status: http.StatusUnauthorized}
		},
	}
	h := NewSessionHandler(stub, nil)
	c, _, store := newContext(t, domain.RoleNone, http.MethodPost, "/api/session/login",
		`{"role":"user","username":"u","password":"bad"}`)

	err := h.Login(c)
	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if store.Current().Authenticated {
		t.Fatalf("session must stay anonymous after a failed login")
	}
}

func TestSessionHandler_Login_ValidationRunsFirst(t *testing.T) {
	stub := &stubAuthService{
		loginFn: func(ctx context.Context, store *service.SessionStore, role domain.Role, username, password string) (domain.Session, error) {
			t.Fatalf("should not be called")
			return domain.Session{}, nil
		},
	}
	h := NewSessionHandler(stub, nil)
	c, _, _ := newContext(t, domain.RoleNone, http.MethodPost, "/api/session/login", `{"role":"root","username":""}`)

	var verr *domain.ValidationError
	if err := h.Login(c); !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if len(verr.Fields) != 3 {
		t.Fatalf("expected role, username and password errors, got %v", verr.Fields)
	}
}

func TestSessionHandler_Login_InvalidPayload(t *testing.T) {
	h := NewSessionHandler(&stubAuthService{}, nil)
	c, _, _ := newContext(t, domain.RoleNone, http.MethodPost, "/api/session/login", "{")

	var he *echo.HTTPError
	if err := h.Login(c); !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}

func TestSessionHandler_Logout(t *testing.T) {
	h := NewSessionHandler(&stubAuthService{}, nil)
	c, rec, store := newContext(t, domain.RoleUser, http.MethodPost, "/api/session/logout", "")

	if err := h.Logout(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK || store.Current().Authenticated {
		t.Fatalf("expected anonymous session after logout, code %d", rec.Code)
	}
}

func TestSessionHandler_Events(t *testing.T) {
	audit := &stubAudit{events: []domain.SessionEvent{{ID: "e1", Type: domain.SessionEventLogin, Role: domain.RoleUser, Timestamp: time.Now()}}}
	h := NewSessionHandler(&stubAuthService{}, audit)
	c, rec, _ := newContext(t, domain.RoleUser, http.MethodGet, "/api/session/events", "")

	if err := h.Events(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	var events []domain.SessionEvent
	_ = json.Unmarshal(rec.Body.Bytes(), &events)
	if len(events) != 1 || events[0].ID != "e1" {
		t.Fatalf("unexpected events: %+v", events)
	}

	h = NewSessionHandler(&stubAuthService{}, nil)
	c, rec, _ = newContext(t, domain.RoleUser, http.MethodGet, "/api/session/events", "")
	_ = h.Events(c)
	if rec.Body.String() != "[]\n" {
		t.Fatalf("expected empty list when audit is disabled, got %q", rec.Body.String())
	}
}

func TestSessionHandler_ResetPassword_Mismatch(t *testing.T) {
	stub := &stubAuthService{
		resetFn: func(ctx context.Context, email, otp, newPassword, confirm string) (string, error) {
			t.Fatalf("should not be called")
			return "", nil
		},
	}
	h := NewSessionHandler(stub, nil)
	c, _, _ := newContext(t, domain.RoleNone, http.MethodPost, "/api/password/reset",
		`{"email":"a@example.com","otp":"123456","new_password":"secret1","confirm_password":"secret2"}`)

	var verr *domain.ValidationError
	if err := h.ResetPassword(c); !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
}

func TestSessionHandler_ForgotPassword(t *testing.T) {
	stub := &stubAuthService{
		forgotFn: func(ctx context.Context, email string) (string, error) {
			return "OTP sent to your email", nil
		},
	}
	h := NewSessionHandler(stub, nil)
	c, rec, _ := newContext(t, domain.RoleNone, http.MethodPost, "/api/password/forgot", `{"email":"a@example.com"}`)

	if err := h.ForgotPassword(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	var resp messageResponse
	_ = json.Unmarshal(rec.Body.Bytes(), &resp)
	if resp.Message != "OTP sent to your email" {
		t.Fatalf("unexpected message %q", resp.Message)
	}
}
