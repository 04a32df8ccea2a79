package handler

import (
	"context"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/firewatch-nepal/portal/internal/api/middleware"
	"github.com/firewatch-nepal/portal/internal/core/domain"
	"github.com/firewatch-nepal/portal/internal/core/service"
	"github.com/firewatch-nepal/portal/internal/infrastructure/db/memory"
)

// newContext builds an echo context carrying a session for role (RoleNone for
// anonymous) whose token is "tok-<role>".
func newContext(t *testing.T, role domain.Role, method, target, body string) (echo.Context, *httptest.ResponseRecorder, *service.SessionStore) {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()

	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, r)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	manager := service.NewSessionManager(memory.NewTokenStorage(), nil, 0, zerolog.Nop())
	store := manager.ForClient(uuid.NewString())
	if role != domain.RoleNone {
		if err := store.Login(context.Background(), "tok-"+string(role), role); err != nil {
			t.Fatalf("login: %v", err)
		}
	}
	middleware.SetSession(c, store)
	return c, rec, store
}
