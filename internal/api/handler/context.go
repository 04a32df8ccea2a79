package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/firewatch-nepal/portal/internal/api/middleware"
	"github.com/firewatch-nepal/portal/internal/core/service"
)

// sessionStore returns the store injected by the Session middleware. Its
// absence means the route was mounted without the middleware.
func sessionStore(c echo.Context) (*service.SessionStore, error) {
	store := middleware.SessionFrom(c)
	if store == nil {
		return nil, echo.NewHTTPError(http.StatusInternalServerError, "session unavailable")
	}
	return store, nil
}

// bindAndValidate binds the request into req and runs the validator.
func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	return c.Validate(req)
}
