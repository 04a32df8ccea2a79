package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/firewatch-nepal/portal/internal/api/metrics"
	"github.com/firewatch-nepal/portal/internal/core/domain"
	"github.com/firewatch-nepal/portal/internal/core/service"
)

// RequireAccess enforces a route access level against the request's session.
// A denied request gets 303 See Other with the guard's redirect in both the
// Location header and the body.
func RequireAccess(access domain.Access) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			session := domain.Anonymous()
			if store := SessionFrom(c); store != nil {
				session = store.Current()
			}

			decision := service.Guard(session, access)
			if decision.Allow {
				metrics.GuardDecisionsTotal.WithLabelValues(string(access), "allow").Inc()
				return next(c)
			}

			metrics.GuardDecisionsTotal.WithLabelValues(string(access), "redirect").Inc()
			c.Response().Header().Set(echo.HeaderLocation, decision.RedirectTo)
			return c.JSON(http.StatusSeeOther, decision)
		}
	}
}
