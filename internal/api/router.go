package api

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "github.com/firewatch-nepal/portal/docs"
	"github.com/firewatch-nepal/portal/internal/api/handler"
	"github.com/firewatch-nepal/portal/internal/api/middleware"
	"github.com/firewatch-nepal/portal/internal/core/domain"
)

// Handlers groups the HTTP handlers the router mounts.
type Handlers struct {
	Session   *handler.SessionHandler
	Shell     *handler.ShellHandler
	Views     *handler.ViewHandler
	Forms     *handler.FormHandler
	Admin     *handler.AdminHandler
	Health    *handler.HealthHandler
	Readiness *handler.ReadinessHandler
}

// Deps is everything NewRouter needs.
type Deps struct {
	Handlers Handlers
	Session  middleware.SessionConfig
	Log      zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(d Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(d.Log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestIDWithConfig(echomiddleware.RequestIDConfig{Generator: uuid.NewString}))
	e.Use(middleware.RequestLogger(d.Log))
	e.Use(middleware.Metrics())

	h := d.Handlers

	// --- Probes and tooling (no session) ---
	e.GET("/health", h.Health.Liveness)
	e.GET("/health/ready", h.Readiness.Readiness)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api", middleware.Session(d.Session))

	api.GET("/shell", h.Shell.Shell)
	api.GET("/routes/resolve", h.Shell.Resolve)

	session := api.Group("/session")
	session.GET("", h.Session.Get)
	session.POST("/login", h.Session.Login, middleware.RequireAccess(domain.AccessAnonymousOnly))
	session.POST("/logout", h.Session.Logout)
	session.GET("/events", h.Session.Events)

	api.POST("/password/forgot", h.Session.ForgotPassword)
	api.POST("/password/reset", h.Session.ResetPassword)

	views := api.Group("/views")
	views.GET("/home", h.Views.Home)
	views.GET("/live-map", h.Views.LiveMap)
	views.GET("/point-insight", h.Views.PointInsight)
	views.GET("/stats", h.Views.Stats)
	views.GET("/user-dashboard", h.Views.UserDashboard, middleware.RequireAccess(domain.AccessAuthenticated))
	views.GET("/admin-dashboard", h.Views.AdminDashboard, middleware.RequireAccess(domain.AccessAdmin))

	api.POST("/reports", h.Forms.SubmitReport)
	api.POST("/contact", h.Forms.SubmitContact)
	api.POST("/predict", h.Forms.Predict)

	admin := api.Group("/admin", middleware.RequireAccess(domain.AccessAdmin))
	admin.GET("/alerts", h.Admin.ListAlerts)
	admin.POST("/alerts", h.Admin.CreateAlert)
	admin.PUT("/alerts/:id", h.Admin.UpdateAlert)
	admin.DELETE("/alerts/:id", h.Admin.DeleteAlert)
	admin.POST("/scan", h.Admin.Scan)
	admin.GET("/reports", h.Admin.ListReports)
	admin.PUT("/reports/:id/resolve", h.Admin.ResolveReport)
	admin.GET("/messages", h.Admin.ListMessages)

	return e
}
