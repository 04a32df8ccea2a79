package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/firewatch-nepal/portal/internal/core/domain"
)

// ViewHandler serves the read-only page view models.
type ViewHandler struct {
	alerts     AlertService
	hotspots   HotspotService
	insight    InsightService
	stats      StatsService
	dashboards DashboardService
}

func NewViewHandler(alerts AlertService, hotspots HotspotService, insight InsightService, stats StatsService, dashboards DashboardService) *ViewHandler {
	return &ViewHandler{alerts: alerts, hotspots: hotspots, insight: insight, stats: stats, dashboards: dashboards}
}

type homeView struct {
	ActiveAlerts []domain.Alert `json:"active_alerts"`
}

type liveMapRequest struct {
	Sensor string `query:"sensor"`
	Days   int    `query:"days" validate:"omitempty,gte=1,lte=10"`
}

type liveMapView struct {
	*domain.HotspotSnapshot
	Count int `json:"count"`
}

type pointRequest struct {
	Lat string `query:"lat" validate:"required,latitude"`
	Lon string `query:"lon" validate:"required,longitude"`
}

// Home returns the active alerts banner.
//
// @Summary      Home page
// @Tags         views
// @Produce      json
// @Success      200  {object}  homeView
// @Router       /api/views/home [get]
func (h *ViewHandler) Home(c echo.Context) error {
	store, err := sessionStore(c)
	if err != nil {
		return err
	}
	alerts, err := h.alerts.Active(c.Request().Context(), store.Current().TokenRef)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, homeView{ActiveAlerts: alerts})
}

// LiveMap returns satellite hotspots over Nepal.
//
// @Summary      Live hotspot map
// @Tags         views
// @Produce      json
// @Param        sensor  query     string  false  "FIRMS sensor, e.g. MODIS_NRT"
// @Param        days    query     int     false  "Day window, 1 to 10"
// @Success      200     {object}  liveMapView
// @Failure      422     {object}  map[string]string
// @Failure      502     {object}  map[string]string
// @Router       /api/views/live-map [get]
func (h *ViewHandler) LiveMap(c echo.Context) error {
	var req liveMapRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	snap, err := h.hotspots.Snapshot(c.Request().Context(), req.Sensor, req.Days)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, liveMapView{HotspotSnapshot: snap, Count: len(snap.Hotspots)})
}

// PointInsight returns weather, elevation and VPD for a map click.
//
// @Summary      Point insight
// @Tags         views
// @Produce      json
// @Param        lat  query     number  true  "Latitude"
// @Param        lon  query     number  true  "Longitude"
// @Success      200  {object}  domain.PointInsight
// @Failure      409  {object}  map[string]string
// @Failure      422  {object}  map[string]string
// @Router       /api/views/point-insight [get]
func (h *ViewHandler) PointInsight(c echo.Context) error {
	var req pointRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	store, err := sessionStore(c)
	if err != nil {
		return err
	}
	lat, _ := strconv.ParseFloat(req.Lat, 64)
	lon, _ := strconv.ParseFloat(req.Lon, 64)
	insight, err := h.insight.PointInsight(c.Request().Context(), store.ClientID(), lat, lon)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, insight)
}

// Stats returns the historical fire statistics.
//
// @Summary      Fire statistics
// @Tags         views
// @Produce      json
// @Success      200  {object}  service.StatsView
// @Router       /api/views/stats [get]
func (h *ViewHandler) Stats(c echo.Context) error {
	return c.JSON(http.StatusOK, h.stats.Stats(c.Request().Context()))
}

// UserDashboard is the landing page for logged-in users.
//
// @Summary      User dashboard
// @Tags         views
// @Produce      json
// @Success      200  {object}  service.UserDashboardView
// @Failure      303  {object}  domain.GuardDecision
// @Router       /api/views/user-dashboard [get]
func (h *ViewHandler) UserDashboard(c echo.Context) error {
	store, err := sessionStore(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, h.dashboards.User(c.Request().Context(), store.Current()))
}

// AdminDashboard is the admin landing page.
//
// @Summary      Admin dashboard
// @Tags         views
// @Produce      json
// @Success      200  {object}  service.AdminDashboardView
// @Failure      303  {object}  domain.GuardDecision
// @Router       /api/views/admin-dashboard [get]
func (h *ViewHandler) AdminDashboard(c echo.Context) error {
	store, err := sessionStore(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, h.dashboards.Admin(c.Request().Context(), store.Current().TokenRef))
}
