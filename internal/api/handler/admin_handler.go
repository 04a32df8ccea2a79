package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/firewatch-nepal/portal/internal/core/domain"
)

// AdminHandler serves the admin-only operations. Every route is mounted
// behind RequireAccess(domain.AccessAdmin); the backend still checks the token.
type AdminHandler struct {
	alerts  AlertService
	reports ReportService
	contact ContactService
}

func NewAdminHandler(alerts AlertService, reports ReportService, contact ContactService) *AdminHandler {
	return &AdminHandler{alerts: alerts, reports: reports, contact: contact}
}

type deleteAlertResponse struct {
	ID      string               `json:"id"`
	Outcome domain.DeleteOutcome `json:"outcome"`
}

type scanRequest struct {
	CreateAlerts bool `json:"create_alerts"`
}

type adminContext struct {
	clientID string
	token    string
}

func adminFrom(c echo.Context) (adminContext, error) {
	store, err := sessionStore(c)
	if err != nil {
		return adminContext{}, err
	}
	return adminContext{clientID: store.ClientID(), token: store.Current().TokenRef}, nil
}

// ListAlerts handles GET /api/admin/alerts.
//
// @Summary      List alerts
// @Tags         admin
// @Produce      json
// @Success      200  {array}   domain.Alert
// @Failure      303  {object}  domain.GuardDecision
// @Router       /api/admin/alerts [get]
func (h *AdminHandler) ListAlerts(c echo.Context) error {
	a, err := adminFrom(c)
	if err != nil {
		return err
	}
	alerts, err := h.alerts.List(c.Request().Context(), a.token)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, alerts)
}

// CreateAlert handles POST /api/admin/alerts.
//
// @Summary      Create an alert
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        body  body      domain.Alert  true  "Alert"
// @Success      201   {object}  domain.Alert
// @Failure      409   {object}  map[string]string
// @Failure      422   {object}  map[string]string
// @Router       /api/admin/alerts [post]
func (h *AdminHandler) CreateAlert(c echo.Context) error {
	var alert domain.Alert
	if err := c.Bind(&alert); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	a, err := adminFrom(c)
	if err != nil {
		return err
	}
	created, err := h.alerts.Create(c.Request().Context(), a.clientID, a.token, alert)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, created)
}

// UpdateAlert handles PUT /api/admin/alerts/:id.
//
// @Summary      Update an alert
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        id    path      string              true  "Alert id"
// @Param        body  body      domain.AlertUpdate  true  "Changed fields"
// @Success      200   {object}  domain.Alert
// @Failure      404   {object}  map[string]string
// @Failure      422   {object}  map[string]string
// @Router       /api/admin/alerts/{id} [put]
func (h *AdminHandler) UpdateAlert(c echo.Context) error {
	var update domain.AlertUpdate
	if err := c.Bind(&update); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	a, err := adminFrom(c)
	if err != nil {
		return err
	}
	updated, err := h.alerts.Update(c.Request().Context(), a.token, c.Param("id"), update)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, updated)
}

// DeleteAlert handles DELETE /api/admin/alerts/:id. Deleting an alert that is
// already gone reports outcome not_found with 200.
//
// @Summary      Delete an alert
// @Tags         admin
// @Produce      json
// @Param        id   path      string  true  "Alert id"
// @Success      200  {object}  deleteAlertResponse
// @Router       /api/admin/alerts/{id} [delete]
func (h *AdminHandler) DeleteAlert(c echo.Context) error {
	a, err := adminFrom(c)
	if err != nil {
		return err
	}
	id := c.Param("id")
	outcome, err := h.alerts.Delete(c.Request().Context(), a.token, id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, deleteAlertResponse{ID: id, Outcome: outcome})
}

// Scan handles POST /api/admin/scan.
//
// @Summary      Scan Nepal for high-risk districts
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        body  body      scanRequest  false  "Scan options"
// @Success      200   {object}  service.ScanOutcome
// @Failure      409   {object}  map[string]string
// @Router       /api/admin/scan [post]
func (h *AdminHandler) Scan(c echo.Context) error {
	var req scanRequest
	if c.Request().ContentLength != 0 {
		if err := c.Bind(&req); err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
		}
	}
	a, err := adminFrom(c)
	if err != nil {
		return err
	}
	outcome, err := h.alerts.Scan(c.Request().Context(), a.clientID, a.token, req.CreateAlerts)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, outcome)
}

// ListReports handles GET /api/admin/reports.
//
// @Summary      List fire reports
// @Tags         admin
// @Produce      json
// @Success      200  {array}  domain.FireReport
// @Router       /api/admin/reports [get]
func (h *AdminHandler) ListReports(c echo.Context) error {
	a, err := adminFrom(c)
	if err != nil {
		return err
	}
	reports, err := h.reports.List(c.Request().Context(), a.token)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, reports)
}

// ResolveReport handles PUT /api/admin/reports/:id/resolve.
//
// @Summary      Mark a report resolved
// @Tags         admin
// @Produce      json
// @Param        id   path      string  true  "Report id"
// @Success      200  {object}  domain.FireReport
// @Failure      404  {object}  map[string]string
// @Router       /api/admin/reports/{id}/resolve [put]
func (h *AdminHandler) ResolveReport(c echo.Context) error {
	a, err := adminFrom(c)
	if err != nil {
		return err
	}
	report, err := h.reports.Resolve(c.Request().Context(), a.token, c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, report)
}

// ListMessages handles GET /api/admin/messages.
//
// @Summary      Contact inbox
// @Tags         admin
// @Produce      json
// @Success      200  {array}  domain.ContactMessage
// @Router       /api/admin/messages [get]
func (h *AdminHandler) ListMessages(c echo.Context) error {
	a, err := adminFrom(c)
	if err != nil {
		return err
	}
	msgs, err := h.contact.Inbox(c.Request().Context(), a.token)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, msgs)
}
