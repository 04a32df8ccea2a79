package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/firewatch-nepal/portal/internal/core/domain"
)

// FormHandler handles the public forms: fire reports, contact and predict.
type FormHandler struct {
	reports    ReportService
	contact    ContactService
	prediction PredictionService
}

func NewFormHandler(reports ReportService, contact ContactService, prediction PredictionService) *FormHandler {
	return &FormHandler{reports: reports, contact: contact, prediction: prediction}
}

type reportRequest struct {
	Name            string   `json:"name" validate:"required"`
	Email           string   `json:"email" validate:"required,email"`
	Province        string   `json:"province" validate:"required"`
	District        string   `json:"district" validate:"required"`
	LocationDetails string   `json:"location_details" validate:"required"`
	FireDate        string   `json:"fire_date" validate:"required,datetime=2006-01-02"`
	Description     string   `json:"description" validate:"required"`
	Lat             *float64 `json:"lat" validate:"omitempty,latitude"`
	Lon             *float64 `json:"lon" validate:"omitempty,longitude"`
}

func (r reportRequest) toDomain() domain.FireReport {
	report := domain.FireReport{
		ReporterName:    r.Name,
		Email:           r.Email,
		Province:        r.Province,
		District:        r.District,
		LocationDetails: r.LocationDetails,
		FireDate:        r.FireDate,
		Description:     r.Description,
	}
	if r.Lat != nil && r.Lon != nil {
		report.Coordinates = &domain.Coordinates{Lat: *r.Lat, Lon: *r.Lon}
	}
	return report
}

type contactRequest struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Subject string `json:"subject" validate:"required"`
	Message string `json:"message" validate:"required"`
}

type predictRequest struct {
	Latitude      float64 `json:"latitude" validate:"latitude"`
	Longitude     float64 `json:"longitude" validate:"longitude"`
	Temperature   float64 `json:"temperature" validate:"gte=-60,lte=60"`
	Humidity      float64 `json:"humidity" validate:"gte=0,lte=100"`
	WindSpeed     float64 `json:"wind_speed" validate:"gte=0"`
	Precipitation float64 `json:"precipitation" validate:"gte=0"`
	Elevation     float64 `json:"elevation"`
}

// SubmitReport files a fire report.
//
// @Summary      Report a fire
// @Tags         forms
// @Accept       json
// @Produce      json
// @Param        body  body      reportRequest  true  "Fire report"
// @Success      201   {object}  domain.FireReport
// @Failure      409   {object}  map[string]string
// @Failure      422   {object}  map[string]string
// @Router       /api/reports [post]
func (h *FormHandler) SubmitReport(c echo.Context) error {
	var req reportRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	store, err := sessionStore(c)
	if err != nil {
		return err
	}
	created, err := h.reports.Submit(c.Request().Context(), store.ClientID(), store.Current().TokenRef, req.toDomain())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, created)
}

// SubmitContact sends a contact message.
//
// @Summary      Contact form
// @Tags         forms
// @Accept       json
// @Produce      json
// @Param        body  body      contactRequest  true  "Message"
// @Success      201   {object}  domain.ContactMessage
// @Failure      409   {object}  map[string]string
// @Failure      422   {object}  map[string]string
// @Router       /api/contact [post]
func (h *FormHandler) SubmitContact(c echo.Context) error {
	var req contactRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	store, err := sessionStore(c)
	if err != nil {
		return err
	}
	msg, err := h.contact.Submit(c.Request().Context(), store.ClientID(), domain.ContactMessage{
		Name:    req.Name,
		Email:   req.Email,
		Subject: req.Subject,
		Message: req.Message,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, msg)
}

// Predict runs the fire model on manual inputs.
//
// @Summary      Manual fire prediction
// @Tags         forms
// @Accept       json
// @Produce      json
// @Param        body  body      predictRequest  true  "Conditions"
// @Success      200   {object}  service.PredictionView
// @Failure      409   {object}  map[string]string
// @Failure      422   {object}  map[string]string
// @Router       /api/predict [post]
func (h *FormHandler) Predict(c echo.Context) error {
	var req predictRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	store, err := sessionStore(c)
	if err != nil {
		return err
	}
	view, err := h.prediction.Predict(c.Request().Context(), store.ClientID(), domain.PredictionInput(req))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, view)
}
