package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/firewatch-nepal/portal/internal/core/domain"
	"github.com/firewatch-nepal/portal/internal/core/service"
)

const auditPageSize = 20

// SessionHandler handles login, logout and password recovery.
type SessionHandler struct {
	auth  AuthService
	audit SessionAuditReader // nil when the audit trail is disabled
}

func NewSessionHandler(auth AuthService, audit SessionAuditReader) *SessionHandler {
	return &SessionHandler{auth: auth, audit: audit}
}

type loginRequest struct {
	Role     domain.Role `json:"role" form:"role" validate:"required,oneof=admin user"`
	Username string      `json:"username" form:"username" validate:"required"`
	Password string      `json:"password" form:"password" validate:"required"`
}

type forgotPasswordRequest struct {
	Email string `json:"email" form:"email" validate:"required,email"`
}

type resetPasswordRequest struct {
	Email           string `json:"email" form:"email" validate:"required,email"`
	OTP             string `json:"otp" form:"otp" validate:"required"`
	NewPassword     string `json:"new_password" form:"new_password" validate:"required,min=6"`
	ConfirmPassword string `json:"confirm_password" form:"confirm_password" validate:"required,eqfield=NewPassword"`
}

type sessionResponse struct {
	Session  domain.Session `json:"session"`
	Redirect string         `json:"redirect,omitempty"`
}

type messageResponse struct {
	Message string `json:"message"`
}

// Get returns the current session.
//
// @Summary      Current session
// @Tags         session
// @Produce      json
// @Success      200  {object}  sessionResponse
// @Router       /api/session [get]
func (h *SessionHandler) Get(c echo.Context) error {
	store, err := sessionStore(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, sessionResponse{Session: store.Current()})
}

// Login exchanges credentials for a backend token and starts a session.
//
// @Summary      Log in as admin or user
// @Tags         session
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Credentials"
// @Success      200   {object}  sessionResponse
// @Failure      401   {object}  map[string]string
// @Failure      422   {object}  map[string]string
// @Failure      502   {object}  map[string]string
// @Router       /api/session/login [post]
func (h *SessionHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	store, err := sessionStore(c)
	if err != nil {
		return err
	}

	session, err := h.auth.Login(c.Request().Context(), store, req.Role, req.Username, req.Password)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, sessionResponse{Session: session, Redirect: service.DashboardFor(session)})
}

// Logout clears both role tokens.
//
// @Summary      Log out
// @Tags         session
// @Produce      json
// @Success      200  {object}  sessionResponse
// @Router       /api/session/logout [post]
func (h *SessionHandler) Logout(c echo.Context) error {
	store, err := sessionStore(c)
	if err != nil {
		return err
	}
	if err := store.Logout(c.Request().Context()); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, sessionResponse{Session: store.Current(), Redirect: domain.PathHome})
}

// Events lists the client's own session audit trail, newest first.
//
// @Summary      Session audit trail
// @Tags         session
// @Produce      json
// @Success      200  {array}  domain.SessionEvent
// @Router       /api/session/events [get]
func (h *SessionHandler) Events(c echo.Context) error {
	if h.audit == nil {
		return c.JSON(http.StatusOK, []domain.SessionEvent{})
	}
	store, err := sessionStore(c)
	if err != nil {
		return err
	}
	events, err := h.audit.ListByClient(c.Request().Context(), store.ClientID(), auditPageSize)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, events)
}

// ForgotPassword requests a one-time reset code.
//
// @Summary      Request a password reset code
// @Tags         session
// @Accept       json
// @Produce      json
// @Param        body  body      forgotPasswordRequest  true  "Account email"
// @Success      200   {object}  messageResponse
// @Router       /api/password/forgot [post]
func (h *SessionHandler) ForgotPassword(c echo.Context) error {
	var req forgotPasswordRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	msg, err := h.auth.ForgotPassword(c.Request().Context(), req.Email)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: msg})
}

// ResetPassword sets a new password with the emailed code.
//
// @Summary      Reset password
// @Tags         session
// @Accept       json
// @Produce      json
// @Param        body  body      resetPasswordRequest  true  "Reset details"
// @Success      200   {object}  messageResponse
// @Router       /api/password/reset [post]
func (h *SessionHandler) ResetPassword(c echo.Context) error {
	var req resetPasswordRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	msg, err := h.auth.ResetPassword(c.Request().Context(), req.Email, req.OTP, req.NewPassword, req.ConfirmPassword)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: msg})
}
