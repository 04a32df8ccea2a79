package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/firewatch-nepal/portal/internal/core/service"
)

// ShellHandler serves the navbar model and route resolution.
type ShellHandler struct{}

func NewShellHandler() *ShellHandler {
	return &ShellHandler{}
}

// Shell returns the navbar for the current session.
//
// @Summary      Page shell
// @Tags         shell
// @Produce      json
// @Success      200  {object}  service.ShellView
// @Router       /api/shell [get]
func (h *ShellHandler) Shell(c echo.Context) error {
	store, err := sessionStore(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, service.BuildShell(store.Current()))
}

type resolveRequest struct {
	Path string `query:"path" validate:"required"`
}

// Resolve runs a path through the route table and the guard.
//
// @Summary      Resolve a client-side route
// @Tags         shell
// @Produce      json
// @Param        path  query     string  true  "Route path"
// @Success      200   {object}  service.RouteResolution
// @Failure      404   {object}  map[string]string
// @Router       /api/routes/resolve [get]
func (h *ShellHandler) Resolve(c echo.Context) error {
	var req resolveRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	store, err := sessionStore(c)
	if err != nil {
		return err
	}
	res, err := service.ResolveRoute(store.Current(), req.Path)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, res)
}
