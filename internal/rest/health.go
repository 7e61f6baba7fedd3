package rest

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

type HealthHandler struct {
	name    string
	version string
}

func NewHealthHandler(name, version string) *HealthHandler {
	return &HealthHandler{name: name, version: version}
}

func (h *HealthHandler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":  "ok",
		"app":     h.name,
		"version": h.version,
	})
}
