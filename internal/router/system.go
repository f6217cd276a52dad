package router

import (
	"github.com/labstack/echo/v4"

	"github.com/abidbilal/deskservice/internal/handler"
)

// registerSystemRoutes registers endpoints that are not part of business
// logic, kept in a dedicated file.
func registerSystemRoutes(e *echo.Echo, h *handler.Handlers) {
	// Health status endpoint, probed by load balancers and monitors.
	e.GET("/status", h.Health.CheckHealth)
}
