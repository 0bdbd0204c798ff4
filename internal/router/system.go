package router

import (
	"github.com/fennwick/practice-journal/internal/handler"
	"github.com/labstack/echo/v4"
)

// registerSystemRoutes registers the endpoints that are not business
// logic: the API banner and the health probes.
func registerSystemRoutes(r *echo.Echo, h *handler.Handlers) {
	r.GET("/", h.Health.Root)

	// Plain liveness for load balancers and uptime monitors.
	r.GET("/health", h.Health.CheckHealth)

	// Dependency-checking variant; 503 when the database is down.
	r.GET("/health/full", h.Health.CheckHealthFull)
}
