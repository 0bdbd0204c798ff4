package router

import (
	"net/http"

	"github.com/fennwick/practice-journal/internal/handler"
	"github.com/labstack/echo/v4"
)

// registerAPIRoutes registers the business routes under /api.
func registerAPIRoutes(r *echo.Echo, h *handler.Handlers) {
	api := r.Group("/api")

	api.GET("/instruments",
		handler.Handle(h.Instruments.Handler, h.Instruments.List, http.StatusOK))
	api.GET("/instruments/:id",
		handler.Handle(h.Instruments.Handler, h.Instruments.Get, http.StatusOK))

	api.GET("/templates",
		handler.Handle(h.Templates.Handler, h.Templates.List, http.StatusOK))
	api.GET("/templates/:id",
		handler.Handle(h.Templates.Handler, h.Templates.Get, http.StatusOK))
	api.GET("/templates/:id/days/:day_number",
		handler.Handle(h.Templates.Handler, h.Templates.GetDay, http.StatusOK))

	api.POST("/logs",
		handler.Handle(h.Logs.Handler, h.Logs.Create, http.StatusCreated))
	api.GET("/logs",
		handler.Handle(h.Logs.Handler, h.Logs.List, http.StatusOK))
	api.GET("/logs/:id",
		handler.Handle(h.Logs.Handler, h.Logs.Get, http.StatusOK))

	api.GET("/analytics",
		handler.Handle(h.Analytics.Handler, h.Analytics.Summary, http.StatusOK))
}
