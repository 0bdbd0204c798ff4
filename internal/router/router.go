// Package router initializes the HTTP router (using Echo).
//
// It registers the middlewares and defines the API route groups,
// mapping specific paths to their corresponding handlers.
package router

import (
	"github.com/fennwick/practice-journal/internal/handler"
	"github.com/fennwick/practice-journal/internal/middleware"
	"github.com/labstack/echo/v4"
)

// New assembles the Echo instance: global middleware in order, the
// global error handler, system routes, and the /api business routes.
//
// Middleware order matters: the New Relic middleware must run before
// the context enhancer so trace ids land in the request logger, and
// RequestID must run before both.
func New(h *handler.Handlers, m *middleware.Middlewares) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.HTTPErrorHandler = m.Global.GlobalErrorHandler

	e.Use(m.Global.Recover())
	e.Use(m.Global.Secure())
	e.Use(m.Global.CORS())
	e.Use(middleware.RequestID())
	e.Use(m.Tracing.NewRelicMiddleware())
	e.Use(m.ContextEnhancer.EnhanceContext())
	e.Use(m.Tracing.EnhanceTracing())
	e.Use(m.Global.RequestLogger())

	registerSystemRoutes(e, h)
	registerAPIRoutes(e, h)

	return e
}
