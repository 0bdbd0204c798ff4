package middleware

import (
	"github.com/fennwick/practice-journal/internal/server"
	"github.com/newrelic/go-agent/v3/newrelic"
)

// Middlewares groups all middleware components so the router receives
// one object.
type Middlewares struct {
	// Global holds the middleware applied to every route plus the
	// global error handler.
	Global *GlobalMiddlewares

	// ContextEnhancer builds the request-scoped logger.
	ContextEnhancer *ContextEnhancer

	// Tracing holds the New Relic Echo middleware and attribute
	// enrichment; degrades to a no-op when APM is disabled.
	Tracing *TracingMiddleware
}

// NewMiddlewares constructs all middleware components. nrApp is nil
// when New Relic is disabled, which turns the tracing middleware into
// a pass-through.
func NewMiddlewares(s *server.Server) *Middlewares {
	var nrApp *newrelic.Application
	if s.LoggerService != nil {
		nrApp = s.LoggerService.GetApplication()
	}

	return &Middlewares{
		Global:          NewGlobalMiddlewares(s),
		ContextEnhancer: NewContextEnhancer(s),
		Tracing:         NewTracingMiddleware(s, nrApp),
	}
}
