package handler

import (
	"github.com/fennwick/practice-journal/internal/server"
	"github.com/fennwick/practice-journal/internal/service"
)

// Handlers groups all HTTP handlers so the router receives one object.
type Handlers struct {
	Health      *HealthHandler
	Instruments *InstrumentHandler
	Templates   *TemplateHandler
	Logs        *LogHandler
	Analytics   *AnalyticsHandler
}

func NewHandlers(s *server.Server, services *service.Services) *Handlers {
	return &Handlers{
		Health:      NewHealthHandler(s),
		Instruments: NewInstrumentHandler(s, services.Instruments),
		Templates:   NewTemplateHandler(s, services.Templates),
		Logs:        NewLogHandler(s, services.Logs),
		Analytics:   NewAnalyticsHandler(s, services.Analytics),
	}
}
