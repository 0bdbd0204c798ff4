// Package service contains the business logic.
//
// It sits between the handler and repository layers. Each service
// depends on a small store interface implemented by the corresponding
// repository, so tests can substitute mocks.
package service

import (
	"github.com/fennwick/practice-journal/internal/repository"
	"github.com/fennwick/practice-journal/internal/server"
)

// Services is a container that groups all business-layer services.
type Services struct {
	Instruments *InstrumentService
	Templates   *TemplateService
	Logs        *LogService
	Analytics   *AnalyticsService
}

// NewServices constructs the service container.
func NewServices(s *server.Server, repos *repository.Repositories) *Services {
	return &Services{
		Instruments: NewInstrumentService(repos.Instruments),
		Templates:   NewTemplateService(repos.Templates),
		Logs:        NewLogService(repos.Logs),
		Analytics:   NewAnalyticsService(repos.Analytics),
	}
}
