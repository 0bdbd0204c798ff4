// Package repository handles all interactions with the database.
//
// It contains raw SQL queries and methods to fetch, persist,
// or update data, abstracting SQL logic away from the service layer.
//
// Row-not-found conditions are returned as *errs.HTTPError (404) with
// the entity's exact message; every other driver error propagates raw
// so the global error handler can translate it via sqlerr.
package repository

import (
	"github.com/fennwick/practice-journal/internal/server"
)

// Repositories is a container for all repository instances.
type Repositories struct {
	Instruments *InstrumentsRepository
	Templates   *TemplatesRepository
	Logs        *LogsRepository
	Analytics   *AnalyticsRepository
}

// NewRepositories constructs the repository container from the shared
// application resources (the pgx pool lives on s.DB).
func NewRepositories(s *server.Server) *Repositories {
	pool := s.DB.Pool
	return &Repositories{
		Instruments: NewInstrumentsRepository(pool),
		Templates:   NewTemplatesRepository(pool),
		Logs:        NewLogsRepository(pool),
		Analytics:   NewAnalyticsRepository(pool),
	}
}
