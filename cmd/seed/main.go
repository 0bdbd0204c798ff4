// Command seed loads the sample violin rotation into the database.
// Safe to run repeatedly; it skips when the data is already present.
package main

import (
	"context"
	"os"
	"time"

	"github.com/fennwick/practice-journal/internal/config"
	"github.com/fennwick/practice-journal/internal/database"
	"github.com/fennwick/practice-journal/internal/logger"
	"github.com/fennwick/practice-journal/internal/seed"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		os.Exit(1)
	}

	log, loggerService, err := logger.New(cfg)
	if err != nil {
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	if err := database.Migrate(ctx, log, cfg); err != nil {
		log.Fatal().Err(err).Msg("failed to run migrations")
	}

	db, err := database.New(cfg, log, loggerService)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer db.Close() //nolint:errcheck

	if err := seed.New(db.Pool, log).Run(ctx); err != nil {
		log.Fatal().Err(err).Msg("seeding failed")
	}

	if loggerService != nil {
		loggerService.Shutdown(10 * time.Second)
	}
}
