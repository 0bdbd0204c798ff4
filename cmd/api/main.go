// Command api runs the practice journal HTTP service.
//
// Startup order: configuration, logger, schema migrations, server
// container (database pool), then the wired handler stack. Shutdown is
// graceful on SIGINT/SIGTERM.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fennwick/practice-journal/internal/config"
	"github.com/fennwick/practice-journal/internal/database"
	"github.com/fennwick/practice-journal/internal/handler"
	"github.com/fennwick/practice-journal/internal/logger"
	"github.com/fennwick/practice-journal/internal/middleware"
	"github.com/fennwick/practice-journal/internal/repository"
	"github.com/fennwick/practice-journal/internal/router"
	"github.com/fennwick/practice-journal/internal/server"
	"github.com/fennwick/practice-journal/internal/service"
)

const shutdownTimeout = 30 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		// config.Load logs fatally itself; this is belt and braces.
		os.Exit(1)
	}

	log, loggerService, err := logger.New(cfg)
	if err != nil {
		os.Exit(1)
	}

	migrateCtx, cancelMigrate := context.WithTimeout(context.Background(), 2*time.Minute)
	if err := database.Migrate(migrateCtx, log, cfg); err != nil {
		cancelMigrate()
		log.Fatal().Err(err).Msg("failed to run migrations")
	}
	cancelMigrate()

	srv, err := server.New(cfg, log, loggerService)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize server")
	}

	repos := repository.NewRepositories(srv)
	services := service.NewServices(srv, repos)
	handlers := handler.NewHandlers(srv, services)
	middlewares := middleware.NewMiddlewares(srv)

	e := router.New(handlers, middlewares)
	srv.SetupHTTPServer(e)

	// Run the server in a goroutine so the main goroutine can block on
	// shutdown signals.
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped unexpectedly")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("shutdown failed")
		os.Exit(1)
	}

	log.Info().Msg("shutdown complete")
}
