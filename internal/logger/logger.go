// Package logger configures the application's logging and
// observability.
//
// It uses zerolog for structured logging and optionally integrates
// with New Relic, forwarding logs and enriching log lines with trace
// metadata.
package logger

import (
	"fmt"
	"os"
	"time"

	"github.com/fennwick/practice-journal/internal/config"
	"github.com/newrelic/go-agent/v3/integrations/logcontext-v2/zerologWriter"
	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/rs/zerolog"
)

// LoggerService owns the optional New Relic application instance.
// When New Relic is not configured, nrApp is nil and every method
// degrades into a no-op.
type LoggerService struct {
	nrApp *newrelic.Application
}

// GetApplication returns the New Relic application, or nil when APM is
// disabled.
func (s *LoggerService) GetApplication() *newrelic.Application {
	return s.nrApp
}

// Shutdown flushes pending telemetry. Safe to call with APM disabled.
func (s *LoggerService) Shutdown(timeout time.Duration) {
	if s.nrApp != nil {
		s.nrApp.Shutdown(timeout)
	}
}

// New builds the root application logger and the observability service.
//
// Behavior:
//   - log level comes from ObservabilityConfig.GetLogLevel()
//   - "console" format writes human-friendly output (local dev)
//   - "json" format writes machine-parseable lines; when New Relic app
//     log forwarding is enabled, lines are also shipped to the agent
//     via zerologWriter
//   - a missing license key disables New Relic without error
func New(cfg *config.Config) (*zerolog.Logger, *LoggerService, error) {
	level, err := zerolog.ParseLevel(cfg.Observability.GetLogLevel())
	if err != nil {
		return nil, nil, fmt.Errorf("parsing log level: %w", err)
	}

	service := &LoggerService{}

	if cfg.Observability.NewRelic.LicenseKey != "" {
		nrApp, err := newrelic.NewApplication(
			newrelic.ConfigAppName(cfg.Observability.ServiceName),
			newrelic.ConfigLicense(cfg.Observability.NewRelic.LicenseKey),
			newrelic.ConfigAppLogForwardingEnabled(cfg.Observability.NewRelic.AppLogForwardingEnabled),
			newrelic.ConfigDistributedTracerEnabled(cfg.Observability.NewRelic.DistributedTracingEnabled),
		)
		if err != nil {
			return nil, nil, fmt.Errorf("initializing new relic: %w", err)
		}
		service.nrApp = nrApp
	}

	var logger zerolog.Logger
	switch {
	case cfg.Observability.Logging.Format == "console":
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
			Level(level).With().Timestamp().Logger()

	case service.nrApp != nil && cfg.Observability.NewRelic.AppLogForwardingEnabled:
		// zerologWriter decorates each line with linking metadata and
		// forwards it to the agent.
		writer := zerologWriter.New(os.Stdout, service.nrApp)
		logger = zerolog.New(writer).Level(level).With().Timestamp().Logger()

	default:
		logger = zerolog.New(os.Stdout).Level(level).With().Timestamp().Logger()
	}

	logger = logger.With().
		Str("service", cfg.Observability.ServiceName).
		Str("env", cfg.Observability.Environment).
		Logger()

	return &logger, service, nil
}

// WithTraceContext returns a copy of the logger carrying the New Relic
// trace/span identifiers of the given transaction, so log lines can be
// correlated with distributed traces.
func WithTraceContext(logger zerolog.Logger, txn *newrelic.Transaction) zerolog.Logger {
	if txn == nil {
		return logger
	}
	md := txn.GetTraceMetadata()
	return logger.With().
		Str("trace.id", md.TraceID).
		Str("span.id", md.SpanID).
		Logger()
}

// NewPgxLogger builds the logger used for SQL query tracing output.
// Kept separate from the main logger so query logs are visibly tagged
// and can be tuned independently.
func NewPgxLogger(level zerolog.Level) zerolog.Logger {
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).With().Timestamp().Str("component", "pgx").Logger()
}

// GetPgxTraceLogLevel converts a zerolog level into the numeric level
// expected by pgx's tracelog package (tracelog.LogLevel).
func GetPgxTraceLogLevel(level zerolog.Level) int {
	switch level {
	case zerolog.TraceLevel:
		return 6 // tracelog.LogLevelTrace
	case zerolog.DebugLevel:
		return 5 // tracelog.LogLevelDebug
	case zerolog.InfoLevel:
		return 4 // tracelog.LogLevelInfo
	case zerolog.WarnLevel:
		return 3 // tracelog.LogLevelWarn
	case zerolog.ErrorLevel:
		return 2 // tracelog.LogLevelError
	default:
		return 1 // tracelog.LogLevelNone
	}
}
