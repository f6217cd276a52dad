// Package logger configures the application's logging and monitoring.
//
// It uses zerolog for structured logging and optionally wires the New
// Relic agent so logs, traces, and SQL timings land in one place. When no
// license key is configured every New Relic integration degrades to a
// no-op and plain zerolog output remains.
package logger

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/abidbilal/deskservice/internal/config"
	"github.com/newrelic/go-agent/v3/integrations/logcontext-v2/zerologWriter"
	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/rs/zerolog"
)

// LoggerService wraps the optional New Relic application instance so other
// packages can ask for it without knowing whether APM is enabled.
type LoggerService struct {
	nrApp *newrelic.Application
}

// GetApplication returns the New Relic application, or nil when APM is
// disabled.
func (s *LoggerService) GetApplication() *newrelic.Application {
	if s == nil {
		return nil
	}
	return s.nrApp
}

// Shutdown flushes pending telemetry. Safe to call when APM is disabled.
func (s *LoggerService) Shutdown(timeout time.Duration) {
	if s == nil || s.nrApp == nil {
		return
	}
	s.nrApp.Shutdown(timeout)
}

// New builds the application logger and the LoggerService from config.
//
// Output format follows Observability.Logging.Format: "console" writes a
// human-friendly stream (local development), anything else writes JSON.
// When a New Relic license key is present and log forwarding is enabled,
// the JSON stream is wrapped so log lines are decorated with trace
// metadata and forwarded by the agent.
func New(cfg *config.Config) (*zerolog.Logger, *LoggerService, error) {
	obs := cfg.Observability

	level, err := zerolog.ParseLevel(obs.GetLogLevel())
	if err != nil {
		return nil, nil, fmt.Errorf("parsing log level: %w", err)
	}

	service := &LoggerService{}
	if obs.NewRelic.LicenseKey != "" {
		app, err := newrelic.NewApplication(
			newrelic.ConfigAppName(obs.ServiceName),
			newrelic.ConfigLicense(obs.NewRelic.LicenseKey),
			newrelic.ConfigDistributedTracerEnabled(obs.NewRelic.DistributedTracingEnabled),
			newrelic.ConfigAppLogForwardingEnabled(obs.NewRelic.AppLogForwardingEnabled),
			func(c *newrelic.Config) {
				c.Labels = map[string]string{"env": obs.Environment}
				if obs.NewRelic.DebugLogging {
					c.Logger = newrelic.NewDebugLogger(os.Stderr)
				}
			},
		)
		if err != nil {
			return nil, nil, fmt.Errorf("initializing new relic: %w", err)
		}
		service.nrApp = app
	}

	var out io.Writer = os.Stdout
	if obs.Logging.Format == "console" {
		out = zerolog.ConsoleWriter{Out: os.Stdout}
	} else if service.nrApp != nil && obs.NewRelic.AppLogForwardingEnabled {
		nrWriter := zerologWriter.New(os.Stdout, service.nrApp)
		out = &nrWriter
	}

	log := zerolog.New(out).
		Level(level).
		With().
		Timestamp().
		Str("service", obs.ServiceName).
		Logger()

	return &log, service, nil
}

// WithTraceContext decorates a logger with the trace and span identifiers
// of the given transaction, so log lines can be correlated with traces.
func WithTraceContext(log zerolog.Logger, txn *newrelic.Transaction) zerolog.Logger {
	if txn == nil {
		return log
	}

	md := txn.GetTraceMetadata()
	return log.With().
		Str("trace.id", md.TraceID).
		Str("span.id", md.SpanID).
		Logger()
}

// NewPgxLogger builds the logger used for SQL statement tracing. It shares
// the global level so query logging obeys the configured verbosity.
func NewPgxLogger(level zerolog.Level) zerolog.Logger {
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().
		Timestamp().
		Str("component", "pgx").
		Logger()
}

// Trace log levels understood by pgx tracelog, mirrored here so database
// setup does not need to import tracelog just for the mapping.
const (
	PgxTraceLogLevelError = 2
	PgxTraceLogLevelWarn  = 3
	PgxTraceLogLevelInfo  = 4
	PgxTraceLogLevelDebug = 5
)

// GetPgxTraceLogLevel maps a zerolog level onto the pgx tracelog level.
func GetPgxTraceLogLevel(level zerolog.Level) int {
	switch level {
	case zerolog.DebugLevel, zerolog.TraceLevel:
		return PgxTraceLogLevelDebug
	case zerolog.InfoLevel:
		return PgxTraceLogLevelInfo
	case zerolog.WarnLevel:
		return PgxTraceLogLevelWarn
	default:
		return PgxTraceLogLevelError
	}
}
