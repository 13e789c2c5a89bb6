// Package cli provides common CLI initialization utilities shared by the
// bilancio commands.
package cli

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"bilancio/internal/amqp"
	"bilancio/internal/config"
	"bilancio/internal/ledger"
	"bilancio/internal/log"
	"bilancio/internal/services"
)

// LoadEnvFile loads the .env file for local development.
// Errors are ignored silently as the file is optional.
func LoadEnvFile() {
	_ = godotenv.Load()
}

// LoadAndValidateConfig loads configuration and validates it.
func LoadAndValidateConfig() (*config.Config, error) {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// SetupLogger builds the application logger from the configuration and
// sets it as the slog default. Logs go to out.
func SetupLogger(cfg *config.Config, out io.Writer) *log.Logger {
	logCfg := log.DefaultConfig()
	logCfg.Output = out
	if level, err := log.ParseLevel(cfg.LogLevel); err == nil {
		logCfg.Level = level
	}
	logCfg.Format = cfg.LogFormat

	logger := log.New(logCfg)
	log.SetDefault(logger)
	logger.WithComponent(log.ComponentConfig).Debug("Configuration loaded",
		log.FieldOperation, log.OpStartup,
		log.FieldFile, cfg.LedgerFile,
		"currency", cfg.Currency,
		"events", cfg.EventsEnabled())
	return logger
}

// NewLedgerService wires a fresh ledger with the optional AMQP publisher.
// A broker that cannot be reached only disables event publishing.
func NewLedgerService(ctx context.Context, cfg *config.Config, logger *log.Logger) *services.LedgerService {
	var events services.EventPublisher
	if cfg.EventsEnabled() {
		client, err := amqp.NewClient(cfg.AMQPURL, cfg.AMQPExchange, cfg.AMQPQueue, cfg.AMQPPublishTimeout, logger)
		if err != nil {
			logger.WarnContext(ctx, "AMQP unavailable, ledger events disabled", log.FieldError, err)
		} else {
			events = client
			logger.InfoContext(ctx, "AMQP event publishing enabled", "exchange", cfg.AMQPExchange, "queue", cfg.AMQPQueue)
		}
	}
	return services.NewLedgerService(ledger.New(), events, logger)
}

// SignalContext returns a context cancelled on SIGINT or SIGTERM.
func SignalContext(logger *log.Logger) (context.Context, context.CancelFunc) {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	go func() {
		<-ctx.Done()
		logger.Debug("Signal context done", log.FieldOperation, log.OpShutdown)
	}()
	return ctx, cancel
}
