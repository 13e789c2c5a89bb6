package config

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"bilancio/internal/core"
	"bilancio/internal/log"
)

type Config struct {
	// Ledger
	LedgerFile string
	Currency   string

	// Logging
	LogLevel  string
	LogFormat string

	// AMQP (optional, empty URL disables event publishing)
	AMQPURL            string
	AMQPExchange       string
	AMQPQueue          string
	AMQPPublishTimeout time.Duration
}

func Load() *Config {
	cfg := &Config{
		LedgerFile: getEnv("LEDGER_FILE", "./data/ledger.csv"),
		Currency:   strings.ToUpper(getEnv("LEDGER_CURRENCY", "INR")),

		LogLevel:  getEnv("LOG_LEVEL", "info"),
		LogFormat: getEnv("LOG_FORMAT", "text"),

		AMQPURL:            getEnv("AMQP_URL", ""),
		AMQPExchange:       getEnv("AMQP_EXCHANGE", "bilancio"),
		AMQPQueue:          getEnv("AMQP_QUEUE", "ledger_events"),
		AMQPPublishTimeout: getEnvDuration("AMQP_PUBLISH_TIMEOUT", 5*time.Second),
	}

	return cfg
}

// EventsEnabled reports whether an AMQP broker is configured.
func (c *Config) EventsEnabled() bool {
	return c.AMQPURL != ""
}

// Validate validates the configuration and returns an error if invalid
func (c *Config) Validate() error {
	var errors []string

	if c.LedgerFile == "" {
		errors = append(errors, "ledger file path cannot be empty")
	} else if info, err := os.Stat(c.LedgerFile); err == nil && info.IsDir() {
		errors = append(errors, fmt.Sprintf("ledger file '%s' is a directory", c.LedgerFile))
	}

	if !core.KnownCurrency(c.Currency) {
		errors = append(errors, fmt.Sprintf("unknown currency '%s': must be an ISO 4217 code", c.Currency))
	}

	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		errors = append(errors, fmt.Sprintf("invalid log level '%s': must be one of [debug info warn error]", c.LogLevel))
	}
	if c.LogFormat != "text" && c.LogFormat != "json" {
		errors = append(errors, fmt.Sprintf("invalid log format '%s': must be 'text' or 'json'", c.LogFormat))
	}

	// Validate AMQP URL if provided
	if c.AMQPURL != "" {
		if parsedURL, err := url.Parse(c.AMQPURL); err != nil {
			errors = append(errors, fmt.Sprintf("invalid AMQP URL '%s': %v", c.AMQPURL, err))
		} else if parsedURL.Scheme != "amqp" && parsedURL.Scheme != "amqps" {
			errors = append(errors, fmt.Sprintf("invalid AMQP URL scheme '%s': must be 'amqp' or 'amqps'", parsedURL.Scheme))
		}

		if c.AMQPExchange == "" {
			errors = append(errors, "AMQP exchange name cannot be empty when AMQP URL is provided")
		}
		if c.AMQPQueue == "" {
			errors = append(errors, "AMQP queue name cannot be empty when AMQP URL is provided")
		}
		if c.AMQPPublishTimeout < 100*time.Millisecond {
			errors = append(errors, fmt.Sprintf("invalid AMQP publish timeout %v: must be at least 100ms", c.AMQPPublishTimeout))
		} else if c.AMQPPublishTimeout > time.Minute {
			errors = append(errors, fmt.Sprintf("invalid AMQP publish timeout %v: must be at most 1 minute", c.AMQPPublishTimeout))
		}
	}

	// Return combined errors
	if len(errors) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(errors, "\n- "))
	}

	return nil
}

// EnsureLedgerDir creates the directory holding the ledger file.
func (c *Config) EnsureLedgerDir() error {
	dir := filepath.Dir(c.LedgerFile)
	if dir == "." || dir == "" {
		return nil
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create ledger directory '%s': %w", dir, err)
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
