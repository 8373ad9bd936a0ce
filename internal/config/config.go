package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator"
	_ "github.com/joho/godotenv/autoload"
	"github.com/knadh/koanf"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
)

type Config struct {
	Server     ServerConfig `koanf:"server"`
	BankClient BankConfig   `koanf:"bank_client"`
	Retry      RetryConfig  `koanf:"retry"`
	Logger     LoggerConfig `koanf:"logger"`
}

type ServerConfig struct {
	Port         string        `koanf:"port" validate:"required"`
	ReadTimeout  time.Duration `koanf:"read_timeout" validate:"required"`
	WriteTimeout time.Duration `koanf:"write_timeout" validate:"required"`
	IdleTimeout  time.Duration `koanf:"idle_timeout" validate:"required"`
}

type BankConfig struct {
	BaseURL     string        `koanf:"base_url" validate:"required"`
	ConnTimeout time.Duration `koanf:"conn_timeout" validate:"required"`
}

type RetryConfig struct {
	BaseDelay  time.Duration `koanf:"base_delay"`
	MaxRetries int           `koanf:"max_retries"`
}

type LoggerConfig struct {
	Level string `koanf:"level"`
}

// NewLogger builds the process-wide structured logger.
func (c LoggerConfig) NewLogger() *slog.Logger {
	var level slog.Level
	switch strings.ToLower(c.Level) {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: level,
	}))
}

// defaults keep a bare `go run ./cmd/gateway` working against a local
// bank simulator; any value can be overridden via GATEWAY_* env vars,
// e.g. GATEWAY_BANK_CLIENT__BASE_URL.
var defaults = map[string]interface{}{
	"server.port":              "8090",
	"server.read_timeout":      "15s",
	"server.write_timeout":     "15s",
	"server.idle_timeout":      "60s",
	"bank_client.base_url":     "http://localhost:8080",
	"bank_client.conn_timeout": "5s",
	"retry.base_delay":         "200ms",
	"retry.max_retries":        3,
	"logger.level":             "info",
}

func LoadConfig() (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(defaults, "."), nil); err != nil {
		return nil, fmt.Errorf("loading defaults: %w", err)
	}

	err := k.Load(env.Provider("GATEWAY_", ".", func(s string) string {
		return strings.ReplaceAll(
			strings.ToLower(strings.TrimPrefix(s, "GATEWAY_")),
			"__",
			".",
		)
	}), nil)
	if err != nil {
		return nil, fmt.Errorf("loading environment variables: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	validate := validator.New()
	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}
