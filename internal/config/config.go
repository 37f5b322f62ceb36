// Package config загружает настройки сервиса и CLI из окружения.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config — настройки сервера и клиента.
type Config struct {
	HTTPAddr        string        `env:"HTTP_ADDR"             envDefault:":8080"`
	DBDSN           string        `env:"DB_DSN"`
	SeedFile        string        `env:"SEED_FILE"`
	AllowedOrigins  []string      `env:"CORS_ALLOWED_ORIGINS"  envDefault:"*" envSeparator:","`
	ServerURL       string        `env:"ACTIVITIES_SERVER_URL" envDefault:"http://localhost:8080"`
	HideAfter       time.Duration `env:"MESSAGE_HIDE_AFTER"    envDefault:"5s"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT"      envDefault:"5s"`
	LogLevel        string        `env:"LOG_LEVEL"             envDefault:"info"`
}

// Load читает .env (если файл есть) и переменные окружения.
// Уже заданные переменные окружения имеют приоритет над .env.
func Load(dotenvFiles ...string) (Config, error) {
	if err := godotenv.Load(dotenvFiles...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate проверяет значения, которые env не может проверить сам.
func (c Config) Validate() error {
	if c.HTTPAddr == "" {
		return errors.New("HTTP_ADDR must not be empty")
	}
	if c.HideAfter <= 0 {
		return errors.New("MESSAGE_HIDE_AFTER must be positive")
	}
	if c.ShutdownTimeout <= 0 {
		return errors.New("SHUTDOWN_TIMEOUT must be positive")
	}
	if _, err := c.SlogLevel(); err != nil {
		return err
	}
	return nil
}

// SlogLevel переводит LOG_LEVEL в уровень slog.
func (c Config) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.ToUpper(c.LogLevel))); err != nil {
		return 0, fmt.Errorf("LOG_LEVEL: %w", err)
	}
	return level, nil
}
