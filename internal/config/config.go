// internal/config/config.go
package config

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"localscoop/pkg/db" // Import db package for its Config struct

	"github.com/go-playground/validator/v10"
	_ "github.com/joho/godotenv/autoload" // Loads .env into the process environment when present
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix is stripped from every variable. A double underscore nests:
// LOCALSCOOP_DATABASE__HOST sets database.host.
const EnvPrefix = "LOCALSCOOP_"

// AppConfig holds all application-wide configurations.
type AppConfig struct {
	// Env selects the log format: "local" for text, "hosted" for JSON.
	Env      string    `koanf:"env" validate:"required,oneof=local hosted"`
	LogLevel string    `koanf:"log_level" validate:"required,oneof=debug info warn error"`
	Migrate  bool      `koanf:"migrate"` // Apply embedded migrations at startup
	DB       db.Config `koanf:"database"`
}

// Defaults returns the configuration used for any variable that is not set.
func Defaults() AppConfig {
	return AppConfig{
		Env:      "local",
		LogLevel: "info",
		Migrate:  true,
		DB: db.Config{
			Host:            "localhost",
			Port:            5432,
			User:            "localscoop",
			DBName:          "localscoop",
			SSLMode:         "disable",
			MaxOpenConns:    25,
			MaxIdleConns:    25,
			ConnMaxLifetime: 5 * time.Minute,
		},
	}
}

// SlogLevel converts LogLevel for util.InitLogger.
func (c *AppConfig) SlogLevel() slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo
	}
	return level
}

// envKey maps LOCALSCOOP_DATABASE__SSL_MODE to database.ssl_mode.
func envKey(s string) string {
	key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	return strings.ReplaceAll(key, "__", ".")
}

// LoadConfig loads configuration from environment variables.
// It returns an AppConfig instance or an error if any variable is invalid.
func LoadConfig() (*AppConfig, error) {
	k := koanf.New(".")
	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("failed to read environment: %w", err)
	}

	cfg := Defaults()
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to decode configuration: %w", err)
	}

	if err := validator.New().Struct(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &cfg, nil
}
