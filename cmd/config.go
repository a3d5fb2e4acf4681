package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"net/url"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config is read from the environment by LoadConfig.
type Config struct {
	HTTPPort string `envconfig:"HTTP_PORT" default:"8082"`

	DBHost     string `envconfig:"DB_HOST" required:"true"`
	DBPort     string `envconfig:"DB_PORT" default:"5432"`
	DBUser     string `envconfig:"DB_USER" required:"true"`
	DBPassword string `envconfig:"DB_PASSWORD"`
	DBName     string `envconfig:"DB_NAME" required:"true"`
	DBSslMode  string `envconfig:"DB_SSLMODE" default:"disable"`

	// Empty RedisAddr runs the service without Redis: locks are process-local
	// and events go to the log.
	RedisAddr         string `envconfig:"REDIS_ADDR"`
	RedisPassword     string `envconfig:"REDIS_PASSWORD"`
	RedisDB           int    `envconfig:"REDIS_DB" default:"0"`
	OrderEventsStream string `envconfig:"ORDER_EVENTS_STREAM" default:"dispatch.order.events"`

	GoogleMapsAPIKey string        `envconfig:"GOOGLE_MAPS_API_KEY"`
	GeoBounds        string        `envconfig:"GEO_BOUNDS" default:"55.70,37.50,55.80,37.70"`
	GeoCacheTTL      time.Duration `envconfig:"GEO_CACHE_TTL" default:"24h"`

	AssignSchedule  string        `envconfig:"ASSIGN_SCHEDULE" default:"@every 1s"`
	MoveSchedule    string        `envconfig:"MOVE_SCHEDULE" default:"@every 2s"`
	OutboxSchedule  string        `envconfig:"OUTBOX_SCHEDULE" default:"@every 1s"`
	AssignBatchSize int           `envconfig:"ASSIGN_BATCH_SIZE" default:"1"`
	OutboxBatchSize int           `envconfig:"OUTBOX_BATCH_SIZE" default:"100"`
	TickLockTTL     time.Duration `envconfig:"TICK_LOCK_TTL" default:"30s"`

	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`
}

// LoadConfig reads the optional env files and then the process environment.
// Variables already set in the environment win over the files.
func LoadConfig(envFiles ...string) (Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", f, err)
		}
	}

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, fmt.Errorf("process env: %w", err)
	}
	if cfg.AssignBatchSize <= 0 {
		return Config{}, fmt.Errorf("ASSIGN_BATCH_SIZE must be positive, got %d", cfg.AssignBatchSize)
	}
	if cfg.OutboxBatchSize <= 0 {
		return Config{}, fmt.Errorf("OUTBOX_BATCH_SIZE must be positive, got %d", cfg.OutboxBatchSize)
	}
	return cfg, nil
}

// DSN builds the PostgreSQL connection URL.
func (c Config) DSN() string {
	u := url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(c.DBUser, c.DBPassword),
		Host:   c.DBHost + ":" + c.DBPort,
		Path:   "/" + c.DBName,
	}
	q := url.Values{}
	q.Set("sslmode", c.DBSslMode)
	u.RawQuery = q.Encode()
	return u.String()
}

// SlogLevel maps LogLevel to a slog level, info when unknown.
func (c Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
