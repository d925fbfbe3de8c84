package config

import (
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port            int           // HTTP listen port
	Domain          string        // Public domain used to compose short URLs
	DBHost          string        // Postgres host
	DBPort          int           // Postgres port
	DBUser          string        // Postgres user
	DBPassword      string        // Postgres password
	DBName          string        // Postgres database name
	DBSSLMode       string        // lib/pq sslmode
	DatabaseURL     string        // Full DSN, takes precedence over the DB_* parts
	RedisURL        string        // Optional cache, empty disables it
	CacheTTL        time.Duration // TTL of cached path resolutions
	MetricsAddr     string        // Prometheus listener, empty disables it
	MaxPathAttempts int           // Inserts tried before giving up on path collisions
	LogLevel        slog.Level
}

// Load reads the configuration from the environment, after applying an
// optional .env file from the working directory.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		slog.Debug("no .env file found, using environment variables or defaults", "error", err)
	}

	return &Config{
		Port:            getEnvInt("PORT", 3000),
		Domain:          getEnv("DOMAIN", "localhost:3000"),
		DBHost:          getEnv("DB_HOST", "localhost"),
		DBPort:          getEnvInt("DB_PORT", 5432),
		DBUser:          getEnv("DB_USER", "postgres"),
		DBPassword:      getEnv("DB_PASS", ""),
		DBName:          getEnv("DB_DATA", "shortlink"),
		DBSSLMode:       getEnv("DB_SSLMODE", "disable"),
		DatabaseURL:     getEnv("DATABASE_URL", ""),
		RedisURL:        getEnv("REDIS_URL", ""),
		CacheTTL:        getEnvDuration("CACHE_TTL", time.Hour),
		MetricsAddr:     getEnv("METRICS_ADDR", ":9090"),
		MaxPathAttempts: getEnvInt("MAX_PATH_ATTEMPTS", 5),
		LogLevel:        getEnvLevel("LOG_LEVEL", slog.LevelInfo),
	}
}

// Validate reports the first setting that would keep the service from starting.
func (c *Config) Validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("config: invalid port %d", c.Port)
	}
	if strings.TrimSpace(c.Domain) == "" {
		return errors.New("config: DOMAIN is required")
	}
	if c.MaxPathAttempts <= 0 {
		return fmt.Errorf("config: MAX_PATH_ATTEMPTS must be positive, got %d", c.MaxPathAttempts)
	}
	if c.DatabaseURL == "" && c.DBHost == "" {
		return errors.New("config: either DATABASE_URL or DB_HOST is required")
	}
	return nil
}

// ListenAddr is the address the HTTP server binds to.
func (c *Config) ListenAddr() string {
	return ":" + strconv.Itoa(c.Port)
}

// DSN returns the lib/pq connection string.
func (c *Config) DSN() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	u := url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(c.DBUser, c.DBPassword),
		Host:   fmt.Sprintf("%s:%d", c.DBHost, c.DBPort),
		Path:   "/" + c.DBName,
	}
	q := u.Query()
	q.Set("sslmode", c.DBSSLMode)
	u.RawQuery = q.Encode()
	return u.String()
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
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

func getEnvLevel(key string, defaultValue slog.Level) slog.Level {
	if value := os.Getenv(key); value != "" {
		var level slog.Level
		if err := level.UnmarshalText([]byte(value)); err == nil {
			return level
		}
	}
	return defaultValue
}
