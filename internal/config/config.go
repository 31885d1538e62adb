package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Store drivers accepted by STORE_DRIVER.
const (
	DriverMemory   = "memory"
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// DefaultAdminPassword is used when neither ADMIN_PASSWORD nor ADMIN_PASSWORD_HASH is set.
const DefaultAdminPassword = "admin123"

type Config struct {
	Port                 int
	AdminPassword        string
	AdminPasswordHash    string // bcrypt; takes precedence over AdminPassword
	SessionSecret        string
	SessionTTL           time.Duration
	SessionSweepInterval time.Duration
	FeedbackTTL          time.Duration
	CookieSecure         bool
	PublicAPI            bool // serve /api/listings without a session
	StoreDriver          string
	DatabasePath         string // sqlite file
	DatabaseURL          string // postgres DSN
	LogDirectory         string
	LogLevel             string
	ShutdownTimeout      time.Duration
}

// Load reads an optional .env file and then the environment.
func Load() *Config {
	// A missing .env is the normal case outside development.
	_ = godotenv.Load()

	return &Config{
		Port:                 getEnvAsInt("PORT", 8080),
		AdminPassword:        getEnv("ADMIN_PASSWORD", DefaultAdminPassword),
		AdminPasswordHash:    getEnv("ADMIN_PASSWORD_HASH", ""),
		SessionSecret:        getEnv("SESSION_SECRET", ""),
		SessionTTL:           getEnvAsDuration("SESSION_TTL", 12*time.Hour),
		SessionSweepInterval: getEnvAsDuration("SESSION_SWEEP_INTERVAL", 10*time.Minute),
		FeedbackTTL:          getEnvAsDuration("FEEDBACK_TTL", 3*time.Second),
		CookieSecure:         getEnvAsBool("COOKIE_SECURE", false),
		PublicAPI:            getEnvAsBool("PUBLIC_API", false),
		StoreDriver:          strings.ToLower(getEnv("STORE_DRIVER", DriverMemory)),
		DatabasePath:         getEnv("DATABASE_PATH", filepath.Join(".", "data", "listings.db")),
		DatabaseURL:          getEnv("DATABASE_URL", ""),
		LogDirectory:         getEnv("LOG_DIR", filepath.Join(".", "logs")),
		LogLevel:             getEnv("LOG_LEVEL", "info"),
		ShutdownTimeout:      getEnvAsDuration("SHUTDOWN_TIMEOUT", 10*time.Second),
	}
}

// Validate reports settings the application cannot start with.
func (c *Config) Validate() error {
	switch c.StoreDriver {
	case DriverMemory, DriverSQLite:
	case DriverPostgres:
		if c.DatabaseURL == "" {
			return fmt.Errorf("DATABASE_URL is required for the %s store", DriverPostgres)
		}
	default:
		return fmt.Errorf("unknown STORE_DRIVER %q", c.StoreDriver)
	}

	if c.SessionTTL <= 0 {
		return fmt.Errorf("SESSION_TTL must be positive, got %s", c.SessionTTL)
	}
	if c.FeedbackTTL <= 0 {
		return fmt.Errorf("FEEDBACK_TTL must be positive, got %s", c.FeedbackTTL)
	}
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("PORT out of range: %d", c.Port)
	}
	return nil
}

// Addr is the listen address for the HTTP server.
func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
