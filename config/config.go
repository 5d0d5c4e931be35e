package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	Port               string        // Service port
	SessionTokenSecret string        // Secret for signing session JWT tokens
	SessionTokenTTL    time.Duration // Session token lifetime
	CORSOrigins        []string      // Allowed CORS origins (credentialed)
	Database           DatabaseConfig
}

// DatabaseConfig holds Postgres connection settings.
type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	MaxConns int
	MinConns int
}

// Load reads configuration from environment variables with sensible defaults
func Load() (*Config, error) {
	// Opportunistic .env load for local development
	_ = godotenv.Load()

	config := &Config{
		Port:               getEnv("PORT", "5000"),
		SessionTokenSecret: getEnv("SESSION_TOKEN_SECRET", ""),
		SessionTokenTTL:    10 * time.Hour, // Default 10 hours
		CORSOrigins:        splitOrigins(getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173")),
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "devuser"),
			Password: getEnv("DB_PASSWORD", "devpassword"),
			DBName:   getEnv("DB_NAME", "motoshop"),
			MaxConns: getEnvInt("DB_MAX_CONNS", 20),
			MinConns: getEnvInt("DB_MIN_CONNS", 5),
		},
	}

	// Parse SESSION_TOKEN_TTL if provided
	if ttlStr := os.Getenv("SESSION_TOKEN_TTL"); ttlStr != "" {
		duration, err := time.ParseDuration(ttlStr)
		if err != nil {
			return nil, fmt.Errorf("invalid SESSION_TOKEN_TTL format: %w", err)
		}
		config.SessionTokenTTL = duration
	}

	// Validate configuration
	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Port == "" {
		return fmt.Errorf("PORT cannot be empty")
	}

	if c.SessionTokenSecret == "" {
		return fmt.Errorf("SESSION_TOKEN_SECRET cannot be empty")
	}

	if c.SessionTokenTTL <= 0 {
		return fmt.Errorf("SESSION_TOKEN_TTL must be positive")
	}

	return nil
}

// ConnString builds the Postgres connection string for pgxpool.
func (dc *DatabaseConfig) ConnString() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable pool_max_conns=%d pool_min_conns=%d",
		dc.Host, dc.Port, dc.User, dc.Password, dc.DBName, dc.MaxConns, dc.MinConns,
	)
}

func splitOrigins(raw string) []string {
	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			origins = append(origins, trimmed)
		}
	}
	return origins
}

// getEnv retrieves an environment variable or returns a fallback value
func getEnv(key, fallback string) string {
	// Check for _FILE suffix
	if fileValue := os.Getenv(key + "_FILE"); fileValue != "" {
		content, err := os.ReadFile(fileValue)
		if err == nil {
			return strings.TrimSpace(string(content))
		}
	}

	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return fallback
}
