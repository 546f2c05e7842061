// Package config loads back-office configuration from the environment.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds all application configuration
type Config struct {
	// Server configuration
	Port         string
	Mode         string
	ReadTimeout  int
	WriteTimeout int

	// Property API (the external backend every view talks to)
	APIBaseURL string
	APIPrefix  string
	APIToken   string

	// CORS configuration
	CORSAllowedOrigins []string

	// Logger configuration
	LogLevel      string
	LogFormat     string
	LogOutput     string
	LogFilePath   string
	LogMaxSizeMB  int
	LogMaxBackups int
	LogMaxAgeDays int
}

// Load reads the .env file if present, then builds a Config from the
// environment. The API base URL is mandatory; the bearer token is read
// exactly once here and never refreshed afterwards.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Port:               getEnv("PORT", "8090"),
		Mode:               getEnv("SERVER_MODE", "release"),
		ReadTimeout:        getEnvAsInt("SERVER_READ_TIMEOUT", 30),
		WriteTimeout:       getEnvAsInt("SERVER_WRITE_TIMEOUT", 30),
		APIBaseURL:         getEnv("API_BASE_URL", ""),
		APIPrefix:          getEnv("API_PREFIX", "/api"),
		APIToken:           getEnv("API_TOKEN", ""),
		CORSAllowedOrigins: splitString(getEnv("CORS_ALLOWED_ORIGINS", "")),
		LogLevel:           getEnv("LOG_LEVEL", "info"),
		LogFormat:          getEnv("LOG_FORMAT", "json"),
		LogOutput:          getEnv("LOG_OUTPUT", "stdout"),
		LogFilePath:        getEnv("LOG_FILE_PATH", "logs/backoffice.log"),
		LogMaxSizeMB:       getEnvAsInt("LOG_MAX_SIZE_MB", 100),
		LogMaxBackups:      getEnvAsInt("LOG_MAX_BACKUPS", 3),
		LogMaxAgeDays:      getEnvAsInt("LOG_MAX_AGE_DAYS", 7),
	}

	if cfg.APIBaseURL == "" {
		return nil, fmt.Errorf("API_BASE_URL is required")
	}
	if cfg.APIToken == "" {
		// Token may also live in a file, e.g. written by a deploy hook.
		if path := getEnv("API_TOKEN_FILE", ""); path != "" {
			raw, err := os.ReadFile(path)
			if err != nil {
				return nil, fmt.Errorf("reading API_TOKEN_FILE: %w", err)
			}
			cfg.APIToken = strings.TrimSpace(string(raw))
		}
	}

	return cfg, nil
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsInt gets an environment variable as an integer or returns a default value
func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}

// splitString splits a comma-separated string into a slice
func splitString(s string) []string {
	if s == "" {
		return []string{}
	}
	parts := strings.Split(s, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}
