// Package config reads runtime settings from the environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	defaultPort            = "8080"
	defaultCORSOrigins     = "http://localhost:5173,http://127.0.0.1:5173"
	defaultLogLevel        = "info"
	defaultLogFormat       = "text"
	defaultShutdownTimeout = 10 * time.Second
)

type Config struct {
	Port string
	// DatabaseURL selects the Postgres receipt journal. Empty keeps
	// receipts in memory.
	DatabaseURL     string
	CORSOrigins     []string
	LogLevel        string
	LogFormat       string
	ShutdownTimeout time.Duration
}

// Load reads .env files (if present) and then the process environment.
// Variables already set in the environment win over .env entries. A
// missing file is skipped; one that cannot be parsed is an error.
func Load(envFiles ...string) (Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, os.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", f, err)
		}
	}

	return Config{
		Port:            getEnv("PORT", defaultPort),
		DatabaseURL:     os.Getenv("DATABASE_URL"),
		CORSOrigins:     parseCSV(getEnv("CORS_ORIGINS", defaultCORSOrigins)),
		LogLevel:        getEnv("LOG_LEVEL", defaultLogLevel),
		LogFormat:       getEnv("LOG_FORMAT", defaultLogFormat),
		ShutdownTimeout: getDuration("SHUTDOWN_TIMEOUT", defaultShutdownTimeout),
	}, nil
}

func getEnv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		return fallback
	}
	return d
}

func parseCSV(input string) []string {
	if input == "" {
		return nil
	}
	parts := strings.Split(input, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		out = append(out, part)
	}
	return out
}
