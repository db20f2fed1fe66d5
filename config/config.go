package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds application configuration loaded from the environment.
type Config struct {
	Host            string
	Port            string
	AllowedOrigins  []string
	FetchTimeout    time.Duration
	RateLimitRPS    float64
	RefreshSchedule string
}

// Load reads configuration from environment variables with sane defaults.
func Load() *Config {
	return &Config{
		Host:            getEnv("HOST", "0.0.0.0"),
		Port:            getEnv("PORT", "8080"),
		AllowedOrigins:  strings.Split(getEnv("ALLOWED_ORIGINS", "http://localhost:3000"), ","),
		FetchTimeout:    getEnvDuration("FETCH_TIMEOUT", 8*time.Second),
		RateLimitRPS:    getEnvFloat("RATE_LIMIT_RPS", 5),
		RefreshSchedule: getEnv("REFRESH_SCHEDULE", "0 0 */12 * * *"),
	}
}

// Helper functions for environment variables
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}
