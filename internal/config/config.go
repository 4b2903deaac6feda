package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	Port            int
	LogLevel        string
	LogFormat       string
	Environment     string
	APIKey          string   // API key for authentication
	RewardTablePath string   // versioned queue reward tables (JSON)
	TrustedProxies  []string // proxies allowed to set X-Forwarded-For
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		LogLevel:        getEnv(EnvLogLevel, "info"),
		LogFormat:       getEnv(EnvLogFormat, "text"),
		Environment:     getEnv(EnvEnvironment, "dev"),
		APIKey:          getEnv(EnvAPIKey, ""),
		RewardTablePath: getEnv(EnvRewardTablePath, DefaultRewardTablePath),
	}

	if proxies := getEnv(EnvTrustedProxies, ""); proxies != "" {
		for _, p := range strings.Split(proxies, ",") {
			if trimmed := strings.TrimSpace(p); trimmed != "" {
				cfg.TrustedProxies = append(cfg.TrustedProxies, trimmed)
			}
		}
	}

	portStr := getEnv(EnvPort, "8080")
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, fmt.Errorf("invalid PORT value: %w", err)
	}
	cfg.Port = port

	// Validate API key is set
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("API_KEY environment variable must be set for security")
	}

	return cfg, nil
}

// getEnv retrieves an environment variable or returns a default value.
// Empty values count as unset so tests can blank inherited variables.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
