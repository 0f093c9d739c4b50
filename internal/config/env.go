package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// ServerConfig holds the HTTP server settings, loaded from environment
// variables (optionally via a .env file).
type ServerConfig struct {
	Port         int    // OPCVM_PORT, default 8000
	LogLevel     string // OPCVM_LOG_LEVEL, default "info"
	RegistryFile string // OPCVM_REGISTRY_FILE, empty means built-in table
}

// LoadServerConfig reads server settings from the environment. A missing
// .env file is not an error; explicit environment variables always win
// because godotenv does not overwrite existing values.
func LoadServerConfig() (ServerConfig, error) {
	_ = godotenv.Load()

	cfg := ServerConfig{
		Port:         8000,
		LogLevel:     getEnv("OPCVM_LOG_LEVEL", "info"),
		RegistryFile: os.Getenv("OPCVM_REGISTRY_FILE"),
	}

	if raw := os.Getenv("OPCVM_PORT"); raw != "" {
		port, err := strconv.Atoi(raw)
		if err != nil || port <= 0 || port > 65535 {
			return ServerConfig{}, fmt.Errorf("invalid OPCVM_PORT %q", raw)
		}
		cfg.Port = port
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
