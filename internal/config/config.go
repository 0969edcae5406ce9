package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type envConfig struct {
	LOG_FILE_PATH string
	LOG_LEVEL     string
	APP_PORT      string
}

// DefaultEnvConfig is filled by LoadEnvConfig.
var DefaultEnvConfig = envConfig{
	LOG_LEVEL: "info",
	APP_PORT:  "8080",
}

// LoadEnvConfig reads an optional .env file from the working directory and
// then the process environment. Unset variables keep their defaults.
func LoadEnvConfig() error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("load .env: %w", err)
	}

	cfg := envConfig{
		LOG_FILE_PATH: os.Getenv("LOG_FILE_PATH"),
		LOG_LEVEL:     getEnv("LOG_LEVEL", "info"),
		APP_PORT:      getEnv("APP_PORT", "8080"),
	}

	DefaultEnvConfig = cfg
	return nil
}

// ListenAddr returns the HTTP listen address built from APP_PORT.
// Only the server needs it, so a bad port is reported here and not by LoadEnvConfig.
func ListenAddr() (string, error) {
	port, err := strconv.Atoi(DefaultEnvConfig.APP_PORT)
	if err != nil || port <= 0 || port > 65535 {
		return "", fmt.Errorf("invalid APP_PORT %q", DefaultEnvConfig.APP_PORT)
	}
	return ":" + DefaultEnvConfig.APP_PORT, nil
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}
