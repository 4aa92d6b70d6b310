package config

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port string

	DBPath        string
	DBBusyTimeout time.Duration

	JWTSecret     string
	AdminPassword string
}

func Load(envFiles ...string) (*Config, error) {
	if len(envFiles) > 0 {
		if err := godotenv.Load(envFiles...); err != nil {
			slog.Warn("env file not found", "files", envFiles)
		}
	} else {
		if err := godotenv.Load(); err != nil {
			slog.Warn("env file not found, using system environment variables")
		}
	}

	jwtSecret, err := getEnvRequired("JWT_SECRET")
	if err != nil {
		return nil, err
	}
	adminPassword, err := getEnvRequired("ADMIN_PASSWORD")
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Port:          getEnvWithDefault("PORT", "8080"),
		DBPath:        getEnvWithDefault("DB_PATH", "data/voting.db"),
		DBBusyTimeout: getEnvAsDuration("DB_BUSY_TIMEOUT", 5*time.Second),
		JWTSecret:     jwtSecret,
		AdminPassword: adminPassword,
	}

	slog.Info("configuration loaded", "port", cfg.Port, "db_path", cfg.DBPath)

	return cfg, nil
}

// for variables with default value
func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// for required variables
func getEnvRequired(key string) (string, error) {
	value := os.Getenv(key)
	if value == "" {
		return "", fmt.Errorf("%s is required", key)
	}
	return value, nil
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	duration, err := time.ParseDuration(valueStr)
	if err != nil {
		return defaultValue
	}

	return duration
}
