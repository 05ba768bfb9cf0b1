package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

type Config struct {
	Port            string
	BackendBaseURL  string
	MongoDBURI      string
	MongoDBPassword string
	RequestTimeout  time.Duration
	Environment     string
	LogLevel        string
}

func LoadConfig() (*Config, error) {
	cfg := &Config{
		Port:            getEnvWithDefault("PORT", "8080"),
		BackendBaseURL:  os.Getenv("BACKEND_BASE_URL"),
		MongoDBURI:      os.Getenv("MONGODB_URI"),
		MongoDBPassword: os.Getenv("MONGODB_PASSWORD"),
		Environment:     getEnvWithDefault("ENVIRONMENT", "development"),
		LogLevel:        getEnvWithDefault("LOG_LEVEL", "info"),
	}

	timeoutSeconds, err := strconv.Atoi(getEnvWithDefault("REQUEST_TIMEOUT_SECONDS", "15"))
	if err != nil || timeoutSeconds <= 0 {
		return nil, fmt.Errorf("REQUEST_TIMEOUT_SECONDS must be a positive integer")
	}
	cfg.RequestTimeout = time.Duration(timeoutSeconds) * time.Second

	// Validate required fields
	if cfg.BackendBaseURL == "" {
		return nil, fmt.Errorf("BACKEND_BASE_URL is required")
	}
	if cfg.MongoDBURI == "" {
		return nil, fmt.Errorf("MONGODB_URI is required")
	}

	return cfg, nil
}

func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}
