package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config represents the complete application configuration
type Config struct {
	Server ServerConfig
	Upload UploadConfig
	Render RenderConfig
}

// ServerConfig holds web server settings
type ServerConfig struct {
	Port    string
	GinMode string
}

// UploadConfig holds file upload limits
type UploadConfig struct {
	MaxFileSize int64 // bytes
}

// RenderConfig holds chart rendering settings
type RenderConfig struct {
	Width         int
	Height        int
	MaxConcurrent int64 // simultaneous chart renders
}

// Load reads configuration from environment variables and validates it
func Load() (*Config, error) {
	config := &Config{
		Server: ServerConfig{
			Port:    getEnvOrDefault("PORT", "8080"),
			GinMode: getEnvOrDefault("GIN_MODE", "debug"),
		},
		Upload: UploadConfig{
			MaxFileSize: getEnvInt64OrDefault("MAX_UPLOAD_SIZE", 50*1024*1024),
		},
		Render: RenderConfig{
			Width:         getEnvIntOrDefault("CHART_WIDTH", 1024),
			Height:        getEnvIntOrDefault("CHART_HEIGHT", 512),
			MaxConcurrent: getEnvInt64OrDefault("RENDER_MAX_CONCURRENT", 4),
		},
	}

	if err := validateConfig(config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return config, nil
}

func validateConfig(config *Config) error {
	if config.Server.Port == "" {
		return fmt.Errorf("server port is required")
	}
	if config.Upload.MaxFileSize <= 0 {
		return fmt.Errorf("upload size limit must be positive")
	}
	if config.Render.Width <= 0 || config.Render.Height <= 0 {
		return fmt.Errorf("chart dimensions must be positive")
	}
	if config.Render.MaxConcurrent <= 0 {
		return fmt.Errorf("render concurrency must be positive")
	}
	return nil
}

// Helper functions for environment variable parsing
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvInt64OrDefault(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.ParseInt(value, 10, 64); err == nil {
			return intValue
		}
	}
	return defaultValue
}
