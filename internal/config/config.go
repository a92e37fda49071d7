// Package config loads service configuration from environment variables
// with sensible defaults.
package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds the runtime configuration for the brandkit service.
type Config struct {
	Addr        string
	ReleaseMode bool
	CacheMaxAge time.Duration

	// MaxURLLength caps accepted URLs. QR version 40 at Quart error
	// correction holds 1663 bytes; longer URLs could never encode.
	MaxURLLength int

	// DownloadQRWidth is the target pixel width for download-size QR codes.
	DownloadQRWidth int
}

// Load reads configuration from the environment.
func Load() *Config {
	return &Config{
		Addr:            getAddr(),
		ReleaseMode:     getEnvBool("GIN_RELEASE", true),
		CacheMaxAge:     getEnvDuration("CACHE_MAX_AGE", time.Hour),
		MaxURLLength:    getEnvInt("MAX_URL_LENGTH", 1663),
		DownloadQRWidth: getEnvInt("DOWNLOAD_QR_WIDTH", 2000),
	}
}

func getAddr() string {
	if port := os.Getenv("PORT"); port != "" {
		return ":" + port
	}
	return ":8080"
}

func getEnvBool(key string, fallback bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return fallback
}

// getEnvInt retrieves an int environment variable, accepting only positive values.
func getEnvInt(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.Atoi(value); err == nil && i > 0 {
			return i
		}
	}
	return fallback
}
