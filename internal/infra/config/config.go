// Package config provides application-wide configuration loaded from env vars.
// All fields have safe defaults so the binary runs locally without any env setup.
package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds runtime configuration for the Astronomy-Explorer server.
type Config struct {
	TAPBaseURL string        // TAP_BASE_URL — default: the NASA Exoplanet Archive TAP endpoint
	TAPTimeout time.Duration // TAP_TIMEOUT_SECONDS — default: 30
	HTTPAddr   string        // HTTP_ADDR — default: "0.0.0.0:8080"
}

const (
	envKeyTAPBaseURL = "TAP_BASE_URL"
	envKeyTAPTimeout = "TAP_TIMEOUT_SECONDS"
	envKeyHTTPAddr   = "HTTP_ADDR"

	defaultTAPBaseURL     = "https://exoplanetarchive.ipac.caltech.edu/TAP"
	defaultTimeoutSeconds = 30
	defaultHTTPAddr       = "0.0.0.0:8080"
)

// Load reads configuration from environment variables, applying defaults for missing values.
func Load() Config {
	return Config{
		TAPBaseURL: envOr(envKeyTAPBaseURL, defaultTAPBaseURL),
		TAPTimeout: time.Duration(envIntOr(envKeyTAPTimeout, defaultTimeoutSeconds)) * time.Second,
		HTTPAddr:   envOr(envKeyHTTPAddr, defaultHTTPAddr),
	}
}

// envOr returns the value of the environment variable key, or fallback if not set.
func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// envIntOr returns the integer value of key, or fallback when unset or not
// a positive integer.
func envIntOr(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return fallback
	}
	return n
}
