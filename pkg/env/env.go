package env

import (
	"bytes"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// GetStringFromFile reads KEY_FILE as a file path first (Docker secrets),
// falling back to the plain environment variable.
func GetStringFromFile(key, defaultValue string) string {
	if filePath := os.Getenv(key + "_FILE"); filePath != "" {
		content, err := os.ReadFile(filepath.Clean(filePath))
		if err == nil {
			return string(bytes.TrimSpace(content))
		}
	}
	return GetString(key, defaultValue)
}

// GetString returns the environment variable value or the default if unset.
func GetString(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// GetInt returns the environment variable parsed as an integer, or the
// default if unset or unparseable.
func GetInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

// GetBool returns the environment variable parsed as a boolean, or the
// default if unset or unparseable.
func GetBool(key string, defaultValue bool) bool {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

// GetDuration returns the environment variable parsed with
// time.ParseDuration, or the default if unset or unparseable.
func GetDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := time.ParseDuration(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}
