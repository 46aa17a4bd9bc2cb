package config

import (
	"strconv"
	"time"

	"pivotchat-backend/pkg/env"
)

// Config holds all translation-service configuration, loaded from the
// environment with sane development defaults.
type Config struct {
	Env  string
	Port string

	// RequestTimeout bounds a full HTTP request end to end.
	RequestTimeout time.Duration

	Backend   BackendConfig
	Redis     RedisConfig
	Cache     CacheConfig
	Pipeline  PipelineConfig
	RateLimit RateLimitConfig
	Log       LogConfig
}

// BackendConfig configures the external translation backend.
type BackendConfig struct {
	URL     string
	Mode    string // "translate" or "bidirectional"
	Timeout time.Duration
}

// RedisConfig configures the optional Redis instance used for rate
// limiting and the shared translation cache. An empty Host disables Redis.
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
	CacheTTL time.Duration
}

// CacheConfig bounds the in-process caches.
type CacheConfig struct {
	TranslationEntries int
	CorrectionEntries  int
}

// PipelineConfig tunes the message pipeline.
type PipelineConfig struct {
	// LanguageDetection enables statistical language hinting for romanized
	// input. Costs startup time and memory for the detector models.
	LanguageDetection bool
}

// RateLimitConfig configures per-IP request limits.
type RateLimitConfig struct {
	Requests int
	Window   time.Duration
}

// LogConfig configures the logger.
type LogConfig struct {
	Level    string
	Format   string
	Output   string
	FilePath string
}

// Load reads configuration from the environment.
func Load() *Config {
	return &Config{
		Env:            env.GetString("ENV", "development"),
		Port:           env.GetString("PORT", "8085"),
		RequestTimeout: env.GetDuration("REQUEST_TIMEOUT", 30*time.Second),
		Backend: BackendConfig{
			URL:     env.GetString("BACKEND_URL", "http://localhost:9090"),
			Mode:    env.GetString("BACKEND_MODE", "translate"),
			Timeout: env.GetDuration("BACKEND_TIMEOUT", 6*time.Second),
		},
		Redis: RedisConfig{
			Host:     env.GetString("REDIS_HOST", ""),
			Port:     env.GetInt("REDIS_PORT", 6379),
			Password: env.GetStringFromFile("REDIS_PASSWORD", ""),
			DB:       env.GetInt("REDIS_DB", 0),
			CacheTTL: env.GetDuration("REDIS_CACHE_TTL", 24*time.Hour),
		},
		Cache: CacheConfig{
			TranslationEntries: env.GetInt("TRANSLATION_CACHE_ENTRIES", 1000),
			CorrectionEntries:  env.GetInt("CORRECTION_CACHE_ENTRIES", 500),
		},
		Pipeline: PipelineConfig{
			LanguageDetection: env.GetBool("LANGUAGE_DETECTION", true),
		},
		RateLimit: RateLimitConfig{
			Requests: env.GetInt("RATE_LIMIT_REQUESTS", 300),
			Window:   env.GetDuration("RATE_LIMIT_WINDOW", time.Minute),
		},
		Log: LogConfig{
			Level:    env.GetString("LOG_LEVEL", "info"),
			Format:   env.GetString("LOG_FORMAT", "json"),
			Output:   env.GetString("LOG_OUTPUT", "stdout"),
			FilePath: env.GetString("LOG_FILE_PATH", "/logs/translation-service.log"),
		},
	}
}

// RedisEnabled reports whether a Redis host is configured.
func (c *Config) RedisEnabled() bool {
	return c.Redis.Host != ""
}

// RedisAddr returns the Redis address in host:port form.
func (c *Config) RedisAddr() string {
	return c.Redis.Host + ":" + strconv.Itoa(c.Redis.Port)
}
