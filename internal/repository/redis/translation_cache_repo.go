package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"pivotchat-backend/pkg/logger"
)

const (
	// translationCachePrefix namespaces translation entries in Redis.
	translationCachePrefix = "translation:"
	// opTimeout bounds a single Redis operation; cache lookups must never
	// stall the translation path.
	opTimeout = 200 * time.Millisecond
)

// TranslationCacheRepository mirrors the in-process translation cache in
// Redis so that warm entries survive restarts and are shared across
// replicas. All operations are best effort: a Redis failure is logged and
// treated as a miss, never surfaced to the caller.
type TranslationCacheRepository struct {
	client *redis.Client
	ttl    time.Duration
}

// NewTranslationCacheRepository creates a Redis-backed translation cache.
// client may be nil, in which case every lookup misses and writes are no-ops.
func NewTranslationCacheRepository(client *redis.Client, ttl time.Duration) *TranslationCacheRepository {
	return &TranslationCacheRepository{client: client, ttl: ttl}
}

// Get retrieves a cached translation. Returns false on miss or Redis error.
func (r *TranslationCacheRepository) Get(ctx context.Context, key string) (string, bool) {
	if r == nil || r.client == nil {
		return "", false
	}

	opCtx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	value, err := r.client.Get(opCtx, translationCachePrefix+key).Result()
	if err == redis.Nil {
		return "", false
	}
	if err != nil {
		logger.Debug("Redis translation cache read failed",
			zap.String("key", key),
			zap.Error(err),
		)
		return "", false
	}
	return value, true
}

// Set stores a translation. Failures are logged and ignored.
func (r *TranslationCacheRepository) Set(ctx context.Context, key, value string) {
	if r == nil || r.client == nil {
		return
	}

	opCtx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	if err := r.client.Set(opCtx, translationCachePrefix+key, value, r.ttl).Err(); err != nil {
		logger.Debug("Redis translation cache write failed",
			zap.String("key", key),
			zap.Error(err),
		)
	}
}

// Ping verifies Redis connectivity for health checks.
func (r *TranslationCacheRepository) Ping(ctx context.Context) error {
	if r == nil || r.client == nil {
		return fmt.Errorf("redis client not configured")
	}
	return r.client.Ping(ctx).Err()
}
