package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// Cache stores generation results keyed by a hash of the request data.
type Cache interface {
	Get(ctx context.Context, keyPrefix string, data map[string]any, value interface{}) (bool, error)
	SetWithExpiration(ctx context.Context, keyPrefix string, data map[string]any, value interface{}, expiration time.Duration) error
}

// RedisCache caches generation responses in Redis.
type RedisCache struct {
	client *redis.Client
	logger *zap.Logger
}

// NewRedisCache creates a RedisCache on the given client.
func NewRedisCache(client *redis.Client, logger *zap.Logger) *RedisCache {
	return &RedisCache{
		client: client,
		logger: logger,
	}
}

// Get retrieves a cached value for the key prefix and request data.
// Cache problems are logged and reported as misses, never as errors.
func (c *RedisCache) Get(ctx context.Context, keyPrefix string, data map[string]any, value interface{}) (bool, error) {
	cacheKey, err := generateCacheKey(keyPrefix, data)
	if err != nil {
		return false, nil // Skip cache on error
	}

	cachedData, err := c.client.Get(ctx, cacheKey).Result()
	if err != nil {
		if err != redis.Nil {
			c.logger.Warn("Failed to get cached value from Redis", zap.Error(err))
		}
		return false, nil
	}

	if err := json.Unmarshal([]byte(cachedData), value); err != nil {
		c.logger.Warn("Failed to deserialize cached value", zap.Error(err))
		return false, nil
	}

	c.logger.Info("Cache hit", zap.String("cacheKey", cacheKey))
	return true, nil
}

// SetWithExpiration stores a value with the given TTL.
func (c *RedisCache) SetWithExpiration(ctx context.Context, keyPrefix string, data map[string]any, value interface{}, expiration time.Duration) error {
	cacheKey, err := generateCacheKey(keyPrefix, data)
	if err != nil {
		return fmt.Errorf("failed to generate cache key: %w", err)
	}

	jsonData, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to serialize value: %w", err)
	}

	if err := c.client.Set(ctx, cacheKey, jsonData, expiration).Err(); err != nil {
		return fmt.Errorf("failed to store value in Redis: %w", err)
	}

	return nil
}

// generateCacheKey hashes the request data into a stable key. Map keys
// are sorted first so equal payloads always hash the same.
func generateCacheKey(keyPrefix string, data map[string]any) (string, error) {
	keys := make([]string, 0, len(data))
	for k := range data {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	ordered := make([]any, 0, len(keys)*2)
	for _, k := range keys {
		ordered = append(ordered, k, data[k])
	}

	encoded, err := json.Marshal(ordered)
	if err != nil {
		return "", err
	}

	sum := sha256.Sum256(encoded)
	return keyPrefix + ":" + hex.EncodeToString(sum[:]), nil
}
