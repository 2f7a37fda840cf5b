package utils

import (
	"context"       // Context for Redis operations
	"encoding/json" // JSON encoding/decoding
	"time"          // Time durations

	"github.com/redis/go-redis/v9" // Redis client
	"github.com/sirupsen/logrus"   // Logging library
)

// Cache keys per resource
const (
	UserKeyPrefix    = "user:"    // Single user documents
	ProductKeyPrefix = "product:" // Single product documents (creator populated)
)

// GetCache retrieves a value from Redis and unmarshals it into dest
func GetCache(ctx context.Context, rdb *redis.Client, key string, dest any) (bool, error) {
	val, err := rdb.Get(ctx, key).Result() // Get value from Redis
	if err == redis.Nil {
		return false, nil // Key does not exist
	} else if err != nil {
		return false, err // Other Redis error
	}
	return true, json.Unmarshal([]byte(val), dest) // Unmarshal JSON into dest
}

// SetCache sets a value in Redis with a specified TTL
func SetCache(ctx context.Context, rdb *redis.Client, key string, value any, ttl time.Duration) error {
	b, err := json.Marshal(value) // Marshal value to JSON
	if err != nil {
		return err // Return error if marshaling fails
	}
	return rdb.Set(ctx, key, b, ttl).Err() // Set value in Redis with TTL
}

// DeleteByPrefix removes every key starting with prefix
func DeleteByPrefix(ctx context.Context, rdb *redis.Client, prefix string) error {
	iter := rdb.Scan(ctx, 0, prefix+"*", 100).Iterator() // Walk matching keys in batches
	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return err
	}
	if len(keys) == 0 {
		return nil // Nothing cached
	}
	return rdb.Del(ctx, keys...).Err() // Delete all matching keys
}

// Cache is a read-through cache for immutable documents. A nil *Cache is valid and caches nothing.
type Cache struct {
	rdb *redis.Client // Redis client
	ttl time.Duration // Entry lifetime
}

// NewCache wraps rdb; a nil client yields a nil Cache
func NewCache(rdb *redis.Client, ttl time.Duration) *Cache {
	if rdb == nil {
		return nil
	}
	return &Cache{rdb: rdb, ttl: ttl}
}

// Get loads key into dest. Redis failures are logged and reported as a miss.
func (c *Cache) Get(ctx context.Context, key string, dest any) bool {
	if c == nil {
		return false
	}
	found, err := GetCache(ctx, c.rdb, key, dest)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"key":   key,         // Cache key
			"error": err.Error(), // Error message
		}).Warn("Cache read failed")
		return false
	}
	return found
}

// Set stores value under key. Failures are logged and ignored.
func (c *Cache) Set(ctx context.Context, key string, value any) {
	if c == nil {
		return
	}
	if err := SetCache(ctx, c.rdb, key, value, c.ttl); err != nil {
		logrus.WithFields(logrus.Fields{
			"key":   key,         // Cache key
			"error": err.Error(), // Error message
		}).Warn("Cache write failed")
	}
}

// Purge drops every cached document
func (c *Cache) Purge(ctx context.Context) error {
	if c == nil {
		return nil
	}
	for _, prefix := range []string{UserKeyPrefix, ProductKeyPrefix} {
		if err := DeleteByPrefix(ctx, c.rdb, prefix); err != nil {
			return err
		}
	}
	return nil
}
