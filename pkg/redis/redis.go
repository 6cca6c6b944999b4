package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/dsev/locknlock-bff/config"
	"github.com/dsev/locknlock-bff/pkg/logger"
	"github.com/redis/go-redis/v9"
)

var client *redis.Client

// Init initializes Redis connection
func Init(cfg *config.RedisConfig) error {
	logger.Info("Initializing Redis connection", map[string]interface{}{
		"host": cfg.Host,
		"port": cfg.Port,
		"db":   cfg.DB,
	})

	client = redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%s", cfg.Host, cfg.Port),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	// Test connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		client = nil
		return fmt.Errorf("failed to connect to Redis: %w", err)
	}

	logger.Info("Redis connection established successfully", nil)
	return nil
}

// GetClient returns the Redis client instance, or nil when Redis is disabled
func GetClient() *redis.Client {
	return client
}

// Close closes the Redis connection
func Close() error {
	if client != nil {
		logger.Info("Closing Redis connection", nil)
		return client.Close()
	}
	return nil
}

// GetJSON loads a cached JSON value into v. The bool result reports a cache
// hit. A nil client or any Redis failure reads as a miss so callers fall
// through to the source of truth.
func GetJSON(ctx context.Context, key string, v interface{}) (bool, error) {
	if client == nil {
		return false, nil
	}

	raw, err := client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		return false, err
	}

	if err := json.Unmarshal(raw, v); err != nil {
		return false, err
	}
	return true, nil
}

// SetJSON stores v as JSON under key with the given TTL. No-op when Redis is
// disabled.
func SetJSON(ctx context.Context, key string, v interface{}, ttl time.Duration) error {
	if client == nil {
		return nil
	}

	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return client.Set(ctx, key, raw, ttl).Err()
}
