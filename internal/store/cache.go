package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/mindpairing/mindpairing-backend/internal/metrics"
)

var ErrCacheMiss = fmt.Errorf("cache miss")

// Cache is a thin JSON-over-Redis layer. A nil client is valid and makes
// every Get a miss, so callers degrade to the database without branching.
type Cache struct {
	client  *redis.Client
	logger  *zap.SugaredLogger
	metrics *metrics.Metrics
}

func NewCache(addr string, logger *zap.SugaredLogger, metrics *metrics.Metrics) (*Cache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         addr,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
		PoolSize:     10,
		MinIdleConns: 5,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		if logger != nil {
			logger.Warnw("Redis unavailable; caching disabled", "error", err)
		}
		return &Cache{logger: logger, metrics: metrics}, nil
	}

	return &Cache{client: client, logger: logger, metrics: metrics}, nil
}

func (c *Cache) Get(ctx context.Context, key string, dest interface{}) error {
	if c.client == nil {
		if c.metrics != nil {
			c.metrics.RecordCacheMiss(ctx, key)
		}
		return ErrCacheMiss
	}
	val, err := c.client.Get(ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			if c.metrics != nil {
				c.metrics.RecordCacheMiss(ctx, key)
			}
			return ErrCacheMiss
		}
		if c.logger != nil {
			c.logger.Errorw("Cache get error", "key", key, "error", err)
		}
		return fmt.Errorf("cache get error: %w", err)
	}
	if c.metrics != nil {
		c.metrics.RecordCacheHit(ctx, key)
	}
	if err := json.Unmarshal([]byte(val), dest); err != nil {
		return fmt.Errorf("cache unmarshal error: %w", err)
	}
	return nil
}

func (c *Cache) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	if c.client == nil {
		return nil
	}
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("cache marshal error: %w", err)
	}
	if err := c.client.Set(ctx, key, data, ttl).Err(); err != nil {
		if c.logger != nil {
			c.logger.Errorw("Cache set error", "key", key, "error", err)
		}
		return fmt.Errorf("cache set error: %w", err)
	}
	return nil
}

func (c *Cache) Delete(ctx context.Context, keys ...string) error {
	if c.client == nil || len(keys) == 0 {
		return nil
	}
	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		if c.logger != nil {
			c.logger.Errorw("Cache delete error", "keys", keys, "error", err)
		}
		return fmt.Errorf("cache delete error: %w", err)
	}
	return nil
}

func (c *Cache) Ping(ctx context.Context) error {
	if c.client == nil {
		return nil
	}
	return c.client.Ping(ctx).Err()
}

func (c *Cache) Close() error {
	if c.client == nil {
		return nil
	}
	return c.client.Close()
}
