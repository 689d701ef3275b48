package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/maheshrc27/shutterpost/pkg/logging"
	"github.com/redis/go-redis/v9"
)

const keyPrefix = "shutterpost:"

// ErrCacheDisabled is returned when operations are attempted on a nil cache.
var ErrCacheDisabled = errors.New("cache is disabled")

// Cache wraps a Redis client. A nil *Cache is valid and behaves as disabled.
type Cache struct {
	client *redis.Client
}

// New connects to redisURI. An empty URI disables caching and returns nil, nil.
func New(redisURI string) (*Cache, error) {
	if redisURI == "" {
		logging.GetLogger().Info("Redis cache disabled")
		return nil, nil
	}

	opt, err := redis.ParseURL(redisURI)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}

	client := redis.NewClient(opt)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	logging.GetLogger().Info("Redis connection established")

	return &Cache{client: client}, nil
}

func (c *Cache) namespaceKey(key string) string {
	return keyPrefix + key
}

// GetJSON decodes the cached value for key into dest. The boolean is false on a miss.
func (c *Cache) GetJSON(ctx context.Context, key string, dest any) (bool, error) {
	if c == nil || c.client == nil {
		return false, ErrCacheDisabled
	}

	raw, err := c.client.Get(ctx, c.namespaceKey(key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		return false, fmt.Errorf("failed to decode cached %s: %w", key, err)
	}
	return true, nil
}

func (c *Cache) SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error {
	if c == nil || c.client == nil {
		return ErrCacheDisabled
	}

	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, c.namespaceKey(key), raw, ttl).Err()
}

func (c *Cache) Delete(ctx context.Context, key string) error {
	if c == nil || c.client == nil {
		return ErrCacheDisabled
	}
	return c.client.Del(ctx, c.namespaceKey(key)).Err()
}

func (c *Cache) Close() error {
	if c == nil || c.client == nil {
		return nil
	}
	return c.client.Close()
}
