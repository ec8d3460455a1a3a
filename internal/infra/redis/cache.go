// Package redis caches category lookups in front of the category service.
package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/kislikjeka/bookstore/internal/platform/category"
	"github.com/kislikjeka/bookstore/pkg/logger"
)

const (
	// DefaultTTL is how long a category stays cached
	DefaultTTL = 5 * time.Minute

	// KeyPrefix is the prefix for category cache keys
	KeyPrefix = "category:"
)

// CategoryReader is the lookup being cached
type CategoryReader interface {
	Read(ctx context.Context, id uuid.UUID) (*category.Category, error)
}

// CategoryCache decorates a CategoryReader with a Redis read-through cache.
// Redis failures are logged and fall through to the reader, so an
// unavailable cache never fails product validation on its own.
type CategoryCache struct {
	client *redis.Client
	next   CategoryReader
	ttl    time.Duration
	logger *logger.Logger
}

// NewCategoryCache creates a new category cache. A non-positive ttl selects DefaultTTL.
func NewCategoryCache(client *redis.Client, next CategoryReader, ttl time.Duration, log *logger.Logger) *CategoryCache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &CategoryCache{
		client: client,
		next:   next,
		ttl:    ttl,
		logger: log.WithField("component", "category_cache"),
	}
}

func key(id uuid.UUID) string {
	return KeyPrefix + id.String()
}

// Read returns the cached category or loads and caches it. Misses of the
// underlying reader are not cached.
func (c *CategoryCache) Read(ctx context.Context, id uuid.UUID) (*category.Category, error) {
	cached, err := c.get(ctx, id)
	if err != nil {
		c.logger.WithContext(ctx).Warn("cache error", "operation", "get", "category_id", id, "error", err)
	}
	if cached != nil {
		return cached, nil
	}

	cat, err := c.next.Read(ctx, id)
	if err != nil {
		return nil, err
	}
	if cat == nil {
		return nil, nil
	}

	if err := c.set(ctx, cat); err != nil {
		c.logger.WithContext(ctx).Warn("cache error", "operation", "set", "category_id", id, "error", err)
	}
	return cat, nil
}

func (c *CategoryCache) get(ctx context.Context, id uuid.UUID) (*category.Category, error) {
	val, err := c.client.Get(ctx, key(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		c.logger.Debug("cache miss", "category_id", id)
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get cached category: %w", err)
	}

	var cat category.Category
	if err := json.Unmarshal(val, &cat); err != nil {
		return nil, fmt.Errorf("failed to unmarshal cached category: %w", err)
	}

	c.logger.Debug("cache hit", "category_id", id)
	return &cat, nil
}

func (c *CategoryCache) set(ctx context.Context, cat *category.Category) error {
	data, err := json.Marshal(cat)
	if err != nil {
		return fmt.Errorf("failed to marshal category: %w", err)
	}
	if err := c.client.Set(ctx, key(cat.ID), data, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to set cached category: %w", err)
	}
	return nil
}

// Invalidate drops a category from the cache after it changes
func (c *CategoryCache) Invalidate(ctx context.Context, id uuid.UUID) error {
	if err := c.client.Del(ctx, key(id)).Err(); err != nil {
		c.logger.WithContext(ctx).Error("cache error", "operation", "delete", "category_id", id, "error", err)
		return fmt.Errorf("failed to invalidate category: %w", err)
	}
	return nil
}

// Health checks the Redis connection
func (c *CategoryCache) Health(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}
