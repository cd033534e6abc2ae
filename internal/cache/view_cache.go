// Package cache implements the Redis-backed read-through cache for dashboard
// views. Each view is one Redis hash keyed by its path; the hash fields hold
// the query/page variants. Invalidating a view drops the whole hash, so every
// variant is refreshed on the next read.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Dhoini/invoice-dashboard/pkg/logger"
	"github.com/redis/go-redis/v9"
)

const defaultCacheTTL = 15 * time.Minute

// ViewCache caches rendered view data in Redis.
type ViewCache struct {
	client *redis.Client
	log    *logger.Logger
}

// New creates a new view cache and verifies the Redis connection.
func New(addr, password string, db int, log *logger.Logger) (*ViewCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		log.Errorw("Failed to connect to Redis", "error", err)
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	log.Infow("Connected to Redis successfully", "addr", addr)
	return &ViewCache{
		client: client,
		log:    log,
	}, nil
}

// Close closes the Redis connection.
func (c *ViewCache) Close() error {
	return c.client.Close()
}

// GetView loads one cached variant of a view into out. A miss returns
// (false, nil) rather than an error.
func (c *ViewCache) GetView(ctx context.Context, view, variant string, out any) (bool, error) {
	data, err := c.client.HGet(ctx, view, variant).Bytes()
	if err != nil {
		if err == redis.Nil {
			c.log.Debugw("View not found in cache", "view", view, "variant", variant)
			return false, nil
		}
		c.log.Errorw("Error getting view from Redis", "view", view, "variant", variant, "error", err)
		return false, fmt.Errorf("failed to get view from cache: %w", err)
	}

	if err := json.Unmarshal(data, out); err != nil {
		c.log.Errorw("Failed to unmarshal cached view", "view", view, "variant", variant, "error", err)
		return false, fmt.Errorf("failed to unmarshal cached view: %w", err)
	}

	c.log.Debugw("View retrieved from cache", "view", view, "variant", variant)
	return true, nil
}

// SetView caches one variant of a view.
func (c *ViewCache) SetView(ctx context.Context, view, variant string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal view for caching: %w", err)
	}

	if err := c.client.HSet(ctx, view, variant, data).Err(); err != nil {
		c.log.Errorw("Failed to cache view in Redis", "view", view, "variant", variant, "error", err)
		return fmt.Errorf("failed to cache view: %w", err)
	}
	if err := c.client.Expire(ctx, view, defaultCacheTTL).Err(); err != nil {
		c.log.Errorw("Failed to set view cache TTL", "view", view, "error", err)
		return fmt.Errorf("failed to set view cache TTL: %w", err)
	}

	c.log.Debugw("View cached successfully", "view", view, "variant", variant)
	return nil
}

// Invalidate drops every cached variant of the view. The next read of the
// view bypasses the cache and observes fresh data.
func (c *ViewCache) Invalidate(ctx context.Context, view string) error {
	if err := c.client.Del(ctx, view).Err(); err != nil {
		c.log.Errorw("Failed to invalidate view cache", "view", view, "error", err)
		return fmt.Errorf("failed to invalidate view cache: %w", err)
	}

	c.log.Debugw("View cache invalidated", "view", view)
	return nil
}
