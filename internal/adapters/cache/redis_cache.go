package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sony/gobreaker"
	"go.uber.org/zap"

	"github.com/sharespace/sharespace-service/internal/config"
	"github.com/sharespace/sharespace-service/internal/core/domain"
	"github.com/sharespace/sharespace-service/internal/core/ports"
)

const (
	roomListKey    = "rooms:all"
	roomListTTL    = 10 * time.Minute
	deniedTokenKey = "auth:denied:"
)

// RedisCache backs the room listing cache and the token deny list. Every
// operation degrades gracefully: a Redis outage means cache misses and
// tokens that stay valid until expiry, never an error surfaced to callers.
type RedisCache struct {
	client *redis.Client
	cb     *gobreaker.CircuitBreaker
	logger *zap.Logger
}

var (
	_ ports.RoomCache     = (*RedisCache)(nil)
	_ ports.TokenDenyList = (*RedisCache)(nil)
)

func NewRedisCache(client *redis.Client, logger *zap.Logger) *RedisCache {
	return &RedisCache{
		client: client,
		cb:     config.NewCircuitBreaker("Redis-Cache"),
		logger: logger,
	}
}

func (c *RedisCache) GetAllRooms(ctx context.Context) ([]domain.Room, bool) {
	result, err := c.cb.Execute(func() (interface{}, error) {
		return c.client.Get(ctx, roomListKey).Bytes()
	})
	if err != nil {
		if err != redis.Nil {
			c.logger.Warn("room cache read failed", zap.Error(err))
		}
		return nil, false
	}

	var rooms []domain.Room
	if err := json.Unmarshal(result.([]byte), &rooms); err != nil {
		c.logger.Warn("room cache held invalid payload", zap.Error(err))
		return nil, false
	}
	return rooms, true
}

func (c *RedisCache) SetAllRooms(ctx context.Context, rooms []domain.Room) {
	payload, err := json.Marshal(rooms)
	if err != nil {
		c.logger.Warn("room cache marshal failed", zap.Error(err))
		return
	}
	if _, err := c.cb.Execute(func() (interface{}, error) {
		return nil, c.client.Set(ctx, roomListKey, payload, roomListTTL).Err()
	}); err != nil {
		c.logger.Warn("room cache write failed", zap.Error(err))
	}
}

func (c *RedisCache) Invalidate(ctx context.Context) {
	if _, err := c.cb.Execute(func() (interface{}, error) {
		return nil, c.client.Del(ctx, roomListKey).Err()
	}); err != nil {
		c.logger.Warn("room cache invalidation failed", zap.Error(err))
	}
}

func (c *RedisCache) Deny(ctx context.Context, token string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	_, err := c.cb.Execute(func() (interface{}, error) {
		return nil, c.client.Set(ctx, deniedTokenKey+token, "1", ttl).Err()
	})
	return err
}

func (c *RedisCache) IsDenied(ctx context.Context, token string) bool {
	result, err := c.cb.Execute(func() (interface{}, error) {
		return c.client.Exists(ctx, deniedTokenKey+token).Result()
	})
	if err != nil {
		c.logger.Warn("deny list lookup failed", zap.Error(err))
		return false
	}
	return result.(int64) > 0
}
