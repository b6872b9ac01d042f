package cache

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisCache общий для всех реплик кэш. Ошибки redis не ломают запрос,
// а только логируются: промах кэша ведёт к чтению из базы.
type RedisCache struct {
	client *redis.Client
	logger *slog.Logger
	prefix string
	ttl    time.Duration
}

func NewRedisCache(logger *slog.Logger, client *redis.Client, prefix string, ttl time.Duration) *RedisCache {
	return &RedisCache{
		client: client,
		logger: logger.With(slog.String("cache", "redis")),
		prefix: prefix,
		ttl:    ttl,
	}
}

// Start проверяет доступность redis при старте приложения.
func (c *RedisCache) Start(ctx context.Context) error {
	if err := c.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("failed to ping redis: %w", err)
	}
	return nil
}

func (c *RedisCache) Get(ctx context.Context, key string) ([]byte, bool) {
	data, err := c.client.Get(ctx, c.key(key)).Bytes()
	if errors.Is(err, redis.Nil) {
		cacheMisses.WithLabelValues(driverRedis).Inc()
		return nil, false
	}
	if err != nil {
		cacheErrors.WithLabelValues(driverRedis, "get").Inc()
		c.logger.WarnContext(ctx, "failed to get from cache", slog.String("key", key), slog.Any("error", err))
		return nil, false
	}
	cacheHits.WithLabelValues(driverRedis).Inc()
	return data, true
}

func (c *RedisCache) Set(ctx context.Context, key string, value []byte) {
	if err := c.client.Set(ctx, c.key(key), value, c.ttl).Err(); err != nil {
		cacheErrors.WithLabelValues(driverRedis, "set").Inc()
		c.logger.WarnContext(ctx, "failed to set cache", slog.String("key", key), slog.Any("error", err))
	}
}

func (c *RedisCache) Delete(ctx context.Context, key string) {
	if err := c.client.Del(ctx, c.key(key)).Err(); err != nil {
		cacheErrors.WithLabelValues(driverRedis, "delete").Inc()
		c.logger.WarnContext(ctx, "failed to delete from cache", slog.String("key", key), slog.Any("error", err))
	}
}

func (c *RedisCache) Close() error {
	return c.client.Close()
}

func (c *RedisCache) key(k string) string {
	return fmt.Sprintf("%s:order:%s", c.prefix, k)
}
