package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"github.com/studysched/tutor-scheduler/internal/config"
)

const monthTTL = 5 * time.Minute

// Cache is a redis-backed JSON cache for month calendar reads. A nil Cache or
// an unreachable redis degrades to a permanent miss; reads fall through to
// Postgres.
type Cache struct {
	client *redis.Client
	logger *zap.Logger
}

func New(cfg *config.Config, logger *zap.Logger) *Cache {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if _, err := client.Ping(ctx).Result(); err != nil {
		logger.Warn("redis unavailable, month cache disabled", zap.Error(err))
		return &Cache{logger: logger}
	}

	return &Cache{client: client, logger: logger}
}

func MonthKey(tutorID uint, year int, month int) string {
	return fmt.Sprintf("calendar:tutor:%d:%04d-%02d", tutorID, year, month)
}

func (c *Cache) GetJSON(ctx context.Context, key string, dest any) bool {
	if c == nil || c.client == nil {
		return false
	}

	raw, err := c.client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return false
	}
	if err != nil {
		c.logger.Debug("cache get failed", zap.String("key", key), zap.Error(err))
		return false
	}

	if err := json.Unmarshal(raw, dest); err != nil {
		c.logger.Debug("cache payload corrupt", zap.String("key", key), zap.Error(err))
		return false
	}
	return true
}

func (c *Cache) SetJSON(ctx context.Context, key string, value any) {
	if c == nil || c.client == nil {
		return
	}

	raw, err := json.Marshal(value)
	if err != nil {
		return
	}

	if err := c.client.Set(ctx, key, raw, monthTTL).Err(); err != nil {
		c.logger.Debug("cache set failed", zap.String("key", key), zap.Error(err))
	}
}

// InvalidateTutorMonths drops every cached month for a tutor. Mutations are
// rare compared to calendar reads, so a pattern scan is fine here.
func (c *Cache) InvalidateTutorMonths(ctx context.Context, tutorID uint) {
	if c == nil || c.client == nil {
		return
	}

	pattern := fmt.Sprintf("calendar:tutor:%d:*", tutorID)
	iter := c.client.Scan(ctx, 0, pattern, 0).Iterator()
	for iter.Next(ctx) {
		if err := c.client.Del(ctx, iter.Val()).Err(); err != nil {
			c.logger.Debug("cache invalidate failed", zap.String("key", iter.Val()), zap.Error(err))
		}
	}
	if err := iter.Err(); err != nil {
		c.logger.Debug("cache scan failed", zap.String("pattern", pattern), zap.Error(err))
	}
}
