package repository

import (
	"context"
	"encoding/json"
	"pretexta_backend/pkg/logger"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const (
	cacheKeyChallenges = "pretexta:content:challenges"
	cacheKeyQuizzes    = "pretexta:content:quizzes"
)

// ContentCache keeps the read-mostly challenge and quiz lists in Redis.
// A nil cache or nil client disables caching.
type ContentCache struct {
	Redis *redis.Client
	TTL   time.Duration
	ctx   context.Context
}

func NewContentCache(rdb *redis.Client, ttl time.Duration) *ContentCache {
	return &ContentCache{
		Redis: rdb,
		TTL:   ttl,
		ctx:   context.Background(),
	}
}

func (c *ContentCache) enabled() bool {
	return c != nil && c.Redis != nil
}

// Get decodes a cached value into dst and reports whether it was a hit.
func (c *ContentCache) Get(key string, dst interface{}) bool {
	if !c.enabled() {
		return false
	}
	val, err := c.Redis.Get(c.ctx, key).Bytes()
	if err == redis.Nil {
		return false
	}
	if err != nil {
		logger.Log.Warn("content cache read failed", zap.String("key", key), zap.Error(err))
		return false
	}
	if err := json.Unmarshal(val, dst); err != nil {
		logger.Log.Warn("content cache entry corrupt", zap.String("key", key), zap.Error(err))
		c.Redis.Del(c.ctx, key)
		return false
	}
	return true
}

func (c *ContentCache) Set(key string, value interface{}) {
	if !c.enabled() {
		return
	}
	data, err := json.Marshal(value)
	if err != nil {
		return
	}
	if err := c.Redis.Set(c.ctx, key, data, c.TTL).Err(); err != nil {
		logger.Log.Warn("content cache write failed", zap.String("key", key), zap.Error(err))
	}
}

func (c *ContentCache) Invalidate(key string) {
	if !c.enabled() {
		return
	}
	c.Redis.Del(c.ctx, key)
}
