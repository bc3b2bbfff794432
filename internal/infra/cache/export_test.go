//go:build unit

package cache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

type RedisKV interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
}

func NewQuoteCacheWith(rdb RedisKV, ttl time.Duration) *QuoteCache {
	return newQuoteCache(rdb, ttl)
}
