package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"venuebook/internal/pkg/errs"
	"venuebook/internal/usecase/queries"

	"github.com/redis/go-redis/v9"
)

const quoteKeyPrefix = "quote:"

// redisKV is the subset of *redis.Client the quote cache needs.
type redisKV interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
}

type QuoteCache struct {
	rdb redisKV
	ttl time.Duration
}

var _ queries.QuoteCache = (*QuoteCache)(nil)

// NewQuoteCache returns a cache that stores nothing when rdb is nil.
func NewQuoteCache(rdb *redis.Client, ttl time.Duration) *QuoteCache {
	if rdb == nil {
		return &QuoteCache{ttl: ttl}
	}
	return newQuoteCache(rdb, ttl)
}

func newQuoteCache(rdb redisKV, ttl time.Duration) *QuoteCache {
	if ttl <= 0 {
		ttl = 10 * time.Minute
	}
	return &QuoteCache{rdb: rdb, ttl: ttl}
}

func (c *QuoteCache) Get(ctx context.Context, key string) (*queries.QuoteView, error) {
	if c.rdb == nil {
		return nil, nil
	}
	raw, err := c.rdb.Get(ctx, quoteKeyPrefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, errs.Wrap(err, "redis get quote")
	}

	var quote queries.QuoteView
	if err := json.Unmarshal(raw, &quote); err != nil {
		return nil, errs.Wrap(err, "decode cached quote")
	}
	return &quote, nil
}

func (c *QuoteCache) Set(ctx context.Context, key string, quote *queries.QuoteView) error {
	if c.rdb == nil || quote == nil {
		return nil
	}
	raw, err := json.Marshal(quote)
	if err != nil {
		return errs.Wrap(err, "encode quote")
	}
	if err := c.rdb.Set(ctx, quoteKeyPrefix+key, raw, c.ttl).Err(); err != nil {
		return errs.Wrap(err, "redis set quote")
	}
	return nil
}
