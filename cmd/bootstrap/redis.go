package bootstrap

import (
	"context"
	"log/slog"

	"venuebook/internal/infra/cache"
	"venuebook/internal/infra/ratelimit"
	"venuebook/internal/pkg/config"
	"venuebook/internal/usecase/queries"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var RedisModule = fx.Module("redis",
	fx.Provide(
		NewRedisClient,
		fx.Annotate(
			NewQuoteCache,
			fx.As(new(queries.QuoteCache)),
		),
		NewSearchLimiter,
	),
)

// NewRedisClient returns nil when REDIS_ADDR is empty; the cache and the limiter
// both treat a nil client as disabled.
func NewRedisClient(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) *redis.Client {
	if cfg.Redis.Addr == "" {
		logger.Info("redis disabled, quote cache and search rate limit are off")
		return nil
	}
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := rdb.Ping(ctx).Err(); err != nil {
				logger.Warn("redis is not reachable yet", "addr", cfg.Redis.Addr, "error", err.Error())
			}
			return nil
		},
		OnStop: func(_ context.Context) error {
			return rdb.Close()
		},
	})
	return rdb
}

func NewQuoteCache(rdb *redis.Client, cfg config.Config) *cache.QuoteCache {
	return cache.NewQuoteCache(rdb, cfg.Redis.QuoteTTL)
}

func NewSearchLimiter(rdb *redis.Client, cfg config.Config) *ratelimit.FixedWindow {
	return ratelimit.NewFixedWindow(rdb, cfg.Redis.RateLimit, cfg.Redis.RateLimitWindow, "rl:search")
}
