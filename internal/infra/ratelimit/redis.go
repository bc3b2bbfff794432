package ratelimit

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

// FixedWindow counts hits per key in Redis; every gateway instance shares the counter.
type FixedWindow struct {
	rdb    redis.Scripter
	limit  int
	window time.Duration
	prefix string
}

var fixedWindowScript = redis.NewScript(`
local current = redis.call("INCR", KEYS[1])
if current == 1 then
  redis.call("PEXPIRE", KEYS[1], ARGV[1])
end
return current
`)

// NewFixedWindow returns nil when rdb is nil; a nil limiter allows everything.
func NewFixedWindow(rdb *redis.Client, limit int, window time.Duration, prefix string) *FixedWindow {
	if rdb == nil {
		return nil
	}
	return newFixedWindow(rdb, limit, window, prefix)
}

func newFixedWindow(rdb redis.Scripter, limit int, window time.Duration, prefix string) *FixedWindow {
	if limit <= 0 {
		limit = 60
	}
	if window <= 0 {
		window = time.Minute
	}
	prefix = strings.TrimSpace(prefix)
	if prefix == "" {
		prefix = "rl"
	}
	return &FixedWindow{rdb: rdb, limit: limit, window: window, prefix: prefix}
}

func (rl *FixedWindow) Limit() int {
	if rl == nil {
		return 0
	}
	return rl.limit
}

func (rl *FixedWindow) Window() time.Duration {
	if rl == nil {
		return 0
	}
	return rl.window
}

// Allow records one hit for key and reports whether it stays within the limit.
func (rl *FixedWindow) Allow(ctx context.Context, key string) (bool, error) {
	if rl == nil {
		return true, nil
	}
	count, err := rl.incr(ctx, rl.prefix+":"+key)
	if err != nil {
		return false, err
	}
	return count <= int64(rl.limit), nil
}

func (rl *FixedWindow) incr(ctx context.Context, key string) (int64, error) {
	ms := rl.window.Milliseconds()
	if ms <= 0 {
		ms = int64(time.Minute / time.Millisecond)
	}
	res, err := fixedWindowScript.Run(ctx, rl.rdb, []string{key}, ms).Result()
	if err != nil {
		return 0, err
	}
	switch v := res.(type) {
	case int64:
		return v, nil
	case int:
		return int64(v), nil
	case string:
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return 0, err
		}
		return n, nil
	default:
		return 0, fmt.Errorf("unexpected redis script result type %T", res)
	}
}
