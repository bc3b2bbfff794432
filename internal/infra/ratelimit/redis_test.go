//go:build unit

package ratelimit

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// counterScripter evaluates the fixed-window script against an in-memory counter.
type counterScripter struct {
	counts map[string]int64
	ttls   map[string]interface{}
	err    error
}

func newCounterScripter() *counterScripter {
	return &counterScripter{counts: map[string]int64{}, ttls: map[string]interface{}{}}
}

func (s *counterScripter) run(keys []string, args ...interface{}) *redis.Cmd {
	if s.err != nil {
		return redis.NewCmdResult(nil, s.err)
	}
	s.counts[keys[0]]++
	if s.counts[keys[0]] == 1 {
		s.ttls[keys[0]] = args[0]
	}
	return redis.NewCmdResult(s.counts[keys[0]], nil)
}

func (s *counterScripter) Eval(_ context.Context, _ string, keys []string, args ...interface{}) *redis.Cmd {
	return s.run(keys, args...)
}

func (s *counterScripter) EvalSha(_ context.Context, _ string, keys []string, args ...interface{}) *redis.Cmd {
	return s.run(keys, args...)
}

func (s *counterScripter) EvalRO(_ context.Context, _ string, keys []string, args ...interface{}) *redis.Cmd {
	return s.run(keys, args...)
}

func (s *counterScripter) EvalShaRO(_ context.Context, _ string, keys []string, args ...interface{}) *redis.Cmd {
	return s.run(keys, args...)
}

func (s *counterScripter) ScriptExists(_ context.Context, hashes ...string) *redis.BoolSliceCmd {
	return redis.NewBoolSliceResult(make([]bool, len(hashes)), nil)
}

func (s *counterScripter) ScriptLoad(_ context.Context, _ string) *redis.StringCmd {
	return redis.NewStringResult("sha", nil)
}

func TestFixedWindow_Allow(t *testing.T) {
	ctx := context.Background()

	t.Run("allows up to the limit per key", func(t *testing.T) {
		s := newCounterScripter()
		rl := newFixedWindow(s, 2, 30*time.Second, "search")

		for i := 0; i < 2; i++ {
			ok, err := rl.Allow(ctx, "10.0.0.1")
			require.NoError(t, err)
			assert.True(t, ok)
		}
		ok, err := rl.Allow(ctx, "10.0.0.1")
		require.NoError(t, err)
		assert.False(t, ok)

		ok, err = rl.Allow(ctx, "10.0.0.2")
		require.NoError(t, err)
		assert.True(t, ok, "counters are per key")

		assert.Equal(t, int64(30000), s.ttls["search:10.0.0.1"])
	})

	t.Run("script errors surface", func(t *testing.T) {
		s := newCounterScripter()
		s.err = errors.New("dial tcp: connection refused")
		rl := newFixedWindow(s, 2, time.Minute, "")

		_, err := rl.Allow(ctx, "k")

		assert.Error(t, err)
	})

	t.Run("nil limiter allows everything", func(t *testing.T) {
		rl := NewFixedWindow(nil, 1, time.Minute, "search")

		ok, err := rl.Allow(ctx, "k")

		require.NoError(t, err)
		assert.True(t, ok)
		assert.Zero(t, rl.Limit())
	})

	t.Run("defaults", func(t *testing.T) {
		rl := newFixedWindow(newCounterScripter(), 0, 0, " ")

		assert.Equal(t, 60, rl.Limit())
		assert.Equal(t, time.Minute, rl.Window())
		assert.Equal(t, "rl", rl.prefix)
	})
}
