//go:build unit

package cache_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"venuebook/internal/infra/cache"
	"venuebook/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeKV struct {
	values  map[string]string
	ttls    map[string]time.Duration
	failGet error
	failSet error
}

func newFakeKV() *fakeKV {
	return &fakeKV{values: map[string]string{}, ttls: map[string]time.Duration{}}
}

func (f *fakeKV) Get(_ context.Context, key string) *redis.StringCmd {
	if f.failGet != nil {
		return redis.NewStringResult("", f.failGet)
	}
	v, ok := f.values[key]
	if !ok {
		return redis.NewStringResult("", redis.Nil)
	}
	return redis.NewStringResult(v, nil)
}

func (f *fakeKV) Set(_ context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd {
	if f.failSet != nil {
		return redis.NewStatusResult("", f.failSet)
	}
	f.values[key] = string(value.([]byte))
	f.ttls[key] = expiration
	return redis.NewStatusResult("OK", nil)
}

func sampleQuote() *queries.QuoteView {
	return &queries.QuoteView{
		ListingID:    uuid.New(),
		CheckIn:      time.Date(2030, 1, 7, 10, 0, 0, 0, time.UTC),
		CheckOut:     time.Date(2030, 1, 7, 12, 0, 0, 0, time.UTC),
		PricingModel: "hourly",
		AddOns:       []queries.AddOnView{{Name: "projector", PriceCents: 1500}},
		PriceCents:   3500,
		HasSchedule:  true,
	}
}

func TestQuoteCache(t *testing.T) {
	ctx := context.Background()

	t.Run("set then get", func(t *testing.T) {
		kv := newFakeKV()
		c := cache.NewQuoteCacheWith(kv, 5*time.Minute)
		want := sampleQuote()

		require.NoError(t, c.Set(ctx, "k1", want))
		got, err := c.Get(ctx, "k1")

		require.NoError(t, err)
		assert.Equal(t, want, got)
		assert.Equal(t, 5*time.Minute, kv.ttls["quote:k1"])
	})

	t.Run("miss is nil without error", func(t *testing.T) {
		c := cache.NewQuoteCacheWith(newFakeKV(), time.Minute)

		got, err := c.Get(ctx, "absent")

		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("redis failures surface", func(t *testing.T) {
		kv := newFakeKV()
		kv.failGet = errors.New("connection refused")
		kv.failSet = errors.New("connection refused")
		c := cache.NewQuoteCacheWith(kv, time.Minute)

		_, err := c.Get(ctx, "k")
		assert.Error(t, err)
		assert.Error(t, c.Set(ctx, "k", sampleQuote()))
	})

	t.Run("corrupt entry is an error", func(t *testing.T) {
		kv := newFakeKV()
		kv.values["quote:bad"] = "{not json"
		c := cache.NewQuoteCacheWith(kv, time.Minute)

		_, err := c.Get(ctx, "bad")

		assert.Error(t, err)
	})

	t.Run("nil client disables caching", func(t *testing.T) {
		c := cache.NewQuoteCache(nil, time.Minute)

		require.NoError(t, c.Set(ctx, "k", sampleQuote()))
		got, err := c.Get(ctx, "k")

		require.NoError(t, err)
		assert.Nil(t, got)
	})
}
