package redis

import (
	"context"
	"testing"
	"time"

	"xrpl-escrow-agent/internal/core/domain"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBalanceCache_SetAndGet(t *testing.T) {
	s := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: s.Addr()})
	cache := NewBalanceCache(client)
	ctx := context.Background()

	addr := "rMASTERxxxxxxxxxxxxxxxxxxxxxxxxxxx"

	// Get before set => nil
	result, err := cache.Get(ctx, addr)
	assert.NoError(t, err)
	assert.Nil(t, result)

	balance := &domain.Balance{
		Address:            addr,
		NativeDrops:        15_000_000,
		SettlementBalance:  "250.5",
		SettlementCurrency: "RLUSD",
		FetchedAt:          time.Now().UTC().Truncate(time.Second),
	}
	require.NoError(t, cache.Set(ctx, balance, 30*time.Second))

	result, err = cache.Get(ctx, addr)
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, balance.NativeDrops, result.NativeDrops)
	assert.Equal(t, balance.SettlementBalance, result.SettlementBalance)
}

func TestBalanceCache_TTLExpiry(t *testing.T) {
	s := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: s.Addr()})
	cache := NewBalanceCache(client)
	ctx := context.Background()

	balance := &domain.Balance{Address: "rADDR", NativeDrops: 1}
	require.NoError(t, cache.Set(ctx, balance, time.Second))

	s.FastForward(2 * time.Second)

	result, err := cache.Get(ctx, "rADDR")
	assert.NoError(t, err)
	assert.Nil(t, result)
}
