package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeployGuard_AcquireOnce(t *testing.T) {
	s := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: s.Addr()})
	guard := NewDeployGuard(client)
	ctx := context.Background()

	ok, err := guard.Acquire(ctx, "m1", time.Minute)
	require.NoError(t, err)
	assert.True(t, ok)

	// Second acquire while held fails.
	ok, err = guard.Acquire(ctx, "m1", time.Minute)
	require.NoError(t, err)
	assert.False(t, ok)

	// Different milestone is independent.
	ok, err = guard.Acquire(ctx, "m2", time.Minute)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestDeployGuard_ReleaseFrees(t *testing.T) {
	s := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: s.Addr()})
	guard := NewDeployGuard(client)
	ctx := context.Background()

	ok, err := guard.Acquire(ctx, "m1", time.Minute)
	require.NoError(t, err)
	require.True(t, ok)

	require.NoError(t, guard.Release(ctx, "m1"))

	ok, err = guard.Acquire(ctx, "m1", time.Minute)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestDeployGuard_TTLExpiry(t *testing.T) {
	s := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: s.Addr()})
	guard := NewDeployGuard(client)
	ctx := context.Background()

	ok, err := guard.Acquire(ctx, "m1", time.Second)
	require.NoError(t, err)
	require.True(t, ok)

	// A crashed deployment must not hold the milestone forever.
	s.FastForward(2 * time.Second)

	ok, err = guard.Acquire(ctx, "m1", time.Second)
	require.NoError(t, err)
	assert.True(t, ok)
}
