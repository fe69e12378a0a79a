package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"xrpl-escrow-agent/internal/core/domain"

	goredis "github.com/redis/go-redis/v9"
)

// BalanceCache implements ports.BalanceCache using Redis. It serves the
// read API only; custody operations query validated ledger state
// directly.
type BalanceCache struct {
	client *goredis.Client
	prefix string
}

// NewBalanceCache creates a new Redis-backed balance cache.
func NewBalanceCache(client *goredis.Client) *BalanceCache {
	return &BalanceCache{
		client: client,
		prefix: "balance:",
	}
}

// Get retrieves a cached balance by address.
// Returns nil, nil if the key does not exist.
func (c *BalanceCache) Get(ctx context.Context, address string) (*domain.Balance, error) {
	val, err := c.client.Get(ctx, c.prefix+address).Bytes()
	if err != nil {
		if err == goredis.Nil {
			return nil, nil
		}
		return nil, fmt.Errorf("redis balance get: %w", err)
	}

	balance := &domain.Balance{}
	if err := json.Unmarshal(val, balance); err != nil {
		return nil, fmt.Errorf("decode cached balance: %w", err)
	}
	return balance, nil
}

// Set stores a balance snapshot with TTL.
func (c *BalanceCache) Set(ctx context.Context, balance *domain.Balance, ttl time.Duration) error {
	val, err := json.Marshal(balance)
	if err != nil {
		return fmt.Errorf("encode balance: %w", err)
	}
	if err := c.client.Set(ctx, c.prefix+balance.Address, val, ttl).Err(); err != nil {
		return fmt.Errorf("redis balance set: %w", err)
	}
	return nil
}
