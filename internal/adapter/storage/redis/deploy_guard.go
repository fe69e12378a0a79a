package redis

import (
	"context"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

// DeployGuard implements ports.DeployGuard using Redis SET NX. It rejects
// concurrent escrow deployments for the same milestone before they reach
// the ledger.
type DeployGuard struct {
	client *goredis.Client
	prefix string
}

// NewDeployGuard creates a new Redis-backed deploy guard.
func NewDeployGuard(client *goredis.Client) *DeployGuard {
	return &DeployGuard{
		client: client,
		prefix: "deploy:",
	}
}

// Acquire atomically claims a milestone for deployment. Returns false
// when another deployment already holds it. The TTL bounds the hold if
// the process dies before Release.
func (g *DeployGuard) Acquire(ctx context.Context, milestoneID string, ttl time.Duration) (bool, error) {
	result, err := g.client.SetArgs(ctx, g.prefix+milestoneID, 1, goredis.SetArgs{
		Mode: "NX",
		TTL:  ttl,
	}).Result()
	if err != nil {
		if err == goredis.Nil {
			// Key already exists, another deployment is in flight
			return false, nil
		}
		return false, fmt.Errorf("redis deploy guard acquire: %w", err)
	}
	return result == "OK", nil
}

// Release frees the milestone after the deployment finished either way.
func (g *DeployGuard) Release(ctx context.Context, milestoneID string) error {
	if err := g.client.Del(ctx, g.prefix+milestoneID).Err(); err != nil {
		return fmt.Errorf("redis deploy guard release: %w", err)
	}
	return nil
}
