// Package rediscache caches per-tenant configuration in Redis. The stock
// policy is read at the start of every lifecycle call, so a short-lived
// cache keeps that lookup off the database hot path.
package rediscache

import (
	"context"
	"time"

	"comanda/internal/core/domain/model/inventory"
	"comanda/internal/core/domain/model/kernel"
	"comanda/internal/core/ports"

	"github.com/go-redis/redis/v8"
)

const policyKeyPrefix = "tenant_policy:"

// PolicyCache decorates a TenantConfigReader with a Redis cache. Cache
// failures degrade to the wrapped reader; a broken Redis never blocks
// order taking.
type PolicyCache struct {
	rdb  *redis.Client
	next ports.TenantConfigReader
	ttl  time.Duration
}

// NewPolicyCache creates a caching reader in front of next.
func NewPolicyCache(rdb *redis.Client, next ports.TenantConfigReader, ttl time.Duration) *PolicyCache {
	return &PolicyCache{rdb: rdb, next: next, ttl: ttl}
}

// GetStockPolicy returns the cached policy when present, otherwise reads
// through and caches the result.
func (c *PolicyCache) GetStockPolicy(ctx context.Context, tenantID kernel.UUID) (inventory.StockPolicy, error) {
	if err := tenantID.Validate(); err != nil {
		return inventory.PolicyUnknown, err
	}

	key := policyKeyPrefix + tenantID.String()

	cached, err := c.rdb.Get(ctx, key).Result()
	if err == nil {
		if policy, parseErr := inventory.PolicyFromString(cached); parseErr == nil {
			return policy, nil
		}
		// A corrupt entry falls through to the source of truth.
	}

	policy, err := c.next.GetStockPolicy(ctx, tenantID)
	if err != nil {
		return inventory.PolicyUnknown, err
	}

	c.rdb.Set(ctx, key, policy.String(), c.ttl)

	return policy, nil
}

// Invalidate drops the cached policy of one tenant. Called when the
// tenant's configuration changes.
func (c *PolicyCache) Invalidate(ctx context.Context, tenantID kernel.UUID) error {
	return c.rdb.Del(ctx, policyKeyPrefix+tenantID.String()).Err()
}
