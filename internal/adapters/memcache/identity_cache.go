// Package memcache provides the in-process identity cache used by
// single-instance deployments and tests.
package memcache

import (
	"context"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/blogdeck/blogdeck/internal/domain/model"
	"github.com/blogdeck/blogdeck/internal/ports"
)

// IdentityCache keeps resolved identities in process memory keyed by
// credential token.
type IdentityCache struct {
	cache *gocache.Cache
}

var _ ports.IdentityCache = (*IdentityCache)(nil)

// NewIdentityCache creates an in-memory identity cache. defaultTTL
// bounds entries whose Set call passes a non-positive TTL; expired
// entries are purged on a background sweep.
func NewIdentityCache(defaultTTL time.Duration) *IdentityCache {
	return &IdentityCache{
		cache: gocache.New(defaultTTL, 2*defaultTTL),
	}
}

func (c *IdentityCache) Get(_ context.Context, token string) (*model.Identity, error) {
	if token == "" {
		return nil, ports.ErrCacheMiss
	}
	v, ok := c.cache.Get(token)
	if !ok {
		return nil, ports.ErrCacheMiss
	}
	identity, ok := v.(*model.Identity)
	if !ok {
		return nil, ports.ErrCacheMiss
	}
	return identity, nil
}

func (c *IdentityCache) Set(_ context.Context, token string, identity *model.Identity, ttl time.Duration) error {
	if token == "" || identity == nil {
		return nil
	}
	if ttl <= 0 {
		ttl = gocache.DefaultExpiration
	}
	c.cache.Set(token, identity, ttl)
	return nil
}

func (c *IdentityCache) Delete(_ context.Context, token string) error {
	c.cache.Delete(token)
	return nil
}
