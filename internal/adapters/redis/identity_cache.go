// Package redis provides the Redis-backed identity cache for
// multi-instance deployments.
package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/blogdeck/blogdeck/internal/domain/model"
	"github.com/blogdeck/blogdeck/internal/ports"
)

// IdentityCache stores resolved identities in Redis keyed by credential
// token. Entries expire via Redis TTL.
type IdentityCache struct {
	client redis.UniversalClient
	prefix string
}

var _ ports.IdentityCache = (*IdentityCache)(nil)

// NewIdentityCache creates a Redis-backed identity cache.
func NewIdentityCache(client redis.UniversalClient) *IdentityCache {
	return &IdentityCache{
		client: client,
		prefix: "identity:",
	}
}

// NewIdentityCacheWithPrefix creates an identity cache with a custom key prefix.
func NewIdentityCacheWithPrefix(client redis.UniversalClient, prefix string) *IdentityCache {
	return &IdentityCache{
		client: client,
		prefix: prefix,
	}
}

func (c *IdentityCache) Get(ctx context.Context, token string) (*model.Identity, error) {
	if token == "" {
		return nil, ports.ErrCacheMiss
	}

	data, err := c.client.Get(ctx, c.prefix+token).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ports.ErrCacheMiss
		}
		return nil, fmt.Errorf("redis get: %w", err)
	}

	var identity model.Identity
	if unmarshalErr := json.Unmarshal([]byte(data), &identity); unmarshalErr != nil {
		return nil, fmt.Errorf("unmarshal identity: %w", unmarshalErr)
	}

	return &identity, nil
}

func (c *IdentityCache) Set(ctx context.Context, token string, identity *model.Identity, ttl time.Duration) error {
	if token == "" {
		return errors.New("cache token cannot be empty")
	}
	if identity == nil {
		return errors.New("identity cannot be nil")
	}
	if ttl <= 0 {
		return errors.New("ttl must be positive")
	}

	data, err := json.Marshal(identity)
	if err != nil {
		return fmt.Errorf("marshal identity: %w", err)
	}

	return c.client.Set(ctx, c.prefix+token, data, ttl).Err()
}

func (c *IdentityCache) Delete(ctx context.Context, token string) error {
	if token == "" {
		return nil // Nothing to delete
	}
	return c.client.Del(ctx, c.prefix+token).Err()
}
