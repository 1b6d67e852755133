package bootstrap

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/blogdeck/blogdeck/config"
	"github.com/blogdeck/blogdeck/internal/adapters/memcache"
	rediscache "github.com/blogdeck/blogdeck/internal/adapters/redis"
	"github.com/blogdeck/blogdeck/internal/ports"
)

// CacheConfig contains dependencies for building the identity cache.
type CacheConfig struct {
	Redis   config.RedisConfig
	Session config.SessionConfig
	Logger  *slog.Logger
}

// ConnectRedis establishes a connection to Redis.
//
//nolint:ireturn // returning redis.UniversalClient keeps the client type open for callers.
func ConnectRedis(cfg CacheConfig) (redis.UniversalClient, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	// Verify connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if pingErr := client.Ping(ctx).Err(); pingErr != nil {
		if closeErr := client.Close(); closeErr != nil {
			pingErr = fmt.Errorf("%w (close redis client: %w)", pingErr, closeErr)
		}
		return nil, fmt.Errorf("ping redis: %w", pingErr)
	}

	if cfg.Logger != nil {
		cfg.Logger.Info("redis connected", "addr", cfg.Redis.Addr)
	}

	return client, nil
}

// NewIdentityCache builds the identity cache backend. When Redis is
// disabled the service falls back to an in-process cache. The returned
// client is nil for the in-process backend; callers close it on
// shutdown when present.
//
//nolint:ireturn // the cache backend is selected at runtime.
func NewIdentityCache(cfg CacheConfig) (ports.IdentityCache, redis.UniversalClient, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	if !cfg.Redis.Enabled {
		logger.Info("using in-process identity cache", "ttl", cfg.Session.CacheTTL)
		return memcache.NewIdentityCache(cfg.Session.CacheTTL), nil, nil
	}

	client, err := ConnectRedis(cfg)
	if err != nil {
		return nil, nil, err
	}

	return rediscache.NewIdentityCache(client), client, nil
}
