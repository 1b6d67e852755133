// Package service holds the application services that sit between the
// HTTP layer and the platform API client.
package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/blogdeck/blogdeck/internal/apiclient"
	"github.com/blogdeck/blogdeck/internal/domain/model"
	"github.com/blogdeck/blogdeck/internal/ports"
)

// SessionServiceOptions groups dependencies for SessionService.
type SessionServiceOptions struct {
	API    ports.BlogAPI
	Cache  ports.IdentityCache
	TTL    time.Duration
	Logger *slog.Logger
}

// SessionService resolves credential tokens to identities. Resolution
// never fails a request: any error degrades to "no identity", which
// downstream code treats as an anonymous viewer.
type SessionService struct {
	api    ports.BlogAPI
	cache  ports.IdentityCache
	ttl    time.Duration
	logger *slog.Logger
	group  singleflight.Group
}

// NewSessionService constructs a new SessionService.
func NewSessionService(opts SessionServiceOptions) *SessionService {
	ttl := opts.TTL
	if ttl <= 0 {
		ttl = time.Minute
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &SessionService{
		api:    opts.API,
		cache:  opts.Cache,
		ttl:    ttl,
		logger: logger,
	}
}

// Resolve maps a credential token to an identity. An empty token
// resolves to nil without touching the platform. Concurrent calls for
// the same token share one in-flight fetch, and successful resolutions
// are cached for the configured TTL, so each distinct token value costs
// at most one upstream request per window.
func (s *SessionService) Resolve(ctx context.Context, token string) *model.Identity {
	if token == "" {
		return nil
	}

	if identity, err := s.cache.Get(ctx, token); err == nil {
		return identity
	} else if !errors.Is(err, ports.ErrCacheMiss) {
		s.logger.Warn("identity cache read failed", "error", err)
	}

	v, err, _ := s.group.Do(token, func() (any, error) {
		identity, err := s.api.ResolveIdentity(ctx, token)
		if err != nil {
			return nil, err
		}
		if cacheErr := s.cache.Set(ctx, token, identity, s.ttl); cacheErr != nil {
			s.logger.Warn("identity cache write failed", "error", cacheErr)
		}
		return identity, nil
	})
	if err != nil {
		// A declined token is the normal expired-session path; anything
		// else is logged and likewise degrades to anonymous.
		var statusErr *apiclient.StatusError
		if errors.As(err, &statusErr) && statusErr.IsAuthRejection() {
			s.logger.Debug("credential token rejected")
		} else {
			s.logger.Warn("identity resolution failed", "error", err)
		}
		return nil
	}

	return v.(*model.Identity)
}

// Invalidate drops the cached identity for a token. Called on logout and
// after account updates so the next render sees fresh details.
func (s *SessionService) Invalidate(ctx context.Context, token string) {
	if token == "" {
		return
	}
	if err := s.cache.Delete(ctx, token); err != nil {
		s.logger.Warn("identity cache delete failed", "error", err)
	}
}
