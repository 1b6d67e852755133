package httpx

import (
	"context"

	"github.com/blogdeck/blogdeck/internal/domain/model"
)

// identityKey is an unexported context key type to avoid collisions across packages.
// Centralized in this file so all handlers/middleware use the same key.
type identityKey struct{}

// tokenKey carries the viewer's raw credential token for upstream calls.
type tokenKey struct{}

// SetIdentityInContext returns a child context that carries the given identity.
// If identity is nil, the original ctx is returned unchanged.
func SetIdentityInContext(ctx context.Context, identity *model.Identity) context.Context {
	if identity == nil {
		return ctx
	}
	return context.WithValue(ctx, identityKey{}, identity)
}

// GetIdentityFromContext returns the viewer identity from context and a boolean indicating presence.
func GetIdentityFromContext(ctx context.Context) (*model.Identity, bool) {
	if identity, ok := ctx.Value(identityKey{}).(*model.Identity); ok && identity != nil {
		return identity, true
	}
	return nil, false
}

// IsAnonymous reports whether the current request context carries no resolved identity.
func IsAnonymous(ctx context.Context) bool {
	_, ok := GetIdentityFromContext(ctx)
	return !ok
}

// SetTokenInContext returns a child context carrying the raw credential token.
func SetTokenInContext(ctx context.Context, token string) context.Context {
	if token == "" {
		return ctx
	}
	return context.WithValue(ctx, tokenKey{}, token)
}

// GetTokenFromContext returns the credential token placed by the session middleware,
// or the empty string for anonymous requests.
func GetTokenFromContext(ctx context.Context) string {
	if token, ok := ctx.Value(tokenKey{}).(string); ok {
		return token
	}
	return ""
}
