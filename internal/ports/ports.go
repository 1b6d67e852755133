// Package ports defines the interfaces the client core depends on.
// Adapters implement them; services and handlers consume them.
package ports

import (
	"context"
	"time"

	"github.com/blogdeck/blogdeck/internal/domain/model"
)

// BlogAPI is the client's view of the remote blog platform. Every
// authenticated call takes the viewer's bearer token explicitly; the
// token is read at request-build time and never mutated mid-flight.
type BlogAPI interface {
	// ResolveIdentity fetches the identity bound to the token.
	ResolveIdentity(ctx context.Context, token string) (*model.Identity, error)
	// Login exchanges credentials for an opaque bearer token.
	Login(ctx context.Context, creds model.Credentials) (string, error)
	// Register creates an account and returns an opaque bearer token.
	Register(ctx context.Context, reg model.Registration) (string, error)
	// UpdateAccount updates display name and, optionally, the avatar.
	UpdateAccount(ctx context.Context, token string, req model.AccountUpdate) error
	// ChangePassword rotates the account password.
	ChangePassword(ctx context.Context, token string, req model.PasswordChange) error

	ListPosts(ctx context.Context, token string) ([]model.Post, error)
	GetPost(ctx context.Context, token, id string) (*model.Post, error)
	CreatePost(ctx context.Context, token string, req model.PostSubmission) (*model.Post, error)
	UpdatePost(ctx context.Context, token, id string, req model.PostSubmission) (*model.Post, error)
	DeletePost(ctx context.Context, token, id string) error
}

// IdentityCache caches resolved identities keyed by credential token so
// each distinct token value triggers at most one identity fetch per TTL
// window.
type IdentityCache interface {
	// Get returns the cached identity or ErrCacheMiss.
	Get(ctx context.Context, token string) (*model.Identity, error)
	Set(ctx context.Context, token string, identity *model.Identity, ttl time.Duration) error
	Delete(ctx context.Context, token string) error
}

// ErrCacheMiss is returned by IdentityCache.Get when no identity is
// cached for a token.
type cacheMissError struct{}

func (cacheMissError) Error() string { return "identity not cached" }

var ErrCacheMiss error = cacheMissError{}
