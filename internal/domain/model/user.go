package model

// Package model contains domain types shared across the client: the
// resolved identity, posts, and the binary image payloads embedded in
// API responses. It is pure and free of transport/adapter concerns.

// Role represents the role the blog platform assigns to an account.
// Keep string form for easy caching and template use.
type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
)

// Valid reports whether the role is one the platform defines.
func (r Role) Valid() bool { return r == RoleAdmin || r == RoleUser }

// Identity is the server-confirmed representation of the current user,
// as returned by the platform's identity endpoint. It is absent (nil in
// request context) until resolution succeeds for the credential token.
type Identity struct {
	ID          string    `json:"_id"`
	DisplayName string    `json:"displayName"`
	Email       string    `json:"email"`
	Role        Role      `json:"role"`
	Avatar      *ImageRef `json:"pfp,omitempty"`
}

// IsAdmin returns true if the identity carries the admin role.
func (i Identity) IsAdmin() bool { return i.Role == RoleAdmin }
