package config

import "time"

// SessionConfig contains session resolution and identity cache configuration.
type SessionConfig struct {
	// CacheTTL bounds how long a resolved identity is reused before the
	// platform is asked again.
	CacheTTL time.Duration `env:"SESSION_CACHE_TTL" envDefault:"1m"`
}

// Sanitize applies guardrails to session configuration values.
func (s *SessionConfig) Sanitize() {
	if s.CacheTTL <= 0 {
		s.CacheTTL = time.Minute
	}
}
