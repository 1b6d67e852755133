package config

import "time"

// APIConfig contains the upstream blog platform configuration.
type APIConfig struct {
	// BaseURL is the root of the platform API, without a trailing slash.
	BaseURL string `env:"API_BASE_URL" envDefault:"http://localhost:3000"`

	// Timeout bounds each upstream request.
	Timeout time.Duration `env:"API_TIMEOUT" envDefault:"10s"`
}

// Sanitize applies guardrails to API configuration values.
func (a *APIConfig) Sanitize() {
	if a.Timeout <= 0 {
		a.Timeout = 10 * time.Second
	}
}
