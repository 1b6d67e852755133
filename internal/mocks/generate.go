// Package mocks provides generated mocks for the ports interfaces.
//
// The mocks are generated with go.uber.org/mock (gomock). To regenerate
// after interface changes, run:
//
//	go generate ./internal/mocks
package mocks

// Generate mock for the BlogAPI interface from internal/ports.
//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=blog_api_mock.go github.com/blogdeck/blogdeck/internal/ports BlogAPI

// Generate mock for the IdentityCache interface from internal/ports.
//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=identity_cache_mock.go github.com/blogdeck/blogdeck/internal/ports IdentityCache
