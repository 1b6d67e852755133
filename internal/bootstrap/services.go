package bootstrap

import (
	"fmt"
	"log/slog"

	"github.com/blogdeck/blogdeck/config"
	"github.com/blogdeck/blogdeck/internal/apiclient"
	"github.com/blogdeck/blogdeck/internal/ports"
	"github.com/blogdeck/blogdeck/internal/service"
)

// ServiceDeps contains dependencies for service construction.
type ServiceDeps struct {
	Config *config.AppConfig
	Cache  ports.IdentityCache
	Logger *slog.Logger
}

// ServiceContainer holds all constructed services.
type ServiceContainer struct {
	Sessions *service.SessionService
	Auth     *service.AuthService
	Posts    *service.PostService
	Accounts *service.AccountService
}

// NewServices constructs the platform client and the services on top
// of it.
func NewServices(deps *ServiceDeps) (ServiceContainer, error) {
	api, err := apiclient.NewClient(apiclient.Config{
		BaseURL: deps.Config.API.BaseURL,
		Timeout: deps.Config.API.Timeout,
	})
	if err != nil {
		return ServiceContainer{}, fmt.Errorf("create platform client: %w", err)
	}

	return ServiceContainer{
		Sessions: service.NewSessionService(service.SessionServiceOptions{
			API:    api,
			Cache:  deps.Cache,
			TTL:    deps.Config.Session.CacheTTL,
			Logger: deps.Logger,
		}),
		Auth:     service.NewAuthService(service.AuthServiceOptions{API: api}),
		Posts:    service.NewPostService(service.PostServiceOptions{API: api}),
		Accounts: service.NewAccountService(service.AccountServiceOptions{API: api}),
	}, nil
}
