package service

import (
	"github.com/MKhiriev/coffee-shop-env/internal/adapter"
	"github.com/MKhiriev/coffee-shop-env/internal/config"
	"github.com/MKhiriev/coffee-shop-env/internal/logger"
)

type Services struct {
	EnvironmentService EnvironmentService
	AppInfoService     AppInfoService
	TokenService       TokenService
	ProviderService    ProviderService
}

// NewServices builds every service from the loaded configuration. provider
// may be nil when the caller never checks the identity provider.
func NewServices(cfg *config.StructuredConfig, provider adapter.ProviderAdapter, logger *logger.Logger) (*Services, error) {
	env := cfg.Environment()

	appInfo, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, err
	}

	services := &Services{
		EnvironmentService: NewEnvironmentService(env, logger),
		AppInfoService:     appInfo,
		TokenService:       NewTokenService(env, logger),
	}
	if provider != nil {
		services.ProviderService = NewProviderService(env, provider, logger)
	}

	return services, nil
}
