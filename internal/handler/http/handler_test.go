package http

import (
	"testing"

	"github.com/MKhiriev/coffee-shop-env/internal/config"
	"github.com/MKhiriev/coffee-shop-env/internal/logger"
	"github.com/MKhiriev/coffee-shop-env/internal/service"
	"github.com/MKhiriev/coffee-shop-env/models"
	"github.com/stretchr/testify/require"
)

func testEnvironment() models.Environment {
	return models.Environment{
		Production:   false,
		APIServerURL: "http://127.0.0.1:5000",
		Auth0: models.Auth0{
			URL:         "dev-wacke.us",
			Audience:    "coffeeshop",
			ClientID:    "I6qCgFvwRUSuMMd4ba5A2O128qydr04J",
			CallbackURL: "https://127.0.0.1:8100",
		},
	}
}

func newTestHandler(t *testing.T) *Handler {
	t.Helper()

	env := testEnvironment()
	log := logger.Nop()

	appInfo, err := service.NewAppInfoService(config.App{Version: "1.2.3"}, log)
	require.NoError(t, err)

	services := &service.Services{
		EnvironmentService: service.NewEnvironmentService(env, log),
		AppInfoService:     appInfo,
		TokenService:       service.NewTokenService(env, log),
	}

	return NewHandler(services, log)
}
