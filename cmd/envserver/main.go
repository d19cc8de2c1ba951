// Command envserver serves the front-end environment record and the Auth0
// redirects derived from it.
package main

import (
	"context"
	"os"

	"github.com/MKhiriev/coffee-shop-env/internal/adapter"
	"github.com/MKhiriev/coffee-shop-env/internal/config"
	httpHandler "github.com/MKhiriev/coffee-shop-env/internal/handler/http"
	"github.com/MKhiriev/coffee-shop-env/internal/logger"
	"github.com/MKhiriev/coffee-shop-env/internal/server"
	"github.com/MKhiriev/coffee-shop-env/internal/service"
	"github.com/MKhiriev/coffee-shop-env/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	buildInfo.Print(os.Stdout)

	log := logger.NewLogger("envserver", "info")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	log = logger.NewLogger("envserver", cfg.App.LogLevel)

	if cfg.App.Version == "" {
		cfg.App.Version = buildInfo.BuildVersion()
	}
	log.Debug().Any("config", cfg).Msg("received configs")

	provider := adapter.NewHTTPProviderAdapter(cfg.Adapter, cfg.Environment().Auth0, log)
	services, err := service.NewServices(cfg, provider, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	if cfg.Render.ShouldCheckProvider() {
		if _, err = services.ProviderService.CheckProvider(context.Background()); err != nil {
			log.Fatal().Err(err).Msg("identity provider check failed")
		}
	}

	handler := httpHandler.NewHandler(services, log)
	srv, err := server.NewServer(handler.Init(), cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	log.Info().Str("address", cfg.Server.HTTPAddress).Str("variant", cfg.App.Variant).Msg("starting envserver")
	srv.RunServer()
}
