// Command envgen renders the selected environment variant for the front-end
// build, as an Angular environment module or as JSON.
package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/MKhiriev/coffee-shop-env/internal/adapter"
	"github.com/MKhiriev/coffee-shop-env/internal/config"
	"github.com/MKhiriev/coffee-shop-env/internal/logger"
	"github.com/MKhiriev/coffee-shop-env/internal/render"
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

	log := logger.NewLogger("envgen", "info")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	log = logger.NewLogger("envgen", cfg.App.LogLevel)

	if cfg.App.Version == "" {
		cfg.App.Version = buildInfo.BuildVersion()
	}

	if err = run(context.Background(), cfg, os.Stdout, log); err != nil {
		log.Fatal().Err(err).Msg("error generating environment")
	}
}

// run writes the rendered record to cfg.Render.OutputPath, or to stdout when
// no path is set.
func run(ctx context.Context, cfg *config.StructuredConfig, stdout io.Writer, log *logger.Logger) error {
	format, err := render.ParseFormat(cfg.Render.Format)
	if err != nil {
		return err
	}

	var provider adapter.ProviderAdapter
	if cfg.Render.ShouldCheckProvider() {
		provider = adapter.NewHTTPProviderAdapter(cfg.Adapter, cfg.Environment().Auth0, log)
	}

	services, err := service.NewServices(cfg, provider, log)
	if err != nil {
		return fmt.Errorf("error creating services: %w", err)
	}

	if services.ProviderService != nil {
		if _, err = services.ProviderService.CheckProvider(ctx); err != nil {
			return err
		}
	}

	env := services.EnvironmentService.GetEnvironment(ctx)
	if cfg.Render.OutputPath == "" {
		return render.Render(stdout, env, format)
	}

	if err = render.WriteFile(cfg.Render.OutputPath, env, format); err != nil {
		return err
	}
	log.Info().
		Str("variant", cfg.App.Variant).
		Str("format", string(format)).
		Str("output", cfg.Render.OutputPath).
		Msg("environment written")

	return nil
}
