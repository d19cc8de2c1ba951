// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"time"

	"github.com/MKhiriev/coffee-shop-env/models"
)

// StructuredConfig is the top-level configuration container. It aggregates
// the front-end environment record together with the settings of the
// programs that serve and render it, and is populated by merging built-in
// variant defaults, a .env file, environment variables, command-line flags
// and an optional JSON/YAML file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds the variant selector, version and log level.
	App App `envPrefix:"APP_"`

	// Frontend holds the values of the front-end environment record.
	Frontend Frontend `envPrefix:"FRONTEND_"`

	// Server holds network address and timeout settings for the HTTP server.
	Server Server `envPrefix:"SERVER_"`

	// Adapter holds settings of the outbound identity-provider client.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Render holds settings of the build-step generator.
	Render Render `envPrefix:"RENDER_"`

	// FilePath is the optional path to a JSON or YAML configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	FilePath string `env:"CONFIG"`

	// DotEnvPath is the optional path to a .env file.
	// Populated via the DOTENV environment variable or the -dotenv flag.
	DotEnvPath string `env:"DOTENV"`
}

// App holds application-level settings.
type App struct {
	// Variant names the built-in defaults the other layers are merged onto
	// ("development" or "production").
	// Env: APP_VARIANT
	Variant string `env:"VARIANT"`

	// Version is the version string exposed via /api/version/.
	// Env: APP_VERSION
	Version string `env:"VERSION"`

	// LogLevel is a zerolog level name ("debug", "info", ...).
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`
}

// Frontend mirrors [models.Environment] with merge-friendly types.
type Frontend struct {
	// Production is a pointer so an explicit false can override a variant
	// that sets it to true.
	// Env: FRONTEND_PRODUCTION
	Production *bool `env:"PRODUCTION"`

	// APIServerURL is the backend base URL.
	// Env: FRONTEND_API_SERVER_URL
	APIServerURL string `env:"API_SERVER_URL"`

	// Auth0 holds the identity-provider parameters.
	Auth0 Auth0 `envPrefix:"AUTH0_"`
}

// Auth0 holds the identity-provider part of the record.
type Auth0 struct {
	// Env: FRONTEND_AUTH0_URL
	URL string `env:"URL"`
	// Env: FRONTEND_AUTH0_AUDIENCE
	Audience string `env:"AUDIENCE"`
	// Env: FRONTEND_AUTH0_CLIENT_ID
	ClientID string `env:"CLIENT_ID"`
	// Env: FRONTEND_AUTH0_CALLBACK_URL
	CallbackURL string `env:"CALLBACK_URL"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. "0.0.0.0:8080").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request (e.g. "30s", "1m").
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Adapter holds settings of the identity-provider client.
type Adapter struct {
	// BaseURL overrides the provider base URL derived from the Auth0 domain.
	// Env: ADAPTER_BASE_URL
	BaseURL string `env:"BASE_URL"`

	// RequestTimeout bounds every outbound request.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Render holds settings of the build-step generator.
type Render struct {
	// Format is "ts" (Angular environment module) or "json".
	// Env: RENDER_FORMAT
	Format string `env:"FORMAT"`

	// OutputPath is the file the rendered record is written to; stdout when
	// empty.
	// Env: RENDER_OUTPUT
	OutputPath string `env:"OUTPUT"`

	// CheckProvider makes the generator verify the identity provider before
	// writing anything. A pointer so an explicit false overrides a lower layer.
	// Env: RENDER_CHECK_PROVIDER
	CheckProvider *bool `env:"CHECK_PROVIDER"`
}

// ShouldCheckProvider reports whether the identity provider must be verified.
func (r Render) ShouldCheckProvider() bool {
	return r.CheckProvider != nil && *r.CheckProvider
}

// Environment returns the validated front-end record. The result is a copy;
// changing it does not affect cfg.
func (cfg *StructuredConfig) Environment() models.Environment {
	var production bool
	if cfg.Frontend.Production != nil {
		production = *cfg.Frontend.Production
	}

	return models.Environment{
		Production:   production,
		APIServerURL: cfg.Frontend.APIServerURL,
		Auth0: models.Auth0{
			URL:         cfg.Frontend.Auth0.URL,
			Audience:    cfg.Frontend.Auth0.Audience,
			ClientID:    cfg.Frontend.Auth0.ClientID,
			CallbackURL: cfg.Frontend.Auth0.CallbackURL,
		},
	}
}

// Load loads, merges, and validates the configuration using args as the
// command-line arguments (without the program name). Sources are applied in
// the following order, later sources overriding non-empty values:
//  1. Built-in defaults of the selected variant
//  2. .env file (path resolved from sources 3 and 4)
//  3. Environment variables
//  4. Command-line flags
//  5. JSON or YAML file (path resolved from sources 3 and 4)
//
// Load has no side effects: calling it twice with the same inputs yields
// equal configs.
func Load(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags(args).
		withDotEnv().
		withFile().
		withVariant().
		build()
}

// GetStructuredConfig is [Load] applied to the process arguments.
func GetStructuredConfig() (*StructuredConfig, error) {
	return Load(os.Args[1:])
}
