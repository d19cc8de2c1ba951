package config

import (
	"fmt"
	"time"
)

// Built-in variants a build can start from.
const (
	VariantDevelopment = "development"
	VariantProduction  = "production"
)

// baseDefaults holds settings shared by every variant.
func baseDefaults() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			LogLevel: "info",
		},
		Server: Server{
			HTTPAddress:    "localhost:8080",
			RequestTimeout: 30 * time.Second,
		},
		Adapter: Adapter{
			RequestTimeout: 10 * time.Second,
		},
		Render: Render{
			Format: "ts",
		},
	}
}

// variantDefaults returns the front-end defaults of a named variant.
//
// The development variant is a complete local setup. The production variant
// only switches production mode on; URLs and Auth0 credentials must be
// supplied by the deployment, and validation fails until they are.
func variantDefaults(name string) (*StructuredConfig, error) {
	switch name {
	case VariantDevelopment:
		return &StructuredConfig{
			App: App{Variant: VariantDevelopment},
			Frontend: Frontend{
				Production:   boolPtr(false),
				APIServerURL: "http://127.0.0.1:5000",
				Auth0: Auth0{
					URL:         "dev-wacke.us",
					Audience:    "coffeeshop",
					ClientID:    "I6qCgFvwRUSuMMd4ba5A2O128qydr04J",
					CallbackURL: "https://127.0.0.1:8100",
				},
			},
		}, nil
	case VariantProduction:
		return &StructuredConfig{
			App: App{Variant: VariantProduction, LogLevel: "warn"},
			Frontend: Frontend{
				Production: boolPtr(true),
			},
		}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownVariant, name)
	}
}

func boolPtr(v bool) *bool {
	return &v
}
