// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// parseEnv populates cfg from environment variables using the caarlos0/env
// library. Struct fields are mapped via their `env` and `envPrefix` tags
// defined on [StructuredConfig] and its nested types.
//
// Returns a wrapped error if env.Parse fails (e.g. a value cannot be
// converted to the target type).
func parseEnv(cfg any) error {
	err := env.Parse(cfg)
	if err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	return nil
}

// parseDotEnv reads a .env file and maps it onto a [StructuredConfig] with
// the same tags as [parseEnv]. The process environment is left untouched.
func parseDotEnv(path string) (*StructuredConfig, error) {
	vars, err := godotenv.Read(path)
	if err != nil {
		return nil, fmt.Errorf("error reading dotenv file: %w", err)
	}

	cfg := &StructuredConfig{}
	if err = env.ParseWithOptions(cfg, env.Options{Environment: vars}); err != nil {
		return nil, fmt.Errorf("error getting dotenv configs: %w", err)
	}

	// a .env file cannot point at another .env file
	cfg.DotEnvPath = ""

	return cfg, nil
}
