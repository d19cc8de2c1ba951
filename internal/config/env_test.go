// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv_AllFields(t *testing.T) {
	// Arrange
	envVars := map[string]string{
		"CONFIG": "/path/to/config.json",
		"DOTENV": "/path/to/.env",

		"APP_VARIANT":   "production",
		"APP_VERSION":   "1.2.3",
		"APP_LOG_LEVEL": "debug",

		"FRONTEND_PRODUCTION":         "true",
		"FRONTEND_API_SERVER_URL":     "https://api.example.com",
		"FRONTEND_AUTH0_URL":          "coffee.eu",
		"FRONTEND_AUTH0_AUDIENCE":     "drinks",
		"FRONTEND_AUTH0_CLIENT_ID":    "client-123",
		"FRONTEND_AUTH0_CALLBACK_URL": "https://shop.example.com",

		"SERVER_ADDRESS":          "localhost:8080",
		"SERVER_REQUEST_TIMEOUT":  "30s",
		"ADAPTER_BASE_URL":        "http://localhost:9999",
		"ADAPTER_REQUEST_TIMEOUT": "5s",

		"RENDER_FORMAT":         "json",
		"RENDER_OUTPUT":         "src/environments/environment.json",
		"RENDER_CHECK_PROVIDER": "true",
	}
	setEnvVars(t, envVars)

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)

	assert.Equal(t, "/path/to/config.json", cfg.FilePath)
	assert.Equal(t, "/path/to/.env", cfg.DotEnvPath)

	assert.Equal(t, "production", cfg.App.Variant)
	assert.Equal(t, "1.2.3", cfg.App.Version)
	assert.Equal(t, "debug", cfg.App.LogLevel)

	require.NotNil(t, cfg.Frontend.Production)
	assert.True(t, *cfg.Frontend.Production)
	assert.Equal(t, "https://api.example.com", cfg.Frontend.APIServerURL)
	assert.Equal(t, "coffee.eu", cfg.Frontend.Auth0.URL)
	assert.Equal(t, "drinks", cfg.Frontend.Auth0.Audience)
	assert.Equal(t, "client-123", cfg.Frontend.Auth0.ClientID)
	assert.Equal(t, "https://shop.example.com", cfg.Frontend.Auth0.CallbackURL)

	assert.Equal(t, "localhost:8080", cfg.Server.HTTPAddress)
	assert.Equal(t, 30*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, "http://localhost:9999", cfg.Adapter.BaseURL)
	assert.Equal(t, 5*time.Second, cfg.Adapter.RequestTimeout)

	assert.Equal(t, "json", cfg.Render.Format)
	assert.Equal(t, "src/environments/environment.json", cfg.Render.OutputPath)
	assert.True(t, cfg.Render.ShouldCheckProvider())
}

func TestParseEnv_EmptyEnv(t *testing.T) {
	clearEnvVars(t)

	cfg := &StructuredConfig{}
	require.NoError(t, parseEnv(cfg))

	assert.Equal(t, &StructuredConfig{}, cfg)
	assert.Nil(t, cfg.Frontend.Production, "unset production must stay nil")
}

func TestParseEnv_ProductionFalseIsExplicit(t *testing.T) {
	setEnvVars(t, map[string]string{"FRONTEND_PRODUCTION": "false"})

	cfg := &StructuredConfig{}
	require.NoError(t, parseEnv(cfg))

	require.NotNil(t, cfg.Frontend.Production)
	assert.False(t, *cfg.Frontend.Production)
}

func TestParseEnv_InvalidBool(t *testing.T) {
	setEnvVars(t, map[string]string{"FRONTEND_PRODUCTION": "maybe"})

	err := parseEnv(&StructuredConfig{})
	assert.Error(t, err)
}

func TestParseEnv_InvalidDuration(t *testing.T) {
	setEnvVars(t, map[string]string{"SERVER_REQUEST_TIMEOUT": "soon"})

	err := parseEnv(&StructuredConfig{})
	assert.Error(t, err)
}

func TestParseDotEnv(t *testing.T) {
	clearEnvVars(t)
	path := filepath.Join(t.TempDir(), ".env")
	content := `# local overrides
FRONTEND_API_SERVER_URL=http://localhost:5000
FRONTEND_AUTH0_AUDIENCE="coffee shop"
FRONTEND_PRODUCTION=false
DOTENV=/somewhere/else/.env
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := parseDotEnv(path)
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:5000", cfg.Frontend.APIServerURL)
	assert.Equal(t, "coffee shop", cfg.Frontend.Auth0.Audience)
	require.NotNil(t, cfg.Frontend.Production)
	assert.False(t, *cfg.Frontend.Production)
	assert.Empty(t, cfg.DotEnvPath)

	_, set := os.LookupEnv("FRONTEND_API_SERVER_URL")
	assert.False(t, set, "dotenv must not leak into the process environment")
}

func TestParseDotEnv_MissingFile(t *testing.T) {
	_, err := parseDotEnv(filepath.Join(t.TempDir(), "missing.env"))
	assert.Error(t, err)
}

func TestParseDotEnv_InvalidValue(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("ADAPTER_REQUEST_TIMEOUT=later\n"), 0o600))

	_, err := parseDotEnv(path)
	assert.Error(t, err)
}

// envKeys lists every variable the loader reads.
var envKeys = []string{
	"CONFIG", "DOTENV",
	"APP_VARIANT", "APP_VERSION", "APP_LOG_LEVEL",
	"FRONTEND_PRODUCTION", "FRONTEND_API_SERVER_URL",
	"FRONTEND_AUTH0_URL", "FRONTEND_AUTH0_AUDIENCE",
	"FRONTEND_AUTH0_CLIENT_ID", "FRONTEND_AUTH0_CALLBACK_URL",
	"SERVER_ADDRESS", "SERVER_REQUEST_TIMEOUT",
	"ADAPTER_BASE_URL", "ADAPTER_REQUEST_TIMEOUT",
	"RENDER_FORMAT", "RENDER_OUTPUT", "RENDER_CHECK_PROVIDER",
}

func setEnvVars(t *testing.T, vars map[string]string) {
	t.Helper()
	clearEnvVars(t)
	for k, v := range vars {
		t.Setenv(k, v)
	}
}

// clearEnvVars unsets every loader variable for the duration of the test;
// t.Setenv restores the previous values afterwards.
func clearEnvVars(t *testing.T) {
	t.Helper()
	for _, k := range envKeys {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}
}
