package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestParseFile_JSON(t *testing.T) {
	path := writeTempConfig(t, "config.json", `{
		"app": {"variant": "production", "version": "3.1.0", "log_level": "warn"},
		"environment": {
			"production": true,
			"apiServerUrl": "https://api.example.com",
			"auth0": {
				"url": "coffee.eu",
				"audience": "drinks",
				"clientId": "client-123",
				"callbackURL": "https://shop.example.com"
			}
		},
		"server": {"http_address": ":8081", "request_timeout": "45s"},
		"adapter": {"base_url": "http://idp.local", "request_timeout": 2000000000},
		"render": {"format": "json", "output": "env.json", "check_provider": true}
	}`)

	cfg, err := parseFile(path)
	require.NoError(t, err)

	assert.Equal(t, App{Variant: "production", Version: "3.1.0", LogLevel: "warn"}, cfg.App)
	require.NotNil(t, cfg.Frontend.Production)
	assert.True(t, *cfg.Frontend.Production)
	assert.Equal(t, "https://api.example.com", cfg.Frontend.APIServerURL)
	assert.Equal(t, Auth0{
		URL:         "coffee.eu",
		Audience:    "drinks",
		ClientID:    "client-123",
		CallbackURL: "https://shop.example.com",
	}, cfg.Frontend.Auth0)
	assert.Equal(t, Server{HTTPAddress: ":8081", RequestTimeout: 45 * time.Second}, cfg.Server)
	assert.Equal(t, Adapter{BaseURL: "http://idp.local", RequestTimeout: 2 * time.Second}, cfg.Adapter)
	assert.Equal(t, Render{Format: "json", OutputPath: "env.json", CheckProvider: boolPtr(true)}, cfg.Render)
	assert.Empty(t, cfg.FilePath)
	assert.Empty(t, cfg.DotEnvPath)
}

func TestParseFile_YAML(t *testing.T) {
	for _, name := range []string{"config.yaml", "config.YML"} {
		t.Run(name, func(t *testing.T) {
			path := writeTempConfig(t, name, `
environment:
  production: false
  apiServerUrl: http://127.0.0.1:5000
  auth0:
    url: dev-wacke.us
    audience: coffeeshop
    clientId: abc
    callbackURL: https://127.0.0.1:8100
server:
  request_timeout: 1m
`)

			cfg, err := parseFile(path)
			require.NoError(t, err)

			require.NotNil(t, cfg.Frontend.Production)
			assert.False(t, *cfg.Frontend.Production)
			assert.Equal(t, "http://127.0.0.1:5000", cfg.Frontend.APIServerURL)
			assert.Equal(t, "abc", cfg.Frontend.Auth0.ClientID)
			assert.Equal(t, time.Minute, cfg.Server.RequestTimeout)
		})
	}
}

// TestParseFile_PartialLeavesProductionUnset verifies that a file without
// "production" does not override it.
func TestParseFile_PartialLeavesProductionUnset(t *testing.T) {
	path := writeTempConfig(t, "partial.json", `{"environment": {"apiServerUrl": "http://x:1"}}`)

	cfg, err := parseFile(path)
	require.NoError(t, err)
	assert.Nil(t, cfg.Frontend.Production)
	assert.Equal(t, "http://x:1", cfg.Frontend.APIServerURL)
}

func TestParseFile_Errors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := parseFile(filepath.Join(t.TempDir(), "nope.json"))
		assert.Error(t, err)
	})

	t.Run("malformed json", func(t *testing.T) {
		_, err := parseFile(writeTempConfig(t, "bad.json", "{not valid json"))
		assert.Error(t, err)
	})

	t.Run("malformed yaml", func(t *testing.T) {
		_, err := parseFile(writeTempConfig(t, "bad.yaml", "environment: [unclosed"))
		assert.Error(t, err)
	})

	t.Run("bad duration", func(t *testing.T) {
		_, err := parseFile(writeTempConfig(t, "dur.json", `{"server": {"request_timeout": "whenever"}}`))
		assert.Error(t, err)
	})
}

func TestDuration_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    time.Duration
		wantErr bool
	}{
		{name: "string", input: `"1h30m"`, want: 90 * time.Minute},
		{name: "nanoseconds", input: `1000`, want: time.Microsecond},
		{name: "invalid string", input: `"tomorrow"`, wantErr: true},
		{name: "bool", input: `true`, wantErr: true},
		{name: "not json", input: `{`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Duration
			err := d.UnmarshalJSON([]byte(tt.input))
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, time.Duration(d))
		})
	}
}

func TestDuration_MarshalJSON(t *testing.T) {
	data, err := json.Marshal(Duration(30 * time.Second))
	require.NoError(t, err)
	assert.Equal(t, `"30s"`, string(data))
}
