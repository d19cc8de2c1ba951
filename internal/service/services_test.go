package service

import (
	"testing"

	"github.com/MKhiriev/coffee-shop-env/internal/config"
	"github.com/MKhiriev/coffee-shop-env/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewServices(t *testing.T) {
	cfg := &config.StructuredConfig{App: config.App{Version: "1.0.0"}}

	services, err := NewServices(cfg, &stubProviderAdapter{}, logger.Nop())
	require.NoError(t, err)

	assert.NotNil(t, services.EnvironmentService)
	assert.NotNil(t, services.AppInfoService)
	assert.NotNil(t, services.TokenService)
	assert.NotNil(t, services.ProviderService)
}

func TestNewServices_WithoutProvider(t *testing.T) {
	cfg := &config.StructuredConfig{App: config.App{Version: "1.0.0"}}

	services, err := NewServices(cfg, nil, logger.Nop())
	require.NoError(t, err)
	assert.Nil(t, services.ProviderService)
}

func TestNewServices_NoVersion(t *testing.T) {
	services, err := NewServices(&config.StructuredConfig{}, nil, logger.Nop())
	assert.Nil(t, services)
	assert.ErrorIs(t, err, ErrVersionIsNotSpecified)
}
