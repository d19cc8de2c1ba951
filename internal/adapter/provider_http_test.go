// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/coffee-shop-env/internal/config"
	"github.com/MKhiriev/coffee-shop-env/internal/logger"
	"github.com/MKhiriev/coffee-shop-env/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAdapter(t *testing.T, serverURL string) *httpProviderAdapter {
	t.Helper()
	a := NewHTTPProviderAdapter(
		config.Adapter{BaseURL: serverURL, RequestTimeout: time.Second},
		models.Auth0{URL: "dev-wacke.us"},
		logger.Nop(),
	)
	return a.(*httpProviderAdapter)
}

func TestNewHTTPProviderAdapter_DefaultBaseURL(t *testing.T) {
	a := NewHTTPProviderAdapter(config.Adapter{}, models.Auth0{URL: "dev-wacke.us"}, logger.Nop()).(*httpProviderAdapter)

	assert.Equal(t, "https://dev-wacke.us.auth0.com", a.client.BaseURL)
	assert.Equal(t, defaultRequestTimeout, a.client.GetClient().Timeout)
}

func TestNewHTTPProviderAdapter_TrimsTrailingSlash(t *testing.T) {
	a := newTestAdapter(t, "http://localhost:9999/")
	assert.Equal(t, "http://localhost:9999", a.client.BaseURL)
}

func TestDiscovery_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, discoveryPath, r.URL.Path)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"issuer": "https://dev-wacke.us.auth0.com/",
			"authorization_endpoint": "https://dev-wacke.us.auth0.com/authorize",
			"token_endpoint": "https://dev-wacke.us.auth0.com/oauth/token",
			"jwks_uri": "https://dev-wacke.us.auth0.com/.well-known/jwks.json",
			"scopes_supported": ["openid"]
		}`))
	}))
	defer srv.Close()

	got, err := newTestAdapter(t, srv.URL).Discovery(context.Background())
	require.NoError(t, err)

	assert.Equal(t, models.OpenIDConfiguration{
		Issuer:                "https://dev-wacke.us.auth0.com/",
		AuthorizationEndpoint: "https://dev-wacke.us.auth0.com/authorize",
		TokenEndpoint:         "https://dev-wacke.us.auth0.com/oauth/token",
		JWKSURI:               "https://dev-wacke.us.auth0.com/.well-known/jwks.json",
	}, got)
}

func TestDiscovery_ErrorMapping(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantErr error
	}{
		{name: "not found", status: http.StatusNotFound, body: "no tenant", wantErr: ErrProviderNotFound},
		{name: "server error", status: http.StatusInternalServerError, wantErr: ErrProviderUnavailable},
		{name: "bad gateway", status: http.StatusBadGateway, body: "upstream", wantErr: ErrProviderUnavailable},
		{name: "empty issuer", status: http.StatusOK, body: `{"jwks_uri": "x"}`, wantErr: ErrInvalidDiscovery},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			_, err := newTestAdapter(t, srv.URL).Discovery(context.Background())
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestDiscovery_IncludesStatusInError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL).Discovery(context.Background())
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "503"), err.Error())
}

func TestDiscovery_ContextCanceled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := newTestAdapter(t, srv.URL).Discovery(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestDiscovery_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	_, err := newTestAdapter(t, url).Discovery(context.Background())
	assert.Error(t, err)
}
