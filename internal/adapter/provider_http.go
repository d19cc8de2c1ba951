package adapter

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/coffee-shop-env/internal/config"
	"github.com/MKhiriev/coffee-shop-env/internal/logger"
	"github.com/MKhiriev/coffee-shop-env/models"
	"github.com/go-resty/resty/v2"
)

const discoveryPath = "/.well-known/openid-configuration"

const defaultRequestTimeout = 10 * time.Second

type httpProviderAdapter struct {
	client *resty.Client
	logger *logger.Logger
}

// NewHTTPProviderAdapter builds a resty-backed [ProviderAdapter] for the
// tenant in auth0. cfg.BaseURL, when set, replaces the "https://<domain>"
// base URL.
func NewHTTPProviderAdapter(cfg config.Adapter, auth0 models.Auth0, log *logger.Logger) ProviderAdapter {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = "https://" + auth0.Domain()
	}

	timeout := cfg.RequestTimeout
	if timeout <= 0 {
		timeout = defaultRequestTimeout
	}

	cli := resty.New().
		SetBaseURL(strings.TrimRight(baseURL, "/")).
		SetTimeout(timeout).
		SetHeader("Accept", "application/json")

	return &httpProviderAdapter{client: cli, logger: log}
}

func (h *httpProviderAdapter) Discovery(ctx context.Context) (models.OpenIDConfiguration, error) {
	var doc models.OpenIDConfiguration

	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&doc).
		Get(discoveryPath)
	if err != nil {
		return models.OpenIDConfiguration{}, fmt.Errorf("discovery request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.OpenIDConfiguration{}, err
	}
	if doc.Issuer == "" {
		return models.OpenIDConfiguration{}, fmt.Errorf("%w: empty issuer", ErrInvalidDiscovery)
	}

	h.logger.Debug().
		Str("issuer", doc.Issuer).
		Dur("duration", resp.Time()).
		Msg("fetched discovery document")

	return doc, nil
}
