package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/coffee-shop-env/internal/adapter"
	"github.com/MKhiriev/coffee-shop-env/internal/logger"
	"github.com/MKhiriev/coffee-shop-env/models"
)

type providerService struct {
	env      models.Environment
	provider adapter.ProviderAdapter

	logger *logger.Logger
}

func NewProviderService(env models.Environment, provider adapter.ProviderAdapter, logger *logger.Logger) ProviderService {
	return &providerService{
		env:      env,
		provider: provider,
		logger:   logger,
	}
}

func (s *providerService) CheckProvider(ctx context.Context) (models.OpenIDConfiguration, error) {
	doc, err := s.provider.Discovery(ctx)
	if err != nil {
		return models.OpenIDConfiguration{}, fmt.Errorf("error fetching discovery document for %s: %w", s.env.Auth0.Domain(), err)
	}

	if want := s.env.Auth0.IssuerURL(); doc.Issuer != want {
		return models.OpenIDConfiguration{}, fmt.Errorf("%w: got %q, want %q", ErrIssuerMismatch, doc.Issuer, want)
	}

	s.logger.Info().
		Str("issuer", doc.Issuer).
		Str("jwks_uri", doc.JWKSURI).
		Msg("identity provider verified")

	return doc, nil
}
