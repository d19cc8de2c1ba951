package service

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/MKhiriev/coffee-shop-env/internal/logger"
	"github.com/MKhiriev/coffee-shop-env/models"
	"github.com/golang-jwt/jwt/v5"
)

const bearerScheme = "Bearer"

// accessTokenClaims are the claims Auth0 puts into API access tokens when
// RBAC is enabled for the audience.
type accessTokenClaims struct {
	jwt.RegisteredClaims
	Permissions []string `json:"permissions,omitempty"`
}

type tokenService struct {
	env    models.Environment
	parser *jwt.Parser
	now    func() time.Time
}

// NewTokenService builds a TokenService for env. Inspections log through the
// request-scoped logger so entries carry the trace id.
func NewTokenService(env models.Environment, logger *logger.Logger) TokenService {
	logger.Debug().
		Str("issuer", env.Auth0.IssuerURL()).
		Str("audience", env.Auth0.Audience).
		Msg("token service created")

	return &tokenService{
		env:    env,
		parser: jwt.NewParser(),
		now:    time.Now,
	}
}

func (s *tokenService) InspectToken(ctx context.Context, raw string) (models.TokenReport, error) {
	raw = strings.TrimSpace(raw)
	if len(raw) >= len(bearerScheme) && strings.EqualFold(raw[:len(bearerScheme)], bearerScheme) {
		raw = strings.TrimSpace(raw[len(bearerScheme):])
	}
	if raw == "" {
		return models.TokenReport{}, ErrEmptyToken
	}

	claims := &accessTokenClaims{}
	if _, _, err := s.parser.ParseUnverified(raw, claims); err != nil {
		return models.TokenReport{}, fmt.Errorf("%w: %w", ErrMalformedToken, err)
	}

	report := models.TokenReport{
		Issuer:          claims.Issuer,
		Subject:         claims.Subject,
		Audience:        []string(claims.Audience),
		Permissions:     claims.Permissions,
		IssuerMatches:   claims.Issuer == s.env.Auth0.IssuerURL(),
		AudienceMatches: slices.Contains(claims.Audience, s.env.Auth0.Audience),
	}
	if report.Audience == nil {
		report.Audience = []string{}
	}
	if claims.ExpiresAt != nil {
		expiresAt := claims.ExpiresAt.Time.UTC()
		report.ExpiresAt = &expiresAt
		report.Expired = !s.now().Before(expiresAt)
	}

	logger.FromContext(ctx).Debug().
		Str("issuer", report.Issuer).
		Bool("issuer_matches", report.IssuerMatches).
		Bool("audience_matches", report.AudienceMatches).
		Msg("token inspected")

	return report, nil
}
