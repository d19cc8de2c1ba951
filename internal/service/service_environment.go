package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/coffee-shop-env/internal/logger"
	"github.com/MKhiriev/coffee-shop-env/models"
)

type environmentService struct {
	env models.Environment

	logger *logger.Logger
}

func NewEnvironmentService(env models.Environment, logger *logger.Logger) EnvironmentService {
	return &environmentService{
		env:    env,
		logger: logger,
	}
}

func (s *environmentService) GetEnvironment(ctx context.Context) models.Environment {
	return s.env
}

func (s *environmentService) AuthorizeURL(ctx context.Context, callbackPath string) (string, error) {
	if err := validateCallbackPath(callbackPath); err != nil {
		s.logger.Warn().Str("callback_path", callbackPath).Msg("rejected login callback path")
		return "", err
	}

	return s.env.Auth0.AuthorizeURL(callbackPath), nil
}

func (s *environmentService) LogoutURL(ctx context.Context) string {
	return s.env.Auth0.LogoutURL()
}

// validateCallbackPath keeps the redirect on the registered callback origin:
// only empty values or plain absolute paths are accepted.
func validateCallbackPath(p string) error {
	if p == "" {
		return nil
	}

	if !strings.HasPrefix(p, "/") || strings.HasPrefix(p, "//") ||
		strings.ContainsAny(p, "\\?#@ \t\r\n") || strings.Contains(p, "..") {
		return fmt.Errorf("%w: %q", ErrInvalidCallbackPath, p)
	}

	return nil
}
