// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/coffee-shop-env/models"
)

// EnvironmentService gives read access to the front-end environment record
// and the Auth0 links derived from it.
type EnvironmentService interface {
	// GetEnvironment returns a copy of the loaded record.
	GetEnvironment(ctx context.Context) models.Environment
	// AuthorizeURL returns the Auth0 login link. callbackPath is appended to
	// the callback URL; it must be empty or an absolute path.
	AuthorizeURL(ctx context.Context, callbackPath string) (string, error)
	// LogoutURL returns the Auth0 logout link.
	LogoutURL(ctx context.Context) string
}

// AppInfoService exposes application metadata.
type AppInfoService interface {
	// GetAppVersion returns the configured application version.
	GetAppVersion(ctx context.Context) string
}

// TokenService compares access tokens against the loaded record.
type TokenService interface {
	// InspectToken decodes raw without verifying its signature and reports
	// whether its issuer and audience match the record.
	InspectToken(ctx context.Context, raw string) (models.TokenReport, error)
}

// ProviderService checks the identity provider named by the record.
type ProviderService interface {
	// CheckProvider fetches the tenant discovery document and verifies that
	// its issuer matches the record.
	CheckProvider(ctx context.Context) (models.OpenIDConfiguration, error)
}
