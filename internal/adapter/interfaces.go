// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the outbound client for the Auth0 identity
// provider named by the front-end environment record.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is].
package adapter

import (
	"context"

	"github.com/MKhiriev/coffee-shop-env/models"
)

// ProviderAdapter talks to the identity provider.
type ProviderAdapter interface {
	// Discovery fetches the tenant's OpenID Connect discovery document.
	Discovery(ctx context.Context) (models.OpenIDConfiguration, error)
}
