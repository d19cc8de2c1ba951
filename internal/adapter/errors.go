package adapter

import "errors"

var (
	// ErrProviderNotFound is returned for 404: usually a wrong tenant prefix.
	ErrProviderNotFound = errors.New("identity provider tenant not found")
	// ErrProviderUnavailable is returned for any other non-2xx response.
	ErrProviderUnavailable = errors.New("identity provider unavailable")
	// ErrInvalidDiscovery is returned when the discovery document lacks an
	// issuer.
	ErrInvalidDiscovery = errors.New("invalid discovery document")
)
