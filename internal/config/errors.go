package config

import "errors"

// Load errors. Validation failures wrap one of these together with the JSON
// path of the offending field, so callers can match them with [errors.Is].
var (
	// ErrMissingField indicates an absent or empty field of the front-end
	// record.
	ErrMissingField = errors.New("missing field")
	// ErrMalformedURL indicates a URL field that is not an absolute http(s)
	// URL with a host.
	ErrMalformedURL = errors.New("malformed URL")
	// ErrMalformedField indicates a non-URL field with an invalid value
	// (for example, a scheme inside the Auth0 domain prefix).
	ErrMalformedField = errors.New("malformed field")
	// ErrInsecureURL indicates a plain-http URL in production mode.
	ErrInsecureURL = errors.New("insecure URL in production")
	// ErrUnknownVariant indicates a variant name with no built-in defaults.
	ErrUnknownVariant = errors.New("unknown variant")
	// ErrInvalidAppConfigs indicates invalid application-level settings
	// (for example, an unknown log level).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidRenderConfigs indicates an unsupported render format.
	ErrInvalidRenderConfigs = errors.New("invalid render configuration")
)
