// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/coffee-shop-env/internal/render"
	"github.com/rs/zerolog"
)

// validate checks that the final merged [StructuredConfig] satisfies all
// invariants before it is used at startup. Every violation is reported, not
// just the first one.
func (cfg *StructuredConfig) validate() error {
	var errs []error

	errs = append(errs, cfg.Frontend.validate()...)

	if _, err := zerolog.ParseLevel(cfg.App.LogLevel); err != nil {
		errs = append(errs, fmt.Errorf("%w: log level %q", ErrInvalidAppConfigs, cfg.App.LogLevel))
	}

	if _, err := render.ParseFormat(cfg.Render.Format); err != nil {
		errs = append(errs, fmt.Errorf("%w: %w", ErrInvalidRenderConfigs, err))
	}

	return errors.Join(errs...)
}

func (f Frontend) validate() []error {
	var errs []error

	if f.Production == nil {
		errs = append(errs, fieldError(ErrMissingField, "production"))
	}

	required := []struct {
		path  string
		value string
	}{
		{"apiServerUrl", f.APIServerURL},
		{"auth0.url", f.Auth0.URL},
		{"auth0.audience", f.Auth0.Audience},
		{"auth0.clientId", f.Auth0.ClientID},
		{"auth0.callbackURL", f.Auth0.CallbackURL},
	}
	for _, field := range required {
		if strings.TrimSpace(field.value) == "" {
			errs = append(errs, fieldError(ErrMissingField, field.path))
		}
	}

	production := f.Production != nil && *f.Production
	errs = append(errs, validateURL("apiServerUrl", f.APIServerURL, production)...)
	callbackErrs := validateURL("auth0.callbackURL", f.Auth0.CallbackURL, production)
	if len(callbackErrs) == 0 && strings.ContainsAny(f.Auth0.CallbackURL, "?#") {
		// the login path is appended to the callback URL
		callbackErrs = append(callbackErrs, fieldError(ErrMalformedURL, "auth0.callbackURL"))
	}
	errs = append(errs, callbackErrs...)

	if f.Auth0.URL != "" && !validTenantPrefix(f.Auth0.URL) {
		errs = append(errs, fieldError(ErrMalformedField, "auth0.url"))
	}

	return errs
}

// validTenantPrefix reports whether s is a bare tenant prefix such as
// "dev-wacke.us". A full tenant domain would get ".auth0.com" twice.
func validTenantPrefix(s string) bool {
	if strings.ContainsAny(s, ":/ \t\n?#") {
		return false
	}
	if lower := strings.ToLower(s); lower == "auth0.com" || strings.HasSuffix(lower, ".auth0.com") {
		return false
	}
	for _, label := range strings.Split(s, ".") {
		if label == "" {
			return false
		}
	}
	return true
}

// validateURL skips empty values; those are reported as missing.
func validateURL(path, raw string, production bool) []error {
	if raw == "" {
		return nil
	}

	u, err := url.Parse(raw)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return []error{fieldError(ErrMalformedURL, path)}
	}

	if production && u.Scheme != "https" {
		return []error{fieldError(ErrInsecureURL, path)}
	}

	return nil
}

func fieldError(err error, path string) error {
	return fmt.Errorf("%w: %s", err, path)
}
