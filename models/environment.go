// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"net/url"
	"strings"
)

// auth0DomainSuffix is appended to [Auth0.URL] to obtain the tenant domain
// (e.g. "dev-wacke.us" becomes "dev-wacke.us.auth0.com").
const auth0DomainSuffix = ".auth0.com"

// Environment is the environment configuration record consumed by the web
// front-end. Its JSON representation keeps the exact field names and nesting
// the front-end code references, so it can be dropped in place of the
// hand-written environment module.
//
// An Environment is built once at startup and handed out by value; nothing in
// the application mutates it afterwards.
type Environment struct {
	// Production reports whether the front-end runs in production mode.
	Production bool `json:"production"`

	// APIServerURL is the base URL of the backend API the front-end calls.
	APIServerURL string `json:"apiServerUrl"`

	// Auth0 holds the identity-provider parameters.
	Auth0 Auth0 `json:"auth0"`
}

// Auth0 holds the identity-provider part of [Environment].
type Auth0 struct {
	// URL is the Auth0 tenant domain prefix (e.g. "dev-wacke.us").
	URL string `json:"url"`

	// Audience identifies the protected API. It must equal the audience the
	// backend token validator expects.
	Audience string `json:"audience"`

	// ClientID is the public client identifier issued by Auth0.
	ClientID string `json:"clientId"`

	// CallbackURL is where Auth0 redirects after authentication. It must be
	// registered with the tenant as an allowed callback.
	CallbackURL string `json:"callbackURL"`
}

// Domain returns the Auth0 tenant domain built from the URL prefix.
func (a Auth0) Domain() string {
	return a.URL + auth0DomainSuffix
}

// IssuerURL returns the "iss" value Auth0 puts into tokens for this tenant.
func (a Auth0) IssuerURL() string {
	return "https://" + a.Domain() + "/"
}

// AuthorizeURL builds the implicit-flow login link the front-end redirects
// the browser to. callbackPath is appended to CallbackURL and may be empty.
func (a Auth0) AuthorizeURL(callbackPath string) string {
	query := url.Values{}
	query.Set("audience", a.Audience)
	query.Set("response_type", "token")
	query.Set("client_id", a.ClientID)
	query.Set("redirect_uri", joinCallback(a.CallbackURL, callbackPath))

	return "https://" + a.Domain() + "/authorize?" + query.Encode()
}

// LogoutURL builds the Auth0 logout link that returns the browser to
// CallbackURL.
func (a Auth0) LogoutURL() string {
	query := url.Values{}
	query.Set("client_id", a.ClientID)
	query.Set("returnTo", a.CallbackURL)

	return "https://" + a.Domain() + "/v2/logout?" + query.Encode()
}

func joinCallback(callbackURL, callbackPath string) string {
	if callbackPath == "" {
		return callbackURL
	}

	u, err := url.Parse(callbackURL)
	if err != nil {
		return strings.TrimRight(callbackURL, "/") + "/" + strings.TrimLeft(callbackPath, "/")
	}
	// the path goes before any query or fragment of the callback URL
	u.Path = strings.TrimRight(u.Path, "/") + "/" + strings.TrimLeft(callbackPath, "/")
	u.RawPath = ""

	return u.String()
}
