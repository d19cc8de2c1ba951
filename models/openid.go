package models

// OpenIDConfiguration is the subset of an OpenID Connect discovery document
// (/.well-known/openid-configuration) the provider check relies on.
type OpenIDConfiguration struct {
	Issuer                string `json:"issuer"`
	AuthorizationEndpoint string `json:"authorization_endpoint"`
	TokenEndpoint         string `json:"token_endpoint"`
	JWKSURI               string `json:"jwks_uri"`
}
