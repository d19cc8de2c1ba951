package models

import "time"

// TokenInspectRequest is the body of POST /api/token/inspect.
type TokenInspectRequest struct {
	Token string `json:"token"`
}

// TokenReport describes an access token compared against the loaded
// [Environment]. The signature is not verified; the report answers
// "was this token minted for us", not "is this token trustworthy".
type TokenReport struct {
	Issuer          string     `json:"issuer"`
	Subject         string     `json:"subject,omitempty"`
	Audience        []string   `json:"audience"`
	Permissions     []string   `json:"permissions,omitempty"`
	ExpiresAt       *time.Time `json:"expiresAt,omitempty"`
	Expired         bool       `json:"expired"`
	IssuerMatches   bool       `json:"issuerMatches"`
	AudienceMatches bool       `json:"audienceMatches"`
}
