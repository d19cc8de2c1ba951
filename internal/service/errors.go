package service

import "errors"

var (
	ErrVersionIsNotSpecified = errors.New("app version is not specified")

	ErrInvalidCallbackPath = errors.New("invalid callback path")

	ErrEmptyToken     = errors.New("empty token")
	ErrMalformedToken = errors.New("malformed token")

	ErrIssuerMismatch = errors.New("identity provider issuer does not match configuration")
)
