// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app holds response messages shared by the HTTP handlers.
package app

const (
	// MsgInvalidDataProvided is returned when a request body cannot be decoded.
	MsgInvalidDataProvided = "invalid data provided"

	// MsgInternalServerError is returned for failures the caller cannot fix.
	MsgInternalServerError = "internal server error"

	// MsgInvalidCallbackPath is returned when the login callbackPath is not a
	// plain absolute path.
	MsgInvalidCallbackPath = "invalid callback path"

	// MsgNoTokenProvided is returned when neither the body nor the
	// Authorization header carries a token.
	MsgNoTokenProvided = "no token provided"

	// MsgMalformedToken is returned when the token is not a decodable JWT.
	MsgMalformedToken = "malformed token"
)
