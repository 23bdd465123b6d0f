// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

// Package constants contains shared constants for the booking service.
package constants

// HTTP headers propagated onto NATS messages and request contexts.
const (
	// AuthorizationHeader is the authorization header from the HTTP request.
	AuthorizationHeader = "authorization"

	// XOnBehalfOfHeader is the x-on-behalf-of header from the HTTP request.
	XOnBehalfOfHeader = "x-on-behalf-of"

	// RequestIDHeader is the request ID header from the HTTP request.
	RequestIDHeader = "x-request-id"
)

type contextKey string

// Context keys for request-scoped values.
const (
	// AuthorizationContextID is the context key for the raw authorization header.
	AuthorizationContextID contextKey = "authorization"

	// PrincipalContextID is the context key for the authenticated principal.
	PrincipalContextID contextKey = "x-on-behalf-of"

	// IdentityContextID is the context key for the parsed caller identity.
	IdentityContextID contextKey = "identity"

	// RequestIDContextID is the context key for the request ID.
	RequestIDContextID contextKey = "request-id"
)
