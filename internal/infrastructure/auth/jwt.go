// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

// Package auth provides JWT issuing and verification for the booking service.
package auth

import (
	"context"
	"log/slog"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/roombook/room-booking-service/internal/domain"
	"github.com/roombook/room-booking-service/internal/domain/models"
	"github.com/roombook/room-booking-service/internal/logging"
)

// tokenTTL is how long issued session tokens stay valid.
const tokenTTL = 24 * time.Hour

// IJWTAuth issues and verifies session tokens. It allows for mocking in tests.
type IJWTAuth interface {
	IssueToken(user *models.User) (string, error)
	ParseIdentity(ctx context.Context, tokenString string) (models.Identity, error)
}

// JWTAuthConfig is the configuration for the JWT authentication.
type JWTAuthConfig struct {
	// Secret is the HMAC signing secret for session tokens.
	Secret string

	// Audience expected in verified tokens.
	Audience string

	// Issuer set on issued tokens and expected in verified ones.
	Issuer string

	// MockLocalPrincipal bypasses verification and returns this user ID as
	// the caller identity. Local development only.
	MockLocalPrincipal string
}

// JWTAuth issues and verifies session tokens.
type JWTAuth struct {
	config JWTAuthConfig
}

// NewJWTAuth creates a new JWTAuth with the given configuration.
func NewJWTAuth(config JWTAuthConfig) *JWTAuth {
	return &JWTAuth{config: config}
}

// sessionClaims are the registered claims plus the permission tags carried by
// a session token.
type sessionClaims struct {
	jwt.RegisteredClaims
	Permissions []string `json:"permissions,omitempty"`
}

// IssueToken creates a signed session token for the given account.
func (a *JWTAuth) IssueToken(user *models.User) (string, error) {
	now := time.Now()
	claims := sessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.UID,
			Audience:  jwt.ClaimStrings{a.config.Audience},
			Issuer:    a.config.Issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenTTL)),
		},
		Permissions: user.Permissions,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(a.config.Secret))
	if err != nil {
		return "", domain.NewInternalError("failed to sign session token", err)
	}

	return signed, nil
}

// ParseIdentity verifies a session token and returns the caller identity.
func (a *JWTAuth) ParseIdentity(ctx context.Context, tokenString string) (models.Identity, error) {
	if a.config.MockLocalPrincipal != "" {
		slog.WarnContext(ctx, "using mock local principal",
			"principal", a.config.MockLocalPrincipal)
		return models.Identity{
			UserID: a.config.MockLocalPrincipal,
			Permissions: []string{
				models.PermissionCreateFreeMinutes,
				models.PermissionViewFreeMinutes,
			},
		}, nil
	}

	if tokenString == "" {
		return models.Identity{}, domain.NewUnauthorizedError("missing session token")
	}

	claims := &sessionClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims,
		func(token *jwt.Token) (any, error) {
			return []byte(a.config.Secret), nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithAudience(a.config.Audience),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		slog.DebugContext(ctx, "session token rejected", logging.ErrKey, err)
		return models.Identity{}, domain.NewUnauthorizedError("invalid session token", err)
	}
	if !token.Valid {
		return models.Identity{}, domain.NewUnauthorizedError("invalid session token")
	}

	return models.Identity{
		UserID:      claims.Subject,
		Permissions: claims.Permissions,
	}, nil
}
