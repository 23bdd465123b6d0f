// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package auth

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roombook/room-booking-service/internal/domain"
	"github.com/roombook/room-booking-service/internal/domain/models"
)

func newTestAuth() *JWTAuth {
	return NewJWTAuth(JWTAuthConfig{
		Secret:   "test-secret",
		Audience: "roombook",
		Issuer:   "booking-api",
	})
}

func TestJWTAuth_IssueAndParse(t *testing.T) {
	auth := newTestAuth()

	user := &models.User{
		UID:         "user-1",
		Email:       "grace@example.com",
		Permissions: []string{models.PermissionCreateFreeMinutes},
	}

	token, err := auth.IssueToken(user)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	identity, err := auth.ParseIdentity(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", identity.UserID)
	assert.True(t, identity.HasPermission(models.PermissionCreateFreeMinutes))
	assert.False(t, identity.HasPermission(models.PermissionViewFreeMinutes))
}

func TestJWTAuth_ParseIdentity_MissingToken(t *testing.T) {
	auth := newTestAuth()

	_, err := auth.ParseIdentity(context.Background(), "")
	require.Error(t, err)
	assert.Equal(t, domain.ErrorTypeUnauthorized, domain.GetErrorType(err))
}

func TestJWTAuth_ParseIdentity_WrongSecret(t *testing.T) {
	auth := newTestAuth()
	other := NewJWTAuth(JWTAuthConfig{Secret: "other-secret", Audience: "roombook"})

	token, err := other.IssueToken(&models.User{UID: "user-1"})
	require.NoError(t, err)

	_, err = auth.ParseIdentity(context.Background(), token)
	require.Error(t, err)
	assert.Equal(t, domain.ErrorTypeUnauthorized, domain.GetErrorType(err))
}

func TestJWTAuth_ParseIdentity_WrongAudience(t *testing.T) {
	auth := newTestAuth()
	other := NewJWTAuth(JWTAuthConfig{Secret: "test-secret", Audience: "another-service"})

	token, err := other.IssueToken(&models.User{UID: "user-1"})
	require.NoError(t, err)

	_, err = auth.ParseIdentity(context.Background(), token)
	require.Error(t, err)
	assert.Equal(t, domain.ErrorTypeUnauthorized, domain.GetErrorType(err))
}

func TestJWTAuth_ParseIdentity_Expired(t *testing.T) {
	auth := newTestAuth()

	claims := sessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "user-1",
			Audience:  jwt.ClaimStrings{"roombook"},
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-48 * time.Hour)),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-24 * time.Hour)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte("test-secret"))
	require.NoError(t, err)

	_, err = auth.ParseIdentity(context.Background(), signed)
	require.Error(t, err)
	assert.Equal(t, domain.ErrorTypeUnauthorized, domain.GetErrorType(err))
}

func TestJWTAuth_ParseIdentity_MockLocalPrincipal(t *testing.T) {
	auth := NewJWTAuth(JWTAuthConfig{MockLocalPrincipal: "dev-user"})

	identity, err := auth.ParseIdentity(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, "dev-user", identity.UserID)
	assert.True(t, identity.HasPermission(models.PermissionViewFreeMinutes))
}
