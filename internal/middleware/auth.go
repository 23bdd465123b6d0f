// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/roombook/room-booking-service/internal/domain/models"
	"github.com/roombook/room-booking-service/internal/service"
	"github.com/roombook/room-booking-service/pkg/constants"
)

// authTokenCookie is the session cookie set by the login endpoint for
// browser clients that do not send an Authorization header.
const authTokenCookie = "auth_token"

// AuthMiddleware verifies the caller's session token and stores the parsed
// identity in the request context. The token comes from the Authorization
// bearer header or, failing that, the auth_token cookie.
func AuthMiddleware(authService *service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "authentication required",
			})
			return
		}

		ctx := c.Request.Context()

		identity, err := authService.ParseIdentity(ctx, token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "invalid or expired session",
			})
			return
		}

		// The raw header and the principal ride along so the message builder
		// can put them on outgoing NATS messages.
		ctx = context.WithValue(ctx, constants.AuthorizationContextID, "Bearer "+token)
		ctx = context.WithValue(ctx, constants.PrincipalContextID, identity.UserID)
		ctx = context.WithValue(ctx, constants.IdentityContextID, identity)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

// bearerToken extracts the session token from the request.
func bearerToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimPrefix(authHeader, "Bearer ")
	}
	if cookie, err := c.Cookie(authTokenCookie); err == nil {
		return cookie
	}
	return ""
}

// IdentityFromContext returns the identity stored by [AuthMiddleware].
func IdentityFromContext(ctx context.Context) (models.Identity, bool) {
	identity, ok := ctx.Value(constants.IdentityContextID).(models.Identity)
	return identity, ok
}
