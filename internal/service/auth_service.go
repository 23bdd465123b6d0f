// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package service

import (
	"context"

	"github.com/roombook/room-booking-service/internal/domain"
	"github.com/roombook/room-booking-service/internal/domain/models"
	"github.com/roombook/room-booking-service/internal/infrastructure/auth"
)

// AuthService verifies session tokens into caller identities.
type AuthService struct {
	auth auth.IJWTAuth
}

// NewAuthService creates a new AuthService.
func NewAuthService(jwtAuth auth.IJWTAuth) *AuthService {
	return &AuthService{
		auth: jwtAuth,
	}
}

// ServiceReady checks if the service is ready for use.
func (s *AuthService) ServiceReady() bool {
	return s.auth != nil
}

// ParseIdentity verifies a bearer token and returns the caller identity.
func (s *AuthService) ParseIdentity(ctx context.Context, bearerToken string) (models.Identity, error) {
	if !s.ServiceReady() {
		return models.Identity{}, domain.NewUnavailableError("auth service not ready")
	}

	return s.auth.ParseIdentity(ctx, bearerToken)
}
