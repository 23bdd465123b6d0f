// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package auth

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/roombook/room-booking-service/internal/domain/models"
)

// MockJWTAuth implements IJWTAuth for testing
type MockJWTAuth struct {
	mock.Mock
}

func (m *MockJWTAuth) IssueToken(user *models.User) (string, error) {
	args := m.Called(user)
	return args.String(0), args.Error(1)
}

func (m *MockJWTAuth) ParseIdentity(ctx context.Context, tokenString string) (models.Identity, error) {
	args := m.Called(ctx, tokenString)
	return args.Get(0).(models.Identity), args.Error(1)
}
