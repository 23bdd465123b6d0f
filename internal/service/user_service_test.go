// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/roombook/room-booking-service/internal/domain"
	"github.com/roombook/room-booking-service/internal/domain/mocks"
	"github.com/roombook/room-booking-service/internal/domain/models"
	"github.com/roombook/room-booking-service/internal/infrastructure/auth"
)

type userServiceMocks struct {
	userRepo *mocks.MockUserRepository
	jwtAuth  *auth.MockJWTAuth
}

func newUserService() (*UserService, *userServiceMocks) {
	m := &userServiceMocks{
		userRepo: &mocks.MockUserRepository{},
		jwtAuth:  &auth.MockJWTAuth{},
	}
	svc := NewUserService(m.userRepo, m.jwtAuth, ServiceConfig{})
	return svc, m
}

func TestUserService_Register(t *testing.T) {
	svc, m := newUserService()
	ctx := context.Background()

	m.userRepo.On("UserExistsByEmail", ctx, "ana@example.com").Return(false, nil)
	m.userRepo.On("CreateUser", ctx, mock.Anything).Return(nil)
	m.userRepo.On("RecordActivity", ctx, mock.Anything).Return(nil)

	user, err := svc.Register(ctx, "Ana", "ana@example.com", "correct-horse", ActivityContext{IP: "10.0.0.1"})
	require.NoError(t, err)
	assert.Equal(t, "member", user.Role)
	assert.Contains(t, user.Permissions, models.PermissionCreateFreeMinutes)
	assert.Contains(t, user.Permissions, models.PermissionViewFreeMinutes)
	assert.NotEqual(t, "correct-horse", user.PasswordHash)
	require.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("correct-horse")))

	activity := m.userRepo.Calls[len(m.userRepo.Calls)-1].Arguments.Get(1).(*models.Activity)
	assert.Equal(t, "registered", activity.Action)
	assert.Equal(t, "10.0.0.1", activity.IP)
}

func TestUserService_Register_Validation(t *testing.T) {
	tests := []struct {
		name     string
		userName string
		email    string
		password string
	}{
		{name: "missing name", userName: "", email: "ana@example.com", password: "correct-horse"},
		{name: "invalid email", userName: "Ana", email: "not-an-address", password: "correct-horse"},
		{name: "short password", userName: "Ana", email: "ana@example.com", password: "short"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newUserService()

			_, err := svc.Register(context.Background(), tt.userName, tt.email, tt.password, ActivityContext{})
			require.Error(t, err)
			assert.Equal(t, domain.ErrorTypeValidation, domain.GetErrorType(err))
			m.userRepo.AssertNotCalled(t, "CreateUser", mock.Anything, mock.Anything)
		})
	}
}

func TestUserService_Register_DuplicateEmail(t *testing.T) {
	svc, m := newUserService()
	ctx := context.Background()

	m.userRepo.On("UserExistsByEmail", ctx, "ana@example.com").Return(true, nil)

	_, err := svc.Register(ctx, "Ana", "ana@example.com", "correct-horse", ActivityContext{})
	require.Error(t, err)
	assert.Equal(t, domain.ErrorTypeConflict, domain.GetErrorType(err))
	m.userRepo.AssertNotCalled(t, "CreateUser", mock.Anything, mock.Anything)
}

func TestUserService_Login(t *testing.T) {
	svc, m := newUserService()
	ctx := context.Background()

	hash, err := bcrypt.GenerateFromPassword([]byte("correct-horse"), bcrypt.MinCost)
	require.NoError(t, err)
	stored := &models.User{UID: "user-1", Email: "ana@example.com", PasswordHash: string(hash)}

	m.userRepo.On("GetUserByEmail", ctx, "ana@example.com").Return(stored, nil)
	m.jwtAuth.On("IssueToken", stored).Return("signed-token", nil)
	m.userRepo.On("RecordActivity", ctx, mock.Anything).Return(nil)

	user, token, err := svc.Login(ctx, "ana@example.com", "correct-horse", ActivityContext{Device: "cli"})
	require.NoError(t, err)
	assert.Equal(t, "user-1", user.UID)
	assert.Equal(t, "signed-token", token)

	activity := m.userRepo.Calls[len(m.userRepo.Calls)-1].Arguments.Get(1).(*models.Activity)
	assert.Equal(t, "logged in", activity.Action)
	assert.Equal(t, "cli", activity.Device)
}

func TestUserService_Login_WrongPassword(t *testing.T) {
	svc, m := newUserService()
	ctx := context.Background()

	hash, err := bcrypt.GenerateFromPassword([]byte("correct-horse"), bcrypt.MinCost)
	require.NoError(t, err)

	m.userRepo.On("GetUserByEmail", ctx, "ana@example.com").
		Return(&models.User{UID: "user-1", PasswordHash: string(hash)}, nil)

	_, _, err = svc.Login(ctx, "ana@example.com", "wrong", ActivityContext{})
	require.Error(t, err)
	assert.Equal(t, domain.ErrorTypeUnauthorized, domain.GetErrorType(err))
	assert.Contains(t, err.Error(), "invalid email or password")
}

func TestUserService_Login_UnknownEmail(t *testing.T) {
	svc, m := newUserService()
	ctx := context.Background()

	m.userRepo.On("GetUserByEmail", ctx, "ghost@example.com").
		Return(nil, domain.NewNotFoundError("user not found"))

	_, _, err := svc.Login(ctx, "ghost@example.com", "whatever", ActivityContext{})
	require.Error(t, err)

	// Same message as a wrong password so callers cannot probe for
	// registered emails.
	assert.Equal(t, domain.ErrorTypeUnauthorized, domain.GetErrorType(err))
	assert.Contains(t, err.Error(), "invalid email or password")
}

func TestUserService_GetProfile(t *testing.T) {
	svc, m := newUserService()
	ctx := context.Background()

	m.userRepo.On("GetUser", ctx, "user-1").Return(&models.User{UID: "user-1", Name: "Ana"}, nil)

	user, err := svc.GetProfile(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, "Ana", user.Name)
}

func TestUserService_GetActivities(t *testing.T) {
	svc, m := newUserService()
	ctx := context.Background()

	m.userRepo.On("ListActivities", ctx, "user-1").Return([]*models.Activity{
		{UID: "act-2", Action: "logged in", Date: time.Date(2024, 6, 2, 10, 0, 0, 0, time.UTC)},
		{UID: "act-1", Action: "registered", Date: time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)},
	}, nil)

	activities, err := svc.GetActivities(ctx, "user-1")
	require.NoError(t, err)
	require.Len(t, activities, 2)
	assert.Equal(t, "logged in", activities[0].Action)
}

func TestUserService_RecordActivityFailureIsNotFatal(t *testing.T) {
	svc, m := newUserService()
	ctx := context.Background()

	m.userRepo.On("UserExistsByEmail", ctx, "ana@example.com").Return(false, nil)
	m.userRepo.On("CreateUser", ctx, mock.Anything).Return(nil)
	m.userRepo.On("RecordActivity", ctx, mock.Anything).
		Return(domain.NewInternalError("store unavailable"))

	_, err := svc.Register(ctx, "Ana", "ana@example.com", "correct-horse", ActivityContext{})
	require.NoError(t, err)
}
