// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package service

import (
	"context"
	"log/slog"
	"net/mail"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/roombook/room-booking-service/internal/domain"
	"github.com/roombook/room-booking-service/internal/domain/models"
	"github.com/roombook/room-booking-service/internal/infrastructure/auth"
	"github.com/roombook/room-booking-service/internal/logging"
	"github.com/roombook/room-booking-service/pkg/utils"
)

// minPasswordLength is the minimum accepted password length for new accounts.
const minPasswordLength = 8

// ActivityContext carries the request metadata recorded with account events.
type ActivityContext struct {
	IP     string
	Device string
}

// UserService implements account registration, login, and profile
// operations.
type UserService struct {
	UserRepository domain.UserRepository
	Auth           auth.IJWTAuth
	Config         ServiceConfig
}

// NewUserService creates a new UserService.
func NewUserService(userRepository domain.UserRepository, jwtAuth auth.IJWTAuth, config ServiceConfig) *UserService {
	return &UserService{
		UserRepository: userRepository,
		Auth:           jwtAuth,
		Config:         config,
	}
}

// ServiceReady checks if the service is ready for use.
func (s *UserService) ServiceReady() bool {
	return s.UserRepository != nil && s.Auth != nil
}

// Register creates a new account. New accounts receive the free-form
// minutes permission pair.
func (s *UserService) Register(ctx context.Context, name, email, password string, activity ActivityContext) (*models.User, error) {
	if !s.ServiceReady() {
		slog.ErrorContext(ctx, "service not initialized", logging.PriorityCritical())
		return nil, domain.NewUnavailableError("user service not ready")
	}

	if name == "" {
		return nil, domain.NewValidationError("name is required")
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return nil, domain.NewValidationError("invalid email address", err)
	}
	if len(password) < minPasswordLength {
		return nil, domain.NewValidationError("password must be at least 8 characters")
	}

	exists, err := s.UserRepository.UserExistsByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.NewConflictError("an account with this email already exists")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, domain.NewInternalError("failed to hash password", err)
	}

	user := &models.User{
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		Role:         "member",
		Permissions: []string{
			models.PermissionCreateFreeMinutes,
			models.PermissionViewFreeMinutes,
		},
		CreatedAt: utils.TimePtr(time.Now().UTC()),
	}

	if err := s.UserRepository.CreateUser(ctx, user); err != nil {
		return nil, err
	}

	s.recordActivity(ctx, user.UID, "registered", activity)

	slog.DebugContext(ctx, "registered account", "user_uid", user.UID)

	return user, nil
}

// Login verifies credentials and issues a session token.
func (s *UserService) Login(ctx context.Context, email, password string, activity ActivityContext) (*models.User, string, error) {
	if !s.ServiceReady() {
		return nil, "", domain.NewUnavailableError("user service not ready")
	}

	if email == "" || password == "" {
		return nil, "", domain.NewValidationError("email and password are required")
	}

	user, err := s.UserRepository.GetUserByEmail(ctx, email)
	if err != nil {
		if domain.GetErrorType(err) == domain.ErrorTypeNotFound {
			// Same response as a wrong password so the endpoint does not
			// reveal which emails are registered.
			return nil, "", domain.NewUnauthorizedError("invalid email or password")
		}
		return nil, "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, "", domain.NewUnauthorizedError("invalid email or password")
	}

	token, err := s.Auth.IssueToken(user)
	if err != nil {
		return nil, "", err
	}

	s.recordActivity(ctx, user.UID, "logged in", activity)

	return user, token, nil
}

// GetProfile fetches the caller's account.
func (s *UserService) GetProfile(ctx context.Context, userUID string) (*models.User, error) {
	if !s.ServiceReady() {
		return nil, domain.NewUnavailableError("user service not ready")
	}
	if userUID == "" {
		return nil, domain.NewValidationError("user UID is required")
	}

	return s.UserRepository.GetUser(ctx, userUID)
}

// GetActivities fetches the caller's activity log, most recent first.
func (s *UserService) GetActivities(ctx context.Context, userUID string) ([]*models.Activity, error) {
	if !s.ServiceReady() {
		return nil, domain.NewUnavailableError("user service not ready")
	}
	if userUID == "" {
		return nil, domain.NewValidationError("user UID is required")
	}

	return s.UserRepository.ListActivities(ctx, userUID)
}

// RecordUserAction records a domain event on the account's activity log.
func (s *UserService) RecordUserAction(ctx context.Context, userUID, action string, activity ActivityContext) {
	if !s.ServiceReady() || userUID == "" {
		return
	}
	s.recordActivity(ctx, userUID, action, activity)
}

// recordActivity appends an activity entry. Failures are logged, not
// returned; the log is advisory.
func (s *UserService) recordActivity(ctx context.Context, userUID, action string, activity ActivityContext) {
	err := s.UserRepository.RecordActivity(ctx, &models.Activity{
		UserUID: userUID,
		Action:  action,
		Date:    time.Now().UTC(),
		IP:      activity.IP,
		Device:  activity.Device,
	})
	if err != nil {
		slog.ErrorContext(ctx, "failed to record activity", logging.ErrKey, err,
			"user_uid", userUID, "action", action)
	}
}
