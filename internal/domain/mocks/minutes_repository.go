// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/roombook/room-booking-service/internal/domain/models"
)

// MockMinutesRepository implements MinutesRepository for testing
type MockMinutesRepository struct {
	mock.Mock
}

func (m *MockMinutesRepository) CreateMinutes(ctx context.Context, minutes *models.Minutes) error {
	args := m.Called(ctx, minutes)
	return args.Error(0)
}

func (m *MockMinutesRepository) GetMinutesByMeeting(ctx context.Context, meetingUID string) (*models.Minutes, error) {
	args := m.Called(ctx, meetingUID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Minutes), args.Error(1)
}

func (m *MockMinutesRepository) GetMinutesByMeetingWithRevision(ctx context.Context, meetingUID string) (*models.Minutes, uint64, error) {
	args := m.Called(ctx, meetingUID)
	if args.Get(0) == nil {
		return nil, args.Get(1).(uint64), args.Error(2)
	}
	return args.Get(0).(*models.Minutes), args.Get(1).(uint64), args.Error(2)
}

func (m *MockMinutesRepository) UpdateMinutes(ctx context.Context, minutes *models.Minutes, revision uint64) error {
	args := m.Called(ctx, minutes, revision)
	return args.Error(0)
}

func (m *MockMinutesRepository) DeleteMinutesByMeeting(ctx context.Context, meetingUID string, revision uint64) error {
	args := m.Called(ctx, meetingUID, revision)
	return args.Error(0)
}

func (m *MockMinutesRepository) MinutesExistForMeeting(ctx context.Context, meetingUID string) (bool, error) {
	args := m.Called(ctx, meetingUID)
	return args.Bool(0), args.Error(1)
}
