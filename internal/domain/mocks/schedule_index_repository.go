// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package mocks

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/roombook/room-booking-service/internal/scheduling"
)

// MockScheduleIndexRepository implements ScheduleIndexRepository for testing
type MockScheduleIndexRepository struct {
	mock.Mock
}

func (m *MockScheduleIndexRepository) GetBusyIntervals(ctx context.Context, roomUID string, date time.Time) ([]scheduling.BusyInterval, error) {
	args := m.Called(ctx, roomUID, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]scheduling.BusyInterval), args.Error(1)
}

func (m *MockScheduleIndexRepository) AddBusyInterval(ctx context.Context, roomUID string, date time.Time, busy scheduling.BusyInterval) error {
	args := m.Called(ctx, roomUID, date, busy)
	return args.Error(0)
}

func (m *MockScheduleIndexRepository) RemoveBusyInterval(ctx context.Context, roomUID string, date time.Time, bookingUID string) error {
	args := m.Called(ctx, roomUID, date, bookingUID)
	return args.Error(0)
}
