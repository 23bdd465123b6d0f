// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/roombook/room-booking-service/internal/domain"
	"github.com/roombook/room-booking-service/internal/domain/mocks"
	"github.com/roombook/room-booking-service/internal/domain/models"
)

type minutesServiceMocks struct {
	minutesRepo    *mocks.MockMinutesRepository
	meetingRepo    *mocks.MockMeetingRepository
	messageBuilder *mocks.MockMessageBuilder
}

func newMinutesService() (*MinutesService, *minutesServiceMocks) {
	m := &minutesServiceMocks{
		minutesRepo:    &mocks.MockMinutesRepository{},
		meetingRepo:    &mocks.MockMeetingRepository{},
		messageBuilder: &mocks.MockMessageBuilder{},
	}
	svc := NewMinutesService(m.minutesRepo, m.meetingRepo, m.messageBuilder, ServiceConfig{})
	return svc, m
}

func bookedMeeting() *models.Meeting {
	return &models.Meeting{
		UID:            "meeting-1",
		Title:          "Weekly Sync",
		RoomUID:        "room-1",
		ParticipantIDs: []string{"user-1", "user-2"},
		ViewerIDs:      []string{"user-3"},
	}
}

func participant() models.Identity {
	return models.Identity{UserID: "user-1"}
}

func TestMinutesService_CreateMinutes_Participant(t *testing.T) {
	svc, m := newMinutesService()
	ctx := context.Background()

	m.meetingRepo.On("GetMeeting", ctx, "meeting-1").Return(bookedMeeting(), nil)
	m.minutesRepo.On("MinutesExistForMeeting", ctx, "meeting-1").Return(false, nil)
	m.minutesRepo.On("CreateMinutes", ctx, mock.Anything).Return(nil)
	m.messageBuilder.On("SendIndexMinutes", mock.Anything, models.ActionCreated, mock.Anything).Return(nil)

	minutes, err := svc.CreateMinutes(ctx, participant(), &models.Minutes{
		MeetingUID: "meeting-1",
		Content:    "Decisions were made.",
	})
	require.NoError(t, err)
	assert.NotNil(t, minutes.CreatedAt)
	m.minutesRepo.AssertExpectations(t)
}

func TestMinutesService_CreateMinutes_OutsiderForbidden(t *testing.T) {
	svc, m := newMinutesService()
	ctx := context.Background()

	m.meetingRepo.On("GetMeeting", ctx, "meeting-1").Return(bookedMeeting(), nil)

	_, err := svc.CreateMinutes(ctx, models.Identity{UserID: "stranger"}, &models.Minutes{
		MeetingUID: "meeting-1",
	})
	require.Error(t, err)
	assert.Equal(t, domain.ErrorTypeForbidden, domain.GetErrorType(err))
	m.minutesRepo.AssertNotCalled(t, "CreateMinutes", mock.Anything, mock.Anything)
}

func TestMinutesService_CreateMinutes_AlreadyExists(t *testing.T) {
	svc, m := newMinutesService()
	ctx := context.Background()

	m.meetingRepo.On("GetMeeting", ctx, "meeting-1").Return(bookedMeeting(), nil)
	m.minutesRepo.On("MinutesExistForMeeting", ctx, "meeting-1").Return(true, nil)

	_, err := svc.CreateMinutes(ctx, participant(), &models.Minutes{MeetingUID: "meeting-1"})
	require.Error(t, err)
	assert.Equal(t, domain.ErrorTypeConflict, domain.GetErrorType(err))
}

func TestMinutesService_GetMinutes_Viewer(t *testing.T) {
	svc, m := newMinutesService()
	ctx := context.Background()

	m.meetingRepo.On("GetMeeting", ctx, "meeting-1").Return(bookedMeeting(), nil)
	m.minutesRepo.On("GetMinutesByMeeting", ctx, "meeting-1").Return(&models.Minutes{
		UID:        "minutes-1",
		MeetingUID: "meeting-1",
	}, nil)

	minutes, err := svc.GetMinutes(ctx, models.Identity{UserID: "user-3"}, "meeting-1")
	require.NoError(t, err)
	assert.Equal(t, "minutes-1", minutes.UID)
}

func TestMinutesService_FreeFormPermissionGating(t *testing.T) {
	freeForm := &models.Meeting{
		UID:      "meeting-free",
		Title:    "Hallway chat",
		RoomUID:  models.FreeFormRoomUID,
		FreeForm: true,
	}

	tests := []struct {
		name        string
		identity    models.Identity
		expectError bool
	}{
		{
			name: "creator permission allows write",
			identity: models.Identity{
				UserID:      "user-1",
				Permissions: []string{models.PermissionCreateFreeMinutes},
			},
			expectError: false,
		},
		{
			name:        "no permission is forbidden",
			identity:    models.Identity{UserID: "user-1"},
			expectError: true,
		},
		{
			name: "view-only permission cannot write",
			identity: models.Identity{
				UserID:      "user-1",
				Permissions: []string{models.PermissionViewFreeMinutes},
			},
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newMinutesService()
			ctx := context.Background()

			m.meetingRepo.On("GetMeeting", ctx, "meeting-free").Return(freeForm, nil)
			m.minutesRepo.On("MinutesExistForMeeting", ctx, "meeting-free").Return(false, nil)
			m.minutesRepo.On("CreateMinutes", ctx, mock.Anything).Return(nil)
			m.messageBuilder.On("SendIndexMinutes", mock.Anything, models.ActionCreated, mock.Anything).Return(nil)

			_, err := svc.CreateMinutes(ctx, tt.identity, &models.Minutes{MeetingUID: "meeting-free"})
			if tt.expectError {
				require.Error(t, err)
				assert.Equal(t, domain.ErrorTypeForbidden, domain.GetErrorType(err))
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestMinutesService_UpdateMinutes(t *testing.T) {
	svc, m := newMinutesService()
	ctx := context.Background()

	existing := &models.Minutes{UID: "minutes-1", MeetingUID: "meeting-1"}

	m.meetingRepo.On("GetMeeting", ctx, "meeting-1").Return(bookedMeeting(), nil)
	m.minutesRepo.On("GetMinutesByMeetingWithRevision", ctx, "meeting-1").Return(existing, uint64(2), nil)
	m.minutesRepo.On("UpdateMinutes", ctx, mock.Anything, uint64(2)).Return(nil)
	m.messageBuilder.On("SendIndexMinutes", mock.Anything, models.ActionUpdated, mock.Anything).Return(nil)

	updated, err := svc.UpdateMinutes(ctx, participant(), &models.Minutes{
		MeetingUID: "meeting-1",
		Content:    "Revised notes.",
	}, 2)
	require.NoError(t, err)
	assert.Equal(t, "minutes-1", updated.UID)
	assert.NotNil(t, updated.UpdatedAt)
}

func TestMinutesService_DeleteMinutes(t *testing.T) {
	svc, m := newMinutesService()
	ctx := context.Background()

	m.meetingRepo.On("GetMeeting", ctx, "meeting-1").Return(bookedMeeting(), nil)
	m.minutesRepo.On("GetMinutesByMeetingWithRevision", ctx, "meeting-1").
		Return(&models.Minutes{UID: "minutes-1", MeetingUID: "meeting-1"}, uint64(3), nil)
	m.minutesRepo.On("DeleteMinutesByMeeting", ctx, "meeting-1", uint64(3)).Return(nil)
	m.messageBuilder.On("SendDeleteIndexMinutes", mock.Anything, "minutes-1").Return(nil)

	err := svc.DeleteMinutes(ctx, participant(), "meeting-1", 3)
	require.NoError(t, err)
	m.minutesRepo.AssertExpectations(t)
}

func TestMinutesService_CleanupMinutesForMeeting(t *testing.T) {
	svc, m := newMinutesService()
	ctx := context.Background()

	m.minutesRepo.On("GetMinutesByMeetingWithRevision", ctx, "meeting-1").
		Return(&models.Minutes{UID: "minutes-1", MeetingUID: "meeting-1"}, uint64(1), nil)
	m.minutesRepo.On("DeleteMinutesByMeeting", ctx, "meeting-1", uint64(1)).Return(nil)
	m.messageBuilder.On("SendDeleteIndexMinutes", mock.Anything, "minutes-1").Return(nil)

	err := svc.CleanupMinutesForMeeting(ctx, "meeting-1")
	require.NoError(t, err)
}

func TestMinutesService_CleanupMinutesForMeeting_NoMinutes(t *testing.T) {
	svc, m := newMinutesService()
	ctx := context.Background()

	m.minutesRepo.On("GetMinutesByMeetingWithRevision", ctx, "meeting-1").
		Return(nil, uint64(0), domain.NewNotFoundError("minutes not found"))

	err := svc.CleanupMinutesForMeeting(ctx, "meeting-1")
	require.NoError(t, err)
	m.minutesRepo.AssertNotCalled(t, "DeleteMinutesByMeeting", mock.Anything, mock.Anything, mock.Anything)
}
