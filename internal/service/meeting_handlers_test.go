// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package service

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/roombook/room-booking-service/internal/domain"
	"github.com/roombook/room-booking-service/internal/domain/mocks"
	"github.com/roombook/room-booking-service/internal/domain/models"
)

type handlerMocks struct {
	meetingRepo *mocks.MockMeetingRepository
	minutesRepo *mocks.MockMinutesRepository
}

func newMeetingHandler() (*MeetingHandler, *handlerMocks) {
	m := &handlerMocks{
		meetingRepo: &mocks.MockMeetingRepository{},
		minutesRepo: &mocks.MockMinutesRepository{},
	}
	meetingSvc := NewMeetingService(
		m.meetingRepo,
		&mocks.MockScheduleIndexRepository{},
		&mocks.MockRoomRepository{},
		&mocks.MockMessageBuilder{},
		ServiceConfig{},
	)
	minutesSvc := NewMinutesService(m.minutesRepo, m.meetingRepo, &mocks.MockMessageBuilder{}, ServiceConfig{})
	return NewMeetingHandler(meetingSvc, minutesSvc), m
}

func TestMeetingHandler_HandlerReady(t *testing.T) {
	handler, _ := newMeetingHandler()
	assert.True(t, handler.HandlerReady())

	assert.False(t, (&MeetingHandler{}).HandlerReady())
}

func TestMeetingHandler_GetTitleReply(t *testing.T) {
	handler, m := newMeetingHandler()
	ctx := context.Background()

	meetingUID := "8a8f7a84-19c1-4f4a-9c37-2f1e6a9d3b10"
	m.meetingRepo.On("GetMeeting", mock.Anything, meetingUID).
		Return(&models.Meeting{UID: meetingUID, Title: "Weekly Sync"}, nil)

	msg := &mocks.MockMessage{}
	msg.On("Subject").Return(models.MeetingGetTitleSubject)
	msg.On("Data").Return([]byte(meetingUID))
	msg.On("HasReply").Return(true)
	msg.On("Respond", []byte("Weekly Sync")).Return(nil)

	handler.HandleMessage(ctx, msg)
	msg.AssertExpectations(t)
}

func TestMeetingHandler_GetTitleInvalidUID(t *testing.T) {
	handler, _ := newMeetingHandler()

	msg := &mocks.MockMessage{}
	msg.On("Subject").Return(models.MeetingGetTitleSubject)
	msg.On("Data").Return([]byte("not-a-uuid"))
	msg.On("HasReply").Return(true)
	msg.On("Respond", []byte(nil)).Return(nil)

	handler.HandleMessage(context.Background(), msg)
	msg.AssertExpectations(t)
}

func TestMeetingHandler_UnknownSubject(t *testing.T) {
	handler, m := newMeetingHandler()

	msg := &mocks.MockMessage{}
	msg.On("Subject").Return("roombook.unknown.subject")
	msg.On("HasReply").Return(true)
	msg.On("Respond", []byte(nil)).Return(nil)

	handler.HandleMessage(context.Background(), msg)
	msg.AssertExpectations(t)
	m.meetingRepo.AssertNotCalled(t, "GetMeeting", mock.Anything, mock.Anything)
}

func TestMeetingHandler_MeetingDeletedCleansUpMinutes(t *testing.T) {
	handler, m := newMeetingHandler()
	ctx := context.Background()

	payload, err := json.Marshal(models.MeetingDeletedMessage{
		MeetingUID: "meeting-1",
		RoomUID:    "room-1",
		Date:       "2024-06-03",
	})
	require.NoError(t, err)

	m.minutesRepo.On("GetMinutesByMeetingWithRevision", mock.Anything, "meeting-1").
		Return(&models.Minutes{UID: "minutes-1", MeetingUID: "meeting-1"}, uint64(4), nil)
	m.minutesRepo.On("DeleteMinutesByMeeting", mock.Anything, "meeting-1", uint64(4)).Return(nil)
	handler.MinutesService.MessageBuilder.(*mocks.MockMessageBuilder).
		On("SendDeleteIndexMinutes", mock.Anything, "minutes-1").Return(nil)

	msg := &mocks.MockMessage{}
	msg.On("Subject").Return(models.MeetingDeletedSubject)
	msg.On("Data").Return(payload)
	msg.On("HasReply").Return(false)

	handler.HandleMessage(ctx, msg)
	m.minutesRepo.AssertExpectations(t)
}

func TestMeetingHandler_MeetingDeletedNoMinutes(t *testing.T) {
	handler, m := newMeetingHandler()

	payload, err := json.Marshal(models.MeetingDeletedMessage{MeetingUID: "meeting-2"})
	require.NoError(t, err)

	m.minutesRepo.On("GetMinutesByMeetingWithRevision", mock.Anything, "meeting-2").
		Return(nil, uint64(0), domain.NewNotFoundError("minutes not found"))

	msg := &mocks.MockMessage{}
	msg.On("Subject").Return(models.MeetingDeletedSubject)
	msg.On("Data").Return(payload)
	msg.On("HasReply").Return(false)

	handler.HandleMessage(context.Background(), msg)
	m.minutesRepo.AssertNotCalled(t, "DeleteMinutesByMeeting", mock.Anything, mock.Anything, mock.Anything)
}
