// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package store

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/roombook/room-booking-service/internal/domain/models"
)

// NatsMeetingRepository is the NATS KV store repository for meetings.
// Meetings are keyed directly by their UID.
type NatsMeetingRepository struct {
	*NatsBaseRepository[models.Meeting]
}

// NewNatsMeetingRepository creates a new NATS KV store repository for meetings.
func NewNatsMeetingRepository(kvStore INatsKeyValue) *NatsMeetingRepository {
	return &NatsMeetingRepository{
		NatsBaseRepository: NewNatsBaseRepository[models.Meeting](kvStore, "meeting"),
	}
}

// CreateMeeting stores a new meeting instance.
func (r *NatsMeetingRepository) CreateMeeting(ctx context.Context, meeting *models.Meeting) error {
	if meeting.UID == "" {
		meeting.UID = uuid.New().String()
	}
	return r.NatsBaseRepository.Create(ctx, meeting.UID, meeting)
}

// MeetingExists checks whether a meeting with the given UID exists.
func (r *NatsMeetingRepository) MeetingExists(ctx context.Context, meetingUID string) (bool, error) {
	return r.NatsBaseRepository.Exists(ctx, meetingUID)
}

// GetMeeting retrieves a meeting by UID.
func (r *NatsMeetingRepository) GetMeeting(ctx context.Context, meetingUID string) (*models.Meeting, error) {
	return r.NatsBaseRepository.Get(ctx, meetingUID)
}

// GetMeetingWithRevision retrieves a meeting and its store revision by UID.
func (r *NatsMeetingRepository) GetMeetingWithRevision(ctx context.Context, meetingUID string) (*models.Meeting, uint64, error) {
	return r.NatsBaseRepository.GetWithRevision(ctx, meetingUID)
}

// DeleteMeeting removes a meeting with optimistic concurrency control.
func (r *NatsMeetingRepository) DeleteMeeting(ctx context.Context, meetingUID string, revision uint64) error {
	return r.NatsBaseRepository.Delete(ctx, meetingUID, revision)
}

// ListAllMeetings lists every stored meeting instance.
func (r *NatsMeetingRepository) ListAllMeetings(ctx context.Context) ([]*models.Meeting, error) {
	return r.ListEntities(ctx, "")
}

// ListMeetingsByRoomAndDate lists the meetings booked in a room on a given day.
func (r *NatsMeetingRepository) ListMeetingsByRoomAndDate(ctx context.Context, roomUID string, date time.Time) ([]*models.Meeting, error) {
	meetings, err := r.ListAllMeetings(ctx)
	if err != nil {
		return nil, err
	}

	dateKey := date.Format(time.DateOnly)
	var matching []*models.Meeting
	for _, meeting := range meetings {
		if meeting.RoomUID == roomUID && meeting.DateKey() == dateKey {
			matching = append(matching, meeting)
		}
	}

	return matching, nil
}
