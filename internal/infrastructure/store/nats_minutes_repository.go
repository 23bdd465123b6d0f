// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package store

import (
	"context"

	"github.com/google/uuid"

	"github.com/roombook/room-booking-service/internal/domain/models"
)

// NatsMinutesRepository is the NATS KV store repository for minutes
// documents. A meeting has at most one minutes document, so entries are
// keyed by the owning meeting UID.
type NatsMinutesRepository struct {
	*NatsBaseRepository[models.Minutes]
}

// NewNatsMinutesRepository creates a new NATS KV store repository for minutes.
func NewNatsMinutesRepository(kvStore INatsKeyValue) *NatsMinutesRepository {
	return &NatsMinutesRepository{
		NatsBaseRepository: NewNatsBaseRepository[models.Minutes](kvStore, "minutes"),
	}
}

// CreateMinutes stores a new minutes document for a meeting.
func (r *NatsMinutesRepository) CreateMinutes(ctx context.Context, minutes *models.Minutes) error {
	if minutes.UID == "" {
		minutes.UID = uuid.New().String()
	}
	return r.NatsBaseRepository.Create(ctx, minutes.MeetingUID, minutes)
}

// GetMinutesByMeeting retrieves the minutes document for a meeting.
func (r *NatsMinutesRepository) GetMinutesByMeeting(ctx context.Context, meetingUID string) (*models.Minutes, error) {
	return r.NatsBaseRepository.Get(ctx, meetingUID)
}

// GetMinutesByMeetingWithRevision retrieves the minutes document and its
// store revision for a meeting.
func (r *NatsMinutesRepository) GetMinutesByMeetingWithRevision(ctx context.Context, meetingUID string) (*models.Minutes, uint64, error) {
	return r.NatsBaseRepository.GetWithRevision(ctx, meetingUID)
}

// UpdateMinutes updates an existing minutes document with optimistic
// concurrency control.
func (r *NatsMinutesRepository) UpdateMinutes(ctx context.Context, minutes *models.Minutes, revision uint64) error {
	return r.NatsBaseRepository.Update(ctx, minutes.MeetingUID, minutes, revision)
}

// DeleteMinutesByMeeting removes the minutes document for a meeting.
func (r *NatsMinutesRepository) DeleteMinutesByMeeting(ctx context.Context, meetingUID string, revision uint64) error {
	return r.NatsBaseRepository.Delete(ctx, meetingUID, revision)
}

// MinutesExistForMeeting checks whether a meeting already has minutes.
func (r *NatsMinutesRepository) MinutesExistForMeeting(ctx context.Context, meetingUID string) (bool, error) {
	return r.NatsBaseRepository.Exists(ctx, meetingUID)
}
