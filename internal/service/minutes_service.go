// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/roombook/room-booking-service/internal/domain"
	"github.com/roombook/room-booking-service/internal/domain/models"
	"github.com/roombook/room-booking-service/internal/logging"
	"github.com/roombook/room-booking-service/internal/scheduling"
	"github.com/roombook/room-booking-service/pkg/utils"
)

// MinutesService implements the minutes document operations. Access to a
// meeting's minutes is granted by membership in the meeting's participant or
// viewer set; free-form meeting minutes are gated by permission tags instead.
type MinutesService struct {
	MinutesRepository domain.MinutesRepository
	MeetingRepository domain.MeetingRepository
	MessageBuilder    domain.MessageBuilder
	Config            ServiceConfig
}

// NewMinutesService creates a new MinutesService.
func NewMinutesService(
	minutesRepository domain.MinutesRepository,
	meetingRepository domain.MeetingRepository,
	messageBuilder domain.MessageBuilder,
	config ServiceConfig,
) *MinutesService {
	return &MinutesService{
		MinutesRepository: minutesRepository,
		MeetingRepository: meetingRepository,
		MessageBuilder:    messageBuilder,
		Config:            config,
	}
}

// ServiceReady checks if the service is ready for use.
func (s *MinutesService) ServiceReady() bool {
	return s.MinutesRepository != nil &&
		s.MeetingRepository != nil &&
		s.MessageBuilder != nil
}

// authorize resolves the meeting and checks the caller's access to its
// minutes. Free-form meetings use permission tags; booked meetings use the
// membership sets.
func (s *MinutesService) authorize(ctx context.Context, identity models.Identity, meetingUID string, write bool) (*models.Meeting, error) {
	meeting, err := s.MeetingRepository.GetMeeting(ctx, meetingUID)
	if err != nil {
		return nil, err
	}

	if meeting.FreeForm {
		tag := models.PermissionViewFreeMinutes
		if write {
			tag = models.PermissionCreateFreeMinutes
		}
		if !identity.HasPermission(tag) {
			return nil, domain.NewForbiddenError("missing free-form minutes permission")
		}
		return meeting, nil
	}

	decision := scheduling.CheckMinutesAccess(identity, meeting.ParticipantIDs, meeting.ViewerIDs)
	if !decision.Allowed {
		slog.WarnContext(ctx, "minutes access denied",
			"meeting_uid", meetingUID, "user_id", identity.UserID)
		return nil, domain.NewForbiddenError("not a participant or viewer of this meeting")
	}

	slog.DebugContext(ctx, "minutes access granted",
		"meeting_uid", meetingUID, "matched", string(decision.Matched))

	return meeting, nil
}

// CreateMinutes attaches a minutes document to a meeting. A meeting holds at
// most one document.
func (s *MinutesService) CreateMinutes(ctx context.Context, identity models.Identity, minutes *models.Minutes) (*models.Minutes, error) {
	if !s.ServiceReady() {
		slog.ErrorContext(ctx, "service not initialized", logging.PriorityCritical())
		return nil, domain.NewUnavailableError("minutes service not ready")
	}
	if minutes == nil || minutes.MeetingUID == "" {
		return nil, domain.NewValidationError("meeting UID is required")
	}

	if _, err := s.authorize(ctx, identity, minutes.MeetingUID, true); err != nil {
		return nil, err
	}

	exists, err := s.MinutesRepository.MinutesExistForMeeting(ctx, minutes.MeetingUID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.NewConflictError("meeting already has minutes")
	}

	minutes.CreatedAt = utils.TimePtr(time.Now().UTC())

	if err := s.MinutesRepository.CreateMinutes(ctx, minutes); err != nil {
		return nil, err
	}

	s.publishIndexed(ctx, models.ActionCreated, minutes)

	return minutes, nil
}

// GetMinutes fetches the minutes document for a meeting.
func (s *MinutesService) GetMinutes(ctx context.Context, identity models.Identity, meetingUID string) (*models.Minutes, error) {
	if !s.ServiceReady() {
		return nil, domain.NewUnavailableError("minutes service not ready")
	}
	if meetingUID == "" {
		return nil, domain.NewValidationError("meeting UID is required")
	}

	if _, err := s.authorize(ctx, identity, meetingUID, false); err != nil {
		return nil, err
	}

	return s.MinutesRepository.GetMinutesByMeeting(ctx, meetingUID)
}

// UpdateMinutes replaces the minutes document for a meeting.
func (s *MinutesService) UpdateMinutes(ctx context.Context, identity models.Identity, minutes *models.Minutes, revision uint64) (*models.Minutes, error) {
	if !s.ServiceReady() {
		return nil, domain.NewUnavailableError("minutes service not ready")
	}
	if minutes == nil || minutes.MeetingUID == "" {
		return nil, domain.NewValidationError("meeting UID is required")
	}

	if _, err := s.authorize(ctx, identity, minutes.MeetingUID, true); err != nil {
		return nil, err
	}

	existing, storedRevision, err := s.MinutesRepository.GetMinutesByMeetingWithRevision(ctx, minutes.MeetingUID)
	if err != nil {
		return nil, err
	}

	if revision == 0 || s.Config.SkipEtagValidation {
		revision = storedRevision
	}

	minutes.UID = existing.UID
	minutes.CreatedAt = existing.CreatedAt
	minutes.UpdatedAt = utils.TimePtr(time.Now().UTC())

	if err := s.MinutesRepository.UpdateMinutes(ctx, minutes, revision); err != nil {
		return nil, err
	}

	s.publishIndexed(ctx, models.ActionUpdated, minutes)

	return minutes, nil
}

// DeleteMinutes removes the minutes document for a meeting.
func (s *MinutesService) DeleteMinutes(ctx context.Context, identity models.Identity, meetingUID string, revision uint64) error {
	if !s.ServiceReady() {
		return domain.NewUnavailableError("minutes service not ready")
	}
	if meetingUID == "" {
		return domain.NewValidationError("meeting UID is required")
	}

	if _, err := s.authorize(ctx, identity, meetingUID, true); err != nil {
		return err
	}

	minutes, storedRevision, err := s.MinutesRepository.GetMinutesByMeetingWithRevision(ctx, meetingUID)
	if err != nil {
		return err
	}

	if revision == 0 || s.Config.SkipEtagValidation {
		revision = storedRevision
	}

	if err := s.MinutesRepository.DeleteMinutesByMeeting(ctx, meetingUID, revision); err != nil {
		return err
	}

	if err := s.MessageBuilder.SendDeleteIndexMinutes(ctx, minutes.UID); err != nil {
		slog.ErrorContext(ctx, "failed to publish minutes deletion message", logging.ErrKey, err,
			"meeting_uid", meetingUID)
	}

	return nil
}

// CleanupMinutesForMeeting removes the minutes attached to a deleted
// meeting, if any. Called from the meeting-deleted event handler, so there
// is no caller identity to check.
func (s *MinutesService) CleanupMinutesForMeeting(ctx context.Context, meetingUID string) error {
	if !s.ServiceReady() {
		return domain.NewUnavailableError("minutes service not ready")
	}

	minutes, revision, err := s.MinutesRepository.GetMinutesByMeetingWithRevision(ctx, meetingUID)
	if err != nil {
		if domain.GetErrorType(err) == domain.ErrorTypeNotFound {
			return nil
		}
		return err
	}

	if err := s.MinutesRepository.DeleteMinutesByMeeting(ctx, meetingUID, revision); err != nil {
		return err
	}

	if err := s.MessageBuilder.SendDeleteIndexMinutes(ctx, minutes.UID); err != nil {
		slog.ErrorContext(ctx, "failed to publish minutes deletion message", logging.ErrKey, err,
			"meeting_uid", meetingUID)
	}

	slog.DebugContext(ctx, "cleaned up minutes for deleted meeting", "meeting_uid", meetingUID)

	return nil
}

// publishIndexed sends the indexer message for a minutes write. Messaging
// failures are logged, not returned; the document is committed.
func (s *MinutesService) publishIndexed(ctx context.Context, action models.MessageAction, minutes *models.Minutes) {
	if err := s.MessageBuilder.SendIndexMinutes(ctx, action, *minutes); err != nil {
		slog.ErrorContext(ctx, "failed to publish minutes index message", logging.ErrKey, err,
			"meeting_uid", minutes.MeetingUID)
	}
}
