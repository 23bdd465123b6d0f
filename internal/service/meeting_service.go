// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package service

import (
	"context"
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/roombook/room-booking-service/internal/domain"
	"github.com/roombook/room-booking-service/internal/domain/models"
	"github.com/roombook/room-booking-service/internal/logging"
	"github.com/roombook/room-booking-service/internal/scheduling"
	"github.com/roombook/room-booking-service/pkg/concurrent"
	"github.com/roombook/room-booking-service/pkg/utils"
)

// MeetingService implements the booking operations and owns the
// read-snapshot-to-commit window around the planner.
type MeetingService struct {
	MeetingRepository domain.MeetingRepository
	ScheduleIndex     domain.ScheduleIndexRepository
	RoomRepository    domain.RoomRepository
	MessageBuilder    domain.MessageBuilder
	Config            ServiceConfig
}

// NewMeetingService creates a new MeetingService.
func NewMeetingService(
	meetingRepository domain.MeetingRepository,
	scheduleIndex domain.ScheduleIndexRepository,
	roomRepository domain.RoomRepository,
	messageBuilder domain.MessageBuilder,
	config ServiceConfig,
) *MeetingService {
	return &MeetingService{
		MeetingRepository: meetingRepository,
		ScheduleIndex:     scheduleIndex,
		RoomRepository:    roomRepository,
		MessageBuilder:    messageBuilder,
		Config:            config,
	}
}

// ServiceReady checks if the service is ready for use.
func (s *MeetingService) ServiceReady() bool {
	return s.MeetingRepository != nil &&
		s.ScheduleIndex != nil &&
		s.RoomRepository != nil &&
		s.MessageBuilder != nil
}

// GetMeetings fetches all meetings.
func (s *MeetingService) GetMeetings(ctx context.Context) ([]*models.Meeting, error) {
	if !s.ServiceReady() {
		slog.ErrorContext(ctx, "service not initialized", logging.PriorityCritical())
		return nil, domain.NewUnavailableError("meeting service not ready")
	}

	meetings, err := s.MeetingRepository.ListAllMeetings(ctx)
	if err != nil {
		return nil, err
	}

	slog.DebugContext(ctx, "returning meetings", "count", len(meetings))

	return meetings, nil
}

// GetMeetingsByRoomAndDate fetches the meetings booked in one room on one
// day, start time ascending.
func (s *MeetingService) GetMeetingsByRoomAndDate(ctx context.Context, roomUID string, date time.Time) ([]*models.Meeting, error) {
	if !s.ServiceReady() {
		return nil, domain.NewUnavailableError("meeting service not ready")
	}
	if roomUID == "" {
		return nil, domain.NewValidationError("room UID is required")
	}
	if date.IsZero() {
		return nil, domain.NewValidationError("date is required")
	}

	meetings, err := s.MeetingRepository.ListMeetingsByRoomAndDate(ctx, roomUID, date)
	if err != nil {
		return nil, err
	}

	sort.Slice(meetings, func(i, j int) bool {
		return meetings[i].StartTime < meetings[j].StartTime
	})

	return meetings, nil
}

// GetMeeting fetches a single meeting by UID.
func (s *MeetingService) GetMeeting(ctx context.Context, meetingUID string) (*models.Meeting, error) {
	if !s.ServiceReady() {
		return nil, domain.NewUnavailableError("meeting service not ready")
	}
	if meetingUID == "" {
		return nil, domain.NewValidationError("meeting UID is required")
	}

	return s.MeetingRepository.GetMeeting(ctx, meetingUID)
}

// GetAvailability projects a room's committed bookings for one day onto the
// slot grid.
func (s *MeetingService) GetAvailability(ctx context.Context, roomUID string, date time.Time) ([]scheduling.Slot, error) {
	if !s.ServiceReady() {
		return nil, domain.NewUnavailableError("meeting service not ready")
	}
	if roomUID == "" {
		return nil, domain.NewValidationError("room UID is required")
	}
	if date.IsZero() {
		return nil, domain.NewValidationError("date is required")
	}

	if _, err := s.RoomRepository.GetRoom(ctx, roomUID); err != nil {
		return nil, err
	}

	busy, err := s.ScheduleIndex.GetBusyIntervals(ctx, roomUID, date)
	if err != nil {
		return nil, err
	}

	return scheduling.GetAvailability(busy), nil
}

// CreateMeeting plans a booking request against the room's committed
// schedule and persists one meeting instance per occurrence. Planning is
// all-or-nothing: a conflict on any occurrence rejects the whole request.
func (s *MeetingService) CreateMeeting(ctx context.Context, req scheduling.BookingRequest) ([]*models.Meeting, error) {
	if !s.ServiceReady() {
		slog.ErrorContext(ctx, "service not initialized", logging.PriorityCritical())
		return nil, domain.NewUnavailableError("meeting service not ready")
	}

	room, err := s.RoomRepository.GetRoom(ctx, req.RoomUID)
	if err != nil {
		return nil, err
	}

	// Expansion errors re-surface from PlanBooking; here the dates only
	// drive snapshot loading.
	dates, _ := scheduling.Expand(req.Date, req.Recurrence)

	busyByDate, err := s.loadBusySnapshots(ctx, req.RoomUID, dates)
	if err != nil {
		return nil, err
	}

	drafts, err := scheduling.PlanBooking(req, busyByDate)
	if err != nil {
		slog.WarnContext(ctx, "booking request rejected", logging.ErrKey, err,
			"room_uid", req.RoomUID, "title", req.Title)
		return nil, err
	}

	meetings := make([]*models.Meeting, 0, len(drafts))
	for _, draft := range drafts {
		meeting := s.meetingFromDraft(draft, room)

		if err := s.MeetingRepository.CreateMeeting(ctx, meeting); err != nil {
			s.rollbackCreated(ctx, meetings)
			return nil, err
		}

		busy := scheduling.BusyInterval{
			UID:   meeting.UID,
			Title: meeting.Title,
			Start: draft.Start,
			End:   draft.End,
		}
		if err := s.ScheduleIndex.AddBusyInterval(ctx, meeting.RoomUID, meeting.Date, busy); err != nil {
			s.rollbackCreated(ctx, append(meetings, meeting))
			return nil, err
		}

		meetings = append(meetings, meeting)
	}

	s.publishCreated(ctx, meetings)

	slog.DebugContext(ctx, "created meeting instances",
		"count", len(meetings), "room_uid", req.RoomUID)

	return meetings, nil
}

// CreateFreeFormMeeting records a meeting that is not tied to a bookable
// room. Free-form meetings bypass the schedule index entirely.
func (s *MeetingService) CreateFreeFormMeeting(ctx context.Context, meeting *models.Meeting) (*models.Meeting, error) {
	if !s.ServiceReady() {
		return nil, domain.NewUnavailableError("meeting service not ready")
	}
	if meeting == nil || meeting.Title == "" {
		return nil, domain.NewValidationError("meeting title is required")
	}
	if meeting.Date.IsZero() {
		return nil, domain.NewValidationError("meeting date is required")
	}

	meeting.UID = uuid.New().String()
	meeting.RoomUID = models.FreeFormRoomUID
	meeting.RoomName = ""
	meeting.FreeForm = true
	meeting.CreatedAt = utils.TimePtr(time.Now().UTC())

	if err := s.MeetingRepository.CreateMeeting(ctx, meeting); err != nil {
		return nil, err
	}

	s.publishCreated(ctx, []*models.Meeting{meeting})

	return meeting, nil
}

// DeleteMeeting removes one meeting instance and its busy interval, then
// fans out the deletion to the indexer, the access-control service, and our
// own cleanup handler. Deleting a series member never cascades to its
// siblings.
func (s *MeetingService) DeleteMeeting(ctx context.Context, meetingUID string, revision uint64) error {
	if !s.ServiceReady() {
		return domain.NewUnavailableError("meeting service not ready")
	}
	if meetingUID == "" {
		return domain.NewValidationError("meeting UID is required")
	}

	meeting, storedRevision, err := s.MeetingRepository.GetMeetingWithRevision(ctx, meetingUID)
	if err != nil {
		return err
	}

	if revision == 0 || s.Config.SkipEtagValidation {
		revision = storedRevision
	}

	if err := s.MeetingRepository.DeleteMeeting(ctx, meetingUID, revision); err != nil {
		return err
	}

	if !meeting.FreeForm {
		if err := s.ScheduleIndex.RemoveBusyInterval(ctx, meeting.RoomUID, meeting.Date, meetingUID); err != nil {
			slog.ErrorContext(ctx, "failed to remove busy interval", logging.ErrKey, err,
				"meeting_uid", meetingUID, "room_uid", meeting.RoomUID)
		}
	}

	pool := concurrent.NewWorkerPool(3)
	errs := pool.RunAll(ctx,
		func() error {
			return s.MessageBuilder.SendDeleteIndexMeeting(ctx, meetingUID)
		},
		func() error {
			return s.MessageBuilder.SendDeleteAllAccessMeeting(ctx, meetingUID)
		},
		func() error {
			return s.MessageBuilder.SendMeetingDeleted(ctx, models.MeetingDeletedMessage{
				MeetingUID: meetingUID,
				RoomUID:    meeting.RoomUID,
				Date:       meeting.DateKey(),
			})
		},
	)
	for _, err := range errs {
		slog.ErrorContext(ctx, "failed to publish meeting deletion message", logging.ErrKey, err,
			"meeting_uid", meetingUID)
	}

	slog.DebugContext(ctx, "deleted meeting", "meeting_uid", meetingUID)

	return nil
}

// loadBusySnapshots reads the busy-interval records for every occurrence
// date concurrently and keys them the way the planner expects.
func (s *MeetingService) loadBusySnapshots(ctx context.Context, roomUID string, dates []time.Time) (map[string][]scheduling.BusyInterval, error) {
	busyByDate := make(map[string][]scheduling.BusyInterval, len(dates))
	if len(dates) == 0 {
		return busyByDate, nil
	}

	var mu sync.Mutex
	tasks := make([]func() error, 0, len(dates))
	for _, date := range dates {
		date := date
		tasks = append(tasks, func() error {
			busy, err := s.ScheduleIndex.GetBusyIntervals(ctx, roomUID, date)
			if err != nil {
				return err
			}
			mu.Lock()
			busyByDate[scheduling.DateKey(date)] = busy
			mu.Unlock()
			return nil
		})
	}

	pool := concurrent.NewWorkerPool(10)
	if err := pool.Run(ctx, tasks...); err != nil {
		return nil, err
	}

	return busyByDate, nil
}

// meetingFromDraft materializes a planned draft as a storable meeting.
func (s *MeetingService) meetingFromDraft(draft scheduling.Draft, room *models.Room) *models.Meeting {
	meeting := &models.Meeting{
		UID:            uuid.New().String(),
		Title:          draft.Title,
		Date:           draft.Date,
		StartTime:      draft.Start.String(),
		EndTime:        draft.End.String(),
		Duration:       draft.Duration,
		RoomUID:        draft.RoomUID,
		RoomName:       room.Name,
		RecurrenceID:   draft.RecurrenceID,
		ParticipantIDs: draft.ParticipantIDs,
		ViewerIDs:      draft.ViewerIDs,
		CreatedAt:      utils.TimePtr(time.Now().UTC()),
	}
	return meeting
}

// publishCreated fans out indexer and access messages for new meetings.
// Messaging failures are logged, not returned; the bookings are committed.
func (s *MeetingService) publishCreated(ctx context.Context, meetings []*models.Meeting) {
	var tasks []func() error
	for _, meeting := range meetings {
		meeting := meeting
		tasks = append(tasks,
			func() error {
				return s.MessageBuilder.SendIndexMeeting(ctx, models.ActionCreated, *meeting)
			},
			func() error {
				return s.MessageBuilder.SendUpdateAccessMeeting(ctx, models.MeetingAccessMessage{
					UID:          meeting.UID,
					Public:       meeting.FreeForm,
					Participants: meeting.ParticipantIDs,
					Viewers:      meeting.ViewerIDs,
				})
			},
		)
	}

	pool := concurrent.NewWorkerPool(10)
	for _, err := range pool.RunAll(ctx, tasks...) {
		slog.ErrorContext(ctx, "failed to publish meeting creation message", logging.ErrKey, err)
	}
}

// rollbackCreated best-effort removes instances committed before a
// mid-series storage failure.
func (s *MeetingService) rollbackCreated(ctx context.Context, meetings []*models.Meeting) {
	for _, meeting := range meetings {
		_, revision, err := s.MeetingRepository.GetMeetingWithRevision(ctx, meeting.UID)
		if err == nil {
			err = s.MeetingRepository.DeleteMeeting(ctx, meeting.UID, revision)
		}
		if err != nil {
			slog.ErrorContext(ctx, "failed to roll back meeting instance", logging.ErrKey, err,
				"meeting_uid", meeting.UID)
		}
		if err := s.ScheduleIndex.RemoveBusyInterval(ctx, meeting.RoomUID, meeting.Date, meeting.UID); err != nil {
			slog.ErrorContext(ctx, "failed to roll back busy interval", logging.ErrKey, err,
				"meeting_uid", meeting.UID)
		}
	}
}
