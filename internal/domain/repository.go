// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package domain

import (
	"context"
	"time"

	"github.com/roombook/room-booking-service/internal/domain/models"
	"github.com/roombook/room-booking-service/internal/scheduling"
)

// MeetingRepository defines the interface for meeting storage operations.
// This interface can be implemented by different storage backends (NATS, PostgreSQL, etc.)
type MeetingRepository interface {
	CreateMeeting(ctx context.Context, meeting *models.Meeting) error
	MeetingExists(ctx context.Context, meetingUID string) (bool, error)
	DeleteMeeting(ctx context.Context, meetingUID string, revision uint64) error

	GetMeeting(ctx context.Context, meetingUID string) (*models.Meeting, error)
	GetMeetingWithRevision(ctx context.Context, meetingUID string) (*models.Meeting, uint64, error)

	// Bulk operations
	ListAllMeetings(ctx context.Context) ([]*models.Meeting, error)
	ListMeetingsByRoomAndDate(ctx context.Context, roomUID string, date time.Time) ([]*models.Meeting, error)
}

// ScheduleIndexRepository maintains the per-room/per-day busy-interval
// snapshot used by availability queries and booking planning. The record is
// the serialization point between reading a snapshot and committing new
// bookings for that room and day.
type ScheduleIndexRepository interface {
	GetBusyIntervals(ctx context.Context, roomUID string, date time.Time) ([]scheduling.BusyInterval, error)
	AddBusyInterval(ctx context.Context, roomUID string, date time.Time, busy scheduling.BusyInterval) error
	RemoveBusyInterval(ctx context.Context, roomUID string, date time.Time, bookingUID string) error
}

// MinutesRepository defines the interface for minutes document storage.
// Documents are keyed by the owning meeting UID.
type MinutesRepository interface {
	CreateMinutes(ctx context.Context, minutes *models.Minutes) error
	GetMinutesByMeeting(ctx context.Context, meetingUID string) (*models.Minutes, error)
	GetMinutesByMeetingWithRevision(ctx context.Context, meetingUID string) (*models.Minutes, uint64, error)
	UpdateMinutes(ctx context.Context, minutes *models.Minutes, revision uint64) error
	DeleteMinutesByMeeting(ctx context.Context, meetingUID string, revision uint64) error
	MinutesExistForMeeting(ctx context.Context, meetingUID string) (bool, error)
}

// UserRepository defines the interface for account storage operations.
type UserRepository interface {
	CreateUser(ctx context.Context, user *models.User) error
	GetUser(ctx context.Context, userUID string) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	UserExistsByEmail(ctx context.Context, email string) (bool, error)

	RecordActivity(ctx context.Context, activity *models.Activity) error
	ListActivities(ctx context.Context, userUID string) ([]*models.Activity, error)
}

// RoomRepository defines the interface for the room catalog.
type RoomRepository interface {
	PutRoom(ctx context.Context, room *models.Room) error
	GetRoom(ctx context.Context, roomUID string) (*models.Room, error)
	ListRooms(ctx context.Context) ([]*models.Room, error)
}
