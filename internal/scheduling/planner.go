// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package scheduling

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// BookingRequest is a candidate booking before planning.
type BookingRequest struct {
	Title          string
	RoomUID        string
	Date           time.Time
	Start          TimeOfDay
	End            TimeOfDay
	Recurrence     Rule
	ParticipantIDs []string
	ViewerIDs      []string
}

// Draft is one planned meeting instance ready to persist. All drafts of a
// recurring request share the same RecurrenceID; a non-recurring request
// produces a single draft with no RecurrenceID.
type Draft struct {
	Title          string
	RoomUID        string
	Date           time.Time
	Start          TimeOfDay
	End            TimeOfDay
	Duration       float64
	RecurrenceID   string
	ParticipantIDs []string
	ViewerIDs      []string
}

// ValidationError reports malformed booking input. It is always surfaced to
// the caller before any occurrence is planned.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// ConflictError reports the first occurrence of a planned series that
// overlaps an existing booking. Planning is all-or-nothing: one conflict
// rejects the whole series and no drafts are produced.
type ConflictError struct {
	Date    time.Time
	Booking BusyInterval
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("room already booked on %s from %s to %s",
		e.Date.Format(time.DateOnly), e.Booking.Start, e.Booking.End)
}

// GetAvailability projects the busy set for one room and day onto the
// canonical slot grid. Pure; identical inputs yield identical output.
func GetAvailability(busy []BusyInterval) []Slot {
	return SlotAvailability(GenerateSlots(), busy)
}

// PlanBooking validates a candidate booking, expands its recurrence rule,
// and checks every occurrence date against that date's existing bookings in
// busyByDate (keyed by DateKey). It returns either one draft per occurrence
// or the error that rejected the whole request. It never persists anything;
// the caller owns the read-snapshot-to-commit consistency window.
func PlanBooking(req BookingRequest, busyByDate map[string][]BusyInterval) ([]Draft, error) {
	if err := validateBookingRequest(req); err != nil {
		return nil, err
	}

	dates, err := Expand(req.Date, req.Recurrence)
	if err != nil {
		return nil, &ValidationError{Field: "recurrence", Reason: err.Error()}
	}
	if len(dates) == 0 {
		return nil, &ValidationError{Field: "recurrence", Reason: "end date precedes the meeting date"}
	}

	candidate := Interval{Start: req.Start, End: req.End}
	for _, date := range dates {
		if booking, conflict := HasConflict(candidate, busyByDate[DateKey(date)]); conflict {
			return nil, &ConflictError{Date: date, Booking: booking}
		}
	}

	recurring := req.Recurrence.Type != FreqNone && req.Recurrence.Type != ""
	var recurrenceID string
	if recurring {
		recurrenceID = uuid.New().String()
	}

	drafts := make([]Draft, len(dates))
	for i, date := range dates {
		drafts[i] = Draft{
			Title:          req.Title,
			RoomUID:        req.RoomUID,
			Date:           date,
			Start:          req.Start,
			End:            req.End,
			Duration:       DurationHours(req.Start, req.End),
			RecurrenceID:   recurrenceID,
			ParticipantIDs: req.ParticipantIDs,
			ViewerIDs:      req.ViewerIDs,
		}
	}

	return drafts, nil
}

func validateBookingRequest(req BookingRequest) error {
	if req.Title == "" {
		return &ValidationError{Field: "title", Reason: "must not be empty"}
	}
	if req.RoomUID == "" {
		return &ValidationError{Field: "room", Reason: "must not be empty"}
	}
	if req.Date.IsZero() {
		return &ValidationError{Field: "date", Reason: "must be provided"}
	}
	if !(Interval{Start: req.Start, End: req.End}).Valid() {
		return &ValidationError{Field: "time", Reason: "start must be strictly before end"}
	}
	return nil
}
