// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package scheduling

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validRequest() BookingRequest {
	return BookingRequest{
		Title:          "Sprint planning",
		RoomUID:        "room-1",
		Date:           date(2024, time.June, 3),
		Start:          TimeOfDay{Hour: 9},
		End:            TimeOfDay{Hour: 10},
		ParticipantIDs: []string{"user-1", "user-2"},
		ViewerIDs:      []string{"user-3"},
	}
}

func TestGetAvailability_Idempotent(t *testing.T) {
	busy := []BusyInterval{busyInterval("b1", "standup", "09:00", "09:30")}

	first := GetAvailability(busy)
	second := GetAvailability(busy)

	require.Len(t, first, SlotsPerDay)
	assert.Equal(t, first, second)
}

func TestPlanBooking_SingleBooking(t *testing.T) {
	drafts, err := PlanBooking(validRequest(), nil)
	require.NoError(t, err)

	require.Len(t, drafts, 1)
	assert.Equal(t, "Sprint planning", drafts[0].Title)
	assert.Equal(t, "room-1", drafts[0].RoomUID)
	assert.Equal(t, date(2024, time.June, 3), drafts[0].Date)
	assert.Equal(t, 1.0, drafts[0].Duration)
	assert.Empty(t, drafts[0].RecurrenceID, "non-recurring booking gets no recurrence identifier")
}

func TestPlanBooking_Validation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*BookingRequest)
		field  string
	}{
		{
			name:   "missing title",
			mutate: func(r *BookingRequest) { r.Title = "" },
			field:  "title",
		},
		{
			name:   "missing room",
			mutate: func(r *BookingRequest) { r.RoomUID = "" },
			field:  "room",
		},
		{
			name:   "missing date",
			mutate: func(r *BookingRequest) { r.Date = time.Time{} },
			field:  "date",
		},
		{
			name:   "inverted interval",
			mutate: func(r *BookingRequest) { r.Start, r.End = r.End, r.Start },
			field:  "time",
		},
		{
			name:   "zero-length interval",
			mutate: func(r *BookingRequest) { r.End = r.Start },
			field:  "time",
		},
		{
			name: "recurrence end before start",
			mutate: func(r *BookingRequest) {
				r.Recurrence = Rule{Type: FreqDaily, EndDate: date(2024, time.May, 1)}
			},
			field: "recurrence",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(&req)

			drafts, err := PlanBooking(req, nil)
			assert.Nil(t, drafts)

			var validationErr *ValidationError
			require.ErrorAs(t, err, &validationErr)
			assert.Equal(t, tt.field, validationErr.Field)
		})
	}
}

func TestPlanBooking_RecurringSeriesSharesOneIdentifier(t *testing.T) {
	req := validRequest()
	req.Recurrence = Rule{Type: FreqDaily, EndDate: date(2024, time.June, 7)}

	drafts, err := PlanBooking(req, nil)
	require.NoError(t, err)
	require.Len(t, drafts, 5)

	require.NotEmpty(t, drafts[0].RecurrenceID)
	for _, d := range drafts {
		assert.Equal(t, drafts[0].RecurrenceID, d.RecurrenceID)
	}
}

func TestPlanBooking_AllOrNothingOnConflict(t *testing.T) {
	req := validRequest()
	req.Recurrence = Rule{Type: FreqDaily, EndDate: date(2024, time.June, 7)}

	// Occurrence 3 of 5 (June 5th) collides with an existing booking.
	busyByDate := map[string][]BusyInterval{
		"2024-06-05": {busyInterval("existing-1", "all hands", "09:30", "11:00")},
	}

	drafts, err := PlanBooking(req, busyByDate)
	assert.Nil(t, drafts, "no partial series may be produced")

	var conflictErr *ConflictError
	require.ErrorAs(t, err, &conflictErr)
	assert.Equal(t, date(2024, time.June, 5), conflictErr.Date)
	assert.Equal(t, "existing-1", conflictErr.Booking.UID)
}

func TestPlanBooking_ConflictReportsFirstConflictingDate(t *testing.T) {
	req := validRequest()
	req.Recurrence = Rule{Type: FreqDaily, EndDate: date(2024, time.June, 7)}

	busy := []BusyInterval{busyInterval("existing-1", "all hands", "09:00", "10:00")}
	busyByDate := map[string][]BusyInterval{
		"2024-06-04": busy,
		"2024-06-06": busy,
	}

	_, err := PlanBooking(req, busyByDate)

	var conflictErr *ConflictError
	require.ErrorAs(t, err, &conflictErr)
	assert.Equal(t, date(2024, time.June, 4), conflictErr.Date)
}

func TestPlanBooking_TouchingBookingsDoNotConflict(t *testing.T) {
	req := validRequest()

	busyByDate := map[string][]BusyInterval{
		"2024-06-03": {
			busyInterval("before", "earlier", "08:00", "09:00"),
			busyInterval("after", "later", "10:00", "11:00"),
		},
	}

	drafts, err := PlanBooking(req, busyByDate)
	require.NoError(t, err)
	assert.Len(t, drafts, 1)
}

func TestPlanBooking_WeeklySeriesOccurrences(t *testing.T) {
	req := validRequest()
	// 2024-06-03 is a Monday.
	req.Recurrence = Rule{Type: FreqWeekly, EndDate: date(2024, time.June, 24)}

	drafts, err := PlanBooking(req, nil)
	require.NoError(t, err)

	require.Len(t, drafts, 4)
	assert.Equal(t, date(2024, time.June, 3), drafts[0].Date)
	assert.Equal(t, date(2024, time.June, 24), drafts[3].Date)
}

func TestPlanBooking_ErrorsAreTyped(t *testing.T) {
	req := validRequest()
	req.Title = ""
	_, err := PlanBooking(req, nil)

	var conflictErr *ConflictError
	assert.False(t, errors.As(err, &conflictErr))

	var validationErr *ValidationError
	assert.True(t, errors.As(err, &validationErr))
}
