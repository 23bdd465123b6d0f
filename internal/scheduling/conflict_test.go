// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package scheduling

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func interval(start, end string) Interval {
	s, err := ParseTimeOfDay(start)
	if err != nil {
		panic(err)
	}
	e, err := ParseTimeOfDay(end)
	if err != nil {
		panic(err)
	}
	return Interval{Start: s, End: e}
}

func busyInterval(uid, title, start, end string) BusyInterval {
	iv := interval(start, end)
	return BusyInterval{UID: uid, Title: title, Start: iv.Start, End: iv.End}
}

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name string
		a    Interval
		b    Interval
		want bool
	}{
		{
			name: "identical intervals overlap",
			a:    interval("09:00", "10:00"),
			b:    interval("09:00", "10:00"),
			want: true,
		},
		{
			name: "touching endpoints do not overlap",
			a:    interval("09:00", "10:00"),
			b:    interval("10:00", "11:00"),
			want: false,
		},
		{
			name: "touching endpoints reversed order",
			a:    interval("10:00", "11:00"),
			b:    interval("09:00", "10:00"),
			want: false,
		},
		{
			name: "partial overlap",
			a:    interval("09:00", "10:30"),
			b:    interval("10:00", "11:00"),
			want: true,
		},
		{
			name: "containment",
			a:    interval("09:00", "12:00"),
			b:    interval("10:00", "10:30"),
			want: true,
		},
		{
			name: "disjoint",
			a:    interval("08:00", "09:00"),
			b:    interval("14:00", "15:00"),
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Overlaps(tt.a, tt.b))
			assert.Equal(t, tt.want, Overlaps(tt.b, tt.a), "overlap must be symmetric")
		})
	}
}

func TestInterval_Valid(t *testing.T) {
	assert.True(t, interval("09:00", "09:30").Valid())
	assert.False(t, interval("09:00", "09:00").Valid(), "zero-length interval is malformed")
	assert.False(t, interval("10:00", "09:00").Valid(), "inverted interval is malformed")
}

func TestSlotAvailability(t *testing.T) {
	grid := GenerateSlots()

	t.Run("no bookings leaves every slot free", func(t *testing.T) {
		slots := SlotAvailability(grid, nil)
		require.Len(t, slots, 21)
		for _, s := range slots {
			assert.True(t, s.Available, "slot %s should be free", s.Time)
		}
	})

	t.Run("booking covers its start slots but not its end boundary", func(t *testing.T) {
		busy := []BusyInterval{busyInterval("b1", "standup", "09:00", "10:00")}
		byTime := map[string]bool{}
		for _, s := range SlotAvailability(grid, busy) {
			byTime[s.Time.String()] = s.Available
		}

		assert.False(t, byTime["09:00"])
		assert.False(t, byTime["09:30"])
		assert.True(t, byTime["10:00"], "end boundary belongs to the next booking")
		assert.True(t, byTime["08:30"])
	})

	t.Run("off-grid booking only blocks slots whose start instant it covers", func(t *testing.T) {
		// The probe checks each grid point's start instant only. A booking
		// from 09:15 to 09:45 covers the 09:30 instant but neither 09:00
		// nor 09:45-10:00, so only 09:30 reads busy.
		busy := []BusyInterval{busyInterval("b1", "sync", "09:15", "09:45")}
		byTime := map[string]bool{}
		for _, s := range SlotAvailability(grid, busy) {
			byTime[s.Time.String()] = s.Available
		}

		assert.True(t, byTime["09:00"])
		assert.False(t, byTime["09:30"])
		assert.True(t, byTime["10:00"])
	})

	t.Run("idempotent over the same busy set", func(t *testing.T) {
		busy := []BusyInterval{
			busyInterval("b1", "standup", "09:00", "10:00"),
			busyInterval("b2", "review", "15:30", "17:00"),
		}
		assert.Equal(t, SlotAvailability(grid, busy), SlotAvailability(grid, busy))
	})
}

func TestHasConflict(t *testing.T) {
	busy := []BusyInterval{
		busyInterval("b1", "standup", "09:00", "09:30"),
		busyInterval("b2", "review", "14:00", "15:30"),
	}

	tests := []struct {
		name      string
		candidate Interval
		wantUID   string
		want      bool
	}{
		{
			name:      "free gap",
			candidate: interval("10:00", "11:00"),
			want:      false,
		},
		{
			name:      "touching an existing booking is allowed",
			candidate: interval("09:30", "10:00"),
			want:      false,
		},
		{
			name:      "overlapping the first booking",
			candidate: interval("08:30", "09:15"),
			wantUID:   "b1",
			want:      true,
		},
		{
			name:      "contained in the second booking",
			candidate: interval("14:30", "15:00"),
			wantUID:   "b2",
			want:      true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, conflict := HasConflict(tt.candidate, busy)
			assert.Equal(t, tt.want, conflict)
			if tt.want {
				assert.Equal(t, tt.wantUID, got.UID)
			}
		})
	}
}
