// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

// Package scheduling contains the pure scheduling and availability engine:
// the daily slot grid, booking conflict detection, recurrence expansion,
// series planning, and the minutes access decision. Nothing in this package
// performs I/O; callers supply snapshots of existing bookings and persist
// the returned drafts themselves.
package scheduling

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// The bookable business day: 08:00 through 18:00 at 30-minute steps,
// 21 grid points per day.
const (
	gridStartHour   = 8
	gridEndHour     = 18
	slotStepMinutes = 30

	// SlotsPerDay is the number of grid points in one business day.
	SlotsPerDay = (gridEndHour-gridStartHour)*60/slotStepMinutes + 1
)

// TimeOfDay is a wall-clock time within one calendar day. There is no
// timezone at this layer; callers supply already-localized dates. Ordering
// is total via the minutes-since-midnight mapping.
type TimeOfDay struct {
	Hour   int
	Minute int
}

// ParseTimeOfDay parses an "HH:MM" clock string.
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	hh, mm, ok := strings.Cut(s, ":")
	if !ok {
		return TimeOfDay{}, fmt.Errorf("invalid time of day %q", s)
	}
	hour, err := strconv.Atoi(hh)
	if err != nil {
		return TimeOfDay{}, fmt.Errorf("invalid time of day %q", s)
	}
	minute, err := strconv.Atoi(mm)
	if err != nil {
		return TimeOfDay{}, fmt.Errorf("invalid time of day %q", s)
	}
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return TimeOfDay{}, fmt.Errorf("time of day %q out of range", s)
	}
	return TimeOfDay{Hour: hour, Minute: minute}, nil
}

// Minutes returns the minutes-since-midnight mapping (0-1439).
func (t TimeOfDay) Minutes() int {
	return t.Hour*60 + t.Minute
}

// Before reports whether t is strictly earlier than o.
func (t TimeOfDay) Before(o TimeOfDay) bool {
	return t.Minutes() < o.Minutes()
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour, t.Minute)
}

// MarshalJSON renders the wire form "HH:MM".
func (t TimeOfDay) MarshalJSON() ([]byte, error) {
	return []byte(`"` + t.String() + `"`), nil
}

// UnmarshalJSON accepts the wire form "HH:MM".
func (t *TimeOfDay) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	parsed, err := ParseTimeOfDay(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// AddHours advances t by a duration expressed in hours (fractions allowed,
// rounded to the nearest minute). Callers must not request a duration that
// pushes past midnight; the result is undefined for such inputs.
func (t TimeOfDay) AddHours(hours float64) TimeOfDay {
	total := t.Minutes() + int(math.Round(hours*60))
	return TimeOfDay{Hour: total / 60, Minute: total % 60}
}

// DurationHours returns the span between two clock times in hours.
func DurationHours(start, end TimeOfDay) float64 {
	return float64(end.Minutes()-start.Minutes()) / 60
}

// GenerateSlots returns the canonical daily grid: 08:00, 08:30, ... 18:00.
// The sequence is fixed and strictly increasing by 30 minutes.
func GenerateSlots() []TimeOfDay {
	slots := make([]TimeOfDay, 0, SlotsPerDay)
	for hour := gridStartHour; hour <= gridEndHour; hour++ {
		slots = append(slots, TimeOfDay{Hour: hour})
		if hour < gridEndHour {
			slots = append(slots, TimeOfDay{Hour: hour, Minute: slotStepMinutes})
		}
	}
	return slots
}
