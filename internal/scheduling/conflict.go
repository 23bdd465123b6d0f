// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package scheduling

// Interval is a half-open [Start, End) time span within one day.
type Interval struct {
	Start TimeOfDay `json:"start"`
	End   TimeOfDay `json:"end"`
}

// Valid reports whether the interval is well-formed: Start strictly before
// End. Zero-length and inverted intervals are rejected by producers before
// they reach the conflict checks.
func (iv Interval) Valid() bool {
	return iv.Start.Before(iv.End)
}

// BusyInterval is a committed booking's time span on a given room and day.
type BusyInterval struct {
	UID   string    `json:"id" msgpack:"uid"`
	Title string    `json:"title" msgpack:"title"`
	Start TimeOfDay `json:"start" msgpack:"start"`
	End   TimeOfDay `json:"end" msgpack:"end"`
}

// Interval returns the busy span as an Interval.
func (b BusyInterval) Interval() Interval {
	return Interval{Start: b.Start, End: b.End}
}

// Slot is one grid point tagged with its availability. Slots are derived per
// query, never stored.
type Slot struct {
	Time      TimeOfDay `json:"time"`
	Available bool      `json:"available"`
}

// Overlaps reports whether two half-open intervals intersect. Touching
// endpoints (a.End == b.Start) do not conflict.
func Overlaps(a, b Interval) bool {
	return a.Start.Minutes() < b.End.Minutes() && a.End.Minutes() > b.Start.Minutes()
}

// SlotAvailability tags each grid point with whether any busy interval covers
// it. Each point is probed as an instant at the slot's start boundary rather
// than across the slot's 30-minute width, so bookings not aligned to the
// grid can leave a slot marked free even when part of it is covered. Callers
// that need full-width checking should replace this function, not work
// around it.
func SlotAvailability(grid []TimeOfDay, busy []BusyInterval) []Slot {
	slots := make([]Slot, len(grid))
	for i, t := range grid {
		m := t.Minutes()
		covered := false
		for _, b := range busy {
			if m >= b.Start.Minutes() && m < b.End.Minutes() {
				covered = true
				break
			}
		}
		slots[i] = Slot{Time: t, Available: !covered}
	}
	return slots
}

// HasConflict returns the first busy interval overlapping the candidate, if
// any. The order of busy is preserved, so callers that sort by start time
// get the earliest conflicting booking.
func HasConflict(candidate Interval, busy []BusyInterval) (BusyInterval, bool) {
	for _, b := range busy {
		if Overlaps(candidate, b.Interval()) {
			return b, true
		}
	}
	return BusyInterval{}, false
}
