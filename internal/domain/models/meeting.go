// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package models

import (
	"time"
)

// Recurrence rule types supported by the booking planner.
const (
	RecurrenceTypeNone    = "none"
	RecurrenceTypeDaily   = "daily"
	RecurrenceTypeWeekly  = "weekly"
	RecurrenceTypeMonthly = "monthly"
)

// Meeting is the key-value store representation of a single booked meeting
// instance. Instances created from one recurrence rule share a RecurrenceID
// but are otherwise independent records.
type Meeting struct {
	UID            string          `json:"uid"`
	Title          string          `json:"title"`
	Date           time.Time       `json:"date"`
	StartTime      string          `json:"start_time"`
	EndTime        string          `json:"end_time"`
	Duration       float64         `json:"duration"`
	RoomUID        string          `json:"room_uid"`
	RoomName       string          `json:"room_name,omitempty"`
	RecurrenceID   string          `json:"recurrence_id,omitempty"`
	Recurrence     *RecurrenceRule `json:"recurrence,omitempty"`
	ParticipantIDs []string        `json:"participant_ids,omitempty"`
	ViewerIDs      []string        `json:"viewer_ids,omitempty"`
	FreeForm       bool            `json:"free_form"`
	CreatedAt      *time.Time      `json:"created_at,omitempty"`
	UpdatedAt      *time.Time      `json:"updated_at,omitempty"`
}

// RecurrenceRule describes how a meeting repeats. EndDate is inclusive.
type RecurrenceRule struct {
	Type    string     `json:"type"`
	EndDate *time.Time `json:"end_date,omitempty"`
}

// IsRecurring reports whether the meeting was created as part of a series.
func (m *Meeting) IsRecurring() bool {
	return m.RecurrenceID != ""
}

// DateKey returns the canonical room-day key date component.
func (m *Meeting) DateKey() string {
	return m.Date.Format(time.DateOnly)
}

// Tags generates a list of tags for the meeting to be used in the indexer.
func (m *Meeting) Tags() []string {
	var tags []string

	if m == nil {
		return nil
	}

	if m.UID != "" {
		tags = append(tags, m.UID)
	}
	if m.Title != "" {
		tags = append(tags, m.Title)
	}
	if m.RoomUID != "" {
		tags = append(tags, m.RoomUID)
	}
	if m.RecurrenceID != "" {
		tags = append(tags, m.RecurrenceID)
	}

	return tags
}
