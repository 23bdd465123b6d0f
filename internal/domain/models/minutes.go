// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package models

import "time"

// Minutes is the key-value store representation of the structured minutes
// document attached to a meeting. At most one document exists per meeting,
// keyed by the meeting UID.
type Minutes struct {
	UID          string     `json:"uid"`
	MeetingUID   string     `json:"meeting_uid"`
	Content      string     `json:"content,omitempty"`
	Location     string     `json:"location,omitempty"`
	Participants string     `json:"participants,omitempty"`
	Objective    string     `json:"objective,omitempty"`
	Agenda       string     `json:"agenda,omitempty"`
	Discussions  string     `json:"discussions,omitempty"`
	Decisions    string     `json:"decisions,omitempty"`
	Actions      string     `json:"actions,omitempty"`
	NextSteps    string     `json:"next_steps,omitempty"`
	Observations string     `json:"observations,omitempty"`
	Secretary    string     `json:"secretary,omitempty"`
	CreatedAt    *time.Time `json:"created_at,omitempty"`
	UpdatedAt    *time.Time `json:"updated_at,omitempty"`
}

// Tags generates a list of tags for the minutes document to be used in the indexer.
func (m *Minutes) Tags() []string {
	var tags []string

	if m == nil {
		return nil
	}

	if m.UID != "" {
		tags = append(tags, m.UID)
	}
	if m.MeetingUID != "" {
		tags = append(tags, m.MeetingUID)
	}
	if m.Secretary != "" {
		tags = append(tags, m.Secretary)
	}

	return tags
}
