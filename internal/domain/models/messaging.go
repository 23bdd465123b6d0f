// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package models

// NATS subjects that the booking service sends messages about.
const (
	// IndexMeetingSubject is the subject for the meeting indexing.
	// The subject is of the form: roombook.index.meeting
	IndexMeetingSubject = "roombook.index.meeting"

	// IndexMinutesSubject is the subject for the minutes indexing.
	// The subject is of the form: roombook.index.minutes
	IndexMinutesSubject = "roombook.index.minutes"

	// UpdateAccessMeetingSubject is the subject for the meeting access control updates.
	// The subject is of the form: roombook.update_access.meeting
	UpdateAccessMeetingSubject = "roombook.update_access.meeting"

	// DeleteAllAccessMeetingSubject is the subject for the meeting access control deletion.
	// The subject is of the form: roombook.delete_all_access.meeting
	DeleteAllAccessMeetingSubject = "roombook.delete_all_access.meeting"
)

// NATS wildcard subjects that the booking service handles messages about.
const (
	// BookingAPIQueue is the queue name for the booking API subscriptions.
	BookingAPIQueue = "roombook.booking-api.queue"
)

// NATS specific subjects that the booking service handles messages about.
const (
	// MeetingGetTitleSubject is the subject for the meeting get title request.
	// The subject is of the form: roombook.booking-api.get_title
	MeetingGetTitleSubject = "roombook.booking-api.get_title"

	// MeetingDeletedSubject is the subject for meeting deletion events.
	// The subject is of the form: roombook.booking-api.meeting_deleted
	MeetingDeletedSubject = "roombook.booking-api.meeting_deleted"
)

// MessageAction is a type for the action of a booking message.
type MessageAction string

// MessageAction constants for the action of a booking message.
const (
	// ActionCreated is the action for a resource creation message.
	ActionCreated MessageAction = "created"
	// ActionUpdated is the action for a resource update message.
	ActionUpdated MessageAction = "updated"
	// ActionDeleted is the action for a resource deletion message.
	ActionDeleted MessageAction = "deleted"
)

// IndexerMessage is the NATS message schema for resource CRUD events consumed
// by the search indexer.
type IndexerMessage struct {
	Action  MessageAction     `json:"action"`
	Headers map[string]string `json:"headers"`
	Data    any               `json:"data"`
	// Tags is a list of tags to be set on the indexed resource for search.
	Tags []string `json:"tags"`
}

// MeetingAccessMessage is the schema for the data in the message sent to the
// access-control sync service. Participants and viewers are the two
// membership sets that grant minutes access.
type MeetingAccessMessage struct {
	UID          string   `json:"uid"`
	Public       bool     `json:"public"`
	Participants []string `json:"participants"`
	Viewers      []string `json:"viewers"`
}

// MeetingDeletedMessage is the event payload published when a meeting
// instance is removed, so that attached artifacts can be cleaned up.
type MeetingDeletedMessage struct {
	MeetingUID string `json:"meeting_uid"`
	RoomUID    string `json:"room_uid"`
	Date       string `json:"date"`
}
