// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package domain

import (
	"context"

	"github.com/roombook/room-booking-service/internal/domain/models"
)

// Message represents a domain message interface
type Message interface {
	Subject() string
	Data() []byte
	Respond(data []byte) error
	HasReply() bool
}

// MessageHandler defines how the service handles incoming messages
type MessageHandler interface {
	HandleMessage(ctx context.Context, msg Message)
	HandlerReady() bool
}

// MeetingIndexSender handles indexing operations for meetings.
type MeetingIndexSender interface {
	SendIndexMeeting(ctx context.Context, action models.MessageAction, data models.Meeting) error
	SendDeleteIndexMeeting(ctx context.Context, data string) error
}

// MinutesIndexSender handles indexing operations for minutes documents.
type MinutesIndexSender interface {
	SendIndexMinutes(ctx context.Context, action models.MessageAction, data models.Minutes) error
	SendDeleteIndexMinutes(ctx context.Context, data string) error
}

// AccessSender handles access control propagation for meetings.
type AccessSender interface {
	SendUpdateAccessMeeting(ctx context.Context, data models.MeetingAccessMessage) error
	SendDeleteAllAccessMeeting(ctx context.Context, data string) error
}

// EventSender publishes service lifecycle events consumed by our own
// queue-subscribed handlers.
type EventSender interface {
	SendMeetingDeleted(ctx context.Context, data models.MeetingDeletedMessage) error
}

// MessageBuilder is the aggregate messaging interface the services depend on.
type MessageBuilder interface {
	MeetingIndexSender
	MinutesIndexSender
	AccessSender
	EventSender
}
