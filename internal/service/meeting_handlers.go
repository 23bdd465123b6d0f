// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/roombook/room-booking-service/internal/domain"
	"github.com/roombook/room-booking-service/internal/domain/models"
	"github.com/roombook/room-booking-service/internal/logging"
)

// MeetingHandler dispatches incoming NATS messages to the booking services.
// It implements domain.MessageHandler.
type MeetingHandler struct {
	MeetingService *MeetingService
	MinutesService *MinutesService
}

// NewMeetingHandler creates a new MeetingHandler.
func NewMeetingHandler(meetingService *MeetingService, minutesService *MinutesService) *MeetingHandler {
	return &MeetingHandler{
		MeetingService: meetingService,
		MinutesService: minutesService,
	}
}

// HandlerReady checks if the handler's services are ready.
func (h *MeetingHandler) HandlerReady() bool {
	return h.MeetingService != nil && h.MeetingService.ServiceReady() &&
		h.MinutesService != nil && h.MinutesService.ServiceReady()
}

// HandleMessage implements domain.MessageHandler.
func (h *MeetingHandler) HandleMessage(ctx context.Context, msg domain.Message) {
	subject := msg.Subject()
	ctx = logging.AppendCtx(ctx, slog.String("subject", subject))
	slog.DebugContext(ctx, "handling NATS message")

	handlers := map[string]func(ctx context.Context, msg domain.Message) ([]byte, error){
		models.MeetingGetTitleSubject: h.HandleMeetingGetTitle,
		models.MeetingDeletedSubject:  h.HandleMeetingDeleted,
	}

	handler, ok := handlers[subject]
	if !ok {
		slog.WarnContext(ctx, "unknown subject")
		if msg.HasReply() {
			if err := msg.Respond(nil); err != nil {
				slog.ErrorContext(ctx, "error responding to NATS message", logging.ErrKey, err)
			}
		}
		return
	}

	response, err := handler(ctx, msg)
	if err != nil {
		slog.ErrorContext(ctx, "error handling message",
			logging.ErrKey, err,
			"subject", subject,
		)
		if msg.HasReply() {
			if err := msg.Respond(nil); err != nil {
				slog.ErrorContext(ctx, "error responding to NATS message", logging.ErrKey, err)
			}
		}
		return
	}

	if !msg.HasReply() {
		return
	}
	if err := msg.Respond(response); err != nil {
		slog.ErrorContext(ctx, "error responding to NATS message", logging.ErrKey, err)
		return
	}

	slog.DebugContext(ctx, "responded to NATS message", "response", response)
}

// HandleMeetingGetTitle is the request handler for the get-title subject.
// The request payload is a meeting UID, the reply its title.
func (h *MeetingHandler) HandleMeetingGetTitle(ctx context.Context, msg domain.Message) ([]byte, error) {
	if !h.HandlerReady() {
		slog.ErrorContext(ctx, "NATS KV store not initialized")
		return nil, fmt.Errorf("NATS KV store not initialized")
	}

	meetingUID := string(msg.Data())
	ctx = logging.AppendCtx(ctx, slog.String("meeting_uid", meetingUID))

	if _, err := uuid.Parse(meetingUID); err != nil {
		slog.ErrorContext(ctx, "error parsing meeting UID", logging.ErrKey, err)
		return nil, err
	}

	meeting, err := h.MeetingService.GetMeeting(ctx, meetingUID)
	if err != nil {
		slog.ErrorContext(ctx, "error getting meeting", logging.ErrKey, err)
		return nil, err
	}

	return []byte(meeting.Title), nil
}

// HandleMeetingDeleted is the event handler for meeting deletion events. It
// removes the minutes document attached to the deleted meeting, if any.
func (h *MeetingHandler) HandleMeetingDeleted(ctx context.Context, msg domain.Message) ([]byte, error) {
	if !h.HandlerReady() {
		return nil, fmt.Errorf("handler not ready")
	}

	var event models.MeetingDeletedMessage
	if err := json.Unmarshal(msg.Data(), &event); err != nil {
		slog.ErrorContext(ctx, "error unmarshalling meeting deleted event", logging.ErrKey, err)
		return nil, err
	}

	ctx = logging.AppendCtx(ctx, slog.String("meeting_uid", event.MeetingUID))

	if err := h.MinutesService.CleanupMinutesForMeeting(ctx, event.MeetingUID); err != nil {
		slog.ErrorContext(ctx, "error cleaning up minutes for deleted meeting", logging.ErrKey, err)
		return nil, err
	}

	return nil, nil
}
