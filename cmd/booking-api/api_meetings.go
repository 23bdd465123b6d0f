// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package main

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/roombook/room-booking-service/internal/domain"
	"github.com/roombook/room-booking-service/internal/domain/models"
	"github.com/roombook/room-booking-service/internal/scheduling"
)

// createMeetingRequest is the booking request payload.
type createMeetingRequest struct {
	Title      string   `json:"title"`
	RoomUID    string   `json:"room_uid"`
	Date       string   `json:"date"`
	StartTime  string   `json:"start_time"`
	EndTime    string   `json:"end_time"`
	Recurrence *struct {
		Type    string `json:"type"`
		EndDate string `json:"end_date"`
	} `json:"recurrence,omitempty"`
	Participants []string `json:"participants,omitempty"`
	Viewers      []string `json:"viewers,omitempty"`
}

// bookingRequestFromPayload translates the HTTP payload into a planner
// request. Field-level validation beyond shape belongs to the planner.
func bookingRequestFromPayload(identity models.Identity, payload createMeetingRequest) (scheduling.BookingRequest, error) {
	var req scheduling.BookingRequest

	date, err := time.Parse(time.DateOnly, payload.Date)
	if err != nil {
		return req, domain.NewValidationError("date must be formatted as YYYY-MM-DD", err)
	}

	start, err := scheduling.ParseTimeOfDay(payload.StartTime)
	if err != nil {
		return req, domain.NewValidationError("invalid start_time", err)
	}
	end, err := scheduling.ParseTimeOfDay(payload.EndTime)
	if err != nil {
		return req, domain.NewValidationError("invalid end_time", err)
	}

	rule := scheduling.Rule{Type: scheduling.FreqNone}
	if payload.Recurrence != nil && payload.Recurrence.Type != "" {
		rule.Type = scheduling.Frequency(payload.Recurrence.Type)
		if payload.Recurrence.EndDate != "" {
			endDate, err := time.Parse(time.DateOnly, payload.Recurrence.EndDate)
			if err != nil {
				return req, domain.NewValidationError("recurrence end_date must be formatted as YYYY-MM-DD", err)
			}
			rule.EndDate = endDate
		}
	}

	// The booker is always a participant of their own meeting.
	participants := payload.Participants
	if identity.UserID != "" && !contains(participants, identity.UserID) {
		participants = append(participants, identity.UserID)
	}

	return scheduling.BookingRequest{
		Title:          payload.Title,
		RoomUID:        payload.RoomUID,
		Date:           date,
		Start:          start,
		End:            end,
		Recurrence:     rule,
		ParticipantIDs: participants,
		ViewerIDs:      payload.Viewers,
	}, nil
}

func contains(values []string, value string) bool {
	for _, v := range values {
		if v == value {
			return true
		}
	}
	return false
}

// createMeeting books a meeting, or a series when a recurrence rule is
// given.
func (a *BookingAPI) createMeeting(c *gin.Context) {
	identity, ok := identityFromRequest(c)
	if !ok {
		return
	}

	var payload createMeetingRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, domain.NewValidationError("invalid request body", err))
		return
	}

	req, err := bookingRequestFromPayload(identity, payload)
	if err != nil {
		writeError(c, err)
		return
	}

	meetings, err := a.meetingService.CreateMeeting(c.Request.Context(), req)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"meetings": meetings})
}

// createFreeFormMeetingRequest is the free-form container payload.
type createFreeFormMeetingRequest struct {
	Title        string   `json:"title"`
	Date         string   `json:"date"`
	Participants []string `json:"participants,omitempty"`
	Viewers      []string `json:"viewers,omitempty"`
}

// createFreeFormMeeting records a free-form meeting container for minutes
// not tied to a bookable room.
func (a *BookingAPI) createFreeFormMeeting(c *gin.Context) {
	if _, ok := identityFromRequest(c); !ok {
		return
	}

	var payload createFreeFormMeetingRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, domain.NewValidationError("invalid request body", err))
		return
	}

	date, err := time.Parse(time.DateOnly, payload.Date)
	if err != nil {
		writeError(c, domain.NewValidationError("date must be formatted as YYYY-MM-DD", err))
		return
	}

	meeting, err := a.meetingService.CreateFreeFormMeeting(c.Request.Context(), &models.Meeting{
		Title:          payload.Title,
		Date:           date,
		ParticipantIDs: payload.Participants,
		ViewerIDs:      payload.Viewers,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, meeting)
}

// listMeetings returns all meetings, or one room's meetings for one day when
// the room_uid and date query parameters are given.
func (a *BookingAPI) listMeetings(c *gin.Context) {
	ctx := c.Request.Context()

	roomUID := c.Query("room_uid")
	if roomUID != "" {
		date, err := parseDateQuery(c, "date")
		if err != nil {
			writeError(c, err)
			return
		}
		meetings, err := a.meetingService.GetMeetingsByRoomAndDate(ctx, roomUID, date)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"meetings": meetings})
		return
	}

	meetings, err := a.meetingService.GetMeetings(ctx)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"meetings": meetings})
}

// getMeeting returns one meeting by UID, with a flag for whether a minutes
// document is attached.
func (a *BookingAPI) getMeeting(c *gin.Context) {
	ctx := c.Request.Context()

	meeting, err := a.meetingService.GetMeeting(ctx, c.Param("uid"))
	if err != nil {
		writeError(c, err)
		return
	}

	hasMinutes, err := a.minutesService.MinutesRepository.MinutesExistForMeeting(ctx, meeting.UID)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"meeting":     meeting,
		"has_minutes": hasMinutes,
	})
}

// deleteMeeting removes one meeting instance. Deleting one member of a
// series never cascades to its siblings.
func (a *BookingAPI) deleteMeeting(c *gin.Context) {
	if _, ok := identityFromRequest(c); !ok {
		return
	}

	revision, err := revisionFromIfMatch(c)
	if err != nil {
		writeError(c, err)
		return
	}

	if err := a.meetingService.DeleteMeeting(c.Request.Context(), c.Param("uid"), revision); err != nil {
		writeError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
