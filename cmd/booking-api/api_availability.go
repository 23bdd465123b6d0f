// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package main

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/roombook/room-booking-service/internal/domain"
)

// busySlot is one committed booking's span on the requested day.
type busySlot struct {
	UID       string `json:"uid"`
	Title     string `json:"title"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}

// getAvailability returns the slot grid and the committed bookings for one
// room and day.
func (a *BookingAPI) getAvailability(c *gin.Context) {
	ctx := c.Request.Context()

	roomUID := c.Query("room_uid")
	if roomUID == "" {
		writeError(c, domain.NewValidationError("room_uid query parameter is required"))
		return
	}

	date, err := parseDateQuery(c, "date")
	if err != nil {
		writeError(c, err)
		return
	}

	slots, err := a.meetingService.GetAvailability(ctx, roomUID, date)
	if err != nil {
		writeError(c, err)
		return
	}

	meetings, err := a.meetingService.GetMeetingsByRoomAndDate(ctx, roomUID, date)
	if err != nil {
		writeError(c, err)
		return
	}

	busySlots := make([]busySlot, 0, len(meetings))
	for _, meeting := range meetings {
		busySlots = append(busySlots, busySlot{
			UID:       meeting.UID,
			Title:     meeting.Title,
			StartTime: meeting.StartTime,
			EndTime:   meeting.EndTime,
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"slots":      slots,
		"busy_slots": busySlots,
	})
}
