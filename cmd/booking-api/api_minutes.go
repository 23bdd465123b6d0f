// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package main

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/roombook/room-booking-service/internal/domain"
	"github.com/roombook/room-booking-service/internal/domain/models"
)

// createMinutes attaches a minutes document to a meeting.
func (a *BookingAPI) createMinutes(c *gin.Context) {
	identity, ok := identityFromRequest(c)
	if !ok {
		return
	}

	var payload models.Minutes
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, domain.NewValidationError("invalid request body", err))
		return
	}

	minutes, err := a.minutesService.CreateMinutes(c.Request.Context(), identity, &payload)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, minutes)
}

// getMinutes returns the minutes document for the meeting named by the
// meeting_uid query parameter.
func (a *BookingAPI) getMinutes(c *gin.Context) {
	identity, ok := identityFromRequest(c)
	if !ok {
		return
	}

	meetingUID := c.Query("meeting_uid")
	if meetingUID == "" {
		writeError(c, domain.NewValidationError("meeting_uid query parameter is required"))
		return
	}

	minutes, err := a.minutesService.GetMinutes(c.Request.Context(), identity, meetingUID)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, minutes)
}

// getFreeMinutes returns the minutes of a free-form meeting. The endpoint is
// public; the caller is granted the view tag for this one read.
func (a *BookingAPI) getFreeMinutes(c *gin.Context) {
	viewer := models.Identity{
		Permissions: []string{models.PermissionViewFreeMinutes},
	}

	minutes, err := a.minutesService.GetMinutes(c.Request.Context(), viewer, c.Param("meetingUID"))
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, minutes)
}

// updateMinutes replaces the minutes document for a meeting.
func (a *BookingAPI) updateMinutes(c *gin.Context) {
	identity, ok := identityFromRequest(c)
	if !ok {
		return
	}

	revision, err := revisionFromIfMatch(c)
	if err != nil {
		writeError(c, err)
		return
	}

	var payload models.Minutes
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, domain.NewValidationError("invalid request body", err))
		return
	}
	payload.MeetingUID = c.Param("meetingUID")

	minutes, err := a.minutesService.UpdateMinutes(c.Request.Context(), identity, &payload, revision)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, minutes)
}

// deleteMinutes removes the minutes document for a meeting.
func (a *BookingAPI) deleteMinutes(c *gin.Context) {
	identity, ok := identityFromRequest(c)
	if !ok {
		return
	}

	revision, err := revisionFromIfMatch(c)
	if err != nil {
		writeError(c, err)
		return
	}

	if err := a.minutesService.DeleteMinutes(c.Request.Context(), identity, c.Param("meetingUID"), revision); err != nil {
		writeError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
