// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// getProfile returns the caller's account.
func (a *BookingAPI) getProfile(c *gin.Context) {
	identity, ok := identityFromRequest(c)
	if !ok {
		return
	}

	user, err := a.userService.GetProfile(c.Request.Context(), identity.UserID)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": toUserResponse(user)})
}

// getActivities returns the caller's recorded account activity, most recent
// first.
func (a *BookingAPI) getActivities(c *gin.Context) {
	identity, ok := identityFromRequest(c)
	if !ok {
		return
	}

	activities, err := a.userService.GetActivities(c.Request.Context(), identity.UserID)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"activities": activities})
}
