// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// listRooms returns the bookable room catalog.
func (a *BookingAPI) listRooms(c *gin.Context) {
	rooms, err := a.roomRepository.ListRooms(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"rooms": rooms})
}
