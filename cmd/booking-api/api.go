// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/roombook/room-booking-service/internal/domain"
	"github.com/roombook/room-booking-service/internal/domain/models"
	"github.com/roombook/room-booking-service/internal/middleware"
	"github.com/roombook/room-booking-service/internal/scheduling"
	"github.com/roombook/room-booking-service/internal/service"
)

// BookingAPI aggregates the services behind the HTTP surface.
type BookingAPI struct {
	authService    *service.AuthService
	meetingService *service.MeetingService
	minutesService *service.MinutesService
	userService    *service.UserService
	roomRepository domain.RoomRepository
}

// NewBookingAPI creates a new BookingAPI.
func NewBookingAPI(
	authService *service.AuthService,
	meetingService *service.MeetingService,
	minutesService *service.MinutesService,
	userService *service.UserService,
	roomRepository domain.RoomRepository,
) *BookingAPI {
	return &BookingAPI{
		authService:    authService,
		meetingService: meetingService,
		minutesService: minutesService,
		userService:    userService,
		roomRepository: roomRepository,
	}
}

// registerRoutes mounts the public and authenticated route groups.
func (a *BookingAPI) registerRoutes(router *gin.Engine) {
	router.GET("/livez", a.livez)
	router.GET("/readyz", a.readyz)

	public := router.Group("/api")
	{
		public.POST("/auth/register", a.register)
		public.POST("/auth/login", a.login)
		public.GET("/rooms", a.listRooms)
		public.GET("/availability", a.getAvailability)
		public.GET("/minutes/free/:meetingUID", a.getFreeMinutes)
	}

	authenticated := router.Group("/api")
	authenticated.Use(middleware.AuthMiddleware(a.authService))
	{
		authenticated.GET("/meetings", a.listMeetings)
		authenticated.POST("/meetings", a.createMeeting)
		authenticated.POST("/meetings/free", a.createFreeFormMeeting)
		authenticated.GET("/meetings/:uid", a.getMeeting)
		authenticated.DELETE("/meetings/:uid", a.deleteMeeting)

		authenticated.POST("/minutes", a.createMinutes)
		authenticated.GET("/minutes", a.getMinutes)
		authenticated.PUT("/minutes/:meetingUID", a.updateMinutes)
		authenticated.DELETE("/minutes/:meetingUID", a.deleteMinutes)

		authenticated.GET("/user/profile", a.getProfile)
		authenticated.GET("/user/activities", a.getActivities)
	}
}

// livez checks if the service is alive.
func (a *BookingAPI) livez(c *gin.Context) {
	// This always returns as long as the service is still running. As this
	// endpoint is expected to be used as a Kubernetes liveness check, this
	// service must likewise self-detect non-recoverable errors and
	// self-terminate.
	c.String(http.StatusOK, "OK\n")
}

// readyz checks if the service is able to take inbound requests.
func (a *BookingAPI) readyz(c *gin.Context) {
	if !a.meetingService.ServiceReady() ||
		!a.minutesService.ServiceReady() ||
		!a.userService.ServiceReady() {
		c.String(http.StatusServiceUnavailable, "service unavailable\n")
		return
	}
	c.String(http.StatusOK, "OK\n")
}

// writeError maps a service error onto an HTTP response.
func writeError(c *gin.Context, err error) {
	var conflict *scheduling.ConflictError
	if errors.As(err, &conflict) {
		c.JSON(http.StatusConflict, gin.H{
			"error": conflict.Error(),
			"conflict": gin.H{
				"date":    conflict.Date.Format(time.DateOnly),
				"booking": conflict.Booking,
			},
		})
		return
	}

	status := http.StatusInternalServerError
	switch domain.GetErrorType(err) {
	case domain.ErrorTypeValidation:
		status = http.StatusBadRequest
	case domain.ErrorTypeUnauthorized:
		status = http.StatusUnauthorized
	case domain.ErrorTypeForbidden:
		status = http.StatusForbidden
	case domain.ErrorTypeNotFound:
		status = http.StatusNotFound
	case domain.ErrorTypeConflict:
		status = http.StatusConflict
	case domain.ErrorTypeUnavailable:
		status = http.StatusServiceUnavailable
	}

	c.JSON(status, gin.H{"error": err.Error()})
}

// identityFromRequest returns the identity stored by the auth middleware.
func identityFromRequest(c *gin.Context) (models.Identity, bool) {
	identity, ok := middleware.IdentityFromContext(c.Request.Context())
	if !ok {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
			"error": "authentication required",
		})
	}
	return identity, ok
}

// revisionFromIfMatch parses the optional If-Match header into a KV
// revision. A missing header yields zero, deferring to the stored revision.
func revisionFromIfMatch(c *gin.Context) (uint64, error) {
	etag := strings.Trim(c.GetHeader("If-Match"), `"`)
	if etag == "" {
		return 0, nil
	}
	revision, err := strconv.ParseUint(etag, 10, 64)
	if err != nil {
		return 0, domain.NewValidationError("invalid If-Match header", err)
	}
	return revision, nil
}

// parseDateQuery parses a required YYYY-MM-DD query parameter.
func parseDateQuery(c *gin.Context, name string) (time.Time, error) {
	raw := c.Query(name)
	if raw == "" {
		return time.Time{}, domain.NewValidationError(name + " query parameter is required")
	}
	date, err := time.Parse(time.DateOnly, raw)
	if err != nil {
		return time.Time{}, domain.NewValidationError(name+" must be formatted as YYYY-MM-DD", err)
	}
	return date, nil
}
