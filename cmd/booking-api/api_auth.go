// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package main

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/roombook/room-booking-service/internal/domain"
	"github.com/roombook/room-booking-service/internal/domain/models"
	"github.com/roombook/room-booking-service/internal/service"
)

// userResponse is the account shape returned to clients. The password hash
// never leaves the service.
type userResponse struct {
	UID         string     `json:"uid"`
	Name        string     `json:"name"`
	Email       string     `json:"email"`
	Role        string     `json:"role"`
	Permissions []string   `json:"permissions,omitempty"`
	CreatedAt   *time.Time `json:"created_at,omitempty"`
}

func toUserResponse(user *models.User) userResponse {
	return userResponse{
		UID:         user.UID,
		Name:        user.Name,
		Email:       user.Email,
		Role:        user.Role,
		Permissions: user.Permissions,
		CreatedAt:   user.CreatedAt,
	}
}

// activityContextFromRequest captures the request metadata recorded on the
// account activity log.
func activityContextFromRequest(c *gin.Context) service.ActivityContext {
	return service.ActivityContext{
		IP:     c.ClientIP(),
		Device: c.Request.UserAgent(),
	}
}

// registerRequest is the account creation payload.
type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// register creates a new account.
func (a *BookingAPI) register(c *gin.Context) {
	var payload registerRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, domain.NewValidationError("invalid request body", err))
		return
	}

	user, err := a.userService.Register(c.Request.Context(),
		payload.Name, payload.Email, payload.Password, activityContextFromRequest(c))
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"user": toUserResponse(user)})
}

// loginRequest is the credential payload.
type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// login verifies credentials and issues a session token. Browser clients
// also get the token as an HttpOnly cookie.
func (a *BookingAPI) login(c *gin.Context) {
	var payload loginRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, domain.NewValidationError("invalid request body", err))
		return
	}

	user, token, err := a.userService.Login(c.Request.Context(),
		payload.Email, payload.Password, activityContextFromRequest(c))
	if err != nil {
		writeError(c, err)
		return
	}

	c.SetCookie("auth_token", token, int((24 * time.Hour).Seconds()), "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{
		"token": token,
		"user":  toUserResponse(user),
	})
}
