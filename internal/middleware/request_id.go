// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

// Package middleware contains the HTTP middleware for the booking API.
package middleware

import (
	"context"
	"log/slog"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/roombook/room-booking-service/internal/logging"
	"github.com/roombook/room-booking-service/pkg/constants"
)

// RequestIDMiddleware ensures every request carries a request ID. An inbound
// x-request-id header is trusted if present; otherwise one is generated. The
// ID is echoed on the response and added to the request context so that all
// request handler logs carry it.
func RequestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(constants.RequestIDHeader)
		if requestID == "" {
			requestID = uuid.New().String()
		}

		ctx := c.Request.Context()
		ctx = context.WithValue(ctx, constants.RequestIDContextID, requestID)
		ctx = logging.AppendCtx(ctx, slog.String("request_id", requestID))
		c.Request = c.Request.WithContext(ctx)

		c.Header(constants.RequestIDHeader, requestID)

		c.Next()
	}
}
