// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package middleware

import (
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/roombook/room-booking-service/internal/logging"
)

// RequestLoggerMiddleware logs HTTP requests and responses.
// Health check endpoints (/livez and /readyz) are excluded from logging to reduce noise.
func RequestLoggerMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now().UTC()

		// Skip logging for health check endpoints to reduce noise
		isHealthCheck := c.Request.URL.Path == "/livez" || c.Request.URL.Path == "/readyz"

		// Add request URL attributes to the context so that they can be used in all request handler logs
		ctx := c.Request.Context()
		ctx = logging.AppendCtx(ctx, slog.String("method", c.Request.Method))
		ctx = logging.AppendCtx(ctx, slog.String("path", c.Request.URL.Path))
		ctx = logging.AppendCtx(ctx, slog.String("query", c.Request.URL.RawQuery))
		ctx = logging.AppendCtx(ctx, slog.String("host", c.Request.Host))
		ctx = logging.AppendCtx(ctx, slog.String("user_agent", c.Request.UserAgent()))
		ctx = logging.AppendCtx(ctx, slog.String("remote_addr", c.ClientIP()))
		c.Request = c.Request.WithContext(ctx)

		if !isHealthCheck {
			slog.InfoContext(ctx, "HTTP request")
		}

		c.Next()

		duration := time.Since(start)

		if !isHealthCheck {
			slog.InfoContext(ctx, "HTTP response",
				"status", c.Writer.Status(), "duration", duration.String())
		}
	}
}
