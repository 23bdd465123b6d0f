// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

// Package main is the booking service API that provides a RESTful API for
// booking meeting rooms and managing meeting minutes, and handles NATS
// messages for the booking service.
package main

import (
	"context"
	_ "expvar"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/roombook/room-booking-service/internal/infrastructure/messaging"
	"github.com/roombook/room-booking-service/internal/logging"
	"github.com/roombook/room-booking-service/internal/service"
)

func main() {
	env := parseEnv()
	flags := parseFlags(env.Port)

	logging.InitStructureLogConfig()

	// Set up the session token issuer and verifier.
	jwtAuth := setupJWTAuth(env)

	// Setup graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)
	gracefulCloseWG := sync.WaitGroup{}

	// Setup NATS connection
	natsConn, err := setupNATS(ctx, env, &gracefulCloseWG, done)
	if err != nil {
		slog.With(logging.ErrKey, err).Error("error setting up NATS")
		return
	}

	// Get the key-value stores for the service.
	repos, err := getKeyValueStores(ctx, natsConn)
	if err != nil {
		slog.With(logging.ErrKey, err).Error("error getting key-value stores")
		return
	}

	// Seed the room catalog.
	if err := seedRooms(ctx, repos.Room); err != nil {
		slog.With(logging.ErrKey, err).Error("error seeding room catalog")
		return
	}

	// Initialize services
	serviceConfig := service.ServiceConfig{
		SkipEtagValidation: env.SkipEtagValidation,
	}
	messageBuilder := messaging.NewMessageBuilder(natsConn)
	authService := service.NewAuthService(jwtAuth)
	meetingService := service.NewMeetingService(
		repos.Meeting,
		repos.ScheduleIndex,
		repos.Room,
		messageBuilder,
		serviceConfig,
	)
	minutesService := service.NewMinutesService(
		repos.Minutes,
		repos.Meeting,
		messageBuilder,
		serviceConfig,
	)
	userService := service.NewUserService(repos.User, jwtAuth, serviceConfig)

	// Initialize handlers
	meetingHandler := service.NewMeetingHandler(meetingService, minutesService)

	api := NewBookingAPI(
		authService,
		meetingService,
		minutesService,
		userService,
		repos.Room,
	)

	httpServer := setupHTTPServer(flags, api, &gracefulCloseWG)

	// Create NATS subscriptions for the service.
	err = createNatsSubscriptions(ctx, meetingHandler, natsConn)
	if err != nil {
		slog.With(logging.ErrKey, err).Error("error creating NATS subscriptions")
		return
	}

	// This next line blocks until SIGINT or SIGTERM is received.
	<-done

	gracefulShutdown(httpServer, natsConn, &gracefulCloseWG, cancel)
}
