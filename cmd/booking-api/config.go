// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package main

import (
	"flag"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/nats-io/nats.go"

	"github.com/roombook/room-booking-service/internal/logging"
)

// flags are the command line flags for the booking service.
type flags struct {
	Debug bool
	Port  string
	Bind  string
}

// environment are the environment variables for the booking service.
type environment struct {
	Port               string
	NatsURL            string
	JWTSecret          string
	JWTAudience        string
	JWTIssuer          string
	MockLocalPrincipal string
	SkipEtagValidation bool
}

// parseFlags parses command line flags for the booking service
func parseFlags(defaultPort string) flags {
	var debug = flag.Bool("d", false, "enable debug logging")
	var port = flag.String("p", defaultPort, "listen port")
	var bind = flag.String("bind", "*", "interface to bind on")

	flag.Usage = func() {
		flag.PrintDefaults()
		os.Exit(2)
	}
	flag.Parse()

	// Based on the debug flag, set the log level environment variable used by [logging.InitStructureLogConfig]
	if *debug {
		err := os.Setenv("LOG_LEVEL", "debug")
		if err != nil {
			slog.With(logging.ErrKey, err).Error("error setting log level")
			os.Exit(1)
		}
	}

	return flags{
		Debug: *debug,
		Port:  *port,
		Bind:  *bind,
	}
}

// parseEnv parses environment variables for the booking service. A local
// .env file is loaded first when present.
func parseEnv() environment {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		slog.With(logging.ErrKey, err).Warn("error loading .env file")
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	natsURL := os.Getenv("NATS_URL")
	if natsURL == "" {
		natsURL = nats.DefaultURL
	}

	mockLocalPrincipal := os.Getenv("JWT_AUTH_DISABLED_MOCK_LOCAL_PRINCIPAL")

	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" && mockLocalPrincipal == "" {
		slog.Error("JWT_SECRET environment variable is required but not set")
		os.Exit(1)
	}

	jwtAudience := os.Getenv("JWT_AUDIENCE")
	if jwtAudience == "" {
		jwtAudience = "roombook"
	}

	jwtIssuer := os.Getenv("JWT_ISSUER")
	if jwtIssuer == "" {
		jwtIssuer = "booking-api"
	}

	skipEtagValidation := os.Getenv("SKIP_ETAG_VALIDATION") == "true"

	return environment{
		Port:               port,
		NatsURL:            natsURL,
		JWTSecret:          jwtSecret,
		JWTAudience:        jwtAudience,
		JWTIssuer:          jwtIssuer,
		MockLocalPrincipal: mockLocalPrincipal,
		SkipEtagValidation: skipEtagValidation,
	}
}
