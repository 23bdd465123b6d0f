// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"sync"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"

	"github.com/roombook/room-booking-service/internal/domain"
	"github.com/roombook/room-booking-service/internal/domain/models"
	"github.com/roombook/room-booking-service/internal/infrastructure/auth"
	"github.com/roombook/room-booking-service/internal/infrastructure/messaging"
	"github.com/roombook/room-booking-service/internal/infrastructure/store"
	"github.com/roombook/room-booking-service/internal/logging"
)

// setupJWTAuth configures session token issuing and verification.
func setupJWTAuth(env environment) *auth.JWTAuth {
	return auth.NewJWTAuth(auth.JWTAuthConfig{
		Secret:             env.JWTSecret,
		Audience:           env.JWTAudience,
		Issuer:             env.JWTIssuer,
		MockLocalPrincipal: env.MockLocalPrincipal,
	})
}

// setupNATS connects to the NATS server. The connection's closed handler
// participates in the graceful shutdown wait group.
func setupNATS(ctx context.Context, env environment, gracefulCloseWG *sync.WaitGroup, done chan os.Signal) (*nats.Conn, error) {
	gracefulCloseWG.Add(1)

	natsConn, err := nats.Connect(
		env.NatsURL,
		nats.DrainTimeout(25*time.Second),
		nats.ConnectHandler(func(_ *nats.Conn) {
			slog.InfoContext(ctx, "connected to NATS server", "nats_url", env.NatsURL)
		}),
		nats.ErrorHandler(func(_ *nats.Conn, s *nats.Subscription, err error) {
			if s != nil {
				slog.ErrorContext(ctx, "async NATS error", logging.ErrKey, err, "subject", s.Subject)
				return
			}
			slog.ErrorContext(ctx, "async NATS error", logging.ErrKey, err)
		}),
		nats.ClosedHandler(func(conn *nats.Conn) {
			slog.InfoContext(ctx, "NATS connection closed", logging.ErrKey, conn.LastError())
			gracefulCloseWG.Done()
			select {
			case done <- os.Interrupt:
			default:
			}
		}),
	)
	if err != nil {
		gracefulCloseWG.Done()
		return nil, err
	}

	return natsConn, nil
}

// repositories bundles the key-value backed repositories used by the
// services.
type repositories struct {
	Meeting       *store.NatsMeetingRepository
	Minutes       *store.NatsMinutesRepository
	Room          *store.NatsRoomRepository
	User          *store.NatsUserRepository
	ScheduleIndex *store.NatsScheduleIndexRepository
}

// getKeyValueStores creates or binds the service's key-value buckets and
// wraps them in repositories.
func getKeyValueStores(ctx context.Context, natsConn *nats.Conn) (*repositories, error) {
	js, err := jetstream.New(natsConn)
	if err != nil {
		return nil, err
	}

	buckets := map[string]jetstream.KeyValue{}
	for _, bucket := range []string{
		store.KVStoreNameMeetings,
		store.KVStoreNameMinutes,
		store.KVStoreNameRooms,
		store.KVStoreNameUsers,
		store.KVStoreNameScheduleIndex,
	} {
		kv, err := js.CreateOrUpdateKeyValue(ctx, jetstream.KeyValueConfig{
			Bucket:  bucket,
			History: 1,
		})
		if err != nil {
			return nil, err
		}
		buckets[bucket] = kv
	}

	return &repositories{
		Meeting:       store.NewNatsMeetingRepository(buckets[store.KVStoreNameMeetings]),
		Minutes:       store.NewNatsMinutesRepository(buckets[store.KVStoreNameMinutes]),
		Room:          store.NewNatsRoomRepository(buckets[store.KVStoreNameRooms]),
		User:          store.NewNatsUserRepository(buckets[store.KVStoreNameUsers]),
		ScheduleIndex: store.NewNatsScheduleIndexRepository(buckets[store.KVStoreNameScheduleIndex]),
	}, nil
}

// defaultRooms is the seeded room catalog. Bookings only ever reference
// rooms from this catalog.
var defaultRooms = []*models.Room{
	{UID: "room-1", Name: "Aurora", Capacity: 8},
	{UID: "room-2", Name: "Borealis", Capacity: 12},
	{UID: "room-3", Name: "Cascade", Capacity: 4},
	{UID: "room-4", Name: "Dynamo", Capacity: 20},
}

// seedRooms writes the room catalog. Rooms that already exist are left
// untouched.
func seedRooms(ctx context.Context, roomRepository domain.RoomRepository) error {
	for _, room := range defaultRooms {
		err := roomRepository.PutRoom(ctx, room)
		if err != nil {
			if domain.GetErrorType(err) == domain.ErrorTypeConflict {
				continue
			}
			return err
		}
		slog.DebugContext(ctx, "seeded room", "room_uid", room.UID, "room_name", room.Name)
	}
	return nil
}

// createNatsSubscriptions sets up the queue subscriptions handled by the
// booking API.
func createNatsSubscriptions(ctx context.Context, handler domain.MessageHandler, natsConn *nats.Conn) error {
	subjects := []string{
		models.MeetingGetTitleSubject,
		models.MeetingDeletedSubject,
	}

	for _, subject := range subjects {
		_, err := natsConn.QueueSubscribe(subject, models.BookingAPIQueue, func(msg *nats.Msg) {
			handler.HandleMessage(ctx, messaging.NewNatsMsg(msg))
		})
		if err != nil {
			return err
		}
		slog.InfoContext(ctx, "subscribed to NATS subject", "subject", subject, "queue", models.BookingAPIQueue)
	}

	return nil
}

// gracefulShutdown stops the HTTP server, drains the NATS connection, and
// waits for the registered closers.
func gracefulShutdown(httpServer *http.Server, natsConn *nats.Conn, gracefulCloseWG *sync.WaitGroup, cancel context.CancelFunc) {
	slog.Info("shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 25*time.Second)
	defer shutdownCancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		slog.With(logging.ErrKey, err).Error("error shutting down http server")
	}
	gracefulCloseWG.Done()

	if natsConn != nil && !natsConn.IsClosed() {
		if err := natsConn.Drain(); err != nil {
			slog.With(logging.ErrKey, err).Error("error draining NATS connection")
		}
	}

	cancel()
	gracefulCloseWG.Wait()
	slog.Info("shutdown complete")
}
