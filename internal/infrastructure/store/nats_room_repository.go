// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package store

import (
	"context"

	"github.com/roombook/room-booking-service/internal/domain/models"
)

// NatsRoomRepository is the NATS KV store repository for the room catalog.
// Rooms are keyed directly by their UID.
type NatsRoomRepository struct {
	*NatsBaseRepository[models.Room]
}

// NewNatsRoomRepository creates a new NATS KV store repository for rooms.
func NewNatsRoomRepository(kvStore INatsKeyValue) *NatsRoomRepository {
	return &NatsRoomRepository{
		NatsBaseRepository: NewNatsBaseRepository[models.Room](kvStore, "room"),
	}
}

// PutRoom stores or replaces a room catalog entry.
func (r *NatsRoomRepository) PutRoom(ctx context.Context, room *models.Room) error {
	return r.NatsBaseRepository.Create(ctx, room.UID, room)
}

// GetRoom retrieves a room by UID.
func (r *NatsRoomRepository) GetRoom(ctx context.Context, roomUID string) (*models.Room, error) {
	return r.NatsBaseRepository.Get(ctx, roomUID)
}

// ListRooms lists every room in the catalog.
func (r *NatsRoomRepository) ListRooms(ctx context.Context) ([]*models.Room, error) {
	return r.ListEntities(ctx, "")
}
