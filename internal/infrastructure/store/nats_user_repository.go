// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package store

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/google/uuid"

	"github.com/roombook/room-booking-service/internal/domain"
	"github.com/roombook/room-booking-service/internal/domain/models"
	"github.com/roombook/room-booking-service/internal/logging"
)

// NatsUserRepository is the NATS KV store repository for user accounts and
// their activity log. Both live in the users bucket: accounts under
// "user/<uid>" and activity entries under "activity/<user-uid>/<uid>", with
// an email index under "index/email/<email>/<uid>". Keys are encoded since
// email addresses contain characters NATS KV keys do not allow.
type NatsUserRepository struct {
	*NatsBaseRepository[models.User]
	activities *NatsBaseRepository[models.Activity]
	keyBuilder *KeyBuilder
}

// NewNatsUserRepository creates a new NATS KV store repository for users.
func NewNatsUserRepository(kvStore INatsKeyValue) *NatsUserRepository {
	return &NatsUserRepository{
		NatsBaseRepository: NewNatsBaseRepository[models.User](kvStore, "user"),
		activities:         NewNatsBaseRepository[models.Activity](kvStore, "activity"),
		keyBuilder:         NewKeyBuilder(""),
	}
}

// CreateUser stores a new account and its email index entry.
func (r *NatsUserRepository) CreateUser(ctx context.Context, user *models.User) error {
	if user.UID == "" {
		user.UID = uuid.New().String()
	}

	key := r.keyBuilder.EntityKeyEncoded(KeyPrefixUser, user.UID)
	if err := r.NatsBaseRepository.Create(ctx, key, user); err != nil {
		return err
	}

	indexKey := r.keyBuilder.IndexKeyEncoded(KeyPrefixIndexEmail, user.Email, user.UID)
	if _, err := r.kvStore.Put(ctx, indexKey, []byte{}); err != nil {
		slog.WarnContext(ctx, "failed to create email index", logging.ErrKey, err,
			"user_uid", user.UID)
	}

	return nil
}

// GetUser retrieves an account by UID.
func (r *NatsUserRepository) GetUser(ctx context.Context, userUID string) (*models.User, error) {
	key := r.keyBuilder.EntityKeyEncoded(KeyPrefixUser, userUID)
	return r.NatsBaseRepository.Get(ctx, key)
}

// GetUserByEmail retrieves an account through the email index.
func (r *NatsUserRepository) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	userUID, err := r.lookupEmailIndex(ctx, email)
	if err != nil {
		return nil, err
	}
	return r.GetUser(ctx, userUID)
}

// UserExistsByEmail checks whether an account with the given email exists.
func (r *NatsUserRepository) UserExistsByEmail(ctx context.Context, email string) (bool, error) {
	_, err := r.lookupEmailIndex(ctx, email)
	if err != nil {
		if domain.GetErrorType(err) == domain.ErrorTypeNotFound {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// RecordActivity appends an entry to the account's activity log.
func (r *NatsUserRepository) RecordActivity(ctx context.Context, activity *models.Activity) error {
	if activity.UID == "" {
		activity.UID = uuid.New().String()
	}

	key := r.keyBuilder.EntityKeyEncoded(
		fmt.Sprintf("%s/%s", KeyPrefixActivity, activity.UserUID), activity.UID)
	return r.activities.Create(ctx, key, activity)
}

// ListActivities returns the account's activity log, most recent first.
func (r *NatsUserRepository) ListActivities(ctx context.Context, userUID string) ([]*models.Activity, error) {
	pattern := fmt.Sprintf("%s/%s/", KeyPrefixActivity, userUID)
	activities, err := r.activities.ListEntitiesEncoded(ctx, pattern, r.keyBuilder)
	if err != nil {
		return nil, err
	}

	sort.Slice(activities, func(i, j int) bool {
		return activities[i].Date.After(activities[j].Date)
	})

	return activities, nil
}

// lookupEmailIndex resolves an email address to a user UID by scanning the
// email index keys.
func (r *NatsUserRepository) lookupEmailIndex(ctx context.Context, email string) (string, error) {
	keys, err := r.NatsBaseRepository.ListKeys(ctx)
	if err != nil {
		return "", err
	}

	prefix := fmt.Sprintf("/%s/%s/%s/", KeyPrefixIndex, KeyPrefixIndexEmail, email)
	for _, encodedKey := range keys {
		decodedKey, err := r.keyBuilder.DecodeKey(encodedKey)
		if err != nil {
			continue
		}
		if strings.HasPrefix(decodedKey, prefix) {
			return strings.TrimPrefix(decodedKey, prefix), nil
		}
	}

	return "", domain.NewNotFoundError(fmt.Sprintf("user with email '%s' not found", email))
}
