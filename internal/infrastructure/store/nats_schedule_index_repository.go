// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package store

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/roombook/room-booking-service/internal/domain"
	"github.com/roombook/room-booking-service/internal/scheduling"
)

// scheduleIndexMaxRetries bounds the compare-and-swap retry loop when
// concurrent writers touch the same room-day record.
const scheduleIndexMaxRetries = 5

// ScheduleDay is the stored busy-interval record for one room and day.
// Records are msgpack encoded since they are written on every booking and
// read on every availability query.
type ScheduleDay struct {
	Intervals []scheduling.BusyInterval `msgpack:"intervals"`
}

// NatsScheduleIndexRepository maintains per-room/per-day busy-interval
// records in the schedule-index bucket, keyed "<room-uid>/<YYYY-MM-DD>".
type NatsScheduleIndexRepository struct {
	*NatsBaseRepository[ScheduleDay]
}

// NewNatsScheduleIndexRepository creates a new NATS KV store repository for
// the schedule index.
func NewNatsScheduleIndexRepository(kvStore INatsKeyValue) *NatsScheduleIndexRepository {
	return &NatsScheduleIndexRepository{
		NatsBaseRepository: NewNatsBaseRepositoryWithCodec[ScheduleDay](kvStore, "schedule day", CodecMsgpack),
	}
}

func scheduleDayKey(roomUID string, date time.Time) string {
	return fmt.Sprintf("%s/%s", roomUID, date.Format(time.DateOnly))
}

// GetBusyIntervals returns the committed bookings for a room and day sorted
// by start time. A missing record means the day is empty.
func (r *NatsScheduleIndexRepository) GetBusyIntervals(ctx context.Context, roomUID string, date time.Time) ([]scheduling.BusyInterval, error) {
	record, err := r.NatsBaseRepository.Get(ctx, scheduleDayKey(roomUID, date))
	if err != nil {
		if domain.GetErrorType(err) == domain.ErrorTypeNotFound {
			return nil, nil
		}
		return nil, err
	}

	intervals := record.Intervals
	sort.Slice(intervals, func(i, j int) bool {
		return intervals[i].Start.Minutes() < intervals[j].Start.Minutes()
	})

	return intervals, nil
}

// AddBusyInterval appends a committed booking to the room-day record.
func (r *NatsScheduleIndexRepository) AddBusyInterval(ctx context.Context, roomUID string, date time.Time, busy scheduling.BusyInterval) error {
	return r.mutate(ctx, scheduleDayKey(roomUID, date), func(record *ScheduleDay) {
		record.Intervals = append(record.Intervals, busy)
	})
}

// RemoveBusyInterval drops the booking with the given UID from the room-day
// record. Removing a UID that is not present is a no-op.
func (r *NatsScheduleIndexRepository) RemoveBusyInterval(ctx context.Context, roomUID string, date time.Time, bookingUID string) error {
	return r.mutate(ctx, scheduleDayKey(roomUID, date), func(record *ScheduleDay) {
		kept := record.Intervals[:0]
		for _, iv := range record.Intervals {
			if iv.UID != bookingUID {
				kept = append(kept, iv)
			}
		}
		record.Intervals = kept
	})
}

// mutate applies fn to the room-day record under a compare-and-swap loop so
// concurrent bookings on the same room and day cannot lose updates.
func (r *NatsScheduleIndexRepository) mutate(ctx context.Context, key string, fn func(*ScheduleDay)) error {
	var lastErr error
	for attempt := 0; attempt < scheduleIndexMaxRetries; attempt++ {
		record, revision, err := r.NatsBaseRepository.GetWithRevision(ctx, key)
		if err != nil {
			if domain.GetErrorType(err) != domain.ErrorTypeNotFound {
				return err
			}
			record = &ScheduleDay{}
			revision = 0
		}

		fn(record)

		if revision == 0 {
			err = r.NatsBaseRepository.Create(ctx, key, record)
		} else {
			err = r.NatsBaseRepository.Update(ctx, key, record, revision)
		}
		if err == nil {
			return nil
		}
		if domain.GetErrorType(err) != domain.ErrorTypeConflict {
			return err
		}
		lastErr = err
	}

	return domain.NewConflictError("schedule day is being modified concurrently", lastErr)
}
