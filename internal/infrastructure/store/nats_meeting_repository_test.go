// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package store

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/roombook/room-booking-service/internal/domain"
	"github.com/roombook/room-booking-service/internal/domain/models"
)

func TestNatsMeetingRepository_CreateMeeting(t *testing.T) {
	kv := newMockNatsKeyValue()
	repo := NewNatsMeetingRepository(kv)

	now := time.Now()
	meeting := &models.Meeting{
		UID:       "test-meeting-123",
		Title:     "Weekly Sync",
		RoomUID:   "room-1",
		Date:      time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC),
		StartTime: "09:00",
		EndTime:   "10:00",
		CreatedAt: &now,
	}

	err := repo.CreateMeeting(context.Background(), meeting)
	if err != nil {
		t.Errorf("unexpected error: %v", err)
	}

	storedData, exists := kv.data[meeting.UID]
	if !exists {
		t.Fatal("expected meeting to be stored")
	}

	var storedMeeting models.Meeting
	if err := json.Unmarshal(storedData, &storedMeeting); err != nil {
		t.Errorf("failed to unmarshal stored meeting: %v", err)
	}

	if storedMeeting.UID != meeting.UID {
		t.Errorf("expected UID %s, got %s", meeting.UID, storedMeeting.UID)
	}
	if storedMeeting.Title != meeting.Title {
		t.Errorf("expected Title %s, got %s", meeting.Title, storedMeeting.Title)
	}
}

func TestNatsMeetingRepository_CreateMeeting_GeneratesUID(t *testing.T) {
	kv := newMockNatsKeyValue()
	repo := NewNatsMeetingRepository(kv)

	meeting := &models.Meeting{Title: "Untitled"}

	err := repo.CreateMeeting(context.Background(), meeting)
	if err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if meeting.UID == "" {
		t.Error("expected UID to be generated")
	}
	if _, exists := kv.data[meeting.UID]; !exists {
		t.Error("expected meeting stored under generated UID")
	}
}

func TestNatsMeetingRepository_CreateMeeting_Error(t *testing.T) {
	kv := newMockNatsKeyValue()
	kv.putError = errors.New("put failed")
	repo := NewNatsMeetingRepository(kv)

	meeting := &models.Meeting{UID: "test-meeting-123", Title: "Weekly Sync"}

	err := repo.CreateMeeting(context.Background(), meeting)
	if err == nil {
		t.Error("expected error but got nil")
	}
	if domain.GetErrorType(err) != domain.ErrorTypeInternal {
		t.Errorf("expected internal error, got %v", err)
	}
}

func TestNatsMeetingRepository_MeetingExists(t *testing.T) {
	kv := newMockNatsKeyValue()
	repo := NewNatsMeetingRepository(kv)

	exists, err := repo.MeetingExists(context.Background(), "non-existent")
	if err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if exists {
		t.Error("expected meeting to not exist")
	}

	kv.data["existing-meeting"] = []byte(`{"uid":"existing-meeting","title":"Weekly Sync"}`)
	kv.revisions["existing-meeting"] = 1

	exists, err = repo.MeetingExists(context.Background(), "existing-meeting")
	if err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if !exists {
		t.Error("expected meeting to exist")
	}
}

func TestNatsMeetingRepository_GetMeetingWithRevision(t *testing.T) {
	kv := newMockNatsKeyValue()
	repo := NewNatsMeetingRepository(kv)

	kv.data["meeting-1"] = []byte(`{"uid":"meeting-1","title":"Planning"}`)
	kv.revisions["meeting-1"] = 7

	meeting, revision, err := repo.GetMeetingWithRevision(context.Background(), "meeting-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if meeting.Title != "Planning" {
		t.Errorf("expected Title Planning, got %s", meeting.Title)
	}
	if revision != 7 {
		t.Errorf("expected revision 7, got %d", revision)
	}
}

func TestNatsMeetingRepository_GetMeeting_NotFound(t *testing.T) {
	kv := newMockNatsKeyValue()
	repo := NewNatsMeetingRepository(kv)

	_, err := repo.GetMeeting(context.Background(), "missing")
	if err == nil {
		t.Fatal("expected error but got nil")
	}
	if domain.GetErrorType(err) != domain.ErrorTypeNotFound {
		t.Errorf("expected not found error, got %v", err)
	}
}

func TestNatsMeetingRepository_DeleteMeeting(t *testing.T) {
	kv := newMockNatsKeyValue()
	repo := NewNatsMeetingRepository(kv)

	kv.data["meeting-1"] = []byte(`{"uid":"meeting-1"}`)
	kv.revisions["meeting-1"] = 3

	err := repo.DeleteMeeting(context.Background(), "meeting-1", 3)
	if err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if _, exists := kv.data["meeting-1"]; exists {
		t.Error("expected meeting to be deleted")
	}
}

func TestNatsMeetingRepository_ListMeetingsByRoomAndDate(t *testing.T) {
	kv := newMockNatsKeyValue()
	repo := NewNatsMeetingRepository(kv)

	store := func(m *models.Meeting) {
		data, err := json.Marshal(m)
		if err != nil {
			t.Fatalf("marshal: %v", err)
		}
		kv.data[m.UID] = data
		kv.revisions[m.UID] = 1
	}

	day := time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC)
	store(&models.Meeting{UID: "m1", RoomUID: "room-1", Date: day})
	store(&models.Meeting{UID: "m2", RoomUID: "room-2", Date: day})
	store(&models.Meeting{UID: "m3", RoomUID: "room-1", Date: day.AddDate(0, 0, 1)})

	meetings, err := repo.ListMeetingsByRoomAndDate(context.Background(), "room-1", day)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(meetings) != 1 {
		t.Fatalf("expected 1 meeting, got %d", len(meetings))
	}
	if meetings[0].UID != "m1" {
		t.Errorf("expected m1, got %s", meetings[0].UID)
	}
}
