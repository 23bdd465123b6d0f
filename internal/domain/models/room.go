// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package models

// Room is the key-value store representation of a bookable room.
type Room struct {
	UID      string `json:"uid"`
	Name     string `json:"name"`
	Capacity int    `json:"capacity,omitempty"`
}

// FreeFormRoomUID is the reserved pseudo-room for free-form minutes
// containers. It is never conflict-checked.
const FreeFormRoomUID = "free"
