// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package models

import "time"

// Permission tags granted to users. New accounts receive the free-minutes
// pair; everything else is assigned out of band.
const (
	PermissionCreateFreeMinutes = "create_free_minutes"
	PermissionViewFreeMinutes   = "view_free_minutes"
)

// User is the key-value store representation of an account.
type User struct {
	UID          string     `json:"uid"`
	Name         string     `json:"name"`
	Email        string     `json:"email"`
	PasswordHash string     `json:"password_hash"`
	Role         string     `json:"role"`
	Permissions  []string   `json:"permissions,omitempty"`
	CreatedAt    *time.Time `json:"created_at,omitempty"`
}

// Identity is the verified caller principal consumed by authorization
// decisions. It is produced by the credential verifier per request and is
// never persisted.
type Identity struct {
	UserID      string   `json:"user_id"`
	Permissions []string `json:"permissions,omitempty"`
}

// HasPermission reports whether the identity carries the given tag.
func (i Identity) HasPermission(tag string) bool {
	for _, p := range i.Permissions {
		if p == tag {
			return true
		}
	}
	return false
}

// Activity is one recorded account event, returned by the profile activity
// listing.
type Activity struct {
	UID     string    `json:"uid"`
	UserUID string    `json:"user_uid"`
	Action  string    `json:"action"`
	Date    time.Time `json:"date"`
	IP      string    `json:"ip,omitempty"`
	Device  string    `json:"device,omitempty"`
}
