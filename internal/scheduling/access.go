// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package scheduling

import (
	"github.com/roombook/room-booking-service/internal/domain/models"
)

// MembershipSet names the meeting membership set that granted access, for
// observability in request logs.
type MembershipSet string

const (
	MembershipParticipants MembershipSet = "participants"
	MembershipViewers      MembershipSet = "viewers"
	MembershipNone         MembershipSet = ""
)

// Decision is the outcome of a minutes access check.
type Decision struct {
	Allowed bool
	Matched MembershipSet
}

// CheckMinutesAccess decides whether the verified caller may access a
// meeting's minutes: allowed iff the caller is a member of the meeting's
// participant set or viewer set. Stateless; the identity is a read-only
// input and is never stored.
func CheckMinutesAccess(identity models.Identity, participantIDs, viewerIDs []string) Decision {
	for _, id := range participantIDs {
		if id == identity.UserID {
			return Decision{Allowed: true, Matched: MembershipParticipants}
		}
	}
	for _, id := range viewerIDs {
		if id == identity.UserID {
			return Decision{Allowed: true, Matched: MembershipViewers}
		}
	}
	return Decision{Allowed: false, Matched: MembershipNone}
}
