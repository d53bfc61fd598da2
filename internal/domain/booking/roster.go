package booking

import (
	"errors"

	"github.com/google/uuid"
)

var ErrDuplicateGuest = errors.New("guest already on the booking")

// GuestEntry links one user identity to a booking. Exactly one entry per
// booking is the owner; a user appears at most once per booking.
type GuestEntry struct {
	ID      uuid.UUID
	UserID  uuid.UUID
	IsOwner bool
}

// NewRoster builds the initial roster: the requesting identity as owner
// followed by one non-owner entry per additional guest.
func NewRoster(ownerID uuid.UUID, additionalGuestIDs []uuid.UUID) ([]GuestEntry, error) {
	entries := make([]GuestEntry, 0, len(additionalGuestIDs)+1)
	entries = append(entries, GuestEntry{ID: uuid.New(), UserID: ownerID, IsOwner: true})

	seen := map[uuid.UUID]struct{}{ownerID: {}}
	for _, guestID := range additionalGuestIDs {
		if _, dup := seen[guestID]; dup {
			return nil, ErrDuplicateGuest
		}
		seen[guestID] = struct{}{}
		entries = append(entries, GuestEntry{ID: uuid.New(), UserID: guestID, IsOwner: false})
	}

	return entries, nil
}

// ReplacementRoster builds the non-owner entries that replace the current
// ones on update. The owner entry is never part of the replacement; an
// owner id in the list is dropped rather than demoted.
func ReplacementRoster(ownerID uuid.UUID, guestIDs []uuid.UUID) ([]GuestEntry, error) {
	entries := make([]GuestEntry, 0, len(guestIDs))
	seen := map[uuid.UUID]struct{}{}
	for _, guestID := range guestIDs {
		if guestID == ownerID {
			continue
		}
		if _, dup := seen[guestID]; dup {
			return nil, ErrDuplicateGuest
		}
		seen[guestID] = struct{}{}
		entries = append(entries, GuestEntry{ID: uuid.New(), UserID: guestID, IsOwner: false})
	}
	return entries, nil
}
