package booking

import "github.com/google/uuid"

// Authorization predicates over a booking's roster, kept separate from the
// handlers so they can be tested in isolation.

func IsPartyToBooking(roster []GuestEntry, userID uuid.UUID) bool {
	for _, entry := range roster {
		if entry.UserID == userID {
			return true
		}
	}
	return false
}

func IsOwner(roster []GuestEntry, userID uuid.UUID) bool {
	for _, entry := range roster {
		if entry.UserID == userID {
			return entry.IsOwner
		}
	}
	return false
}

func Owner(roster []GuestEntry) (GuestEntry, bool) {
	for _, entry := range roster {
		if entry.IsOwner {
			return entry, true
		}
	}
	return GuestEntry{}, false
}
