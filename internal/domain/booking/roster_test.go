//go:build unit

package booking_test

import (
	"testing"

	"hotel-booking-api/internal/domain/booking"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRoster(t *testing.T) {
	ownerID := uuid.New()

	t.Run("owner only", func(t *testing.T) {
		roster, err := booking.NewRoster(ownerID, nil)
		require.NoError(t, err)
		require.Len(t, roster, 1)
		assert.Equal(t, ownerID, roster[0].UserID)
		assert.True(t, roster[0].IsOwner)
	})

	t.Run("owner first, additional guests as non-owners", func(t *testing.T) {
		guestA, guestB := uuid.New(), uuid.New()
		roster, err := booking.NewRoster(ownerID, []uuid.UUID{guestA, guestB})
		require.NoError(t, err)
		require.Len(t, roster, 3)

		assert.True(t, roster[0].IsOwner)
		assert.Equal(t, guestA, roster[1].UserID)
		assert.False(t, roster[1].IsOwner)
		assert.Equal(t, guestB, roster[2].UserID)
		assert.False(t, roster[2].IsOwner)
	})

	t.Run("entries get distinct ids", func(t *testing.T) {
		roster, err := booking.NewRoster(ownerID, []uuid.UUID{uuid.New()})
		require.NoError(t, err)
		assert.NotEqual(t, roster[0].ID, roster[1].ID)
	})

	t.Run("repeated guest id is rejected", func(t *testing.T) {
		guest := uuid.New()
		_, err := booking.NewRoster(ownerID, []uuid.UUID{guest, guest})
		assert.ErrorIs(t, err, booking.ErrDuplicateGuest)
	})

	t.Run("owner listed as additional guest is rejected", func(t *testing.T) {
		_, err := booking.NewRoster(ownerID, []uuid.UUID{ownerID})
		assert.ErrorIs(t, err, booking.ErrDuplicateGuest)
	})
}

func TestReplacementRoster(t *testing.T) {
	ownerID := uuid.New()

	t.Run("builds only non-owner entries", func(t *testing.T) {
		guestA, guestB := uuid.New(), uuid.New()
		roster, err := booking.ReplacementRoster(ownerID, []uuid.UUID{guestA, guestB})
		require.NoError(t, err)
		require.Len(t, roster, 2)
		for _, entry := range roster {
			assert.False(t, entry.IsOwner)
		}
	})

	t.Run("owner id in the list is dropped, not demoted", func(t *testing.T) {
		guest := uuid.New()
		roster, err := booking.ReplacementRoster(ownerID, []uuid.UUID{ownerID, guest})
		require.NoError(t, err)
		require.Len(t, roster, 1)
		assert.Equal(t, guest, roster[0].UserID)
	})

	t.Run("empty list clears the non-owner roster", func(t *testing.T) {
		roster, err := booking.ReplacementRoster(ownerID, nil)
		require.NoError(t, err)
		assert.Empty(t, roster)
	})

	t.Run("repeated guest id is rejected", func(t *testing.T) {
		guest := uuid.New()
		_, err := booking.ReplacementRoster(ownerID, []uuid.UUID{guest, guest})
		assert.ErrorIs(t, err, booking.ErrDuplicateGuest)
	})
}

func TestRosterPolicies(t *testing.T) {
	ownerID, guestID, outsiderID := uuid.New(), uuid.New(), uuid.New()
	roster, err := booking.NewRoster(ownerID, []uuid.UUID{guestID})
	require.NoError(t, err)

	t.Run("party membership", func(t *testing.T) {
		assert.True(t, booking.IsPartyToBooking(roster, ownerID))
		assert.True(t, booking.IsPartyToBooking(roster, guestID))
		assert.False(t, booking.IsPartyToBooking(roster, outsiderID))
	})

	t.Run("ownership", func(t *testing.T) {
		assert.True(t, booking.IsOwner(roster, ownerID))
		assert.False(t, booking.IsOwner(roster, guestID))
		assert.False(t, booking.IsOwner(roster, outsiderID))
	})

	t.Run("owner lookup", func(t *testing.T) {
		owner, ok := booking.Owner(roster)
		require.True(t, ok)
		assert.Equal(t, ownerID, owner.UserID)

		_, ok = booking.Owner(nil)
		assert.False(t, ok)
	})
}
