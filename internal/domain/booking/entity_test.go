//go:build unit

package booking_test

import (
	"testing"
	"time"

	"hotel-booking-api/internal/domain/booking"
	"hotel-booking-api/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBooking(t *testing.T) {
	checkIn := time.Date(2026, 9, 10, 15, 0, 0, 0, time.UTC)
	dates, err := booking.NewDateRange(checkIn, checkIn.AddDate(0, 0, 2))
	require.NoError(t, err)

	t.Run("starts in created status with a fresh id", func(t *testing.T) {
		roomID := uuid.New()
		bk, err := booking.NewBooking(roomID, dates, booking.NewMoney(40000))
		require.NoError(t, err)

		assert.NotEqual(t, uuid.Nil, bk.ID())
		assert.Equal(t, roomID, bk.RoomID())
		assert.Equal(t, booking.StatusCreated, bk.Status())
		assert.Equal(t, int64(40000), bk.TotalPrice().Cents())
		assert.False(t, bk.IsActive())
	})

	t.Run("negative price is rejected", func(t *testing.T) {
		_, err := booking.NewBooking(uuid.New(), dates, booking.NewMoney(-1))
		assert.ErrorIs(t, err, booking.ErrNegativePrice)
	})
}

func TestBookingActivate(t *testing.T) {
	checkIn := time.Date(2026, 9, 10, 15, 0, 0, 0, time.UTC)
	checkOut := checkIn.AddDate(0, 0, 2)

	build := func(status string) *booking.Booking {
		bk, err := builder.NewBookingBuilder().
			WithDates(checkIn, checkOut).
			WithStatus(status).
			BuildDomain()
		require.NoError(t, err)
		return bk
	}

	t.Run("activates at check-in", func(t *testing.T) {
		bk := build("created")
		require.NoError(t, bk.Activate(checkIn))
		assert.Equal(t, booking.StatusActive, bk.Status())
		assert.True(t, bk.IsActive())
	})

	t.Run("activates after check-in", func(t *testing.T) {
		bk := build("created")
		require.NoError(t, bk.Activate(checkIn.Add(5*time.Hour)))
		assert.True(t, bk.IsActive())
	})

	t.Run("before check-in is too early", func(t *testing.T) {
		bk := build("created")
		err := bk.Activate(checkIn.Add(-time.Minute))
		assert.ErrorIs(t, err, booking.ErrActivationTooEarly)
		assert.Equal(t, booking.StatusCreated, bk.Status())
	})

	t.Run("second activation fails", func(t *testing.T) {
		bk := build("created")
		require.NoError(t, bk.Activate(checkIn))
		assert.ErrorIs(t, bk.Activate(checkIn), booking.ErrAlreadyActivated)
	})

	t.Run("status is checked before timing", func(t *testing.T) {
		// An already-active booking reports the status failure even when
		// the clock would also be too early.
		bk := build("active")
		err := bk.Activate(checkIn.Add(-time.Hour))
		assert.ErrorIs(t, err, booking.ErrAlreadyActivated)
	})

	t.Run("terminal statuses cannot activate", func(t *testing.T) {
		for _, status := range []string{"completed", "canceled"} {
			t.Run(status, func(t *testing.T) {
				bk := build(status)
				assert.ErrorIs(t, bk.Activate(checkIn), booking.ErrAlreadyActivated)
			})
		}
	})
}

func TestBookingReprice(t *testing.T) {
	bk, err := builder.NewBookingBuilder().BuildDomain()
	require.NoError(t, err)

	t.Run("replaces the total", func(t *testing.T) {
		require.NoError(t, bk.Reprice(booking.NewMoney(75000)))
		assert.Equal(t, int64(75000), bk.TotalPrice().Cents())
	})

	t.Run("rejects a negative total", func(t *testing.T) {
		assert.ErrorIs(t, bk.Reprice(booking.NewMoney(-100)), booking.ErrNegativePrice)
	})
}
