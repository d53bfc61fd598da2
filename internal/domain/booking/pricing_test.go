//go:build unit

package booking_test

import (
	"testing"
	"time"

	"hotel-booking-api/internal/domain/booking"
	"hotel-booking-api/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNightlyPriceCalculator(t *testing.T) {
	checkIn := time.Date(2026, 9, 10, 15, 0, 0, 0, time.UTC)

	cases := []struct {
		name          string
		priceCents    int64
		checkOut      time.Time
		expectedTotal int64
	}{
		{
			name:          "two full nights",
			priceCents:    15000,
			checkOut:      checkIn.AddDate(0, 0, 2),
			expectedTotal: 2*15000 + booking.SurchargeCents,
		},
		{
			name:          "single night",
			priceCents:    9900,
			checkOut:      checkIn.Add(24 * time.Hour),
			expectedTotal: 9900 + booking.SurchargeCents,
		},
		{
			name:          "partial day truncates to zero nights, surcharge only",
			priceCents:    15000,
			checkOut:      checkIn.Add(23*time.Hour + 59*time.Minute),
			expectedTotal: booking.SurchargeCents,
		},
		{
			name:          "one and a half days bills one night",
			priceCents:    15000,
			checkOut:      checkIn.Add(36 * time.Hour),
			expectedTotal: 15000 + booking.SurchargeCents,
		},
		{
			name:          "free room still pays the surcharge",
			priceCents:    0,
			checkOut:      checkIn.AddDate(0, 0, 3),
			expectedTotal: booking.SurchargeCents,
		},
	}

	calc := booking.NewNightlyPriceCalculator()
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			rm, err := builder.NewRoomBuilder().
				WithPricePerNightCents(c.priceCents).
				BuildDomain()
			require.NoError(t, err)

			dates, err := booking.NewDateRange(checkIn, c.checkOut)
			require.NoError(t, err)

			assert.Equal(t, c.expectedTotal, calc.TotalCents(rm, dates))
		})
	}
}

func TestDateRange(t *testing.T) {
	checkIn := time.Date(2026, 9, 10, 15, 0, 0, 0, time.UTC)

	t.Run("check-in before check-out is accepted", func(t *testing.T) {
		dates, err := booking.NewDateRange(checkIn, checkIn.Add(time.Hour))
		require.NoError(t, err)
		assert.Equal(t, checkIn, dates.CheckIn())
	})

	t.Run("equal instants are rejected", func(t *testing.T) {
		_, err := booking.NewDateRange(checkIn, checkIn)
		assert.ErrorIs(t, err, booking.ErrInvalidDateRange)
	})

	t.Run("inverted range is rejected", func(t *testing.T) {
		_, err := booking.NewDateRange(checkIn, checkIn.Add(-time.Hour))
		assert.ErrorIs(t, err, booking.ErrInvalidDateRange)
	})

	t.Run("nights truncate toward zero", func(t *testing.T) {
		cases := []struct {
			name     string
			duration time.Duration
			nights   int64
		}{
			{"one minute", time.Minute, 0},
			{"just under a day", 24*time.Hour - time.Second, 0},
			{"exactly one day", 24 * time.Hour, 1},
			{"a day and a half", 36 * time.Hour, 1},
			{"a week", 7 * 24 * time.Hour, 7},
		}
		for _, c := range cases {
			t.Run(c.name, func(t *testing.T) {
				dates, err := booking.NewDateRange(checkIn, checkIn.Add(c.duration))
				require.NoError(t, err)
				assert.Equal(t, c.nights, dates.Nights())
			})
		}
	})
}
