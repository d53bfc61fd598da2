package booking

import (
	"errors"
	"time"
)

var ErrInvalidDateRange = errors.New("check-in must be before check-out")

// DateRange is the half-open stay interval [checkIn, checkOut).
type DateRange struct {
	checkIn  time.Time
	checkOut time.Time
}

func NewDateRange(checkIn, checkOut time.Time) (DateRange, error) {
	if !checkIn.Before(checkOut) {
		return DateRange{}, ErrInvalidDateRange
	}

	return DateRange{
		checkIn:  checkIn,
		checkOut: checkOut,
	}, nil
}

func (d DateRange) CheckIn() time.Time {
	return d.checkIn
}

func (d DateRange) CheckOut() time.Time {
	return d.checkOut
}

func (d DateRange) Duration() time.Duration {
	return d.checkOut.Sub(d.checkIn)
}

// Nights truncates the stay to whole 24h days. A 23h59m stay counts as
// zero nights; only the surcharge is billed for it.
func (d DateRange) Nights() int64 {
	return int64(d.Duration() / (24 * time.Hour))
}

type Money struct {
	cents int64
}

func NewMoney(cents int64) Money {
	return Money{cents: cents}
}

func (m Money) Cents() int64 {
	return m.cents
}

func (m Money) Units() float64 {
	return float64(m.cents) / 100.0
}

func (m Money) Add(other Money) Money {
	return Money{cents: m.cents + other.cents}
}
