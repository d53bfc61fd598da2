package booking

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrAlreadyActivated   = errors.New("booking already activated")
	ErrActivationTooEarly = errors.New("cannot activate a booking before check-in")
	ErrNegativePrice      = errors.New("price cannot be negative")
)

type Booking struct {
	id         uuid.UUID
	roomID     uuid.UUID
	dates      DateRange
	totalPrice Money
	status     Status
	createdAt  time.Time
	updatedAt  time.Time
}

func NewBooking(roomID uuid.UUID, dates DateRange, totalPrice Money) (*Booking, error) {
	if totalPrice.Cents() < 0 {
		return nil, ErrNegativePrice
	}

	return &Booking{
		id:         uuid.New(),
		roomID:     roomID,
		dates:      dates,
		totalPrice: totalPrice,
		status:     StatusCreated,
	}, nil
}

func ReconstructBooking(
	id, roomID uuid.UUID,
	dates DateRange,
	totalPrice Money,
	status Status,
	createdAt, updatedAt time.Time,
) *Booking {
	return &Booking{
		id:         id,
		roomID:     roomID,
		dates:      dates,
		totalPrice: totalPrice,
		status:     status,
		createdAt:  createdAt,
		updatedAt:  updatedAt,
	}
}

// Activate is the only state transition: created -> active. The status
// precondition is checked before the timing one; callers verify party
// membership after both, preserving the failure order of the check-in flow.
func (b *Booking) Activate(now time.Time) error {
	if b.status != StatusCreated {
		return ErrAlreadyActivated
	}
	if now.Before(b.dates.CheckIn()) {
		return ErrActivationTooEarly
	}
	b.status = StatusActive
	return nil
}

func (b *Booking) Reprice(totalPrice Money) error {
	if totalPrice.Cents() < 0 {
		return ErrNegativePrice
	}
	b.totalPrice = totalPrice
	return nil
}

func (b *Booking) IsActive() bool {
	return b.status == StatusActive
}

func (b *Booking) ID() uuid.UUID        { return b.id }
func (b *Booking) RoomID() uuid.UUID    { return b.roomID }
func (b *Booking) Dates() DateRange     { return b.dates }
func (b *Booking) TotalPrice() Money    { return b.totalPrice }
func (b *Booking) Status() Status       { return b.status }
func (b *Booking) CreatedAt() time.Time { return b.createdAt }
func (b *Booking) UpdatedAt() time.Time { return b.updatedAt }
