package repository

import (
	"context"

	"hotel-booking-api/internal/domain/booking"
	"hotel-booking-api/internal/infra"
	"hotel-booking-api/internal/infra/db"
	"hotel-booking-api/internal/usecase/shared"

	"github.com/google/uuid"
)

type RosterRepository struct{}

func NewRosterRepository() shared.RosterRepository {
	return &RosterRepository{}
}

func (r *RosterRepository) AddGuests(ctx context.Context, dbtx db.DBTX, bookingID uuid.UUID, entries []booking.GuestEntry) error {
	const q = `
		INSERT INTO booking_guests (id, booking_id, user_id, is_owner, created_at)
		VALUES ($1, $2, $3, $4, now())`

	for _, e := range entries {
		if _, err := dbtx.Exec(ctx, q, e.ID, bookingID, e.UserID, e.IsOwner); err != nil {
			return infra.WrapRepoErr("failed to add booking guest", err)
		}
	}
	return nil
}

func (r *RosterRepository) DeleteNonOwners(ctx context.Context, dbtx db.DBTX, bookingID uuid.UUID) error {
	const q = `
		DELETE FROM booking_guests
		WHERE booking_id = $1 AND is_owner = false`

	if _, err := dbtx.Exec(ctx, q, bookingID); err != nil {
		return infra.WrapRepoErr("failed to delete booking guests", err)
	}
	return nil
}
