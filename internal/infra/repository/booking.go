package repository

import (
	"context"

	"hotel-booking-api/internal/domain/booking"
	"hotel-booking-api/internal/infra"
	"hotel-booking-api/internal/infra/db"
	"hotel-booking-api/internal/usecase/shared"

	"github.com/google/uuid"
)

type BookingRepository struct{}

func NewBookingRepository() shared.BookingRepository {
	return &BookingRepository{}
}

func (r *BookingRepository) Create(ctx context.Context, dbtx db.DBTX, bk *booking.Booking) (uuid.UUID, error) {
	const q = `
		INSERT INTO bookings (id, room_id, check_in, check_out, total_price_cents, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, now(), now())
		RETURNING id`

	var id uuid.UUID
	err := dbtx.QueryRow(ctx, q,
		bk.ID(), bk.RoomID(), bk.Dates().CheckIn(), bk.Dates().CheckOut(),
		bk.TotalPrice().Cents(), bk.Status().String(),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create booking", err)
	}
	return id, nil
}

func (r *BookingRepository) Update(ctx context.Context, dbtx db.DBTX, bk *booking.Booking) error {
	const q = `
		UPDATE bookings
		SET room_id = $2, check_in = $3, check_out = $4, total_price_cents = $5, updated_at = now()
		WHERE id = $1`

	tag, err := dbtx.Exec(ctx, q,
		bk.ID(), bk.RoomID(), bk.Dates().CheckIn(), bk.Dates().CheckOut(),
		bk.TotalPrice().Cents(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update booking", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *BookingRepository) UpdateStatus(ctx context.Context, dbtx db.DBTX, id uuid.UUID, status booking.Status) error {
	const q = `
		UPDATE bookings
		SET status = $2, updated_at = now()
		WHERE id = $1`

	tag, err := dbtx.Exec(ctx, q, id, status.String())
	if err != nil {
		return infra.WrapRepoErr("failed to update booking status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	return nil
}
