package readstore

import (
	"context"

	"hotel-booking-api/internal/infra"
	"hotel-booking-api/internal/infra/db"
	"hotel-booking-api/internal/pkg/pgconv"
	"hotel-booking-api/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingReadStore struct {
	dbtx db.DBTX
}

func NewBookingReadStore(dbtx db.DBTX) *BookingReadStore {
	return &BookingReadStore{dbtx: dbtx}
}

func (s *BookingReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.BookingView, error) {
	const q = `
		SELECT b.id, b.room_id, r.title, b.check_in, b.check_out,
		       b.total_price_cents, b.status, b.created_at, b.updated_at
		FROM bookings b
		JOIN rooms r ON r.id = b.room_id
		WHERE b.id = $1`

	var v queries.BookingView
	err := s.dbtx.QueryRow(ctx, q, id).Scan(
		&v.ID, &v.RoomID, &v.RoomTitle, &v.CheckIn, &v.CheckOut,
		&v.TotalPriceCents, &v.Status, &v.CreatedAt, &v.UpdatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking", err)
	}

	if v.Guests, err = s.findGuests(ctx, id); err != nil {
		return nil, err
	}
	if v.Payments, err = s.findPayments(ctx, id); err != nil {
		return nil, err
	}
	return &v, nil
}

func (s *BookingReadStore) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*queries.BookingListItem, error) {
	const q = `
		SELECT b.id, b.room_id, r.title, b.check_in, b.check_out,
		       b.total_price_cents, b.status, b.created_at
		FROM bookings b
		JOIN rooms r ON r.id = b.room_id
		JOIN booking_guests g ON g.booking_id = b.id
		WHERE g.user_id = $1
		ORDER BY b.created_at DESC`

	rows, err := s.dbtx.Query(ctx, q, userID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings", err)
	}
	defer rows.Close()

	var items []*queries.BookingListItem
	for rows.Next() {
		var it queries.BookingListItem
		err := rows.Scan(
			&it.ID, &it.RoomID, &it.RoomTitle, &it.CheckIn, &it.CheckOut,
			&it.TotalPriceCents, &it.Status, &it.CreatedAt,
		)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan booking", err)
		}
		items = append(items, &it)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate bookings", err)
	}
	return items, nil
}

// FindActiveCredential resolves a guest's QR credential through the
// roster row that ties the user to the booking.
func (s *BookingReadStore) FindActiveCredential(ctx context.Context, bookingID, userID uuid.UUID) (*queries.CredentialView, error) {
	const q = `
		SELECT c.id, g.user_id, g.booking_id, c.image_path, c.status, c.created_at
		FROM qr_credentials c
		JOIN booking_guests g ON g.id = c.guest_id
		WHERE g.booking_id = $1 AND g.user_id = $2 AND c.status = 'active'
		ORDER BY c.created_at DESC
		LIMIT 1`

	var v queries.CredentialView
	err := s.dbtx.QueryRow(ctx, q, bookingID, userID).Scan(
		&v.ID, &v.UserID, &v.BookingID, &v.ImagePath, &v.Status, &v.CreatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("qr credential not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find qr credential", err)
	}
	return &v, nil
}

func (s *BookingReadStore) findGuests(ctx context.Context, bookingID uuid.UUID) ([]queries.GuestView, error) {
	const q = `
		SELECT g.id, g.user_id, g.is_owner, u.email, u.phone_number, u.first_name, u.last_name
		FROM booking_guests g
		JOIN users u ON u.id = g.user_id
		WHERE g.booking_id = $1
		ORDER BY g.is_owner DESC, g.created_at`

	rows, err := s.dbtx.Query(ctx, q, bookingID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list guests", err)
	}
	defer rows.Close()

	guests := []queries.GuestView{}
	for rows.Next() {
		var g queries.GuestView
		err := rows.Scan(&g.ID, &g.UserID, &g.IsOwner, &g.Email, &g.PhoneNumber, &g.FirstName, &g.LastName)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan guest", err)
		}
		guests = append(guests, g)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate guests", err)
	}
	return guests, nil
}

func (s *BookingReadStore) findPayments(ctx context.Context, bookingID uuid.UUID) ([]queries.PaymentView, error) {
	const q = `
		SELECT id, amount_cents, status, created_at
		FROM payments
		WHERE booking_id = $1
		ORDER BY created_at`

	rows, err := s.dbtx.Query(ctx, q, bookingID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list payments", err)
	}
	defer rows.Close()

	payments := []queries.PaymentView{}
	for rows.Next() {
		var p queries.PaymentView
		if err := rows.Scan(&p.ID, &p.AmountCents, &p.Status, &p.CreatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan payment", err)
		}
		payments = append(payments, p)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate payments", err)
	}
	return payments, nil
}
