package queries

import (
	"context"

	"hotel-booking-api/internal/domain/booking"
	"hotel-booking-api/internal/infra"
	"hotel-booking-api/internal/pkg/errs"

	"github.com/google/uuid"
)

type BookingStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]*BookingListItem, error)
	FindActiveCredential(ctx context.Context, bookingID, userID uuid.UUID) (*CredentialView, error)
}

type BookingQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*BookingListItem, error)
	// GetMyCredential resolves the caller's QR credential for an activated
	// booking. Failure order: party membership, booking state, lookup.
	GetMyCredential(ctx context.Context, bookingID, userID uuid.UUID) (*CredentialView, error)
}

type bookingQueriesImpl struct {
	store BookingStore
}

func NewBookingQueries(store BookingStore) BookingQueries {
	return &bookingQueriesImpl{store: store}
}

func (q *bookingQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*BookingView, error) {
	view, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrBookingNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return view, nil
}

func (q *bookingQueriesImpl) ListByUser(ctx context.Context, userID uuid.UUID) ([]*BookingListItem, error) {
	items, err := q.store.FindByUserID(ctx, userID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return items, nil
}

func (q *bookingQueriesImpl) GetMyCredential(ctx context.Context, bookingID, userID uuid.UUID) (*CredentialView, error) {
	view, err := q.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	if !isParty(view.Guests, userID) {
		return nil, errs.ErrNotBookingParty
	}
	if view.Status != booking.StatusActive.String() {
		return nil, errs.ErrBookingNotActive
	}

	cred, err := q.store.FindActiveCredential(ctx, bookingID, userID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrCredentialNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return cred, nil
}

func isParty(guests []GuestView, userID uuid.UUID) bool {
	for _, g := range guests {
		if g.UserID == userID {
			return true
		}
	}
	return false
}
