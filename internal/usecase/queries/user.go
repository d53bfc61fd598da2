package queries

import (
	"context"

	"hotel-booking-api/internal/infra"
	"hotel-booking-api/internal/pkg/errs"

	"github.com/google/uuid"
)

type UserStore interface {
	FindActive(ctx context.Context) ([]*UserView, error)
	FindByID(ctx context.Context, id uuid.UUID) (*UserView, error)
	FindByEmail(ctx context.Context, email string) (*UserView, string, error)
}

type UserQueries interface {
	ListActive(ctx context.Context) ([]*UserView, error)
	GetByID(ctx context.Context, id uuid.UUID) (*UserView, error)
	ListBookings(ctx context.Context, userID uuid.UUID) ([]*BookingListItem, error)
}

type userQueriesImpl struct {
	users    UserStore
	bookings BookingStore
}

func NewUserQueries(users UserStore, bookings BookingStore) UserQueries {
	return &userQueriesImpl{users: users, bookings: bookings}
}

func (q *userQueriesImpl) ListActive(ctx context.Context) ([]*UserView, error) {
	views, err := q.users.FindActive(ctx)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return views, nil
}

func (q *userQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*UserView, error) {
	view, err := q.users.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrUserNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return view, nil
}

func (q *userQueriesImpl) ListBookings(ctx context.Context, userID uuid.UUID) ([]*BookingListItem, error) {
	if _, err := q.GetByID(ctx, userID); err != nil {
		return nil, err
	}

	items, err := q.bookings.FindByUserID(ctx, userID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return items, nil
}
