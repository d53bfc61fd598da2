package queries

import (
	"context"

	"hotel-booking-api/internal/infra"
	"hotel-booking-api/internal/pkg/errs"

	"github.com/google/uuid"
)

type CatalogStore interface {
	FindCategories(ctx context.Context) ([]*CategoryView, error)
	FindCategoryByID(ctx context.Context, id uuid.UUID) (*CategoryView, error)
	FindAmenities(ctx context.Context) ([]*AmenityView, error)
	FindAmenityByID(ctx context.Context, id uuid.UUID) (*AmenityView, error)
	FindRooms(ctx context.Context) ([]*RoomView, error)
	FindRoomByID(ctx context.Context, id uuid.UUID) (*RoomView, error)
}

type CatalogQueries interface {
	ListCategories(ctx context.Context) ([]*CategoryView, error)
	GetCategory(ctx context.Context, id uuid.UUID) (*CategoryView, error)
	ListAmenities(ctx context.Context) ([]*AmenityView, error)
	GetAmenity(ctx context.Context, id uuid.UUID) (*AmenityView, error)
	ListRooms(ctx context.Context) ([]*RoomView, error)
	GetRoom(ctx context.Context, id uuid.UUID) (*RoomView, error)
}

type catalogQueriesImpl struct {
	store CatalogStore
}

func NewCatalogQueries(store CatalogStore) CatalogQueries {
	return &catalogQueriesImpl{store: store}
}

func (q *catalogQueriesImpl) ListCategories(ctx context.Context) ([]*CategoryView, error) {
	views, err := q.store.FindCategories(ctx)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return views, nil
}

func (q *catalogQueriesImpl) GetCategory(ctx context.Context, id uuid.UUID) (*CategoryView, error) {
	view, err := q.store.FindCategoryByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrCategoryNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return view, nil
}

func (q *catalogQueriesImpl) ListAmenities(ctx context.Context) ([]*AmenityView, error) {
	views, err := q.store.FindAmenities(ctx)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return views, nil
}

func (q *catalogQueriesImpl) GetAmenity(ctx context.Context, id uuid.UUID) (*AmenityView, error) {
	view, err := q.store.FindAmenityByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrAmenityNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return view, nil
}

func (q *catalogQueriesImpl) ListRooms(ctx context.Context) ([]*RoomView, error) {
	views, err := q.store.FindRooms(ctx)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return views, nil
}

func (q *catalogQueriesImpl) GetRoom(ctx context.Context, id uuid.UUID) (*RoomView, error) {
	view, err := q.store.FindRoomByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrRoomNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return view, nil
}
