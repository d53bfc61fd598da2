package readstore

import (
	"context"

	"hotel-booking-api/internal/infra"
	"hotel-booking-api/internal/infra/db"
	"hotel-booking-api/internal/pkg/pgconv"
	"hotel-booking-api/internal/usecase/queries"

	"github.com/google/uuid"
)

// CatalogReadStore serves the read-only room catalog: rooms with their
// category and amenities, plus the category and amenity dictionaries.
type CatalogReadStore struct {
	dbtx db.DBTX
}

func NewCatalogReadStore(dbtx db.DBTX) *CatalogReadStore {
	return &CatalogReadStore{dbtx: dbtx}
}

func (s *CatalogReadStore) FindCategories(ctx context.Context) ([]*queries.CategoryView, error) {
	const q = `
		SELECT id, name, description
		FROM room_categories
		ORDER BY name`

	rows, err := s.dbtx.Query(ctx, q)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list categories", err)
	}
	defer rows.Close()

	var views []*queries.CategoryView
	for rows.Next() {
		var v queries.CategoryView
		if err := rows.Scan(&v.ID, &v.Name, &v.Description); err != nil {
			return nil, infra.WrapRepoErr("failed to scan category", err)
		}
		views = append(views, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate categories", err)
	}
	return views, nil
}

func (s *CatalogReadStore) FindCategoryByID(ctx context.Context, id uuid.UUID) (*queries.CategoryView, error) {
	const q = `
		SELECT id, name, description
		FROM room_categories
		WHERE id = $1`

	var v queries.CategoryView
	err := s.dbtx.QueryRow(ctx, q, id).Scan(&v.ID, &v.Name, &v.Description)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("category not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find category", err)
	}
	return &v, nil
}

func (s *CatalogReadStore) FindAmenities(ctx context.Context) ([]*queries.AmenityView, error) {
	const q = `
		SELECT id, name, description
		FROM amenities
		ORDER BY name`

	rows, err := s.dbtx.Query(ctx, q)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list amenities", err)
	}
	defer rows.Close()

	var views []*queries.AmenityView
	for rows.Next() {
		var v queries.AmenityView
		if err := rows.Scan(&v.ID, &v.Name, &v.Description); err != nil {
			return nil, infra.WrapRepoErr("failed to scan amenity", err)
		}
		views = append(views, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate amenities", err)
	}
	return views, nil
}

func (s *CatalogReadStore) FindAmenityByID(ctx context.Context, id uuid.UUID) (*queries.AmenityView, error) {
	const q = `
		SELECT id, name, description
		FROM amenities
		WHERE id = $1`

	var v queries.AmenityView
	err := s.dbtx.QueryRow(ctx, q, id).Scan(&v.ID, &v.Name, &v.Description)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("amenity not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find amenity", err)
	}
	return &v, nil
}

func (s *CatalogReadStore) FindRooms(ctx context.Context) ([]*queries.RoomView, error) {
	const q = `
		SELECT r.id, r.title, r.description, r.price_per_night_cents, r.status,
		       c.id, c.name, c.description,
		       r.created_at, r.updated_at
		FROM rooms r
		JOIN room_categories c ON c.id = r.category_id
		ORDER BY r.title`

	rows, err := s.dbtx.Query(ctx, q)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list rooms", err)
	}
	defer rows.Close()

	var views []*queries.RoomView
	for rows.Next() {
		v, err := scanRoom(rows)
		if err != nil {
			return nil, err
		}
		views = append(views, v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate rooms", err)
	}

	if err := s.attachAmenities(ctx, views); err != nil {
		return nil, err
	}
	return views, nil
}

func (s *CatalogReadStore) FindRoomByID(ctx context.Context, id uuid.UUID) (*queries.RoomView, error) {
	const q = `
		SELECT r.id, r.title, r.description, r.price_per_night_cents, r.status,
		       c.id, c.name, c.description,
		       r.created_at, r.updated_at
		FROM rooms r
		JOIN room_categories c ON c.id = r.category_id
		WHERE r.id = $1`

	v, err := scanRoom(s.dbtx.QueryRow(ctx, q, id))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("room not found", err, infra.KindNotFound)
		}
		return nil, err
	}

	if err := s.attachAmenities(ctx, []*queries.RoomView{v}); err != nil {
		return nil, err
	}
	return v, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRoom(row rowScanner) (*queries.RoomView, error) {
	var v queries.RoomView
	err := row.Scan(
		&v.ID, &v.Title, &v.Description, &v.PricePerNightCents, &v.Status,
		&v.Category.ID, &v.Category.Name, &v.Category.Description,
		&v.CreatedAt, &v.UpdatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, err
		}
		return nil, infra.WrapRepoErr("failed to scan room", err)
	}
	return &v, nil
}

// attachAmenities resolves the many-to-many in one extra query instead of
// a per-room lookup.
func (s *CatalogReadStore) attachAmenities(ctx context.Context, rooms []*queries.RoomView) error {
	if len(rooms) == 0 {
		return nil
	}

	ids := make([]uuid.UUID, 0, len(rooms))
	byID := make(map[uuid.UUID]*queries.RoomView, len(rooms))
	for _, r := range rooms {
		r.Amenities = []queries.AmenityView{}
		ids = append(ids, r.ID)
		byID[r.ID] = r
	}

	const q = `
		SELECT ra.room_id, a.id, a.name, a.description
		FROM room_amenities ra
		JOIN amenities a ON a.id = ra.amenity_id
		WHERE ra.room_id = ANY($1)
		ORDER BY a.name`

	rows, err := s.dbtx.Query(ctx, q, ids)
	if err != nil {
		return infra.WrapRepoErr("failed to list room amenities", err)
	}
	defer rows.Close()

	for rows.Next() {
		var roomID uuid.UUID
		var a queries.AmenityView
		if err := rows.Scan(&roomID, &a.ID, &a.Name, &a.Description); err != nil {
			return infra.WrapRepoErr("failed to scan room amenity", err)
		}
		if r, ok := byID[roomID]; ok {
			r.Amenities = append(r.Amenities, a)
		}
	}
	if err := rows.Err(); err != nil {
		return infra.WrapRepoErr("failed to iterate room amenities", err)
	}
	return nil
}
