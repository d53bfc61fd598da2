package readstore

import (
	"context"

	"hotel-booking-api/internal/infra"
	"hotel-booking-api/internal/infra/db"
	"hotel-booking-api/internal/pkg/pgconv"
	"hotel-booking-api/internal/usecase/queries"

	"github.com/google/uuid"
)

type UserReadStore struct {
	dbtx db.DBTX
}

func NewUserReadStore(dbtx db.DBTX) *UserReadStore {
	return &UserReadStore{dbtx: dbtx}
}

func (s *UserReadStore) FindActive(ctx context.Context) ([]*queries.UserView, error) {
	const q = `
		SELECT id, email, phone_number, first_name, last_name, role, is_active, last_login, created_at
		FROM users
		WHERE is_active = true
		ORDER BY created_at`

	rows, err := s.dbtx.Query(ctx, q)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list users", err)
	}
	defer rows.Close()

	var views []*queries.UserView
	for rows.Next() {
		var v queries.UserView
		err := rows.Scan(
			&v.ID, &v.Email, &v.PhoneNumber, &v.FirstName, &v.LastName,
			&v.Role, &v.IsActive, &v.LastLogin, &v.CreatedAt,
		)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan user", err)
		}
		views = append(views, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate users", err)
	}
	return views, nil
}

func (s *UserReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.UserView, error) {
	const q = `
		SELECT id, email, phone_number, first_name, last_name, role, is_active, last_login, created_at
		FROM users
		WHERE id = $1`

	var v queries.UserView
	err := s.dbtx.QueryRow(ctx, q, id).Scan(
		&v.ID, &v.Email, &v.PhoneNumber, &v.FirstName, &v.LastName,
		&v.Role, &v.IsActive, &v.LastLogin, &v.CreatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user", err)
	}
	return &v, nil
}

// FindByEmail also returns the stored hash for login verification.
func (s *UserReadStore) FindByEmail(ctx context.Context, email string) (*queries.UserView, string, error) {
	const q = `
		SELECT id, email, phone_number, first_name, last_name, role, is_active, last_login, created_at, password_hash
		FROM users
		WHERE email = $1`

	var (
		v    queries.UserView
		hash string
	)
	err := s.dbtx.QueryRow(ctx, q, email).Scan(
		&v.ID, &v.Email, &v.PhoneNumber, &v.FirstName, &v.LastName,
		&v.Role, &v.IsActive, &v.LastLogin, &v.CreatedAt, &hash,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, "", infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, "", infra.WrapRepoErr("failed to find user", err)
	}
	return &v, hash, nil
}
