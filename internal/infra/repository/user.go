package repository

import (
	"context"
	"time"

	"hotel-booking-api/internal/domain/user"
	"hotel-booking-api/internal/infra"
	"hotel-booking-api/internal/infra/db"
	"hotel-booking-api/internal/usecase/shared"

	"github.com/google/uuid"
)

type UserRepository struct{}

func NewUserRepository() shared.UserRepository {
	return &UserRepository{}
}

func (r *UserRepository) Create(ctx context.Context, dbtx db.DBTX, u *user.User) (uuid.UUID, error) {
	const q = `
		INSERT INTO users (id, email, password_hash, phone_number, first_name, last_name, role, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, now(), now())
		RETURNING id`

	var id uuid.UUID
	err := dbtx.QueryRow(ctx, q,
		u.ID(), u.Email().Value(), u.PasswordHash(), u.PhoneNumber(),
		u.FirstName(), u.LastName(), u.Role().String(), u.IsActive(),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create user", err)
	}
	return id, nil
}

// UpdateProfile applies only the non-nil fields via COALESCE.
func (r *UserRepository) UpdateProfile(ctx context.Context, dbtx db.DBTX, id uuid.UUID, phoneNumber, firstName, lastName *string, passwordHash *string) error {
	const q = `
		UPDATE users
		SET phone_number  = COALESCE($2, phone_number),
		    first_name    = COALESCE($3, first_name),
		    last_name     = COALESCE($4, last_name),
		    password_hash = COALESCE($5, password_hash),
		    updated_at    = now()
		WHERE id = $1`

	tag, err := dbtx.Exec(ctx, q, id, phoneNumber, firstName, lastName, passwordHash)
	if err != nil {
		return infra.WrapRepoErr("failed to update user", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("user not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *UserRepository) UpdateLastLogin(ctx context.Context, dbtx db.DBTX, id uuid.UUID, at time.Time) error {
	const q = `
		UPDATE users
		SET last_login = $2, updated_at = now()
		WHERE id = $1`

	if _, err := dbtx.Exec(ctx, q, id, at); err != nil {
		return infra.WrapRepoErr("failed to update last login", err)
	}
	return nil
}

// Deactivate is a soft delete: the row stays so past bookings keep their
// guest references.
func (r *UserRepository) Deactivate(ctx context.Context, dbtx db.DBTX, id uuid.UUID) error {
	const q = `
		UPDATE users
		SET is_active = false, updated_at = now()
		WHERE id = $1`

	tag, err := dbtx.Exec(ctx, q, id)
	if err != nil {
		return infra.WrapRepoErr("failed to deactivate user", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("user not found", nil, infra.KindNotFound)
	}
	return nil
}
