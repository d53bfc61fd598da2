package repository

import (
	"context"

	"hotel-booking-api/internal/domain/credential"
	"hotel-booking-api/internal/infra"
	"hotel-booking-api/internal/infra/db"
	"hotel-booking-api/internal/usecase/shared"
)

type CredentialRepository struct{}

func NewCredentialRepository() shared.CredentialRepository {
	return &CredentialRepository{}
}

// BulkInsert writes one credential per guest. Runs inside the activation
// transaction so a failed insert rolls back the status change too.
func (r *CredentialRepository) BulkInsert(ctx context.Context, dbtx db.DBTX, creds []*credential.Credential) error {
	const q = `
		INSERT INTO qr_credentials (id, guest_id, image_path, status, created_at)
		VALUES ($1, $2, $3, $4, now())`

	for _, c := range creds {
		if _, err := dbtx.Exec(ctx, q, c.ID(), c.GuestID(), c.ImagePath(), c.Status().String()); err != nil {
			return infra.WrapRepoErr("failed to insert qr credential", err)
		}
	}
	return nil
}
