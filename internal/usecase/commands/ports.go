package commands

import (
	"context"

	"github.com/google/uuid"
)

// QRRenderer turns a credential payload into a scannable raster image.
type QRRenderer interface {
	Render(payload []byte) ([]byte, error)
}

// BlobStore persists rendered images and returns the path they are
// referenced by.
type BlobStore interface {
	Save(ctx context.Context, name string, data []byte) (string, error)
}

// EventPublisher emits booking lifecycle events after commit. Publishing is
// best-effort: implementations log failures and never propagate them.
type EventPublisher interface {
	BookingCreated(ctx context.Context, event BookingCreatedEvent)
	BookingActivated(ctx context.Context, event BookingActivatedEvent)
}

type BookingCreatedEvent struct {
	BookingID       uuid.UUID `json:"booking_id"`
	RoomID          uuid.UUID `json:"room_id"`
	OwnerID         uuid.UUID `json:"owner_id"`
	CheckIn         string    `json:"check_in"`
	CheckOut        string    `json:"check_out"`
	TotalPriceCents int64     `json:"total_price_cents"`
}

type BookingActivatedEvent struct {
	BookingID   uuid.UUID   `json:"booking_id"`
	ActivatedBy uuid.UUID   `json:"activated_by"`
	GuestIDs    []uuid.UUID `json:"guest_ids"`
	ActivatedAt string      `json:"activated_at"`
}
