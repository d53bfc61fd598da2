//go:build unit || e2e

package builder

import (
	"time"

	"hotel-booking-api/internal/domain/room"
	"hotel-booking-api/internal/usecase/queries"
	"hotel-booking-api/internal/usecase/shared"

	"github.com/google/uuid"
)

type RoomBuilder struct {
	ID                 uuid.UUID
	Title              string
	PricePerNightCents int64
	Status             string
	CategoryID         uuid.UUID
	CategoryName       string
}

func NewRoomBuilder() *RoomBuilder {
	return &RoomBuilder{
		ID:                 uuid.New(),
		Title:              "Deluxe Twin 204",
		PricePerNightCents: 15000,
		Status:             "free",
		CategoryID:         uuid.New(),
		CategoryName:       "Deluxe",
	}
}

func (r *RoomBuilder) BuildDomain() (*room.Room, error) {
	return room.NewRoom(r.ID, r.Title, r.PricePerNightCents, room.Status(r.Status), r.CategoryID)
}

func (r *RoomBuilder) BuildView() *queries.RoomView {
	return &queries.RoomView{
		ID:                 r.ID,
		Title:              r.Title,
		PricePerNightCents: r.PricePerNightCents,
		Status:             r.Status,
		Category: queries.CategoryView{
			ID:   r.CategoryID,
			Name: r.CategoryName,
		},
		Amenities: []queries.AmenityView{},
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
}

func (r *RoomBuilder) BuildSnapshot() *shared.RoomSnapshot {
	return &shared.RoomSnapshot{
		ID:                 r.ID,
		Title:              r.Title,
		PricePerNightCents: r.PricePerNightCents,
		Status:             r.Status,
		CategoryID:         r.CategoryID,
	}
}

// Fluent builder methods
func (r *RoomBuilder) With(mutate func(*RoomBuilder)) *RoomBuilder {
	if mutate != nil {
		mutate(r)
	}
	return r
}

func (r *RoomBuilder) WithID(id uuid.UUID) *RoomBuilder {
	r.ID = id
	return r
}

func (r *RoomBuilder) WithPricePerNightCents(cents int64) *RoomBuilder {
	r.PricePerNightCents = cents
	return r
}

func (r *RoomBuilder) WithStatus(status string) *RoomBuilder {
	r.Status = status
	return r
}
