package room

import (
	"errors"

	"github.com/google/uuid"
)

var (
	ErrEmptyTitle    = errors.New("room title cannot be empty")
	ErrNegativePrice = errors.New("price per night cannot be negative")
	ErrInvalidStatus = errors.New("invalid room status")
)

// Room is catalog data: the booking lifecycle reads the nightly price from
// it but never mutates its status.
type Room struct {
	id                 uuid.UUID
	title              string
	pricePerNightCents int64
	status             Status
	categoryID         uuid.UUID
}

func NewRoom(id uuid.UUID, title string, pricePerNightCents int64, status Status, categoryID uuid.UUID) (*Room, error) {
	if title == "" {
		return nil, ErrEmptyTitle
	}
	if pricePerNightCents < 0 {
		return nil, ErrNegativePrice
	}
	if !status.IsValid() {
		return nil, ErrInvalidStatus
	}

	return &Room{
		id:                 id,
		title:              title,
		pricePerNightCents: pricePerNightCents,
		status:             status,
		categoryID:         categoryID,
	}, nil
}

func (r *Room) ID() uuid.UUID              { return r.id }
func (r *Room) Title() string              { return r.title }
func (r *Room) PricePerNightCents() int64  { return r.pricePerNightCents }
func (r *Room) Status() Status             { return r.status }
func (r *Room) CategoryID() uuid.UUID      { return r.categoryID }
