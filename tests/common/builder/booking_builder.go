//go:build unit || e2e

package builder

import (
	"time"

	"hotel-booking-api/internal/domain/booking"
	reqdto "hotel-booking-api/internal/handler/dto/request"
	"hotel-booking-api/internal/usecase/queries"
	"hotel-booking-api/internal/usecase/shared"

	"github.com/google/uuid"
)

type BookingBuilder struct {
	ID              uuid.UUID
	RoomID          uuid.UUID
	RoomTitle       string
	CheckIn         time.Time
	CheckOut        time.Time
	TotalPriceCents int64
	Status          string
	Guests          []queries.GuestView
	CreatedAt       time.Time
}

func NewBookingBuilder() *BookingBuilder {
	checkIn := time.Date(2026, 9, 10, 15, 0, 0, 0, time.UTC)
	return &BookingBuilder{
		ID:              uuid.New(),
		RoomID:          uuid.New(),
		RoomTitle:       "Deluxe Twin 204",
		CheckIn:         checkIn,
		CheckOut:        checkIn.AddDate(0, 0, 2),
		TotalPriceCents: 2*15000 + 10000,
		Status:          "created",
		CreatedAt:       time.Now(),
	}
}

func (b *BookingBuilder) BuildDomain() (*booking.Booking, error) {
	dates, err := booking.NewDateRange(b.CheckIn, b.CheckOut)
	if err != nil {
		return nil, err
	}

	return booking.ReconstructBooking(
		b.ID, b.RoomID, dates,
		booking.NewMoney(b.TotalPriceCents),
		booking.Status(b.Status),
		b.CreatedAt, b.CreatedAt,
	), nil
}

func (b *BookingBuilder) BuildView() *queries.BookingView {
	return &queries.BookingView{
		ID:              b.ID,
		RoomID:          b.RoomID,
		RoomTitle:       b.RoomTitle,
		CheckIn:         b.CheckIn,
		CheckOut:        b.CheckOut,
		TotalPriceCents: b.TotalPriceCents,
		Status:          b.Status,
		Guests:          b.Guests,
		Payments:        []queries.PaymentView{},
		CreatedAt:       b.CreatedAt,
		UpdatedAt:       b.CreatedAt,
	}
}

func (b *BookingBuilder) BuildListItem() queries.BookingListItem {
	return queries.BookingListItem{
		ID:              b.ID,
		RoomID:          b.RoomID,
		RoomTitle:       b.RoomTitle,
		CheckIn:         b.CheckIn,
		CheckOut:        b.CheckOut,
		TotalPriceCents: b.TotalPriceCents,
		Status:          b.Status,
		CreatedAt:       b.CreatedAt,
	}
}

func (b *BookingBuilder) BuildSnapshot() *shared.BookingSnapshot {
	return &shared.BookingSnapshot{
		ID:              b.ID,
		RoomID:          b.RoomID,
		CheckIn:         b.CheckIn,
		CheckOut:        b.CheckOut,
		TotalPriceCents: b.TotalPriceCents,
		Status:          b.Status,
		CreatedAt:       b.CreatedAt,
		UpdatedAt:       b.CreatedAt,
	}
}

func (b *BookingBuilder) BuildCreateRequestDTO() reqdto.CreateBookingRequest {
	return reqdto.CreateBookingRequest{
		RoomID:   b.RoomID,
		CheckIn:  b.CheckIn,
		CheckOut: b.CheckOut,
	}
}

// Fluent builder methods
func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	if mutate != nil {
		mutate(b)
	}
	return b
}

func (b *BookingBuilder) WithID(id uuid.UUID) *BookingBuilder {
	b.ID = id
	return b
}

func (b *BookingBuilder) WithRoomID(id uuid.UUID) *BookingBuilder {
	b.RoomID = id
	return b
}

func (b *BookingBuilder) WithDates(checkIn, checkOut time.Time) *BookingBuilder {
	b.CheckIn = checkIn
	b.CheckOut = checkOut
	return b
}

func (b *BookingBuilder) WithStatus(status string) *BookingBuilder {
	b.Status = status
	return b
}

func (b *BookingBuilder) WithTotalPriceCents(cents int64) *BookingBuilder {
	b.TotalPriceCents = cents
	return b
}

func (b *BookingBuilder) WithGuest(userID uuid.UUID, isOwner bool) *BookingBuilder {
	b.Guests = append(b.Guests, queries.GuestView{
		ID:      uuid.New(),
		UserID:  userID,
		IsOwner: isOwner,
	})
	return b
}
