package response

import (
	"time"

	"hotel-booking-api/internal/usecase/queries"

	"github.com/google/uuid"
)

type GuestResponse struct {
	ID          uuid.UUID `json:"id"`
	UserID      uuid.UUID `json:"userId"`
	IsOwner     bool      `json:"isOwner"`
	Email       string    `json:"email"`
	PhoneNumber string    `json:"phoneNumber"`
	FirstName   string    `json:"firstName"`
	LastName    string    `json:"lastName"`
}

type PaymentResponse struct {
	ID          uuid.UUID `json:"id"`
	AmountCents int64     `json:"amountCents"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
}

type BookingResponse struct {
	ID              uuid.UUID         `json:"id"`
	RoomID          uuid.UUID         `json:"roomId"`
	RoomTitle       string            `json:"roomTitle"`
	CheckIn         time.Time         `json:"checkIn"`
	CheckOut        time.Time         `json:"checkOut"`
	TotalPriceCents int64             `json:"totalPriceCents"`
	Status          string            `json:"status"`
	Guests          []GuestResponse   `json:"guests"`
	Payments        []PaymentResponse `json:"payments"`
	CreatedAt       time.Time         `json:"createdAt"`
	UpdatedAt       time.Time         `json:"updatedAt"`
}

type BookingListResponse struct {
	ID              uuid.UUID `json:"id"`
	RoomID          uuid.UUID `json:"roomId"`
	RoomTitle       string    `json:"roomTitle"`
	CheckIn         time.Time `json:"checkIn"`
	CheckOut        time.Time `json:"checkOut"`
	TotalPriceCents int64     `json:"totalPriceCents"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"createdAt"`
}

func FromBookingView(rm *queries.BookingView) *BookingResponse {
	guests := make([]GuestResponse, 0, len(rm.Guests))
	for _, g := range rm.Guests {
		guests = append(guests, GuestResponse{
			ID:          g.ID,
			UserID:      g.UserID,
			IsOwner:     g.IsOwner,
			Email:       g.Email,
			PhoneNumber: g.PhoneNumber,
			FirstName:   g.FirstName,
			LastName:    g.LastName,
		})
	}

	payments := make([]PaymentResponse, 0, len(rm.Payments))
	for _, p := range rm.Payments {
		payments = append(payments, PaymentResponse{
			ID:          p.ID,
			AmountCents: p.AmountCents,
			Status:      p.Status,
			CreatedAt:   p.CreatedAt,
		})
	}

	return &BookingResponse{
		ID:              rm.ID,
		RoomID:          rm.RoomID,
		RoomTitle:       rm.RoomTitle,
		CheckIn:         rm.CheckIn,
		CheckOut:        rm.CheckOut,
		TotalPriceCents: rm.TotalPriceCents,
		Status:          rm.Status,
		Guests:          guests,
		Payments:        payments,
		CreatedAt:       rm.CreatedAt,
		UpdatedAt:       rm.UpdatedAt,
	}
}

func FromBookingListItem(rm *queries.BookingListItem) *BookingListResponse {
	return &BookingListResponse{
		ID:              rm.ID,
		RoomID:          rm.RoomID,
		RoomTitle:       rm.RoomTitle,
		CheckIn:         rm.CheckIn,
		CheckOut:        rm.CheckOut,
		TotalPriceCents: rm.TotalPriceCents,
		Status:          rm.Status,
		CreatedAt:       rm.CreatedAt,
	}
}

func FromBookingListItems(rms []*queries.BookingListItem) []*BookingListResponse {
	out := make([]*BookingListResponse, 0, len(rms))
	for _, rm := range rms {
		out = append(out, FromBookingListItem(rm))
	}
	return out
}
