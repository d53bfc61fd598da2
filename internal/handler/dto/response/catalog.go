package response

import (
	"time"

	"hotel-booking-api/internal/usecase/queries"

	"github.com/google/uuid"
)

type CategoryResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description,omitempty"`
}

type AmenityResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description,omitempty"`
}

type RoomResponse struct {
	ID                 uuid.UUID         `json:"id"`
	Title              string            `json:"title"`
	Description        *string           `json:"description,omitempty"`
	PricePerNightCents int64             `json:"pricePerNightCents"`
	Status             string            `json:"status"`
	Category           CategoryResponse  `json:"category"`
	Amenities          []AmenityResponse `json:"amenities"`
	CreatedAt          time.Time         `json:"createdAt"`
	UpdatedAt          time.Time         `json:"updatedAt"`
}

func FromCategoryView(rm *queries.CategoryView) *CategoryResponse {
	return &CategoryResponse{
		ID:          rm.ID,
		Name:        rm.Name,
		Description: rm.Description,
	}
}

func FromCategoryViews(rms []*queries.CategoryView) []*CategoryResponse {
	out := make([]*CategoryResponse, 0, len(rms))
	for _, rm := range rms {
		out = append(out, FromCategoryView(rm))
	}
	return out
}

func FromAmenityView(rm *queries.AmenityView) *AmenityResponse {
	return &AmenityResponse{
		ID:          rm.ID,
		Name:        rm.Name,
		Description: rm.Description,
	}
}

func FromAmenityViews(rms []*queries.AmenityView) []*AmenityResponse {
	out := make([]*AmenityResponse, 0, len(rms))
	for _, rm := range rms {
		out = append(out, FromAmenityView(rm))
	}
	return out
}

func FromRoomView(rm *queries.RoomView) *RoomResponse {
	amenities := make([]AmenityResponse, 0, len(rm.Amenities))
	for i := range rm.Amenities {
		amenities = append(amenities, *FromAmenityView(&rm.Amenities[i]))
	}
	return &RoomResponse{
		ID:                 rm.ID,
		Title:              rm.Title,
		Description:        rm.Description,
		PricePerNightCents: rm.PricePerNightCents,
		Status:             rm.Status,
		Category:           *FromCategoryView(&rm.Category),
		Amenities:          amenities,
		CreatedAt:          rm.CreatedAt,
		UpdatedAt:          rm.UpdatedAt,
	}
}

func FromRoomViews(rms []*queries.RoomView) []*RoomResponse {
	out := make([]*RoomResponse, 0, len(rms))
	for _, rm := range rms {
		out = append(out, FromRoomView(rm))
	}
	return out
}
