package response

import (
	"time"

	"hotel-booking-api/internal/usecase/queries"

	"github.com/google/uuid"
)

type UserResponse struct {
	ID          uuid.UUID  `json:"id"`
	Email       string     `json:"email"`
	PhoneNumber string     `json:"phoneNumber"`
	FirstName   string     `json:"firstName"`
	LastName    string     `json:"lastName"`
	Role        string     `json:"role"`
	IsActive    bool       `json:"isActive"`
	LastLogin   *time.Time `json:"lastLogin,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
}

func FromUserView(rm *queries.UserView) *UserResponse {
	return &UserResponse{
		ID:          rm.ID,
		Email:       rm.Email,
		PhoneNumber: rm.PhoneNumber,
		FirstName:   rm.FirstName,
		LastName:    rm.LastName,
		Role:        rm.Role,
		IsActive:    rm.IsActive,
		LastLogin:   rm.LastLogin,
		CreatedAt:   rm.CreatedAt,
	}
}

func FromUserViews(rms []*queries.UserView) []*UserResponse {
	out := make([]*UserResponse, 0, len(rms))
	for _, rm := range rms {
		out = append(out, FromUserView(rm))
	}
	return out
}
