package response

import (
	"time"

	"hotel-booking-api/internal/usecase/queries"

	"github.com/google/uuid"
)

type CredentialResponse struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"userId"`
	BookingID uuid.UUID `json:"bookingId"`
	ImagePath string    `json:"imagePath"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
}

func FromCredentialView(rm *queries.CredentialView) *CredentialResponse {
	return &CredentialResponse{
		ID:        rm.ID,
		UserID:    rm.UserID,
		BookingID: rm.BookingID,
		ImagePath: rm.ImagePath,
		Status:    rm.Status,
		CreatedAt: rm.CreatedAt,
	}
}
