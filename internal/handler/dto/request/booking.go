package request

import (
	"time"

	"hotel-booking-api/internal/usecase/commands"

	"github.com/google/uuid"
)

type CreateBookingRequest struct {
	RoomID             uuid.UUID   `json:"room_id" binding:"required"`
	CheckIn            time.Time   `json:"check_in" binding:"required"`
	CheckOut           time.Time   `json:"check_out" binding:"required"`
	AdditionalGuestIDs []uuid.UUID `json:"additional_guest_ids,omitempty"`
}

func (r CreateBookingRequest) ToCommand() commands.CreateBookingCommand {
	return commands.CreateBookingCommand{
		RoomID:             r.RoomID,
		CheckIn:            r.CheckIn,
		CheckOut:           r.CheckOut,
		AdditionalGuestIDs: r.AdditionalGuestIDs,
	}
}

type UpdateBookingRequest struct {
	RoomID             *uuid.UUID   `json:"room_id,omitempty"`
	CheckIn            *time.Time   `json:"check_in,omitempty"`
	CheckOut           *time.Time   `json:"check_out,omitempty"`
	AdditionalGuestIDs *[]uuid.UUID `json:"additional_guest_ids,omitempty"`
}

func (r UpdateBookingRequest) ToCommand() commands.UpdateBookingCommand {
	return commands.UpdateBookingCommand{
		RoomID:             r.RoomID,
		CheckIn:            r.CheckIn,
		CheckOut:           r.CheckOut,
		AdditionalGuestIDs: r.AdditionalGuestIDs,
	}
}
