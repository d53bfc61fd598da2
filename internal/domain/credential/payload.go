package credential

import (
	"encoding/json"

	"github.com/google/uuid"
)

// Payload is the guest/booking pair a QR image encodes. Scanners at the
// front desk decode exactly these two keys.
type Payload struct {
	UserID    uuid.UUID `json:"user_id"`
	BookingID uuid.UUID `json:"booking_id"`
}

func (p Payload) Encode() ([]byte, error) {
	return json.Marshal(p)
}

func DecodePayload(data []byte) (Payload, error) {
	var p Payload
	if err := json.Unmarshal(data, &p); err != nil {
		return Payload{}, err
	}
	return p, nil
}
