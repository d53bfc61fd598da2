package qr

import (
	"hotel-booking-api/internal/pkg/errs"
	"hotel-booking-api/internal/usecase/commands"

	qrcode "github.com/skip2/go-qrcode"
)

// imageSize matches the legacy check-in scanners: a version-3 code (29
// modules) at 10px per module with a 5-module border on each side.
const imageSize = 390

type Encoder struct{}

func NewEncoder() commands.QRRenderer {
	return &Encoder{}
}

// Render encodes the payload as a PNG with the highest error correction
// level, so a partially damaged print still scans at the front desk.
func (e *Encoder) Render(payload []byte) ([]byte, error) {
	png, err := qrcode.Encode(string(payload), qrcode.High, imageSize)
	if err != nil {
		return nil, errs.Wrap(err, "failed to encode qr code")
	}
	return png, nil
}
