package booking

import (
	"hotel-booking-api/internal/domain/room"
)

// Every booking carries a fixed service surcharge on top of the nightly
// price, regardless of duration.
const SurchargeCents int64 = 100 * 100

type PriceCalculator interface {
	TotalCents(rm *room.Room, dates DateRange) int64
}

type NightlyPriceCalculator struct {
	SurchargeCents int64
}

func NewNightlyPriceCalculator() *NightlyPriceCalculator {
	return &NightlyPriceCalculator{
		SurchargeCents: SurchargeCents,
	}
}

func (pc *NightlyPriceCalculator) TotalCents(rm *room.Room, dates DateRange) int64 {
	return rm.PricePerNightCents()*dates.Nights() + pc.SurchargeCents
}
