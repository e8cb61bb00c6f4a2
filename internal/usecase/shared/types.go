package shared

import (
	"gin-hotel-booking/internal/domain/money"
	"gin-hotel-booking/internal/domain/reservation"

	"github.com/google/uuid"
)

// Write-side snapshots keep commands independent of read-side views
type RoomSnapshot struct {
	ID            uuid.UUID
	HotelID       uuid.UUID
	OwnerID       uuid.UUID
	RoomNumber    string
	MaxOccupancy  int
	PricePerNight money.Money
}

func (s RoomSnapshot) Spec() reservation.RoomSpec {
	return reservation.RoomSpec{
		ID:            s.ID,
		HotelID:       s.HotelID,
		MaxOccupancy:  s.MaxOccupancy,
		PricePerNight: s.PricePerNight,
	}
}

type HotelSnapshot struct {
	ID      uuid.UUID
	OwnerID uuid.UUID
	Name    string
}
