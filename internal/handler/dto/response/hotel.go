package response

import (
	"time"

	"gin-hotel-booking/internal/domain/hotel"

	"github.com/google/uuid"
)

type HotelResponse struct {
	ID           uuid.UUID `json:"id"`
	OwnerID      uuid.UUID `json:"ownerId"`
	Name         string    `json:"name"`
	Description  *string   `json:"description"`
	City         string    `json:"city"`
	Country      string    `json:"country"`
	Amenities    []string  `json:"amenities"`
	Rating       float64   `json:"rating"`
	TotalReviews int       `json:"totalReviews"`
	CreatedAt    time.Time `json:"createdAt"`
}

type RoomResponse struct {
	ID            uuid.UUID `json:"id"`
	HotelID       uuid.UUID `json:"hotelId"`
	RoomNumber    string    `json:"roomNumber"`
	RoomType      string    `json:"roomType"`
	PricePerNight float64   `json:"pricePerNight"`
	MaxOccupancy  int       `json:"maxOccupancy"`
}

func FromHotel(h *hotel.Hotel) HotelResponse {
	amenities := h.Amenities()
	if amenities == nil {
		amenities = []string{}
	}
	return HotelResponse{
		ID:           h.ID(),
		OwnerID:      h.OwnerID(),
		Name:         h.Name(),
		Description:  h.Description(),
		City:         h.City(),
		Country:      h.Country(),
		Amenities:    amenities,
		Rating:       h.Rating(),
		TotalReviews: h.TotalReviews(),
		CreatedAt:    h.CreatedAt(),
	}
}

func FromRoom(r *hotel.Room) RoomResponse {
	return RoomResponse{
		ID:            r.ID(),
		HotelID:       r.HotelID(),
		RoomNumber:    r.Number(),
		RoomType:      r.Type(),
		PricePerNight: r.PricePerNight().Amount(),
		MaxOccupancy:  r.MaxOccupancy(),
	}
}
