//go:build unit || e2e

package builder

import (
	"time"

	"gin-hotel-booking/internal/domain/hotel"
	"gin-hotel-booking/internal/domain/money"
	reqdto "gin-hotel-booking/internal/handler/dto/request"
	"gin-hotel-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type HotelBuilder struct {
	OwnerID     uuid.UUID
	Name        string
	Description *string
	City        string
	Country     string
	Amenities   []string
	CreatedAt   time.Time
}

func NewHotelBuilder() *HotelBuilder {
	description := "駅から徒歩5分"
	return &HotelBuilder{
		OwnerID:     uuid.New(),
		Name:        "Grand Tokyo",
		Description: &description,
		City:        "Tokyo",
		Country:     "Japan",
		Amenities:   []string{"wifi", "pool"},
		CreatedAt:   time.Now(),
	}
}

func (h *HotelBuilder) With(mutate func(*HotelBuilder)) *HotelBuilder {
	mutate(h)
	return h
}

func (h *HotelBuilder) BuildDomain() (*hotel.Hotel, error) {
	return hotel.NewHotel(h.OwnerID, h.Name, h.Description, h.City, h.Country, h.Amenities, h.CreatedAt)
}

func (h *HotelBuilder) BuildSnapshot(id uuid.UUID) *shared.HotelSnapshot {
	return &shared.HotelSnapshot{
		ID:      id,
		OwnerID: h.OwnerID,
		Name:    h.Name,
	}
}

func (h *HotelBuilder) BuildCreateRequestDTO() reqdto.CreateHotelRequest {
	return reqdto.CreateHotelRequest{
		Name:        h.Name,
		Description: h.Description,
		City:        h.City,
		Country:     h.Country,
		Amenities:   h.Amenities,
	}
}

type RoomBuilder struct {
	HotelID       uuid.UUID
	OwnerID       uuid.UUID
	RoomNumber    string
	RoomType      string
	PricePerNight float64
	MaxOccupancy  int
}

func NewRoomBuilder() *RoomBuilder {
	return &RoomBuilder{
		HotelID:       uuid.New(),
		OwnerID:       uuid.New(),
		RoomNumber:    "101",
		RoomType:      "double",
		PricePerNight: 100,
		MaxOccupancy:  2,
	}
}

func (r *RoomBuilder) With(mutate func(*RoomBuilder)) *RoomBuilder {
	mutate(r)
	return r
}

func (r *RoomBuilder) BuildDomain() (*hotel.Room, error) {
	return hotel.NewRoom(r.HotelID, r.RoomNumber, r.RoomType, r.PricePerNight, r.MaxOccupancy, time.Now())
}

func (r *RoomBuilder) BuildSnapshot(id uuid.UUID) *shared.RoomSnapshot {
	return &shared.RoomSnapshot{
		ID:            id,
		HotelID:       r.HotelID,
		OwnerID:       r.OwnerID,
		RoomNumber:    r.RoomNumber,
		MaxOccupancy:  r.MaxOccupancy,
		PricePerNight: money.FromCents(int64(r.PricePerNight * 100)),
	}
}

func (r *RoomBuilder) BuildCreateRequestDTO() reqdto.CreateRoomRequest {
	return reqdto.CreateRoomRequest{
		RoomNumber:    r.RoomNumber,
		RoomType:      r.RoomType,
		PricePerNight: r.PricePerNight,
		MaxOccupancy:  r.MaxOccupancy,
	}
}
