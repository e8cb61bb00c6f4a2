package converter

import (
	"gin-hotel-booking/internal/domain/hotel"
	sqlc "gin-hotel-booking/internal/infra/sqlc/generated"
	"gin-hotel-booking/internal/pkg/pgconv"
)

func HotelToCreateParams(h *hotel.Hotel) sqlc.CreateHotelParams {
	amenities := h.Amenities()
	if amenities == nil {
		amenities = []string{}
	}
	return sqlc.CreateHotelParams{
		ID:          h.ID(),
		OwnerID:     h.OwnerID(),
		Name:        h.Name(),
		Description: pgconv.StringPtrToPgtype(h.Description()),
		City:        h.City(),
		Country:     h.Country(),
		Amenities:   amenities,
		CreatedAt:   pgconv.TimeToPgtype(h.CreatedAt()),
	}
}

func RoomToCreateParams(r *hotel.Room) sqlc.CreateRoomParams {
	return sqlc.CreateRoomParams{
		ID:                 r.ID(),
		HotelID:            r.HotelID(),
		RoomNumber:         r.Number(),
		RoomType:           r.Type(),
		PricePerNightCents: r.PricePerNight().Cents(),
		MaxOccupancy:       int32(r.MaxOccupancy()),
		CreatedAt:          pgconv.TimeToPgtype(r.CreatedAt()),
	}
}
