package request

import "gin-hotel-booking/internal/usecase/queries"

type CreateHotelRequest struct {
	Name        string   `json:"name" binding:"required"`
	Description *string  `json:"description,omitempty"`
	City        string   `json:"city" binding:"required"`
	Country     string   `json:"country" binding:"required"`
	Amenities   []string `json:"amenities,omitempty"`
}

type CreateRoomRequest struct {
	RoomNumber    string  `json:"roomNumber" binding:"required"`
	RoomType      string  `json:"roomType" binding:"required"`
	PricePerNight float64 `json:"pricePerNight" binding:"required,gt=0"`
	MaxOccupancy  int     `json:"maxOccupancy" binding:"required,gt=0"`
}

type HotelSearchQuery struct {
	City      *string  `form:"city"`
	Country   *string  `form:"country"`
	MinRating *float64 `form:"minRating" binding:"omitempty,min=0,max=5"`
	MinPrice  *float64 `form:"minPrice" binding:"omitempty,min=0"`
	MaxPrice  *float64 `form:"maxPrice" binding:"omitempty,min=0"`
}

func (q HotelSearchQuery) ToFilter() queries.HotelSearchFilter {
	return queries.HotelSearchFilter{
		City:      q.City,
		Country:   q.Country,
		MinRating: q.MinRating,
		MinPrice:  q.MinPrice,
		MaxPrice:  q.MaxPrice,
	}
}
