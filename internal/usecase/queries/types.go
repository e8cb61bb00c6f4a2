package queries

import (
	"time"

	"github.com/google/uuid"
)

type UserView struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	Phone     string    `json:"phone"`
	CreatedAt time.Time `json:"createdAt"`
}

// HotelSearchFilter fields are optional; nil means no constraint.
type HotelSearchFilter struct {
	City      *string
	Country   *string
	MinRating *float64
	MinPrice  *float64
	MaxPrice  *float64
}

type HotelSummaryView struct {
	ID               uuid.UUID `json:"id"`
	Name             string    `json:"name"`
	Description      *string   `json:"description"`
	City             string    `json:"city"`
	Country          string    `json:"country"`
	Amenities        []string  `json:"amenities"`
	Rating           float64   `json:"rating"`
	TotalReviews     int       `json:"totalReviews"`
	MinPricePerNight float64   `json:"minPricePerNight"`
}

type RoomView struct {
	ID            uuid.UUID `json:"id"`
	RoomNumber    string    `json:"roomNumber"`
	RoomType      string    `json:"roomType"`
	PricePerNight float64   `json:"pricePerNight"`
	MaxOccupancy  int       `json:"maxOccupancy"`
}

// HotelDetailView is also the cached representation, so it must round-trip through JSON.
type HotelDetailView struct {
	ID           uuid.UUID  `json:"id"`
	OwnerID      uuid.UUID  `json:"ownerId"`
	Name         string     `json:"name"`
	Description  *string    `json:"description"`
	City         string     `json:"city"`
	Country      string     `json:"country"`
	Amenities    []string   `json:"amenities"`
	Rating       float64    `json:"rating"`
	TotalReviews int        `json:"totalReviews"`
	CreatedAt    time.Time  `json:"createdAt"`
	Rooms        []RoomView `json:"rooms"`
}

type BookingListItem struct {
	ID           uuid.UUID
	RoomID       uuid.UUID
	HotelID      uuid.UUID
	HotelName    string
	RoomNumber   string
	RoomType     string
	CheckInDate  time.Time
	CheckOutDate time.Time
	Guests       int
	TotalPrice   float64
	Status       string
	CreatedAt    time.Time
	CancelledAt  *time.Time
}
