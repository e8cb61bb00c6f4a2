package hotel

import (
	"errors"
	"strings"
	"time"

	"gin-hotel-booking/internal/domain/money"

	"github.com/google/uuid"
)

var (
	ErrEmptyName        = errors.New("hotel name is required")
	ErrEmptyCity        = errors.New("city is required")
	ErrEmptyCountry     = errors.New("country is required")
	ErrEmptyRoomNumber  = errors.New("room number is required")
	ErrEmptyRoomType    = errors.New("room type is required")
	ErrInvalidPrice     = errors.New("price per night must be positive")
	ErrInvalidOccupancy = errors.New("max occupancy must be positive")
)

type Hotel struct {
	id           uuid.UUID
	ownerID      uuid.UUID
	name         string
	description  *string
	city         string
	country      string
	amenities    []string
	rating       float64
	totalReviews int
	createdAt    time.Time
}

func NewHotel(ownerID uuid.UUID, name string, description *string, city, country string, amenities []string, now time.Time) (*Hotel, error) {
	name = strings.TrimSpace(name)
	city = strings.TrimSpace(city)
	country = strings.TrimSpace(country)
	switch {
	case name == "":
		return nil, ErrEmptyName
	case city == "":
		return nil, ErrEmptyCity
	case country == "":
		return nil, ErrEmptyCountry
	}

	cleaned := make([]string, 0, len(amenities))
	for _, a := range amenities {
		if a = strings.TrimSpace(a); a != "" {
			cleaned = append(cleaned, a)
		}
	}

	return &Hotel{
		id:          uuid.New(),
		ownerID:     ownerID,
		name:        name,
		description: description,
		city:        city,
		country:     country,
		amenities:   cleaned,
		createdAt:   now,
	}, nil
}

func (h *Hotel) IsOwnedBy(userID uuid.UUID) bool {
	return h.ownerID == userID
}

func (h *Hotel) ID() uuid.UUID        { return h.id }
func (h *Hotel) OwnerID() uuid.UUID   { return h.ownerID }
func (h *Hotel) Name() string         { return h.name }
func (h *Hotel) Description() *string { return h.description }
func (h *Hotel) City() string         { return h.city }
func (h *Hotel) Country() string      { return h.country }
func (h *Hotel) Amenities() []string  { return h.amenities }
func (h *Hotel) Rating() float64      { return h.rating }
func (h *Hotel) TotalReviews() int    { return h.totalReviews }
func (h *Hotel) CreatedAt() time.Time { return h.createdAt }

type Room struct {
	id            uuid.UUID
	hotelID       uuid.UUID
	number        string
	roomType      string
	pricePerNight money.Money
	maxOccupancy  int
	createdAt     time.Time
}

func NewRoom(hotelID uuid.UUID, number, roomType string, pricePerNight float64, maxOccupancy int, now time.Time) (*Room, error) {
	number = strings.TrimSpace(number)
	roomType = strings.TrimSpace(roomType)
	if number == "" {
		return nil, ErrEmptyRoomNumber
	}
	if roomType == "" {
		return nil, ErrEmptyRoomType
	}
	price, err := money.FromAmount(pricePerNight)
	if err != nil {
		return nil, ErrInvalidPrice
	}
	if maxOccupancy < 1 {
		return nil, ErrInvalidOccupancy
	}

	return &Room{
		id:            uuid.New(),
		hotelID:       hotelID,
		number:        number,
		roomType:      roomType,
		pricePerNight: price,
		maxOccupancy:  maxOccupancy,
		createdAt:     now,
	}, nil
}

func (r *Room) ID() uuid.UUID              { return r.id }
func (r *Room) HotelID() uuid.UUID         { return r.hotelID }
func (r *Room) Number() string             { return r.number }
func (r *Room) Type() string               { return r.roomType }
func (r *Room) PricePerNight() money.Money { return r.pricePerNight }
func (r *Room) MaxOccupancy() int          { return r.maxOccupancy }
func (r *Room) CreatedAt() time.Time       { return r.createdAt }
