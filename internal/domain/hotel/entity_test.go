//go:build unit

package hotel_test

import (
	"testing"
	"time"

	"gin-hotel-booking/internal/domain/hotel"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHotel(t *testing.T) {
	ownerID := uuid.New()
	now := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)

	t.Run("正常系", func(t *testing.T) {
		h, err := hotel.NewHotel(ownerID, " Grand Hotel ", nil, "Tokyo", "Japan", []string{"wifi", " ", "pool "}, now)
		require.NoError(t, err)

		assert.Equal(t, "Grand Hotel", h.Name())
		assert.Equal(t, []string{"wifi", "pool"}, h.Amenities())
		assert.True(t, h.IsOwnedBy(ownerID))
		assert.False(t, h.IsOwnedBy(uuid.New()))
		assert.Zero(t, h.Rating())
		assert.Zero(t, h.TotalReviews())
	})

	tests := []struct {
		name    string
		hName   string
		city    string
		country string
		errIs   error
	}{
		{"名前なしNG", "", "Tokyo", "Japan", hotel.ErrEmptyName},
		{"都市なしNG", "Grand", " ", "Japan", hotel.ErrEmptyCity},
		{"国なしNG", "Grand", "Tokyo", "", hotel.ErrEmptyCountry},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, err := hotel.NewHotel(ownerID, tt.hName, nil, tt.city, tt.country, nil, now)
			require.ErrorIs(t, err, tt.errIs)
			assert.Nil(t, h)
		})
	}
}

func TestNewRoom(t *testing.T) {
	hotelID := uuid.New()
	now := time.Now()

	t.Run("価格はセント単位で保持", func(t *testing.T) {
		r, err := hotel.NewRoom(hotelID, "101", "double", 129.99, 2, now)
		require.NoError(t, err)

		assert.Equal(t, int64(12999), r.PricePerNight().Cents())
		assert.InDelta(t, 129.99, r.PricePerNight().Amount(), 1e-9)
		assert.Equal(t, 2, r.MaxOccupancy())
	})

	tests := []struct {
		name      string
		number    string
		roomType  string
		price     float64
		occupancy int
		errIs     error
	}{
		{"部屋番号なしNG", "", "double", 100, 2, hotel.ErrEmptyRoomNumber},
		{"タイプなしNG", "101", "", 100, 2, hotel.ErrEmptyRoomType},
		{"価格0はNG", "101", "double", 0, 2, hotel.ErrInvalidPrice},
		{"負の価格NG", "101", "double", -10, 2, hotel.ErrInvalidPrice},
		{"定員0はNG", "101", "double", 100, 0, hotel.ErrInvalidOccupancy},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := hotel.NewRoom(hotelID, tt.number, tt.roomType, tt.price, tt.occupancy, now)
			require.ErrorIs(t, err, tt.errIs)
			assert.Nil(t, r)
		})
	}
}
