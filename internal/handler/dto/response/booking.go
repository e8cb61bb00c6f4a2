package response

import (
	"time"

	"gin-hotel-booking/internal/domain/reservation"
	"gin-hotel-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingResponse struct {
	ID           uuid.UUID `json:"id"`
	UserID       uuid.UUID `json:"userId"`
	RoomID       uuid.UUID `json:"roomId"`
	HotelID      uuid.UUID `json:"hotelId"`
	CheckInDate  string    `json:"checkInDate"`
	CheckOutDate string    `json:"checkOutDate"`
	Guests       int       `json:"guests"`
	TotalPrice   float64   `json:"totalPrice"`
	Status       string    `json:"status"`
	BookingDate  time.Time `json:"bookingDate"`
}

type BookingListItemResponse struct {
	ID           uuid.UUID  `json:"id"`
	RoomID       uuid.UUID  `json:"roomId"`
	HotelID      uuid.UUID  `json:"hotelId"`
	HotelName    string     `json:"hotelName"`
	RoomNumber   string     `json:"roomNumber"`
	RoomType     string     `json:"roomType"`
	CheckInDate  string     `json:"checkInDate"`
	CheckOutDate string     `json:"checkOutDate"`
	Guests       int        `json:"guests"`
	TotalPrice   float64    `json:"totalPrice"`
	Status       string     `json:"status"`
	BookingDate  time.Time  `json:"bookingDate"`
	CancelledAt  *time.Time `json:"cancelledAt,omitempty"`
}

type CancelBookingResponse struct {
	ID          uuid.UUID  `json:"id"`
	Status      string     `json:"status"`
	CancelledAt *time.Time `json:"cancelledAt"`
}

func FromBooking(b *reservation.Booking) BookingResponse {
	return BookingResponse{
		ID:           b.ID(),
		UserID:       b.UserID(),
		RoomID:       b.RoomID(),
		HotelID:      b.HotelID(),
		CheckInDate:  reservation.FormatDate(b.CheckIn()),
		CheckOutDate: reservation.FormatDate(b.CheckOut()),
		Guests:       b.Guests(),
		TotalPrice:   b.TotalPrice().Amount(),
		Status:       b.Status().String(),
		BookingDate:  b.CreatedAt().UTC(),
	}
}

func FromBookingListItems(items []*queries.BookingListItem) []BookingListItemResponse {
	out := make([]BookingListItemResponse, 0, len(items))
	for _, it := range items {
		out = append(out, BookingListItemResponse{
			ID:           it.ID,
			RoomID:       it.RoomID,
			HotelID:      it.HotelID,
			HotelName:    it.HotelName,
			RoomNumber:   it.RoomNumber,
			RoomType:     it.RoomType,
			CheckInDate:  reservation.FormatDate(it.CheckInDate),
			CheckOutDate: reservation.FormatDate(it.CheckOutDate),
			Guests:       it.Guests,
			TotalPrice:   it.TotalPrice,
			Status:       it.Status,
			BookingDate:  it.CreatedAt.UTC(),
			CancelledAt:  it.CancelledAt,
		})
	}
	return out
}

func FromCancelledBooking(b *reservation.Booking) CancelBookingResponse {
	return CancelBookingResponse{
		ID:          b.ID(),
		Status:      b.Status().String(),
		CancelledAt: b.CancelledAt(),
	}
}
