package request

import "github.com/google/uuid"

type CreateBookingRequest struct {
	RoomID       uuid.UUID `json:"roomId" binding:"required"`
	CheckInDate  string    `json:"checkInDate" binding:"required,datetime=2006-01-02"`
	CheckOutDate string    `json:"checkOutDate" binding:"required,datetime=2006-01-02"`
	Guests       int       `json:"guests" binding:"required,min=1"`
}

type BookingListQuery struct {
	Status *string `form:"status" binding:"omitempty,oneof=confirmed cancelled"`
}
