package response

import (
	"time"

	domreview "gin-hotel-booking/internal/domain/review"

	"github.com/google/uuid"
)

type ReviewResponse struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"userId"`
	HotelID   uuid.UUID `json:"hotelId"`
	BookingID uuid.UUID `json:"bookingId"`
	Rating    int       `json:"rating"`
	Comment   *string   `json:"comment"`
	CreatedAt time.Time `json:"createdAt"`
}

func FromReview(r *domreview.Review) ReviewResponse {
	return ReviewResponse{
		ID:        r.ID(),
		UserID:    r.UserID(),
		HotelID:   r.HotelID(),
		BookingID: r.BookingID(),
		Rating:    r.Rating().Value(),
		Comment:   r.Comment().Ptr(),
		CreatedAt: r.CreatedAt(),
	}
}
