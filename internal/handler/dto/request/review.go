package request

import "github.com/google/uuid"

type CreateReviewRequest struct {
	BookingID uuid.UUID `json:"bookingId" binding:"required"`
	Rating    int       `json:"rating" binding:"required,min=1,max=5"`
	Comment   *string   `json:"comment,omitempty"`
}
