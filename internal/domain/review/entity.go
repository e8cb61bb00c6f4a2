package review

import (
	"time"

	"github.com/google/uuid"
)

type Review struct {
	id        uuid.UUID
	userID    uuid.UUID
	hotelID   uuid.UUID
	bookingID uuid.UUID
	rating    Rating
	comment   Comment
	createdAt time.Time
}

// NewReview validates rating and the optional comment. A nil comment means none was given.
func NewReview(id, userID, hotelID, bookingID uuid.UUID, ratingValue int, commentText *string, now time.Time) (*Review, error) {
	rating, err := NewRating(ratingValue)
	if err != nil {
		return nil, err
	}

	var comment Comment
	if commentText != nil {
		comment, err = NewComment(*commentText)
		if err != nil {
			return nil, err
		}
	}

	if id == uuid.Nil {
		id = uuid.New()
	}

	return &Review{
		id:        id,
		userID:    userID,
		hotelID:   hotelID,
		bookingID: bookingID,
		rating:    rating,
		comment:   comment,
		createdAt: now,
	}, nil
}

func (r *Review) ID() uuid.UUID        { return r.id }
func (r *Review) UserID() uuid.UUID    { return r.userID }
func (r *Review) HotelID() uuid.UUID   { return r.hotelID }
func (r *Review) BookingID() uuid.UUID { return r.bookingID }
func (r *Review) Rating() Rating       { return r.rating }
func (r *Review) Comment() Comment     { return r.comment }
func (r *Review) CreatedAt() time.Time { return r.createdAt }
