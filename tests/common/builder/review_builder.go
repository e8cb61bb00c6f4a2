//go:build unit || e2e

package builder

import (
	"time"

	domreview "gin-hotel-booking/internal/domain/review"
	reqdto "gin-hotel-booking/internal/handler/dto/request"
	sqlc "gin-hotel-booking/internal/infra/sqlc/generated"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type ReviewBuilder struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	HotelID   uuid.UUID
	BookingID uuid.UUID
	Rating    int
	Comment   *string
	CreatedAt time.Time
}

func NewReviewBuilder() *ReviewBuilder {
	comment := "Excellent stay!"
	return &ReviewBuilder{
		ID:        uuid.New(),
		UserID:    uuid.New(),
		HotelID:   uuid.New(),
		BookingID: uuid.New(),
		Rating:    5,
		Comment:   &comment,
		CreatedAt: time.Now(),
	}
}

func (r *ReviewBuilder) With(mutate func(*ReviewBuilder)) *ReviewBuilder {
	mutate(r)
	return r
}

// Build methods
func (r *ReviewBuilder) BuildDomain() (*domreview.Review, error) {
	return domreview.NewReview(r.ID, r.UserID, r.HotelID, r.BookingID, r.Rating, r.Comment, r.CreatedAt)
}

func (r *ReviewBuilder) BuildInfra() sqlc.Reviews {
	var comment pgtype.Text
	if r.Comment != nil {
		comment = pgtype.Text{String: *r.Comment, Valid: true}
	}
	return sqlc.Reviews{
		ID:        r.ID,
		UserID:    r.UserID,
		HotelID:   r.HotelID,
		BookingID: r.BookingID,
		Rating:    int32(r.Rating),
		Comment:   comment,
		CreatedAt: pgtype.Timestamptz{Time: r.CreatedAt, Valid: true},
	}
}

func (r *ReviewBuilder) BuildCreateRequestDTO() reqdto.CreateReviewRequest {
	return reqdto.CreateReviewRequest{
		BookingID: r.BookingID,
		Rating:    r.Rating,
		Comment:   r.Comment,
	}
}

// Fluent builder methods
func (r *ReviewBuilder) AsPoorRating() *ReviewBuilder {
	comment := "Poor service"
	r.Rating = 1
	r.Comment = &comment
	return r
}

func (r *ReviewBuilder) WithoutComment() *ReviewBuilder {
	r.Comment = nil
	return r
}
