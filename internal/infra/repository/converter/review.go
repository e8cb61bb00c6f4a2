package converter

import (
	"gin-hotel-booking/internal/domain/review"
	sqlc "gin-hotel-booking/internal/infra/sqlc/generated"
	"gin-hotel-booking/internal/pkg/pgconv"
)

func ReviewToCreateParams(r *review.Review) sqlc.CreateReviewParams {
	return sqlc.CreateReviewParams{
		ID:        r.ID(),
		UserID:    r.UserID(),
		HotelID:   r.HotelID(),
		BookingID: r.BookingID(),
		Rating:    int32(r.Rating().Value()),
		Comment:   pgconv.StringPtrToPgtype(r.Comment().Ptr()),
		CreatedAt: pgconv.TimeToPgtype(r.CreatedAt()),
	}
}
