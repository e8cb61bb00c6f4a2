package repository

//go:generate mockgen -source=$GOFILE -destination=../../../tests/mock/repository/$GOFILE -package=repositorymock

import (
	"context"

	"gin-hotel-booking/internal/domain/review"
	"gin-hotel-booking/internal/infra"
	"gin-hotel-booking/internal/infra/repository/converter"
	sqlc "gin-hotel-booking/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type ReviewWriteQueries interface {
	CreateReview(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateReviewParams) (sqlc.Reviews, error)
	ExistsReviewForBooking(ctx context.Context, db sqlc.DBTX, bookingID uuid.UUID) (bool, error)
	ListRatingsByHotel(ctx context.Context, db sqlc.DBTX, hotelID uuid.UUID) ([]int32, error)
}

type ReviewRepository struct {
	queries ReviewWriteQueries
	db      sqlc.DBTX
}

func NewReviewRepository(queries ReviewWriteQueries, db sqlc.DBTX) *ReviewRepository {
	return &ReviewRepository{
		queries: queries,
		db:      db,
	}
}

func (r *ReviewRepository) Create(ctx context.Context, rev *review.Review) error {
	if _, err := r.queries.CreateReview(ctx, r.db, converter.ReviewToCreateParams(rev)); err != nil {
		return infra.WrapRepoErr("failed to create review", err)
	}
	return nil
}

func (r *ReviewRepository) ExistsForBooking(ctx context.Context, bookingID uuid.UUID) (bool, error) {
	exists, err := r.queries.ExistsReviewForBooking(ctx, r.db, bookingID)
	if err != nil {
		return false, infra.WrapRepoErr("failed to check review for booking", err)
	}
	return exists, nil
}

func (r *ReviewRepository) ListRatingsByHotel(ctx context.Context, hotelID uuid.UUID) ([]int, error) {
	rows, err := r.queries.ListRatingsByHotel(ctx, r.db, hotelID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list hotel ratings", err)
	}

	ratings := make([]int, len(rows))
	for i, v := range rows {
		ratings[i] = int(v)
	}
	return ratings, nil
}
