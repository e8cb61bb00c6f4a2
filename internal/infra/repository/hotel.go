package repository

//go:generate mockgen -source=$GOFILE -destination=../../../tests/mock/repository/$GOFILE -package=repositorymock

import (
	"context"

	"gin-hotel-booking/internal/domain/hotel"
	"gin-hotel-booking/internal/domain/reservation"
	"gin-hotel-booking/internal/infra"
	"gin-hotel-booking/internal/infra/repository/converter"
	sqlc "gin-hotel-booking/internal/infra/sqlc/generated"
	"gin-hotel-booking/internal/pkg/pgconv"
	"gin-hotel-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type HotelWriteQueries interface {
	CreateHotel(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateHotelParams) (sqlc.Hotels, error)
	GetHotelByIDForUpdate(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Hotels, error)
	UpdateHotelRating(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateHotelRatingParams) (int64, error)
}

type HotelRepository struct {
	queries HotelWriteQueries
	db      sqlc.DBTX
}

func NewHotelRepository(queries HotelWriteQueries, db sqlc.DBTX) *HotelRepository {
	return &HotelRepository{
		queries: queries,
		db:      db,
	}
}

func (r *HotelRepository) Create(ctx context.Context, h *hotel.Hotel) error {
	if _, err := r.queries.CreateHotel(ctx, r.db, converter.HotelToCreateParams(h)); err != nil {
		return infra.WrapRepoErr("failed to create hotel", err)
	}
	return nil
}

func (r *HotelRepository) FindForUpdate(ctx context.Context, id uuid.UUID) (*shared.HotelSnapshot, error) {
	row, err := r.queries.GetHotelByIDForUpdate(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("hotel not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock hotel", err)
	}

	return &shared.HotelSnapshot{
		ID:      row.ID,
		OwnerID: row.OwnerID,
		Name:    row.Name,
	}, nil
}

func (r *HotelRepository) UpdateRating(ctx context.Context, id uuid.UUID, agg reservation.RatingAggregate) error {
	affected, err := r.queries.UpdateHotelRating(ctx, r.db, sqlc.UpdateHotelRatingParams{
		ID:           id,
		Rating:       agg.Average,
		TotalReviews: int32(agg.Count),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to update hotel rating", err)
	}
	if affected == 0 {
		return infra.WrapRepoErr("hotel not found", nil, infra.KindNotFound)
	}
	return nil
}
