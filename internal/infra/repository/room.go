package repository

//go:generate mockgen -source=$GOFILE -destination=../../../tests/mock/repository/$GOFILE -package=repositorymock

import (
	"context"

	"gin-hotel-booking/internal/domain/hotel"
	"gin-hotel-booking/internal/domain/money"
	"gin-hotel-booking/internal/infra"
	"gin-hotel-booking/internal/infra/repository/converter"
	sqlc "gin-hotel-booking/internal/infra/sqlc/generated"
	"gin-hotel-booking/internal/pkg/pgconv"
	"gin-hotel-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type RoomWriteQueries interface {
	CreateRoom(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateRoomParams) (sqlc.Rooms, error)
	ExistsRoomNumber(ctx context.Context, db sqlc.DBTX, arg sqlc.ExistsRoomNumberParams) (bool, error)
	GetRoomWithHotelForUpdate(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.GetRoomWithHotelForUpdateRow, error)
}

type RoomRepository struct {
	queries RoomWriteQueries
	db      sqlc.DBTX
}

func NewRoomRepository(queries RoomWriteQueries, db sqlc.DBTX) *RoomRepository {
	return &RoomRepository{
		queries: queries,
		db:      db,
	}
}

func (r *RoomRepository) Create(ctx context.Context, room *hotel.Room) error {
	if _, err := r.queries.CreateRoom(ctx, r.db, converter.RoomToCreateParams(room)); err != nil {
		return infra.WrapRepoErr("failed to create room", err)
	}
	return nil
}

func (r *RoomRepository) ExistsNumber(ctx context.Context, hotelID uuid.UUID, number string) (bool, error) {
	exists, err := r.queries.ExistsRoomNumber(ctx, r.db, sqlc.ExistsRoomNumberParams{
		HotelID:    hotelID,
		RoomNumber: number,
	})
	if err != nil {
		return false, infra.WrapRepoErr("failed to check room number", err)
	}
	return exists, nil
}

func (r *RoomRepository) LockForBooking(ctx context.Context, id uuid.UUID) (*shared.RoomSnapshot, error) {
	row, err := r.queries.GetRoomWithHotelForUpdate(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("room not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock room", err)
	}

	return &shared.RoomSnapshot{
		ID:            row.ID,
		HotelID:       row.HotelID,
		OwnerID:       row.OwnerID,
		RoomNumber:    row.RoomNumber,
		MaxOccupancy:  int(row.MaxOccupancy),
		PricePerNight: money.FromCents(row.PricePerNightCents),
	}, nil
}
