//go:build unit

package repository_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"gin-hotel-booking/internal/domain/money"
	"gin-hotel-booking/internal/domain/reservation"
	"gin-hotel-booking/internal/infra"
	"gin-hotel-booking/internal/infra/repository"
	sqlc "gin-hotel-booking/internal/infra/sqlc/generated"
	"gin-hotel-booking/internal/usecase/shared"
	"gin-hotel-booking/tests/common/builder"
	repositorymock "gin-hotel-booking/tests/mock/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// =============================================================================
// Hotel Tests
// =============================================================================

func TestHotelRepository_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("success: nil amenities stored as empty array", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockHotelWriteQueries(ctrl)
		repo := repository.NewHotelRepository(mockQueries, &mockDBTX{})

		h, err := builder.NewHotelBuilder().With(func(b *builder.HotelBuilder) {
			b.Amenities = nil
			b.Description = nil
		}).BuildDomain()
		require.NoError(t, err)

		mockQueries.EXPECT().CreateHotel(ctx, gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ sqlc.DBTX, arg sqlc.CreateHotelParams) (sqlc.Hotels, error) {
				assert.Equal(t, h.ID(), arg.ID)
				assert.NotNil(t, arg.Amenities)
				assert.Empty(t, arg.Amenities)
				assert.False(t, arg.Description.Valid)
				return sqlc.Hotels{}, nil
			})

		require.NoError(t, repo.Create(ctx, h))
	})

	t.Run("error: owner missing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockHotelWriteQueries(ctrl)
		repo := repository.NewHotelRepository(mockQueries, &mockDBTX{})

		h, err := builder.NewHotelBuilder().BuildDomain()
		require.NoError(t, err)

		fk := &pgconn.PgError{Code: "23503", Message: "violates foreign key constraint"}
		mockQueries.EXPECT().CreateHotel(ctx, gomock.Any(), gomock.Any()).Return(sqlc.Hotels{}, fk)

		err = repo.Create(ctx, h)
		assert.True(t, infra.IsKind(err, infra.KindForeignKeyViolated))
	})
}

func TestHotelRepository_FindForUpdate(t *testing.T) {
	ctx := context.Background()
	hotelID := uuid.New()
	ownerID := uuid.New()

	testCases := []struct {
		name       string
		row        sqlc.Hotels
		queryErr   error
		want       *shared.HotelSnapshot
		expectKind infra.RepositoryErrorKind
	}{
		{
			name: "success: snapshot returned",
			row:  sqlc.Hotels{ID: hotelID, OwnerID: ownerID, Name: "Grand Tokyo"},
			want: &shared.HotelSnapshot{ID: hotelID, OwnerID: ownerID, Name: "Grand Tokyo"},
		},
		{
			name:       "error: hotel not found",
			queryErr:   pgx.ErrNoRows,
			expectKind: infra.KindNotFound,
		},
		{
			name:       "error: sql no rows is also not found",
			queryErr:   sql.ErrNoRows,
			expectKind: infra.KindNotFound,
		},
		{
			name:       "error: database error occurs",
			queryErr:   errors.New("connection reset"),
			expectKind: infra.KindDBFailure,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockQueries := repositorymock.NewMockHotelWriteQueries(ctrl)
			repo := repository.NewHotelRepository(mockQueries, &mockDBTX{})

			mockQueries.EXPECT().GetHotelByIDForUpdate(ctx, gomock.Any(), hotelID).Return(tc.row, tc.queryErr)

			got, err := repo.FindForUpdate(ctx, hotelID)
			if tc.want != nil {
				require.NoError(t, err)
				assert.Equal(t, tc.want, got)
				return
			}
			assert.Nil(t, got)
			assert.True(t, infra.IsKind(err, tc.expectKind), "expected kind [%v] but got (%v)", tc.expectKind, err)
		})
	}
}

func TestHotelRepository_UpdateRating(t *testing.T) {
	ctx := context.Background()
	hotelID := uuid.New()
	agg := reservation.RatingAggregate{Average: 3.5, Count: 2}

	t.Run("success: aggregate written", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockHotelWriteQueries(ctrl)
		repo := repository.NewHotelRepository(mockQueries, &mockDBTX{})

		mockQueries.EXPECT().UpdateHotelRating(ctx, gomock.Any(), sqlc.UpdateHotelRatingParams{
			ID:           hotelID,
			Rating:       3.5,
			TotalReviews: 2,
		}).Return(int64(1), nil)

		require.NoError(t, repo.UpdateRating(ctx, hotelID, agg))
	})

	t.Run("error: no row updated", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockHotelWriteQueries(ctrl)
		repo := repository.NewHotelRepository(mockQueries, &mockDBTX{})

		mockQueries.EXPECT().UpdateHotelRating(ctx, gomock.Any(), gomock.Any()).Return(int64(0), nil)

		err := repo.UpdateRating(ctx, hotelID, agg)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})
}

// =============================================================================
// Room Tests
// =============================================================================

func TestRoomRepository_Create(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	mockQueries := repositorymock.NewMockRoomWriteQueries(ctrl)
	repo := repository.NewRoomRepository(mockQueries, &mockDBTX{})

	room, err := builder.NewRoomBuilder().With(func(b *builder.RoomBuilder) {
		b.PricePerNight = 120.5
		b.MaxOccupancy = 3
	}).BuildDomain()
	require.NoError(t, err)

	dup := &pgconn.PgError{Code: "23505", Message: "duplicate key value violates unique constraint"}
	gomock.InOrder(
		mockQueries.EXPECT().CreateRoom(ctx, gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ sqlc.DBTX, arg sqlc.CreateRoomParams) (sqlc.Rooms, error) {
				assert.Equal(t, int64(12050), arg.PricePerNightCents)
				assert.Equal(t, int32(3), arg.MaxOccupancy)
				assert.Equal(t, "101", arg.RoomNumber)
				return sqlc.Rooms{}, nil
			}),
		mockQueries.EXPECT().CreateRoom(ctx, gomock.Any(), gomock.Any()).Return(sqlc.Rooms{}, dup),
	)

	require.NoError(t, repo.Create(ctx, room))
	err = repo.Create(ctx, room)
	assert.True(t, infra.IsKind(err, infra.KindDuplicateKey))
}

func TestRoomRepository_ExistsNumber(t *testing.T) {
	ctx := context.Background()
	hotelID := uuid.New()
	ctrl := gomock.NewController(t)
	mockQueries := repositorymock.NewMockRoomWriteQueries(ctrl)
	repo := repository.NewRoomRepository(mockQueries, &mockDBTX{})

	mockQueries.EXPECT().ExistsRoomNumber(ctx, gomock.Any(), sqlc.ExistsRoomNumberParams{
		HotelID:    hotelID,
		RoomNumber: "101",
	}).Return(true, nil)

	exists, err := repo.ExistsNumber(ctx, hotelID, "101")
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestRoomRepository_LockForBooking(t *testing.T) {
	ctx := context.Background()
	roomID := uuid.New()

	t.Run("success: snapshot carries owner and price", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockRoomWriteQueries(ctrl)
		repo := repository.NewRoomRepository(mockQueries, &mockDBTX{})

		row := sqlc.GetRoomWithHotelForUpdateRow{
			ID:                 roomID,
			HotelID:            uuid.New(),
			OwnerID:            uuid.New(),
			RoomNumber:         "101",
			RoomType:           "double",
			PricePerNightCents: 10000,
			MaxOccupancy:       2,
		}
		mockQueries.EXPECT().GetRoomWithHotelForUpdate(ctx, gomock.Any(), roomID).Return(row, nil)

		got, err := repo.LockForBooking(ctx, roomID)
		require.NoError(t, err)
		assert.Equal(t, &shared.RoomSnapshot{
			ID:            roomID,
			HotelID:       row.HotelID,
			OwnerID:       row.OwnerID,
			RoomNumber:    "101",
			MaxOccupancy:  2,
			PricePerNight: money.FromCents(10000),
		}, got)
	})

	t.Run("error: room not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockRoomWriteQueries(ctrl)
		repo := repository.NewRoomRepository(mockQueries, &mockDBTX{})

		mockQueries.EXPECT().GetRoomWithHotelForUpdate(ctx, gomock.Any(), roomID).
			Return(sqlc.GetRoomWithHotelForUpdateRow{}, pgx.ErrNoRows)

		got, err := repo.LockForBooking(ctx, roomID)
		assert.Nil(t, got)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})
}
