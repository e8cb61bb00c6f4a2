package readstore

import (
	"context"

	"gin-hotel-booking/internal/domain/money"
	"gin-hotel-booking/internal/domain/reservation"
	"gin-hotel-booking/internal/infra"
	sqlc "gin-hotel-booking/internal/infra/sqlc/generated"
	"gin-hotel-booking/internal/pkg/pgconv"
	"gin-hotel-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type BookingViewQueries interface {
	ListBookingsByUser(ctx context.Context, db sqlc.DBTX, arg sqlc.ListBookingsByUserParams) ([]sqlc.ListBookingsByUserRow, error)
}

type BookingReadStore struct {
	queries BookingViewQueries
	db      sqlc.DBTX
}

func NewBookingReadStore(queries BookingViewQueries, db sqlc.DBTX) *BookingReadStore {
	return &BookingReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *BookingReadStore) ListByUser(ctx context.Context, userID uuid.UUID, status *reservation.Status) ([]*queries.BookingListItem, error) {
	params := sqlc.ListBookingsByUserParams{UserID: userID}
	if status != nil {
		params.Status = pgtype.Text{String: status.String(), Valid: true}
	}

	rows, err := r.queries.ListBookingsByUser(ctx, r.db, params)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings by user", err)
	}

	items := make([]*queries.BookingListItem, 0, len(rows))
	for _, row := range rows {
		items = append(items, &queries.BookingListItem{
			ID:           row.ID,
			RoomID:       row.RoomID,
			HotelID:      row.HotelID,
			HotelName:    row.HotelName,
			RoomNumber:   row.RoomNumber,
			RoomType:     row.RoomType,
			CheckInDate:  pgconv.DateFromPgtype(row.CheckInDate),
			CheckOutDate: pgconv.DateFromPgtype(row.CheckOutDate),
			Guests:       int(row.Guests),
			TotalPrice:   money.FromCents(row.TotalPriceCents).Amount(),
			Status:       row.Status,
			CreatedAt:    pgconv.TimeFromPgtype(row.CreatedAt),
			CancelledAt:  pgconv.TimePtrFromPgtype(row.CancelledAt),
		})
	}
	return items, nil
}
