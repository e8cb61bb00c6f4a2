package repository

//go:generate mockgen -source=$GOFILE -destination=../../../tests/mock/repository/$GOFILE -package=repositorymock

import (
	"context"

	"gin-hotel-booking/internal/domain/reservation"
	"gin-hotel-booking/internal/infra"
	"gin-hotel-booking/internal/infra/repository/converter"
	sqlc "gin-hotel-booking/internal/infra/sqlc/generated"
	"gin-hotel-booking/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type BookingWriteQueries interface {
	CreateBooking(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateBookingParams) (sqlc.Bookings, error)
	GetBookingByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Bookings, error)
	GetBookingByIDForUpdate(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Bookings, error)
	ListOverlappingConfirmedBookings(ctx context.Context, db sqlc.DBTX, arg sqlc.ListOverlappingConfirmedBookingsParams) ([]sqlc.Bookings, error)
	CancelBooking(ctx context.Context, db sqlc.DBTX, arg sqlc.CancelBookingParams) (int64, error)
}

type BookingRepository struct {
	queries BookingWriteQueries
	db      sqlc.DBTX
}

func NewBookingRepository(queries BookingWriteQueries, db sqlc.DBTX) *BookingRepository {
	return &BookingRepository{
		queries: queries,
		db:      db,
	}
}

// Create relies on the room overlap exclusion constraint; a hit surfaces as KindExclusionViolated.
func (r *BookingRepository) Create(ctx context.Context, b *reservation.Booking) error {
	if _, err := r.queries.CreateBooking(ctx, r.db, converter.BookingToCreateParams(b)); err != nil {
		return infra.WrapRepoErr("failed to create booking", err)
	}
	return nil
}

func (r *BookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*reservation.Booking, error) {
	row, err := r.queries.GetBookingByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking", err)
	}
	return toBooking(row)
}

func (r *BookingRepository) FindForUpdate(ctx context.Context, id uuid.UUID) (*reservation.Booking, error) {
	row, err := r.queries.GetBookingByIDForUpdate(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock booking", err)
	}
	return toBooking(row)
}

func (r *BookingRepository) ListConfirmedOverlapping(ctx context.Context, roomID uuid.UUID, period reservation.StayPeriod) ([]*reservation.Booking, error) {
	rows, err := r.queries.ListOverlappingConfirmedBookings(ctx, r.db, sqlc.ListOverlappingConfirmedBookingsParams{
		RoomID:     roomID,
		RangeStart: pgconv.DateToPgtype(period.CheckIn()),
		RangeEnd:   pgconv.DateToPgtype(period.CheckOut()),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list overlapping bookings", err)
	}

	bookings, err := converter.BookingsFromRows(rows)
	if err != nil {
		return nil, infra.WrapRepoErr("corrupt booking row", err)
	}
	return bookings, nil
}

func (r *BookingRepository) SaveCancellation(ctx context.Context, b *reservation.Booking) error {
	affected, err := r.queries.CancelBooking(ctx, r.db, sqlc.CancelBookingParams{
		ID:          b.ID(),
		CancelledAt: pgconv.TimePtrToPgtype(b.CancelledAt()),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to cancel booking", err)
	}
	if affected == 0 {
		return infra.WrapRepoErr("confirmed booking not found", nil, infra.KindNotFound)
	}
	return nil
}

func toBooking(row sqlc.Bookings) (*reservation.Booking, error) {
	b, err := converter.BookingFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr("corrupt booking row", err)
	}
	return b, nil
}
