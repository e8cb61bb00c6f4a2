package shared

//go:generate mockgen -source=$GOFILE -destination=../../../tests/mock/shared/$GOFILE -package=sharedmock

import (
	"context"

	"gin-hotel-booking/internal/domain/hotel"
	"gin-hotel-booking/internal/domain/reservation"
	"gin-hotel-booking/internal/domain/review"
	"gin-hotel-booking/internal/domain/user"
	sqlc "gin-hotel-booking/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within runs fn in a read-committed transaction, retrying serialization failures and deadlocks.
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly gives fn a consistent snapshot across several reads.
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error
}

// Tx exposes repositories bound to the running transaction.
type Tx interface {
	Users() UserRepository
	Hotels() HotelRepository
	Rooms() RoomRepository
	Bookings() BookingRepository
	Reviews() ReviewRepository
}

type UserRepository interface {
	Create(ctx context.Context, u *user.User) error
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}

type HotelRepository interface {
	Create(ctx context.Context, h *hotel.Hotel) error
	FindForUpdate(ctx context.Context, id uuid.UUID) (*HotelSnapshot, error)
	UpdateRating(ctx context.Context, id uuid.UUID, agg reservation.RatingAggregate) error
}

type RoomRepository interface {
	Create(ctx context.Context, r *hotel.Room) error
	ExistsNumber(ctx context.Context, hotelID uuid.UUID, number string) (bool, error)
	// LockForBooking locks the room row until the transaction ends.
	LockForBooking(ctx context.Context, id uuid.UUID) (*RoomSnapshot, error)
}

type BookingRepository interface {
	Create(ctx context.Context, b *reservation.Booking) error
	FindByID(ctx context.Context, id uuid.UUID) (*reservation.Booking, error)
	FindForUpdate(ctx context.Context, id uuid.UUID) (*reservation.Booking, error)
	ListConfirmedOverlapping(ctx context.Context, roomID uuid.UUID, period reservation.StayPeriod) ([]*reservation.Booking, error)
	SaveCancellation(ctx context.Context, b *reservation.Booking) error
}

type ReviewRepository interface {
	Create(ctx context.Context, r *review.Review) error
	ExistsForBooking(ctx context.Context, bookingID uuid.UUID) (bool, error)
	ListRatingsByHotel(ctx context.Context, hotelID uuid.UUID) ([]int, error)
}

type HotelCacheInvalidator interface {
	InvalidateHotel(ctx context.Context, hotelID uuid.UUID)
}
