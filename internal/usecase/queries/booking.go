package queries

//go:generate mockgen -source=$GOFILE -destination=../../../tests/mock/queries/$GOFILE -package=queriesmock

import (
	"context"

	"gin-hotel-booking/internal/domain/reservation"
	"gin-hotel-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

type BookingQueries interface {
	ListByUser(ctx context.Context, userID uuid.UUID, status *string) ([]*BookingListItem, error)
}

type BookingReadStore interface {
	ListByUser(ctx context.Context, userID uuid.UUID, status *reservation.Status) ([]*BookingListItem, error)
}

type bookingQueriesImpl struct {
	readStore BookingReadStore
}

func NewBookingQueries(readStore BookingReadStore) BookingQueries {
	return &bookingQueriesImpl{
		readStore: readStore,
	}
}

// ListByUser returns the user's bookings newest first, optionally narrowed to one status.
func (q *bookingQueriesImpl) ListByUser(ctx context.Context, userID uuid.UUID, status *string) ([]*BookingListItem, error) {
	var filter *reservation.Status
	if status != nil && *status != "" {
		s, err := reservation.ParseStatus(*status)
		if err != nil {
			return nil, err
		}
		filter = &s
	}

	items, err := q.readStore.ListByUser(ctx, userID, filter)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return items, nil
}
