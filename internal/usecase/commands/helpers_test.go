//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"gin-hotel-booking/internal/pkg/clock"
	"gin-hotel-booking/internal/usecase/shared"
	sharedmock "gin-hotel-booking/tests/mock/shared"

	"go.uber.org/mock/gomock"
)

// fixedNow is 2030-06-01 12:00 UTC; bookings in tests are placed relative to it.
var fixedNow = time.Date(2030, 6, 1, 12, 0, 0, 0, time.UTC)

type txMocks struct {
	uow      *sharedmock.MockUnitOfWork
	tx       *sharedmock.MockTx
	users    *sharedmock.MockUserRepository
	hotels   *sharedmock.MockHotelRepository
	rooms    *sharedmock.MockRoomRepository
	bookings *sharedmock.MockBookingRepository
	reviews  *sharedmock.MockReviewRepository
	cache    *sharedmock.MockHotelCacheInvalidator
	clock    *clock.MockClock
}

// newTxMocks wires a unit of work that runs fn against a mocked Tx.
func newTxMocks(t *testing.T) *txMocks {
	t.Helper()
	ctrl := gomock.NewController(t)

	m := &txMocks{
		uow:      sharedmock.NewMockUnitOfWork(ctrl),
		tx:       sharedmock.NewMockTx(ctrl),
		users:    sharedmock.NewMockUserRepository(ctrl),
		hotels:   sharedmock.NewMockHotelRepository(ctrl),
		rooms:    sharedmock.NewMockRoomRepository(ctrl),
		bookings: sharedmock.NewMockBookingRepository(ctrl),
		reviews:  sharedmock.NewMockReviewRepository(ctrl),
		cache:    sharedmock.NewMockHotelCacheInvalidator(ctrl),
		clock:    clock.NewMockClock(fixedNow),
	}

	m.uow.EXPECT().Within(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
			return fn(ctx, m.tx)
		}).AnyTimes()
	m.tx.EXPECT().Users().Return(m.users).AnyTimes()
	m.tx.EXPECT().Hotels().Return(m.hotels).AnyTimes()
	m.tx.EXPECT().Rooms().Return(m.rooms).AnyTimes()
	m.tx.EXPECT().Bookings().Return(m.bookings).AnyTimes()
	m.tx.EXPECT().Reviews().Return(m.reviews).AnyTimes()

	return m
}
