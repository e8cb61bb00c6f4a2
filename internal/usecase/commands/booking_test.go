//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"gin-hotel-booking/internal/domain/money"
	"gin-hotel-booking/internal/domain/reservation"
	"gin-hotel-booking/internal/infra"
	"gin-hotel-booking/internal/pkg/errs"
	"gin-hotel-booking/internal/usecase/commands"
	"gin-hotel-booking/internal/usecase/shared"
	"gin-hotel-booking/tests/common/builder"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func roomSnapshot(id uuid.UUID) *shared.RoomSnapshot {
	return &shared.RoomSnapshot{
		ID:            id,
		HotelID:       uuid.New(),
		OwnerID:       uuid.New(),
		RoomNumber:    "101",
		MaxOccupancy:  2,
		PricePerNight: money.FromCents(10000),
	}
}

func TestCreateBooking(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	roomID := uuid.New()

	baseReq := commands.CreateBookingRequest{
		RoomID:       roomID,
		CheckInDate:  "2030-06-10",
		CheckOutDate: "2030-06-13",
		Guests:       2,
	}

	testCases := []struct {
		name      string
		req       func(r *commands.CreateBookingRequest)
		setup     func(m *txMocks)
		wantErr   error
		wantCents int64
	}{
		{
			name: "予約成功: 3泊の合計金額",
			setup: func(m *txMocks) {
				m.rooms.EXPECT().LockForBooking(gomock.Any(), roomID).Return(roomSnapshot(roomID), nil)
				m.bookings.EXPECT().ListConfirmedOverlapping(gomock.Any(), roomID, gomock.Any()).Return(nil, nil)
				m.bookings.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
			},
			wantCents: 30000,
		},
		{
			name:    "日付形式が不正",
			req:     func(r *commands.CreateBookingRequest) { r.CheckInDate = "2030/06/10" },
			setup:   func(m *txMocks) {},
			wantErr: reservation.ErrInvalidRequest,
		},
		{
			name:    "部屋が存在しない",
			wantErr: errs.ErrRoomNotFound,
			setup: func(m *txMocks) {
				m.rooms.EXPECT().LockForBooking(gomock.Any(), roomID).
					Return(nil, infra.WrapRepoErr("room not found", nil, infra.KindNotFound))
			},
		},
		{
			name:    "自分のホテルは予約できない",
			wantErr: errs.ErrForbidden,
			setup: func(m *txMocks) {
				snap := roomSnapshot(roomID)
				snap.OwnerID = userID
				m.rooms.EXPECT().LockForBooking(gomock.Any(), roomID).Return(snap, nil)
			},
		},
		{
			name:    "チェックアウトがチェックイン以前",
			req:     func(r *commands.CreateBookingRequest) { r.CheckOutDate = "2030-06-10" },
			wantErr: reservation.ErrInvalidRequest,
			setup: func(m *txMocks) {
				m.rooms.EXPECT().LockForBooking(gomock.Any(), roomID).Return(roomSnapshot(roomID), nil)
			},
		},
		{
			name:    "チェックインが今日",
			req:     func(r *commands.CreateBookingRequest) { r.CheckInDate = "2030-06-01" },
			wantErr: reservation.ErrInvalidDates,
			setup: func(m *txMocks) {
				m.rooms.EXPECT().LockForBooking(gomock.Any(), roomID).Return(roomSnapshot(roomID), nil)
				m.bookings.EXPECT().ListConfirmedOverlapping(gomock.Any(), roomID, gomock.Any()).Return(nil, nil)
			},
		},
		{
			name:    "定員超過",
			req:     func(r *commands.CreateBookingRequest) { r.Guests = 3 },
			wantErr: reservation.ErrInvalidCapacity,
			setup: func(m *txMocks) {
				m.rooms.EXPECT().LockForBooking(gomock.Any(), roomID).Return(roomSnapshot(roomID), nil)
				m.bookings.EXPECT().ListConfirmedOverlapping(gomock.Any(), roomID, gomock.Any()).Return(nil, nil)
			},
		},
		{
			name:    "既存予約と重複",
			wantErr: reservation.ErrRoomNotAvailable,
			setup: func(m *txMocks) {
				existing := builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) {
					b.RoomID = roomID
					b.CheckIn = time.Date(2030, 6, 12, 0, 0, 0, 0, time.UTC)
					b.CheckOut = time.Date(2030, 6, 15, 0, 0, 0, 0, time.UTC)
				}).BuildDomain()
				m.rooms.EXPECT().LockForBooking(gomock.Any(), roomID).Return(roomSnapshot(roomID), nil)
				m.bookings.EXPECT().ListConfirmedOverlapping(gomock.Any(), roomID, gomock.Any()).
					Return([]*reservation.Booking{existing}, nil)
			},
		},
		{
			name:    "排他制約違反は空室なしとして扱う",
			wantErr: reservation.ErrRoomNotAvailable,
			setup: func(m *txMocks) {
				m.rooms.EXPECT().LockForBooking(gomock.Any(), roomID).Return(roomSnapshot(roomID), nil)
				m.bookings.EXPECT().ListConfirmedOverlapping(gomock.Any(), roomID, gomock.Any()).Return(nil, nil)
				m.bookings.EXPECT().Create(gomock.Any(), gomock.Any()).
					Return(infra.WrapRepoErr("failed to create booking", &pgconn.PgError{Code: "23P01"}))
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			m := newTxMocks(t)
			tc.setup(m)

			req := baseReq
			if tc.req != nil {
				tc.req(&req)
			}

			cmds := commands.NewBookingCommands(m.uow, m.clock)
			booking, err := cmds.CreateBooking(ctx, req, userID)

			if tc.wantErr != nil {
				require.Error(t, err)
				assert.True(t, errs.Is(err, tc.wantErr), "got %v", err)
				assert.Nil(t, booking)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, userID, booking.UserID())
			assert.Equal(t, roomID, booking.RoomID())
			assert.Equal(t, tc.wantCents, booking.TotalPrice().Cents())
			assert.True(t, booking.IsConfirmed())
			assert.Equal(t, fixedNow, booking.CreatedAt())
		})
	}
}

func TestCancelBooking(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	bookingID := uuid.New()

	stored := func(mutate func(b *builder.BookingBuilder)) *reservation.Booking {
		return builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) {
			b.ID = bookingID
			b.UserID = userID
			b.CheckIn = time.Date(2030, 6, 10, 0, 0, 0, 0, time.UTC)
			b.CheckOut = time.Date(2030, 6, 12, 0, 0, 0, 0, time.UTC)
			if mutate != nil {
				mutate(b)
			}
		}).BuildDomain()
	}

	testCases := []struct {
		name    string
		caller  uuid.UUID
		setup   func(m *txMocks)
		wantErr error
	}{
		{
			name:   "キャンセル成功",
			caller: userID,
			setup: func(m *txMocks) {
				m.bookings.EXPECT().FindForUpdate(gomock.Any(), bookingID).Return(stored(nil), nil)
				m.bookings.EXPECT().SaveCancellation(gomock.Any(), gomock.Any()).Return(nil)
			},
		},
		{
			name:    "予約が存在しない",
			caller:  userID,
			wantErr: errs.ErrBookingNotFound,
			setup: func(m *txMocks) {
				m.bookings.EXPECT().FindForUpdate(gomock.Any(), bookingID).
					Return(nil, infra.WrapRepoErr("booking not found", nil, infra.KindNotFound))
			},
		},
		{
			name:    "他人の予約",
			caller:  uuid.New(),
			wantErr: reservation.ErrForbidden,
			setup: func(m *txMocks) {
				m.bookings.EXPECT().FindForUpdate(gomock.Any(), bookingID).Return(stored(nil), nil)
			},
		},
		{
			name:    "キャンセル済み",
			caller:  userID,
			wantErr: reservation.ErrAlreadyCancelled,
			setup: func(m *txMocks) {
				m.bookings.EXPECT().FindForUpdate(gomock.Any(), bookingID).
					Return(stored(func(b *builder.BookingBuilder) { b.AsCancelled() }), nil)
			},
		},
		{
			name:    "チェックイン24時間前を過ぎている",
			caller:  userID,
			wantErr: reservation.ErrCancellationDeadlinePassed,
			setup: func(m *txMocks) {
				m.bookings.EXPECT().FindForUpdate(gomock.Any(), bookingID).
					Return(stored(func(b *builder.BookingBuilder) {
						b.CheckIn = time.Date(2030, 6, 2, 0, 0, 0, 0, time.UTC)
						b.CheckOut = time.Date(2030, 6, 4, 0, 0, 0, 0, time.UTC)
					}), nil)
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			m := newTxMocks(t)
			tc.setup(m)

			cmds := commands.NewBookingCommands(m.uow, m.clock)
			cancelled, err := cmds.CancelBooking(ctx, bookingID, tc.caller)

			if tc.wantErr != nil {
				require.Error(t, err)
				assert.True(t, errs.Is(err, tc.wantErr), "got %v", err)
				return
			}
			require.NoError(t, err)
			assert.True(t, cancelled.IsCancelled())
			require.NotNil(t, cancelled.CancelledAt())
			assert.Equal(t, fixedNow, *cancelled.CancelledAt())
		})
	}
}
