//go:build unit

package commands_test

import (
	"context"
	"strings"
	"testing"
	"time"

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

func TestCreateReview(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	hotelID := uuid.New()
	bookingID := uuid.New()

	completed := func(mutate func(b *builder.BookingBuilder)) *reservation.Booking {
		return builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) {
			b.ID = bookingID
			b.UserID = userID
			b.HotelID = hotelID
			b.CheckIn = time.Date(2030, 5, 25, 0, 0, 0, 0, time.UTC)
			b.CheckOut = time.Date(2030, 5, 28, 0, 0, 0, 0, time.UTC)
			if mutate != nil {
				mutate(b)
			}
		}).BuildDomain()
	}
	comment := "とても快適でした"
	blank := "   "

	testCases := []struct {
		name    string
		req     commands.CreateReviewRequest
		setup   func(m *txMocks)
		wantErr error
	}{
		{
			name: "レビュー作成と評価の再計算",
			req:  commands.CreateReviewRequest{BookingID: bookingID, Rating: 4, Comment: &comment},
			setup: func(m *txMocks) {
				m.bookings.EXPECT().FindByID(gomock.Any(), bookingID).Return(completed(nil), nil)
				m.hotels.EXPECT().FindForUpdate(gomock.Any(), hotelID).Return(&shared.HotelSnapshot{ID: hotelID}, nil)
				m.reviews.EXPECT().ExistsForBooking(gomock.Any(), bookingID).Return(false, nil)
				m.reviews.EXPECT().ListRatingsByHotel(gomock.Any(), hotelID).Return([]int{5, 3}, nil)
				m.reviews.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
				m.hotels.EXPECT().UpdateRating(gomock.Any(), hotelID, reservation.RatingAggregate{Average: 4, Count: 3}).Return(nil)
				m.cache.EXPECT().InvalidateHotel(gomock.Any(), hotelID)
			},
		},
		{
			name:    "評価が範囲外",
			req:     commands.CreateReviewRequest{BookingID: bookingID, Rating: 6},
			setup:   func(m *txMocks) {},
			wantErr: errs.ErrDomainValidation,
		},
		{
			name:    "空白のみのコメント",
			req:     commands.CreateReviewRequest{BookingID: bookingID, Rating: 5, Comment: &blank},
			setup:   func(m *txMocks) {},
			wantErr: errs.ErrDomainValidation,
		},
		{
			name:    "予約が存在しない",
			req:     commands.CreateReviewRequest{BookingID: bookingID, Rating: 5},
			wantErr: errs.ErrBookingNotFound,
			setup: func(m *txMocks) {
				m.bookings.EXPECT().FindByID(gomock.Any(), bookingID).
					Return(nil, infra.WrapRepoErr("booking not found", nil, infra.KindNotFound))
			},
		},
		{
			name:    "他人の予約",
			req:     commands.CreateReviewRequest{BookingID: bookingID, Rating: 5},
			wantErr: reservation.ErrForbidden,
			setup: func(m *txMocks) {
				m.bookings.EXPECT().FindByID(gomock.Any(), bookingID).
					Return(completed(func(b *builder.BookingBuilder) { b.UserID = uuid.New() }), nil)
			},
		},
		{
			name:    "まだチェックアウトしていない",
			req:     commands.CreateReviewRequest{BookingID: bookingID, Rating: 5},
			wantErr: reservation.ErrBookingNotEligible,
			setup: func(m *txMocks) {
				m.bookings.EXPECT().FindByID(gomock.Any(), bookingID).
					Return(completed(func(b *builder.BookingBuilder) {
						b.CheckOut = time.Date(2030, 6, 3, 0, 0, 0, 0, time.UTC)
					}), nil)
			},
		},
		{
			name:    "キャンセル済みの予約",
			req:     commands.CreateReviewRequest{BookingID: bookingID, Rating: 5},
			wantErr: reservation.ErrBookingNotEligible,
			setup: func(m *txMocks) {
				m.bookings.EXPECT().FindByID(gomock.Any(), bookingID).
					Return(completed(func(b *builder.BookingBuilder) { b.AsCancelled() }), nil)
			},
		},
		{
			name:    "レビュー済み",
			req:     commands.CreateReviewRequest{BookingID: bookingID, Rating: 5},
			wantErr: reservation.ErrAlreadyReviewed,
			setup: func(m *txMocks) {
				m.bookings.EXPECT().FindByID(gomock.Any(), bookingID).Return(completed(nil), nil)
				m.hotels.EXPECT().FindForUpdate(gomock.Any(), hotelID).Return(&shared.HotelSnapshot{ID: hotelID}, nil)
				m.reviews.EXPECT().ExistsForBooking(gomock.Any(), bookingID).Return(true, nil)
			},
		},
		{
			name:    "一意制約違反はレビュー済みとして扱う",
			req:     commands.CreateReviewRequest{BookingID: bookingID, Rating: 5},
			wantErr: reservation.ErrAlreadyReviewed,
			setup: func(m *txMocks) {
				m.bookings.EXPECT().FindByID(gomock.Any(), bookingID).Return(completed(nil), nil)
				m.hotels.EXPECT().FindForUpdate(gomock.Any(), hotelID).Return(&shared.HotelSnapshot{ID: hotelID}, nil)
				m.reviews.EXPECT().ExistsForBooking(gomock.Any(), bookingID).Return(false, nil)
				m.reviews.EXPECT().ListRatingsByHotel(gomock.Any(), hotelID).Return(nil, nil)
				m.reviews.EXPECT().Create(gomock.Any(), gomock.Any()).
					Return(infra.WrapRepoErr("failed to create review", &pgconn.PgError{Code: "23505"}))
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			m := newTxMocks(t)
			tc.setup(m)

			cmds := commands.NewReviewCommands(m.uow, m.cache, m.clock)
			rev, err := cmds.CreateReview(ctx, tc.req, userID)

			if tc.wantErr != nil {
				require.Error(t, err)
				assert.True(t, errs.Is(err, tc.wantErr), "got %v", err)
				assert.Nil(t, rev)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, hotelID, rev.HotelID())
			assert.Equal(t, bookingID, rev.BookingID())
			assert.Equal(t, tc.req.Rating, rev.Rating().Value())
			require.NotNil(t, rev.Comment().Ptr())
			assert.Equal(t, strings.TrimSpace(comment), *rev.Comment().Ptr())
		})
	}
}
