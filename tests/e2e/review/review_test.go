//go:build e2e

package review_test

import (
	"fmt"
	"net/http"
	"strings"
	"testing"
	"time"

	"gin-hotel-booking/internal/domain/reservation"
	"gin-hotel-booking/internal/domain/user"
	reqdto "gin-hotel-booking/internal/handler/dto/request"
	resdto "gin-hotel-booking/internal/handler/dto/response"
	"gin-hotel-booking/internal/handler/httperr"
	"gin-hotel-booking/internal/usecase/queries"
	"gin-hotel-booking/tests/common/authtest"
	"gin-hotel-booking/tests/common/builder"
	"gin-hotel-booking/tests/common/dbtest"
	"gin-hotel-booking/tests/common/httptest"
	"gin-hotel-booking/tests/common/testutil"
	"gin-hotel-booking/tests/e2e"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	reviewsURL  = "/api/reviews"
	bookingsURL = "/api/bookings"
	hotelURLFmt = "/api/hotels/%s"
)

type ReviewSuite struct {
	e2e.SharedSuite

	hotelID uuid.UUID
	roomID  uuid.UUID
}

func TestReviewSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(ReviewSuite))
}

func (s *ReviewSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()

	t := s.T()
	ownerID := dbtest.CreateTestUser(t, s.DB, "owner@example.com", string(user.RoleOwner))
	s.hotelID = dbtest.CreateTestHotel(t, s.DB, ownerID, "Grand Tokyo", "Tokyo", "Japan")
	s.roomID = dbtest.CreateTestRoom(t, s.DB, s.hotelID, "101", 10000, 2)
}

func (s *ReviewSuite) getHotel(t *testing.T, token string) queries.HotelDetailView {
	t.Helper()
	w := httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(hotelURLFmt, s.hotelID), nil, token)
	var detail queries.HotelDetailView
	httptest.AssertSuccessResponse(t, w, http.StatusOK, &detail)
	return detail
}

// =============================================================================
// TestCreateReview - レビュー投稿APIのテスト
// =============================================================================

func (s *ReviewSuite) TestCreateReview() {
	s.Run("正常系: 宿泊済みの予約にレビューでき、ホテル評価が更新されること", func() {
		t := s.T()
		userID, token := authtest.CreateAndLogin(t, s.DB, s.Router, "reviewer@example.com", string(user.RoleCustomer))
		bookingID := dbtest.CreatePastBooking(t, s.DB, userID, s.roomID, s.hotelID)

		// キャッシュに載せてから投稿し、無効化されることも確認する
		before := s.getHotel(t, token)
		require.Zero(t, before.TotalReviews)

		reqBody := builder.NewReviewBuilder().With(func(b *builder.ReviewBuilder) {
			b.BookingID = bookingID
			b.Rating = 4
		}).BuildCreateRequestDTO()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, reviewsURL, reqBody, token)

		var created resdto.ReviewResponse
		httptest.AssertSuccessResponse(t, w, http.StatusCreated, &created)
		want := resdto.ReviewResponse{
			UserID:    userID,
			HotelID:   s.hotelID,
			BookingID: bookingID,
			Rating:    4,
			Comment:   reqBody.Comment,
		}
		if diff := cmp.Diff(want, created, cmpopts.IgnoreFields(resdto.ReviewResponse{}, "ID", "CreatedAt")); diff != "" {
			t.Errorf("review mismatch (-want +got):\n%s", diff)
		}
		require.NotEqual(t, uuid.Nil, created.ID)

		after := s.getHotel(t, token)
		require.Equal(t, 4.0, after.Rating)
		require.Equal(t, 1, after.TotalReviews)
	})

	s.Run("正常系: 複数レビューの平均が評価になること", func() {
		t := s.T()
		firstID, firstToken := authtest.CreateAndLogin(t, s.DB, s.Router, "first@example.com", string(user.RoleCustomer))
		secondID, secondToken := authtest.CreateAndLogin(t, s.DB, s.Router, "second@example.com", string(user.RoleCustomer))

		firstBooking := dbtest.CreatePastBooking(t, s.DB, firstID, s.roomID, s.hotelID)
		secondRoom := dbtest.CreateTestRoom(t, s.DB, s.hotelID, "102", 10000, 2)
		secondBooking := dbtest.CreatePastBooking(t, s.DB, secondID, secondRoom, s.hotelID)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, reviewsURL,
			reqdto.CreateReviewRequest{BookingID: firstBooking, Rating: 5}, firstToken)
		httptest.AssertSuccessResponse(t, w, http.StatusCreated, nil)

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, reviewsURL,
			reqdto.CreateReviewRequest{BookingID: secondBooking, Rating: 2}, secondToken)
		httptest.AssertSuccessResponse(t, w, http.StatusCreated, nil)

		detail := s.getHotel(t, firstToken)
		require.Equal(t, 3.5, detail.Rating)
		require.Equal(t, 2, detail.TotalReviews)
	})

	s.Run("正常系: コメントなしでも投稿できること", func() {
		t := s.T()
		userID, token := authtest.CreateAndLogin(t, s.DB, s.Router, "reviewer@example.com", string(user.RoleCustomer))
		bookingID := dbtest.CreatePastBooking(t, s.DB, userID, s.roomID, s.hotelID)

		reqBody := builder.NewReviewBuilder().WithoutComment().With(func(b *builder.ReviewBuilder) {
			b.BookingID = bookingID
		}).BuildCreateRequestDTO()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, reviewsURL, reqBody, token)

		var created resdto.ReviewResponse
		httptest.AssertSuccessResponse(t, w, http.StatusCreated, &created)
		require.Nil(t, created.Comment)
	})

	s.Run("異常系: 同じ予約への二重レビューは拒否されること", func() {
		t := s.T()
		userID, token := authtest.CreateAndLogin(t, s.DB, s.Router, "reviewer@example.com", string(user.RoleCustomer))
		bookingID := dbtest.CreatePastBooking(t, s.DB, userID, s.roomID, s.hotelID)
		reqBody := reqdto.CreateReviewRequest{BookingID: bookingID, Rating: 5}

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, reviewsURL, reqBody, token)
		httptest.AssertSuccessResponse(t, w, http.StatusCreated, nil)

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, reviewsURL, reqBody, token)
		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "ALREADY_REVIEWED")

		var count int
		err := s.DB.QueryRow(t.Context(), "SELECT total_reviews FROM hotels WHERE id = $1", s.hotelID).Scan(&count)
		require.NoError(t, err)
		require.Equal(t, 1, count)
	})

	s.Run("異常系: 宿泊前の予約にはレビューできないこと", func() {
		t := s.T()
		_, token := authtest.CreateAndLogin(t, s.DB, s.Router, "reviewer@example.com", string(user.RoleCustomer))

		today := reservation.DateOf(time.Now())
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, reqdto.CreateBookingRequest{
			RoomID:       s.roomID,
			CheckInDate:  reservation.FormatDate(today.AddDate(0, 0, 5)),
			CheckOutDate: reservation.FormatDate(today.AddDate(0, 0, 7)),
			Guests:       1,
		}, token)
		var booking resdto.BookingResponse
		httptest.AssertSuccessResponse(t, w, http.StatusCreated, &booking)

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, reviewsURL,
			reqdto.CreateReviewRequest{BookingID: booking.ID, Rating: 5}, token)
		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "BOOKING_NOT_ELIGIBLE")
	})

	s.Run("異常系: キャンセル済みの予約にはレビューできないこと", func() {
		t := s.T()
		userID, token := authtest.CreateAndLogin(t, s.DB, s.Router, "reviewer@example.com", string(user.RoleCustomer))
		bookingID := dbtest.CreatePastBooking(t, s.DB, userID, s.roomID, s.hotelID)
		_, err := s.DB.Exec(t.Context(), "UPDATE bookings SET status = 'cancelled', cancelled_at = now() WHERE id = $1", bookingID)
		require.NoError(t, err)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, reviewsURL,
			reqdto.CreateReviewRequest{BookingID: bookingID, Rating: 3}, token)
		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "BOOKING_NOT_ELIGIBLE")
	})

	s.Run("異常系: 他人の予約にはレビューできないこと", func() {
		t := s.T()
		ownerOfBooking := dbtest.CreateTestUser(t, s.DB, "stayer@example.com", string(user.RoleCustomer))
		bookingID := dbtest.CreatePastBooking(t, s.DB, ownerOfBooking, s.roomID, s.hotelID)
		_, token := authtest.CreateAndLogin(t, s.DB, s.Router, "intruder@example.com", string(user.RoleCustomer))

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, reviewsURL,
			reqdto.CreateReviewRequest{BookingID: bookingID, Rating: 1}, token)
		httptest.AssertErrorResponse(t, w, http.StatusForbidden, httperr.CodeForbidden)
	})

	s.Run("異常系: 存在しない予約は404", func() {
		t := s.T()
		_, token := authtest.CreateAndLogin(t, s.DB, s.Router, "reviewer@example.com", string(user.RoleCustomer))

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, reviewsURL,
			reqdto.CreateReviewRequest{BookingID: uuid.New(), Rating: 4}, token)
		httptest.AssertErrorResponse(t, w, http.StatusNotFound, httperr.CodeBookingNotFound)
	})

	s.Run("異常系: 入力検証エラーは400", func() {
		t := s.T()
		userID, token := authtest.CreateAndLogin(t, s.DB, s.Router, "reviewer@example.com", string(user.RoleCustomer))
		bookingID := dbtest.CreatePastBooking(t, s.DB, userID, s.roomID, s.hotelID)
		base := reqdto.CreateReviewRequest{BookingID: bookingID, Rating: 4}

		cases := []struct {
			name   string
			mutate func(m map[string]any)
		}{
			{"評価0", testutil.Field("rating", 0)},
			{"評価6", testutil.Field("rating", 6)},
			{"空白のみのコメント", testutil.Field("comment", strings.Repeat(" ", 3))},
			{"予約ID欠落", testutil.Field("bookingId", nil)},
		}
		for _, tc := range cases {
			requestMap := testutil.DtoMap(t, base, tc.mutate)
			w := httptest.PerformRequest(t, s.Router, http.MethodPost, reviewsURL, requestMap, token)
			httptest.AssertErrorResponse(t, w, http.StatusBadRequest, httperr.CodeInvalidRequest)
		}
	})

	s.Run("異常系: オーナーはレビューできないこと", func() {
		t := s.T()
		token := authtest.LoginUser(t, s.Router, "owner@example.com", dbtest.DefaultPassword)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, reviewsURL,
			reqdto.CreateReviewRequest{BookingID: uuid.New(), Rating: 4}, token)
		httptest.AssertErrorResponse(t, w, http.StatusForbidden, httperr.CodeForbidden)
	})
}
