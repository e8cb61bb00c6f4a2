package api

import (
	"net/http"

	reqdto "gin-hotel-booking/internal/handler/dto/request"
	resdto "gin-hotel-booking/internal/handler/dto/response"
	"gin-hotel-booking/internal/handler/httperr"
	"gin-hotel-booking/internal/handler/middleware"
	"gin-hotel-booking/internal/usecase/commands"
	"gin-hotel-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type BookingHandler struct {
	cmds commands.BookingCommands
	q    queries.BookingQueries
}

func NewBookingHandler(cmds commands.BookingCommands, q queries.BookingQueries) *BookingHandler {
	return &BookingHandler{
		cmds: cmds,
		q:    q,
	}
}

// @Summary Book a room
// @Description Dates are YYYY-MM-DD. Owners cannot book rooms in their own hotels.
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateBookingRequest true "Booking request"
// @Success 201 {object} httperr.Response{data=resdto.BookingResponse}
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/bookings [post]
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, httperr.CodeUnauthorized)
		return
	}

	var req reqdto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, httperr.CodeInvalidRequest)
		return
	}

	booking, err := h.cmds.CreateBooking(c.Request.Context(), commands.CreateBookingRequest{
		RoomID:       req.RoomID,
		CheckInDate:  req.CheckInDate,
		CheckOutDate: req.CheckOutDate,
		Guests:       req.Guests,
	}, userID)
	if err != nil {
		httperr.Abort(c, err)
		return
	}

	httperr.OK(c, http.StatusCreated, resdto.FromBooking(booking))
}

// @Summary List my bookings
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param status query string false "confirmed or cancelled"
// @Success 200 {object} httperr.Response{data=[]resdto.BookingListItemResponse}
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /api/bookings [get]
func (h *BookingHandler) ListBookings(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, httperr.CodeUnauthorized)
		return
	}

	var query reqdto.BookingListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, httperr.CodeInvalidRequest)
		return
	}

	items, err := h.q.ListByUser(c.Request.Context(), userID, query.Status)
	if err != nil {
		httperr.Abort(c, err)
		return
	}

	httperr.OK(c, http.StatusOK, resdto.FromBookingListItems(items))
}

// @Summary Cancel booking
// @Description Allowed until 24 hours before the check-in day starts (UTC)
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param bookingId path string true "Booking ID"
// @Success 200 {object} httperr.Response{data=resdto.CancelBookingResponse}
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/bookings/{bookingId}/cancel [put]
func (h *BookingHandler) CancelBooking(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, httperr.CodeUnauthorized)
		return
	}

	bookingID, err := uuid.Parse(c.Param("bookingId"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusNotFound, err, httperr.CodeBookingNotFound)
		return
	}

	cancelled, err := h.cmds.CancelBooking(c.Request.Context(), bookingID, userID)
	if err != nil {
		httperr.Abort(c, err)
		return
	}

	httperr.OK(c, http.StatusOK, resdto.FromCancelledBooking(cancelled))
}
