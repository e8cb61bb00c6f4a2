package httperr

import (
	"net/http"

	"gin-hotel-booking/internal/domain/reservation"
	"gin-hotel-booking/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

// Error codes returned in the "error" field of the envelope.
const (
	CodeInvalidRequest     = "INVALID_REQUEST"
	CodeUnauthorized       = "UNAUTHORIZED"
	CodeInvalidAuthHeader  = "INVALID_AUTH_HEADER"
	CodeInvalidCredentials = "INVALID_CREDENTIALS"
	CodeForbidden          = "FORBIDDEN"
	CodeUserNotFound       = "USER_NOT_FOUND"
	CodeHotelNotFound      = "HOTEL_NOT_FOUND"
	CodeRoomNotFound       = "ROOM_NOT_FOUND"
	CodeBookingNotFound    = "BOOKING_NOT_FOUND"
	CodeEmailExists        = "EMAIL_ALREADY_EXISTS"
	CodeRoomExists         = "ROOM_ALREADY_EXISTS"
	CodeTooManyRequests    = "TOO_MANY_REQUESTS"
	CodeInternal           = "INTERNAL_SERVER_ERROR"
)

// Response is the envelope used by every /api endpoint.
type Response struct {
	Status  int     `json:"-"`
	Success bool    `json:"success"`
	Data    any     `json:"data"`
	Error   *string `json:"error"`
}

func OK(c *gin.Context, status int, data any) {
	c.JSON(status, Response{Status: status, Success: true, Data: data})
}

func NewErrorResponse(status int, code string) Response {
	return Response{Status: status, Success: false, Data: nil, Error: &code}
}

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, err error, code string) {
	if err == nil {
		err = errs.New(code)
	}

	resp := NewErrorResponse(status, code)
	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

// Abort maps err with StatusFor and aborts the request.
func Abort(c *gin.Context, err error) {
	status, code := StatusFor(err)
	AbortWithError(c, status, err, code)
}

type mapping struct {
	target error
	status int
	code   string
}

var sentinelMappings = []mapping{
	{errs.ErrUserNotFound, http.StatusNotFound, CodeUserNotFound},
	{errs.ErrHotelNotFound, http.StatusNotFound, CodeHotelNotFound},
	{errs.ErrRoomNotFound, http.StatusNotFound, CodeRoomNotFound},
	{errs.ErrBookingNotFound, http.StatusNotFound, CodeBookingNotFound},
	{errs.ErrForbidden, http.StatusForbidden, CodeForbidden},
	{errs.ErrEmailAlreadyExists, http.StatusBadRequest, CodeEmailExists},
	{errs.ErrRoomAlreadyExists, http.StatusBadRequest, CodeRoomExists},
	{errs.ErrInvalidCredentials, http.StatusUnauthorized, CodeInvalidCredentials},
	{errs.ErrDomainValidation, http.StatusBadRequest, CodeInvalidRequest},
}

// StatusFor returns the HTTP status and error code for err. Unknown errors are 500.
func StatusFor(err error) (int, string) {
	var rejection *reservation.Rejection
	if errs.As(err, &rejection) {
		if rejection.Reason() == reservation.ReasonForbidden {
			return http.StatusForbidden, CodeForbidden
		}
		return http.StatusBadRequest, string(rejection.Reason())
	}

	for _, m := range sentinelMappings {
		if errs.Is(err, m.target) {
			return m.status, m.code
		}
	}
	return http.StatusInternalServerError, CodeInternal
}
