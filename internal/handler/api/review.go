package api

import (
	"net/http"

	reqdto "gin-hotel-booking/internal/handler/dto/request"
	resdto "gin-hotel-booking/internal/handler/dto/response"
	"gin-hotel-booking/internal/handler/httperr"
	"gin-hotel-booking/internal/handler/middleware"
	"gin-hotel-booking/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type ReviewHandler struct {
	cmds commands.ReviewCommands
}

func NewReviewHandler(cmds commands.ReviewCommands) *ReviewHandler {
	return &ReviewHandler{cmds: cmds}
}

// @Summary Create review
// @Description Review a completed, non-cancelled stay. One review per booking.
// @Tags reviews
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateReviewRequest true "Create review request"
// @Success 201 {object} httperr.Response{data=resdto.ReviewResponse}
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/reviews [post]
func (h *ReviewHandler) Create(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, httperr.CodeUnauthorized)
		return
	}
	var req reqdto.CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, httperr.CodeInvalidRequest)
		return
	}

	created, err := h.cmds.CreateReview(c.Request.Context(), commands.CreateReviewRequest{
		BookingID: req.BookingID,
		Rating:    req.Rating,
		Comment:   req.Comment,
	}, userID)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	httperr.OK(c, http.StatusCreated, resdto.FromReview(created))
}
