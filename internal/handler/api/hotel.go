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

type HotelHandler struct {
	cmds commands.HotelCommands
	q    queries.HotelQueries
}

func NewHotelHandler(cmds commands.HotelCommands, q queries.HotelQueries) *HotelHandler {
	return &HotelHandler{
		cmds: cmds,
		q:    q,
	}
}

// @Summary Create hotel
// @Tags hotels
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateHotelRequest true "Create hotel request"
// @Success 201 {object} httperr.Response{data=resdto.HotelResponse}
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /api/hotels [post]
func (h *HotelHandler) CreateHotel(c *gin.Context) {
	ownerID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, httperr.CodeUnauthorized)
		return
	}
	var req reqdto.CreateHotelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, httperr.CodeInvalidRequest)
		return
	}

	created, err := h.cmds.CreateHotel(c.Request.Context(), commands.CreateHotelRequest{
		Name:        req.Name,
		Description: req.Description,
		City:        req.City,
		Country:     req.Country,
		Amenities:   req.Amenities,
	}, ownerID)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	httperr.OK(c, http.StatusCreated, resdto.FromHotel(created))
}

// @Summary Add room to hotel
// @Description Only the hotel's owner may add rooms; room numbers are unique per hotel
// @Tags hotels
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param hotelId path string true "Hotel ID"
// @Param request body reqdto.CreateRoomRequest true "Create room request"
// @Success 201 {object} httperr.Response{data=resdto.RoomResponse}
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/hotels/{hotelId}/rooms [post]
func (h *HotelHandler) CreateRoom(c *gin.Context) {
	ownerID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, httperr.CodeUnauthorized)
		return
	}
	hotelID, err := uuid.Parse(c.Param("hotelId"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusNotFound, err, httperr.CodeHotelNotFound)
		return
	}
	var req reqdto.CreateRoomRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, httperr.CodeInvalidRequest)
		return
	}

	room, err := h.cmds.CreateRoom(c.Request.Context(), hotelID, commands.CreateRoomRequest{
		RoomNumber:    req.RoomNumber,
		RoomType:      req.RoomType,
		PricePerNight: req.PricePerNight,
		MaxOccupancy:  req.MaxOccupancy,
	}, ownerID)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	httperr.OK(c, http.StatusCreated, resdto.FromRoom(room))
}

// @Summary Search hotels
// @Description Only hotels with at least one room are listed. Price filters apply to the cheapest room.
// @Tags hotels
// @Produce json
// @Security BearerAuth
// @Param city query string false "City (case-insensitive)"
// @Param country query string false "Country (case-insensitive)"
// @Param minRating query number false "Minimum rating"
// @Param minPrice query number false "Minimum of the cheapest nightly price"
// @Param maxPrice query number false "Maximum of the cheapest nightly price"
// @Success 200 {object} httperr.Response{data=[]queries.HotelSummaryView}
// @Failure 400 {object} httperr.Response
// @Router /api/hotels [get]
func (h *HotelHandler) Search(c *gin.Context) {
	var query reqdto.HotelSearchQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, httperr.CodeInvalidRequest)
		return
	}

	hotels, err := h.q.Search(c.Request.Context(), query.ToFilter())
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	httperr.OK(c, http.StatusOK, hotels)
}

// @Summary Get hotel
// @Tags hotels
// @Produce json
// @Security BearerAuth
// @Param hotelId path string true "Hotel ID"
// @Success 200 {object} httperr.Response{data=queries.HotelDetailView}
// @Failure 404 {object} httperr.Response
// @Router /api/hotels/{hotelId} [get]
func (h *HotelHandler) GetHotel(c *gin.Context) {
	hotelID, err := uuid.Parse(c.Param("hotelId"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusNotFound, err, httperr.CodeHotelNotFound)
		return
	}

	view, err := h.q.GetByID(c.Request.Context(), hotelID)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	httperr.OK(c, http.StatusOK, view)
}
