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
)

type AuthHandler struct {
	cmds commands.AuthCommands
	q    queries.UserQueries
}

func NewAuthHandler(cmds commands.AuthCommands, q queries.UserQueries) *AuthHandler {
	return &AuthHandler{
		cmds: cmds,
		q:    q,
	}
}

// @Summary User signup
// @Description Register a customer or hotel owner account
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.SignupRequest true "Signup request"
// @Success 201 {object} httperr.Response{data=resdto.SignupResponse}
// @Failure 400 {object} httperr.Response
// @Failure 429 {object} httperr.Response
// @Router /api/auth/signup [post]
func (h *AuthHandler) Signup(c *gin.Context) {
	var req reqdto.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, httperr.CodeInvalidRequest)
		return
	}

	user, err := h.cmds.Signup(c.Request.Context(), commands.SignupRequest{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Phone:    req.Phone,
		Role:     req.Role,
	})
	if err != nil {
		httperr.Abort(c, err)
		return
	}

	httperr.OK(c, http.StatusCreated, resdto.FromSignup(user))
}

// @Summary User login
// @Description Login with email and password
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.LoginRequest true "Login request"
// @Success 200 {object} httperr.Response{data=resdto.LoginResponse}
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 429 {object} httperr.Response
// @Router /api/auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req reqdto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, httperr.CodeInvalidRequest)
		return
	}

	result, err := h.cmds.Login(c.Request.Context(), req)
	if err != nil {
		httperr.Abort(c, err)
		return
	}

	httperr.OK(c, http.StatusOK, resdto.FromLogin(result.Token, result.User))
}

// @Summary Get current user
// @Description Get current authenticated user information
// @Tags auth
// @Security BearerAuth
// @Produce json
// @Success 200 {object} httperr.Response{data=resdto.UserResponse}
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, httperr.CodeUnauthorized)
		return
	}

	user, err := h.q.GetCurrentUser(c.Request.Context(), userID)
	if err != nil {
		httperr.Abort(c, err)
		return
	}

	httperr.OK(c, http.StatusOK, resdto.FromUserView(user))
}
