package response

import (
	"time"

	"gin-hotel-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type SignupResponse struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
	Role  string    `json:"role"`
	Phone string    `json:"phone"`
}

type LoginUser struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
	Role  string    `json:"role"`
}

type LoginResponse struct {
	Token string    `json:"token"`
	User  LoginUser `json:"user"`
}

type UserResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	Phone     string    `json:"phone"`
	CreatedAt time.Time `json:"createdAt"`
}

func FromSignup(v *queries.UserView) SignupResponse {
	return SignupResponse{
		ID:    v.ID,
		Name:  v.Name,
		Email: v.Email,
		Role:  v.Role,
		Phone: v.Phone,
	}
}

func FromLogin(token string, v *queries.UserView) LoginResponse {
	return LoginResponse{
		Token: token,
		User: LoginUser{
			ID:    v.ID,
			Name:  v.Name,
			Email: v.Email,
			Role:  v.Role,
		},
	}
}

func FromUserView(v *queries.UserView) UserResponse {
	return UserResponse{
		ID:        v.ID,
		Name:      v.Name,
		Email:     v.Email,
		Role:      v.Role,
		Phone:     v.Phone,
		CreatedAt: v.CreatedAt,
	}
}
