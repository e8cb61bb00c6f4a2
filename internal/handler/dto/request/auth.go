package request

import (
	"gin-hotel-booking/internal/domain/auth"
)

type SignupRequest struct {
	Name     string  `json:"name" binding:"required,min=1"`
	Email    string  `json:"email" binding:"required,email"`
	Password string  `json:"password" binding:"required,min=6"`
	Role     *string `json:"role,omitempty" binding:"omitempty,oneof=customer owner"`
	Phone    string  `json:"phone" binding:"required,min=10"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func (r *LoginRequest) ToDomain() (auth.Credentials, error) {
	return auth.NewCredentials(r.Email, r.Password)
}
