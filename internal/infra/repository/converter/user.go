package converter

import (
	"gin-hotel-booking/internal/domain/user"
	sqlc "gin-hotel-booking/internal/infra/sqlc/generated"
	"gin-hotel-booking/internal/pkg/pgconv"
)

func UserToCreateParams(u *user.User) sqlc.CreateUserParams {
	return sqlc.CreateUserParams{
		ID:           u.ID(),
		Name:         u.Name().Value(),
		Email:        u.Email().Value(),
		PasswordHash: u.PasswordHash(),
		Role:         u.Role().String(),
		Phone:        u.Phone().Value(),
		CreatedAt:    pgconv.TimeToPgtype(u.CreatedAt()),
		UpdatedAt:    pgconv.TimeToPgtype(u.UpdatedAt()),
	}
}
