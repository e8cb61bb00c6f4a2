//go:build unit || e2e

package builder

import (
	"time"

	"gin-hotel-booking/internal/domain/user"
	reqdto "gin-hotel-booking/internal/handler/dto/request"
	sqlc "gin-hotel-booking/internal/infra/sqlc/generated"
	"gin-hotel-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type UserBuilder struct {
	ID           uuid.UUID
	Name         string
	Email        string
	Password     string
	PasswordHash string
	Role         string
	Phone        string
	CreatedAt    time.Time
}

func NewUserBuilder() *UserBuilder {
	return &UserBuilder{
		ID:           uuid.New(),
		Name:         "山田太郎",
		Email:        "test@example.com",
		Password:     "password123",
		PasswordHash: "hashed_password",
		Role:         "customer",
		Phone:        "09012345678",
		CreatedAt:    time.Now(),
	}
}

func (u *UserBuilder) With(mutate func(*UserBuilder)) *UserBuilder {
	mutate(u)
	return u
}

// Build methods
func (u *UserBuilder) BuildDomain() (*user.User, error) {
	name, err := user.NewName(u.Name)
	if err != nil {
		return nil, err
	}
	email, err := user.NewEmail(u.Email)
	if err != nil {
		return nil, err
	}
	role, err := user.NewRole(u.Role)
	if err != nil {
		return nil, err
	}
	phone, err := user.NewPhone(u.Phone)
	if err != nil {
		return nil, err
	}

	return user.NewUser(name, email, u.PasswordHash, role, phone, u.CreatedAt), nil
}

func (u *UserBuilder) BuildInfra() sqlc.Users {
	return sqlc.Users{
		ID:           u.ID,
		Name:         u.Name,
		Email:        u.Email,
		PasswordHash: u.PasswordHash,
		Role:         u.Role,
		Phone:        u.Phone,
		CreatedAt:    pgtype.Timestamptz{Time: u.CreatedAt, Valid: true},
		UpdatedAt:    pgtype.Timestamptz{Time: u.CreatedAt, Valid: true},
	}
}

func (u *UserBuilder) BuildView() *queries.UserView {
	return &queries.UserView{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Role:      u.Role,
		Phone:     u.Phone,
		CreatedAt: u.CreatedAt,
	}
}

func (u *UserBuilder) BuildSignupDTO() reqdto.SignupRequest {
	role := u.Role
	return reqdto.SignupRequest{
		Name:     u.Name,
		Email:    u.Email,
		Password: u.Password,
		Phone:    u.Phone,
		Role:     &role,
	}
}

// Fluent builder methods
func (u *UserBuilder) WithEmail(email string) *UserBuilder {
	u.Email = email
	return u
}

func (u *UserBuilder) WithRole(role string) *UserBuilder {
	u.Role = role
	return u
}

func (u *UserBuilder) AsOwner() *UserBuilder {
	u.Role = "owner"
	return u
}
