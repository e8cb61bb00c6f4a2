package repository

//go:generate mockgen -source=$GOFILE -destination=../../../tests/mock/repository/$GOFILE -package=repositorymock

import (
	"context"

	"gin-hotel-booking/internal/domain/user"
	"gin-hotel-booking/internal/infra"
	"gin-hotel-booking/internal/infra/repository/converter"
	sqlc "gin-hotel-booking/internal/infra/sqlc/generated"
)

type UserWriteQueries interface {
	CreateUser(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateUserParams) (sqlc.Users, error)
	ExistsUserByEmail(ctx context.Context, db sqlc.DBTX, email string) (bool, error)
}

type UserRepository struct {
	queries UserWriteQueries
	db      sqlc.DBTX
}

func NewUserRepository(queries UserWriteQueries, db sqlc.DBTX) *UserRepository {
	return &UserRepository{
		queries: queries,
		db:      db,
	}
}

func (r *UserRepository) Create(ctx context.Context, u *user.User) error {
	if _, err := r.queries.CreateUser(ctx, r.db, converter.UserToCreateParams(u)); err != nil {
		return infra.WrapRepoErr("failed to create user", err)
	}
	return nil
}

func (r *UserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	exists, err := r.queries.ExistsUserByEmail(ctx, r.db, email)
	if err != nil {
		return false, infra.WrapRepoErr("failed to check user email", err)
	}
	return exists, nil
}
