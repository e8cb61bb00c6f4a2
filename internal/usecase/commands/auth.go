package commands

//go:generate mockgen -source=$GOFILE -destination=../../../tests/mock/commands/$GOFILE -package=commandsmock

import (
	"context"
	"strings"

	"gin-hotel-booking/internal/domain/user"
	reqdto "gin-hotel-booking/internal/handler/dto/request"
	"gin-hotel-booking/internal/infra"
	"gin-hotel-booking/internal/pkg/clock"
	"gin-hotel-booking/internal/pkg/errs"
	"gin-hotel-booking/internal/pkg/jwt"
	"gin-hotel-booking/internal/pkg/password"
	"gin-hotel-booking/internal/pkg/patch"
	"gin-hotel-booking/internal/pkg/tracing"
	"gin-hotel-booking/internal/usecase/queries"
	"gin-hotel-booking/internal/usecase/shared"
)

var (
	ErrAuthenticationFailed = errs.New("authentication failed")
	ErrTokenGeneration      = errs.New("token generation failed")
)

type SignupRequest struct {
	Name     string
	Email    string
	Password string
	Phone    string
	Role     *string
}

type LoginResult struct {
	Token string
	User  *queries.UserView
}

type AuthCommands interface {
	Signup(ctx context.Context, req SignupRequest) (*queries.UserView, error)
	Login(ctx context.Context, req reqdto.LoginRequest) (*LoginResult, error)
}

type authCommandsImpl struct {
	uow        shared.UnitOfWork
	readStore  queries.UserReadStore
	jwtService *jwt.Service
	clock      clock.Clock
}

func NewAuthCommands(uow shared.UnitOfWork, readStore queries.UserReadStore, jwtService *jwt.Service, clk clock.Clock) AuthCommands {
	return &authCommandsImpl{
		uow:        uow,
		readStore:  readStore,
		jwtService: jwtService,
		clock:      clk,
	}
}

func (a *authCommandsImpl) Signup(ctx context.Context, req SignupRequest) (view *queries.UserView, err error) {
	ctx, span := tracing.Start(ctx, "AuthCommands.Signup")
	defer func() { tracing.End(span, err) }()

	newUser, err := a.buildUser(req)
	if err != nil {
		return nil, err
	}

	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		exists, txErr := tx.Users().ExistsByEmail(ctx, newUser.Email().Value())
		if txErr != nil {
			return txErr
		}
		if exists {
			return errs.ErrEmailAlreadyExists
		}
		return tx.Users().Create(ctx, newUser)
	})
	if err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, errs.ErrEmailAlreadyExists
		}
		return nil, err
	}

	return &queries.UserView{
		ID:        newUser.ID(),
		Name:      newUser.Name().Value(),
		Email:     newUser.Email().Value(),
		Role:      newUser.Role().String(),
		Phone:     newUser.Phone().Value(),
		CreatedAt: newUser.CreatedAt(),
	}, nil
}

func (a *authCommandsImpl) buildUser(req SignupRequest) (*user.User, error) {
	name, err := user.NewName(req.Name)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}
	email, err := user.NewEmail(req.Email)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}
	pw, err := user.NewPassword(req.Password)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}
	phone, err := user.NewPhone(req.Phone)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}
	role, err := user.NewRole(strings.TrimSpace(patch.Coalesce(req.Role, user.DefaultRole.String())))
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	hash, err := password.HashPassword(pw.Value())
	if err != nil {
		return nil, errs.Wrap(err, "hash password")
	}

	return user.NewUser(name, email, hash, role, phone, a.clock.Now()), nil
}

func (a *authCommandsImpl) Login(ctx context.Context, req reqdto.LoginRequest) (result *LoginResult, err error) {
	ctx, span := tracing.Start(ctx, "AuthCommands.Login")
	defer func() { tracing.End(span, err) }()

	credentials, err := req.ToDomain()
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	view, hashedPassword, err := a.readStore.FindByEmail(ctx, credentials.Email().Value())
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			// same answer as a wrong password
			return nil, errs.ErrInvalidCredentials
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	if err := password.ComparePassword(hashedPassword, credentials.Password().Value()); err != nil {
		return nil, errs.ErrInvalidCredentials
	}

	role, err := user.NewRole(view.Role)
	if err != nil {
		return nil, errs.Mark(err, ErrAuthenticationFailed)
	}

	token, err := a.jwtService.GenerateToken(view.ID, view.Email, role)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	return &LoginResult{
		Token: token,
		User:  view,
	}, nil
}
