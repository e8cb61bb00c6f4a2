//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"gin-hotel-booking/internal/domain/user"
	"gin-hotel-booking/internal/infra"
	"gin-hotel-booking/internal/pkg/errs"
	"gin-hotel-booking/internal/pkg/jwt"
	"gin-hotel-booking/internal/pkg/password"
	"gin-hotel-booking/internal/usecase/commands"
	"gin-hotel-booking/tests/common/builder"
	queriesmock "gin-hotel-booking/tests/mock/queries"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const testSecret = "test-secret"

func TestSignup(t *testing.T) {
	ctx := context.Background()
	owner := "owner"
	admin := "admin"

	testCases := []struct {
		name     string
		req      func(r *commands.SignupRequest)
		setup    func(m *txMocks)
		wantErr  error
		wantRole string
	}{
		{
			name: "ロール未指定はcustomer",
			setup: func(m *txMocks) {
				m.users.EXPECT().ExistsByEmail(gomock.Any(), "new@example.com").Return(false, nil)
				m.users.EXPECT().Create(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, u *user.User) error {
						assert.NotEqual(t, "password123", u.PasswordHash())
						assert.NoError(t, password.ComparePassword(u.PasswordHash(), "password123"))
						return nil
					})
			},
			wantRole: "customer",
		},
		{
			name: "ownerとして登録",
			req:  func(r *commands.SignupRequest) { r.Role = &owner },
			setup: func(m *txMocks) {
				m.users.EXPECT().ExistsByEmail(gomock.Any(), "new@example.com").Return(false, nil)
				m.users.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
			},
			wantRole: "owner",
		},
		{
			name:    "adminは登録できない",
			req:     func(r *commands.SignupRequest) { r.Role = &admin },
			setup:   func(m *txMocks) {},
			wantErr: errs.ErrDomainValidation,
		},
		{
			name:    "パスワードが短い",
			req:     func(r *commands.SignupRequest) { r.Password = "12345" },
			setup:   func(m *txMocks) {},
			wantErr: errs.ErrDomainValidation,
		},
		{
			name:    "メールアドレス重複",
			wantErr: errs.ErrEmailAlreadyExists,
			setup: func(m *txMocks) {
				m.users.EXPECT().ExistsByEmail(gomock.Any(), "new@example.com").Return(true, nil)
			},
		},
		{
			name:    "同時登録による一意制約違反",
			wantErr: errs.ErrEmailAlreadyExists,
			setup: func(m *txMocks) {
				m.users.EXPECT().ExistsByEmail(gomock.Any(), "new@example.com").Return(false, nil)
				m.users.EXPECT().Create(gomock.Any(), gomock.Any()).
					Return(infra.WrapRepoErr("failed to create user", &pgconn.PgError{Code: "23505"}))
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			m := newTxMocks(t)
			tc.setup(m)

			req := commands.SignupRequest{
				Name:     "佐藤花子",
				Email:    "new@example.com",
				Password: "password123",
				Phone:    "09011112222",
			}
			if tc.req != nil {
				tc.req(&req)
			}

			cmds := commands.NewAuthCommands(m.uow, nil, jwt.NewService(testSecret, time.Hour), m.clock)
			view, err := cmds.Signup(ctx, req)

			if tc.wantErr != nil {
				require.Error(t, err)
				assert.True(t, errs.Is(err, tc.wantErr), "got %v", err)
				assert.Nil(t, view)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "佐藤花子", view.Name)
			assert.Equal(t, "new@example.com", view.Email)
			assert.Equal(t, tc.wantRole, view.Role)
			assert.Equal(t, fixedNow, view.CreatedAt)
		})
	}
}

func TestLogin(t *testing.T) {
	ctx := context.Background()
	hash, err := password.HashPassword("password123")
	require.NoError(t, err)
	stored := builder.NewUserBuilder().BuildView()

	testCases := []struct {
		name     string
		password string
		setup    func(rs *queriesmock.MockUserReadStore)
		wantErr  error
	}{
		{
			name:     "ログイン成功",
			password: "password123",
			setup: func(rs *queriesmock.MockUserReadStore) {
				rs.EXPECT().FindByEmail(gomock.Any(), stored.Email).Return(stored, hash, nil)
			},
		},
		{
			name:     "パスワード不一致",
			password: "wrong-password",
			wantErr:  errs.ErrInvalidCredentials,
			setup: func(rs *queriesmock.MockUserReadStore) {
				rs.EXPECT().FindByEmail(gomock.Any(), stored.Email).Return(stored, hash, nil)
			},
		},
		{
			name:     "未登録のメールアドレス",
			password: "password123",
			wantErr:  errs.ErrInvalidCredentials,
			setup: func(rs *queriesmock.MockUserReadStore) {
				rs.EXPECT().FindByEmail(gomock.Any(), stored.Email).
					Return(nil, "", infra.WrapRepoErr("user not found", nil, infra.KindNotFound))
			},
		},
		{
			name:     "DBエラー",
			password: "password123",
			wantErr:  errs.ErrDatabaseOperationFailed,
			setup: func(rs *queriesmock.MockUserReadStore) {
				rs.EXPECT().FindByEmail(gomock.Any(), stored.Email).
					Return(nil, "", infra.WrapRepoErr("failed to find user by email", assert.AnError))
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			readStore := queriesmock.NewMockUserReadStore(ctrl)
			tc.setup(readStore)

			jwtService := jwt.NewService(testSecret, time.Hour)
			m := newTxMocks(t)
			cmds := commands.NewAuthCommands(m.uow, readStore, jwtService, m.clock)

			req := builder.NewAuthBuilder().With(func(a *builder.AuthBuilder) {
				a.Email = stored.Email
				a.Password = tc.password
			}).BuildDTO()
			result, err := cmds.Login(ctx, req)

			if tc.wantErr != nil {
				require.Error(t, err)
				assert.True(t, errs.Is(err, tc.wantErr), "got %v", err)
				assert.Nil(t, result)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, stored, result.User)

			claims, err := jwtService.ValidateToken(result.Token)
			require.NoError(t, err)
			assert.Equal(t, stored.ID, claims.UserID)
			assert.Equal(t, stored.Email, claims.Email)
			assert.Equal(t, "customer", claims.Role)
		})
	}
}
