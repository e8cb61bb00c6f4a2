//go:build unit

package user_test

import (
	"testing"
	"time"

	"gin-hotel-booking/internal/domain/user"
	"gin-hotel-booking/tests/common/builder"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var cmpOpts = []cmp.Option{
	cmpopts.IgnoreUnexported(user.User{}),
	cmpopts.EquateEmpty(),
}

type testCase struct {
	name   string
	mutate func(*builder.UserBuilder)
	errIs  error
}

func TestUser(t *testing.T) {
	t.Run("基本成功ケース", func(t *testing.T) {
		actual, err := builder.NewUserBuilder().BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		name, _ := user.NewName("Test User")
		email, _ := user.NewEmail("test@example.com")
		phone, _ := user.NewPhone("09012345678")
		expected := user.NewUser(name, email, "hashed_password", user.RoleCustomer, phone, time.Now())

		if diff := cmp.Diff(expected, actual, cmpOpts...); diff != "" {
			t.Errorf("User mismatch (-want +got):\n%s", diff)
		}

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.Equal(t, "test@example.com", actual.Email().Value())
		assert.Equal(t, user.RoleCustomer, actual.Role())
		assert.Equal(t, actual.CreatedAt(), actual.UpdatedAt())
	})

	t.Run("メールアドレス検証", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "有効なメールアドレスOK",
				mutate: func(b *builder.UserBuilder) { b.Email = "valid@example.com" },
			},
			{
				name:   "前後の空白は除去してOK",
				mutate: func(b *builder.UserBuilder) { b.Email = "  valid@example.com " },
			},
			{
				name:   "空のメールアドレスNG",
				mutate: func(b *builder.UserBuilder) { b.Email = "" },
				errIs:  user.ErrInvalidEmail,
			},
			{
				name:   "無効な形式NG",
				mutate: func(b *builder.UserBuilder) { b.Email = "invalid-email" },
				errIs:  user.ErrInvalidEmail,
			},
			{
				name:   "@なしNG",
				mutate: func(b *builder.UserBuilder) { b.Email = "invalidemail.com" },
				errIs:  user.ErrInvalidEmail,
			},
		})
	})

	t.Run("ロール検証", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "customer ロールOK",
				mutate: func(b *builder.UserBuilder) { b.Role = "customer" },
			},
			{
				name:   "owner ロールOK",
				mutate: func(b *builder.UserBuilder) { b.Role = "owner" },
			},
			{
				name:   "admin ロールは受け付けない",
				mutate: func(b *builder.UserBuilder) { b.Role = "admin" },
				errIs:  user.ErrInvalidRole,
			},
			{
				name:   "空のロールNG",
				mutate: func(b *builder.UserBuilder) { b.Role = "" },
				errIs:  user.ErrInvalidRole,
			},
		})
	})

	t.Run("名前・電話番号検証", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "空白のみの名前NG",
				mutate: func(b *builder.UserBuilder) { b.Name = "   " },
				errIs:  user.ErrEmptyName,
			},
			{
				name:   "10桁の電話番号OK",
				mutate: func(b *builder.UserBuilder) { b.Phone = "0312345678" },
			},
			{
				name:   "9桁の電話番号NG",
				mutate: func(b *builder.UserBuilder) { b.Phone = "031234567" },
				errIs:  user.ErrInvalidPhone,
			},
		})
	})
}

func TestNewPassword(t *testing.T) {
	_, err := user.NewPassword("12345")
	require.ErrorIs(t, err, user.ErrPasswordTooWeak)

	p, err := user.NewPassword("123456")
	require.NoError(t, err)
	assert.Equal(t, "123456", p.Value())
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			actual, err := builder.NewUserBuilder().With(c.mutate).BuildDomain()

			if c.errIs == nil {
				require.NotNil(t, actual)
				require.NoError(t, err)
			} else {
				require.Nil(t, actual)
				require.ErrorIs(t, err, c.errIs)
			}
		})
	}
}
