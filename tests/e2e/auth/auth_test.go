//go:build e2e

package auth_test

import (
	"net/http"
	"testing"

	"gin-hotel-booking/internal/domain/user"
	"gin-hotel-booking/internal/handler/dto/request"
	resdto "gin-hotel-booking/internal/handler/dto/response"
	"gin-hotel-booking/internal/handler/httperr"
	"gin-hotel-booking/tests/common/authtest"
	"gin-hotel-booking/tests/common/builder"
	"gin-hotel-booking/tests/common/dbtest"
	"gin-hotel-booking/tests/common/httptest"
	"gin-hotel-booking/tests/common/testutil"
	"gin-hotel-booking/tests/e2e"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	signupURL = "/api/auth/signup"
	loginURL  = "/api/auth/login"
	meURL     = "/api/auth/me"
)

type authSuite struct {
	e2e.SharedSuite
	jwtHelper *authtest.JWTHelper
}

func TestAuthSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(authSuite))
}

func (s *authSuite) SetupSuite() {
	s.SharedSuite.SetupSuite()
	s.jwtHelper = authtest.NewJWTHelper(s.Config.JWT)
}

func (s *authSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()

	// テスト用ユーザーを作成
	dbtest.CreateTestUser(s.T(), s.DB, "customer@example.com", string(user.RoleCustomer))
	dbtest.CreateTestUser(s.T(), s.DB, "owner@example.com", string(user.RoleOwner))
}

func (s *authSuite) TestSignup() {
	s.Run("顧客として登録できること", func() {
		t := s.T()

		reqBody := builder.NewUserBuilder().WithEmail("new@example.com").BuildSignupDTO()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, signupURL, reqBody, "")

		var res resdto.SignupResponse
		httptest.AssertSuccessResponse(t, w, http.StatusCreated, &res)
		require.NotEqual(t, uuid.Nil, res.ID)
		require.Equal(t, "new@example.com", res.Email)
		require.Equal(t, "customer", res.Role)

		// 登録したユーザーでログインできること
		token := authtest.LoginUser(t, s.Router, "new@example.com", reqBody.Password)
		require.NotEmpty(t, token)
	})

	s.Run("ロール省略時はcustomerになること", func() {
		t := s.T()

		reqBody := builder.NewUserBuilder().WithEmail("norole@example.com").BuildSignupDTO()
		requestMap := testutil.DtoMap(t, reqBody, testutil.Field("role", nil))
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, signupURL, requestMap, "")

		var res resdto.SignupResponse
		httptest.AssertSuccessResponse(t, w, http.StatusCreated, &res)
		require.Equal(t, "customer", res.Role)
	})

	s.Run("オーナーとして登録できること", func() {
		t := s.T()

		reqBody := builder.NewUserBuilder().WithEmail("hotelier@example.com").AsOwner().BuildSignupDTO()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, signupURL, reqBody, "")

		var res resdto.SignupResponse
		httptest.AssertSuccessResponse(t, w, http.StatusCreated, &res)
		require.Equal(t, "owner", res.Role)
	})

	s.Run("メールアドレスの重複は拒否されること", func() {
		t := s.T()

		reqBody := builder.NewUserBuilder().WithEmail("customer@example.com").BuildSignupDTO()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, signupURL, reqBody, "")
		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, httperr.CodeEmailExists)
	})

	s.Run("adminロールは拒否されること", func() {
		t := s.T()

		reqBody := builder.NewUserBuilder().WithEmail("admin@example.com").WithRole("admin").BuildSignupDTO()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, signupURL, reqBody, "")
		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, httperr.CodeInvalidRequest)
	})

	s.Run("短すぎるパスワードは拒否されること", func() {
		t := s.T()

		reqBody := builder.NewUserBuilder().WithEmail("short@example.com").With(func(b *builder.UserBuilder) {
			b.Password = "12345"
		}).BuildSignupDTO()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, signupURL, reqBody, "")
		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, httperr.CodeInvalidRequest)
	})
}

func (s *authSuite) TestLogin() {
	tests := []struct {
		name           string
		email          string
		password       string
		expectedStatus int
		expectedCode   string
		description    string
	}{
		{
			name:           "正常なログイン",
			email:          "customer@example.com",
			password:       dbtest.DefaultPassword,
			expectedStatus: http.StatusOK,
			description:    "有効な認証情報でログインできること",
		},
		{
			name:           "存在しないユーザー",
			email:          "nonexistent@example.com",
			password:       dbtest.DefaultPassword,
			expectedStatus: http.StatusUnauthorized,
			expectedCode:   httperr.CodeInvalidCredentials,
			description:    "存在しないユーザーでログインできないこと",
		},
		{
			name:           "間違ったパスワード",
			email:          "customer@example.com",
			password:       "wrongpassword",
			expectedStatus: http.StatusUnauthorized,
			expectedCode:   httperr.CodeInvalidCredentials,
			description:    "間違ったパスワードでログインできないこと",
		},
		{
			name:           "空のメールアドレス",
			email:          "",
			password:       dbtest.DefaultPassword,
			expectedStatus: http.StatusBadRequest,
			expectedCode:   httperr.CodeInvalidRequest,
			description:    "空のメールアドレスは拒否されること",
		},
		{
			name:           "空のパスワード",
			email:          "customer@example.com",
			password:       "",
			expectedStatus: http.StatusBadRequest,
			expectedCode:   httperr.CodeInvalidRequest,
			description:    "空のパスワードは拒否されること",
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			t := s.T()

			reqBody := request.LoginRequest{
				Email:    tt.email,
				Password: tt.password,
			}

			w := httptest.PerformRequest(t, s.Router, http.MethodPost, loginURL, reqBody, "")
			require.Equal(t, tt.expectedStatus, w.Code, tt.description)

			if tt.expectedStatus == http.StatusOK {
				var res resdto.LoginResponse
				httptest.AssertSuccessResponse(t, w, http.StatusOK, &res)
				require.NotEmpty(t, res.Token)
				require.Equal(t, tt.email, res.User.Email)
				require.Equal(t, "customer", res.User.Role)
				return
			}
			httptest.AssertErrorResponse(t, w, tt.expectedStatus, tt.expectedCode)
		})
	}
}

func (s *authSuite) TestMe() {
	s.Run("ログイン中のユーザー情報を取得できること", func() {
		t := s.T()

		userID, token := authtest.CreateAndLogin(t, s.DB, s.Router, "me@example.com", string(user.RoleOwner))

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, token)

		var res resdto.UserResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &res)
		require.Equal(t, userID, res.ID)
		require.Equal(t, "me@example.com", res.Email)
		require.Equal(t, "owner", res.Role)
	})

	s.Run("Authorizationヘッダーなしは401", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, "")
		httptest.AssertErrorResponse(t, w, http.StatusUnauthorized, httperr.CodeUnauthorized)
	})

	s.Run("Bearer以外のスキームは401", func() {
		t := s.T()

		w := httptest.PerformRequestWithAuthHeader(t, s.Router, http.MethodGet, meURL, "Token abc.def.ghi")
		httptest.AssertErrorResponse(t, w, http.StatusUnauthorized, httperr.CodeInvalidAuthHeader)
	})

	s.Run("空のBearerトークンは401", func() {
		t := s.T()

		w := httptest.PerformRequestWithAuthHeader(t, s.Router, http.MethodGet, meURL, "Bearer   ")
		httptest.AssertErrorResponse(t, w, http.StatusUnauthorized, httperr.CodeInvalidAuthHeader)
	})

	s.Run("不正なトークンは401", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, "not-a-jwt")
		httptest.AssertErrorResponse(t, w, http.StatusUnauthorized, httperr.CodeUnauthorized)
	})

	s.Run("期限切れトークンは401", func() {
		t := s.T()

		userID := dbtest.CreateTestUser(t, s.DB, "expired@example.com", string(user.RoleCustomer))
		token := s.jwtHelper.CreateExpiredToken(t, userID, "expired@example.com", user.RoleCustomer)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, token)
		httptest.AssertErrorResponse(t, w, http.StatusUnauthorized, httperr.CodeUnauthorized)
	})

	s.Run("削除済みユーザーのトークンは404", func() {
		t := s.T()

		token := s.jwtHelper.GenerateToken(t, uuid.New(), "ghost@example.com", user.RoleCustomer)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, token)
		httptest.AssertErrorResponse(t, w, http.StatusNotFound, httperr.CodeUserNotFound)
	})
}
