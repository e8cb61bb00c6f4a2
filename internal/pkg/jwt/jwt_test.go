//go:build unit

package jwt

import (
	"testing"
	"time"

	"gin-hotel-booking/internal/domain/user"

	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestService_RoundTrip(t *testing.T) {
	svc := NewService("secret", time.Hour)
	userID := uuid.New()

	token, err := svc.GenerateToken(userID, "guest@example.com", user.RoleOwner)
	require.NoError(t, err)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, "guest@example.com", claims.Email)
	assert.Equal(t, "owner", claims.Role)
	assert.Equal(t, userID.String(), claims.Subject)
}

func TestService_ValidateToken(t *testing.T) {
	userID := uuid.New()
	issued := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)

	expired := NewService("secret", time.Hour)
	expired.now = func() time.Time { return issued }
	expiredToken, err := expired.GenerateToken(userID, "a@example.com", user.RoleCustomer)
	require.NoError(t, err)

	otherKey, err := NewService("other-secret", time.Hour).GenerateToken(userID, "a@example.com", user.RoleCustomer)
	require.NoError(t, err)

	noneToken, err := gojwt.NewWithClaims(gojwt.SigningMethodNone, Claims{UserID: userID}).
		SignedString(gojwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	tests := []struct {
		name    string
		token   string
		wantErr error
	}{
		{"expired", expiredToken, ErrExpiredToken},
		{"wrong signing key", otherKey, ErrInvalidToken},
		{"alg none", noneToken, ErrInvalidToken},
		{"garbage", "not.a.jwt", ErrInvalidToken},
		{"empty", "", ErrInvalidToken},
	}

	svc := NewService("secret", time.Hour)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := svc.ValidateToken(tt.token)
			assert.Nil(t, claims)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
