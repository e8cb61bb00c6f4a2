//go:build unit

package readstore

import (
	"context"
	"database/sql"
	"testing"

	"gin-hotel-booking/internal/infra"
	sqlc "gin-hotel-booking/internal/infra/sqlc/generated"
	"gin-hotel-booking/tests/common/builder"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockUserReadQueries struct {
	mock.Mock
}

func (m *MockUserReadQueries) FindUserByEmail(ctx context.Context, db sqlc.DBTX, email string) (sqlc.Users, error) {
	args := m.Called(ctx, db, email)
	return args.Get(0).(sqlc.Users), args.Error(1)
}

func (m *MockUserReadQueries) FindUserByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.FindUserByIDRow, error) {
	args := m.Called(ctx, db, id)
	return args.Get(0).(sqlc.FindUserByIDRow), args.Error(1)
}

func TestFindByEmail(t *testing.T) {
	testUser := builder.NewUserBuilder().BuildInfra()
	owner := builder.NewUserBuilder().AsOwner().WithEmail("owner@example.com").BuildInfra()

	tests := []struct {
		name       string
		email      string
		mockReturn sqlc.Users
		mockError  error
		wantKind   infra.RepositoryErrorKind
	}{
		{
			name:       "success - customer",
			email:      testUser.Email,
			mockReturn: testUser,
		},
		{
			name:       "success - owner",
			email:      owner.Email,
			mockReturn: owner,
		},
		{
			name:      "user not found (sql)",
			email:     "notfound@example.com",
			mockError: sql.ErrNoRows,
			wantKind:  infra.KindNotFound,
		},
		{
			name:      "user not found (pgx)",
			email:     "notfound@example.com",
			mockError: pgx.ErrNoRows,
			wantKind:  infra.KindNotFound,
		},
		{
			name:      "database error",
			email:     testUser.Email,
			mockError: assert.AnError,
			wantKind:  infra.KindDBFailure,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockQueries := new(MockUserReadQueries)
			mockQueries.On("FindUserByEmail", mock.Anything, mock.Anything, tt.email).Return(tt.mockReturn, tt.mockError)

			readStore := NewUserReadStore(mockQueries, nil)

			view, hash, err := readStore.FindByEmail(context.Background(), tt.email)

			if tt.mockError != nil {
				assert.Error(t, err)
				assert.Nil(t, view)
				assert.Empty(t, hash)
				assert.True(t, infra.IsKind(err, tt.wantKind))
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, view)
				assert.Equal(t, tt.mockReturn.ID, view.ID)
				assert.Equal(t, tt.mockReturn.Name, view.Name)
				assert.Equal(t, tt.email, view.Email)
				assert.Equal(t, tt.mockReturn.Role, view.Role)
				assert.Equal(t, tt.mockReturn.Phone, view.Phone)
				assert.Equal(t, tt.mockReturn.PasswordHash, hash)
			}

			mockQueries.AssertExpectations(t)
		})
	}
}

func TestFindByID(t *testing.T) {
	testUser := builder.NewUserBuilder().BuildInfra()

	testUserRow := sqlc.FindUserByIDRow{
		ID:        testUser.ID,
		Name:      testUser.Name,
		Email:     testUser.Email,
		Role:      testUser.Role,
		Phone:     testUser.Phone,
		CreatedAt: testUser.CreatedAt,
	}

	tests := []struct {
		name       string
		userID     uuid.UUID
		mockReturn sqlc.FindUserByIDRow
		mockError  error
		wantKind   infra.RepositoryErrorKind
	}{
		{
			name:       "success",
			userID:     testUserRow.ID,
			mockReturn: testUserRow,
		},
		{
			name:      "user not found",
			userID:    uuid.New(),
			mockError: sql.ErrNoRows,
			wantKind:  infra.KindNotFound,
		},
		{
			name:      "database error",
			userID:    testUserRow.ID,
			mockError: assert.AnError,
			wantKind:  infra.KindDBFailure,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockQueries := new(MockUserReadQueries)
			mockQueries.On("FindUserByID", mock.Anything, mock.Anything, tt.userID).Return(tt.mockReturn, tt.mockError)

			readStore := NewUserReadStore(mockQueries, nil)

			view, err := readStore.FindByID(context.Background(), tt.userID)

			if tt.mockError != nil {
				assert.Error(t, err)
				assert.Nil(t, view)
				assert.True(t, infra.IsKind(err, tt.wantKind))
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.userID, view.ID)
				assert.Equal(t, testUserRow.Name, view.Name)
				assert.Equal(t, testUserRow.CreatedAt.Time, view.CreatedAt)
			}

			mockQueries.AssertExpectations(t)
		})
	}
}
