//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"gin-hotel-booking/internal/pkg/password"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

const DefaultPassword = "password123"

var (
	hashOnce    sync.Once
	defaultHash string
)

func defaultPasswordHash(t *testing.T) string {
	t.Helper()
	hashOnce.Do(func() {
		h, err := password.HashPassword(DefaultPassword)
		require.NoError(t, err)
		defaultHash = h
	})
	return defaultHash
}

func CreateTestUser(t *testing.T, db DBLike, email, role string) uuid.UUID {
	t.Helper()

	userID := uuid.New()
	ctx := context.Background()

	tag, err := db.Exec(ctx,
		"INSERT INTO users (id, name, email, password_hash, role, phone) VALUES ($1, $2, $3, $4, $5, $6) ON CONFLICT (email) DO NOTHING",
		userID, "テストユーザー", email, defaultPasswordHash(t), role, "09012345678")
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		_ = db.QueryRow(ctx, "SELECT id FROM users WHERE email = $1", email).Scan(&userID)
	}

	return userID
}

func CreateTestHotel(t *testing.T, db DBLike, ownerID uuid.UUID, name, city, country string) uuid.UUID {
	t.Helper()

	hotelID := uuid.New()
	_, err := db.Exec(context.Background(),
		"INSERT INTO hotels (id, owner_id, name, city, country, amenities) VALUES ($1, $2, $3, $4, $5, $6)",
		hotelID, ownerID, name, city, country, []string{"wifi"})
	require.NoError(t, err)
	return hotelID
}

func CreateTestRoom(t *testing.T, db DBLike, hotelID uuid.UUID, number string, priceCents int64, maxOccupancy int) uuid.UUID {
	t.Helper()

	roomID := uuid.New()
	_, err := db.Exec(context.Background(),
		"INSERT INTO rooms (id, hotel_id, room_number, room_type, price_per_night_cents, max_occupancy) VALUES ($1, $2, $3, $4, $5, $6)",
		roomID, hotelID, number, "double", priceCents, maxOccupancy)
	require.NoError(t, err)
	return roomID
}

// CreatePastBooking inserts a confirmed stay that ended before today, which makes it reviewable.
func CreatePastBooking(t *testing.T, db DBLike, userID, roomID, hotelID uuid.UUID) uuid.UUID {
	t.Helper()

	bookingID := uuid.New()
	today := time.Now().UTC()
	checkIn := time.Date(today.Year(), today.Month(), today.Day()-5, 0, 0, 0, 0, time.UTC)
	checkOut := checkIn.AddDate(0, 0, 2)
	_, err := db.Exec(context.Background(),
		`INSERT INTO bookings (id, user_id, room_id, hotel_id, check_in_date, check_out_date, guests, total_price_cents)
		 VALUES ($1, $2, $3, $4, $5, $6, 1, 20000)`,
		bookingID, userID, roomID, hotelID, checkIn, checkOut)
	require.NoError(t, err)
	return bookingID
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('atlas_schema_revisions')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	_, err := pool.Exec(ctx, sqlAny.(string))
	return err
}
