//go:build unit

package cache

import (
	"context"
	"testing"
	"time"

	"gin-hotel-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
)

func TestHotelDetailKey(t *testing.T) {
	id := uuid.MustParse("7b1f2c9e-4a53-4c44-9f0e-2f4d8f0b6a11")
	assert.Equal(t, "hotel:detail:7b1f2c9e-4a53-4c44-9f0e-2f4d8f0b6a11", HotelDetailKey(id))
}

func TestNopHotelCache(t *testing.T) {
	var c NopHotelCache
	id := uuid.New()

	c.Set(context.Background(), &queries.HotelDetailView{ID: id}, 0)
	view, version, ok := c.Get(context.Background(), id)

	assert.False(t, ok)
	assert.Nil(t, view)
	assert.Equal(t, queries.NoCacheVersion, version)
	assert.NotPanics(t, func() { c.InvalidateHotel(context.Background(), id) })
}

// Redis に接続できない場合はキャッシュミスとして扱う
func TestRedisHotelCache_Unreachable(t *testing.T) {
	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 50 * time.Millisecond,
		MaxRetries:  -1,
	})
	t.Cleanup(func() { _ = client.Close() })

	c := NewRedisHotelCache(client, time.Minute)
	id := uuid.New()

	assert.NotPanics(t, func() {
		c.Set(context.Background(), &queries.HotelDetailView{ID: id}, 0)
		c.InvalidateHotel(context.Background(), id)
	})
	view, version, ok := c.Get(context.Background(), id)
	assert.False(t, ok)
	assert.Nil(t, view)
	assert.Equal(t, queries.NoCacheVersion, version)
}
