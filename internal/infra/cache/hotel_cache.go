package cache

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"strconv"
	"time"

	"gin-hotel-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	hotelDetailKeyPrefix  = "hotel:detail:"
	hotelVersionKeyPrefix = "hotel:version:"
)

var errStaleVersion = errors.New("hotel version moved")

func HotelDetailKey(id uuid.UUID) string {
	return hotelDetailKeyPrefix + id.String()
}

// HotelVersionKey counts invalidations of a hotel. It never expires.
func HotelVersionKey(id uuid.UUID) string {
	return hotelVersionKeyPrefix + id.String()
}

// RedisHotelCache stores hotel detail views. Failures are logged and treated as misses.
type RedisHotelCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisHotelCache(client *redis.Client, ttl time.Duration) *RedisHotelCache {
	return &RedisHotelCache{
		client: client,
		ttl:    ttl,
	}
}

func (c *RedisHotelCache) Get(ctx context.Context, id uuid.UUID) (*queries.HotelDetailView, int64, bool) {
	vals, err := c.client.MGet(ctx, HotelDetailKey(id), HotelVersionKey(id)).Result()
	if err != nil {
		slog.Warn("hotel cache get failed", "hotel_id", id, "error", err)
		return nil, queries.NoCacheVersion, false
	}

	version := int64(0)
	if s, ok := vals[1].(string); ok {
		if version, err = strconv.ParseInt(s, 10, 64); err != nil {
			slog.Warn("hotel cache version is corrupt", "hotel_id", id, "error", err)
			return nil, queries.NoCacheVersion, false
		}
	}

	raw, ok := vals[0].(string)
	if !ok {
		return nil, version, false
	}
	var view queries.HotelDetailView
	if err := json.Unmarshal([]byte(raw), &view); err != nil {
		slog.Warn("hotel cache entry is corrupt", "hotel_id", id, "error", err)
		return nil, version, false
	}
	return &view, version, true
}

// Set stores view only while the hotel's version still equals version, so a
// load that raced with InvalidateHotel cannot put the older view back.
func (c *RedisHotelCache) Set(ctx context.Context, view *queries.HotelDetailView, version int64) {
	if view == nil || version == queries.NoCacheVersion {
		return
	}
	raw, err := json.Marshal(view)
	if err != nil {
		slog.Warn("hotel cache encode failed", "hotel_id", view.ID, "error", err)
		return
	}

	versionKey := HotelVersionKey(view.ID)
	err = c.client.Watch(ctx, func(tx *redis.Tx) error {
		current, err := tx.Get(ctx, versionKey).Int64()
		if err != nil && !errors.Is(err, redis.Nil) {
			return err
		}
		if current != version {
			return errStaleVersion
		}
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, HotelDetailKey(view.ID), raw, c.ttl)
			return nil
		})
		return err
	}, versionKey)

	switch {
	case err == nil:
	case errors.Is(err, errStaleVersion), errors.Is(err, redis.TxFailedErr):
		slog.Debug("hotel changed while loading, detail not cached", "hotel_id", view.ID, "version", version)
	default:
		slog.Warn("hotel cache set failed", "hotel_id", view.ID, "error", err)
	}
}

func (c *RedisHotelCache) InvalidateHotel(ctx context.Context, hotelID uuid.UUID) {
	_, err := c.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Incr(ctx, HotelVersionKey(hotelID))
		pipe.Del(ctx, HotelDetailKey(hotelID))
		return nil
	})
	if err != nil {
		slog.Warn("hotel cache invalidation failed", "hotel_id", hotelID, "error", err)
	}
}

// NopHotelCache is used when no Redis address is configured.
type NopHotelCache struct{}

func (NopHotelCache) Get(context.Context, uuid.UUID) (*queries.HotelDetailView, int64, bool) {
	return nil, queries.NoCacheVersion, false
}

func (NopHotelCache) Set(context.Context, *queries.HotelDetailView, int64) {}

func (NopHotelCache) InvalidateHotel(context.Context, uuid.UUID) {}
