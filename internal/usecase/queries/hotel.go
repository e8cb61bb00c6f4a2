package queries

//go:generate mockgen -source=$GOFILE -destination=../../../tests/mock/queries/$GOFILE -package=queriesmock

import (
	"context"
	"log/slog"

	"gin-hotel-booking/internal/infra"
	sqlc "gin-hotel-booking/internal/infra/sqlc/generated"
	"gin-hotel-booking/internal/pkg/errs"
	"gin-hotel-booking/internal/pkg/tracing"
	"gin-hotel-booking/internal/usecase/shared"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
)

type HotelQueries interface {
	Search(ctx context.Context, filter HotelSearchFilter) ([]*HotelSummaryView, error)
	GetByID(ctx context.Context, id uuid.UUID) (*HotelDetailView, error)
}

type HotelReadStore interface {
	Search(ctx context.Context, filter HotelSearchFilter) ([]*HotelSummaryView, error)
	FindDetail(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (*HotelDetailView, error)
}

// NoCacheVersion tells Set not to store anything.
const NoCacheVersion int64 = -1

// HotelDetailCache is best effort; misses and failures fall through to the read store.
// Get reports the hotel's invalidation version even on a miss, and Set is a
// no-op once that version has moved on.
type HotelDetailCache interface {
	Get(ctx context.Context, id uuid.UUID) (*HotelDetailView, int64, bool)
	Set(ctx context.Context, view *HotelDetailView, version int64)
}

type hotelQueriesImpl struct {
	uow       shared.UnitOfWork
	readStore HotelReadStore
	cache     HotelDetailCache
}

func NewHotelQueries(uow shared.UnitOfWork, readStore HotelReadStore, cache HotelDetailCache) HotelQueries {
	return &hotelQueriesImpl{
		uow:       uow,
		readStore: readStore,
		cache:     cache,
	}
}

func (q *hotelQueriesImpl) Search(ctx context.Context, filter HotelSearchFilter) (result []*HotelSummaryView, err error) {
	ctx, span := tracing.Start(ctx, "HotelQueries.Search")
	defer func() { tracing.End(span, err) }()

	if filter.MinPrice != nil && filter.MaxPrice != nil && *filter.MinPrice > *filter.MaxPrice {
		return []*HotelSummaryView{}, nil
	}

	hotels, err := q.readStore.Search(ctx, filter)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	span.SetAttributes(attribute.Int("hotel.count", len(hotels)))
	return hotels, nil
}

func (q *hotelQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (view *HotelDetailView, err error) {
	ctx, span := tracing.Start(ctx, "HotelQueries.GetByID", attribute.String("hotel.id", id.String()))
	defer func() { tracing.End(span, err) }()

	cached, version, ok := q.cache.Get(ctx, id)
	if ok {
		span.SetAttributes(attribute.Bool("cache.hit", true))
		return cached, nil
	}

	err = q.uow.WithinReadOnly(ctx, func(ctx context.Context, db sqlc.DBTX) error {
		var ferr error
		view, ferr = q.readStore.FindDetail(ctx, db, id)
		return ferr
	})
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrHotelNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	q.cache.Set(ctx, view, version)
	slog.Debug("hotel detail loaded", "hotel_id", id, "rooms", len(view.Rooms))
	return view, nil
}
