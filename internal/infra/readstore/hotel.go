package readstore

import (
	"context"
	"math"
	"strings"

	"gin-hotel-booking/internal/domain/money"
	"gin-hotel-booking/internal/infra"
	sqlc "gin-hotel-booking/internal/infra/sqlc/generated"
	"gin-hotel-booking/internal/pkg/pgconv"
	"gin-hotel-booking/internal/usecase/queries"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jinzhu/copier"
)

type HotelReadQueries interface {
	GetHotelByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Hotels, error)
	ListRoomsByHotel(ctx context.Context, db sqlc.DBTX, hotelID uuid.UUID) ([]sqlc.Rooms, error)
}

type HotelReadStore struct {
	queries HotelReadQueries
	db      sqlc.DBTX
	dialect goqu.DialectWrapper
}

func NewHotelReadStore(queries HotelReadQueries, db sqlc.DBTX) *HotelReadStore {
	return &HotelReadStore{
		queries: queries,
		db:      db,
		dialect: goqu.Dialect("postgres"),
	}
}

type hotelSearchRow struct {
	ID            uuid.UUID   `db:"id"`
	Name          string      `db:"name"`
	Description   pgtype.Text `db:"description"`
	City          string      `db:"city"`
	Country       string      `db:"country"`
	Amenities     []string    `db:"amenities"`
	Rating        float64     `db:"rating"`
	TotalReviews  int32       `db:"total_reviews"`
	MinPriceCents int64       `db:"min_price_cents"`
}

// Search lists hotels that have at least one room. Price bounds apply to the cheapest room.
func (r *HotelReadStore) Search(ctx context.Context, filter queries.HotelSearchFilter) ([]*queries.HotelSummaryView, error) {
	query, args, err := r.searchSQL(filter)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build hotel search query", err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to search hotels", err)
	}
	found, err := pgx.CollectRows(rows, pgx.RowToStructByName[hotelSearchRow])
	if err != nil {
		return nil, infra.WrapRepoErr("failed to scan hotel search rows", err)
	}

	views := make([]*queries.HotelSummaryView, 0, len(found))
	for i := range found {
		view := &queries.HotelSummaryView{}
		if err := copier.Copy(view, &found[i]); err != nil {
			return nil, infra.WrapRepoErr("failed to map hotel search row", err)
		}
		view.Description = pgconv.StringPtrFromPgtype(found[i].Description)
		view.MinPricePerNight = money.FromCents(found[i].MinPriceCents).Amount()
		if view.Amenities == nil {
			view.Amenities = []string{}
		}
		views = append(views, view)
	}
	return views, nil
}

func (r *HotelReadStore) searchSQL(filter queries.HotelSearchFilter) (string, []any, error) {
	minPrice := goqu.MIN("r.price_per_night_cents")

	ds := r.dialect.
		From(goqu.T("hotels").As("h")).
		Join(goqu.T("rooms").As("r"), goqu.On(goqu.I("r.hotel_id").Eq(goqu.I("h.id")))).
		Select(
			goqu.I("h.id"),
			goqu.I("h.name"),
			goqu.I("h.description"),
			goqu.I("h.city"),
			goqu.I("h.country"),
			goqu.I("h.amenities"),
			goqu.I("h.rating"),
			goqu.I("h.total_reviews"),
			minPrice.As("min_price_cents"),
		).
		GroupBy(goqu.I("h.id")).
		Order(goqu.I("h.rating").Desc(), goqu.I("h.name").Asc())

	if filter.City != nil && strings.TrimSpace(*filter.City) != "" {
		ds = ds.Where(goqu.Func("lower", goqu.I("h.city")).Eq(strings.ToLower(strings.TrimSpace(*filter.City))))
	}
	if filter.Country != nil && strings.TrimSpace(*filter.Country) != "" {
		ds = ds.Where(goqu.Func("lower", goqu.I("h.country")).Eq(strings.ToLower(strings.TrimSpace(*filter.Country))))
	}
	if filter.MinRating != nil {
		ds = ds.Where(goqu.I("h.rating").Gte(*filter.MinRating))
	}
	if filter.MinPrice != nil {
		ds = ds.Having(minPrice.Gte(lowerCents(*filter.MinPrice)))
	}
	if filter.MaxPrice != nil {
		ds = ds.Having(minPrice.Lte(upperCents(*filter.MaxPrice)))
	}

	return ds.Prepared(true).ToSQL()
}

// Bounds are widened by a hair so 100.1 still matches 10010 cents after float rounding.
func lowerCents(amount float64) int64 {
	return int64(math.Ceil(amount*100 - 1e-6))
}

func upperCents(amount float64) int64 {
	return int64(math.Floor(amount*100 + 1e-6))
}

// FindDetail reads the hotel and its rooms; db should be a read-only snapshot.
func (r *HotelReadStore) FindDetail(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (*queries.HotelDetailView, error) {
	h, err := r.queries.GetHotelByID(ctx, db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("hotel not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get hotel", err)
	}

	rooms, err := r.queries.ListRoomsByHotel(ctx, db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list hotel rooms", err)
	}

	view := &queries.HotelDetailView{
		ID:           h.ID,
		OwnerID:      h.OwnerID,
		Name:         h.Name,
		Description:  pgconv.StringPtrFromPgtype(h.Description),
		City:         h.City,
		Country:      h.Country,
		Amenities:    h.Amenities,
		Rating:       h.Rating,
		TotalReviews: int(h.TotalReviews),
		CreatedAt:    pgconv.TimeFromPgtype(h.CreatedAt),
		Rooms:        make([]queries.RoomView, 0, len(rooms)),
	}
	if view.Amenities == nil {
		view.Amenities = []string{}
	}
	for _, room := range rooms {
		view.Rooms = append(view.Rooms, queries.RoomView{
			ID:            room.ID,
			RoomNumber:    room.RoomNumber,
			RoomType:      room.RoomType,
			PricePerNight: money.FromCents(room.PricePerNightCents).Amount(),
			MaxOccupancy:  int(room.MaxOccupancy),
		})
	}
	return view, nil
}
