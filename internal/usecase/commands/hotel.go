package commands

//go:generate mockgen -source=$GOFILE -destination=../../../tests/mock/commands/$GOFILE -package=commandsmock

import (
	"context"

	"gin-hotel-booking/internal/domain/hotel"
	"gin-hotel-booking/internal/infra"
	"gin-hotel-booking/internal/pkg/clock"
	"gin-hotel-booking/internal/pkg/errs"
	"gin-hotel-booking/internal/pkg/tracing"
	"gin-hotel-booking/internal/usecase/shared"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
)

type CreateHotelRequest struct {
	Name        string
	Description *string
	City        string
	Country     string
	Amenities   []string
}

type CreateRoomRequest struct {
	RoomNumber    string
	RoomType      string
	PricePerNight float64
	MaxOccupancy  int
}

type HotelCommands interface {
	CreateHotel(ctx context.Context, req CreateHotelRequest, ownerID uuid.UUID) (*hotel.Hotel, error)
	CreateRoom(ctx context.Context, hotelID uuid.UUID, req CreateRoomRequest, ownerID uuid.UUID) (*hotel.Room, error)
}

type hotelCommandsImpl struct {
	uow   shared.UnitOfWork
	cache shared.HotelCacheInvalidator
	clock clock.Clock
}

func NewHotelCommands(uow shared.UnitOfWork, cache shared.HotelCacheInvalidator, clk clock.Clock) HotelCommands {
	return &hotelCommandsImpl{
		uow:   uow,
		cache: cache,
		clock: clk,
	}
}

func (c *hotelCommandsImpl) CreateHotel(ctx context.Context, req CreateHotelRequest, ownerID uuid.UUID) (created *hotel.Hotel, err error) {
	ctx, span := tracing.Start(ctx, "HotelCommands.CreateHotel", tracing.UserID(ownerID.String()))
	defer func() { tracing.End(span, err) }()

	h, err := hotel.NewHotel(ownerID, req.Name, req.Description, req.City, req.Country, req.Amenities, c.clock.Now())
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Hotels().Create(ctx, h)
	})
	if err != nil {
		return nil, err
	}
	return h, nil
}

// CreateRoom adds a room to a hotel owned by ownerID. The hotel row stays locked while the room number is checked.
func (c *hotelCommandsImpl) CreateRoom(ctx context.Context, hotelID uuid.UUID, req CreateRoomRequest, ownerID uuid.UUID) (created *hotel.Room, err error) {
	ctx, span := tracing.Start(ctx, "HotelCommands.CreateRoom",
		tracing.UserID(ownerID.String()),
		attribute.String("hotel.id", hotelID.String()),
	)
	defer func() { tracing.End(span, err) }()

	room, err := hotel.NewRoom(hotelID, req.RoomNumber, req.RoomType, req.PricePerNight, req.MaxOccupancy, c.clock.Now())
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		h, txErr := tx.Hotels().FindForUpdate(ctx, hotelID)
		if txErr != nil {
			if infra.IsKind(txErr, infra.KindNotFound) {
				return errs.ErrHotelNotFound
			}
			return txErr
		}
		if h.OwnerID != ownerID {
			return errs.ErrForbidden
		}

		exists, txErr := tx.Rooms().ExistsNumber(ctx, hotelID, room.Number())
		if txErr != nil {
			return txErr
		}
		if exists {
			return errs.ErrRoomAlreadyExists
		}
		return tx.Rooms().Create(ctx, room)
	})
	if err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, errs.ErrRoomAlreadyExists
		}
		return nil, err
	}

	c.cache.InvalidateHotel(ctx, hotelID)
	return room, nil
}
