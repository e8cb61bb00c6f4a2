package commands

//go:generate mockgen -source=$GOFILE -destination=../../../tests/mock/commands/$GOFILE -package=commandsmock

import (
	"context"
	"log/slog"

	"gin-hotel-booking/internal/domain/reservation"
	"gin-hotel-booking/internal/infra"
	"gin-hotel-booking/internal/pkg/clock"
	"gin-hotel-booking/internal/pkg/errs"
	"gin-hotel-booking/internal/pkg/tracing"
	"gin-hotel-booking/internal/usecase/shared"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
)

type CreateBookingRequest struct {
	RoomID       uuid.UUID
	CheckInDate  string
	CheckOutDate string
	Guests       int
}

type BookingCommands interface {
	CreateBooking(ctx context.Context, req CreateBookingRequest, userID uuid.UUID) (*reservation.Booking, error)
	CancelBooking(ctx context.Context, bookingID uuid.UUID, userID uuid.UUID) (*reservation.Booking, error)
}

type bookingCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewBookingCommands(uow shared.UnitOfWork, clk clock.Clock) BookingCommands {
	return &bookingCommandsImpl{
		uow:   uow,
		clock: clk,
	}
}

// CreateBooking locks the room, reads the confirmed bookings that overlap the
// requested stay and lets reservation.Accept decide, all in one transaction.
func (c *bookingCommandsImpl) CreateBooking(ctx context.Context, req CreateBookingRequest, userID uuid.UUID) (created *reservation.Booking, err error) {
	ctx, span := tracing.Start(ctx, "BookingCommands.CreateBooking",
		tracing.UserID(userID.String()),
		attribute.String("room.id", req.RoomID.String()),
	)
	defer func() { tracing.End(span, err) }()

	checkIn, err := reservation.ParseDate(req.CheckInDate)
	if err != nil {
		return nil, err
	}
	checkOut, err := reservation.ParseDate(req.CheckOutDate)
	if err != nil {
		return nil, err
	}

	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		room, txErr := tx.Rooms().LockForBooking(ctx, req.RoomID)
		if txErr != nil {
			if infra.IsKind(txErr, infra.KindNotFound) {
				return errs.ErrRoomNotFound
			}
			return txErr
		}
		if room.OwnerID == userID {
			return errs.ErrForbidden
		}

		var existing []*reservation.Booking
		if period, perr := reservation.NewStayPeriod(checkIn, checkOut); perr == nil {
			existing, txErr = tx.Bookings().ListConfirmedOverlapping(ctx, room.ID, period)
			if txErr != nil {
				return txErr
			}
		}

		booking, txErr := reservation.Accept(reservation.Request{
			RoomID:   room.ID,
			UserID:   userID,
			CheckIn:  checkIn,
			CheckOut: checkOut,
			Guests:   req.Guests,
		}, room.Spec(), existing, c.clock.Now())
		if txErr != nil {
			return txErr
		}

		if txErr = tx.Bookings().Create(ctx, booking); txErr != nil {
			return txErr
		}
		created = booking
		return nil
	})
	if err != nil {
		if infra.IsKind(err, infra.KindExclusionViolated) {
			slog.Info("booking lost the race on the exclusion constraint", "room_id", req.RoomID, "user_id", userID)
			return nil, reservation.ErrRoomNotAvailable
		}
		return nil, err
	}

	span.SetAttributes(attribute.String("booking.id", created.ID().String()))
	return created, nil
}

func (c *bookingCommandsImpl) CancelBooking(ctx context.Context, bookingID uuid.UUID, userID uuid.UUID) (cancelled *reservation.Booking, err error) {
	ctx, span := tracing.Start(ctx, "BookingCommands.CancelBooking",
		tracing.UserID(userID.String()),
		attribute.String("booking.id", bookingID.String()),
	)
	defer func() { tracing.End(span, err) }()

	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		b, txErr := tx.Bookings().FindForUpdate(ctx, bookingID)
		if txErr != nil {
			if infra.IsKind(txErr, infra.KindNotFound) {
				return errs.ErrBookingNotFound
			}
			return txErr
		}

		next, txErr := reservation.Cancel(b, userID, c.clock.Now())
		if txErr != nil {
			return txErr
		}
		if txErr = tx.Bookings().SaveCancellation(ctx, next); txErr != nil {
			return txErr
		}
		cancelled = next
		return nil
	})
	if err != nil {
		return nil, err
	}
	return cancelled, nil
}
