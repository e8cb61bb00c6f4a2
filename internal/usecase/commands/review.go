package commands

//go:generate mockgen -source=$GOFILE -destination=../../../tests/mock/commands/$GOFILE -package=commandsmock

import (
	"context"

	"gin-hotel-booking/internal/domain/reservation"
	domreview "gin-hotel-booking/internal/domain/review"
	"gin-hotel-booking/internal/infra"
	"gin-hotel-booking/internal/pkg/clock"
	"gin-hotel-booking/internal/pkg/errs"
	"gin-hotel-booking/internal/pkg/tracing"
	"gin-hotel-booking/internal/usecase/shared"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
)

type CreateReviewRequest struct {
	BookingID uuid.UUID
	Rating    int
	Comment   *string
}

type ReviewCommands interface {
	CreateReview(ctx context.Context, req CreateReviewRequest, userID uuid.UUID) (*domreview.Review, error)
}

type reviewCommandsImpl struct {
	uow   shared.UnitOfWork
	cache shared.HotelCacheInvalidator
	clock clock.Clock
}

func NewReviewCommands(uow shared.UnitOfWork, cache shared.HotelCacheInvalidator, clk clock.Clock) ReviewCommands {
	return &reviewCommandsImpl{
		uow:   uow,
		cache: cache,
		clock: clk,
	}
}

// CreateReview records a review for a completed stay and recomputes the hotel
// rating from every stored rating while the hotel row is locked.
func (uc *reviewCommandsImpl) CreateReview(ctx context.Context, req CreateReviewRequest, userID uuid.UUID) (created *domreview.Review, err error) {
	ctx, span := tracing.Start(ctx, "ReviewCommands.CreateReview",
		tracing.UserID(userID.String()),
		attribute.String("booking.id", req.BookingID.String()),
	)
	defer func() { tracing.End(span, err) }()

	if _, err := domreview.NewRating(req.Rating); err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}
	if req.Comment != nil {
		if _, err := domreview.NewComment(*req.Comment); err != nil {
			return nil, errs.Mark(err, errs.ErrDomainValidation)
		}
	}

	var hotelID uuid.UUID
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		now := uc.clock.Now()

		b, txErr := tx.Bookings().FindByID(ctx, req.BookingID)
		if txErr != nil {
			if infra.IsKind(txErr, infra.KindNotFound) {
				return errs.ErrBookingNotFound
			}
			return txErr
		}
		if b.UserID() != userID {
			return reservation.ErrForbidden
		}
		if !reservation.EligibleForReview(b, now) {
			return reservation.ErrBookingNotEligible
		}

		if _, txErr = tx.Hotels().FindForUpdate(ctx, b.HotelID()); txErr != nil {
			if infra.IsKind(txErr, infra.KindNotFound) {
				return errs.ErrHotelNotFound
			}
			return txErr
		}

		reviewed, txErr := tx.Reviews().ExistsForBooking(ctx, b.ID())
		if txErr != nil {
			return txErr
		}
		if reviewed {
			return reservation.ErrAlreadyReviewed
		}

		ratings, txErr := tx.Reviews().ListRatingsByHotel(ctx, b.HotelID())
		if txErr != nil {
			return txErr
		}
		agg := reservation.RecomputeRating(ratings, req.Rating)

		rev, txErr := domreview.NewReview(uuid.Nil, userID, b.HotelID(), b.ID(), req.Rating, req.Comment, now)
		if txErr != nil {
			return errs.Mark(txErr, errs.ErrDomainValidation)
		}
		if txErr = tx.Reviews().Create(ctx, rev); txErr != nil {
			return txErr
		}
		if txErr = tx.Hotels().UpdateRating(ctx, b.HotelID(), agg); txErr != nil {
			return txErr
		}

		created = rev
		hotelID = b.HotelID()
		return nil
	})
	if err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, reservation.ErrAlreadyReviewed
		}
		return nil, err
	}

	uc.cache.InvalidateHotel(ctx, hotelID)
	return created, nil
}
