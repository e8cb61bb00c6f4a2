package reservation

import (
	"time"

	"gin-hotel-booking/internal/domain/money"

	"github.com/google/uuid"
)

// CancellationNotice is the minimum time between cancellation and the start of the check-in day.
const CancellationNotice = 24 * time.Hour

type Request struct {
	RoomID   uuid.UUID
	UserID   uuid.UUID
	CheckIn  time.Time
	CheckOut time.Time
	Guests   int
}

type RoomSpec struct {
	ID            uuid.UUID
	HotelID       uuid.UUID
	MaxOccupancy  int
	PricePerNight money.Money
}

type RatingAggregate struct {
	Average float64
	Count   int
}

// Accept decides whether req can be booked against room given the confirmed
// bookings already held for it. Checks run in a fixed order and the first
// failure wins.
func Accept(req Request, room RoomSpec, existing []*Booking, now time.Time) (*Booking, error) {
	today := DateOf(now)
	checkIn, checkOut := DateOf(req.CheckIn), DateOf(req.CheckOut)

	if !checkIn.After(today) {
		return nil, ErrInvalidDates
	}

	period, err := NewStayPeriod(checkIn, checkOut)
	if err != nil {
		return nil, err
	}
	if req.Guests < 1 {
		return nil, ErrInvalidRequest
	}

	if req.Guests > room.MaxOccupancy {
		return nil, ErrInvalidCapacity
	}

	for _, b := range existing {
		if b == nil || !b.IsConfirmed() || b.roomID != room.ID {
			continue
		}
		if period.Overlaps(b.period) {
			return nil, ErrRoomNotAvailable
		}
	}

	return &Booking{
		id:         uuid.New(),
		roomID:     room.ID,
		hotelID:    room.HotelID,
		userID:     req.UserID,
		period:     period,
		guests:     req.Guests,
		totalPrice: room.PricePerNight.Times(period.Nights()),
		status:     StatusConfirmed,
		createdAt:  now,
	}, nil
}

// Cancel returns the cancelled copy of b. The receiver is left untouched.
func Cancel(b *Booking, userID uuid.UUID, now time.Time) (*Booking, error) {
	if b.userID != userID {
		return nil, ErrForbidden
	}
	if b.IsCancelled() {
		return nil, ErrAlreadyCancelled
	}
	if b.period.checkIn.Sub(now) < CancellationNotice {
		return nil, ErrCancellationDeadlinePassed
	}

	cancelled := *b
	at := now
	cancelled.status = StatusCancelled
	cancelled.cancelledAt = &at
	return &cancelled, nil
}

// EligibleForReview holds once the check-out date of a non-cancelled stay lies before now.
func EligibleForReview(b *Booking, now time.Time) bool {
	return !b.IsCancelled() && b.period.checkOut.Before(now)
}

func RecomputeRating(existing []int, newRating int) RatingAggregate {
	sum := newRating
	for _, r := range existing {
		sum += r
	}
	count := len(existing) + 1
	return RatingAggregate{
		Average: float64(sum) / float64(count),
		Count:   count,
	}
}
