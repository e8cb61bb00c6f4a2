//go:build unit || e2e

package builder

import (
	"time"

	"gin-hotel-booking/internal/domain/money"
	"gin-hotel-booking/internal/domain/reservation"
	reqdto "gin-hotel-booking/internal/handler/dto/request"

	"github.com/google/uuid"
)

type BookingBuilder struct {
	ID          uuid.UUID
	RoomID      uuid.UUID
	HotelID     uuid.UUID
	UserID      uuid.UUID
	CheckIn     time.Time
	CheckOut    time.Time
	Guests      int
	TotalCents  int64
	Status      reservation.Status
	CreatedAt   time.Time
	CancelledAt *time.Time
}

// NewBookingBuilder starts from a confirmed two-night stay beginning 10 days from today (UTC).
func NewBookingBuilder() *BookingBuilder {
	today := reservation.DateOf(time.Now())
	return &BookingBuilder{
		ID:         uuid.New(),
		RoomID:     uuid.New(),
		HotelID:    uuid.New(),
		UserID:     uuid.New(),
		CheckIn:    today.AddDate(0, 0, 10),
		CheckOut:   today.AddDate(0, 0, 12),
		Guests:     2,
		TotalCents: 20000,
		Status:     reservation.StatusConfirmed,
		CreatedAt:  time.Now(),
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

// BuildDomain bypasses the booking rules; use it for stored state only.
func (b *BookingBuilder) BuildDomain() *reservation.Booking {
	period, err := reservation.NewStayPeriod(b.CheckIn, b.CheckOut)
	if err != nil {
		panic(err)
	}
	return reservation.ReconstructBooking(
		b.ID, b.RoomID, b.HotelID, b.UserID,
		period,
		b.Guests,
		money.FromCents(b.TotalCents),
		b.Status,
		b.CreatedAt,
		b.CancelledAt,
	)
}

func (b *BookingBuilder) BuildCreateRequestDTO() reqdto.CreateBookingRequest {
	return reqdto.CreateBookingRequest{
		RoomID:       b.RoomID,
		CheckInDate:  reservation.FormatDate(b.CheckIn),
		CheckOutDate: reservation.FormatDate(b.CheckOut),
		Guests:       b.Guests,
	}
}

// Fluent builder methods
func (b *BookingBuilder) AsCancelled() *BookingBuilder {
	now := time.Now()
	b.Status = reservation.StatusCancelled
	b.CancelledAt = &now
	return b
}

// AsCompleted moves the stay into the past so it is eligible for review.
func (b *BookingBuilder) AsCompleted() *BookingBuilder {
	today := reservation.DateOf(time.Now())
	b.CheckIn = today.AddDate(0, 0, -5)
	b.CheckOut = today.AddDate(0, 0, -3)
	return b
}
