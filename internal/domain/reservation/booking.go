package reservation

import (
	"time"

	"gin-hotel-booking/internal/domain/money"

	"github.com/google/uuid"
)

type Booking struct {
	id          uuid.UUID
	roomID      uuid.UUID
	hotelID     uuid.UUID
	userID      uuid.UUID
	period      StayPeriod
	guests      int
	totalPrice  money.Money
	status      Status
	createdAt   time.Time
	cancelledAt *time.Time
}

func ReconstructBooking(
	id, roomID, hotelID, userID uuid.UUID,
	period StayPeriod,
	guests int,
	totalPrice money.Money,
	status Status,
	createdAt time.Time,
	cancelledAt *time.Time,
) *Booking {
	return &Booking{
		id:          id,
		roomID:      roomID,
		hotelID:     hotelID,
		userID:      userID,
		period:      period,
		guests:      guests,
		totalPrice:  totalPrice,
		status:      status,
		createdAt:   createdAt,
		cancelledAt: cancelledAt,
	}
}

func (b *Booking) IsConfirmed() bool {
	return b.status == StatusConfirmed
}

func (b *Booking) IsCancelled() bool {
	return b.status == StatusCancelled
}

func (b *Booking) ID() uuid.UUID           { return b.id }
func (b *Booking) RoomID() uuid.UUID       { return b.roomID }
func (b *Booking) HotelID() uuid.UUID      { return b.hotelID }
func (b *Booking) UserID() uuid.UUID       { return b.userID }
func (b *Booking) Period() StayPeriod      { return b.period }
func (b *Booking) CheckIn() time.Time      { return b.period.checkIn }
func (b *Booking) CheckOut() time.Time     { return b.period.checkOut }
func (b *Booking) Guests() int             { return b.guests }
func (b *Booking) TotalPrice() money.Money { return b.totalPrice }
func (b *Booking) Status() Status          { return b.status }
func (b *Booking) CreatedAt() time.Time    { return b.createdAt }
func (b *Booking) CancelledAt() *time.Time { return b.cancelledAt }
