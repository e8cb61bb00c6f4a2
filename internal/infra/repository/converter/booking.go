package converter

import (
	"gin-hotel-booking/internal/domain/money"
	"gin-hotel-booking/internal/domain/reservation"
	sqlc "gin-hotel-booking/internal/infra/sqlc/generated"
	"gin-hotel-booking/internal/pkg/pgconv"
)

func BookingToCreateParams(b *reservation.Booking) sqlc.CreateBookingParams {
	return sqlc.CreateBookingParams{
		ID:              b.ID(),
		UserID:          b.UserID(),
		RoomID:          b.RoomID(),
		HotelID:         b.HotelID(),
		CheckInDate:     pgconv.DateToPgtype(b.CheckIn()),
		CheckOutDate:    pgconv.DateToPgtype(b.CheckOut()),
		Guests:          int32(b.Guests()),
		TotalPriceCents: b.TotalPrice().Cents(),
		Status:          b.Status().String(),
		CreatedAt:       pgconv.TimeToPgtype(b.CreatedAt()),
	}
}

func BookingFromRow(row sqlc.Bookings) (*reservation.Booking, error) {
	period, err := reservation.NewStayPeriod(
		pgconv.DateFromPgtype(row.CheckInDate),
		pgconv.DateFromPgtype(row.CheckOutDate),
	)
	if err != nil {
		return nil, err
	}

	status, err := reservation.ParseStatus(row.Status)
	if err != nil {
		return nil, err
	}

	return reservation.ReconstructBooking(
		row.ID,
		row.RoomID,
		row.HotelID,
		row.UserID,
		period,
		int(row.Guests),
		money.FromCents(row.TotalPriceCents),
		status,
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimePtrFromPgtype(row.CancelledAt),
	), nil
}

func BookingsFromRows(rows []sqlc.Bookings) ([]*reservation.Booking, error) {
	out := make([]*reservation.Booking, 0, len(rows))
	for _, row := range rows {
		b, err := BookingFromRow(row)
		if err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, nil
}
