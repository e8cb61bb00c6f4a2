package reservation

import (
	"time"
)

const DateLayout = "2006-01-02"

// StayPeriod is the half-open date interval [checkIn, checkOut).
type StayPeriod struct {
	checkIn  time.Time
	checkOut time.Time
}

func NewStayPeriod(checkIn, checkOut time.Time) (StayPeriod, error) {
	in, out := DateOf(checkIn), DateOf(checkOut)
	if !out.After(in) {
		return StayPeriod{}, ErrInvalidRequest
	}
	return StayPeriod{checkIn: in, checkOut: out}, nil
}

func (p StayPeriod) CheckIn() time.Time {
	return p.checkIn
}

func (p StayPeriod) CheckOut() time.Time {
	return p.checkOut
}

func (p StayPeriod) Nights() int {
	return int(p.checkOut.Sub(p.checkIn).Hours() / 24)
}

// Overlaps reports whether the two periods share at least one night.
// A checkout on the same day as another check-in does not overlap.
func (p StayPeriod) Overlaps(other StayPeriod) bool {
	return p.checkIn.Before(other.checkOut) && other.checkIn.Before(p.checkOut)
}

// DateOf truncates t to its calendar date at 00:00 UTC.
func DateOf(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}

func ParseDate(s string) (time.Time, error) {
	t, err := time.ParseInLocation(DateLayout, s, time.UTC)
	if err != nil {
		return time.Time{}, ErrInvalidRequest
	}
	return t, nil
}

func FormatDate(t time.Time) string {
	return DateOf(t).Format(DateLayout)
}
