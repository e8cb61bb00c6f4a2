package money

import (
	"errors"
	"math"
)

var ErrNonPositiveAmount = errors.New("amount must be positive")

// Money holds an amount in minor units (cents).
type Money struct {
	cents int64
}

func NewMoney(cents int64) (Money, error) {
	if cents <= 0 {
		return Money{}, ErrNonPositiveAmount
	}
	return Money{cents: cents}, nil
}

// FromAmount converts a decimal amount such as 129.99 to minor units, rounding half away from zero.
func FromAmount(amount float64) (Money, error) {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return Money{}, ErrNonPositiveAmount
	}
	return NewMoney(int64(math.Round(amount * 100)))
}

func FromCents(cents int64) Money {
	return Money{cents: cents}
}

func (m Money) Cents() int64 { return m.cents }

func (m Money) Amount() float64 {
	return float64(m.cents) / 100.0
}

func (m Money) Times(n int) Money {
	return Money{cents: m.cents * int64(n)}
}

func (m Money) Less(other Money) bool {
	return m.cents < other.cents
}
