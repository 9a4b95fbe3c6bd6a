package entities

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

var ErrCurrencyMismatch = errors.New("currency mismatch")

// MonetaryAmount is an immutable amount + ISO-4217 currency pair.
//
// All financial entities carry MonetaryAmount values; arithmetic across
// different currencies is rejected rather than silently converted.
//
// Storage model (DynamoDB):
//   - amount: string (decimal, exact)
//   - currency: string

type MonetaryAmount struct {
	Amount   decimal.Decimal `json:"amount"`
	Currency string          `json:"currency"`
}

func NewMonetaryAmount(amount decimal.Decimal, currency string) MonetaryAmount {
	return MonetaryAmount{Amount: amount, Currency: currency}
}

func MustMonetaryAmount(amount string, currency string) MonetaryAmount {
	d, err := decimal.NewFromString(amount)
	if err != nil {
		panic(fmt.Sprintf("invalid monetary amount %q: %v", amount, err))
	}
	return MonetaryAmount{Amount: d, Currency: currency}
}

func (m MonetaryAmount) IsZero() bool {
	return m.Amount.IsZero()
}

func (m MonetaryAmount) Add(other MonetaryAmount) (MonetaryAmount, error) {
	if m.Currency != other.Currency {
		return MonetaryAmount{}, ErrCurrencyMismatch
	}
	return MonetaryAmount{Amount: m.Amount.Add(other.Amount), Currency: m.Currency}, nil
}

func (m MonetaryAmount) Sub(other MonetaryAmount) (MonetaryAmount, error) {
	if m.Currency != other.Currency {
		return MonetaryAmount{}, ErrCurrencyMismatch
	}
	return MonetaryAmount{Amount: m.Amount.Sub(other.Amount), Currency: m.Currency}, nil
}

// LessThanOrEqual reports m <= other. Comparing across currencies is a
// programming error and returns ErrCurrencyMismatch.
func (m MonetaryAmount) LessThanOrEqual(other MonetaryAmount) (bool, error) {
	if m.Currency != other.Currency {
		return false, ErrCurrencyMismatch
	}
	return m.Amount.LessThanOrEqual(other.Amount), nil
}

func (m MonetaryAmount) String() string {
	return m.Amount.StringFixed(2) + " " + m.Currency
}
