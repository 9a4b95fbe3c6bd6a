package request

import (
	"errors"
	"strings"

	"propie_backend/internal/domain/entities"

	"github.com/shopspring/decimal"
)

var ErrInvalidMonetaryAmount = errors.New("invalid monetary amount")

// MoneyRequest is the wire shape of a monetary amount. Amounts travel as
// decimal strings so client float formatting can never corrupt them.

type MoneyRequest struct {
	Amount   string `json:"amount" binding:"required"`
	Currency string `json:"currency" binding:"required"`
}

func (r MoneyRequest) ToMonetaryAmount() (entities.MonetaryAmount, error) {
	amount, err := decimal.NewFromString(strings.TrimSpace(r.Amount))
	if err != nil {
		return entities.MonetaryAmount{}, ErrInvalidMonetaryAmount
	}
	currency := strings.ToUpper(strings.TrimSpace(r.Currency))
	if len(currency) != 3 {
		return entities.MonetaryAmount{}, ErrInvalidMonetaryAmount
	}
	return entities.NewMonetaryAmount(amount, currency), nil
}
