package response

import "propie_backend/internal/domain/entities"

type MoneyResponse struct {
	Amount   string `json:"amount"`
	Currency string `json:"currency"`
}

func FromMonetaryAmount(m entities.MonetaryAmount) MoneyResponse {
	return MoneyResponse{Amount: m.Amount.String(), Currency: m.Currency}
}

func FromMonetaryAmountPtr(m *entities.MonetaryAmount) *MoneyResponse {
	if m == nil {
		return nil
	}
	r := FromMonetaryAmount(*m)
	return &r
}
