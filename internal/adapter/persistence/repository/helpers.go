package repository

import (
	"os"
	"time"

	"propie_backend/internal/domain/entities"

	"github.com/shopspring/decimal"
)

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func mergeNames(a, b map[string]string) map[string]string {
	if len(a) == 0 {
		return b
	}
	if len(b) == 0 {
		return a
	}
	out := make(map[string]string, len(a)+len(b))
	for k, v := range a {
		out[k] = v
	}
	for k, v := range b {
		out[k] = v
	}
	return out
}

// moneyItem is the stored shape of a MonetaryAmount. Amounts are decimal
// strings, never numbers, so DynamoDB never re-interprets precision.

type moneyItem struct {
	Amount   string `dynamodbav:"amount"`
	Currency string `dynamodbav:"currency"`
}

func toMoneyItem(m entities.MonetaryAmount) moneyItem {
	return moneyItem{Amount: m.Amount.String(), Currency: m.Currency}
}

func fromMoneyItem(it moneyItem) entities.MonetaryAmount {
	amount, _ := decimal.NewFromString(it.Amount)
	return entities.MonetaryAmount{Amount: amount, Currency: it.Currency}
}

func toMoneyItemPtr(m *entities.MonetaryAmount) *moneyItem {
	if m == nil {
		return nil
	}
	it := toMoneyItem(*m)
	return &it
}

func fromMoneyItemPtr(it *moneyItem) *entities.MonetaryAmount {
	if it == nil {
		return nil
	}
	m := fromMoneyItem(*it)
	return &m
}

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

func parseTime(s string) time.Time {
	t, _ := time.Parse(time.RFC3339Nano, s)
	return t
}

func formatTimePtr(t *time.Time) string {
	if t == nil {
		return ""
	}
	return formatTime(*t)
}

func parseTimePtr(s string) *time.Time {
	if s == "" {
		return nil
	}
	t := parseTime(s)
	return &t
}
