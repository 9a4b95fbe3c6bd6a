package entities

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMonetaryAmount_Arithmetic(t *testing.T) {
	t.Run("add same currency", func(t *testing.T) {
		a := MustMonetaryAmount("100.50", "EUR")
		b := MustMonetaryAmount("49.50", "EUR")
		sum, err := a.Add(b)
		require.NoError(t, err)
		assert.Equal(t, "150", sum.Amount.String())
		assert.Equal(t, "EUR", sum.Currency)
	})

	t.Run("sub same currency", func(t *testing.T) {
		a := MustMonetaryAmount("100", "EUR")
		b := MustMonetaryAmount("33.33", "EUR")
		diff, err := a.Sub(b)
		require.NoError(t, err)
		assert.Equal(t, "66.67", diff.Amount.String())
	})

	t.Run("mixed currencies rejected", func(t *testing.T) {
		a := MustMonetaryAmount("10", "EUR")
		b := MustMonetaryAmount("10", "GBP")
		_, err := a.Add(b)
		assert.ErrorIs(t, err, ErrCurrencyMismatch)
		_, err = a.Sub(b)
		assert.ErrorIs(t, err, ErrCurrencyMismatch)
		_, err = a.LessThanOrEqual(b)
		assert.ErrorIs(t, err, ErrCurrencyMismatch)
	})

	t.Run("no float drift over repeated adds", func(t *testing.T) {
		sum := MonetaryAmount{Amount: decimal.Zero, Currency: "EUR"}
		cent := MustMonetaryAmount("0.01", "EUR")
		var err error
		for i := 0; i < 1000; i++ {
			sum, err = sum.Add(cent)
			require.NoError(t, err)
		}
		assert.Equal(t, "10", sum.Amount.String())
	})
}

func TestMonetaryAmount_Compare(t *testing.T) {
	a := MustMonetaryAmount("100", "EUR")
	b := MustMonetaryAmount("100.00", "EUR")
	c := MustMonetaryAmount("100.01", "EUR")

	ok, err := a.LessThanOrEqual(b)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = c.LessThanOrEqual(a)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestMonetaryAmount_String(t *testing.T) {
	assert.Equal(t, "1234.50 EUR", MustMonetaryAmount("1234.5", "EUR").String())
	assert.Equal(t, "0.00 GBP", MustMonetaryAmount("0", "GBP").String())
}

func TestMustMonetaryAmount_PanicsOnGarbage(t *testing.T) {
	assert.Panics(t, func() {
		MustMonetaryAmount("not-a-number", "EUR")
	})
}
