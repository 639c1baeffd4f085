package currency_test

import (
	"testing"

	"github.com/openbank/ledger/pkg/currency"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestGet(t *testing.T) {
	m, ok := currency.Get(currency.EUR)
	assert.True(t, ok)
	assert.Equal(t, int32(2), m.Decimals)
	assert.Equal(t, "€", m.Symbol)

	_, ok = currency.Get("XXX")
	assert.False(t, ok)
}

func TestDecimals_FallsBackForUnknownCodes(t *testing.T) {
	assert.Equal(t, int32(0), currency.Decimals(currency.JPY))
	assert.Equal(t, int32(3), currency.Decimals("KWD"))
	assert.Equal(t, currency.DefaultDecimals, currency.Decimals("XXX"))
}

func TestFormat(t *testing.T) {
	assert.Equal(t, "EUR 100.00", currency.Format(currency.EUR, decimal.NewFromInt(100)))
	assert.Equal(t, "JPY 1500", currency.Format(currency.JPY, decimal.NewFromInt(1500)))
	assert.Equal(t, "EUR -20.00", currency.Format(currency.EUR, decimal.NewFromInt(-20)))
	assert.Equal(t, "XXX 1.50", currency.Format("XXX", decimal.RequireFromString("1.5")))
}
