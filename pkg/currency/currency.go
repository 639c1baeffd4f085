// Package currency provides metadata for the currency codes the ledger
// knows about. Codes are stored on accounts as-is; the metadata here is
// used only to render balances with the right number of minor-unit
// decimals.
package currency

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Code is an ISO 4217 style currency code, e.g. "EUR".
type Code string

const (
	// DefaultCurrency is the fallback currency code.
	DefaultCurrency Code = "EUR"
	// DefaultDecimals is used for codes missing from the registry.
	DefaultDecimals int32 = 2
)

// Common codes.
const (
	USD Code = "USD"
	EUR Code = "EUR"
	GBP Code = "GBP"
	JPY Code = "JPY"
)

// Meta holds per-currency display metadata.
type Meta struct {
	Decimals int32
	Symbol   string
}

var registry = map[Code]Meta{
	"USD": {Decimals: 2, Symbol: "$"},
	"EUR": {Decimals: 2, Symbol: "€"},
	"GBP": {Decimals: 2, Symbol: "£"},
	"JPY": {Decimals: 0, Symbol: "¥"},
	"CHF": {Decimals: 2, Symbol: "CHF"},
	"CAD": {Decimals: 2, Symbol: "C$"},
	"AUD": {Decimals: 2, Symbol: "A$"},
	"KWD": {Decimals: 3, Symbol: "د.ك"},
	"CNY": {Decimals: 2, Symbol: "¥"},
	"INR": {Decimals: 2, Symbol: "₹"},
}

// Get returns the metadata for a code and whether the code is registered.
func Get(code Code) (Meta, bool) {
	m, ok := registry[code]
	return m, ok
}

// Decimals returns the minor-unit decimals for a code, falling back to
// DefaultDecimals for unregistered codes.
func Decimals(code Code) int32 {
	if m, ok := registry[code]; ok {
		return m.Decimals
	}
	return DefaultDecimals
}

// Format renders an amount in the given currency for display, e.g.
// "EUR 100.00". Unregistered codes render with two decimals.
func Format(code Code, amount decimal.Decimal) string {
	return fmt.Sprintf("%s %s", code, amount.StringFixed(Decimals(code)))
}

func (c Code) String() string {
	return string(c)
}
