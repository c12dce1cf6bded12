package types

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Currency is an ISO 4217 currency code supported for charges.
type Currency string

const (
	THB Currency = "THB"
	JPY Currency = "JPY"
	USD Currency = "USD"
	EUR Currency = "EUR"
	GBP Currency = "GBP"
	SGD Currency = "SGD"
	AUD Currency = "AUD"
	CHF Currency = "CHF"
	CNY Currency = "CNY"
	DKK Currency = "DKK"
	HKD Currency = "HKD"
	MYR Currency = "MYR"
	IDR Currency = "IDR"
)

var supportedCurrencies = map[Currency]struct{}{
	THB: {}, JPY: {}, USD: {}, EUR: {}, GBP: {}, SGD: {},
	AUD: {}, CHF: {}, CNY: {}, DKK: {}, HKD: {}, MYR: {}, IDR: {},
}

// ParseCurrency maps a wire currency code to a supported Currency. The match
// is case-insensitive. Unsupported codes return ok == false; callers drop
// them rather than failing the surrounding decode.
func ParseCurrency(code string) (Currency, bool) {
	c := Currency(strings.ToUpper(code))
	_, ok := supportedCurrencies[c]
	return c, ok
}

// subunitFactor is the number of minor units per major unit. JPY and IDR are
// charged in whole units.
func (c Currency) subunitFactor() int64 {
	switch c {
	case JPY, IDR:
		return 1
	default:
		return 100
	}
}

// FromSubunit converts an amount in minor currency units to a display
// amount, e.g. 10050 THB subunits to 100.50.
func (c Currency) FromSubunit(amount int64) decimal.Decimal {
	return decimal.New(amount, 0).Div(decimal.New(c.subunitFactor(), 0))
}

// ToSubunit converts a display amount to minor currency units, truncating
// any precision below the currency's smallest unit.
func (c Currency) ToSubunit(amount decimal.Decimal) int64 {
	return amount.Mul(decimal.New(c.subunitFactor(), 0)).IntPart()
}

func (c Currency) String() string {
	return string(c)
}
