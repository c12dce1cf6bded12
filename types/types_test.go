package types

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCurrency(t *testing.T) {
	c, ok := ParseCurrency("THB")
	require.True(t, ok)
	assert.Equal(t, THB, c)

	c, ok = ParseCurrency("thb")
	require.True(t, ok)
	assert.Equal(t, THB, c)

	_, ok = ParseCurrency("XYZ")
	assert.False(t, ok)

	_, ok = ParseCurrency("")
	assert.False(t, ok)
}

func TestCurrencySubunits(t *testing.T) {
	assert.Equal(t, "100.5", THB.FromSubunit(10050).String())
	assert.Equal(t, int64(10050), THB.ToSubunit(decimal.RequireFromString("100.50")))

	// JPY has no minor unit.
	assert.Equal(t, "500", JPY.FromSubunit(500).String())
	assert.Equal(t, int64(500), JPY.ToSubunit(decimal.NewFromInt(500)))

	// Sub-minor precision truncates.
	assert.Equal(t, int64(10050), THB.ToSubunit(decimal.RequireFromString("100.509")))
}

func TestSourceTypePredicates(t *testing.T) {
	assert.True(t, SourceTypeInstallmentBAY.IsInstallment())
	assert.True(t, SourceTypeInstallmentWLBKTC.IsInstallment())
	assert.False(t, SourceTypeAlipay.IsInstallment())

	assert.True(t, SourceTypeInternetBankingBAY.IsInternetBanking())
	assert.True(t, SourceTypeMobileBankingKBank.IsMobileBanking())
	assert.True(t, SourceTypeOCBCDigital.IsMobileBanking())

	assert.True(t, SourceTypeAtome.IsKnown())
	assert.False(t, SourceType("hologram_pay").IsKnown())

	// Unknown values still behave as SourceTypes.
	assert.True(t, SourceType("installment_newbank").IsInstallment())
	assert.Equal(t, "installment_newbank", SourceType("installment_newbank").String())
}
