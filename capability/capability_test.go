package capability

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/siampay/paykit/types"
)

const capabilityFixture = `[
	{"type": "card", "currencies": ["THB", "JPY", "USD", "EUR", "GBP", "SGD", "AUD", "CHF", "CNY", "DKK", "HKD"]},
	{"type": "installment_bay", "currencies": ["THB"], "installment_term": [3, 4, 6, 9, 10], "zero_interest_installments": false},
	{"type": "truemoney", "currencies": ["THB"]},
	{"type": "points_citi", "currencies": ["THB"]},
	{"type": "rabbit_linepay", "currencies": ["THB"]},
	{"type": "mobile_banking_ocbc_pao", "currencies": ["SGD"]},
	{"type": "fpx", "currencies": ["MYR"], "banks": [{"name": "UOB", "code": "uob", "active": true}]},
	{"type": "mobile_banking_kbank", "currencies": ["THB"]},
	{"type": "grabpay", "currencies": ["SGD", "MYR"]},
	{"type": "paypay", "currencies": ["JPY"]}
]`

func TestDecodeCapability(t *testing.T) {
	c, err := Decode([]byte(capabilityFixture))
	require.NoError(t, err)

	assert.Len(t, c.SupportedBackends(), 10)

	cc, ok := c.CreditCardBackend()
	require.True(t, ok, "capability has no credit card backend")
	assert.Equal(t, []types.Currency{
		types.THB, types.JPY, types.USD, types.EUR, types.GBP, types.SGD,
		types.AUD, types.CHF, types.CNY, types.DKK, types.HKD,
	}, cc.Currencies)

	bay, ok := c.Backend(types.SourceTypeInstallmentBAY)
	require.True(t, ok, "capability has no BAY installment backend")
	assert.Equal(t, []int{3, 4, 6, 9, 10}, bay.InstallmentTerms)
	assert.False(t, bay.ZeroInterestInstallments)
	assert.Equal(t, []types.Currency{types.THB}, bay.Currencies)

	fpx, ok := c.Backend(types.SourceTypeFPX)
	require.True(t, ok, "capability has no FPX backend")
	assert.Equal(t, []Bank{{Name: "UOB", Code: "uob", Active: true}}, fpx.Banks)

	grab, ok := c.Backend(types.SourceTypeGrabPay)
	require.True(t, ok)
	assert.Equal(t, []types.Currency{types.SGD, types.MYR}, grab.Currencies)

	_, ok = c.Backend(types.SourceTypeAtome)
	assert.False(t, ok)
}

func TestDecodeUnknownBackendKind(t *testing.T) {
	raw := `[{"type": "hologram_pay", "currencies": ["THB"], "holo_level": 3}]`
	c, err := Decode([]byte(raw))
	require.NoError(t, err)

	b, ok := c.Backend(types.SourceType("hologram_pay"))
	require.True(t, ok, "unknown kinds must still decode")
	assert.Equal(t, []types.Currency{types.THB}, b.Currencies)
	assert.Empty(t, b.InstallmentTerms)
	assert.Empty(t, b.Banks)
}

func TestDecodeDropsUnknownCurrencies(t *testing.T) {
	raw := `[{"type": "truemoney", "currencies": ["THB", "XYZ", "thb", "SGD"]}]`
	c, err := Decode([]byte(raw))
	require.NoError(t, err)

	b, ok := c.Backend(types.SourceTypeTrueMoneyWallet)
	require.True(t, ok)
	// XYZ dropped, duplicate thb collapsed.
	assert.Equal(t, []types.Currency{types.THB, types.SGD}, b.Currencies)
}

func TestDecodeMissingType(t *testing.T) {
	raw := `[{"currencies": ["THB"]}]`
	_, err := Decode([]byte(raw))
	require.Error(t, err)

	var perr *types.Error
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, types.ErrMissingDiscriminator, perr.Code)
}

func TestDecodeNotAnArray(t *testing.T) {
	_, err := Decode([]byte(`{"type": "card"}`))
	require.Error(t, err)

	var perr *types.Error
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, types.ErrInvalidCapability, perr.Code)
}

func TestRoundTrip(t *testing.T) {
	c, err := Decode([]byte(capabilityFixture))
	require.NoError(t, err)

	encoded, err := c.Encode()
	require.NoError(t, err)

	again, err := Decode(encoded)
	require.NoError(t, err)
	assert.Equal(t, c, again)
}

func TestDuplicateTypeKeepsOneBackend(t *testing.T) {
	raw := `[
		{"type": "truemoney", "currencies": ["THB"]},
		{"type": "truemoney", "currencies": ["SGD"]}
	]`
	c, err := Decode([]byte(raw))
	require.NoError(t, err)

	assert.Len(t, c.SupportedBackends(), 1)
	b, ok := c.Backend(types.SourceTypeTrueMoneyWallet)
	require.True(t, ok)
	assert.Equal(t, []types.Currency{types.SGD}, b.Currencies)
}

func TestSupportedBackendsOrder(t *testing.T) {
	c, err := Decode([]byte(capabilityFixture))
	require.NoError(t, err)

	want := []types.SourceType{
		"card",
		types.SourceTypeInstallmentBAY,
		types.SourceTypeTrueMoneyWallet,
		types.SourceTypePointsCiti,
		types.SourceTypeRabbitLinePay,
		types.SourceTypeMobileBankingOCBCPAO,
		types.SourceTypeFPX,
		types.SourceTypeMobileBankingKBank,
		types.SourceTypeGrabPay,
		types.SourceTypePayPay,
	}
	got := make([]types.SourceType, 0, len(want))
	for _, b := range c.SupportedBackends() {
		got = append(got, b.Type)
	}
	assert.Equal(t, want, got)
}

func TestCapabilityInsideEnvelope(t *testing.T) {
	// Capability implements json.Unmarshaler, so it can sit inside a larger
	// API response struct.
	var resp struct {
		Object         string     `json:"object"`
		PaymentMethods Capability `json:"payment_methods"`
	}
	raw := `{"object": "capability", "payment_methods": ` + capabilityFixture + `}`
	require.NoError(t, json.Unmarshal([]byte(raw), &resp))
	assert.Len(t, resp.PaymentMethods.SupportedBackends(), 10)
}

func TestAvailableTerms(t *testing.T) {
	assert.Equal(t, []int{3, 4, 6, 10}, AvailableTerms(types.SourceTypeInstallmentBAY))
	assert.Equal(t, []int{4, 6, 8, 10}, AvailableTerms(types.SourceTypeInstallmentBBL))
	assert.Equal(t, []int{3, 4, 6, 10, 12, 18, 24, 36}, AvailableTerms(types.SourceTypeInstallmentFirstChoice))
	assert.Equal(t, []int{3, 6, 10}, AvailableTerms(types.SourceTypeInstallmentWLBKBank))
	assert.Equal(t, []int{}, AvailableTerms(types.SourceTypeAtome))
	assert.Equal(t, []int{}, AvailableTerms(types.SourceType("installment_newbank")))
}

func TestAvailableTermsReturnsCopy(t *testing.T) {
	terms := AvailableTerms(types.SourceTypeInstallmentBAY)
	terms[0] = 99
	assert.Equal(t, []int{3, 4, 6, 10}, AvailableTerms(types.SourceTypeInstallmentBAY))
}
