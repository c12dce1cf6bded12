package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/siampay/paykit/types"
)

func TestParseCreateTokenPayload(t *testing.T) {
	raw := `{"card": {
		"name": "JOHN DOE",
		"number": "4242424242424242",
		"expiration_month": 12,
		"expiration_year": 2030,
		"security_code": "123",
		"postal_code": "10110"
	}}`

	payload, err := ParseCreateTokenPayload([]byte(raw))
	require.NoError(t, err)
	assert.Equal(t, "JOHN DOE", payload.Card.Name)
	assert.Equal(t, "4242424242424242", payload.Card.Number)
	assert.Equal(t, 12, payload.Card.ExpirationMonth)
	require.NotNil(t, payload.Card.PostalCode)
	assert.Equal(t, "10110", *payload.Card.PostalCode)
	assert.Nil(t, payload.Card.City)
}

func TestParseCreateTokenPayloadRejectsBadCards(t *testing.T) {
	cases := map[string]string{
		"bad month":        `{"card": {"name": "A", "number": "4242424242424242", "expiration_month": 13, "expiration_year": 2030, "security_code": "123"}}`,
		"zero year":        `{"card": {"name": "A", "number": "4242424242424242", "expiration_month": 1, "expiration_year": 0, "security_code": "123"}}`,
		"non-digit number": `{"card": {"name": "A", "number": "4242-4242", "expiration_month": 1, "expiration_year": 2030, "security_code": "123"}}`,
		"missing name":     `{"card": {"number": "4242424242424242", "expiration_month": 1, "expiration_year": 2030, "security_code": "123"}}`,
		"not json":         `{"card": `,
	}
	for name, raw := range cases {
		_, err := ParseCreateTokenPayload([]byte(raw))
		require.Error(t, err, name)

		var perr *types.Error
		require.ErrorAs(t, err, &perr, name)
		assert.Equal(t, types.ErrInvalidCard, perr.Code, name)
	}
}

func TestSerializeCreateTokenPayload(t *testing.T) {
	payload := &types.CreateTokenPayload{Card: types.Card{
		Name:            "JOHN DOE",
		Number:          "4242424242424242",
		ExpirationMonth: 6,
		ExpirationYear:  2030,
		SecurityCode:    "123",
	}}
	data, err := SerializeCreateTokenPayload(payload)
	require.NoError(t, err)
	assert.JSONEq(t, `{"card": {
		"name": "JOHN DOE",
		"number": "4242424242424242",
		"expiration_month": 6,
		"expiration_year": 2030,
		"security_code": "123"
	}}`, string(data))
}

func TestIsDigits(t *testing.T) {
	assert.True(t, IsDigits("0123456789"))
	assert.False(t, IsDigits(""))
	assert.False(t, IsDigits("12a4"))
	assert.False(t, IsDigits("12 34"))
}

func TestNormalizeCardNumber(t *testing.T) {
	assert.Equal(t, "4242424242424242", NormalizeCardNumber("4242 4242 4242 4242"))
	assert.Equal(t, "4242424242424242", NormalizeCardNumber("4242-4242-4242-4242"))
	assert.Equal(t, "42ab", NormalizeCardNumber("42 ab"))
}

func TestValidateExpiration(t *testing.T) {
	now := time.Date(2026, time.August, 31, 0, 0, 0, 0, time.UTC)

	assert.NoError(t, ValidateExpiration(8, 2026, now))
	assert.NoError(t, ValidateExpiration(12, 2030, now))
	assert.Error(t, ValidateExpiration(7, 2026, now))
	assert.Error(t, ValidateExpiration(1, 2020, now))
	assert.Error(t, ValidateExpiration(0, 2030, now))
	assert.Error(t, ValidateExpiration(13, 2030, now))
	assert.Error(t, ValidateExpiration(1, 0, now))
}
