package utils

import (
	"encoding/json"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/siampay/paykit/types"
)

var validate = validator.New()

// ParseCreateTokenPayload parses and validates a card tokenization request
// body.
func ParseCreateTokenPayload(data []byte) (*types.CreateTokenPayload, error) {
	var payload types.CreateTokenPayload

	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, &types.Error{
			Code:    types.ErrInvalidCard,
			Message: fmt.Sprintf("failed to parse card payload: %v", err),
		}
	}

	if err := ValidateCard(&payload.Card); err != nil {
		return nil, err
	}

	return &payload, nil
}

// SerializeCreateTokenPayload converts a card tokenization request to JSON.
func SerializeCreateTokenPayload(payload *types.CreateTokenPayload) ([]byte, error) {
	return json.Marshal(payload)
}

// ValidateCard checks the card's required fields and value ranges via its
// struct tags: non-empty name and security code, digits-only number,
// expiration month 1-12, positive Gregorian year.
func ValidateCard(card *types.Card) error {
	if err := validate.Struct(card); err != nil {
		return &types.Error{
			Code:    types.ErrInvalidCard,
			Message: fmt.Sprintf("card validation failed: %v", err),
		}
	}
	return nil
}
