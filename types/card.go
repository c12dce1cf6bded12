package types

// CreateTokenPayload is the request body of the createToken API. A token
// represents a credit or debit card.
type CreateTokenPayload struct {
	Card Card `json:"card" validate:"required"`
}

// Card carries the card details being tokenized, plus optional billing
// address fields. Built fresh per submission, never reused.
type Card struct {
	// Card holder's full name.
	Name string `json:"name" validate:"required"`

	// Card number as a digit string.
	Number string `json:"number" validate:"required,numeric"`

	// Expiration month, 1-12.
	ExpirationMonth int `json:"expiration_month" validate:"min=1,max=12"`

	// Expiration year in the Gregorian calendar.
	ExpirationYear int `json:"expiration_year" validate:"min=1"`

	// Security code (CVV, CVC) printed on the card.
	SecurityCode string `json:"security_code" validate:"required"`

	// Billing address country as a two-letter ISO 3166 code.
	CountryCode *string `json:"country,omitempty" validate:"omitempty,len=2"`
	City        *string `json:"city,omitempty"`
	State       *string `json:"state,omitempty"`
	Street1     *string `json:"street1,omitempty"`
	Street2     *string `json:"street2,omitempty"`
	PostalCode  *string `json:"postal_code,omitempty"`
	PhoneNumber *string `json:"phone_number,omitempty"`
}
