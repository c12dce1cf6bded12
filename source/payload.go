// Package source encodes and decodes payment source payloads: the
// per-method request bodies sent when creating a source. Payloads form a
// tagged union over the wire "type" discriminator; methods without a
// structured body in this SDK decode to Other.
package source

import "github.com/siampay/paykit/types"

// Payload is one payment-method-specific source body. Every variant knows
// its own source type, which the codec emits as the wire discriminator.
type Payload interface {
	SourceType() types.SourceType
}

// Atome is the payload of the Atome buy-now-pay-later method.
type Atome struct {
	PhoneNumber string       `json:"phone_number" validate:"required"`
	Name        *string      `json:"name,omitempty"`
	Email       *string      `json:"email,omitempty" validate:"omitempty,email"`
	Country     *string      `json:"country,omitempty"`
	City        *string      `json:"city,omitempty"`
	PostalCode  *string      `json:"postal_code,omitempty"`
	State       *string      `json:"state,omitempty"`
	Street1     *string      `json:"street1,omitempty"`
	Street2     *string      `json:"street2,omitempty"`
	Items       []types.Item `json:"items,omitempty" validate:"dive"`
}

func (Atome) SourceType() types.SourceType {
	return types.SourceTypeAtome
}

// BarcodeAlipay is the payload of the Alipay In-Store method. Store and
// terminal identifiers must be omitted when they are already configured on
// the merchant account.
type BarcodeAlipay struct {
	Barcode    string  `json:"barcode" validate:"required"`
	StoreID    *string `json:"store_id,omitempty"`
	StoreName  *string `json:"store_name,omitempty"`
	TerminalID *string `json:"terminal_id,omitempty"`
}

func (BarcodeAlipay) SourceType() types.SourceType {
	return types.SourceTypeBarcodeAlipay
}

// Installment is the payload of an installment method. Type carries the
// concrete provider (installment_bay, installment_wlb_ktc, ...) and doubles
// as the wire discriminator.
type Installment struct {
	Type types.SourceType `json:"-"`

	// Term length in months.
	InstallmentTerm int `json:"installment_term" validate:"min=1"`

	// True when the merchant absorbs interest. Unset leaves the account
	// default in place.
	ZeroInterestInstallments *bool `json:"zero_interest_installments,omitempty"`
}

func (p Installment) SourceType() types.SourceType {
	return p.Type
}

// TrueMoney is the payload of the TrueMoney Wallet method.
type TrueMoney struct {
	PhoneNumber string `json:"phone_number" validate:"required"`
}

func (TrueMoney) SourceType() types.SourceType {
	return types.SourceTypeTrueMoneyWallet
}

// Other is the catch-all payload for source types without a structured body
// in this SDK. It preserves the wire discriminator exactly, so unmodeled
// methods still round-trip.
type Other struct {
	Type types.SourceType `json:"-"`
}

func (p Other) SourceType() types.SourceType {
	return p.Type
}
