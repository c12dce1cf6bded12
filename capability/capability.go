// Package capability decodes the merchant's supported-backends response into
// a queryable catalog. A Capability is built once per fetch, is immutable
// afterwards, and is replaced wholesale by the next fetch.
package capability

import (
	"encoding/json"
	"fmt"

	"github.com/siampay/paykit/types"
)

// cardBackendType is the discriminator of the credit card backend. Cards are
// not a SourceType, so the value only appears here.
const cardBackendType types.SourceType = "card"

// Bank is one entry of a bank-selection backend (FPX, DuitNow OBW).
// Declaration order on the wire is preserved.
type Bank struct {
	Name   string `json:"name"`
	Code   string `json:"code"`
	Active bool   `json:"active"`
}

// Backend describes one payment method the merchant account supports:
// its source type, the currencies it can charge, and kind-specific metadata.
type Backend struct {
	Type                     types.SourceType
	Currencies               []types.Currency
	InstallmentTerms         []int
	ZeroInterestInstallments bool
	Banks                    []Bank
}

// backendRecord is the wire shape of one backend entry.
type backendRecord struct {
	Type                     *types.SourceType `json:"type"`
	Currencies               []string          `json:"currencies"`
	InstallmentTerm          []int             `json:"installment_term,omitempty"`
	ZeroInterestInstallments *bool             `json:"zero_interest_installments,omitempty"`
	Banks                    []Bank            `json:"banks,omitempty"`
}

// paymentKind selects the per-kind decoding branch for a backend record.
type paymentKind int

const (
	kindSimple paymentKind = iota
	kindCard
	kindInstallment
	kindBankList
)

func kindOf(st types.SourceType) paymentKind {
	switch {
	case st == cardBackendType:
		return kindCard
	case st.IsInstallment():
		return kindInstallment
	case st == types.SourceTypeFPX, st == types.SourceTypeDuitNowOBW:
		return kindBankList
	default:
		// Known wallets and every future kind the server may add decode the
		// same way: currencies only.
		return kindSimple
	}
}

// kindDecoders fills kind-specific metadata. Kinds without an entry decode
// to a bare Backend, so unrecognized payment kinds never break capability
// decode.
var kindDecoders = map[paymentKind]func(*Backend, backendRecord){
	kindInstallment: func(b *Backend, rec backendRecord) {
		b.InstallmentTerms = append([]int(nil), rec.InstallmentTerm...)
		if rec.ZeroInterestInstallments != nil {
			b.ZeroInterestInstallments = *rec.ZeroInterestInstallments
		}
	},
	kindBankList: func(b *Backend, rec backendRecord) {
		b.Banks = append([]Bank(nil), rec.Banks...)
	},
}

func decodeBackend(rec backendRecord) (Backend, error) {
	if rec.Type == nil {
		return Backend{}, &types.Error{
			Code:    types.ErrMissingDiscriminator,
			Message: "backend record has no type field",
		}
	}

	b := Backend{Type: *rec.Type}

	seen := make(map[types.Currency]struct{}, len(rec.Currencies))
	for _, code := range rec.Currencies {
		cur, ok := types.ParseCurrency(code)
		if !ok {
			// Unsupported currency codes are dropped, not fatal.
			continue
		}
		if _, dup := seen[cur]; dup {
			continue
		}
		seen[cur] = struct{}{}
		b.Currencies = append(b.Currencies, cur)
	}

	if fill, ok := kindDecoders[kindOf(b.Type)]; ok {
		fill(&b, rec)
	}
	return b, nil
}

func encodeBackend(b Backend) backendRecord {
	t := b.Type
	rec := backendRecord{
		Type:       &t,
		Currencies: make([]string, 0, len(b.Currencies)),
	}
	for _, cur := range b.Currencies {
		rec.Currencies = append(rec.Currencies, cur.String())
	}
	switch kindOf(b.Type) {
	case kindInstallment:
		rec.InstallmentTerm = b.InstallmentTerms
		zero := b.ZeroInterestInstallments
		rec.ZeroInterestInstallments = &zero
	case kindBankList:
		rec.Banks = b.Banks
	}
	return rec
}

// Capability is the catalog of backends the merchant account supports,
// keyed by source type. The zero Capability is empty and usable.
type Capability struct {
	backends []Backend
	index    map[types.SourceType]int
}

// Decode parses a capability response: a JSON array of backend records.
func Decode(data []byte) (*Capability, error) {
	var c Capability
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, err
	}
	return &c, nil
}

// UnmarshalJSON implements json.Unmarshaler.
func (c *Capability) UnmarshalJSON(data []byte) error {
	var recs []backendRecord
	if err := json.Unmarshal(data, &recs); err != nil {
		return &types.Error{
			Code:    types.ErrInvalidCapability,
			Message: fmt.Sprintf("capability is not a backend array: %v", err),
		}
	}

	backends := make([]Backend, 0, len(recs))
	index := make(map[types.SourceType]int, len(recs))
	for _, rec := range recs {
		b, err := decodeBackend(rec)
		if err != nil {
			return err
		}
		// At most one backend per source type; a duplicate replaces the
		// earlier record in place.
		if i, dup := index[b.Type]; dup {
			backends[i] = b
			continue
		}
		index[b.Type] = len(backends)
		backends = append(backends, b)
	}

	c.backends = backends
	c.index = index
	return nil
}

// MarshalJSON implements json.Marshaler. Encoding a decoded Capability and
// decoding the result yields an equal Capability.
func (c *Capability) MarshalJSON() ([]byte, error) {
	recs := make([]backendRecord, 0, len(c.backends))
	for _, b := range c.backends {
		recs = append(recs, encodeBackend(b))
	}
	return json.Marshal(recs)
}

// Encode serializes the capability back to its wire form.
func (c *Capability) Encode() ([]byte, error) {
	return json.Marshal(c)
}

// Backend returns the backend for the given source type, if the merchant
// supports it.
func (c *Capability) Backend(st types.SourceType) (Backend, bool) {
	i, ok := c.index[st]
	if !ok {
		return Backend{}, false
	}
	return c.backends[i], true
}

// CreditCardBackend returns the card backend, if present.
func (c *Capability) CreditCardBackend() (Backend, bool) {
	return c.Backend(cardBackendType)
}

// SupportedBackends returns every backend in wire declaration order. The
// returned slice is a copy.
func (c *Capability) SupportedBackends() []Backend {
	return append([]Backend(nil), c.backends...)
}

// SupportsSourceType reports whether the capability carries a backend for
// the source type.
func (c *Capability) SupportsSourceType(st types.SourceType) bool {
	_, ok := c.index[st]
	return ok
}
