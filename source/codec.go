package source

import (
	"encoding/json"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/siampay/paykit/types"
)

var validate = validator.New()

// decodeFunc turns the raw wire object into one payload variant. The
// discriminator has already been read; it is passed in for variants that
// span several source types.
type decodeFunc func(st types.SourceType, data []byte) (Payload, error)

// decoders maps a wire discriminator to its variant decoder. Discriminators
// not in this table decode to Other; adding a structured variant means
// adding entries here, nothing else.
var decoders = map[types.SourceType]decodeFunc{
	types.SourceTypeAtome:           decodeAtome,
	types.SourceTypeBarcodeAlipay:   decodeBarcodeAlipay,
	types.SourceTypeTrueMoneyWallet: decodeTrueMoney,
}

func init() {
	// Every installment provider shares one decoder; the discriminator
	// tells the variants apart.
	for st := range installmentProviders {
		decoders[st] = decodeInstallment
	}
}

var installmentProviders = func() map[types.SourceType]struct{} {
	m := make(map[types.SourceType]struct{})
	for _, st := range types.AllSourceTypes {
		if st.IsInstallment() {
			m[st] = struct{}{}
		}
	}
	return m
}()

func decodeAtome(_ types.SourceType, data []byte) (Payload, error) {
	var p Atome
	if err := unmarshalVariant(data, &p); err != nil {
		return nil, err
	}
	return p, nil
}

func decodeBarcodeAlipay(_ types.SourceType, data []byte) (Payload, error) {
	var p BarcodeAlipay
	if err := unmarshalVariant(data, &p); err != nil {
		return nil, err
	}
	return p, nil
}

func decodeTrueMoney(_ types.SourceType, data []byte) (Payload, error) {
	var p TrueMoney
	if err := unmarshalVariant(data, &p); err != nil {
		return nil, err
	}
	return p, nil
}

func decodeInstallment(st types.SourceType, data []byte) (Payload, error) {
	var p Installment
	if err := unmarshalVariant(data, &p); err != nil {
		return nil, err
	}
	p.Type = st
	return p, nil
}

// unmarshalVariant decodes a recognized variant's fields and checks its
// required fields. Failures here are structural: the discriminator promised
// a shape the object does not have.
func unmarshalVariant(data []byte, v interface{}) error {
	if err := json.Unmarshal(data, v); err != nil {
		return &types.Error{
			Code:    types.ErrInvalidPayload,
			Message: fmt.Sprintf("malformed source payload: %v", err),
		}
	}
	if err := validate.Struct(v); err != nil {
		return &types.Error{
			Code:    types.ErrInvalidPayload,
			Message: fmt.Sprintf("source payload validation failed: %v", err),
		}
	}
	return nil
}

// discriminator is the envelope read before selecting a variant decoder.
type discriminator struct {
	Type *types.SourceType `json:"type"`
}

// Decode parses a source payload wire object. A recognized discriminator
// defers to that variant's decoder; any other discriminator value yields
// Other carrying the raw source type. A missing or non-string "type" field
// is a structural error.
func Decode(data []byte) (Payload, error) {
	var d discriminator
	if err := json.Unmarshal(data, &d); err != nil {
		return nil, &types.Error{
			Code:    types.ErrMissingDiscriminator,
			Message: fmt.Sprintf("source payload is not a wire object: %v", err),
		}
	}
	if d.Type == nil {
		return nil, &types.Error{
			Code:    types.ErrMissingDiscriminator,
			Message: "source payload has no type field",
		}
	}

	if fn, ok := decoders[*d.Type]; ok {
		return fn(*d.Type, data)
	}
	return Other{Type: *d.Type}, nil
}

// Encode serializes a payload for the wire. The discriminator field is
// always emitted first, followed by the variant's own fields; Other emits
// the discriminator alone.
func Encode(p Payload) ([]byte, error) {
	disc, err := json.Marshal(discriminator{Type: ptr(p.SourceType())})
	if err != nil {
		return nil, err
	}
	body, err := json.Marshal(p)
	if err != nil {
		return nil, err
	}
	if len(body) <= 2 {
		// Variant with no encodable fields of its own.
		return disc, nil
	}
	// {"type":...} + {fields...} -> {"type":...,fields...}
	out := make([]byte, 0, len(disc)+len(body))
	out = append(out, disc[:len(disc)-1]...)
	out = append(out, ',')
	out = append(out, body[1:]...)
	return out, nil
}

func ptr(st types.SourceType) *types.SourceType {
	return &st
}
