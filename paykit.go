// Package paykit is the payment-method core of the SiamPay mobile payment
// SDK. It classifies card numbers into networks, decodes the merchant's
// capability response into a queryable catalog, encodes and decodes payment
// source payloads, and derives the ordered list of payment options to offer.
// Everything is an in-memory transform: no I/O, no retries, no persistence.
package paykit

import (
	"time"

	"github.com/siampay/paykit/capability"
	"github.com/siampay/paykit/card"
	"github.com/siampay/paykit/logger"
	"github.com/siampay/paykit/metrics"
	"github.com/siampay/paykit/options"
	"github.com/siampay/paykit/source"
	"github.com/siampay/paykit/types"
	"github.com/siampay/paykit/utils"
)

// PayKit bundles the four core components behind one construction point so
// host applications configure logging, metrics, and table overrides once.
// A PayKit is immutable after New and safe for concurrent use.
type PayKit struct {
	classifier *card.Classifier
	deriver    *options.Deriver

	brandSpecs    []card.BrandSpec
	rank          []options.PaymentOption
	overridePairs []options.OverridePair
	sourceMapping map[types.SourceType]options.PaymentOption

	log     logger.Logger
	metrics metrics.Recorder
}

// New creates a PayKit with the default tables, then applies opts.
func New(opts ...Option) *PayKit {
	k := &PayKit{
		brandSpecs:    card.DefaultBrandSpecs,
		rank:          options.DefaultRank,
		overridePairs: options.DefaultOverridePairs,
		sourceMapping: options.DefaultSourceMapping,
		log:           logger.NoopLogger{},
		metrics:       metrics.NoopRecorder{},
	}
	for _, opt := range opts {
		opt(k)
	}

	k.classifier = card.NewClassifier(k.brandSpecs)
	k.deriver = options.NewDeriver(
		options.WithRank(k.rank),
		options.WithOverridePairs(k.overridePairs),
		options.WithSourceMapping(k.sourceMapping),
		options.WithLogger(k.log),
	)
	return k
}

// IdentifyCard returns the card network matching the number's prefix, if
// any.
func (k *PayKit) IdentifyCard(number string) (card.Brand, bool) {
	brand, ok := k.classifier.Identify(number)
	if ok {
		k.metrics.IncCounter("card_identified", map[string]string{"method": brand.String()})
	}
	return brand, ok
}

// IsValidCardLength reports whether the number's length is valid for the
// brand. Independent of IdentifyCard: a number can match a brand and still
// have an invalid length.
func (k *PayKit) IsValidCardLength(brand card.Brand, number string) bool {
	return k.classifier.IsValidLength(brand, number)
}

// DecodeCapability parses a capability response into a queryable catalog.
func (k *PayKit) DecodeCapability(data []byte) (*capability.Capability, error) {
	start := time.Now()
	c, err := capability.Decode(data)
	k.metrics.ObserveLatency("decode_capability", time.Since(start), map[string]string{"method": "capability"})
	if err != nil {
		k.log.Error("capability decode failed", map[string]any{"error": err.Error()})
		return nil, err
	}
	k.log.Debug("capability decoded", map[string]any{
		"backends": len(c.SupportedBackends()),
	})
	return c, nil
}

// DecodeSourcePayload parses a source payload wire object into its typed
// variant, or source.Other for discriminators without a structured variant.
func (k *PayKit) DecodeSourcePayload(data []byte) (source.Payload, error) {
	p, err := source.Decode(data)
	if err != nil {
		k.log.Error("source payload decode failed", map[string]any{"error": err.Error()})
		return nil, err
	}
	k.metrics.IncCounter("source_decoded", map[string]string{"method": p.SourceType().String()})
	return p, nil
}

// EncodeSourcePayload serializes a payload for the wire, discriminator
// first.
func (k *PayKit) EncodeSourcePayload(p source.Payload) ([]byte, error) {
	return source.Encode(p)
}

// ParseCreateTokenPayload parses and validates a card tokenization request
// body.
func (k *PayKit) ParseCreateTokenPayload(data []byte) (*types.CreateTokenPayload, error) {
	return utils.ParseCreateTokenPayload(data)
}

// PaymentOptions derives the ordered, deduplicated option list for the
// merchant configuration. cap may be nil when no capability has been
// fetched yet.
func (k *PayKit) PaymentOptions(allowed []types.SourceType, allowCardPayment bool, cap *capability.Capability) []options.PaymentOption {
	start := time.Now()
	out := k.deriver.Derive(allowed, allowCardPayment, cap)
	k.metrics.ObserveLatency("derive_options", time.Since(start), map[string]string{"method": "options"})
	return out
}

// AvailableTerms returns the installment terms offered by a provider, or an
// empty slice for non-installment source types.
func (k *PayKit) AvailableTerms(st types.SourceType) []int {
	return capability.AvailableTerms(st)
}

// Version information
const Version = "1.0.0"
