package paykit

import (
	"github.com/siampay/paykit/card"
	"github.com/siampay/paykit/logger"
	"github.com/siampay/paykit/metrics"
	"github.com/siampay/paykit/options"
	"github.com/siampay/paykit/types"
)

type Option func(*PayKit)

func WithLogger(l logger.Logger) Option {
	return func(k *PayKit) {
		k.log = l
	}
}

func WithMetrics(r metrics.Recorder) Option {
	return func(k *PayKit) {
		k.metrics = r
	}
}

// WithBrandSpecs overrides the card detection table, including its
// precedence order.
func WithBrandSpecs(specs []card.BrandSpec) Option {
	return func(k *PayKit) {
		k.brandSpecs = specs
	}
}

// WithRank overrides the payment option presentation order.
func WithRank(rank []options.PaymentOption) Option {
	return func(k *PayKit) {
		k.rank = rank
	}
}

// WithOverridePairs overrides the option supersession table.
func WithOverridePairs(pairs []options.OverridePair) Option {
	return func(k *PayKit) {
		k.overridePairs = pairs
	}
}

// WithSourceMapping overrides the source-type-to-option table.
func WithSourceMapping(mapping map[types.SourceType]options.PaymentOption) Option {
	return func(k *PayKit) {
		k.sourceMapping = mapping
	}
}
