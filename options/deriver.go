package options

import (
	"sort"

	"github.com/siampay/paykit/capability"
	"github.com/siampay/paykit/logger"
	"github.com/siampay/paykit/types"
)

// Deriver computes the ordered option list. All tables are fixed at
// construction; Derive itself is a pure function and safe for concurrent
// use.
type Deriver struct {
	rank      map[PaymentOption]int
	mapping   map[types.SourceType]PaymentOption
	overrides []OverridePair
	log       logger.Logger
}

// DeriverOption customizes a Deriver.
type DeriverOption func(*Deriver)

// WithRank replaces the curated rank order. The list must cover every
// option the mapping can produce.
func WithRank(rank []PaymentOption) DeriverOption {
	return func(d *Deriver) {
		d.rank = rankIndex(rank)
	}
}

// WithSourceMapping replaces the source-type-to-option table.
func WithSourceMapping(mapping map[types.SourceType]PaymentOption) DeriverOption {
	return func(d *Deriver) {
		d.mapping = mapping
	}
}

// WithOverridePairs replaces the supersession table.
func WithOverridePairs(pairs []OverridePair) DeriverOption {
	return func(d *Deriver) {
		d.overrides = pairs
	}
}

// WithLogger sets the logger used to report configuration defects.
func WithLogger(log logger.Logger) DeriverOption {
	return func(d *Deriver) {
		d.log = log
	}
}

// NewDeriver builds a Deriver over the default tables, then applies opts.
func NewDeriver(opts ...DeriverOption) *Deriver {
	d := &Deriver{
		rank:      rankIndex(DefaultRank),
		mapping:   DefaultSourceMapping,
		overrides: DefaultOverridePairs,
		log:       logger.NoopLogger{},
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

func rankIndex(rank []PaymentOption) map[PaymentOption]int {
	m := make(map[PaymentOption]int, len(rank))
	for i, o := range rank {
		if _, dup := m[o]; dup {
			continue
		}
		m[o] = i
	}
	return m
}

// Derive maps the allowed source types to payment options, resolves
// override pairs, inserts the synthetic credit card option when allowed,
// deduplicates, and sorts by rank. When cap is non-nil, source types the
// capability does not list are excluded first. The result is deterministic:
// identical inputs yield identical sequences.
func (d *Deriver) Derive(allowed []types.SourceType, allowCardPayment bool, cap *capability.Capability) []PaymentOption {
	present := make(map[PaymentOption]struct{}, len(allowed)+1)
	for _, st := range allowed {
		if cap != nil && !cap.SupportsSourceType(st) {
			continue
		}
		opt, ok := d.mapping[st]
		if !ok {
			// No option identity for this source type.
			continue
		}
		present[opt] = struct{}{}
	}

	for _, pair := range d.overrides {
		_, hasLoser := present[pair.Loser]
		_, hasWinner := present[pair.Winner]
		if hasLoser && hasWinner {
			delete(present, pair.Loser)
		}
	}

	if allowCardPayment {
		present[CreditCard] = struct{}{}
	}

	out := make([]PaymentOption, 0, len(present))
	for opt := range present {
		out = append(out, opt)
	}
	// Equal-rank ties (only possible with a defective rank table) order by
	// identifier so map iteration order never reaches the caller.
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	sort.SliceStable(out, func(i, j int) bool {
		return d.rankOf(out[i]) < d.rankOf(out[j])
	})
	return out
}

// rankOf returns the option's canonical position. An option missing from
// the rank table is a configuration defect: it is reported once per call
// and sorted after every ranked option so derivation still succeeds.
func (d *Deriver) rankOf(opt PaymentOption) int {
	if r, ok := d.rank[opt]; ok {
		return r
	}
	d.log.Error("payment option missing from rank table", map[string]any{
		"option": opt.String(),
	})
	return len(d.rank) + 1
}
