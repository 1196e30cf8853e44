// Package pricing resolves hourly unit prices for sized resources.
// Resolution prefers a live cloud price source and degrades to a static
// fallback table; it never fails an estimation.
package pricing

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"cloudspend/core/types"
	"cloudspend/internal/logging"
)

// DefaultLookupTimeout bounds a single live price lookup
const DefaultLookupTimeout = 5 * time.Second

// Source fetches on-demand prices from a cloud pricing API
type Source interface {
	// Provider returns the cloud provider this source prices
	Provider() types.Provider

	// HourlyRate returns the on-demand hourly USD rate for a resource.
	// found is false when the API answered but had no matching product.
	HourlyRate(ctx context.Context, kind types.ResourceKind, typeID, region string) (rate decimal.Decimal, found bool, err error)
}

// Resolver resolves hourly prices for one provider
type Resolver struct {
	provider types.Provider
	table    Table
	source   Source
	timeout  time.Duration
}

// Option configures a Resolver
type Option func(*Resolver)

// WithSource attaches a live price source. A source for a different
// provider is ignored: identifier vocabularies are provider-specific and
// a lookup must never cross providers.
func WithSource(source Source) Option {
	return func(r *Resolver) {
		if source != nil && source.Provider() == r.provider {
			r.source = source
		}
	}
}

// WithLookupTimeout overrides the per-lookup timeout
func WithLookupTimeout(timeout time.Duration) Option {
	return func(r *Resolver) {
		if timeout > 0 {
			r.timeout = timeout
		}
	}
}

// NewResolver creates a resolver backed by the provider's fallback table
func NewResolver(provider types.Provider, opts ...Option) *Resolver {
	r := &Resolver{
		provider: provider,
		table:    FallbackTable(provider),
		timeout:  DefaultLookupTimeout,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// HourlyRate resolves the hourly USD rate for a resource. The live source
// is consulted first when present; any live failure, miss, or non-positive
// price falls through to the static table, and a missing table entry falls
// through to the per-kind default. The returned rate is always positive.
func (r *Resolver) HourlyRate(ctx context.Context, kind types.ResourceKind, typeID, region string) decimal.Decimal {
	if r.source != nil {
		if rate, ok := r.liveRate(ctx, kind, typeID, region); ok {
			return rate
		}
	}

	if regions, ok := r.table[rateKey{Kind: kind, Type: typeID}]; ok {
		if rate, ok := regions[region]; ok {
			return rate
		}
		logging.Debug("region missing from fallback table",
			zap.String("provider", r.provider.String()),
			zap.String("type", typeID),
			zap.String("region", region))
	} else {
		logging.Debug("type missing from fallback table",
			zap.String("provider", r.provider.String()),
			zap.String("kind", kind.String()),
			zap.String("type", typeID))
	}

	if kind == types.KindDatabase {
		return DefaultDatabaseHourly
	}
	return DefaultComputeHourly
}

func (r *Resolver) liveRate(ctx context.Context, kind types.ResourceKind, typeID, region string) (decimal.Decimal, bool) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	rate, found, err := r.source.HourlyRate(ctx, kind, typeID, region)
	if err != nil {
		logging.Debug("live price lookup failed, using fallback",
			zap.String("provider", r.provider.String()),
			zap.String("type", typeID),
			zap.String("region", region),
			zap.Error(err))
		return decimal.Zero, false
	}
	if !found || !rate.IsPositive() {
		return decimal.Zero, false
	}
	return rate, true
}
