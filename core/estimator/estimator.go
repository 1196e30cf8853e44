// Package estimator composes sizing and pricing into a monthly/yearly
// cost breakdown. One Estimate call is an independent pure computation;
// concurrent calls need no coordination.
package estimator

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"cloudspend/core/pricing"
	"cloudspend/core/sizing"
	"cloudspend/core/types"
	"cloudspend/internal/errors"
	"cloudspend/internal/logging"
)

// HoursPerMonth is the flat monthly hour count used for all hourly
// charges. Not calendar-accurate; applied uniformly so estimates stay
// comparable across months.
var HoursPerMonth = decimal.NewFromInt(730)

// Fixed per-resource assumptions
var (
	// baseStorageGB is provisioned per compute instance
	baseStorageGB = 30

	// dbStorageGB is added once when a database is enabled
	dbStorageGB = 20

	// dataTransferMonthly is a rough flat estimate, both providers
	dataTransferMonthly = decimal.NewFromInt(10)
)

// Flat USD/GB-month storage rates. Hardcoded simplification: block
// storage is not looked up from the pricing tables.
var (
	storageRate = map[types.Provider]decimal.Decimal{
		types.ProviderAWS: decimal.NewFromFloat(0.10),
		types.ProviderGCP: decimal.NewFromFloat(0.17),
	}

	dbStorageRate = map[types.Provider]decimal.Decimal{
		types.ProviderAWS: decimal.NewFromFloat(0.115),
		types.ProviderGCP: decimal.NewFromFloat(0.17),
	}
)

// Request describes one estimation call
type Request struct {
	// Provider is the cloud provider to estimate for
	Provider types.Provider

	// Tier is the environment tier driving sizing
	Tier types.Tier

	// EnableDB adds a managed database to the deployment
	EnableDB bool
}

// Estimator produces cost breakdowns. The zero value estimates from
// fallback tables only; sources attach live pricing per provider.
type Estimator struct {
	sources map[types.Provider]pricing.Source
	timeout time.Duration
}

// Option configures an Estimator
type Option func(*Estimator)

// WithSource attaches a live price source for the source's provider
func WithSource(source pricing.Source) Option {
	return func(e *Estimator) {
		if source != nil {
			e.sources[source.Provider()] = source
		}
	}
}

// WithLookupTimeout bounds each live price lookup
func WithLookupTimeout(timeout time.Duration) Option {
	return func(e *Estimator) {
		e.timeout = timeout
	}
}

// New creates an Estimator
func New(opts ...Option) *Estimator {
	e := &Estimator{
		sources: make(map[types.Provider]pricing.Source),
		timeout: pricing.DefaultLookupTimeout,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Estimate produces the cost breakdown for a request.
//
// The only fatal condition is an unsupported provider: no sizing or
// pricing table exists to fall back to. Every other miss degrades to
// documented defaults inside sizing and pricing.
func (e *Estimator) Estimate(ctx context.Context, req Request) (*types.CostBreakdown, error) {
	if !req.Provider.IsValid() {
		return nil, errors.Newf(errors.TypeInput, "unsupported cloud provider: %s", req.Provider)
	}

	sz := sizing.Resolve(req.Provider, req.Tier)
	resolver := e.resolverFor(req.Provider)

	logging.Debug("estimating deployment cost",
		zap.String("provider", req.Provider.String()),
		zap.String("tier", req.Tier.String()),
		zap.String("region", sz.Region),
		zap.Bool("database", req.EnableDB))

	count := decimal.NewFromInt(int64(sz.InstanceCount))

	computeHourly := resolver.HourlyRate(ctx, types.KindCompute, sz.ComputeType, sz.Region)
	computeMonthly := computeHourly.Mul(count).Mul(HoursPerMonth)

	storageGB := baseStorageGB * sz.InstanceCount
	storageMonthly := decimal.NewFromInt(int64(storageGB)).Mul(storageRate[req.Provider])

	database := types.DatabaseCost{Enabled: req.EnableDB}
	if req.EnableDB {
		dbHourly := resolver.HourlyRate(ctx, types.KindDatabase, sz.DBType, sz.Region)
		database.Type = sz.DBType
		database.Hourly = dbHourly
		database.Monthly = dbHourly.Mul(HoursPerMonth)

		// database storage rides on the same enable flag as the
		// database hourly charge, never independently
		storageGB += dbStorageGB
		storageMonthly = storageMonthly.Add(
			decimal.NewFromInt(int64(dbStorageGB)).Mul(dbStorageRate[req.Provider]))
	}

	totalMonthly := computeMonthly.
		Add(storageMonthly).
		Add(dataTransferMonthly).
		Add(database.Monthly)

	return &types.CostBreakdown{
		Provider: req.Provider,
		Tier:     req.Tier,
		Region:   sz.Region,
		Currency: types.CurrencyUSD,
		Compute: types.ComputeCost{
			Instances: sz.InstanceCount,
			Type:      sz.ComputeType,
			Hourly:    computeHourly,
			Monthly:   computeMonthly,
		},
		Storage: types.StorageCost{
			GB:      storageGB,
			Monthly: storageMonthly,
		},
		DataTransfer: types.TransferCost{
			Monthly: dataTransferMonthly,
		},
		Database:     database,
		TotalMonthly: totalMonthly,
		TotalYearly:  totalMonthly.Mul(decimal.NewFromInt(12)),
	}, nil
}

func (e *Estimator) resolverFor(provider types.Provider) *pricing.Resolver {
	opts := []pricing.Option{pricing.WithLookupTimeout(e.timeout)}
	if source, ok := e.sources[provider]; ok {
		opts = append(opts, pricing.WithSource(source))
	}
	return pricing.NewResolver(provider, opts...)
}
