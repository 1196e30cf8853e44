// Package pricing - Static fallback price tables
package pricing

import (
	"sort"

	"github.com/shopspring/decimal"

	"cloudspend/core/types"
)

// Default hourly rates used when a type or region is missing from the
// fallback table. Estimation is advisory, so an unrecognized identifier
// produces a rough number instead of an error.
var (
	DefaultComputeHourly  = decimal.NewFromFloat(0.05)
	DefaultDatabaseHourly = decimal.NewFromFloat(0.017)
)

// rateKey identifies a priceable type within one provider's table
type rateKey struct {
	Kind types.ResourceKind
	Type string
}

// Table maps (resource kind, type identifier) to per-region hourly USD
// rates. One table exists per provider; they are never merged and their
// type vocabularies never overlap.
type Table map[rateKey]map[string]decimal.Decimal

// On-demand hourly rates, USD. Snapshotted from public pricing pages;
// the live source supersedes these when available.
var awsTable = Table{
	{types.KindCompute, "t3.medium"}: {
		"us-east-1": decimal.NewFromFloat(0.0416),
		"us-west-2": decimal.NewFromFloat(0.0416),
	},
	{types.KindCompute, "t3.large"}: {
		"us-east-1": decimal.NewFromFloat(0.0832),
		"us-west-2": decimal.NewFromFloat(0.0832),
	},
	{types.KindDatabase, "db.t3.micro"}: {
		"us-east-1": decimal.NewFromFloat(0.017),
		"us-west-2": decimal.NewFromFloat(0.017),
	},
	{types.KindDatabase, "db.t3.small"}: {
		"us-east-1": decimal.NewFromFloat(0.034),
		"us-west-2": decimal.NewFromFloat(0.034),
	},
}

var gcpTable = Table{
	{types.KindCompute, "n1-standard-1"}: {
		"us-east1": decimal.NewFromFloat(0.0475),
		"us-west1": decimal.NewFromFloat(0.0475),
	},
	{types.KindCompute, "n1-standard-2"}: {
		"us-east1": decimal.NewFromFloat(0.095),
		"us-west1": decimal.NewFromFloat(0.095),
	},
	{types.KindDatabase, "db-f1-micro"}: {
		"us-east1": decimal.NewFromFloat(0.015),
		"us-west1": decimal.NewFromFloat(0.015),
	},
	{types.KindDatabase, "db-g1-small"}: {
		"us-east1": decimal.NewFromFloat(0.025),
		"us-west1": decimal.NewFromFloat(0.025),
	},
}

// FallbackTable returns the static price table for a provider. Unknown
// providers get an empty table, which resolves everything to defaults.
func FallbackTable(provider types.Provider) Table {
	switch provider {
	case types.ProviderAWS:
		return awsTable
	case types.ProviderGCP:
		return gcpTable
	default:
		return Table{}
	}
}

// Entry is one fallback table row, used for display
type Entry struct {
	Kind   types.ResourceKind
	Type   string
	Region string
	Hourly decimal.Decimal
}

// Entries returns the table contents in a stable order
func (t Table) Entries() []Entry {
	var entries []Entry
	for key, regions := range t {
		for region, rate := range regions {
			entries = append(entries, Entry{
				Kind:   key.Kind,
				Type:   key.Type,
				Region: region,
				Hourly: rate,
			})
		}
	}
	sort.Slice(entries, func(i, j int) bool {
		a, b := entries[i], entries[j]
		if a.Kind != b.Kind {
			return a.Kind < b.Kind
		}
		if a.Type != b.Type {
			return a.Type < b.Type
		}
		return a.Region < b.Region
	})
	return entries
}
