// Package sizing maps an environment tier to concrete resource identifiers.
// The tables are the single source of truth for what gets priced; pricing
// never influences sizing.
package sizing

import (
	"cloudspend/core/types"
)

// Sizing identifies the resources to price for one deployment
type Sizing struct {
	// Region is the cloud region resources are placed in
	Region string `json:"region"`

	// ComputeType is the compute instance type identifier
	ComputeType string `json:"compute_type"`

	// DBType is the database instance type identifier
	DBType string `json:"db_type"`

	// InstanceCount is the number of compute instances
	InstanceCount int `json:"instance_count"`
}

// Region, instance type and database type per (provider, tier). Each table
// defines entries for every provider and tier; identifier vocabularies are
// provider-specific and never shared.
var (
	regionTable = map[types.Provider]map[types.Tier]string{
		types.ProviderAWS: {
			types.TierDev:     "us-east-1",
			types.TierStaging: "us-west-2",
			types.TierProd:    "us-west-2",
		},
		types.ProviderGCP: {
			types.TierDev:     "us-east1",
			types.TierStaging: "us-west1",
			types.TierProd:    "us-west1",
		},
	}

	computeTable = map[types.Provider]map[types.Tier]string{
		types.ProviderAWS: {
			types.TierDev:     "t3.medium",
			types.TierStaging: "t3.large",
			types.TierProd:    "t3.large",
		},
		types.ProviderGCP: {
			types.TierDev:     "n1-standard-1",
			types.TierStaging: "n1-standard-2",
			types.TierProd:    "n1-standard-2",
		},
	}

	databaseTable = map[types.Provider]map[types.Tier]string{
		types.ProviderAWS: {
			types.TierDev:     "db.t3.micro",
			types.TierStaging: "db.t3.small",
			types.TierProd:    "db.t3.small",
		},
		types.ProviderGCP: {
			types.TierDev:     "db-f1-micro",
			types.TierStaging: "db-g1-small",
			types.TierProd:    "db-g1-small",
		},
	}
)

// Resolve returns the resources to price for a provider and tier.
//
// Estimation is best-effort: an unrecognized tier degrades to the
// provider's dev-tier row, and an unrecognized provider degrades to the
// AWS dev-tier identifiers. Callers that need a hard failure on bad input
// validate the provider before resolving.
func Resolve(provider types.Provider, tier types.Tier) Sizing {
	count := 1
	if tier == types.TierProd {
		// prod runs a pair of instances; every other tier runs one
		count = 2
	}

	return Sizing{
		Region:        lookup(regionTable, provider, tier, "us-east-1"),
		ComputeType:   lookup(computeTable, provider, tier, "t3.medium"),
		DBType:        lookup(databaseTable, provider, tier, "db.t3.micro"),
		InstanceCount: count,
	}
}

func lookup(table map[types.Provider]map[types.Tier]string, provider types.Provider, tier types.Tier, fallback string) string {
	rows, ok := table[provider]
	if !ok {
		return fallback
	}
	if v, ok := rows[tier]; ok {
		return v
	}
	// unknown tier: size like dev
	if v, ok := rows[types.TierDev]; ok {
		return v
	}
	return fallback
}
