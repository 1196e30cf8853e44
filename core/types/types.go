// Package types defines core domain types shared across all layers.
// This package contains NO business logic - only type definitions.
package types

// Provider represents a cloud provider
type Provider string

const (
	ProviderAWS     Provider = "aws"
	ProviderGCP     Provider = "gcp"
	ProviderUnknown Provider = "unknown"
)

// String returns the string representation of the provider
func (p Provider) String() string {
	return string(p)
}

// IsValid checks if the provider is a known provider
func (p Provider) IsValid() bool {
	switch p {
	case ProviderAWS, ProviderGCP:
		return true
	default:
		return false
	}
}

// Tier represents a deployment environment tier
type Tier string

const (
	TierDev     Tier = "dev"
	TierStaging Tier = "staging"
	TierProd    Tier = "prod"
)

// String returns the string representation of the tier
func (t Tier) String() string {
	return string(t)
}

// IsValid checks if the tier is a known environment tier
func (t Tier) IsValid() bool {
	switch t {
	case TierDev, TierStaging, TierProd:
		return true
	default:
		return false
	}
}

// ResourceKind classifies a priceable resource
type ResourceKind string

const (
	// KindCompute is a virtual machine instance
	KindCompute ResourceKind = "compute"

	// KindDatabase is a managed database instance
	KindDatabase ResourceKind = "database"
)

// String returns the string representation of the resource kind
func (k ResourceKind) String() string {
	return string(k)
}

// Currency represents a currency code
type Currency string

const (
	CurrencyUSD Currency = "USD"
)

// String returns the string representation
func (c Currency) String() string {
	return string(c)
}

// Region represents a cloud region
type Region string

// String returns the string representation
func (r Region) String() string {
	return string(r)
}
