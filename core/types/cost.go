// Package types - Cost breakdown types
package types

import "github.com/shopspring/decimal"

// ComputeCost is the itemized compute charge
type ComputeCost struct {
	// Instances is the number of instances priced
	Instances int `json:"instances"`

	// Type is the instance type identifier
	Type string `json:"type"`

	// Hourly is the on-demand hourly rate per instance
	Hourly decimal.Decimal `json:"hourly"`

	// Monthly is the total compute charge per month
	Monthly decimal.Decimal `json:"monthly"`
}

// StorageCost is the itemized block storage charge
type StorageCost struct {
	// GB is the total provisioned storage
	GB int `json:"gb"`

	// Monthly is the storage charge per month
	Monthly decimal.Decimal `json:"monthly"`
}

// TransferCost is the estimated data transfer charge
type TransferCost struct {
	// Monthly is the transfer charge per month
	Monthly decimal.Decimal `json:"monthly"`
}

// DatabaseCost is the itemized managed database charge
type DatabaseCost struct {
	// Enabled reports whether a database was requested
	Enabled bool `json:"enabled"`

	// Type is the database instance type, empty when disabled
	Type string `json:"type,omitempty"`

	// Hourly is the on-demand hourly rate, zero when disabled
	Hourly decimal.Decimal `json:"hourly"`

	// Monthly is the database charge per month, zero when disabled
	Monthly decimal.Decimal `json:"monthly"`
}

// CostBreakdown is the itemized result of one estimation call.
// It is a plain value: created fresh per call, never mutated after
// construction.
type CostBreakdown struct {
	// Provider is the estimated cloud provider
	Provider Provider `json:"provider"`

	// Tier is the environment tier the sizing was derived from
	Tier Tier `json:"environment"`

	// Region is the region all resources were priced in
	Region string `json:"region"`

	// Currency is the cost currency
	Currency Currency `json:"currency"`

	// Compute is the compute line item
	Compute ComputeCost `json:"compute"`

	// Storage is the storage line item
	Storage StorageCost `json:"storage"`

	// DataTransfer is the data transfer line item
	DataTransfer TransferCost `json:"data_transfer"`

	// Database is the database line item
	Database DatabaseCost `json:"database"`

	// TotalMonthly is the sum of all line items
	TotalMonthly decimal.Decimal `json:"total_monthly"`

	// TotalYearly is TotalMonthly * 12, held by construction
	TotalYearly decimal.Decimal `json:"total_yearly"`
}
