// Package pricing implements the live AWS price source on top of the
// AWS Price List API (GetProducts). Construction and lookups can fail;
// the resolver treats every failure as "no live price" and falls back.
package pricing

import (
	"context"
	"encoding/json"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	pricingapi "github.com/aws/aws-sdk-go-v2/service/pricing"
	pricingtypes "github.com/aws/aws-sdk-go-v2/service/pricing/types"
	"github.com/shopspring/decimal"

	"cloudspend/core/types"
	"cloudspend/internal/errors"
)

// The Price List API is only served out of us-east-1
const pricingEndpointRegion = "us-east-1"

// productsAPI is the slice of the AWS pricing client we use
type productsAPI interface {
	GetProducts(ctx context.Context, params *pricingapi.GetProductsInput, optFns ...func(*pricingapi.Options)) (*pricingapi.GetProductsOutput, error)
}

// Source resolves on-demand AWS prices via the Price List API
type Source struct {
	client productsAPI
}

// NewSource creates a live AWS price source. A credential or connectivity
// error here is not fatal to estimation: callers log it and continue in
// fallback-only mode.
func NewSource(ctx context.Context) (*Source, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(pricingEndpointRegion))
	if err != nil {
		return nil, errors.Wrap(errors.TypeNetwork, "loading AWS configuration", err)
	}
	return &Source{client: pricingapi.NewFromConfig(cfg)}, nil
}

// Provider returns the cloud provider this source prices
func (s *Source) Provider() types.Provider {
	return types.ProviderAWS
}

// HourlyRate looks up the on-demand hourly USD rate for an instance type.
// found is false when the region has no known location name or the API
// returned no matching product.
func (s *Source) HourlyRate(ctx context.Context, kind types.ResourceKind, typeID, region string) (decimal.Decimal, bool, error) {
	location, ok := LocationName(region)
	if !ok {
		return decimal.Zero, false, nil
	}

	serviceCode, filters := productFilters(kind, typeID, location)
	out, err := s.client.GetProducts(ctx, &pricingapi.GetProductsInput{
		ServiceCode: aws.String(serviceCode),
		Filters:     filters,
		MaxResults:  aws.Int32(1),
	})
	if err != nil {
		return decimal.Zero, false, errors.Wrap(errors.TypeNetwork, "querying AWS Price List API", err)
	}
	if len(out.PriceList) == 0 {
		return decimal.Zero, false, nil
	}

	return parseOnDemandUSD(out.PriceList[0])
}

// productFilters builds the TERM_MATCH filter set for a resource kind.
// The filters pin the dimensions that would otherwise multiply the result
// set: shared-tenancy Linux for EC2, single-AZ MySQL for RDS.
func productFilters(kind types.ResourceKind, typeID, location string) (string, []pricingtypes.Filter) {
	if kind == types.KindDatabase {
		return "AmazonRDS", []pricingtypes.Filter{
			termMatch("instanceType", typeID),
			termMatch("location", location),
			termMatch("deploymentOption", "Single-AZ"),
			termMatch("databaseEngine", "MySQL"),
		}
	}
	return "AmazonEC2", []pricingtypes.Filter{
		termMatch("instanceType", typeID),
		termMatch("location", location),
		termMatch("tenancy", "Shared"),
		termMatch("operatingSystem", "Linux"),
		termMatch("preInstalledSw", "NA"),
		termMatch("capacitystatus", "Used"),
	}
}

func termMatch(field, value string) pricingtypes.Filter {
	return pricingtypes.Filter{
		Type:  pricingtypes.FilterTypeTermMatch,
		Field: aws.String(field),
		Value: aws.String(value),
	}
}

// priceDocument is the slice of a Price List product document we read
type priceDocument struct {
	Terms struct {
		OnDemand map[string]struct {
			PriceDimensions map[string]struct {
				Unit         string            `json:"unit"`
				PricePerUnit map[string]string `json:"pricePerUnit"`
			} `json:"priceDimensions"`
		} `json:"OnDemand"`
	} `json:"terms"`
}

// parseOnDemandUSD extracts the first positive on-demand USD rate from a
// product document. Free dimensions (zero rates) are skipped.
func parseOnDemandUSD(doc string) (decimal.Decimal, bool, error) {
	var product priceDocument
	if err := json.Unmarshal([]byte(doc), &product); err != nil {
		return decimal.Zero, false, errors.Wrap(errors.TypeInternal, "parsing price document", err)
	}

	for _, term := range product.Terms.OnDemand {
		for _, dim := range term.PriceDimensions {
			usd, ok := dim.PricePerUnit["USD"]
			if !ok {
				continue
			}
			rate, err := decimal.NewFromString(usd)
			if err != nil {
				continue
			}
			if rate.IsPositive() {
				return rate, true, nil
			}
		}
	}
	return decimal.Zero, false, nil
}
