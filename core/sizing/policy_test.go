package sizing

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"cloudspend/core/types"
)

func TestResolveAllCombinations(t *testing.T) {
	tests := []struct {
		name     string
		provider types.Provider
		tier     types.Tier
		want     Sizing
	}{
		{
			name:     "aws dev",
			provider: types.ProviderAWS,
			tier:     types.TierDev,
			want:     Sizing{Region: "us-east-1", ComputeType: "t3.medium", DBType: "db.t3.micro", InstanceCount: 1},
		},
		{
			name:     "aws staging",
			provider: types.ProviderAWS,
			tier:     types.TierStaging,
			want:     Sizing{Region: "us-west-2", ComputeType: "t3.large", DBType: "db.t3.small", InstanceCount: 1},
		},
		{
			name:     "aws prod",
			provider: types.ProviderAWS,
			tier:     types.TierProd,
			want:     Sizing{Region: "us-west-2", ComputeType: "t3.large", DBType: "db.t3.small", InstanceCount: 2},
		},
		{
			name:     "gcp dev",
			provider: types.ProviderGCP,
			tier:     types.TierDev,
			want:     Sizing{Region: "us-east1", ComputeType: "n1-standard-1", DBType: "db-f1-micro", InstanceCount: 1},
		},
		{
			name:     "gcp staging",
			provider: types.ProviderGCP,
			tier:     types.TierStaging,
			want:     Sizing{Region: "us-west1", ComputeType: "n1-standard-2", DBType: "db-g1-small", InstanceCount: 1},
		},
		{
			name:     "gcp prod",
			provider: types.ProviderGCP,
			tier:     types.TierProd,
			want:     Sizing{Region: "us-west1", ComputeType: "n1-standard-2", DBType: "db-g1-small", InstanceCount: 2},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Resolve(tt.provider, tt.tier))
		})
	}
}

func TestResolveInstanceCountOnlyProdDoubles(t *testing.T) {
	for _, p := range []types.Provider{types.ProviderAWS, types.ProviderGCP} {
		for _, tier := range []types.Tier{types.TierDev, types.TierStaging, types.TierProd} {
			got := Resolve(p, tier).InstanceCount
			if tier == types.TierProd {
				assert.Equal(t, 2, got, "%s/%s", p, tier)
			} else {
				assert.Equal(t, 1, got, "%s/%s", p, tier)
			}
		}
	}
}

func TestResolveUnknownTierFallsBackToDev(t *testing.T) {
	got := Resolve(types.ProviderGCP, types.Tier("qa"))

	dev := Resolve(types.ProviderGCP, types.TierDev)
	assert.Equal(t, dev, got)
}

func TestResolveUnknownProviderFallsBackToDefaults(t *testing.T) {
	got := Resolve(types.Provider("oracle"), types.TierDev)

	assert.Equal(t, "us-east-1", got.Region)
	assert.Equal(t, "t3.medium", got.ComputeType)
	assert.Equal(t, "db.t3.micro", got.DBType)
	assert.Equal(t, 1, got.InstanceCount)
}
