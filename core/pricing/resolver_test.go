package pricing

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cloudspend/core/types"
)

// stubSource is a scriptable live source
type stubSource struct {
	provider types.Provider
	rate     decimal.Decimal
	found    bool
	err      error
	calls    int
}

func (s *stubSource) Provider() types.Provider { return s.provider }

func (s *stubSource) HourlyRate(ctx context.Context, kind types.ResourceKind, typeID, region string) (decimal.Decimal, bool, error) {
	s.calls++
	return s.rate, s.found, s.err
}

func TestHourlyRateFromFallbackTable(t *testing.T) {
	r := NewResolver(types.ProviderAWS)

	rate := r.HourlyRate(context.Background(), types.KindCompute, "t3.medium", "us-east-1")
	assert.True(t, decimal.NewFromFloat(0.0416).Equal(rate))

	rate = r.HourlyRate(context.Background(), types.KindDatabase, "db.t3.small", "us-west-2")
	assert.True(t, decimal.NewFromFloat(0.034).Equal(rate))
}

func TestHourlyRateGCPFallbackTable(t *testing.T) {
	r := NewResolver(types.ProviderGCP)

	rate := r.HourlyRate(context.Background(), types.KindCompute, "n1-standard-2", "us-west1")
	assert.True(t, decimal.NewFromFloat(0.095).Equal(rate))

	rate = r.HourlyRate(context.Background(), types.KindDatabase, "db-g1-small", "us-west1")
	assert.True(t, decimal.NewFromFloat(0.025).Equal(rate))
}

func TestHourlyRateUnknownTypeUsesDefault(t *testing.T) {
	r := NewResolver(types.ProviderAWS)

	rate := r.HourlyRate(context.Background(), types.KindCompute, "t4g.nano", "us-east-1")
	assert.True(t, DefaultComputeHourly.Equal(rate))

	rate = r.HourlyRate(context.Background(), types.KindDatabase, "db.r5.large", "us-east-1")
	assert.True(t, DefaultDatabaseHourly.Equal(rate))
}

func TestHourlyRateUnknownRegionUsesDefault(t *testing.T) {
	r := NewResolver(types.ProviderAWS)

	rate := r.HourlyRate(context.Background(), types.KindCompute, "t3.medium", "eu-central-1")
	assert.True(t, DefaultComputeHourly.Equal(rate))
}

func TestHourlyRatePrefersLiveSource(t *testing.T) {
	src := &stubSource{
		provider: types.ProviderAWS,
		rate:     decimal.NewFromFloat(0.0511),
		found:    true,
	}
	r := NewResolver(types.ProviderAWS, WithSource(src))

	rate := r.HourlyRate(context.Background(), types.KindCompute, "t3.medium", "us-east-1")

	assert.Equal(t, 1, src.calls)
	assert.True(t, decimal.NewFromFloat(0.0511).Equal(rate))
}

func TestHourlyRateLiveErrorDegradesToFallback(t *testing.T) {
	src := &stubSource{
		provider: types.ProviderAWS,
		err:      errors.New("connection refused"),
	}
	r := NewResolver(types.ProviderAWS, WithSource(src))

	rate := r.HourlyRate(context.Background(), types.KindCompute, "t3.medium", "us-east-1")

	assert.Equal(t, 1, src.calls)
	assert.True(t, decimal.NewFromFloat(0.0416).Equal(rate))
}

func TestHourlyRateLiveMissDegradesToFallback(t *testing.T) {
	src := &stubSource{provider: types.ProviderAWS, found: false}
	r := NewResolver(types.ProviderAWS, WithSource(src))

	rate := r.HourlyRate(context.Background(), types.KindCompute, "t3.large", "us-west-2")
	assert.True(t, decimal.NewFromFloat(0.0832).Equal(rate))
}

func TestHourlyRateLiveZeroPriceDegradesToFallback(t *testing.T) {
	// a zero from the API is treated as a miss: every estimate stays positive
	src := &stubSource{provider: types.ProviderAWS, rate: decimal.Zero, found: true}
	r := NewResolver(types.ProviderAWS, WithSource(src))

	rate := r.HourlyRate(context.Background(), types.KindCompute, "t3.medium", "us-east-1")
	assert.True(t, decimal.NewFromFloat(0.0416).Equal(rate))
}

func TestWithSourceIgnoresOtherProvider(t *testing.T) {
	src := &stubSource{
		provider: types.ProviderAWS,
		rate:     decimal.NewFromFloat(9.99),
		found:    true,
	}
	r := NewResolver(types.ProviderGCP, WithSource(src))

	rate := r.HourlyRate(context.Background(), types.KindCompute, "n1-standard-1", "us-east1")

	assert.Equal(t, 0, src.calls)
	assert.True(t, decimal.NewFromFloat(0.0475).Equal(rate))
}

func TestFallbackTableEntriesArePositiveAndSorted(t *testing.T) {
	for _, p := range []types.Provider{types.ProviderAWS, types.ProviderGCP} {
		entries := FallbackTable(p).Entries()
		require.NotEmpty(t, entries)
		for _, e := range entries {
			assert.True(t, e.Hourly.IsPositive(), "%s %s %s", p, e.Type, e.Region)
		}
		for i := 1; i < len(entries); i++ {
			prev, cur := entries[i-1], entries[i]
			assert.True(t, prev.Kind < cur.Kind ||
				(prev.Kind == cur.Kind && prev.Type < cur.Type) ||
				(prev.Kind == cur.Kind && prev.Type == cur.Type && prev.Region < cur.Region))
		}
	}
}

func TestFallbackTableUnknownProviderIsEmpty(t *testing.T) {
	assert.Empty(t, FallbackTable(types.ProviderUnknown))
}
