package output

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cloudspend/core/estimator"
	"cloudspend/core/types"
	"cloudspend/core/ui"
)

func sampleBreakdown(t *testing.T, enableDB bool) *types.CostBreakdown {
	t.Helper()
	b, err := estimator.New().Estimate(context.Background(), estimator.Request{
		Provider: types.ProviderAWS,
		Tier:     types.TierDev,
		EnableDB: enableDB,
	})
	require.NoError(t, err)
	return b
}

func TestGetFormatter(t *testing.T) {
	f, err := Get("cli")
	require.NoError(t, err)
	assert.Equal(t, FormatCLI, f.Format())

	f, err = Get("json")
	require.NoError(t, err)
	assert.Equal(t, FormatJSON, f.Format())

	// empty defaults to cli
	f, err = Get("")
	require.NoError(t, err)
	assert.Equal(t, FormatCLI, f.Format())

	_, err = Get("xml")
	assert.Error(t, err)
}

func TestCLIFormatterRendersAllRows(t *testing.T) {
	var buf bytes.Buffer
	f := &CLIFormatter{NoColor: true}
	require.NoError(t, f.Render(&buf, sampleBreakdown(t, true)))

	out := buf.String()
	assert.Contains(t, out, "Compute")
	assert.Contains(t, out, "1x t3.medium")
	assert.Contains(t, out, "Storage")
	assert.Contains(t, out, "50 GB")
	assert.Contains(t, out, "Data Transfer")
	assert.Contains(t, out, "Database")
	assert.Contains(t, out, "db.t3.micro")
	assert.Contains(t, out, "TOTAL (Monthly)")
	assert.Contains(t, out, "TOTAL (Yearly)")
	assert.Contains(t, out, ui.Disclaimer)
}

func TestCLIFormatterOmitsDatabaseRowWhenDisabled(t *testing.T) {
	var buf bytes.Buffer
	f := &CLIFormatter{NoColor: true}
	require.NoError(t, f.Render(&buf, sampleBreakdown(t, false)))

	assert.NotContains(t, buf.String(), "Database")
}

func TestCLIFormatterRoundsForDisplayOnly(t *testing.T) {
	b := sampleBreakdown(t, false)
	before := b.TotalMonthly

	var buf bytes.Buffer
	require.NoError(t, (&CLIFormatter{NoColor: true}).Render(&buf, b))

	// $43.368 displays as $43.37, underlying value untouched
	assert.Contains(t, buf.String(), "$43.37")
	assert.True(t, before.Equal(b.TotalMonthly))
}

func TestJSONFormatterRoundTrips(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, (&JSONFormatter{}).Render(&buf, sampleBreakdown(t, true)))

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "aws", decoded["provider"])
	assert.Contains(t, decoded, "compute")
	assert.Contains(t, decoded, "total_monthly")
	assert.Contains(t, decoded, "total_yearly")
}
