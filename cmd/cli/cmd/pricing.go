// Package cmd - pricing command group
package cmd

import (
	"os"
	"strings"

	"github.com/spf13/cobra"

	"cloudspend/core/pricing"
	"cloudspend/core/types"
	"cloudspend/core/ui"
	"cloudspend/internal/config"
	"cloudspend/internal/errors"
)

// pricingCmd groups pricing data commands
var pricingCmd = &cobra.Command{
	Use:   "pricing",
	Short: "Inspect pricing data",
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

var pricingShowCloud string

// pricingShowCmd dumps the static fallback table for a provider
var pricingShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the static fallback price table for a provider",
	Long: `Show the hourly on-demand rates used when no live pricing source is
available. These rates back every estimate that cannot be priced live.`,
	RunE: runPricingShow,
}

func init() {
	pricingShowCmd.Flags().StringVarP(&pricingShowCloud, "cloud", "c", "aws", "cloud provider (aws, gcp)")
	pricingCmd.AddCommand(pricingShowCmd)
}

func runPricingShow(cmd *cobra.Command, args []string) error {
	provider := types.Provider(strings.ToLower(pricingShowCloud))
	if !provider.IsValid() {
		return errors.Newf(errors.TypeInput, "unsupported cloud provider: %s", pricingShowCloud)
	}

	writer := ui.NewWriter(os.Stdout, config.Get().Output.NoColor)
	writer.Header("Fallback Price Table: " + strings.ToUpper(provider.String()))

	table := writer.NewTable("Kind", "Type", "Region", "Hourly (USD)")
	for _, entry := range pricing.FallbackTable(provider).Entries() {
		table.AddRow(
			entry.Kind.String(),
			entry.Type,
			entry.Region,
			entry.Hourly.String(),
		)
	}
	table.Render()

	writer.Println("")
	writer.Note("Defaults for unknown identifiers: compute $%s/h, database $%s/h",
		pricing.DefaultComputeHourly.String(), pricing.DefaultDatabaseHourly.String())
	return nil
}
