// Package ui - Cost breakdown rendering
package ui

import (
	"fmt"

	"cloudspend/core/types"
)

// Disclaimer is appended to every rendered summary
const Disclaimer = "Note: These are approximate estimates based on on-demand rates. " +
	"Actual costs may vary. Reserved instances can reduce costs by 30-60%."

// RenderBreakdown prints a cost breakdown as a component table with
// monthly and yearly totals. Values are rounded to 2 decimal places for
// display only; the breakdown itself is never modified.
func (w *Writer) RenderBreakdown(b *types.CostBreakdown) {
	w.Header("Cost Estimation Summary")
	w.Println("Provider: %s    Environment: %s    Region: %s",
		b.Provider, b.Tier, b.Region)
	w.Println("")

	table := w.NewTable("Component", "Details", fmt.Sprintf("Monthly Cost (%s)", b.Currency))
	table.AddRow(
		"Compute",
		fmt.Sprintf("%dx %s", b.Compute.Instances, b.Compute.Type),
		"$"+b.Compute.Monthly.StringFixed(2),
	)
	table.AddRow(
		"Storage",
		fmt.Sprintf("%d GB", b.Storage.GB),
		"$"+b.Storage.Monthly.StringFixed(2),
	)
	table.AddRow(
		"Data Transfer",
		"Estimated",
		"$"+b.DataTransfer.Monthly.StringFixed(2),
	)
	if b.Database.Enabled {
		table.AddRow(
			"Database",
			b.Database.Type,
			"$"+b.Database.Monthly.StringFixed(2),
		)
	}
	table.AddSeparator()
	table.AddRow("TOTAL (Monthly)", "", "$"+b.TotalMonthly.StringFixed(2))
	table.AddRow("TOTAL (Yearly)", "", "$"+b.TotalYearly.StringFixed(2))
	table.Render()

	w.Println("")
	w.Note("%s", Disclaimer)
}
