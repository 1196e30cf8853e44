// Package output provides output formatting interfaces.
// This package produces human and machine-readable renderings of a cost
// breakdown; it never recalculates or alters values.
package output

import (
	"encoding/json"
	"io"

	"cloudspend/core/types"
	"cloudspend/core/ui"
	"cloudspend/internal/errors"
)

// Format represents output format type
type Format string

const (
	// FormatCLI is a human-readable CLI table
	FormatCLI Format = "cli"

	// FormatJSON is machine-readable JSON
	FormatJSON Format = "json"
)

// Formatter produces output in a specific format
type Formatter interface {
	// Format returns the format type
	Format() Format

	// Render writes the breakdown to w
	Render(w io.Writer, breakdown *types.CostBreakdown) error
}

// Get returns the formatter for a format name
func Get(format string) (Formatter, error) {
	switch Format(format) {
	case FormatCLI, "":
		return &CLIFormatter{}, nil
	case FormatJSON:
		return &JSONFormatter{}, nil
	default:
		return nil, errors.Newf(errors.TypeInput, "unknown output format: %s", format)
	}
}

// CLIFormatter renders a terminal table
type CLIFormatter struct {
	// NoColor disables ANSI colors
	NoColor bool
}

// Format returns the format type
func (f *CLIFormatter) Format() Format {
	return FormatCLI
}

// Render writes the breakdown as a terminal table
func (f *CLIFormatter) Render(w io.Writer, breakdown *types.CostBreakdown) error {
	writer := ui.NewWriter(w, f.NoColor)
	writer.RenderBreakdown(breakdown)
	return nil
}

// JSONFormatter renders indented JSON
type JSONFormatter struct{}

// Format returns the format type
func (f *JSONFormatter) Format() Format {
	return FormatJSON
}

// Render writes the breakdown as JSON
func (f *JSONFormatter) Render(w io.Writer, breakdown *types.CostBreakdown) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(breakdown)
}
