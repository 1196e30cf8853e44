// Package cmd provides the CLI commands for cloudspend.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"cloudspend/internal/config"
	"cloudspend/internal/logging"
)

var (
	cfgFile string
	verbose bool
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "cloudspend",
	Short: "Estimate recurring cloud deployment spend",
	Long: `cloudspend estimates the recurring monthly and yearly spend of a
compute+storage(+database) deployment on AWS or GCP, given only an
environment tier and a handful of toggles.

Figures are best-effort on-demand estimates, not billing data.

Examples:
  cloudspend estimate --cloud aws --env dev
  cloudspend estimate --cloud gcp --env prod --db --format json
  cloudspend estimate --manifest deploy.hcl
  cloudspend pricing show --cloud aws`,
}

// Execute runs the CLI
func Execute() error {
	defer logging.Sync()
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.cloudspend.json)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")

	// Add subcommands
	rootCmd.AddCommand(estimateCmd)
	rootCmd.AddCommand(pricingCmd)
	rootCmd.AddCommand(versionCmd)
}

func initConfig() {
	if cfgFile != "" {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
		config.Set(cfg)
	}

	// Initialize logging
	cfg := config.Get()
	if verbose {
		cfg.Logging.Level = "debug"
	}
	if err := logging.Initialize(cfg.Logging); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing logging: %v\n", err)
	}
}

// versionCmd prints version information
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("cloudspend version 0.1.0")
	},
}
