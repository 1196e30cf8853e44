// Package cmd - estimate command
package cmd

import (
	"context"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"cloudspend/adapters/manifest"
	awspricing "cloudspend/clouds/aws/pricing"
	"cloudspend/core/estimator"
	"cloudspend/core/output"
	"cloudspend/core/types"
	"cloudspend/internal/config"
	"cloudspend/internal/logging"
)

var (
	cloudName    string
	envName      string
	enableDB     bool
	outputFormat string
	livePricing  bool
	manifestPath string
)

// estimateCmd represents the estimate command
var estimateCmd = &cobra.Command{
	Use:   "estimate",
	Short: "Estimate monthly and yearly spend for a deployment",
	Long: `Estimate the recurring cost of a deployment sized for an environment
tier. The deployment can be described with flags or with an HCL manifest.

Estimation never fails on pricing gaps: unknown types, regions, or an
unreachable pricing API degrade to documented fallback rates. The only
hard error is an unsupported cloud provider.

Examples:
  cloudspend estimate --cloud aws --env dev
  cloudspend estimate --cloud gcp --env prod --db
  cloudspend estimate --manifest deploy.hcl --format json
  cloudspend estimate --cloud aws --env staging --live`,
	RunE: runEstimate,
}

func init() {
	estimateCmd.Flags().StringVarP(&cloudName, "cloud", "c", "aws", "cloud provider (aws, gcp)")
	estimateCmd.Flags().StringVarP(&envName, "env", "e", "dev", "environment tier (dev, staging, prod)")
	estimateCmd.Flags().BoolVar(&enableDB, "db", false, "include a managed database")
	estimateCmd.Flags().StringVarP(&outputFormat, "format", "f", "", "output format (cli, json)")
	estimateCmd.Flags().BoolVar(&livePricing, "live", false, "consult the cloud pricing API before fallback rates")
	estimateCmd.Flags().StringVarP(&manifestPath, "manifest", "m", "", "HCL deployment manifest")
}

func runEstimate(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	cfg := config.Get()

	req, err := buildRequest()
	if err != nil {
		return err
	}

	est := estimator.New(estimatorOptions(ctx, cfg, req.Provider)...)

	breakdown, err := est.Estimate(ctx, req)
	if err != nil {
		return err
	}

	format := outputFormat
	if format == "" {
		format = cfg.Output.DefaultFormat
	}
	formatter, err := output.Get(format)
	if err != nil {
		return err
	}
	if cli, ok := formatter.(*output.CLIFormatter); ok {
		cli.NoColor = cfg.Output.NoColor
	}

	return formatter.Render(os.Stdout, breakdown)
}

// buildRequest assembles the estimation request from the manifest when
// given, otherwise from flags.
func buildRequest() (estimator.Request, error) {
	if manifestPath != "" {
		m, err := manifest.Load(manifestPath)
		if err != nil {
			return estimator.Request{}, err
		}
		return m.Deployment.Request(), nil
	}

	return estimator.Request{
		Provider: types.Provider(strings.ToLower(cloudName)),
		Tier:     types.Tier(strings.ToLower(envName)),
		EnableDB: enableDB,
	}, nil
}

// estimatorOptions wires the live price source when requested. Source
// construction failure only downgrades to fallback rates; it never
// blocks the estimate.
func estimatorOptions(ctx context.Context, cfg *config.Config, provider types.Provider) []estimator.Option {
	opts := []estimator.Option{
		estimator.WithLookupTimeout(time.Duration(cfg.Pricing.LookupTimeoutSeconds) * time.Second),
	}

	if !livePricing && !cfg.Pricing.LiveEnabled {
		return opts
	}
	if provider != types.ProviderAWS {
		// only AWS has a live source; GCP always prices from the table
		return opts
	}

	source, err := awspricing.NewSource(ctx)
	if err != nil {
		logging.Warn("live pricing unavailable, using fallback rates", zap.Error(err))
		return opts
	}
	return append(opts, estimator.WithSource(source))
}
