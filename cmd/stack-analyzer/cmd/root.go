// Package cmd provides the commands of the stack-analyzer CLI.
package cmd

import (
	"fmt"
	"os"

	"saasStackAnalyzer/business/catalog"
	"saasStackAnalyzer/business/pricing"
	"saasStackAnalyzer/pkg/logger"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

type rootOptions struct {
	pricingConfig string
	verbose       bool
}

// NewRootCmd builds the command tree
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:   "stack-analyzer",
		Short: "Check SaaS contract pricing against the market",
		Long: `stack-analyzer scores SaaS contracts against expected negotiated pricing,
estimates annual savings and lists overlapping features across vendors.

Examples:
  stack-analyzer analyze -f contracts.yaml
  stack-analyzer analyze -f contracts.yaml --output json
  stack-analyzer vendors --category CRM`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			env := "production"
			if opts.verbose {
				env = "development"
			}
			logger.InitTo(env, os.Stderr)
			decimal.MarshalJSONWithoutQuotes = true
		},
	}

	root.PersistentFlags().StringVar(&opts.pricingConfig, "pricing-config", "", "YAML file with category adjustments and extra vendors")
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "enable verbose output")

	root.AddCommand(newAnalyzeCmd(opts))
	root.AddCommand(newVendorsCmd(opts))
	root.AddCommand(newCategoriesCmd(opts))

	return root
}

// Execute runs the CLI
func Execute() error {
	defer logger.Sync()
	return NewRootCmd().Execute()
}

// model builds the pricing model, applying --pricing-config when given
func (o *rootOptions) model() (*pricing.Model, error) {
	cfg := pricing.DefaultConfig()
	cat := catalog.Default()

	if o.pricingConfig != "" {
		fileCfg, err := pricing.LoadFile(o.pricingConfig)
		if err != nil {
			return nil, fmt.Errorf("failed to load pricing config: %w", err)
		}
		cfg = fileCfg.Apply(cfg)
		cat = cat.With(fileCfg.Vendors)
		logger.Debug("pricing config loaded", "file", o.pricingConfig)
	}

	return pricing.NewModel(cat, cfg), nil
}
