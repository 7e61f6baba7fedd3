package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"saasStackAnalyzer/business/contract"
	"saasStackAnalyzer/business/report"
	"saasStackAnalyzer/domain"
	"saasStackAnalyzer/pkg/logger"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

const (
	outputTable = "table"
	outputJSON  = "json"
)

type contractsFile struct {
	Contracts []domain.ContractInput `yaml:"contracts"`
}

type analyzeOutput struct {
	domain.StackReport
	Rows    []report.Row   `json:"rows"`
	Summary report.Summary `json:"summary"`
	// Totals rounded to cents the way stored analyses keep them
	TotalSavings decimal.Decimal `json:"total_savings"`
	TotalSpend   decimal.Decimal `json:"total_spend"`
}

func loadContracts(path string) ([]domain.ContractInput, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open contracts file: %w", err)
	}
	defer f.Close()

	var file contractsFile
	if err := yaml.NewDecoder(f).Decode(&file); err != nil {
		return nil, fmt.Errorf("failed to parse contracts file: %w", err)
	}

	return file.Contracts, nil
}

func newAnalyzeCmd(opts *rootOptions) *cobra.Command {
	var (
		file   string
		output string
	)

	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Score a set of contracts",
		Long: `Reads contracts from a YAML file and prints the analysis.

The file lists contracts under a "contracts" key:

  contracts:
    - vendor: Salesforce
      contract_length_months: 36
      quantity: 600
      total_value: 129600000

Invalid contracts are skipped with a warning. At least two valid contracts
are needed.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if output != outputTable && output != outputJSON {
				return fmt.Errorf("unknown output format %q", output)
			}

			inputs, err := loadContracts(file)
			if err != nil {
				return err
			}

			model, err := opts.model()
			if err != nil {
				return err
			}

			ws := contract.NewWorkspace(contract.NewSet(model.Catalog()))
			for i, in := range inputs {
				if _, err := ws.Set.Add(in); err != nil {
					logger.Debug("skipping contract", "index", i, "vendor", in.Vendor, err)
					fmt.Fprintf(cmd.ErrOrStderr(), "skipping contract %d (%s): %v\n", i+1, in.Vendor, err)
				}
			}

			if !ws.Fire(contract.EventAnalyze) {
				return fmt.Errorf("need at least %d valid contracts, got %d", contract.MinContractsToAnalyze, ws.Set.Len())
			}

			r := model.Evaluate(ws.Set.Contracts())

			if output == outputJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(analyzeOutput{
					StackReport:  r,
					Rows:         report.Rows(r),
					Summary:      report.Summarize(r.Savings),
					TotalSavings: decimal.NewFromFloat(r.Savings.TotalSavings).Round(2),
					TotalSpend:   decimal.NewFromFloat(r.Savings.TotalSpend).Round(2),
				})
			}

			return report.WriteTable(cmd.OutOrStdout(), r)
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "YAML file with contracts")
	cmd.Flags().StringVarP(&output, "output", "o", outputTable, "output format (table, json)")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}
