package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func newVendorsCmd(opts *rootOptions) *cobra.Command {
	var category string

	cmd := &cobra.Command{
		Use:   "vendors",
		Short: "List known vendors",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			model, err := opts.model()
			if err != nil {
				return err
			}
			cat := model.Catalog()

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, "VENDOR\tCATEGORY\tAVG PRICE\tPOSITION")
			for _, name := range cat.Vendors(category) {
				p, _ := cat.Lookup(name)
				fmt.Fprintf(tw, "%s\t%s\t$%.2f\t%s\n", name, p.Category, p.AvgPricePerUnit, p.MarketPosition)
			}
			return tw.Flush()
		},
	}

	cmd.Flags().StringVarP(&category, "category", "c", "", "only list vendors in this category")

	return cmd
}

func newCategoriesCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List vendor categories",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			model, err := opts.model()
			if err != nil {
				return err
			}

			for _, c := range model.Catalog().Categories() {
				fmt.Fprintln(cmd.OutOrStdout(), c)
			}
			return nil
		},
	}
}
