// Package report turns a stack report into display strings for the table
// and savings banner.
package report

import (
	"fmt"
	"io"
	"math"
	"text/tabwriter"

	"saasStackAnalyzer/domain"
)

type Row struct {
	Vendor        string `json:"vendor"`
	Volume        string `json:"volume"`
	YourPrice     string `json:"your_price"`
	MarketAverage string `json:"market_average"`
	Discount      string `json:"expected_discount"`
	ExpectedRange string `json:"expected_range"`
	Midpoint      string `json:"midpoint"`
	Status        string `json:"status"`
	Impact        string `json:"annual_impact"`
}

type Summary struct {
	Savings    string `json:"savings"`
	Percentage string `json:"percentage"`
	Spend      string `json:"spend"`
}

func (s Summary) String() string {
	return fmt.Sprintf("Potential Annual Savings %s, %s of %s annual spend", s.Savings, s.Percentage, s.Spend)
}

// Impact renders an annual impact: overspend is shown as a loss
func Impact(e domain.Expectation) string {
	switch e.Impact {
	case domain.ImpactLoss:
		return "-" + Money(e.AnnualImpact)
	case domain.ImpactGain:
		return "+" + Money(math.Abs(e.AnnualImpact))
	default:
		return "~$0"
	}
}

// NewRow formats one contract with its expectation
func NewRow(c domain.Contract, e domain.Expectation) Row {
	unit := c.UnitLabel
	if unit == "" {
		unit = domain.DefaultUnitLabel
	}

	return Row{
		Vendor:        c.Vendor,
		Volume:        Quantity(c.Quantity) + " " + unit,
		YourPrice:     Price(c.ActualPricePerUnit),
		MarketAverage: Price(e.Sticker),
		Discount:      Band(e.DiscountRange),
		ExpectedRange: Money(math.Max(0, e.MinTarget)) + " – " + Money(math.Max(0, e.MaxTarget)),
		Midpoint:      Money(e.TargetMid),
		Status:        string(e.Status),
		Impact:        Impact(e),
	}
}

// Rows pairs contracts with expectations by position
func Rows(r domain.StackReport) []Row {
	rows := make([]Row, 0, len(r.Contracts))
	for i, c := range r.Contracts {
		if i >= len(r.Expectations) {
			break
		}
		rows = append(rows, NewRow(c, r.Expectations[i]))
	}
	return rows
}

func Summarize(s domain.Savings) Summary {
	return Summary{
		Savings:    Money(s.TotalSavings),
		Percentage: Percent(s.SavingsPercentage, 1),
		Spend:      Money(s.TotalSpend),
	}
}

// WriteTable prints the analysis table, the savings line and any overlaps
func WriteTable(w io.Writer, r domain.StackReport) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	fmt.Fprintln(tw, "VENDOR\tVOLUME\tYOUR PRICE\tMARKET AVG\tDISCOUNT\tEXPECTED\tMIDPOINT\tSTATUS\tANNUAL IMPACT")
	for _, row := range Rows(r) {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			row.Vendor, row.Volume, row.YourPrice, row.MarketAverage, row.Discount,
			row.ExpectedRange, row.Midpoint, row.Status, row.Impact)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	if _, err := fmt.Fprintf(w, "\n%s\n", Summarize(r.Savings)); err != nil {
		return err
	}

	for _, o := range r.Overlaps {
		if _, err := fmt.Fprintf(w, "Overlap: %s and %s share %d feature(s): %v\n",
			o.VendorA, o.VendorB, o.Count, o.CommonFeatures); err != nil {
			return err
		}
	}

	return nil
}
