//go:build !integration

package report

import (
	"bytes"
	"testing"

	"saasStackAnalyzer/business/catalog"
	"saasStackAnalyzer/business/contract"
	"saasStackAnalyzer/business/pricing"
	"saasStackAnalyzer/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMoney(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "$0"},
		{999.4, "$999"},
		{999.5, "$1,000"},
		{1234567, "$1,234,567"},
		{42600600, "$42,600,600"},
		{-5100, "$-5,100"},
		{-2.5, "$-2"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Money(tt.in), "Money(%v)", tt.in)
	}
}

func TestSmallFormatters(t *testing.T) {
	assert.Equal(t, "$6000", Price(6000))
	assert.Equal(t, "$95", Price(94.5))
	assert.Equal(t, "37–52%", Band(domain.DiscountRange{Low: 37, High: 52}))
	assert.Equal(t, "12.5%", Percent(12.46, 1))
	assert.Equal(t, "600", Quantity(600))
	assert.Equal(t, "2.5", Quantity(2.5))
}

func TestImpact(t *testing.T) {
	assert.Equal(t, "-$42,600,600", Impact(domain.Expectation{AnnualImpact: 42600600, Impact: domain.ImpactLoss}))
	assert.Equal(t, "+$5,100", Impact(domain.Expectation{AnnualImpact: -5100, Impact: domain.ImpactGain}))
	assert.Equal(t, "~$0", Impact(domain.Expectation{AnnualImpact: 90, Impact: domain.ImpactNeutral}))
}

func salesforceReport(t *testing.T) domain.StackReport {
	t.Helper()
	set := contract.NewSet(catalog.Default())
	_, err := set.Add(domain.ContractInput{Vendor: "Salesforce", ContractLengthMonths: 36, Quantity: 600, TotalValue: 129_600_000})
	require.NoError(t, err)
	_, err = set.Add(domain.ContractInput{Vendor: "Acme Tool", ContractLengthMonths: 12, Quantity: 10, TotalValue: 1200})
	require.NoError(t, err)

	return pricing.NewModel(catalog.Default(), pricing.DefaultConfig()).Evaluate(set.Contracts())
}

func TestRows_SalesforceScenario(t *testing.T) {
	rows := Rows(salesforceReport(t))
	require.Len(t, rows, 2)

	assert.Equal(t, Row{
		Vendor:        "Salesforce",
		Volume:        "600 user",
		YourPrice:     "$6000",
		MarketAverage: "$150",
		Discount:      "37–52%",
		ExpectedRange: "$72 – $95",
		Midpoint:      "$83",
		Status:        "Above Expected",
		Impact:        "-$42,600,600",
	}, rows[0])

	assert.Equal(t, "Unknown", rows[1].Status)
	assert.Equal(t, "$10", rows[1].MarketAverage)
}

func TestSummarize(t *testing.T) {
	s := Summarize(domain.Savings{TotalSavings: 1266, TotalSpend: 22800, SavingsPercentage: 1266.0 / 22800 * 100})
	assert.Equal(t, "Potential Annual Savings $1,266, 5.6% of $22,800 annual spend", s.String())
}

func TestWriteTable(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteTable(&buf, salesforceReport(t)))

	out := buf.String()
	assert.Contains(t, out, "VENDOR")
	assert.Contains(t, out, "Salesforce")
	assert.Contains(t, out, "-$42,600,600")
	assert.Contains(t, out, "Potential Annual Savings $")
}
