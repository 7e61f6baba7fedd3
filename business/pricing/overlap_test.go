//go:build !integration

package pricing

import (
	"testing"

	"saasStackAnalyzer/business/catalog"
	"saasStackAnalyzer/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func featured(vendor string, features ...string) domain.Contract {
	return domain.Contract{Vendor: vendor, Features: features}
}

func TestFeatureOverlaps_SingleSharedFeature(t *testing.T) {
	cat := catalog.Default()
	contracts := []domain.Contract{
		contractFor(cat, "Mailchimp", 5, 12, 1200),
		contractFor(cat, "Constant Contact", 5, 12, 1200),
	}

	overlaps := FeatureOverlaps(contracts)

	require.Len(t, overlaps, 1)
	assert.Equal(t, domain.FeatureOverlap{
		VendorA:        "Mailchimp",
		VendorB:        "Constant Contact",
		CommonFeatures: []string{"Email Marketing"},
		Count:          1,
	}, overlaps[0])
}

func TestFeatureOverlaps_SyntheticCatalog(t *testing.T) {
	cat := catalog.New(map[string]domain.VendorProfile{
		"Mailchimp": {Category: "Email Marketing", Features: []string{"Email Marketing", "Automation"}, AvgPricePerUnit: 20},
		"HubSpot":   {Category: "CRM", Features: []string{"Contact Management", "Email Marketing"}, AvgPricePerUnit: 100},
	})

	overlaps := FeatureOverlaps([]domain.Contract{
		contractFor(cat, "Mailchimp", 5, 12, 1200),
		contractFor(cat, "HubSpot", 5, 12, 1200),
	})

	require.Len(t, overlaps, 1)
	assert.Equal(t, []string{"Email Marketing"}, overlaps[0].CommonFeatures)
	assert.Equal(t, 1, overlaps[0].Count)
}

func TestFeatureOverlaps_OrderAndOmission(t *testing.T) {
	contracts := []domain.Contract{
		featured("A", "x", "y"),
		featured("B", "z"),
		featured("C", "y", "x"),
		featured("D", "z", "x"),
	}

	overlaps := FeatureOverlaps(contracts)

	assert.Equal(t, []domain.FeatureOverlap{
		{VendorA: "A", VendorB: "C", CommonFeatures: []string{"x", "y"}, Count: 2},
		{VendorA: "A", VendorB: "D", CommonFeatures: []string{"x"}, Count: 1},
		{VendorA: "B", VendorB: "D", CommonFeatures: []string{"z"}, Count: 1},
		{VendorA: "C", VendorB: "D", CommonFeatures: []string{"x"}, Count: 1},
	}, overlaps)
}

func TestFeatureOverlaps_ExactMatchOnly(t *testing.T) {
	overlaps := FeatureOverlaps([]domain.Contract{
		featured("A", "Email Marketing"),
		featured("B", "email marketing", "Email Marketing "),
	})

	assert.Empty(t, overlaps)
}

func TestFeatureOverlaps_SameVendorTwice(t *testing.T) {
	overlaps := FeatureOverlaps([]domain.Contract{
		featured("Slack", "Team Messaging", "File Sharing"),
		featured("Slack", "Team Messaging", "File Sharing"),
	})

	require.Len(t, overlaps, 1)
	assert.Equal(t, 2, overlaps[0].Count)
}

func TestFeatureOverlaps_RepeatedFeatureCountedOnce(t *testing.T) {
	overlaps := FeatureOverlaps([]domain.Contract{
		featured("A", "x", "x", "y"),
		featured("B", "x"),
	})

	require.Len(t, overlaps, 1)
	assert.Equal(t, []string{"x"}, overlaps[0].CommonFeatures)
}

func TestFeatureOverlaps_NoPairReportedTwice(t *testing.T) {
	cat := catalog.Default()
	var contracts []domain.Contract
	for _, v := range []string{"Zoom", "Google Meet", "Microsoft Teams", "Slack", "Discord"} {
		contracts = append(contracts, contractFor(cat, v, 10, 12, 1200))
	}

	seen := map[[2]string]bool{}
	for _, o := range FeatureOverlaps(contracts) {
		assert.False(t, seen[[2]string{o.VendorB, o.VendorA}], "reverse pair reported")
		seen[[2]string{o.VendorA, o.VendorB}] = true
		assert.Equal(t, len(o.CommonFeatures), o.Count)
	}
	assert.NotEmpty(t, seen)
}

func TestFeatureOverlaps_Empty(t *testing.T) {
	assert.Empty(t, FeatureOverlaps(nil))
	assert.Empty(t, FeatureOverlaps([]domain.Contract{featured("A", "x")}))
}
