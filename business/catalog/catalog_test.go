//go:build !integration

package catalog

import (
	"sort"
	"testing"

	"saasStackAnalyzer/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve_KnownVendor(t *testing.T) {
	c := Default()

	p := c.Resolve("Salesforce")
	assert.Equal(t, "CRM", p.Category)
	assert.Equal(t, 150.0, p.AvgPricePerUnit)
	assert.Equal(t, domain.MarketPositionPremium, p.MarketPosition)
	assert.Equal(t, []string{"Contact Management", "Sales Pipeline", "Email Marketing"}, p.Features)
}

func TestResolve_UnknownVendorFallsBack(t *testing.T) {
	c := Default()

	for _, name := range []string{"Acme Tool", "salesforce", " Salesforce", ""} {
		p := c.Resolve(name)
		assert.Equal(t, DefaultProfile(), p, name)
	}

	_, ok := c.Lookup("slack")
	assert.False(t, ok, "lookup is case-sensitive")
}

func TestResolve_ReturnsCopies(t *testing.T) {
	c := Default()

	p := c.Resolve("HubSpot")
	p.Features[0] = "mutated"

	again := c.Resolve("HubSpot")
	assert.Equal(t, "Contact Management", again.Features[0])
}

func TestCategories_SortedAndDeduplicated(t *testing.T) {
	c := New(map[string]domain.VendorProfile{
		"b": {Category: "Zeta"},
		"a": {Category: "Alpha"},
		"c": {Category: "Zeta"},
		"d": {Category: "Beta"},
	})

	assert.Equal(t, []string{"Alpha", "Beta", "Zeta"}, c.Categories())
}

func TestCategories_DefaultTable(t *testing.T) {
	cats := Default().Categories()

	require.NotEmpty(t, cats)
	assert.True(t, sort.StringsAreSorted(cats))
	assert.Contains(t, cats, "CRM")
	assert.Contains(t, cats, MeteredCategory)
	assert.NotContains(t, cats, DefaultCategory)
}

func TestVendors_FilterByCategory(t *testing.T) {
	c := Default()

	assert.Equal(t, []string{"Freshsales", "HubSpot", "Pipedrive", "Salesforce", "Zoho CRM"}, c.Vendors("CRM"))
	assert.Empty(t, c.Vendors("Nope"))
	assert.Len(t, c.Vendors(""), c.Len())
}

func TestWith_OverridesWithoutTouchingOriginal(t *testing.T) {
	base := Default()
	extended := base.With(map[string]domain.VendorProfile{
		"Acme Tool":  {Category: "Cloud Infrastructure", Features: []string{"Compute"}, AvgPricePerUnit: 12, MarketPosition: domain.MarketPositionBudget},
		"Salesforce": {Category: "CRM", AvgPricePerUnit: 99, MarketPosition: domain.MarketPositionStandard},
	})

	assert.Equal(t, 150.0, base.Resolve("Salesforce").AvgPricePerUnit)
	assert.Equal(t, 99.0, extended.Resolve("Salesforce").AvgPricePerUnit)

	_, ok := base.Lookup("Acme Tool")
	assert.False(t, ok)
	assert.Equal(t, "Cloud Infrastructure", extended.Resolve("Acme Tool").Category)
	assert.Contains(t, extended.Categories(), "Cloud Infrastructure")
}

func TestUnitLabel(t *testing.T) {
	tests := []struct {
		name        string
		category    string
		product     string
		wantLabel   string
		wantProduct string
	}{
		{"seat based", "CRM", "", "user", ""},
		{"seat based ignores product", "CRM", "Real user monitoring", "user", ""},
		{"metered explicit", MeteredCategory, "Real user monitoring", "sessions", "Real user monitoring"},
		{"metered default", MeteredCategory, "", "host-hours (any size)", DefaultMeteredProduct},
		{"metered unknown product", MeteredCategory, "Quantum", "host-hours (any size)", DefaultMeteredProduct},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			label, product := UnitLabel(tt.category, tt.product)
			assert.Equal(t, tt.wantLabel, label)
			assert.Equal(t, tt.wantProduct, product)
		})
	}
}
