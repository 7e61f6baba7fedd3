//go:build !integration

package contract

import (
	"errors"
	"math"
	"testing"
	"time"

	"saasStackAnalyzer/business/catalog"
	"saasStackAnalyzer/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func validInput() domain.ContractInput {
	return domain.ContractInput{
		Vendor:               "Salesforce",
		ContractLengthMonths: 36,
		Quantity:             600,
		TotalValue:           129_600_000,
	}
}

func TestSet_AddSnapshotsProfile(t *testing.T) {
	s := NewSet(catalog.Default())

	c, err := s.Add(validInput())
	require.NoError(t, err)

	assert.Equal(t, "CRM", c.Category)
	assert.Equal(t, 150.0, c.AvgPricePerUnit)
	assert.Equal(t, domain.MarketPositionPremium, c.MarketPosition)
	assert.Equal(t, "user", c.UnitLabel)
	assert.Empty(t, c.MeteredProduct)
	assert.InDelta(t, 6000.0, c.ActualPricePerUnit, 1e-9)
	assert.Equal(t, 1, s.Len())
}

func TestSet_SnapshotIgnoresLaterCatalogChanges(t *testing.T) {
	base := catalog.New(map[string]domain.VendorProfile{
		"Tool": {Category: "CRM", Features: []string{"a"}, AvgPricePerUnit: 10},
	})
	s := NewSet(base)
	c, err := s.Add(domain.ContractInput{Vendor: "Tool", ContractLengthMonths: 12, Quantity: 1, TotalValue: 120})
	require.NoError(t, err)

	c.Features[0] = "changed"
	_ = base.With(map[string]domain.VendorProfile{"Tool": {Category: "Other", AvgPricePerUnit: 99}})

	stored := s.Contracts()[0]
	assert.Equal(t, []string{"a"}, stored.Features)
	assert.Equal(t, 10.0, stored.AvgPricePerUnit)
}

func TestSet_UnknownVendorUsesDefault(t *testing.T) {
	s := NewSet(nil)

	c, err := s.Add(domain.ContractInput{Vendor: "Acme Tool", ContractLengthMonths: 12, Quantity: 10, TotalValue: 1200})
	require.NoError(t, err)

	assert.Equal(t, catalog.DefaultCategory, c.Category)
	assert.Equal(t, 0.0, c.AvgPricePerUnit)
	assert.Equal(t, domain.MarketPositionStandard, c.MarketPosition)
	assert.Empty(t, c.Features)
}

func TestSet_MeteredUnits(t *testing.T) {
	s := NewSet(catalog.Default())

	c, err := s.Add(domain.ContractInput{
		Vendor:               "Datadog",
		ContractLengthMonths: 12,
		Quantity:             100000,
		TotalValue:           60000,
		MeteredProduct:       "Real user monitoring",
	})
	require.NoError(t, err)
	assert.Equal(t, "sessions", c.UnitLabel)
	assert.Equal(t, "Real user monitoring", c.MeteredProduct)

	c, err = s.Add(domain.ContractInput{Vendor: "New Relic", ContractLengthMonths: 12, Quantity: 720, TotalValue: 9000})
	require.NoError(t, err)
	assert.Equal(t, "host-hours (any size)", c.UnitLabel)
	assert.Equal(t, catalog.DefaultMeteredProduct, c.MeteredProduct)
}

func TestSet_AddRejectsInvalidInput(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*domain.ContractInput)
		want   error
	}{
		{"missing vendor", func(in *domain.ContractInput) { in.Vendor = "  " }, ErrMissingVendor},
		{"zero quantity", func(in *domain.ContractInput) { in.Quantity = 0 }, ErrInvalidQuantity},
		{"negative quantity", func(in *domain.ContractInput) { in.Quantity = -3 }, ErrInvalidQuantity},
		{"nan quantity", func(in *domain.ContractInput) { in.Quantity = math.NaN() }, ErrInvalidQuantity},
		{"zero value", func(in *domain.ContractInput) { in.TotalValue = 0 }, ErrInvalidValue},
		{"infinite value", func(in *domain.ContractInput) { in.TotalValue = math.Inf(1) }, ErrInvalidValue},
		{"huge quantity", func(in *domain.ContractInput) { in.Quantity = 1e308 }, ErrInvalidQuantity},
		{"value above bound", func(in *domain.ContractInput) { in.TotalValue = MaxTotalValue * 2 }, ErrInvalidValue},
		{"missing length", func(in *domain.ContractInput) { in.ContractLengthMonths = 0 }, ErrInvalidLength},
		{"odd length", func(in *domain.ContractInput) { in.ContractLengthMonths = 18 }, ErrInvalidLength},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSet(catalog.Default())
			in := validInput()
			tt.mutate(&in)

			_, err := s.Add(in)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.want))
			assert.True(t, errors.Is(err, domain.ErrInvalidInput))
			assert.Equal(t, 0, s.Len())
		})
	}
}

func TestSet_IDsUniqueAndIncreasing(t *testing.T) {
	s := NewSet(catalog.Default())
	s.now = fixedClock(time.UnixMilli(1_700_000_000_000))

	var last int64
	for i := 0; i < 5; i++ {
		c, err := s.Add(validInput())
		require.NoError(t, err)
		assert.Greater(t, c.ID, last)
		last = c.ID
	}
	assert.Equal(t, int64(1_700_000_000_004), last)
}

func TestSet_RemoveKeepsOrder(t *testing.T) {
	s := NewSet(catalog.Default())
	var ids []int64
	for _, v := range []string{"Slack", "Zoom", "Jira", "Figma"} {
		in := validInput()
		in.Vendor = v
		c, err := s.Add(in)
		require.NoError(t, err)
		ids = append(ids, c.ID)
	}

	assert.True(t, s.Remove(ids[1]))
	assert.False(t, s.Remove(ids[1]))

	var vendors []string
	for _, c := range s.Contracts() {
		vendors = append(vendors, c.Vendor)
	}
	assert.Equal(t, []string{"Slack", "Jira", "Figma"}, vendors)
}

func TestSet_ContractsIsACopy(t *testing.T) {
	s := NewSet(catalog.Default())
	_, err := s.Add(validInput())
	require.NoError(t, err)

	out := s.Contracts()
	out[0].Vendor = "changed"

	assert.Equal(t, "Salesforce", s.Contracts()[0].Vendor)
}

func TestSet_FeaturesAreNotShared(t *testing.T) {
	s := NewSet(catalog.Default())
	added, err := s.Add(domain.ContractInput{Vendor: "Slack", ContractLengthMonths: 12, Quantity: 10, TotalValue: 1200})
	require.NoError(t, err)
	require.NotEmpty(t, added.Features)
	want := added.Features[0]

	added.Features[0] = "edited via Add result"
	out := s.Contracts()
	out[0].Features[0] = "edited via Contracts"

	assert.Equal(t, want, s.Contracts()[0].Features[0])
	assert.Equal(t, want, catalog.Default().Resolve("Slack").Features[0])
}

func TestSet_Clear(t *testing.T) {
	s := NewSet(catalog.Default())
	_, _ = s.Add(validInput())
	_, _ = s.Add(validInput())

	s.Clear()
	assert.Equal(t, 0, s.Len())
	assert.Empty(t, s.Contracts())
}
