package pricing

import (
	"saasStackAnalyzer/business/catalog"
	"saasStackAnalyzer/domain"
)

// Model scores contracts against expected market pricing. It is stateless
// after construction and safe for concurrent use.
type Model struct {
	catalog *catalog.Catalog
	cfg     Config
}

func NewModel(cat *catalog.Catalog, cfg Config) *Model {
	if cat == nil {
		cat = catalog.Default()
	}
	return &Model{
		catalog: cat,
		cfg:     cfg.clone(),
	}
}

func (m *Model) Catalog() *catalog.Catalog {
	return m.catalog
}

// WithCatalog returns a model with the same adjustments over another vendor table
func (m *Model) WithCatalog(cat *catalog.Catalog) *Model {
	return NewModel(cat, m.cfg)
}

// Expect computes the target band, status and annual impact of one contract
func (m *Model) Expect(c domain.Contract) domain.Expectation {
	r := m.DiscountRange(c)

	sticker := c.AvgPricePerUnit
	if sticker <= 0 {
		sticker = c.ActualPricePerUnit
	}

	minTarget := sticker * (1 - r.High/100)
	maxTarget := sticker * (1 - r.Low/100)
	mid := (minTarget + maxTarget) / 2

	impact := roundHalfUp((c.ActualPricePerUnit - mid) * c.Quantity * 12)

	return domain.Expectation{
		ContractID:    c.ID,
		Vendor:        c.Vendor,
		DiscountRange: r,
		Sticker:       sticker,
		MinTarget:     minTarget,
		MaxTarget:     maxTarget,
		TargetMid:     mid,
		Status:        classify(c, minTarget, maxTarget),
		AnnualImpact:  impact,
		Impact:        impactDirection(impact),
	}
}

func classify(c domain.Contract, minTarget, maxTarget float64) domain.DealStatus {
	switch {
	case c.AvgPricePerUnit == 0:
		return domain.DealStatusUnknown
	case c.ActualPricePerUnit <= minTarget:
		return domain.DealStatusGoodDeal
	case c.ActualPricePerUnit <= maxTarget:
		return domain.DealStatusMarketRate
	default:
		return domain.DealStatusAboveExpected
	}
}

func impactDirection(impact float64) domain.ImpactDirection {
	switch {
	case impact > ImpactDeadZone:
		return domain.ImpactLoss
	case impact < -ImpactDeadZone:
		return domain.ImpactGain
	default:
		return domain.ImpactNeutral
	}
}

// Savings aggregates spend and overspend across the set. Underspend is not
// netted against overspend, and contracts without a market reference price
// only count toward spend.
func (m *Model) Savings(contracts []domain.Contract) domain.Savings {
	var s domain.Savings

	for _, c := range contracts {
		annual := c.Quantity * 12
		s.TotalSpend += c.ActualPricePerUnit * annual

		if c.AvgPricePerUnit <= 0 {
			continue
		}

		mid := m.Expect(c).TargetMid
		if c.ActualPricePerUnit > mid {
			s.TotalSavings += (c.ActualPricePerUnit - mid) * annual
		}
	}

	if s.TotalSpend > 0 {
		s.SavingsPercentage = s.TotalSavings / s.TotalSpend * 100
	}

	return s
}

// Evaluate builds the full report for a contract set
func (m *Model) Evaluate(contracts []domain.Contract) domain.StackReport {
	report := domain.StackReport{
		Contracts:    append([]domain.Contract{}, domain.CloneContracts(contracts)...),
		Expectations: make([]domain.Expectation, 0, len(contracts)),
		Savings:      m.Savings(contracts),
		Overlaps:     FeatureOverlaps(contracts),
	}

	for _, c := range contracts {
		report.Expectations = append(report.Expectations, m.Expect(c))
	}

	return report
}
