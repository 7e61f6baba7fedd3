package pricing

import "saasStackAnalyzer/domain"

const (
	MinDiscountPct = 0
	MaxDiscountPct = 60

	// impacts within this many dollars either way display as ~$0
	ImpactDeadZone = 100
)

// Config holds the tunable parts of the discount model. Category adjustments
// are a lookup table so new categories need no code change.
type Config struct {
	CategoryAdjustments map[string]float64
	PositionAdjustments map[domain.MarketPosition]float64
}

// DefaultConfig matches the reference behaviour: only Development Tools is
// treated as more negotiable.
func DefaultConfig() Config {
	return Config{
		CategoryAdjustments: map[string]float64{
			"Development Tools": 5,
			"AI & ML":           -3,
			"Security & IT":     -3,
			"Design & Creative": -3,
		},
		PositionAdjustments: map[domain.MarketPosition]float64{
			domain.MarketPositionPremium:  -3,
			domain.MarketPositionStandard: 0,
			domain.MarketPositionBudget:   2,
		},
	}
}

func (c Config) clone() Config {
	out := Config{
		CategoryAdjustments: make(map[string]float64, len(c.CategoryAdjustments)),
		PositionAdjustments: make(map[domain.MarketPosition]float64, len(c.PositionAdjustments)),
	}
	for k, v := range c.CategoryAdjustments {
		out.CategoryAdjustments[k] = v
	}
	for k, v := range c.PositionAdjustments {
		out.PositionAdjustments[k] = v
	}
	return out
}
