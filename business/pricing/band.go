package pricing

import "saasStackAnalyzer/domain"

// baseBand picks the starting discount range by volume
func baseBand(seats float64) domain.DiscountRange {
	switch {
	case seats >= 5000:
		return domain.DiscountRange{Low: 25, High: 35}
	case seats >= 500:
		return domain.DiscountRange{Low: 15, High: 25}
	case seats >= 50:
		return domain.DiscountRange{Low: 10, High: 15}
	case seats >= 1:
		return domain.DiscountRange{Low: 5, High: 10}
	default:
		return domain.DiscountRange{}
	}
}

func termAdjustment(months int) domain.DiscountRange {
	switch {
	case months >= 36:
		return domain.DiscountRange{Low: 15, High: 20}
	case months >= 24:
		return domain.DiscountRange{Low: 10, High: 15}
	default:
		return domain.DiscountRange{}
	}
}

// volumeKicker stacks on top of baseBand. Large volume is counted twice.
func volumeKicker(seats float64) float64 {
	switch {
	case seats >= 500:
		return 10
	case seats >= 100:
		return 5
	default:
		return 0
	}
}

func shift(r domain.DiscountRange, low, high float64) domain.DiscountRange {
	return domain.DiscountRange{Low: r.Low + low, High: r.High + high}
}

func normalize(r domain.DiscountRange) domain.DiscountRange {
	r.Low = clamp(r.Low, MinDiscountPct, MaxDiscountPct)
	r.High = clamp(r.High, MinDiscountPct, MaxDiscountPct)
	if r.Low > r.High {
		r.Low, r.High = r.High, r.Low
	}
	return r
}

// DiscountRange runs the additive discount steps for one contract
func (m *Model) DiscountRange(c domain.Contract) domain.DiscountRange {
	seats := c.Quantity

	r := baseBand(seats)

	term := termAdjustment(c.ContractLengthMonths)
	r = shift(r, term.Low, term.High)

	kick := volumeKicker(seats)
	r = shift(r, kick, kick)

	cat := m.cfg.CategoryAdjustments[c.Category]
	r = shift(r, cat, cat)

	pos := m.cfg.PositionAdjustments[c.MarketPosition]
	r = shift(r, pos, pos)

	return normalize(r)
}
