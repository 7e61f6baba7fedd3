package domain

const DefaultUnitLabel = "user"

// ContractInput is what the user types into the add form
type ContractInput struct {
	Vendor               string  `json:"vendor" yaml:"vendor"`
	ContractLengthMonths int     `json:"contract_length_months" yaml:"contract_length_months"`
	Quantity             float64 `json:"quantity" yaml:"quantity"`
	TotalValue           float64 `json:"total_value" yaml:"total_value"`
	// MeteredProduct selects the unit for metered categories. Ignored elsewhere.
	MeteredProduct string `json:"metered_product,omitempty" yaml:"metered_product,omitempty"`
}

// Contract is an accepted contract with a snapshot of its vendor's profile
type Contract struct {
	ID                   int64          `json:"id"`
	Vendor               string         `json:"vendor"`
	Category             string         `json:"category"`
	Features             []string       `json:"features"`
	AvgPricePerUnit      float64        `json:"avg_price_per_unit"`
	MarketPosition       MarketPosition `json:"market_position"`
	ContractLengthMonths int            `json:"contract_length_months"`
	Quantity             float64        `json:"quantity"`
	TotalValue           float64        `json:"total_value"`
	UnitLabel            string         `json:"unit_label"`
	MeteredProduct       string         `json:"metered_product,omitempty"`
	ActualPricePerUnit   float64        `json:"actual_price_per_unit"`
}

// PricePerUnitPerMonth is total value spread over units and months
func PricePerUnitPerMonth(totalValue, quantity float64, months int) float64 {
	return totalValue / quantity / float64(months)
}

// Clone returns a copy that owns its Features slice
func (c Contract) Clone() Contract {
	out := c
	out.Features = append([]string(nil), c.Features...)
	if out.Features == nil {
		out.Features = []string{}
	}
	return out
}

// CloneContracts deep-copies a contract list. Nil stays nil.
func CloneContracts(contracts []Contract) []Contract {
	if contracts == nil {
		return nil
	}
	out := make([]Contract, len(contracts))
	for i, c := range contracts {
		out[i] = c.Clone()
	}
	return out
}
