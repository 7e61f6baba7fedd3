package domain

type DealStatus string

const (
	DealStatusUnknown       DealStatus = "Unknown"
	DealStatusGoodDeal      DealStatus = "Good Deal"
	DealStatusMarketRate    DealStatus = "Market Rate"
	DealStatusAboveExpected DealStatus = "Above Expected"
)

type ImpactDirection string

const (
	ImpactLoss    ImpactDirection = "loss"
	ImpactGain    ImpactDirection = "gain"
	ImpactNeutral ImpactDirection = "neutral"
)

// DiscountRange is a percentage band, Low <= High
type DiscountRange struct {
	Low  float64 `json:"low"`
	High float64 `json:"high"`
}

type Expectation struct {
	ContractID    int64           `json:"contract_id"`
	Vendor        string          `json:"vendor"`
	DiscountRange DiscountRange   `json:"discount_range"`
	Sticker       float64         `json:"sticker"`
	MinTarget     float64         `json:"min_target"`
	MaxTarget     float64         `json:"max_target"`
	TargetMid     float64         `json:"target_mid"`
	Status        DealStatus      `json:"status"`
	AnnualImpact  float64         `json:"annual_impact"`
	Impact        ImpactDirection `json:"impact"`
}

type Savings struct {
	TotalSavings      float64 `json:"total_savings"`
	TotalSpend        float64 `json:"total_spend"`
	SavingsPercentage float64 `json:"savings_percentage"`
}

type FeatureOverlap struct {
	VendorA        string   `json:"vendor_a"`
	VendorB        string   `json:"vendor_b"`
	CommonFeatures []string `json:"common_features"`
	Count          int      `json:"count"`
}

// StackReport is everything the results view needs
type StackReport struct {
	Contracts    []Contract       `json:"contracts"`
	Expectations []Expectation    `json:"expectations"`
	Savings      Savings          `json:"savings"`
	Overlaps     []FeatureOverlap `json:"overlaps"`
}
