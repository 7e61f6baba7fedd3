package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

type MarketPosition string

const (
	MarketPositionPremium  MarketPosition = "Premium"
	MarketPositionStandard MarketPosition = "Standard"
	MarketPositionBudget   MarketPosition = "Budget"
)

func (p MarketPosition) Valid() bool {
	switch p {
	case MarketPositionPremium, MarketPositionStandard, MarketPositionBudget:
		return true
	}
	return false
}

// VendorProfile is the reference data for one vendor. Profiles are values;
// callers get copies and never share the Features backing array.
type VendorProfile struct {
	Category        string         `json:"category" yaml:"category"`
	Features        []string       `json:"features" yaml:"features"`
	AvgPricePerUnit float64        `json:"avg_price_per_unit" yaml:"avg_price_per_unit"`
	MarketPosition  MarketPosition `json:"market_position" yaml:"market_position"`
}

// Clone returns a copy that owns its Features slice
func (p VendorProfile) Clone() VendorProfile {
	out := p
	out.Features = append([]string(nil), p.Features...)
	if out.Features == nil {
		out.Features = []string{}
	}
	return out
}

// CREATE TABLE public.vendors (
//     id                  UUID PRIMARY KEY,
//     name                TEXT NOT NULL UNIQUE,
//     category            TEXT NOT NULL,
//     features            TEXT[],
//     avg_price_per_user  NUMERIC DEFAULT 0,
//     market_position     TEXT DEFAULT 'Standard',
//     created_at          TIMESTAMPTZ DEFAULT NOW(),
//     updated_at          TIMESTAMPTZ DEFAULT NOW()
// );

type Vendor struct {
	ID              uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	Name            string         `gorm:"column:name;type:text;uniqueIndex;not null" json:"name"`
	Category        string         `gorm:"column:category;type:text;not null;index" json:"category"`
	Features        pq.StringArray `gorm:"column:features;type:text[]" json:"features"`
	AvgPricePerUser float64        `gorm:"column:avg_price_per_user;type:numeric;default:0" json:"avg_price_per_user"`
	MarketPosition  MarketPosition `gorm:"column:market_position;type:text;default:Standard" json:"market_position"`
	CreatedAt       time.Time      `gorm:"column:created_at" json:"created_at"`
	UpdatedAt       time.Time      `gorm:"column:updated_at" json:"updated_at"`
}

func (Vendor) TableName() string {
	return "vendors"
}

// Profile converts the stored record into reference data for the catalog
func (v Vendor) Profile() VendorProfile {
	return VendorProfile{
		Category:        v.Category,
		Features:        []string(v.Features),
		AvgPricePerUnit: v.AvgPricePerUser,
		MarketPosition:  v.MarketPosition,
	}.Clone()
}
