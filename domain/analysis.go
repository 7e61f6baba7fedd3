package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// CREATE TABLE public.contract_analyses (
//     id             UUID PRIMARY KEY,
//     contracts      JSONB NOT NULL,
//     total_savings  NUMERIC DEFAULT 0,
//     total_spend    NUMERIC DEFAULT 0,
//     created_at     TIMESTAMPTZ DEFAULT NOW(),
//     updated_at     TIMESTAMPTZ DEFAULT NOW()
// );

type Analysis struct {
	ID           uuid.UUID                     `gorm:"type:uuid;primaryKey" json:"id"`
	Contracts    datatypes.JSONSlice[Contract] `gorm:"column:contracts;type:jsonb;not null" json:"contracts"`
	TotalSavings decimal.Decimal               `gorm:"column:total_savings;type:numeric;default:0" json:"total_savings"`
	TotalSpend   decimal.Decimal               `gorm:"column:total_spend;type:numeric;default:0" json:"total_spend"`
	CreatedAt    time.Time                     `gorm:"column:created_at;index" json:"created_at"`
	UpdatedAt    time.Time                     `gorm:"column:updated_at" json:"updated_at"`
}

func (Analysis) TableName() string {
	return "contract_analyses"
}
