package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Adjustment records every stock movement with the before and after
// levels, so the audit trail survives later product edits.
type Adjustment struct {
	ID             uint            `gorm:"primary_key" json:"id"`
	BranchId       uint            `gorm:"index;not null" json:"branch_id"`
	ProductId      uint            `gorm:"index;not null" json:"product_id"`
	UserId         uint            `gorm:"index" json:"user_id"`
	AdjustmentType AdjustmentType  `gorm:"type:enum('increase','decrease');not null" json:"adjustment_type"`
	Quantity       decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"quantity"`
	StockBefore    decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"stock_before"`
	StockAfter     decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"stock_after"`
	Reason         string          `gorm:"size:255" json:"reason"`
	Visible        *bool           `gorm:"not null;default:true" json:"visible"`
	CreatedAt      time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
}
