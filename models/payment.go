package models

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// Payment is an outgoing payment that is not an expense, e.g. a
// supplier settlement.
type Payment struct {
	ID        uint            `gorm:"primary_key" json:"id"`
	BranchId  uint            `gorm:"index;not null" json:"branch_id"`
	Name      string          `gorm:"size:255;not null" json:"name"`
	Amount    decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"amount"`
	Visible   *bool           `gorm:"not null;default:true" json:"visible"`
	CreatedAt time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
}

func SumPayments(ctx context.Context, branchId uint, from, to time.Time) (decimal.Decimal, error) {
	return sumColumn(ctx, "payments", "amount", branchId, from, to)
}
