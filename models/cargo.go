package models

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

type Cargo struct {
	ID          uint            `gorm:"primary_key" json:"id"`
	BranchId    uint            `gorm:"index;not null" json:"branch_id"`
	CustomerId  uint            `gorm:"index" json:"customer_id"`
	Description string          `gorm:"size:255" json:"description"`
	Amount      decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"amount"`
	Visible     *bool           `gorm:"not null;default:true" json:"visible"`
	CreatedAt   time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
}

func SumCargos(ctx context.Context, branchId uint, from, to time.Time) (decimal.Decimal, error) {
	return sumColumn(ctx, "cargos", "amount", branchId, from, to)
}
