package models

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

type TruckOrder struct {
	ID         uint            `gorm:"primary_key" json:"id"`
	BranchId   uint            `gorm:"index;not null" json:"branch_id"`
	CustomerId uint            `gorm:"index" json:"customer_id"`
	Route      string          `gorm:"size:255" json:"route"`
	Amount     decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"amount"`
	Visible    *bool           `gorm:"not null;default:true" json:"visible"`
	CreatedAt  time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
}

func SumTruckOrders(ctx context.Context, branchId uint, from, to time.Time) (decimal.Decimal, error) {
	return sumColumn(ctx, "truck_orders", "amount", branchId, from, to)
}
