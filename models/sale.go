package models

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/hekimalabs/smas_backend/config"
)

// Sale is one product line sold at the counter. BuyingPrice is copied
// from the product at sale time so later price edits do not rewrite
// historical cost of goods.
type Sale struct {
	ID          uint            `gorm:"primary_key" json:"id"`
	BranchId    uint            `gorm:"index;not null" json:"branch_id"`
	ProductId   uint            `gorm:"index;not null" json:"product_id"`
	CustomerId  uint            `gorm:"index" json:"customer_id"`
	UserId      uint            `gorm:"index" json:"user_id"`
	SaleType    SaleType        `gorm:"type:enum('cash','credit');default:'cash'" json:"sale_type"`
	Quantity    decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"quantity"`
	BuyingPrice decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"buying_price"`
	Amount      decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"amount"`
	Discount    decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"discount"`
	Profit      decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"profit"`
	Visible     *bool           `gorm:"not null;default:true" json:"visible"`
	CreatedAt   time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
}

// SumSalesAmount totals visible sale amounts for a branch in
// [from, to).
func SumSalesAmount(ctx context.Context, branchId uint, from, to time.Time) (decimal.Decimal, error) {
	return sumColumn(ctx, "sales", "amount", branchId, from, to)
}

// SumSalesCost totals quantity * buying_price over the same window.
func SumSalesCost(ctx context.Context, branchId uint, from, to time.Time) (decimal.Decimal, error) {
	var raw decimal.NullDecimal

	db := config.GetDB()
	err := db.WithContext(ctx).Table("sales").
		Select("SUM(quantity * buying_price)").
		Where("branch_id = ? AND visible = ? AND created_at >= ? AND created_at < ?",
			branchId, true, from, to).
		Scan(&raw).Error
	if err != nil {
		return decimal.Zero, err
	}
	if !raw.Valid {
		return decimal.Zero, nil
	}
	return raw.Decimal, nil
}
