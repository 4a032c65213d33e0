package models

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/hekimalabs/smas_backend/config"
)

type Purchase struct {
	ID           uint            `gorm:"primary_key" json:"id"`
	BranchId     uint            `gorm:"index;not null" json:"branch_id"`
	ProductId    uint            `gorm:"index;not null" json:"product_id"`
	SupplierName string          `gorm:"size:255" json:"supplier_name"`
	Quantity     decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"quantity"`
	BuyingPrice  decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"buying_price"`
	TotalAmount  decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"total_amount"`
	PaidAmount   decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"paid_amount"`
	Paid         *bool           `gorm:"not null;default:true" json:"paid"`
	Visible      *bool           `gorm:"not null;default:true" json:"visible"`
	CreatedAt    time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
}

func CountUnpaidPurchases(ctx context.Context, branchId uint) (int64, error) {
	var count int64

	db := config.GetDB()
	err := db.WithContext(ctx).Model(&Purchase{}).
		Where("branch_id = ? AND visible = ? AND paid = ?", branchId, true, false).
		Count(&count).Error
	if err != nil {
		return 0, err
	}

	return count, nil
}
