package models

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/hekimalabs/smas_backend/config"
)

type Expense struct {
	ID        uint            `gorm:"primary_key" json:"id"`
	BranchId  uint            `gorm:"index;not null" json:"branch_id"`
	Name      string          `gorm:"size:255;not null" json:"name" binding:"required"`
	Amount    decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"amount"`
	Paid      *bool           `gorm:"not null;default:true" json:"paid"`
	Visible   *bool           `gorm:"not null;default:true" json:"visible"`
	CreatedAt time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
}

func SumExpenses(ctx context.Context, branchId uint, from, to time.Time) (decimal.Decimal, error) {
	return sumColumn(ctx, "expenses", "amount", branchId, from, to)
}

// CountUnpaidExpenses counts visible expenses still marked unpaid,
// regardless of age.
func CountUnpaidExpenses(ctx context.Context, branchId uint) (int64, error) {
	var count int64

	db := config.GetDB()
	err := db.WithContext(ctx).Model(&Expense{}).
		Where("branch_id = ? AND visible = ? AND paid = ?", branchId, true, false).
		Count(&count).Error
	if err != nil {
		return 0, err
	}

	return count, nil
}
