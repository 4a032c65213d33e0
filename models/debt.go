package models

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/hekimalabs/smas_backend/config"
)

// Debt tracks money owed to the branch (debtor) or owed by the branch
// (creditor). SaleId is zero for debts recorded outside a sale.
type Debt struct {
	ID          uint            `gorm:"primary_key" json:"id"`
	BranchId    uint            `gorm:"index;not null" json:"branch_id"`
	CustomerId  uint            `gorm:"index;not null" json:"customer_id"`
	SaleId      uint            `gorm:"index" json:"sale_id"`
	DebtType    DebtType        `gorm:"type:enum('debtor','creditor');not null" json:"debt_type"`
	TotalAmount decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"total_amount"`
	PaidAmount  decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"paid_amount"`
	Visible     *bool           `gorm:"not null;default:true" json:"visible"`
	CreatedAt   time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
}

func (d *Debt) Outstanding() decimal.Decimal {
	return d.TotalAmount.Sub(d.PaidAmount)
}

// ListUnpaidDebts returns visible debts of the given type that still
// have an outstanding balance, oldest first.
func ListUnpaidDebts(ctx context.Context, branchId uint, debtType DebtType) ([]Debt, error) {
	var debts []Debt

	db := config.GetDB()
	err := db.WithContext(ctx).
		Where("branch_id = ? AND visible = ? AND debt_type = ? AND paid_amount < total_amount",
			branchId, true, debtType).
		Order("created_at asc").
		Find(&debts).Error
	if err != nil {
		return nil, err
	}

	return debts, nil
}

// SumNonSaleDebtorDebts totals debtor debts recorded outside a sale in
// [from, to). Sale-linked debts are already counted in sales revenue.
func SumNonSaleDebtorDebts(ctx context.Context, branchId uint, from, to time.Time) (decimal.Decimal, error) {
	var raw decimal.NullDecimal

	db := config.GetDB()
	err := db.WithContext(ctx).Table("debts").
		Select("SUM(total_amount)").
		Where("branch_id = ? AND visible = ? AND debt_type = ? AND sale_id = 0 AND created_at >= ? AND created_at < ?",
			branchId, true, DebtTypeDebtor, from, to).
		Scan(&raw).Error
	if err != nil {
		return decimal.Zero, err
	}
	if !raw.Valid {
		return decimal.Zero, nil
	}
	return raw.Decimal, nil
}

// SumCreditorDebts totals what the branch newly owed suppliers in
// [from, to).
func SumCreditorDebts(ctx context.Context, branchId uint, from, to time.Time) (decimal.Decimal, error) {
	var raw decimal.NullDecimal

	db := config.GetDB()
	err := db.WithContext(ctx).Table("debts").
		Select("SUM(total_amount)").
		Where("branch_id = ? AND visible = ? AND debt_type = ? AND created_at >= ? AND created_at < ?",
			branchId, true, DebtTypeCreditor, from, to).
		Scan(&raw).Error
	if err != nil {
		return decimal.Zero, err
	}
	if !raw.Valid {
		return decimal.Zero, nil
	}
	return raw.Decimal, nil
}
