package models

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Account struct {
	ID        uint            `gorm:"primary_key" json:"id"`
	BranchId  uint            `gorm:"index;not null" json:"branch_id"`
	Name      string          `gorm:"size:100;not null" json:"name"`
	Type      string          `gorm:"size:50;default:'cash'" json:"type"`
	Balance   decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"balance"`
	Visible   *bool           `gorm:"not null;default:true" json:"visible"`
	CreatedAt time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
}

// AdjustAccountBalance moves an account balance inside the caller's
// transaction. Withdrawals that would overdraw the account fail the
// whole transaction.
func AdjustAccountBalance(tx *gorm.DB, branchId uint, accountId uint, delta decimal.Decimal) error {
	var account Account

	err := tx.Clauses(lockForUpdate()).
		Where("branch_id = ? AND id = ?", branchId, accountId).
		First(&account).Error
	if err != nil {
		return err
	}

	newBalance := account.Balance.Add(delta)
	if newBalance.IsNegative() {
		return errors.New("insufficient account balance")
	}

	return tx.Model(&Account{}).
		Where("id = ?", account.ID).
		UpdateColumn("balance", newBalance).Error
}
