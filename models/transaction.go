package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type TransactionCause string

const (
	TransactionCauseAutomatic TransactionCause = "automatic"
	TransactionCauseManual    TransactionCause = "manual"
)

// Transaction is one ledger line against a branch money account.
// ReferenceType/ReferenceId link automatic lines back to the business
// record that created them, so voiding that record can hide its lines.
type Transaction struct {
	ID              uint             `gorm:"primary_key" json:"id"`
	BranchId        uint             `gorm:"index;not null" json:"branch_id"`
	AccountId       uint             `gorm:"index;not null" json:"account_id"`
	UserId          uint             `gorm:"index" json:"user_id"`
	TransactionType TransactionType  `gorm:"type:enum('deposit','withdraw');not null" json:"transaction_type"`
	Cause           TransactionCause `gorm:"type:enum('automatic','manual');default:'manual'" json:"cause"`
	ReferenceType   string           `gorm:"size:50;index" json:"reference_type"`
	ReferenceId     uint             `gorm:"index" json:"reference_id"`
	Amount          decimal.Decimal  `gorm:"type:decimal(20,4);default:0" json:"amount"`
	Description     string           `gorm:"size:255" json:"description"`
	Visible         *bool            `gorm:"not null;default:true" json:"visible"`
	CreatedAt       time.Time        `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time        `gorm:"autoUpdateTime" json:"updated_at"`
}
