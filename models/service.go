package models

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/hekimalabs/smas_backend/config"
)

// Service is a repair or workshop job. Revenue counts both the labour
// charge and the parts charge.
type Service struct {
	ID          uint            `gorm:"primary_key" json:"id"`
	BranchId    uint            `gorm:"index;not null" json:"branch_id"`
	CustomerId  uint            `gorm:"index" json:"customer_id"`
	DeviceName  string          `gorm:"size:100" json:"device_name"`
	Description string          `gorm:"size:255" json:"description"`
	ServiceCost decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"service_cost"`
	ProductCost decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"product_cost"`
	Status      ServiceStatus   `gorm:"type:enum('incomplete','complete');default:'incomplete'" json:"status"`
	Visible     *bool           `gorm:"not null;default:true" json:"visible"`
	CreatedAt   time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
}

func SumServices(ctx context.Context, branchId uint, from, to time.Time) (decimal.Decimal, error) {
	var raw decimal.NullDecimal

	db := config.GetDB()
	err := db.WithContext(ctx).Table("services").
		Select("SUM(service_cost + product_cost)").
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

func CountIncompleteServices(ctx context.Context, branchId uint) (int64, error) {
	var count int64

	db := config.GetDB()
	err := db.WithContext(ctx).Model(&Service{}).
		Where("branch_id = ? AND visible = ? AND status = ?", branchId, true, ServiceStatusIncomplete).
		Count(&count).Error
	if err != nil {
		return 0, err
	}

	return count, nil
}
