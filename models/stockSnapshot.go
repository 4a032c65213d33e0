package models

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/hekimalabs/smas_backend/config"
)

// StockSnapshot is an append-only end-of-day record of a product's
// stock level. Snapshots are never soft deleted.
type StockSnapshot struct {
	ID         uint            `gorm:"primary_key" json:"id"`
	BranchId   uint            `gorm:"index;not null" json:"branch_id"`
	ProductId  uint            `gorm:"index;not null" json:"product_id"`
	Stock      decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"stock"`
	CapturedAt time.Time       `gorm:"index;not null" json:"captured_at"`
	CreatedAt  time.Time       `gorm:"autoCreateTime" json:"created_at"`
}

// CaptureBranchStock writes one snapshot row per visible product,
// stamped with capturedAt. A branch that already has snapshots for the
// same calendar day is skipped so the minute trigger stays idempotent.
func CaptureBranchStock(ctx context.Context, branchId uint, capturedAt time.Time) (int64, error) {
	db := config.GetDB()

	dayStart := time.Date(capturedAt.Year(), capturedAt.Month(), capturedAt.Day(), 0, 0, 0, 0, capturedAt.Location())

	var existing int64
	err := db.WithContext(ctx).Model(&StockSnapshot{}).
		Where("branch_id = ? AND captured_at >= ? AND captured_at < ?",
			branchId, dayStart, dayStart.AddDate(0, 0, 1)).
		Count(&existing).Error
	if err != nil {
		return 0, err
	}
	if existing > 0 {
		return 0, nil
	}

	var products []Product
	err = db.WithContext(ctx).
		Where("branch_id = ? AND visible = ?", branchId, true).
		Find(&products).Error
	if err != nil {
		return 0, err
	}
	if len(products) == 0 {
		return 0, nil
	}

	snapshots := make([]StockSnapshot, 0, len(products))
	for _, p := range products {
		snapshots = append(snapshots, StockSnapshot{
			BranchId:   branchId,
			ProductId:  p.ID,
			Stock:      p.Stock,
			CapturedAt: capturedAt,
		})
	}

	err = db.WithContext(ctx).CreateInBatches(snapshots, 200).Error
	if err != nil {
		return 0, err
	}

	return int64(len(snapshots)), nil
}
