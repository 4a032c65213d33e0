package models

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/hekimalabs/smas_backend/config"
)

// sumColumn totals one decimal column over visible rows of a
// branch-scoped table in [from, to).
func sumColumn(ctx context.Context, table string, column string, branchId uint, from, to time.Time) (decimal.Decimal, error) {
	var raw decimal.NullDecimal

	db := config.GetDB()
	err := db.WithContext(ctx).Table(table).
		Select("SUM("+column+")").
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
