package activities

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/hekimalabs/smas_backend/archive"
	"github.com/hekimalabs/smas_backend/config"
	"github.com/hekimalabs/smas_backend/models"
)

// purgeGraceDays is how long a soft-deleted row or an expired branch
// is kept before physical removal.
const purgeGraceDays = 7

// purgeSoftDeleted removes rows hidden for longer than the grace
// period, table by table. A failing table is logged and the sweep
// moves on; the rows stay for the next hourly pass.
func (s *Scheduler) purgeSoftDeleted(ctx context.Context, tick Tick) error {
	db := config.GetDB()
	cutoff := tick.At.AddDate(0, 0, -purgeGraceDays)

	var total int64
	for _, collection := range models.BranchCollections() {
		if !collection.SoftDelete {
			continue
		}

		result := db.WithContext(ctx).Table(collection.Name).
			Where("visible = ? AND updated_at < ?", false, cutoff).
			Delete(collection.Model)
		if result.Error != nil {
			config.LogError(s.Logger, "sweeper.go", "purgeSoftDeleted", collection.Name, cutoff, result.Error)
			continue
		}
		total += result.RowsAffected
	}

	if total > 0 {
		s.Logger.WithField("rows", total).Info("soft-deleted rows purged")
	}
	return nil
}

// sweepExpiredBranches permanently removes branches whose countdown
// reached -7 days. Each branch is archived first; if the archive
// cannot be written or stored, the deletion is blocked and retried on
// the next sweep.
func (s *Scheduler) sweepExpiredBranches(ctx context.Context, tick Tick) error {
	branches, err := models.ListExpiredBranches(ctx, purgeGraceDays)
	if err != nil {
		config.LogError(s.Logger, "sweeper.go", "sweepExpiredBranches", "ListExpiredBranches", nil, err)
		return err
	}

	db := config.GetDB()
	for i := range branches {
		branch := &branches[i]

		data, err := archive.Export(ctx, db, branch)
		if err != nil {
			config.LogError(s.Logger, "sweeper.go", "sweepExpiredBranches", "Export", branch.ID, err)
			continue
		}

		objectName := archive.ObjectName(branch.Name, tick.At)
		if err := archive.Store(ctx, objectName, data); err != nil {
			config.LogError(s.Logger, "sweeper.go", "sweepExpiredBranches", "Store", objectName, err)
			continue
		}

		if err := deleteBranchData(ctx, db, branch.ID); err != nil {
			config.LogError(s.Logger, "sweeper.go", "sweepExpiredBranches", "deleteBranchData", branch.ID, err)
			continue
		}

		s.Logger.WithFields(map[string]interface{}{
			"branch":  branch.Name,
			"archive": objectName,
		}).Info("expired branch archived and deleted")
	}

	return nil
}

// deleteBranchData drops every collection row and the branch record in
// one transaction, committed only after the archive is safely stored.
func deleteBranchData(ctx context.Context, db *gorm.DB, branchId uint) error {
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, collection := range models.BranchCollections() {
			err := tx.Table(collection.Name).
				Where("branch_id = ?", branchId).
				Delete(collection.Model).Error
			if err != nil {
				return err
			}
		}
		return tx.Where("id = ?", branchId).Delete(&models.Branch{}).Error
	})
}

// BranchEligibleForDeletion is the sweep boundary rule: day -7 is
// eligible, day -6 is not.
func BranchEligibleForDeletion(days int) bool {
	return days <= -purgeGraceDays
}

// RowEligibleForPurge applies the same grace period to soft-deleted
// rows.
func RowEligibleForPurge(deletedAt time.Time, now time.Time) bool {
	return deletedAt.Before(now.AddDate(0, 0, -purgeGraceDays))
}
